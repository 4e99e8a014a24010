package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/relatorio-inc/relatorio/internal/domain/analytics"
	"github.com/relatorio-inc/relatorio/internal/domain/location"
	"github.com/relatorio-inc/relatorio/internal/domain/report"
	"github.com/relatorio-inc/relatorio/internal/domain/user"
	"github.com/relatorio-inc/relatorio/internal/shared/biztime"
	"github.com/relatorio-inc/relatorio/internal/shared/errors"
	"github.com/relatorio-inc/relatorio/internal/shared/logger"
)

type DashboardQuery struct {
	TenantID    uint
	Actor       report.Actor
	Period      string
	Granularity string
}

// scope returns the fact scope and the cache segment for the actor.
func (q DashboardQuery) scope() (*uint, string) {
	if q.Actor.Staff {
		return nil, "all"
	}
	id := q.Actor.UserID
	return &id, fmt.Sprintf("user:%d", id)
}

// CacheKey builds the dashboard cache key. The tenant segment comes first so
// a whole tenant can be invalidated by prefix.
func CacheKey(tenantID uint, scope, period, granularity string) string {
	return fmt.Sprintf("%d:%s:%s:%s", tenantID, scope, period, granularity)
}

type GetDashboardUseCase struct {
	facts     analytics.FactRepository
	locals    location.LocalRepository
	equipment location.EquipamentoRepository
	users     user.Repository
	cache     DashboardCache
	ttl       time.Duration
	logger    logger.Interface
	now       func() time.Time
}

func NewGetDashboardUseCase(
	facts analytics.FactRepository,
	locals location.LocalRepository,
	equipment location.EquipamentoRepository,
	users user.Repository,
	cache DashboardCache,
	ttl time.Duration,
	logger logger.Interface,
) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		facts:     facts,
		locals:    locals,
		equipment: equipment,
		users:     users,
		cache:     cache,
		ttl:       ttl,
		logger:    logger,
		now:       biztime.NowUTC,
	}
}

func (uc *GetDashboardUseCase) Execute(ctx context.Context, query DashboardQuery) (*analytics.Dashboard, error) {
	uc.logger.Infow("executing get dashboard use case", "tenant_id", query.TenantID, "user_id", query.Actor.UserID, "period", query.Period)

	period, err := analytics.ParsePeriod(query.Period)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	granularity := biztime.Granularity(query.Granularity)
	if query.Granularity == "" {
		granularity = defaultGranularity(period)
	}
	if !granularity.IsValid() {
		return nil, errors.NewValidationError("invalid granularity", query.Granularity)
	}

	visibleTo, segment := query.scope()
	key := CacheKey(query.TenantID, segment, string(period), string(granularity))

	if uc.cache != nil {
		cached, err := uc.cache.Get(ctx, key)
		if err != nil {
			uc.logger.Warnw("failed to read dashboard cache", "key", key, "error", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	now := uc.now()
	from, to := period.Range(now)
	prevFrom, prevTo := analytics.PreviousWindow(from, to)

	current, err := uc.facts.ReportFacts(ctx, analytics.Scope{TenantID: query.TenantID, VisibleTo: visibleTo, From: from, To: to})
	if err != nil {
		uc.logger.Errorw("failed to load report facts", "error", err)
		return nil, errors.NewInternalError("failed to build dashboard")
	}
	previous, err := uc.facts.ReportFacts(ctx, analytics.Scope{TenantID: query.TenantID, VisibleTo: visibleTo, From: prevFrom, To: prevTo})
	if err != nil {
		uc.logger.Errorw("failed to load previous report facts", "error", err)
		return nil, errors.NewInternalError("failed to build dashboard")
	}
	updates, err := uc.facts.UpdateFacts(ctx, analytics.Scope{TenantID: query.TenantID, VisibleTo: visibleTo, From: from, To: to})
	if err != nil {
		uc.logger.Errorw("failed to load update facts", "error", err)
		return nil, errors.NewInternalError("failed to build dashboard")
	}

	names, err := uc.resolveNames(ctx, current)
	if err != nil {
		uc.logger.Errorw("failed to resolve names", "error", err)
		return nil, errors.NewInternalError("failed to build dashboard")
	}

	dashboard := analytics.BuildDashboard(analytics.DashboardInput{
		Period:      period,
		From:        from,
		To:          to,
		Granularity: granularity,
		Current:     current,
		Previous:    previous,
		Updates:     updates,
		Names:       names,
		Now:         now,
	})

	if uc.cache != nil && uc.ttl > 0 {
		if err := uc.cache.Set(ctx, key, &dashboard, uc.ttl); err != nil {
			uc.logger.Warnw("failed to write dashboard cache", "key", key, "error", err)
		}
	}

	uc.logger.Infow("dashboard built", "tenant_id", query.TenantID, "reports", len(current))
	return &dashboard, nil
}

func defaultGranularity(p analytics.Period) biztime.Granularity {
	switch p {
	case analytics.Period90d:
		return biztime.GranularityWeek
	case analytics.Period365d:
		return biztime.GranularityMonth
	default:
		return biztime.GranularityDay
	}
}

// resolveNames loads display names for every local, equipment and user the
// facts reference.
func (uc *GetDashboardUseCase) resolveNames(ctx context.Context, facts []analytics.ReportFact) (analytics.Names, error) {
	names := analytics.Names{
		Locals:    make(map[uint]string),
		Users:     make(map[uint]string),
		Equipment: make(map[uint]analytics.EquipmentInfo),
	}

	localIDs := newIDSet()
	equipIDs := newIDSet()
	userIDs := newIDSet()
	for _, f := range facts {
		userIDs.add(f.AuthorID)
		if f.AssigneeID != nil {
			userIDs.add(*f.AssigneeID)
		}
		if f.LocalID != nil {
			localIDs.add(*f.LocalID)
		}
		if f.EquipamentoID != nil {
			equipIDs.add(*f.EquipamentoID)
		}
	}

	var equipment []*location.Equipamento
	if len(equipIDs.ids) > 0 {
		var err error
		equipment, err = uc.equipment.GetByIDs(ctx, equipIDs.ids)
		if err != nil {
			return names, err
		}
		for _, e := range equipment {
			localIDs.add(e.LocalID())
		}
	}

	if len(localIDs.ids) > 0 {
		locals, err := uc.locals.GetByIDs(ctx, localIDs.ids)
		if err != nil {
			return names, err
		}
		for _, l := range locals {
			names.Locals[l.ID()] = l.Name()
		}
	}

	for _, e := range equipment {
		names.Equipment[e.ID()] = analytics.EquipmentInfo{
			Name:      e.Name(),
			Code:      e.Code(),
			LocalName: names.Locals[e.LocalID()],
		}
	}

	if len(userIDs.ids) > 0 {
		users, err := uc.users.GetByIDs(ctx, userIDs.ids)
		if err != nil {
			return names, err
		}
		for _, u := range users {
			names.Users[u.ID()] = u.DisplayName()
		}
	}

	return names, nil
}

type idSet struct {
	seen map[uint]bool
	ids  []uint
}

func newIDSet() *idSet {
	return &idSet{seen: make(map[uint]bool)}
}

func (s *idSet) add(id uint) {
	if id == 0 || s.seen[id] {
		return
	}
	s.seen[id] = true
	s.ids = append(s.ids, id)
}
