package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/relatorio-inc/relatorio/internal/domain/analytics"
	"github.com/relatorio-inc/relatorio/internal/infrastructure/persistence/models"
	"github.com/relatorio-inc/relatorio/internal/shared/constants"
	"github.com/relatorio-inc/relatorio/internal/shared/db"
)

// FactRepository projects reports and their updates into analytics facts.
type FactRepository struct {
	db *gorm.DB
}

func NewFactRepository(gdb *gorm.DB) *FactRepository {
	return &FactRepository{db: gdb}
}

func (r *FactRepository) ReportFacts(ctx context.Context, scope analytics.Scope) ([]analytics.ReportFact, error) {
	var rows []models.ReportModel
	err := db.GetTxFromContext(ctx, r.db).Model(&models.ReportModel{}).
		Select("id, status, priority, progress, author_id, assignee_id, local_id, equipamento_id, created_at, updated_at, resolved_at").
		Scopes(scopeFilter(scope, "")).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load report facts: %w", err)
	}

	facts := make([]analytics.ReportFact, 0, len(rows))
	for _, m := range rows {
		facts = append(facts, analytics.ReportFact{
			ID:            m.ID,
			Status:        m.Status,
			Priority:      m.Priority,
			Progress:      m.Progress,
			AuthorID:      m.AuthorID,
			AssigneeID:    m.AssigneeID,
			LocalID:       m.LocalID,
			EquipamentoID: m.EquipamentoID,
			CreatedAt:     m.CreatedAt,
			UpdatedAt:     m.UpdatedAt,
			ResolvedAt:    m.ResolvedAt,
		})
	}
	return facts, nil
}

// UpdateFacts returns updates of the reports in scope. The date range applies
// to the update time.
func (r *FactRepository) UpdateFacts(ctx context.Context, scope analytics.Scope) ([]analytics.UpdateFact, error) {
	reports := db.GetTxFromContext(ctx, r.db).Model(&models.ReportModel{}).
		Select("id").
		Scopes(scopeFilter(analytics.Scope{TenantID: scope.TenantID, VisibleTo: scope.VisibleTo}, ""))

	var facts []analytics.UpdateFact
	err := db.GetTxFromContext(ctx, r.db).Table(constants.TableReportUpdates+" AS u").
		Select("u.report_id, u.previous_progress, u.created_at").
		Where("u.report_id IN (?)", reports).
		Scopes(scopeFilter(analytics.Scope{From: scope.From, To: scope.To}, "u.")).
		Order("u.created_at").
		Scan(&facts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load update facts: %w", err)
	}
	return facts, nil
}

// scopeFilter applies tenant, visibility and the half-open [From, To) window.
func scopeFilter(scope analytics.Scope, prefix string) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		if scope.TenantID != 0 {
			q = q.Where(prefix+"tenant_id = ?", scope.TenantID)
		}
		if scope.VisibleTo != nil {
			q = q.Where("("+prefix+"author_id = ? OR "+prefix+"assignee_id = ?)", *scope.VisibleTo, *scope.VisibleTo)
		}
		if !scope.From.IsZero() {
			q = q.Where(prefix+"created_at >= ?", scope.From)
		}
		if !scope.To.IsZero() {
			q = q.Where(prefix+"created_at < ?", scope.To)
		}
		return q
	}
}
