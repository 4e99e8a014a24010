package usecases

import (
	"context"
	"time"

	"github.com/relatorio-inc/relatorio/internal/domain/report"
	"github.com/relatorio-inc/relatorio/internal/domain/user"
)

const (
	tenantID   uint = 1
	authorID   uint = 10
	assigneeID uint = 20
	staffID    uint = 30
	outsiderID uint = 40
)

func uintPtr(v uint) *uint { return &v }

func existingReport(id uint, progress int, status string) *report.Report {
	now := time.Now().UTC().Add(-time.Hour)
	r, err := report.ReconstructReport(id, report.State{
		TenantID:   tenantID,
		AuthorID:   authorID,
		AssigneeID: uintPtr(assigneeID),
		OccurredAt: now,
		Title:      "Compressor vazando óleo",
		Status:     status,
		Priority:   "high",
		Progress:   progress,
		Editable:   true,
		Version:    1,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		panic(err)
	}
	return r
}

func reportRepoWith(r *report.Report) *mockReportRepository {
	return &mockReportRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*report.Report, error) {
			if r != nil && r.ID() == id {
				return r, nil
			}
			return nil, nil
		},
	}
}

func activeUserRecord(id uint, active bool) *user.User {
	u, err := user.ReconstructUser(id, user.UserState{
		TenantID: tenantID,
		Username: "tecnico",
		Email:    "tecnico@example.com",
		Role:     "user",
		IsActive: active,
	})
	if err != nil {
		panic(err)
	}
	return u
}

func usersRepo(users ...*user.User) *mockUserRepository {
	return &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			for _, u := range users {
				if u.ID() == id {
					return u, nil
				}
			}
			return nil, nil
		},
	}
}

var (
	author   = report.Actor{UserID: authorID}
	assignee = report.Actor{UserID: assigneeID}
	staff    = report.Actor{UserID: staffID, Staff: true}
	outsider = report.Actor{UserID: outsiderID}
)
