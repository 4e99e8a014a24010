package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relatorio-inc/relatorio/internal/domain/report"
	apperrors "github.com/relatorio-inc/relatorio/internal/shared/errors"
)

func newCreateUseCase(repo *mockReportRepository, users *mockUserRepository, pub *mockPublisher) *CreateReportUseCase {
	return NewCreateReportUseCase(repo, &mockLocalRepository{}, &mockEquipamentoRepository{}, &mockCategoryRepository{}, users, pub, &mockLogger{})
}

func TestCreateReportUseCase_Execute_Success(t *testing.T) {
	tests := []struct {
		name       string
		input      ReportInput
		wantStatus string
		wantEvents []string
	}{
		{
			name:       "new report without progress is pending",
			input:      ReportInput{Title: "Lâmpada queimada", Priority: "low"},
			wantStatus: "pending",
			wantEvents: []string{report.EventReportCreated},
		},
		{
			name:       "partial progress is in progress",
			input:      ReportInput{Title: "Troca de rolamento", Progress: 40},
			wantStatus: "in_progress",
			wantEvents: []string{report.EventReportCreated},
		},
		{
			name:       "assigned at creation also announces the assignment",
			input:      ReportInput{Title: "Painel elétrico", AssigneeID: uintPtr(assigneeID)},
			wantStatus: "pending",
			wantEvents: []string{report.EventReportCreated, report.EventReportAssigned},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockReportRepository{
				CreateFunc: func(ctx context.Context, r *report.Report) error {
					return r.SetID(100)
				},
			}
			pub := &mockPublisher{}
			uc := newCreateUseCase(repo, usersRepo(activeUserRecord(assigneeID, true)), pub)

			result, err := uc.Execute(context.Background(), CreateReportCommand{
				TenantID:    tenantID,
				AuthorID:    authorID,
				ReportInput: tt.input,
			})

			require.NoError(t, err)
			assert.Equal(t, uint(100), result.ID)
			assert.Equal(t, tt.wantStatus, result.Status)
			assert.Equal(t, tt.wantEvents, pub.types())
		})
	}
}

func TestCreateReportUseCase_Execute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		cmd     CreateReportCommand
		repoErr error
		check   func(error) bool
	}{
		{
			name:  "missing title",
			cmd:   CreateReportCommand{TenantID: tenantID, AuthorID: authorID},
			check: apperrors.IsValidationError,
		},
		{
			name:  "progress above 100",
			cmd:   CreateReportCommand{TenantID: tenantID, AuthorID: authorID, ReportInput: ReportInput{Title: "x", Progress: 101}},
			check: apperrors.IsValidationError,
		},
		{
			name:  "unknown priority",
			cmd:   CreateReportCommand{TenantID: tenantID, AuthorID: authorID, ReportInput: ReportInput{Title: "x", Priority: "urgent"}},
			check: apperrors.IsValidationError,
		},
		{
			name:  "inactive assignee",
			cmd:   CreateReportCommand{TenantID: tenantID, AuthorID: authorID, ReportInput: ReportInput{Title: "x", AssigneeID: uintPtr(99)}},
			check: apperrors.IsValidationError,
		},
		{
			name:  "unknown local",
			cmd:   CreateReportCommand{TenantID: tenantID, AuthorID: authorID, ReportInput: ReportInput{Title: "x", LocalID: uintPtr(5)}},
			check: apperrors.IsValidationError,
		},
		{
			name:    "repository failure",
			cmd:     CreateReportCommand{TenantID: tenantID, AuthorID: authorID, ReportInput: ReportInput{Title: "x"}},
			repoErr: errors.New("db down"),
			check:   func(err error) bool { return apperrors.GetAppError(err) != nil && apperrors.GetAppError(err).Code == 500 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockReportRepository{
				CreateFunc: func(ctx context.Context, r *report.Report) error { return tt.repoErr },
			}
			pub := &mockPublisher{}
			uc := newCreateUseCase(repo, usersRepo(activeUserRecord(99, false)), pub)

			result, err := uc.Execute(context.Background(), tt.cmd)

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, tt.check(err), "unexpected error: %v", err)
			assert.Empty(t, pub.types())
		})
	}
}
