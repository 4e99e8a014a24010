package report

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/relatorio-inc/relatorio/internal/domain/report/valueobjects"
	"github.com/relatorio-inc/relatorio/internal/domain/shared"
)

const (
	authorID   uint = 10
	assigneeID uint = 20
	otherID    uint = 30
	staffID    uint = 40
)

func newTestReport(t *testing.T, progress int) *Report {
	t.Helper()
	assignee := assigneeID
	r, err := NewReport(1, authorID, Draft{
		Title:      "Vazamento no compressor",
		Priority:   shared.PriorityHigh,
		Progress:   progress,
		AssigneeID: &assignee,
	})
	require.NoError(t, err)
	require.NoError(t, r.SetID(5))
	return r
}

func TestNewReport_DerivesStatus(t *testing.T) {
	tests := []struct {
		progress int
		status   vo.Status
		resolved bool
	}{
		{0, vo.StatusPending, false},
		{40, vo.StatusInProgress, false},
		{100, vo.StatusResolved, true},
	}
	for _, tt := range tests {
		r := newTestReport(t, tt.progress)
		assert.Equal(t, tt.status, r.Status())
		assert.Equal(t, tt.resolved, r.ResolvedAt() != nil)
		assert.True(t, r.Editable())
		assert.Equal(t, 1, r.Version())
	}
}

func TestNewReport_Validation(t *testing.T) {
	_, err := NewReport(1, authorID, Draft{Title: "  "})
	assert.Error(t, err)

	_, err = NewReport(1, authorID, Draft{Title: strings.Repeat("a", 201)})
	assert.Error(t, err)

	_, err = NewReport(1, authorID, Draft{Title: "ok", Description: strings.Repeat("a", 10001)})
	assert.Error(t, err)

	_, err = NewReport(1, authorID, Draft{Title: "ok", Progress: 101})
	assert.Error(t, err)

	_, err = NewReport(1, 0, Draft{Title: "ok"})
	assert.Error(t, err)

	r, err := NewReport(1, authorID, Draft{Title: "ok"})
	require.NoError(t, err)
	assert.Equal(t, shared.PriorityMedium, r.Priority())
}

func TestApplyProgress_RejectsRegression(t *testing.T) {
	r := newTestReport(t, 60)

	_, err := r.ApplyProgress(Actor{UserID: authorID}, 59, "", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrProgressRegression))
	assert.Equal(t, 60, r.Progress())
	assert.Equal(t, 1, r.Version())
}

func TestApplyProgress_RecordsUpdate(t *testing.T) {
	r := newTestReport(t, 0)

	upd, err := r.ApplyProgress(Actor{UserID: assigneeID}, 30, "troca do selo", []UpdateImage{{Path: "a.jpg"}})
	require.NoError(t, err)

	assert.Equal(t, uint(5), upd.ReportID())
	assert.Equal(t, 0, upd.PreviousProgress())
	assert.Equal(t, 30, upd.NewProgress())
	assert.Equal(t, vo.StatusPending, upd.PreviousStatus())
	assert.Equal(t, vo.StatusInProgress, upd.NewStatus())
	assert.True(t, upd.StatusChanged())
	assert.Len(t, upd.Images(), 1)

	assert.Equal(t, 30, r.Progress())
	assert.Equal(t, vo.StatusInProgress, r.Status())
	assert.Equal(t, 2, r.Version())
	assert.Nil(t, r.ResolvedAt())
}

func TestApplyProgress_EqualProgressIsNoteOnly(t *testing.T) {
	r := newTestReport(t, 50)

	upd, err := r.ApplyProgress(Actor{UserID: authorID}, 50, "aguardando peça", nil)
	require.NoError(t, err)
	assert.Zero(t, upd.ProgressDelta())
	assert.False(t, upd.StatusChanged())
}

func TestApplyProgress_ResolvesAndSetsResolvedAt(t *testing.T) {
	r := newTestReport(t, 80)

	_, err := r.ApplyProgress(Actor{UserID: staffID, Staff: true}, 100, "concluído", nil)
	require.NoError(t, err)
	assert.True(t, r.IsResolved())
	require.NotNil(t, r.ResolvedAt())
}

func TestCanUpdateProgress(t *testing.T) {
	tests := []struct {
		name     string
		progress int
		actor    Actor
		want     bool
	}{
		{"author on open report", 10, Actor{UserID: authorID}, true},
		{"author on resolved report", 100, Actor{UserID: authorID}, true},
		{"assignee on open report", 10, Actor{UserID: assigneeID}, true},
		{"assignee on resolved report", 100, Actor{UserID: assigneeID}, false},
		{"staff on resolved report", 100, Actor{UserID: staffID, Staff: true}, true},
		{"unrelated user", 10, Actor{UserID: otherID}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestReport(t, tt.progress)
			assert.Equal(t, tt.want, r.CanUpdateProgress(tt.actor))

			_, err := r.ApplyProgress(tt.actor, 100, "", nil)
			if tt.want {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrNotAllowed)
			}
		})
	}
}

func TestApplyEdit_NeverTouchesProgress(t *testing.T) {
	r := newTestReport(t, 40)

	err := r.ApplyEdit(Actor{UserID: authorID}, Edit{Title: "Novo título", Description: "**detalhe**"})
	require.NoError(t, err)
	assert.Equal(t, "Novo título", r.Title())
	assert.Equal(t, 40, r.Progress())
	assert.Equal(t, vo.StatusInProgress, r.Status())
	assert.Equal(t, shared.PriorityHigh, r.Priority())
}

func TestApplyEdit_Permissions(t *testing.T) {
	r := newTestReport(t, 0)

	assert.ErrorIs(t, r.ApplyEdit(Actor{UserID: assigneeID}, Edit{Title: "x"}), ErrNotAllowed)

	r.SetEditable(false)
	assert.ErrorIs(t, r.ApplyEdit(Actor{UserID: authorID}, Edit{Title: "x"}), ErrReportLocked)
	assert.NoError(t, r.ApplyEdit(Actor{UserID: staffID, Staff: true}, Edit{Title: "x"}))
}

func TestVisibilityAndResponsible(t *testing.T) {
	r := newTestReport(t, 0)
	assert.True(t, r.CanView(Actor{UserID: authorID}))
	assert.True(t, r.CanView(Actor{UserID: assigneeID}))
	assert.True(t, r.CanView(Actor{UserID: staffID, Staff: true}))
	assert.False(t, r.CanView(Actor{UserID: otherID}))

	assert.Equal(t, assigneeID, r.CurrentResponsible())
	r.Unassign()
	assert.Equal(t, authorID, r.CurrentResponsible())
}

func TestNewCategory(t *testing.T) {
	c, err := NewCategory(1, "Elétrica", "", "")
	require.NoError(t, err)
	assert.Equal(t, DefaultCategoryColor, c.Color())

	_, err = NewCategory(1, "Elétrica", "", "red")
	assert.Error(t, err)
}

func TestNewData(t *testing.T) {
	d, err := NewData(5, "horímetro", "1.250,5", vo.DataTypeNumber)
	assert.Error(t, err)
	assert.Nil(t, d)

	d, err = NewData(5, "horímetro", "1250,5", vo.DataTypeNumber)
	require.NoError(t, err)
	assert.Equal(t, "1250.5", d.Value())

	d, err = NewData(5, "obs", "livre", "")
	require.NoError(t, err)
	assert.Equal(t, vo.DataTypeText, d.DataType())
}
