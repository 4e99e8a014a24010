package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/relatorio-inc/relatorio/internal/shared/logger"
)

func newTestEnforcer(t *testing.T) *Enforcer {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	e, err := NewEnforcer(db, logger.NewLogger())
	require.NoError(t, err)
	require.NoError(t, e.SeedDefaults())
	return e
}

func TestEnforcer_RoleHierarchy(t *testing.T) {
	e := newTestEnforcer(t)

	tests := []struct {
		role, resource, action string
		allowed                bool
	}{
		{"user", ResourceReport, ActionCreate, true},
		{"user", ResourceReport, ActionAssign, true},
		{"user", ResourceLocation, ActionCreate, false},
		{"user", ResourceUser, ActionList, false},
		{"manager", ResourceUser, ActionList, true},
		{"manager", ResourceReport, ActionRead, true},
		{"manager", ResourceReport, ActionLock, false},
		{"staff", ResourceReport, ActionLock, true},
		{"staff", ResourceLocation, ActionDelete, true},
		{"staff", ResourceUser, ActionCreate, false},
		{"admin", ResourceUser, ActionCreate, true},
		{"admin", ResourceReport, ActionCreate, true},
		{"admin", ResourceNotification, ActionBroadcast, true},
		{"stranger", ResourceReport, ActionRead, false},
	}

	for _, tt := range tests {
		allowed, err := e.Enforce(tt.role, tt.resource, tt.action)
		require.NoError(t, err)
		assert.Equal(t, tt.allowed, allowed, "%s %s %s", tt.role, tt.resource, tt.action)
	}
}

func TestEnforcer_SeedIsIdempotent(t *testing.T) {
	e := newTestEnforcer(t)
	require.NoError(t, e.SeedDefaults())

	perms, err := e.PermissionsForRole("user")
	require.NoError(t, err)
	assert.Len(t, perms, 13)
}

func TestEnforcer_AddRemovePolicy(t *testing.T) {
	e := newTestEnforcer(t)

	require.NoError(t, e.AddPolicy("user", ResourceReport, ActionExport))
	ok, err := e.Enforce("user", ResourceReport, ActionExport)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, e.RemovePolicy("user", ResourceReport, ActionExport))
	require.NoError(t, e.LoadPolicy())
	ok, err = e.Enforce("user", ResourceReport, ActionExport)
	require.NoError(t, err)
	assert.False(t, ok)
}
