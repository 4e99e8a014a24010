package migration

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/relatorio-inc/relatorio/internal/shared/config"
	"github.com/relatorio-inc/relatorio/internal/shared/logger"
)

// DefaultScriptsDir is where new goose scripts are written by Create.
const DefaultScriptsDir = "internal/infrastructure/migration/scripts"

// Manager runs schema migrations with the strategy chosen for the database.
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager picks goose with the driver's dialect unless gorm is requested
// explicitly. Drivers without scripts fall back to AutoMigrate.
func NewManager(cfg *config.DatabaseConfig) *Manager {
	log := logger.WithComponent("migration.manager")

	var strategy Strategy
	dialect := DialectFor(cfg.Driver)

	switch {
	case strings.ToLower(cfg.MigrationTool) == "gorm":
		strategy = NewGormAutoMigrateStrategy()
	case dialect == "":
		log.Warnw("no goose scripts for driver, falling back to auto migrate", "driver", cfg.Driver)
		strategy = NewGormAutoMigrateStrategy()
	default:
		strategy = NewGooseStrategy(dialect)
	}

	return &Manager{strategy: strategy, logger: log}
}

// NewManagerWithStrategy creates a new migration manager with a specific strategy
func NewManagerWithStrategy(strategy Strategy) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   logger.WithComponent("migration.manager"),
	}
}

// Migrate executes the configured migration strategy
func (m *Manager) Migrate(db *gorm.DB) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.GetName())

	if err := m.strategy.Migrate(db); err != nil {
		m.logger.Errorw("migration failed", "strategy", m.strategy.GetName(), "error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed successfully", "strategy", m.strategy.GetName())
	return nil
}

func (m *Manager) Down(db *gorm.DB, steps int) error {
	v, ok := m.strategy.(Versioned)
	if !ok {
		return fmt.Errorf("down: %w", ErrUnsupported)
	}
	return v.MigrateDown(db, steps)
}

func (m *Manager) Status(db *gorm.DB) error {
	v, ok := m.strategy.(Versioned)
	if !ok {
		m.logger.Infow("schema managed by auto migrate, no version history", "strategy", m.strategy.GetName())
		return nil
	}
	return v.Status(db)
}

func (m *Manager) Version(db *gorm.DB) (int64, error) {
	v, ok := m.strategy.(Versioned)
	if !ok {
		return 0, fmt.Errorf("version: %w", ErrUnsupported)
	}
	return v.GetVersion(db)
}

// Create writes an empty goose script for every dialect regardless of the
// active strategy, so the script sets keep the same versions.
func (m *Manager) Create(dir, name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("migration name is required")
	}
	if dir == "" {
		dir = DefaultScriptsDir
	}
	for _, dialect := range Dialects {
		if err := NewGooseStrategy(dialect).Create(dir, name); err != nil {
			return err
		}
	}
	return nil
}

// GetStrategy returns the current migration strategy
func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}
