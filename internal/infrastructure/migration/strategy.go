package migration

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"github.com/relatorio-inc/relatorio/internal/infrastructure/migration/scripts"
	"github.com/relatorio-inc/relatorio/internal/infrastructure/persistence/models"
	"github.com/relatorio-inc/relatorio/internal/shared/logger"
)

// ErrUnsupported is returned when a strategy cannot perform an operation.
var ErrUnsupported = errors.New("operation not supported by migration strategy")

// Strategy defines the interface for different migration strategies
type Strategy interface {
	// Migrate brings the schema up to date
	Migrate(db *gorm.DB) error
	// GetName returns the strategy name
	GetName() string
}

// Versioned is implemented by strategies that track applied versions.
type Versioned interface {
	MigrateDown(db *gorm.DB, steps int) error
	GetVersion(db *gorm.DB) (int64, error)
	Status(db *gorm.DB) error
}

// GormAutoMigrateStrategy derives the schema from the persistence models.
type GormAutoMigrateStrategy struct {
	models []interface{}
	logger logger.Interface
}

func NewGormAutoMigrateStrategy() *GormAutoMigrateStrategy {
	return &GormAutoMigrateStrategy{
		models: models.All(),
		logger: logger.NewLogger().With("component", "migration.gorm"),
	}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB) error {
	s.logger.Infow("starting gorm auto migration", "models_count", len(s.models))

	if err := db.AutoMigrate(s.models...); err != nil {
		s.logger.Errorw("auto migration failed", "error", err)
		return fmt.Errorf("failed to auto migrate: %w", err)
	}

	s.logger.Infow("auto migration completed successfully")
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}

// Dialects lists the goose dialects that ship SQL scripts. Each one has its
// own directory under scripts/ and all of them carry the same versions.
var Dialects = []string{"mysql", "postgres", "sqlite3"}

// DialectFor maps a database driver name to its goose dialect, or "" when no
// scripts exist for it.
func DialectFor(driver string) string {
	switch strings.ToLower(driver) {
	case "", "mysql":
		return "mysql"
	case "postgres", "postgresql", "pgx":
		return "postgres"
	case "sqlite", "sqlite3":
		return "sqlite3"
	default:
		return ""
	}
}

// GooseStrategy applies the versioned SQL scripts embedded in the binary.
type GooseStrategy struct {
	dialect string
	fsys    fs.FS
	logger  logger.Interface
}

func NewGooseStrategy(dialect string) *GooseStrategy {
	return &GooseStrategy{
		dialect: dialect,
		fsys:    scripts.FS,
		logger:  logger.NewLogger().With("component", "migration.goose"),
	}
}

func (s *GooseStrategy) prepare(db *gorm.DB) (*sql.DB, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sub, err := fs.Sub(s.fsys, s.dialect)
	if err != nil {
		return nil, fmt.Errorf("no scripts for dialect %s: %w", s.dialect, err)
	}

	goose.SetBaseFS(sub)
	if err := goose.SetDialect(s.dialect); err != nil {
		return nil, fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return sqlDB, nil
}

func (s *GooseStrategy) Migrate(db *gorm.DB) error {
	s.logger.Infow("starting goose migration", "dialect", s.dialect)

	conn, err := s.prepare(db)
	if err != nil {
		return err
	}

	currentVersion, err := goose.GetDBVersion(conn)
	if err != nil {
		s.logger.Errorw("failed to get current version", "error", err)
		return fmt.Errorf("failed to get current version: %w", err)
	}

	if err := goose.Up(conn, "."); err != nil {
		s.logger.Errorw("migration failed", "error", err)
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	finalVersion, err := goose.GetDBVersion(conn)
	if err != nil {
		return fmt.Errorf("failed to get final version: %w", err)
	}

	s.logger.Infow("migration completed successfully",
		"from_version", currentVersion,
		"to_version", finalVersion)

	return nil
}

func (s *GooseStrategy) GetName() string {
	return "goose"
}

func (s *GooseStrategy) MigrateDown(db *gorm.DB, steps int) error {
	if steps < 1 {
		steps = 1
	}
	s.logger.Infow("starting down migration", "steps", steps)

	conn, err := s.prepare(db)
	if err != nil {
		return err
	}

	for i := 0; i < steps; i++ {
		if err := goose.Down(conn, "."); err != nil {
			s.logger.Errorw("down migration failed", "step", i+1, "error", err)
			return fmt.Errorf("failed to run down migration: %w", err)
		}
	}

	s.logger.Infow("down migration completed successfully")
	return nil
}

func (s *GooseStrategy) GetVersion(db *gorm.DB) (int64, error) {
	conn, err := s.prepare(db)
	if err != nil {
		return 0, err
	}

	version, err := goose.GetDBVersion(conn)
	if err != nil {
		return 0, fmt.Errorf("failed to get version: %w", err)
	}
	return version, nil
}

func (s *GooseStrategy) Status(db *gorm.DB) error {
	conn, err := s.prepare(db)
	if err != nil {
		return err
	}

	if err := goose.Status(conn, "."); err != nil {
		return fmt.Errorf("failed to get status: %w", err)
	}
	return nil
}

// Create writes the next sequential SQL migration into dir/<dialect> on disk.
func (s *GooseStrategy) Create(dir, name string) error {
	target := filepath.Join(dir, s.dialect)
	if err := os.MkdirAll(target, 0o755); err != nil {
		return fmt.Errorf("failed to create scripts dir: %w", err)
	}

	goose.SetBaseFS(nil)
	goose.SetSequential(true)
	defer func() {
		goose.SetSequential(false)
		goose.SetBaseFS(s.fsys)
	}()

	if err := goose.SetDialect(s.dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Create(nil, target, name, "sql"); err != nil {
		return fmt.Errorf("failed to create migration: %w", err)
	}

	s.logger.Infow("migration created successfully", "name", name, "dir", target)
	return nil
}
