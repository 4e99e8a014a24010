// Package seeds loads reference data from a YAML file.
package seeds

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/relatorio-inc/relatorio/internal/domain/location"
	"github.com/relatorio-inc/relatorio/internal/infrastructure/persistence/models"
	"github.com/relatorio-inc/relatorio/internal/shared/authorization"
	"github.com/relatorio-inc/relatorio/internal/shared/logger"
)

type File struct {
	TenantID     uint            `yaml:"tenant_id"`
	Units        []UnitSeed      `yaml:"units"`
	Sectors      []SectorSeed    `yaml:"sectors"`
	Users        []UserSeed      `yaml:"users"`
	Categories   []CategorySeed  `yaml:"categories"`
	Locals       []LocalSeed     `yaml:"locals"`
	Equipamentos []EquipmentSeed `yaml:"equipamentos"`
	Motores      []EquipmentSeed `yaml:"motores"`
}

type UnitSeed struct {
	Code        string `yaml:"code"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type SectorSeed struct {
	Code string `yaml:"code"`
	Name string `yaml:"name"`
	Unit string `yaml:"unit"`
}

type UserSeed struct {
	Username string `yaml:"username"`
	Email    string `yaml:"email"`
	FullName string `yaml:"full_name"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
	Manager  bool   `yaml:"manager"`
	Unit     string `yaml:"unit"`
	Sector   string `yaml:"sector"`
}

type CategorySeed struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Color       string `yaml:"color"`
}

type LocalSeed struct {
	Code    string `yaml:"code"`
	Name    string `yaml:"name"`
	Type    string `yaml:"type"`
	Address string `yaml:"address"`
	City    string `yaml:"city"`
	State   string `yaml:"state"`
}

// EquipmentSeed describes either an equipamento or a motor attached to a local.
type EquipmentSeed struct {
	Code         string `yaml:"code"`
	Name         string `yaml:"name"`
	Local        string `yaml:"local"`
	Type         string `yaml:"type"`
	Manufacturer string `yaml:"manufacturer"`
	Model        string `yaml:"model"`
}

// Summary counts rows inserted by Apply. Existing rows are not counted.
type Summary struct {
	Units, Sectors, Users, Categories, Locals, Equipamentos, Motores int
}

type PasswordHasher interface {
	Hash(password string) (string, error)
}

// Load decodes a seed file, rejecting unknown keys.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	if f.TenantID == 0 {
		f.TenantID = 1
	}
	return &f, nil
}

type Seeder struct {
	db     *gorm.DB
	hasher PasswordHasher
	logger logger.Interface
}

func NewSeeder(db *gorm.DB, hasher PasswordHasher, log logger.Interface) *Seeder {
	return &Seeder{db: db, hasher: hasher, logger: log}
}

// Apply inserts every entry whose natural key is not present yet. It runs in
// a single transaction, so a bad entry leaves the database untouched.
func (s *Seeder) Apply(ctx context.Context, f *File) (*Summary, error) {
	var summary Summary

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		units := map[string]uint{}
		for _, u := range f.Units {
			m := models.UnitModel{TenantID: f.TenantID, Code: u.Code, Name: u.Name, Description: u.Description, IsActive: true}
			created, err := insertIfMissing(tx, &m, "tenant_id = ? AND code = ?", f.TenantID, u.Code)
			if err != nil {
				return fmt.Errorf("unit %s: %w", u.Code, err)
			}
			summary.Units += created
			units[u.Code] = m.ID
		}

		sectors := map[string]uint{}
		for _, sec := range f.Sectors {
			m := models.SectorModel{TenantID: f.TenantID, Code: sec.Code, Name: sec.Name, IsActive: true}
			if sec.Unit != "" {
				id, err := lookup(units, "unit", sec.Unit)
				if err != nil {
					return err
				}
				m.UnitID = &id
			}
			created, err := insertIfMissing(tx, &m, "tenant_id = ? AND code = ?", f.TenantID, sec.Code)
			if err != nil {
				return fmt.Errorf("sector %s: %w", sec.Code, err)
			}
			summary.Sectors += created
			sectors[sec.Code] = m.ID
		}

		for _, u := range f.Users {
			m, err := s.userModel(f.TenantID, u, units, sectors)
			if err != nil {
				return err
			}
			created, err := insertIfMissing(tx, m, "username = ?", m.Username)
			if err != nil {
				return fmt.Errorf("user %s: %w", u.Username, err)
			}
			summary.Users += created
		}

		for _, c := range f.Categories {
			color := c.Color
			if color == "" {
				color = "#007bff"
			}
			m := models.ReportCategoryModel{TenantID: f.TenantID, Name: c.Name, Description: c.Description, Color: color}
			created, err := insertIfMissing(tx, &m, "tenant_id = ? AND LOWER(name) = ?", f.TenantID, strings.ToLower(c.Name))
			if err != nil {
				return fmt.Errorf("category %s: %w", c.Name, err)
			}
			summary.Categories += created
		}

		locals := map[string]uint{}
		for _, l := range f.Locals {
			localType := l.Type
			if localType == "" {
				localType = string(location.LocalTypeOutro)
			}
			if !location.LocalType(localType).IsValid() {
				return fmt.Errorf("local %s: invalid type %q", l.Code, l.Type)
			}
			m := models.LocalModel{
				TenantID: f.TenantID, Code: l.Code, Name: l.Name, Type: localType,
				Address: l.Address, City: l.City, State: strings.ToUpper(l.State), Status: "ativo",
			}
			created, err := insertIfMissing(tx, &m, "code = ?", l.Code)
			if err != nil {
				return fmt.Errorf("local %s: %w", l.Code, err)
			}
			summary.Locals += created
			locals[l.Code] = m.ID
		}

		for _, e := range f.Equipamentos {
			localID, err := lookup(locals, "local", e.Local)
			if err != nil {
				return err
			}
			m := models.EquipamentoModel{
				TenantID: f.TenantID, LocalID: localID, Code: e.Code, Name: e.Name, Type: e.Type,
				Manufacturer: e.Manufacturer, Model: e.Model, OperationalStatus: "operando", Active: true, Priority: "medium",
			}
			created, err := insertIfMissing(tx, &m, "local_id = ? AND code = ?", localID, e.Code)
			if err != nil {
				return fmt.Errorf("equipamento %s: %w", e.Code, err)
			}
			summary.Equipamentos += created
		}

		for _, e := range f.Motores {
			localID, err := lookup(locals, "local", e.Local)
			if err != nil {
				return err
			}
			m := models.MotorModel{
				TenantID: f.TenantID, LocalID: localID, Code: e.Code, Name: e.Name, Type: e.Type,
				Manufacturer: e.Manufacturer, Model: e.Model, OperationalStatus: "operando", Active: true,
			}
			created, err := insertIfMissing(tx, &m, "local_id = ? AND code = ?", localID, e.Code)
			if err != nil {
				return fmt.Errorf("motor %s: %w", e.Code, err)
			}
			summary.Motores += created
		}
		return nil
	})
	if err != nil {
		s.logger.Errorw("seed failed", "error", err)
		return nil, err
	}

	s.logger.Infow("seed applied",
		"units", summary.Units,
		"sectors", summary.Sectors,
		"users", summary.Users,
		"categories", summary.Categories,
		"locals", summary.Locals,
		"equipamentos", summary.Equipamentos,
		"motores", summary.Motores,
	)
	return &summary, nil
}

func (s *Seeder) userModel(tenantID uint, u UserSeed, units, sectors map[string]uint) (*models.UserModel, error) {
	if u.Username == "" || u.Email == "" {
		return nil, fmt.Errorf("user entries need username and email")
	}
	role := authorization.UserRole(u.Role)
	if u.Role == "" {
		role = authorization.RoleUser
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("user %s: unknown role %q", u.Username, u.Role)
	}

	var hash string
	if u.Password != "" {
		h, err := s.hasher.Hash(u.Password)
		if err != nil {
			return nil, fmt.Errorf("user %s: %w", u.Username, err)
		}
		hash = h
	}

	fullName := u.FullName
	if fullName == "" {
		fullName = u.Username
	}
	m := &models.UserModel{
		TenantID:     tenantID,
		Username:     u.Username,
		Email:        strings.ToLower(u.Email),
		FullName:     fullName,
		PasswordHash: hash,
		Role:         role.String(),
		IsManager:    u.Manager,
		IsActive:     true,
	}
	if u.Unit != "" {
		id, err := lookup(units, "unit", u.Unit)
		if err != nil {
			return nil, err
		}
		m.UnitID = &id
	}
	if u.Sector != "" {
		id, err := lookup(sectors, "sector", u.Sector)
		if err != nil {
			return nil, err
		}
		m.SectorID = &id
	}
	return m, nil
}

// insertIfMissing loads the existing row into model when the query matches,
// otherwise creates it. It returns 1 when a row was inserted.
func insertIfMissing(tx *gorm.DB, model interface{}, query string, args ...interface{}) (int, error) {
	var count int64
	if err := tx.Model(model).Where(query, args...).Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, tx.Where(query, args...).First(model).Error
	}
	return 1, tx.Create(model).Error
}

func lookup(ids map[string]uint, kind, code string) (uint, error) {
	id, ok := ids[code]
	if !ok {
		return 0, fmt.Errorf("unknown %s %q", kind, code)
	}
	return id, nil
}
