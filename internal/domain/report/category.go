package report

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const DefaultCategoryColor = "#007bff"

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

type Category struct {
	id          uint
	tenantID    uint
	name        string
	description string
	color       string
	createdAt   time.Time
}

func NewCategory(tenantID uint, name, description, color string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("category name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("category name cannot exceed 100 characters")
	}
	if color == "" {
		color = DefaultCategoryColor
	}
	if !hexColorRegex.MatchString(color) {
		return nil, fmt.Errorf("invalid colour %q, expected #rrggbb", color)
	}
	return &Category{
		tenantID:    tenantID,
		name:        name,
		description: description,
		color:       strings.ToLower(color),
		createdAt:   time.Now().UTC(),
	}, nil
}

func ReconstructCategory(id, tenantID uint, name, description, color string, createdAt time.Time) *Category {
	return &Category{id: id, tenantID: tenantID, name: name, description: description, color: color, createdAt: createdAt}
}

func (c *Category) ID() uint             { return c.id }
func (c *Category) TenantID() uint       { return c.tenantID }
func (c *Category) Name() string         { return c.name }
func (c *Category) Description() string  { return c.description }
func (c *Category) Color() string        { return c.color }
func (c *Category) CreatedAt() time.Time { return c.createdAt }

func (c *Category) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("category ID is already set")
	}
	c.id = id
	return nil
}
