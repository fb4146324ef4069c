package models

import "strings"

const (
	// DefaultCategoryIcon is used when a category is created without an icon.
	DefaultCategoryIcon = "bi-tag"

	// DefaultCategoryColor is used for categories without a color and for
	// expenses without a category in statistics.
	DefaultCategoryColor = "#6c757d"

	// UnclassifiedCategoryName labels expenses without a category in statistics.
	UnclassifiedCategoryName = "unclassified"
)

// Category is an expense label with display metadata.
type Category struct {
	ID        string
	Name      string
	Icon      string
	Color     string
	IsDefault bool
	CreatedAt int64
}

// Validate checks the name and fills display defaults.
func (c *Category) Validate() error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return ErrNameRequired
	}
	if len(c.Name) > 50 {
		return ErrNameTooLong
	}
	if c.Icon == "" {
		c.Icon = DefaultCategoryIcon
	}
	if c.Color == "" {
		c.Color = DefaultCategoryColor
	}
	return nil
}
