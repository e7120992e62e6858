package models

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"

	"gorm.io/gorm"
)

// DefaultColor is used for categories that are created without an
// explicit color.
const DefaultColor = "007AFF"

// Category represents a group of contacts, e.g. "Work" or "Family".
type Category struct {
	DefaultModel
	Name     string `example:"Work"`   // Name of the category. Not unique, two categories may share a name.
	ColorHex string `example:"007AFF"` // RGB color for charts, 6 hex digits
}

var (
	ErrCategoryNameEmpty    = errors.New("the category name must not be empty")
	ErrCategoryColorInvalid = errors.New("the category color must be a 6 digit hex RGB value")
)

var colorHexMatch = regexp.MustCompile("^[0-9a-fA-F]{6}$")

// BeforeSave sets defaults and verifies the category data.
//
// It trims whitespace from all strings and falls back to the
// default color when none is set.
func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return ErrCategoryNameEmpty
	}

	c.ColorHex = strings.TrimSpace(c.ColorHex)
	if c.ColorHex == "" {
		c.ColorHex = DefaultColor
	}

	if !colorHexMatch.MatchString(c.ColorHex) {
		return ErrCategoryColorInvalid
	}

	c.ColorHex = strings.ToUpper(c.ColorHex)
	return nil
}

// BeforeDelete clears the category reference on all contacts in the
// category. Contacts are never deleted with their category, they
// become uncategorized.
//
// gorm runs the hook and the deletion in the same transaction, so
// either both the deletion and the nullification are visible or
// neither is.
func (c *Category) BeforeDelete(tx *gorm.DB) error {
	return tx.Model(&Contact{}).Where("category_id = ?", c.ID).Update("category_id", nil).Error
}

// Contacts returns all contacts in this category.
func (c Category) Contacts(db *gorm.DB) ([]Contact, error) {
	var contacts []Contact

	err := db.Where("category_id = ?", c.ID).Find(&contacts).Error
	if err != nil {
		return []Contact{}, err
	}

	return contacts, nil
}

// ContactCount returns the number of contacts currently referencing
// this category. It is computed on read, not stored.
func (c Category) ContactCount(db *gorm.DB) (int64, error) {
	var count int64

	err := db.Model(&Contact{}).Where("category_id = ?", c.ID).Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

// Categories returns all categories, ordered by name.
func Categories(db *gorm.DB) ([]Category, error) {
	var categories []Category

	err := db.Order("name ASC").Find(&categories).Error
	if err != nil {
		return []Category{}, err
	}

	return categories, nil
}

// Returns all categories on this instance for export
func (Category) Export() (json.RawMessage, error) {
	var categories []Category
	err := DB.Unscoped().Where(&Category{}).Find(&categories).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&categories)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
