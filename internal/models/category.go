package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"

	CategoryNameMaxLength = 100
)

var (
	ErrInvalidCategoryType = errors.New("invalid category type")
	ErrCategoryNameEmpty   = errors.New("category name is required")
)

func (t CategoryType) IsValid() bool {
	switch t {
	case CategoryTypeIncome, CategoryTypeExpense:
		return true
	default:
		return false
	}
}

// Category is a user owned label for transactions. Names are unique per user
type Category struct {
	ID        uuid.UUID    `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex:idx_categories_user_name" json:"user_id"`
	Name      string       `gorm:"type:varchar(100);not null;uniqueIndex:idx_categories_user_name" json:"name"`
	Type      CategoryType `gorm:"type:varchar(10);not null" json:"type"`
	CreatedAt time.Time    `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time    `gorm:"not null" json:"updated_at"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}

	return c.Validate()
}

func (c *Category) BeforeUpdate(tx *gorm.DB) error {
	c.UpdatedAt = time.Now()
	return c.Validate()
}

func (c *Category) Validate() error {
	if c.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	name := strings.TrimSpace(c.Name)
	if name == "" {
		return ErrCategoryNameEmpty
	}

	if len(name) > CategoryNameMaxLength {
		return errors.New("category name too long")
	}

	if !c.Type.IsValid() {
		return ErrInvalidCategoryType
	}

	return nil
}

func (c *Category) TableName() string {
	return "categories"
}
