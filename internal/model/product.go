package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a catalog item.
type Product struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"size:255;not null;index"`
	Description string          `json:"description" gorm:"size:2000"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(20,2);not null"`
	Stock       int             `json:"stock" gorm:"not null;default:0"`
	CategoryID  *uint           `json:"category_id" gorm:"index"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	// Relations
	Category *Category `json:"-" gorm:"foreignKey:CategoryID"`
}

// CategoryName returns the joined category name, or "" when the product is
// uncategorized.
func (p *Product) CategoryName() string {
	if p.Category == nil {
		return ""
	}
	return p.Category.Name
}
