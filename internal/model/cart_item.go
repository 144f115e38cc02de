package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is one row of a user's cart. Carts are keyed by user so concurrent
// sessions never observe each other's items. Name and price are denormalized
// snapshots taken when the product is added.
type CartItem struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	UserID    uint            `json:"-" gorm:"not null;uniqueIndex:idx_cart_user_product"`
	ProductID uint            `json:"product_id" gorm:"not null;uniqueIndex:idx_cart_user_product"`
	Name      string          `json:"name" gorm:"size:255;not null"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(20,2);not null"`
	Quantity  int             `json:"quantity" gorm:"not null;default:1"`
	CreatedAt time.Time       `json:"-"`
	UpdatedAt time.Time       `json:"-"`
}

// Valid reports whether the row is structurally sound. Rows failing this check
// are dropped from responses rather than repaired.
func (i *CartItem) Valid() bool {
	return i.Name != "" && !i.Price.IsNegative() && i.Quantity >= 1
}
