package model

import "time"

// User represents a registered storefront customer or administrator.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Name         string    `json:"name" gorm:"size:255;not null"`
	Phone        string    `json:"phone" gorm:"size:50"`
	Address      string    `json:"address" gorm:"size:500"`
	IsAdmin      bool      `json:"is_admin" gorm:"default:false"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Role returns the display role derived from the persisted is_admin column.
func (u *User) Role() string {
	if u.IsAdmin {
		return "admin"
	}
	return "customer"
}
