package model

// Category is a storefront product category. The set is fixed and seeded at
// install time; there are no category management endpoints.
type Category struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Slug        string `json:"slug" gorm:"uniqueIndex;size:64;not null"`
	Name        string `json:"name" gorm:"size:255;not null"`
	Description string `json:"description" gorm:"size:500"`
	Icon        string `json:"icon" gorm:"size:16"`
}
