package model

// Setting is one key/value pair of the store configuration. All values are
// stored as strings, including booleans ("0"/"1") and numbers.
type Setting struct {
	Key   string `json:"key" gorm:"primaryKey;size:64"`
	Value string `json:"value" gorm:"size:2000;not null"`
}
