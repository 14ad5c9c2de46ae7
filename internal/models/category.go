package models

import "gorm.io/gorm"

// Category is a shared, global taxonomy entry. Any authenticated user may
// create one; there are no deletion semantics.
type Category struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;type:varchar(100);not null"`
	Type string `json:"type" gorm:"type:varchar(50)"`
	gorm.Model
}
