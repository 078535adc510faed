// Package model defines database models for persistence layer.
package model

import "time"

// StorageItemModel represents the storage_items table: the flat namespace of
// collection keys the tracker persists into. Each row holds one collection's
// full JSON document, mirroring the original per-browser storage layout.
type StorageItemModel struct {
	Key       string    `gorm:"primaryKey;type:varchar(64)"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the StorageItemModel.
func (StorageItemModel) TableName() string {
	return "storage_items"
}
