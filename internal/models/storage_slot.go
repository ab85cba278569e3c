package models

import "time"

// StorageSlot is one named blob in the Postgres-backed slot table.
type StorageSlot struct {
	Key       string    `gorm:"primaryKey;size:100" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
