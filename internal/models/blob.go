package models

import "time"

// CatalogBlob is a persisted key/value row. The whole persisted-entries log is
// stored under a single fixed key; the value is an opaque JSON document owned
// by the reconciler.
type CatalogBlob struct {
	Key       string    `json:"key" gorm:"type:text;primaryKey;column:key"`
	Value     string    `json:"value" gorm:"type:text;not null;column:value"`
	UpdatedAt time.Time `json:"updated_at" gorm:"type:datetime;default:CURRENT_TIMESTAMP;column:updated_at"`
}

// TableName overrides the default GORM table name
func (CatalogBlob) TableName() string {
	return "catalog_blobs"
}
