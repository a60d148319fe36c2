// kv.go
package models

import "time"

// KVEntry is one row of the durable key-value store. Values are JSON
// strings owned by the repository layer; writes are unconditional
// last-write-wins.
type KVEntry struct {
	Key       string `gorm:"primaryKey"`
	Value     string
	UpdatedAt time.Time
}
