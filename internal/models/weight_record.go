package models

// WeightRecord is one weighed delivery by a worker on a given day. WorkerName
// is denormalized on purpose: records outlive roster edits, and the rename
// reconciler copies them forward instead of rewriting history.
type WeightRecord struct {
	ID         uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	HarvestID  uint    `gorm:"not null;index" json:"harvest_id"`
	WorkerName string  `gorm:"not null" json:"worker_name"`
	Weight     float64 `gorm:"not null" json:"weight"`
	Date       string  `gorm:"not null;index" json:"date"` // "YYYY-MM-DD"
}
