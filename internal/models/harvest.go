package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// WorkerList is stored as a JSON array of strings so arbitrary UTF-8 names
// round-trip through the database unchanged.
type WorkerList []string

func (w WorkerList) Value() (driver.Value, error) {
	if w == nil {
		w = WorkerList{}
	}
	data, err := json.Marshal(w)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (w *WorkerList) Scan(value any) error {
	if value == nil {
		*w = WorkerList{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported worker list column type %T", value)
	}

	if len(data) == 0 {
		*w = WorkerList{}
		return nil
	}
	return json.Unmarshal(data, w)
}

func (w WorkerList) Contains(name string) bool {
	for _, n := range w {
		if n == name {
			return true
		}
	}
	return false
}

type Harvest struct {
	ID        uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string     `gorm:"not null" json:"name"`
	StartDate string     `gorm:"not null" json:"start_date"`
	Workers   WorkerList `gorm:"type:text;not null" json:"workers"`
}
