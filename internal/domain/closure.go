package domain

import "time"

// Closure is an ad-hoc blackout interval (holiday, staff absence),
// independent of the weekly schedule. Any overlap with a candidate slot
// removes it.
type Closure struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	StartAt   time.Time `json:"start_at" gorm:"index"`
	EndAt     time.Time `json:"end_at" gorm:"index"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (Closure) TableName() string { return "closures" }
