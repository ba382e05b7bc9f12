package domain

import "time"

// BusinessSettings is a singleton row, created lazily with defaults on first
// access. Mutated only by administrative tooling, never by the booking flow.
type BusinessSettings struct {
	ID               int64     `json:"id" gorm:"primaryKey"`
	Timezone         string    `json:"timezone"`
	LeadTimeMin      int       `json:"lead_time_min"`
	DefaultBufferMin int       `json:"default_buffer_min"`
	CancelLimitHours int       `json:"cancel_limit_hours"`
	LunchEnabled     bool      `json:"lunch_enabled"`
	LunchStart       *string   `json:"lunch_start,omitempty"` // HH:mm local
	LunchEnd         *string   `json:"lunch_end,omitempty"`   // HH:mm local
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (BusinessSettings) TableName() string { return "business_settings" }

func DefaultSettings() BusinessSettings {
	return BusinessSettings{
		Timezone:         "Europe/Rome",
		LeadTimeMin:      120,
		DefaultBufferMin: 10,
		CancelLimitHours: 24,
		LunchEnabled:     false,
	}
}
