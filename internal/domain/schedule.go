package domain

import "time"

// WeeklySchedule holds the salon's opening hours for one day of the week
// (0=Sunday..6=Saturday). A missing row means the salon is closed that day.
// LunchStart/LunchEnd override the global lunch window from settings.
type WeeklySchedule struct {
	ID         int64     `json:"id" gorm:"primaryKey"`
	DayOfWeek  int       `json:"day_of_week" gorm:"uniqueIndex"`
	IsClosed   bool      `json:"is_closed"`
	OpenTime   *string   `json:"open_time,omitempty"`  // HH:mm local
	CloseTime  *string   `json:"close_time,omitempty"` // HH:mm local
	LunchStart *string   `json:"lunch_start,omitempty"`
	LunchEnd   *string   `json:"lunch_end,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (WeeklySchedule) TableName() string { return "weekly_schedule" }
