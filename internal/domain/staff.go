package domain

import "time"

// StaffMember is one bookable operator. The salon typically runs with a
// single active member; availability is always computed per member.
type StaffMember struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (StaffMember) TableName() string { return "staff_members" }
