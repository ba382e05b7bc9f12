package domain

import "time"

// Customer is deduplicated at booking time by phone or email match.
type Customer struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone" gorm:"index"`
	Email     *string   `json:"email,omitempty" gorm:"index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Customer) TableName() string { return "customers" }
