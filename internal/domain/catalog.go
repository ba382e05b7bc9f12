package domain

import "time"

type PriceType string

const (
	PriceFixed PriceType = "FIXED"
	PriceRange PriceType = "RANGE"
)

type ServiceCategory struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug" gorm:"uniqueIndex"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`

	Services []Service `json:"services,omitempty" gorm:"foreignKey:CategoryID"`
}

func (ServiceCategory) TableName() string { return "service_categories" }

// Service is a catalog entry. BufferMin is the per-service cleanup/prep time
// appended after the service; nil falls back to the settings default.
type Service struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	CategoryID  int64     `json:"category_id" gorm:"index"`
	Name        string    `json:"name"`
	DurationMin int       `json:"duration_min"`
	BufferMin   *int      `json:"buffer_min,omitempty"`
	PriceType   PriceType `json:"price_type"`
	PriceFrom   float64   `json:"price_from"`
	PriceTo     *float64  `json:"price_to,omitempty"`
	IsFeatured  bool      `json:"is_featured"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Category *ServiceCategory `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
}

func (Service) TableName() string { return "services" }

// EffectiveBuffer resolves the buffer override chain: service value first,
// then the settings default.
func (s Service) EffectiveBuffer(settings BusinessSettings) int {
	if s.BufferMin != nil {
		return *s.BufferMin
	}
	return settings.DefaultBufferMin
}
