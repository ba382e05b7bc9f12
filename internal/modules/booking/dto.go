package booking

type CreateBookingRequest struct {
	ServiceID int64   `json:"service_id" binding:"required"`
	StaffID   int64   `json:"staff_id"`
	Date      string  `json:"date" binding:"required"`
	Time      string  `json:"time" binding:"required"`
	FullName  string  `json:"full_name" binding:"required,min=2"`
	Phone     string  `json:"phone" binding:"required,min=6"`
	Email     *string `json:"email,omitempty" binding:"omitempty,email"`
	Notes     *string `json:"notes,omitempty"`
}

type RescheduleRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}
