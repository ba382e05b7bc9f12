package catalog

import "errors"

var (
	ErrServiceNotFound  = errors.New("service not found or not active")
	ErrStaffNotFound    = errors.New("staff member not found or not active")
	ErrNoStaffAvailable = errors.New("no active staff available")
)
