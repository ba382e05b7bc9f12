package catalog

import (
	"context"

	"salone/internal/domain"
)

type ServiceRepository interface {
	GetActive(ctx context.Context, id int64) (*domain.Service, error)
	ListActiveByCategory(ctx context.Context) ([]domain.ServiceCategory, error)
}

type StaffRepository interface {
	GetActive(ctx context.Context, id int64) (*domain.StaffMember, error)
	FirstActive(ctx context.Context) (*domain.StaffMember, error)
}
