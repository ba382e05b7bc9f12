package catalog

import (
	"context"

	"salone/internal/domain"
)

type Service struct {
	services ServiceRepository
	staff    StaffRepository
}

func NewService(services ServiceRepository, staff StaffRepository) *Service {
	return &Service{services: services, staff: staff}
}

func (s *Service) ActiveService(ctx context.Context, id int64) (*domain.Service, error) {
	svc, err := s.services.GetActive(ctx, id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}
	return svc, nil
}

// ActiveStaff resolves an explicit id, or picks the earliest-created active
// member when id is 0.
func (s *Service) ActiveStaff(ctx context.Context, id int64) (*domain.StaffMember, error) {
	if id != 0 {
		m, err := s.staff.GetActive(ctx, id)
		if err != nil {
			return nil, err
		}
		if m == nil {
			return nil, ErrStaffNotFound
		}
		return m, nil
	}

	m, err := s.staff.FirstActive(ctx)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrNoStaffAvailable
	}
	return m, nil
}

func (s *Service) ListCatalog(ctx context.Context) ([]domain.ServiceCategory, error) {
	return s.services.ListActiveByCategory(ctx)
}
