package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"salone/internal/domain"
)

type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) GetActive(ctx context.Context, id int64) (*domain.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}

func (m *MockServiceRepository) ListActiveByCategory(ctx context.Context) ([]domain.ServiceCategory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ServiceCategory), args.Error(1)
}

type MockStaffRepository struct {
	mock.Mock
}

func (m *MockStaffRepository) GetActive(ctx context.Context, id int64) (*domain.StaffMember, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StaffMember), args.Error(1)
}

func (m *MockStaffRepository) FirstActive(ctx context.Context) (*domain.StaffMember, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StaffMember), args.Error(1)
}

func TestActiveService(t *testing.T) {
	ctx := context.Background()
	services := new(MockServiceRepository)
	staff := new(MockStaffRepository)
	svc := NewService(services, staff)

	services.On("GetActive", ctx, int64(1)).
		Return(&domain.Service{ID: 1, Name: "Pedicure completo", IsActive: true}, nil)

	got, err := svc.ActiveService(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	services.AssertExpectations(t)
}

func TestActiveServiceNotFound(t *testing.T) {
	ctx := context.Background()
	services := new(MockServiceRepository)
	svc := NewService(services, new(MockStaffRepository))

	services.On("GetActive", ctx, int64(42)).Return(nil, nil)

	_, err := svc.ActiveService(ctx, 42)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestActiveServiceRepoError(t *testing.T) {
	ctx := context.Background()
	services := new(MockServiceRepository)
	svc := NewService(services, new(MockStaffRepository))

	dbErr := errors.New("db down")
	services.On("GetActive", ctx, int64(1)).Return(nil, dbErr)

	_, err := svc.ActiveService(ctx, 1)
	assert.ErrorIs(t, err, dbErr)
}

func TestActiveStaffByID(t *testing.T) {
	ctx := context.Background()
	staff := new(MockStaffRepository)
	svc := NewService(new(MockServiceRepository), staff)

	staff.On("GetActive", ctx, int64(7)).
		Return(&domain.StaffMember{ID: 7, Name: "Operatrice", IsActive: true}, nil)

	got, err := svc.ActiveStaff(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ID)
	staff.AssertNotCalled(t, "FirstActive", ctx)
}

func TestActiveStaffByIDNotFound(t *testing.T) {
	ctx := context.Background()
	staff := new(MockStaffRepository)
	svc := NewService(new(MockServiceRepository), staff)

	staff.On("GetActive", ctx, int64(7)).Return(nil, nil)

	_, err := svc.ActiveStaff(ctx, 7)
	assert.ErrorIs(t, err, ErrStaffNotFound)
}

func TestActiveStaffDefaultsToFirst(t *testing.T) {
	ctx := context.Background()
	staff := new(MockStaffRepository)
	svc := NewService(new(MockServiceRepository), staff)

	staff.On("FirstActive", ctx).
		Return(&domain.StaffMember{ID: 3, Name: "Operatrice", IsActive: true}, nil)

	got, err := svc.ActiveStaff(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.ID)
	staff.AssertNotCalled(t, "GetActive", ctx, int64(0))
}

func TestActiveStaffNoneAvailable(t *testing.T) {
	ctx := context.Background()
	staff := new(MockStaffRepository)
	svc := NewService(new(MockServiceRepository), staff)

	staff.On("FirstActive", ctx).Return(nil, nil)

	_, err := svc.ActiveStaff(ctx, 0)
	assert.ErrorIs(t, err, ErrNoStaffAvailable)
}

func TestListCatalog(t *testing.T) {
	ctx := context.Background()
	services := new(MockServiceRepository)
	svc := NewService(services, new(MockStaffRepository))

	cats := []domain.ServiceCategory{
		{ID: 1, Name: "Viso", Slug: "viso", SortOrder: 1},
		{ID: 2, Name: "Mani", Slug: "mani", SortOrder: 2},
	}
	services.On("ListActiveByCategory", ctx).Return(cats, nil)

	got, err := svc.ListCatalog(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "viso", got[0].Slug)
}
