package services

import (
	"context"

	"dance_site_backend/internal/models"
	"dance_site_backend/internal/repositories"

	"github.com/stretchr/testify/mock"
)

type mockBookingRepo struct{ mock.Mock }

func (m *mockBookingRepo) CreateBooking(ctx context.Context, executor repositories.SQLExecutor, booking *models.Booking) (*models.Booking, error) {
	args := m.Called(ctx, executor, booking)
	b, _ := args.Get(0).(*models.Booking)
	return b, args.Error(1)
}

func (m *mockBookingRepo) GetBookingByID(ctx context.Context, id int64) (*models.Booking, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*models.Booking)
	return b, args.Error(1)
}

func (m *mockBookingRepo) GetBookings(ctx context.Context) ([]models.Booking, error) {
	args := m.Called(ctx)
	b, _ := args.Get(0).([]models.Booking)
	return b, args.Error(1)
}

func (m *mockBookingRepo) SearchBookings(ctx context.Context, filters models.BookingFilters) ([]models.Booking, error) {
	args := m.Called(ctx, filters)
	b, _ := args.Get(0).([]models.Booking)
	return b, args.Error(1)
}

func (m *mockBookingRepo) UpdateBooking(ctx context.Context, executor repositories.SQLExecutor, booking *models.Booking) (*models.Booking, error) {
	args := m.Called(ctx, executor, booking)
	if fn, ok := args.Get(0).(func(context.Context, repositories.SQLExecutor, *models.Booking) *models.Booking); ok {
		return fn(ctx, executor, booking), args.Error(1)
	}
	b, _ := args.Get(0).(*models.Booking)
	return b, args.Error(1)
}

func (m *mockBookingRepo) DeleteBooking(ctx context.Context, executor repositories.SQLExecutor, id int64) error {
	return m.Called(ctx, executor, id).Error(0)
}

type mockClientRepo struct{ mock.Mock }

func (m *mockClientRepo) CreateClient(ctx context.Context, executor repositories.SQLExecutor, client *models.Client) (int64, error) {
	args := m.Called(ctx, executor, client)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockClientRepo) GetClientByID(ctx context.Context, id int64) (*models.Client, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*models.Client)
	return c, args.Error(1)
}

func (m *mockClientRepo) ClientExists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockClientRepo) GetClients(ctx context.Context) ([]models.Client, error) {
	args := m.Called(ctx)
	c, _ := args.Get(0).([]models.Client)
	return c, args.Error(1)
}

func (m *mockClientRepo) UpdateClient(ctx context.Context, executor repositories.SQLExecutor, client *models.Client) error {
	return m.Called(ctx, executor, client).Error(0)
}

func (m *mockClientRepo) DeleteClient(ctx context.Context, executor repositories.SQLExecutor, id int64) error {
	return m.Called(ctx, executor, id).Error(0)
}

type mockOfferingRepo struct{ mock.Mock }

func (m *mockOfferingRepo) CreateServiceOffering(ctx context.Context, executor repositories.SQLExecutor, offering *models.ServiceOffering) (int64, error) {
	args := m.Called(ctx, executor, offering)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockOfferingRepo) GetServiceOfferingByID(ctx context.Context, id int64) (*models.ServiceOffering, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*models.ServiceOffering)
	return o, args.Error(1)
}

func (m *mockOfferingRepo) ServiceOfferingExists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockOfferingRepo) GetServiceOfferings(ctx context.Context, activeOnly bool) ([]models.ServiceOffering, error) {
	args := m.Called(ctx, activeOnly)
	o, _ := args.Get(0).([]models.ServiceOffering)
	return o, args.Error(1)
}

func (m *mockOfferingRepo) UpdateServiceOffering(ctx context.Context, executor repositories.SQLExecutor, offering *models.ServiceOffering) error {
	return m.Called(ctx, executor, offering).Error(0)
}

func (m *mockOfferingRepo) DeleteServiceOffering(ctx context.Context, executor repositories.SQLExecutor, id int64) error {
	return m.Called(ctx, executor, id).Error(0)
}

type mockTestimonialRepo struct{ mock.Mock }

func (m *mockTestimonialRepo) CreateTestimonial(ctx context.Context, executor repositories.SQLExecutor, t *models.Testimonial) (int64, error) {
	args := m.Called(ctx, executor, t)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockTestimonialRepo) GetTestimonialByID(ctx context.Context, id int64) (*models.Testimonial, error) {
	args := m.Called(ctx, id)
	t, _ := args.Get(0).(*models.Testimonial)
	return t, args.Error(1)
}

func (m *mockTestimonialRepo) GetTestimonials(ctx context.Context, approved *bool) ([]models.Testimonial, error) {
	args := m.Called(ctx, approved)
	t, _ := args.Get(0).([]models.Testimonial)
	return t, args.Error(1)
}

func (m *mockTestimonialRepo) SetTestimonialApproved(ctx context.Context, executor repositories.SQLExecutor, id int64, approved bool) error {
	return m.Called(ctx, executor, id, approved).Error(0)
}

func (m *mockTestimonialRepo) DeleteTestimonial(ctx context.Context, executor repositories.SQLExecutor, id int64) error {
	return m.Called(ctx, executor, id).Error(0)
}
