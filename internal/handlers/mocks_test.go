package handlers

import (
	"context"

	"dance_site_backend/internal/models"
	"dance_site_backend/internal/services"

	"github.com/stretchr/testify/mock"
)

type mockBookingService struct{ mock.Mock }

func (m *mockBookingService) CreateBooking(ctx context.Context, req services.CreateBookingRequest) (*models.Booking, error) {
	args := m.Called(ctx, req)
	b, _ := args.Get(0).(*models.Booking)
	return b, args.Error(1)
}

func (m *mockBookingService) GetBookingByID(ctx context.Context, id int64) (*models.Booking, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*models.Booking)
	return b, args.Error(1)
}

func (m *mockBookingService) GetBookings(ctx context.Context) ([]models.Booking, error) {
	args := m.Called(ctx)
	b, _ := args.Get(0).([]models.Booking)
	return b, args.Error(1)
}

func (m *mockBookingService) SearchBookings(ctx context.Context, filters models.BookingFilters) ([]models.Booking, error) {
	args := m.Called(ctx, filters)
	b, _ := args.Get(0).([]models.Booking)
	return b, args.Error(1)
}

func (m *mockBookingService) UpdateBooking(ctx context.Context, id int64, req services.UpdateBookingRequest) (*models.Booking, error) {
	args := m.Called(ctx, id, req)
	b, _ := args.Get(0).(*models.Booking)
	return b, args.Error(1)
}

func (m *mockBookingService) DeleteBooking(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockClientService struct{ mock.Mock }

func (m *mockClientService) CreateClient(ctx context.Context, req services.CreateClientRequest) (*models.Client, error) {
	args := m.Called(ctx, req)
	c, _ := args.Get(0).(*models.Client)
	return c, args.Error(1)
}

func (m *mockClientService) GetClientByID(ctx context.Context, id int64) (*models.Client, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*models.Client)
	return c, args.Error(1)
}

func (m *mockClientService) GetClients(ctx context.Context) ([]models.Client, error) {
	args := m.Called(ctx)
	c, _ := args.Get(0).([]models.Client)
	return c, args.Error(1)
}

func (m *mockClientService) UpdateClient(ctx context.Context, id int64, req services.UpdateClientRequest) (*models.Client, error) {
	args := m.Called(ctx, id, req)
	c, _ := args.Get(0).(*models.Client)
	return c, args.Error(1)
}

func (m *mockClientService) DeleteClient(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockTestimonialService struct{ mock.Mock }

func (m *mockTestimonialService) CreateTestimonial(ctx context.Context, req services.CreateTestimonialRequest) (*models.Testimonial, error) {
	args := m.Called(ctx, req)
	t, _ := args.Get(0).(*models.Testimonial)
	return t, args.Error(1)
}

func (m *mockTestimonialService) GetTestimonialByID(ctx context.Context, id int64) (*models.Testimonial, error) {
	args := m.Called(ctx, id)
	t, _ := args.Get(0).(*models.Testimonial)
	return t, args.Error(1)
}

func (m *mockTestimonialService) GetTestimonials(ctx context.Context, approved *bool) ([]models.Testimonial, error) {
	args := m.Called(ctx, approved)
	t, _ := args.Get(0).([]models.Testimonial)
	return t, args.Error(1)
}

func (m *mockTestimonialService) ApproveTestimonial(ctx context.Context, id int64) (*models.Testimonial, error) {
	args := m.Called(ctx, id)
	t, _ := args.Get(0).(*models.Testimonial)
	return t, args.Error(1)
}

func (m *mockTestimonialService) DeleteTestimonial(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockServiceOfferingService struct{ mock.Mock }

func (m *mockServiceOfferingService) CreateServiceOffering(ctx context.Context, req services.CreateServiceOfferingRequest) (*models.ServiceOffering, error) {
	args := m.Called(ctx, req)
	o, _ := args.Get(0).(*models.ServiceOffering)
	return o, args.Error(1)
}

func (m *mockServiceOfferingService) GetServiceOfferingByID(ctx context.Context, id int64) (*models.ServiceOffering, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*models.ServiceOffering)
	return o, args.Error(1)
}

func (m *mockServiceOfferingService) GetServiceOfferings(ctx context.Context, activeOnly bool) ([]models.ServiceOffering, error) {
	args := m.Called(ctx, activeOnly)
	o, _ := args.Get(0).([]models.ServiceOffering)
	return o, args.Error(1)
}

func (m *mockServiceOfferingService) UpdateServiceOffering(ctx context.Context, id int64, req services.UpdateServiceOfferingRequest) (*models.ServiceOffering, error) {
	args := m.Called(ctx, id, req)
	o, _ := args.Get(0).(*models.ServiceOffering)
	return o, args.Error(1)
}

func (m *mockServiceOfferingService) DeleteServiceOffering(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
