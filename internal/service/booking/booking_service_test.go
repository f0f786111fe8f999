package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/siliguripickdrop/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Insert(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) FindAll(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, booking *domain.Booking) bool {
	args := m.Called(ctx, booking)
	return args.Bool(0)
}

func validInput() SubmitBookingInput {
	return SubmitBookingInput{
		Name:           "Rajesh Kumar",
		Phone:          "+91-9876543210",
		ServiceType:    "airport-pickup",
		PickupLocation: "Siliguri City Center",
		DropLocation:   "Bagdogra Airport (IXB)",
		Date:           "2025-01-10",
	}
}

func TestBookingService_Submit_Success(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	mockNotifier := &MockNotifier{}
	service := NewBookingService(mockRepo, mockNotifier)

	ctx := context.Background()
	var stored *domain.Booking
	mockRepo.On("Insert", ctx, mock.AnythingOfType("*domain.Booking")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*domain.Booking) }).
		Return(nil).Once()
	mockNotifier.On("Notify", ctx, mock.AnythingOfType("*domain.Booking")).Return(true).Once()

	result, err := service.Submit(ctx, validInput())

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.True(t, result.Success)
	assert.True(t, result.EmailSent)
	assert.Equal(t, confirmationMessage, result.Message)

	_, parseErr := uuid.Parse(result.BookingID)
	assert.NoError(t, parseErr)

	assert.NotNil(t, stored)
	assert.Equal(t, result.BookingID, stored.BookingID)
	assert.Equal(t, domain.BookingStatusPending, stored.Status)
	assert.Equal(t, "Rajesh Kumar", stored.Name)
	assert.False(t, stored.CreatedAt.IsZero())
	assert.Equal(t, stored.CreatedAt, stored.UpdatedAt)

	mockRepo.AssertExpectations(t)
	mockNotifier.AssertExpectations(t)
}

func TestBookingService_Submit_GeneratesUniqueIDs(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	mockNotifier := &MockNotifier{}
	service := NewBookingService(mockRepo, mockNotifier)

	ctx := context.Background()
	mockRepo.On("Insert", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)
	mockNotifier.On("Notify", ctx, mock.AnythingOfType("*domain.Booking")).Return(true)

	first, err := service.Submit(ctx, validInput())
	assert.NoError(t, err)
	second, err := service.Submit(ctx, validInput())
	assert.NoError(t, err)

	assert.NotEqual(t, first.BookingID, second.BookingID)
}

func TestBookingService_Submit_ValidationErrors(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*SubmitBookingInput)
		field  string
	}{
		{"missing name", func(i *SubmitBookingInput) { i.Name = "" }, "name"},
		{"missing phone", func(i *SubmitBookingInput) { i.Phone = "" }, "phone"},
		{"missing service_type", func(i *SubmitBookingInput) { i.ServiceType = "" }, "service_type"},
		{"missing pickup_location", func(i *SubmitBookingInput) { i.PickupLocation = "" }, "pickup_location"},
		{"missing drop_location", func(i *SubmitBookingInput) { i.DropLocation = "" }, "drop_location"},
		{"missing date", func(i *SubmitBookingInput) { i.Date = "" }, "date"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo := &MockBookingRepository{}
			mockNotifier := &MockNotifier{}
			service := NewBookingService(mockRepo, mockNotifier)

			input := validInput()
			tc.mutate(&input)

			result, err := service.Submit(context.Background(), input)

			assert.Nil(t, result)
			assert.Error(t, err)
			assert.True(t, domain.IsValidation(err))
			assert.Contains(t, err.Error(), tc.field)

			mockRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
			mockNotifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
		})
	}
}

func TestBookingService_Submit_OptionalFieldsAllowedEmpty(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	mockNotifier := &MockNotifier{}
	service := NewBookingService(mockRepo, mockNotifier)

	ctx := context.Background()
	mockRepo.On("Insert", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil).Once()
	mockNotifier.On("Notify", ctx, mock.AnythingOfType("*domain.Booking")).Return(false).Once()

	input := validInput()
	input.Email = ""
	input.Time = ""
	input.Notes = ""

	result, err := service.Submit(ctx, input)

	assert.NoError(t, err)
	assert.True(t, result.Success)
}

func TestBookingService_Submit_PersistenceFailure(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	mockNotifier := &MockNotifier{}
	service := NewBookingService(mockRepo, mockNotifier)

	ctx := context.Background()
	storeErr := domain.PersistenceError{Op: "insert booking", Err: errors.New("server selection timeout")}
	mockRepo.On("Insert", ctx, mock.AnythingOfType("*domain.Booking")).Return(storeErr).Once()

	result, err := service.Submit(ctx, validInput())

	assert.Nil(t, result)
	assert.Error(t, err)
	assert.True(t, domain.IsPersistence(err))

	// The notifier must never run when persistence fails.
	mockNotifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestBookingService_Submit_NotificationFailure(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	mockNotifier := &MockNotifier{}
	service := NewBookingService(mockRepo, mockNotifier)

	ctx := context.Background()
	mockRepo.On("Insert", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil).Once()
	mockNotifier.On("Notify", ctx, mock.AnythingOfType("*domain.Booking")).Return(false).Once()

	result, err := service.Submit(ctx, validInput())

	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.False(t, result.EmailSent)
	assert.NotEmpty(t, result.BookingID)

	mockRepo.AssertExpectations(t)
	mockNotifier.AssertExpectations(t)
}

func TestBookingService_List(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	service := NewBookingService(mockRepo, &MockNotifier{})

	ctx := context.Background()
	stored := []domain.Booking{
		{BookingID: "b-1", Name: "Rajesh Kumar", Status: domain.BookingStatusPending},
		{BookingID: "b-2", Name: "Priya Sharma", Status: domain.BookingStatusPending},
	}
	mockRepo.On("FindAll", ctx).Return(stored, nil).Once()

	bookings, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Equal(t, stored, bookings)
	mockRepo.AssertExpectations(t)
}

func TestBookingService_List_PersistenceFailure(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	service := NewBookingService(mockRepo, &MockNotifier{})

	ctx := context.Background()
	storeErr := domain.PersistenceError{Op: "find bookings", Err: errors.New("connection refused")}
	mockRepo.On("FindAll", ctx).Return(nil, storeErr).Once()

	bookings, err := service.List(ctx)

	assert.Nil(t, bookings)
	assert.True(t, domain.IsPersistence(err))
	mockRepo.AssertExpectations(t)
}
