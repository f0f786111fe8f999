package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/siliguripickdrop/backend/internal/domain"
	"github.com/siliguripickdrop/backend/internal/repository"
	"github.com/sirupsen/logrus"
)

const confirmationMessage = "Booking request submitted successfully! We will call you back soon."

type BookingUseCase interface {
	Submit(ctx context.Context, input SubmitBookingInput) (*SubmitResult, error)
	List(ctx context.Context) ([]domain.Booking, error)
}

// Notifier reports delivery as a boolean so a mail fault can never be
// mistaken for a request fault by callers.
type Notifier interface {
	Notify(ctx context.Context, booking *domain.Booking) bool
}

type SubmitBookingInput struct {
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	ServiceType    string `json:"service_type"`
	PickupLocation string `json:"pickup_location"`
	DropLocation   string `json:"drop_location"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	Notes          string `json:"notes"`
}

type SubmitResult struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	BookingID string `json:"booking_id"`
	EmailSent bool   `json:"email_sent"`
}

type BookingService struct {
	bookings repository.BookingRepository
	notifier Notifier
}

func NewBookingService(bookings repository.BookingRepository, notifier Notifier) *BookingService {
	return &BookingService{bookings: bookings, notifier: notifier}
}

func (s *BookingService) Submit(ctx context.Context, input SubmitBookingInput) (*SubmitResult, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		BookingID:      uuid.NewString(),
		Name:           input.Name,
		Phone:          input.Phone,
		Email:          input.Email,
		ServiceType:    input.ServiceType,
		PickupLocation: input.PickupLocation,
		DropLocation:   input.DropLocation,
		Date:           input.Date,
		Time:           input.Time,
		Notes:          input.Notes,
		Status:         domain.BookingStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.bookings.Insert(ctx, booking); err != nil {
		return nil, err
	}
	logrus.WithField("booking_id", booking.BookingID).Info("booking created")

	// Best effort: a failed notification never fails the submission and
	// is never retried.
	emailSent := s.notifier.Notify(ctx, booking)

	return &SubmitResult{
		Success:   true,
		Message:   confirmationMessage,
		BookingID: booking.BookingID,
		EmailSent: emailSent,
	}, nil
}

func (s *BookingService) List(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.FindAll(ctx)
}

// validateInput checks presence only. service_type, date and time stay
// unvalidated free text.
func validateInput(input SubmitBookingInput) error {
	required := []struct {
		field string
		value string
	}{
		{"name", input.Name},
		{"phone", input.Phone},
		{"service_type", input.ServiceType},
		{"pickup_location", input.PickupLocation},
		{"drop_location", input.DropLocation},
		{"date", input.Date},
	}
	for _, r := range required {
		if r.value == "" {
			return domain.ValidationError{Field: r.field, Msg: "is required"}
		}
	}
	return nil
}

var _ BookingUseCase = (*BookingService)(nil)
