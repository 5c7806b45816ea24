package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/estatesandstands/estates-service/internal/dtos"
	"github.com/estatesandstands/estates-service/internal/utils"
)

const (
	bookingReferencePrefix = "BK-"
	bookingReferenceLayout = "20060102150405"
)

// Clock abstracts wall-clock time for tests.
type Clock func() time.Time

type BookingService interface {
	Book(ctx context.Context, req dtos.BookingRequest) (*dtos.BookingResponse, error)
}

type bookingService struct {
	validate *validator.Validate
	notifier BookingNotifier
	now      Clock
}

func NewBookingService(notifier BookingNotifier, now Clock) BookingService {
	if notifier == nil {
		notifier = NewNoopBookingNotifier()
	}
	if now == nil {
		now = time.Now
	}
	return &bookingService{
		validate: validator.New(),
		notifier: notifier,
		now:      now,
	}
}

// Book validates a visit request and returns its confirmation. The reference
// is derived from the clock second, so two bookings in the same second share
// one; nothing is stored.
func (s *bookingService) Book(ctx context.Context, req dtos.BookingRequest) (*dtos.BookingResponse, error) {
	req = dtos.BookingRequest{
		Name:      strings.TrimSpace(req.Name),
		Phone:     strings.TrimSpace(req.Phone),
		VisitDate: strings.TrimSpace(req.VisitDate),
	}
	if err := s.checkRequest(req); err != nil {
		return nil, err
	}

	conf := &dtos.BookingResponse{
		Message: fmt.Sprintf(
			"Thank you %s. Your consultation is booked for %s.", req.Name, req.VisitDate,
		),
		Reference: bookingReferencePrefix + s.now().Format(bookingReferenceLayout),
	}

	if err := s.notifier.NotifyBooking(ctx, req, *conf); err != nil {
		utils.Logger.WithError(err).
			WithField("reference", conf.Reference).
			Warn("Booking notification failed")
	}
	return conf, nil
}

// checkRequest reports missing fields before a malformed date.
func (s *bookingService) checkRequest(req dtos.BookingRequest) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			return fmt.Errorf("%w: %s", utils.ErrMissingBookingField, fe.Field())
		}
	}
	return fmt.Errorf("%w: %q", utils.ErrInvalidDateFormat, req.VisitDate)
}
