package services

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estatesandstands/estates-service/internal/dtos"
	"github.com/estatesandstands/estates-service/internal/utils"
)

type recordingNotifier struct {
	calls []dtos.BookingResponse
	reqs  []dtos.BookingRequest
	err   error
}

func (n *recordingNotifier) NotifyBooking(_ context.Context, req dtos.BookingRequest, conf dtos.BookingResponse) error {
	n.reqs = append(n.reqs, req)
	n.calls = append(n.calls, conf)
	return n.err
}

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

var referencePattern = regexp.MustCompile(`^BK-\d{14}$`)

func TestBookSucceeds(t *testing.T) {
	n := &recordingNotifier{}
	svc := NewBookingService(n, fixedClock(time.Date(2024, 4, 7, 9, 5, 3, 0, time.Local)))

	got, err := svc.Book(context.Background(), dtos.BookingRequest{
		Name: "Jane", Phone: "555-1111", VisitDate: "2024-05-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "Thank you Jane. Your consultation is booked for 2024-05-01.", got.Message)
	assert.Equal(t, "BK-20240407090503", got.Reference)
	assert.Regexp(t, referencePattern, got.Reference)

	require.Len(t, n.calls, 1)
	assert.Equal(t, *got, n.calls[0])
}

func TestBookUsesWallClockByDefault(t *testing.T) {
	got, err := NewBookingService(nil, nil).Book(context.Background(), dtos.BookingRequest{
		Name: "Jane", Phone: "555-1111", VisitDate: "2024-05-01",
	})
	require.NoError(t, err)
	assert.Regexp(t, referencePattern, got.Reference)
}

func TestBookTrimsFields(t *testing.T) {
	n := &recordingNotifier{}
	svc := NewBookingService(n, fixedClock(time.Date(2025, 1, 2, 3, 4, 5, 0, time.Local)))

	got, err := svc.Book(context.Background(), dtos.BookingRequest{
		Name: "  Jane Doe ", Phone: "\t555-1111\n", VisitDate: " 2025-12-31 ",
	})
	require.NoError(t, err)
	assert.Equal(t, "Thank you Jane Doe. Your consultation is booked for 2025-12-31.", got.Message)
	require.Len(t, n.reqs, 1)
	assert.Equal(t, "555-1111", n.reqs[0].Phone)
}

func TestBookMissingFields(t *testing.T) {
	svc := NewBookingService(nil, nil)

	cases := map[string]dtos.BookingRequest{
		"empty name":           {Name: "", Phone: "555-1111", VisitDate: "2024-05-01"},
		"blank phone":          {Name: "Jane", Phone: "   ", VisitDate: "2024-05-01"},
		"empty date":           {Name: "Jane", Phone: "555-1111", VisitDate: ""},
		"all empty":            {},
		"missing and bad date": {Name: "", Phone: "555-1111", VisitDate: "not-a-date"},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Book(context.Background(), req)
			require.ErrorIs(t, err, utils.ErrMissingBookingField)
		})
	}
}

func TestBookInvalidDates(t *testing.T) {
	svc := NewBookingService(nil, nil)

	for _, date := range []string{
		"2024-02-30",
		"2023-02-29",
		"2024-13-01",
		"2024-00-10",
		"2024-5-01",
		"2024-05-1",
		"24-05-01",
		"2024/05/01",
		"01-05-2024",
		"2024-05-01T10:00:00",
		"tomorrow",
	} {
		t.Run(date, func(t *testing.T) {
			_, err := svc.Book(context.Background(), dtos.BookingRequest{
				Name: "Jane", Phone: "555-1111", VisitDate: date,
			})
			require.ErrorIs(t, err, utils.ErrInvalidDateFormat)
		})
	}
}

func TestBookAcceptsLeapDay(t *testing.T) {
	_, err := NewBookingService(nil, nil).Book(context.Background(), dtos.BookingRequest{
		Name: "Jane", Phone: "555-1111", VisitDate: "2024-02-29",
	})
	require.NoError(t, err)
}

func TestBookNotifierFailureDoesNotFailBooking(t *testing.T) {
	n := &recordingNotifier{err: errors.New("smtp down")}
	got, err := NewBookingService(n, nil).Book(context.Background(), dtos.BookingRequest{
		Name: "Jane", Phone: "555-1111", VisitDate: "2024-05-01",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, got.Reference)
	assert.Len(t, n.calls, 1)
}

func TestBookNotifierNotCalledOnFailure(t *testing.T) {
	n := &recordingNotifier{}
	_, err := NewBookingService(n, nil).Book(context.Background(), dtos.BookingRequest{
		Name: "Jane", Phone: "555-1111", VisitDate: "2024-02-30",
	})
	require.Error(t, err)
	assert.Empty(t, n.calls)
}
