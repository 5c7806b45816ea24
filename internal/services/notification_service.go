package services

import (
	"context"
	"fmt"
	"html"
	"net/http"
	"time"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/estatesandstands/estates-service/internal/dtos"
)

// HTML template for the internal booking notification e-mail.
const bookingNotificationEmailHTML = `<!DOCTYPE html>
<html>
<head>
<style>
  body { font-family: monospace; line-height: 1.5; }
  .container { border: 1px solid #ccc; padding: 15px; max-width: 600px; }
  h2 { margin-top: 0; }
  ul { list-style: none; padding: 0; }
  li { margin-bottom: 5px; }
</style>
</head>
<body>
  <div class="container">
    <h2>New Site Visit Booking</h2>
    <ul>
      <li><strong>Reference:</strong> %s</li>
      <li><strong>Name:</strong> %s</li>
      <li><strong>Phone:</strong> %s</li>
      <li><strong>Visit date:</strong> %s</li>
      <li><strong>Received (UTC):</strong> %s</li>
    </ul>
  </div>
</body>
</html>`

// BookingNotifier tells the sales team about a confirmed visit.
type BookingNotifier interface {
	NotifyBooking(ctx context.Context, req dtos.BookingRequest, conf dtos.BookingResponse) error
}

// ------------------------------------------------------------------
// no-op
// ------------------------------------------------------------------

type noopBookingNotifier struct{}

func NewNoopBookingNotifier() BookingNotifier {
	return noopBookingNotifier{}
}

func (noopBookingNotifier) NotifyBooking(context.Context, dtos.BookingRequest, dtos.BookingResponse) error {
	return nil
}

// ------------------------------------------------------------------
// SendGrid
// ------------------------------------------------------------------

// EmailSender is the subset of *sendgrid.Client the notifier uses.
type EmailSender interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

type SendgridNotifierConfig struct {
	OrganizationName string
	FromEmail        string
	ToEmail          string
}

type sendgridBookingNotifier struct {
	cfg    SendgridNotifierConfig
	client EmailSender
}

func NewSendgridBookingNotifier(apiKey string, cfg SendgridNotifierConfig) BookingNotifier {
	return NewBookingNotifierWithSender(sendgrid.NewSendClient(apiKey), cfg)
}

// NewBookingNotifierWithSender lets tests substitute the SendGrid client.
func NewBookingNotifierWithSender(client EmailSender, cfg SendgridNotifierConfig) BookingNotifier {
	return &sendgridBookingNotifier{cfg: cfg, client: client}
}

func (n *sendgridBookingNotifier) NotifyBooking(
	ctx context.Context,
	req dtos.BookingRequest,
	conf dtos.BookingResponse,
) error {
	from := mail.NewEmail(n.cfg.OrganizationName+" Booking-Bot", n.cfg.FromEmail)
	to := mail.NewEmail(n.cfg.OrganizationName+" Sales", n.cfg.ToEmail)

	subject := fmt.Sprintf("[Booking][%s] %s on %s", conf.Reference, req.Name, req.VisitDate)
	plainTextContent := fmt.Sprintf(
		"A site visit was booked.\n\nReference: %s\nName: %s\nPhone: %s\nVisit date: %s",
		conf.Reference, req.Name, req.Phone, req.VisitDate,
	)
	htmlContent := fmt.Sprintf(
		bookingNotificationEmailHTML,
		html.EscapeString(conf.Reference),
		html.EscapeString(req.Name),
		html.EscapeString(req.Phone),
		html.EscapeString(req.VisitDate),
		time.Now().UTC().Format(time.RFC1123Z),
	)

	msg := mail.NewSingleEmail(from, subject, to, plainTextContent, htmlContent)
	resp, err := n.client.SendWithContext(ctx, msg)
	if err != nil {
		return err
	}
	if resp != nil && resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sendgrid returned status %d", resp.StatusCode)
	}
	return nil
}
