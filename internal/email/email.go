package email

import (
	"context"
	"fmt"
	"strings"

	"github.com/siliguripickdrop/backend/config"
	"github.com/siliguripickdrop/backend/internal/domain"
	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

const mailSubject = "New Booking Request - Siliguri Pick Drop"

// serviceLabels maps a service_type to its display label; unmapped
// values pass through raw.
var serviceLabels = map[string]string{
	"airport-pickup": "Airport Pickup (Bagdogra/IXB)",
	"airport-drop":   "Airport Drop (Bagdogra/IXB)",
	"njp-pickup":     "NJP Station Pickup",
	"njp-drop":       "NJP Station Drop",
}

func ServiceLabel(serviceType string) string {
	if label, ok := serviceLabels[serviceType]; ok {
		return label
	}
	return serviceType
}

// Sender emails the operator about new bookings over an SMTP-over-TLS
// session. Notify never returns an error: any transport or credential
// fault is logged and reported as false.
type Sender struct {
	host     string
	port     int
	user     string
	password string
}

func NewSender(cfg config.MailConfig) *Sender {
	return &Sender{
		host:     cfg.Host,
		port:     cfg.Port,
		user:     cfg.User,
		password: cfg.Password,
	}
}

func (s *Sender) Notify(ctx context.Context, booking *domain.Booking) bool {
	if s.user == "" || s.password == "" {
		logrus.Error("mail credentials not configured, skipping booking notification")
		return false
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", s.user)
	msg.SetHeader("To", s.user)
	msg.SetHeader("Subject", mailSubject)
	msg.SetBody("text/html", renderBookingHTML(booking))

	dialer := gomail.NewDialer(s.host, s.port, s.user, s.password)
	dialer.SSL = true

	if err := dialer.DialAndSend(msg); err != nil {
		logrus.WithError(err).WithField("booking_id", booking.BookingID).
			Error("failed to send booking notification")
		return false
	}
	logrus.WithField("booking_id", booking.BookingID).Info("booking notification sent")
	return true
}

func renderBookingHTML(b *domain.Booking) string {
	var sb strings.Builder
	sb.WriteString(`<html><body style="font-family: Arial, sans-serif; color: #333;">`)
	sb.WriteString(`<h2>New Booking Request</h2>`)
	writeField(&sb, "Booking ID", b.BookingID)
	writeField(&sb, "Customer Name", b.Name)
	writeField(&sb, "Phone Number", b.Phone)
	if b.Email != "" {
		writeField(&sb, "Email", b.Email)
	}
	writeField(&sb, "Service Type", ServiceLabel(b.ServiceType))
	writeField(&sb, "Pickup Location", b.PickupLocation)
	writeField(&sb, "Drop Location", b.DropLocation)
	writeField(&sb, "Travel Date", b.Date)
	if b.Time != "" {
		writeField(&sb, "Preferred Time", b.Time)
	}
	if b.Notes != "" {
		writeField(&sb, "Additional Notes", b.Notes)
	}
	writeField(&sb, "Submitted At", b.CreatedAt.Format("02 January 2006, 03:04 PM"))
	sb.WriteString(`<p style="color: #777;">Siliguri Pick Drop - Reliable Transport Service<br>`)
	sb.WriteString(`Please contact the customer to confirm the booking</p>`)
	sb.WriteString(`</body></html>`)
	return sb.String()
}

func writeField(sb *strings.Builder, label, value string) {
	fmt.Fprintf(sb, `<p><b>%s:</b> %s</p>`, label, value)
}
