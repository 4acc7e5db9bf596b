package mailer

import (
	"encoding/base64"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/m04kA/SMC-DeliveryBooking/internal/domain"
)

// Client клиент отправки писем поставщикам через SendGrid
type Client struct {
	apiKey    string
	fromEmail string
	fromName  string
	enabled   bool
	log       Logger
}

// NewClient создает новый экземпляр почтового клиента
func NewClient(apiKey, fromEmail, fromName string, enabled bool, log Logger) *Client {
	return &Client{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
		enabled:   enabled && apiKey != "" && fromEmail != "",
		log:       log,
	}
}

// SendBookingConfirmation отправляет подтверждение бронирования с PDF талоном.
// Отправка best-effort: вызывающая сторона логирует ошибку, но бронирование
// уже сохранено и не откатывается.
func (c *Client) SendBookingConfirmation(res *domain.Reservation) error {
	if !c.enabled {
		return ErrDisabled
	}

	subject := fmt.Sprintf("Delivery slot confirmed: %s %s", dateOnly(res.Date), firstSlot(res))
	plain := fmt.Sprintf(
		"Hello %s,\n\n"+
			"Your delivery slot has been booked.\n\n"+
			"Booking code: %s\n"+
			"Date: %s\n"+
			"Time: %s\n"+
			"Pallets: %d\n"+
			"Orders: %s\n\n"+
			"Please have the attached booking slip ready at the gate.\n",
		res.SupplierName, res.Code, dateOnly(res.Date), res.OccupiedTime, res.Units, res.OrderRefs,
	)

	message := c.newMessage(res, subject, plain)

	slip, err := buildSlipPDF(res)
	if err != nil {
		// талон не критичен, письмо уходит без вложения
		c.log.Warn("mailer: booking slip generation failed for %s: %v", res.Code, err)
	} else {
		attachment := mail.NewAttachment()
		attachment.SetContent(base64.StdEncoding.EncodeToString(slip))
		attachment.SetType("application/pdf")
		attachment.SetFilename(fmt.Sprintf("booking-%s.pdf", res.Code))
		attachment.SetDisposition("attachment")
		message.AddAttachment(attachment)
	}

	return c.send(message, res.SupplierEmail, subject)
}

// SendBookingReminder отправляет напоминание о завтрашней поставке
func (c *Client) SendBookingReminder(res *domain.Reservation) error {
	if !c.enabled {
		return ErrDisabled
	}

	subject := fmt.Sprintf("Delivery reminder: tomorrow %s", firstSlot(res))
	plain := fmt.Sprintf(
		"Hello %s,\n\n"+
			"Reminder: your delivery slot is tomorrow.\n\n"+
			"Booking code: %s\n"+
			"Date: %s\n"+
			"Time: %s\n"+
			"Pallets: %d\n"+
			"Orders: %s\n",
		res.SupplierName, res.Code, dateOnly(res.Date), res.OccupiedTime, res.Units, res.OrderRefs,
	)

	return c.send(c.newMessage(res, subject, plain), res.SupplierEmail, subject)
}

func (c *Client) newMessage(res *domain.Reservation, subject, plain string) *mail.SGMailV3 {
	from := mail.NewEmail(c.fromName, c.fromEmail)
	to := mail.NewEmail(res.SupplierName, res.SupplierEmail)
	html := "<pre>" + plain + "</pre>"
	return mail.NewSingleEmail(from, subject, to, plain, html)
}

func (c *Client) send(message *mail.SGMailV3, toEmail, subject string) error {
	client := sendgrid.NewSendClient(c.apiKey)

	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf("%w: sendgrid returned status %d: %s", ErrSendFailed, response.StatusCode, response.Body)
	}

	c.log.Info("mailer: email sent to %s (subject=%q)", toEmail, subject)
	return nil
}

// dateOnly обрезает суффикс полуночи у даты хранилища
func dateOnly(stored string) string {
	if len(stored) > len(domain.DateFormat) {
		return stored[:len(domain.DateFormat)]
	}
	return stored
}

func firstSlot(res *domain.Reservation) string {
	slots := res.SlotTimes()
	if len(slots) == 0 {
		return res.OccupiedTime
	}
	return slots[0].String()
}
