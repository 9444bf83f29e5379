package service

import (
	"context"
	"fmt"
	"time"

	"gopkg.in/gomail.v2"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewEmailService(host string, port int, username, password, from string) EmailService {
	return &emailService{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *emailService) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email via gomail: %w", err)
	}
	return nil
}

func (s *emailService) SendOrderReceipt(ctx context.Context, to, clientName, orderNumber string, totalCents int64) error {
	body := fmt.Sprintf("Hello %s,\n\nYour order %s is complete. Total: %.2f.\n\nThank you for your business.",
		clientName, orderNumber, float64(totalCents)/100)
	return s.send(to, fmt.Sprintf("Order %s completed", orderNumber), body)
}

func (s *emailService) SendReturnReminder(ctx context.Context, to, clientName, clothCode string, returnDate time.Time) error {
	body := fmt.Sprintf("Hello %s,\n\nA friendly reminder that the garment %s is due back on %s.",
		clientName, clothCode, returnDate.Format("2006-01-02"))
	return s.send(to, "Rental return reminder", body)
}

func (s *emailService) SendOverdueNotice(ctx context.Context, to, clientName, clothCode string, returnDate time.Time) error {
	body := fmt.Sprintf("Hello %s,\n\nThe garment %s was due back on %s and has not been returned. Please contact the branch.",
		clientName, clothCode, returnDate.Format("2006-01-02"))
	return s.send(to, "Rental overdue", body)
}
