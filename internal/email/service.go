package email

import (
	"fmt"
	"net/smtp"
)

// Service handles email sending via SMTP
type Service struct {
	host string
	port string
	from string
}

// NewService creates a new email service
func NewService(host, port, from string) *Service {
	return &Service{
		host: host,
		port: port,
		from: from,
	}
}

// SendWelcome sends the newsletter welcome email with the signup discount
func (s *Service) SendWelcome(to, name string) error {
	subject := "Willkommen bei Casa Petrada – Ihr 15% Rabatt wartet"
	body := BuildWelcomeBody(name)
	return s.send(to, subject, body)
}

// SendContactAcknowledgement confirms that a contact message arrived
func (s *Service) SendContactAcknowledgement(to, contactSubject string) error {
	subject := "Wir haben Ihre Nachricht erhalten"
	body := BuildContactAckBody(contactSubject)
	return s.send(to, subject, body)
}

func (s *Service) send(to, subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n%s",
		s.from, to, subject, body)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	return smtp.SendMail(addr, nil, s.from, []string{to}, []byte(msg))
}
