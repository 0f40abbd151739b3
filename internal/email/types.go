package email

import "context"

// Email - письмо для отправки
type Email struct {
	To       []string
	Subject  string
	Body     string
	HTMLBody string
}

// Sender отправляет письма
type Sender interface {
	Send(ctx context.Context, email *Email) error
}

// Config - параметры SMTP
type Config struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}
