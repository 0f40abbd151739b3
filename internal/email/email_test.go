package email

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStatusChangeEmail(t *testing.T) {
	msg, err := NewStatusChangeEmail("jane@example.com", StatusChangeData{
		Name:          "Jane",
		JobTitle:      "Go Developer",
		CompanyName:   "Acme <Corp>",
		Status:        "ACCEPTED",
		ApplicationID: "app-1",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"jane@example.com"}, msg.To)
	assert.Equal(t, "Your application is accepted", msg.Subject)
	assert.Contains(t, msg.Body, `for "Go Developer" at Acme <Corp> is now ACCEPTED`)
	assert.Contains(t, msg.HTMLBody, "Acme &lt;Corp&gt;")
}

func TestNewGomailSender_RequiresHost(t *testing.T) {
	_, err := NewGomailSender(Config{FromEmail: "no-reply@example.com"})
	assert.Error(t, err)

	sender, err := NewGomailSender(Config{Host: "smtp.example.com", Port: 587, FromEmail: "no-reply@example.com"})
	require.NoError(t, err)
	assert.NotNil(t, sender)
}

func TestGomailSender_CancelledContext(t *testing.T) {
	sender, err := NewGomailSender(Config{Host: "127.0.0.1", Port: 1, FromEmail: "no-reply@example.com"})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = sender.Send(ctx, &Email{To: []string{"jane@example.com"}, Subject: "x", Body: "y"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLogSender(t *testing.T) {
	s := NewLogSender()
	assert.NoError(t, s.Send(context.Background(), &Email{To: []string{"jane@example.com"}, Subject: "hi"}))
	assert.Error(t, s.Send(context.Background(), &Email{}))
}
