package email

import (
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
)

// StatusChangeData - данные письма о смене статуса отклика
type StatusChangeData struct {
	Name          string
	JobTitle      string
	CompanyName   string
	Status        string
	ApplicationID string
}

const statusChangeText = `Hello {{.Name}},

Your application {{.ApplicationID}}{{if .JobTitle}} for "{{.JobTitle}}"{{end}}{{if .CompanyName}} at {{.CompanyName}}{{end}} is now {{.Status}}.

Job Portal`

const statusChangeHTML = `<p>Hello {{.Name}},</p>
<p>Your application <b>{{.ApplicationID}}</b>{{if .JobTitle}} for &laquo;{{.JobTitle}}&raquo;{{end}}{{if .CompanyName}} at {{.CompanyName}}{{end}} is now <b>{{.Status}}</b>.</p>
<p>Job Portal</p>`

var (
	statusChangeTextTpl = texttemplate.Must(texttemplate.New("status_change_text").Parse(statusChangeText))
	statusChangeHTMLTpl = htmltemplate.Must(htmltemplate.New("status_change_html").Parse(statusChangeHTML))
)

// NewStatusChangeEmail собирает письмо о смене статуса
func NewStatusChangeEmail(to string, data StatusChangeData) (*Email, error) {
	var text, html strings.Builder
	if err := statusChangeTextTpl.Execute(&text, data); err != nil {
		return nil, fmt.Errorf("failed to render text template: %w", err)
	}
	if err := statusChangeHTMLTpl.Execute(&html, data); err != nil {
		return nil, fmt.Errorf("failed to render html template: %w", err)
	}

	return &Email{
		To:       []string{to},
		Subject:  fmt.Sprintf("Your application is %s", strings.ToLower(data.Status)),
		Body:     text.String(),
		HTMLBody: html.String(),
	}, nil
}
