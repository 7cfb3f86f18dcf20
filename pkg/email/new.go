package email

import (
	"bytes"
	"fmt"
	"html/template"
)

// NewEmail renders the template for e.TemplateType with data and returns the
// ready-to-send email.
func NewEmail(e EmailMeta, data interface{}) (Email, error) {
	tmpl, err := getEmailTemplate(e.TemplateType)
	if err != nil {
		return Email{}, err
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return Email{}, err
	}

	return Email{
		Recipient: e.Recipient,
		CC:        e.CC,
		Subject:   getEmailSubject(e.TemplateType, data),
		Body:      body.String(),
	}, nil
}

// Return raw template for email
func getEmailTemplate(templateType string) (*template.Template, error) {
	tmplFile := fmt.Sprintf("%s.tmpl", templateType)
	tmplPath := fmt.Sprintf("templates/%s", tmplFile)
	return template.ParseFS(emailTemplates, tmplPath)
}

// Return email subject
func getEmailSubject(templateType string, data interface{}) string {
	switch templateType {
	case ScoreReportTemplate:
		d, ok := data.(ScoreReport)
		if !ok {
			return "Your SkyScore is Ready!"
		}
		return fmt.Sprintf("🎉 Your SkyScore is %d! You're %s %s", d.Score, d.Article, d.Archetype)
	}
	return ""
}
