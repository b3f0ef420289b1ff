package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// ExportReadyEmailData holds data for the export-ready email.
type ExportReadyEmailData struct {
	Email    string
	JobID    string
	Dataset  string
	CSVURL   string
	Checksum string
	Rows     int
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendExportReady(ctx context.Context, data *ExportReadyEmailData) error
}
