package services

import (
	"context"
	"fmt"
	"log/slog"

	"eventlineup/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *slog.Logger) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, logger: logger}
}

// SendExportReady sends the "export_ready" template to data.Email.
func (s *emailService) SendExportReady(ctx context.Context, data *domain.ExportReadyEmailData) error {
	if data == nil {
		return fmt.Errorf("export ready data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("export_ready", data)
	if err != nil {
		return fmt.Errorf("failed to render export_ready template: %w", err)
	}
	if err := s.mailer.Send(ctx, data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send export ready email: %w", err)
	}
	s.logger.InfoContext(ctx, "export ready email sent", "to", data.Email, "job_id", data.JobID)
	return nil
}
