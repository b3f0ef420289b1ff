package domain

import (
	"context"
	"time"
)

// Dataset is a named snapshot of flat records. Every row has len(Columns) cells.
type Dataset struct {
	Name    string
	Columns []string
	Rows    [][]string
}

// ExportJob describes one export to run in the background.
type ExportJob struct {
	ID          string
	Dataset     Dataset
	Destination string
	RequestedAt time.Time
}

// ExportSink accepts export jobs without waiting for them to run.
// Submit reports false when the job was dropped.
type ExportSink interface {
	Submit(job ExportJob) bool
}

// ExportArtifact is the result of writing a dataset.
type ExportArtifact struct {
	Path     string
	URL      string
	Checksum string
	Rows     int
}

// ExportWriter persists a dataset and returns where it can be fetched.
type ExportWriter interface {
	Write(ds Dataset) (ExportArtifact, error)
}

// ExportNotification is the webhook payload sent once an export is ready.
type ExportNotification struct {
	JobID    string `json:"job_id"`
	Dataset  string `json:"dataset"`
	CSVURL   string `json:"csv_url"`
	Checksum string `json:"checksum"`
	Rows     int    `json:"rows"`
}

// WebhookNotifier delivers an ExportNotification to a destination URL.
type WebhookNotifier interface {
	Notify(ctx context.Context, url string, n ExportNotification) error
}

// ExportService starts exports. It returns the job id as soon as the job is queued.
type ExportService interface {
	InitiateEventExport(ctx context.Context, webhookURL string) (jobID string, err error)
}
