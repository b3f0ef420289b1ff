package worker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"eventlineup/internal/domain"
	"eventlineup/internal/pkg/metrics"
)

// ExportQueue is a bounded, non-blocking domain.ExportSink.
type ExportQueue struct {
	jobs    chan domain.ExportJob
	metrics *metrics.Metrics
}

// NewExportQueue returns a queue holding at most size pending jobs.
func NewExportQueue(size int, m *metrics.Metrics) *ExportQueue {
	if size < 1 {
		size = 1
	}
	return &ExportQueue{jobs: make(chan domain.ExportJob, size), metrics: m}
}

// Submit enqueues job without blocking. It returns false when the queue is full.
func (q *ExportQueue) Submit(job domain.ExportJob) bool {
	select {
	case q.jobs <- job:
		q.metrics.ExportJob("queued")
		q.metrics.SetQueueDepth(len(q.jobs))
		return true
	default:
		q.metrics.ExportJob("dropped")
		return false
	}
}

// Len returns the number of pending jobs.
func (q *ExportQueue) Len() int {
	return len(q.jobs)
}

// ExportWorker drains an ExportQueue: it writes each dataset, then notifies the job's
// webhook and, when configured, emails the result. Failures are logged, never returned.
type ExportWorker struct {
	queue       *ExportQueue
	writer      domain.ExportWriter
	notifier    domain.WebhookNotifier
	email       domain.EmailService
	notifyEmail string
	timeout     time.Duration
	logger      *slog.Logger
	metrics     *metrics.Metrics

	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// ExportWorkerConfig collects the collaborators of an ExportWorker. Email and NotifyEmail are optional.
type ExportWorkerConfig struct {
	Writer      domain.ExportWriter
	Notifier    domain.WebhookNotifier
	Email       domain.EmailService
	NotifyEmail string
	Timeout     time.Duration
	Logger      *slog.Logger
	Metrics     *metrics.Metrics
}

func NewExportWorker(queue *ExportQueue, cfg ExportWorkerConfig) *ExportWorker {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &ExportWorker{
		queue:       queue,
		writer:      cfg.Writer,
		notifier:    cfg.Notifier,
		email:       cfg.Email,
		notifyEmail: cfg.NotifyEmail,
		timeout:     cfg.Timeout,
		logger:      cfg.Logger,
		metrics:     cfg.Metrics,
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}
}

// Start processes jobs until ctx is cancelled or Stop is called. It blocks.
func (w *ExportWorker) Start(ctx context.Context) {
	w.logger.Info("export worker started")
	defer close(w.doneCh)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("export worker stopped (context cancelled)", "pending", w.queue.Len())
			return
		case <-w.stopCh:
			w.logger.Info("export worker stopped", "pending", w.queue.Len())
			return
		case job := <-w.queue.jobs:
			w.metrics.SetQueueDepth(w.queue.Len())
			w.run(ctx, job)
		}
	}
}

// Stop signals the worker and waits for the job in progress to finish.
func (w *ExportWorker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	<-w.doneCh
}

func (w *ExportWorker) run(ctx context.Context, job domain.ExportJob) {
	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	log := w.logger.With("job_id", job.ID, "dataset", job.Dataset.Name)
	log.InfoContext(ctx, "export started", "rows", len(job.Dataset.Rows))

	if err := w.process(ctx, job); err != nil {
		w.metrics.ExportJob("failed")
		log.ErrorContext(ctx, "export failed", "error", err)
		return
	}
	w.metrics.ExportJob("succeeded")
	log.InfoContext(ctx, "export finished")
}

func (w *ExportWorker) process(ctx context.Context, job domain.ExportJob) error {
	artifact, err := w.writer.Write(job.Dataset)
	if err != nil {
		return fmt.Errorf("write dataset: %w", err)
	}

	n := domain.ExportNotification{
		JobID:    job.ID,
		Dataset:  job.Dataset.Name,
		CSVURL:   artifact.URL,
		Checksum: artifact.Checksum,
		Rows:     artifact.Rows,
	}
	if err := w.notifier.Notify(ctx, job.Destination, n); err != nil {
		return fmt.Errorf("notify webhook: %w", err)
	}

	if w.email != nil && w.notifyEmail != "" {
		data := &domain.ExportReadyEmailData{
			Email:    w.notifyEmail,
			JobID:    job.ID,
			Dataset:  job.Dataset.Name,
			CSVURL:   artifact.URL,
			Checksum: artifact.Checksum,
			Rows:     artifact.Rows,
		}
		if err := w.email.SendExportReady(ctx, data); err != nil {
			return fmt.Errorf("send export email: %w", err)
		}
	}
	return nil
}
