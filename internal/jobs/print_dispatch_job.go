package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PrintDispatchJob manages the scheduled draining of the print queue.
// Runs every second to submit pending label and packing slip documents to the
// printer service.
type PrintDispatchJob struct {
	handler commands.DispatchPrintJobsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPrintDispatchJob creates a new job for print dispatch.
// Uses DispatchPrintJobsCommandHandler to drain the queue every second.
func NewPrintDispatchJob(handler commands.DispatchPrintJobsCommandHandler, logger *slog.Logger) *PrintDispatchJob {
	return &PrintDispatchJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "print_dispatch_job"),
	}
}

// Start begins the print dispatch job to run every second.
func (j *PrintDispatchJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewDispatchPrintJobsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// Printing is best-effort: failed jobs are logged and dropped.
			j.logger.ErrorContext(ctx, "Print dispatch job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Print dispatch job started (running every second)")
	return nil
}

// Stop stops the print dispatch job.
func (j *PrintDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Print dispatch job stopped")
}
