package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"fulfillment/internal/core/ports"
)

// DispatchPrintJobsCommandHandler drains the print queue and submits every
// pending request to the printer service. Printing is best-effort: a failed
// submission is logged and dropped rather than requeued, so a persistently
// broken printer cannot grow the queue without bound.
type DispatchPrintJobsCommandHandler struct {
	printQueue ports.PrintQueue
	gateway    ports.PrintGateway
	logger     *slog.Logger
}

// NewDispatchPrintJobsCommandHandler creates a handler for print dispatch.
func NewDispatchPrintJobsCommandHandler(
	printQueue ports.PrintQueue,
	gateway ports.PrintGateway,
	logger *slog.Logger,
) DispatchPrintJobsCommandHandler {
	return DispatchPrintJobsCommandHandler{
		printQueue: printQueue,
		gateway:    gateway,
		logger:     logger,
	}
}

// Handle submits all queued print requests in FIFO order. One failed job does
// not stop the rest; the joined failures are returned so the caller can log
// them.
func (h DispatchPrintJobsCommandHandler) Handle(ctx context.Context, cmd DispatchPrintJobsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var failures []error
	for _, req := range h.printQueue.DequeueAll() {
		jobID, err := h.gateway.CreateJob(ctx, req)
		if err != nil {
			failures = append(failures,
				fmt.Errorf("failed to submit print job %q: %w", req.Title, err))
			continue
		}
		h.logger.Info("print job submitted",
			"print_id", req.ID.String(), "title", req.Title, "job_id", jobID)
	}

	return errors.Join(failures...)
}
