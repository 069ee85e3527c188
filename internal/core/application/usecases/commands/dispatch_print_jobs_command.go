package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrDispatchPrintJobsCommandIsNotConstructed = errors.New(
	"DispatchPrintJobsCommand must be created via NewDispatchPrintJobsCommand constructor",
)

// DispatchPrintJobsCommand triggers the submission of all queued print
// requests to the printer service. It is a parameterless command issued by
// the background print dispatch job.
//
// Example:
//
//	cmd := NewDispatchPrintJobsCommand()
//	handler := NewDispatchPrintJobsCommandHandler(printQueue, printGateway, logger)
//	err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("Some print jobs failed: %v", err)
//	}
type DispatchPrintJobsCommand struct {
	guard guard.ConstructorGuard
}

// NewDispatchPrintJobsCommand creates a new command to drain the print queue.
func NewDispatchPrintJobsCommand() DispatchPrintJobsCommand {
	return DispatchPrintJobsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrDispatchPrintJobsCommandIsNotConstructed if validation fails.
func (c *DispatchPrintJobsCommand) Validate() error {
	return c.guard.Validate(
		ErrDispatchPrintJobsCommandIsNotConstructed,
	)
}
