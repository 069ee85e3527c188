package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
)

// Print job content types understood by the printer submission service.
const (
	// PrintContentPDFURI submits a remote PDF by URL; the print service
	// fetches the document itself.
	PrintContentPDFURI = "pdf_uri"
	// PrintContentRawBase64 submits a base64-encoded document inline.
	PrintContentRawBase64 = "raw_base64"
)

// PrintRequest is one document to be sent to the network printer: either a
// remote PDF (shipping label) or an inline base64 document (packing slip).
// ID is assigned when the request is created and correlates the queued
// request with its dispatch log lines.
type PrintRequest struct {
	ID          kernel.UUID
	Title       string
	ContentType string
	Content     string
}

// PrintGateway defines the outbound contract to the printer submission
// service. Printing is best-effort everywhere in this system: failures are
// logged and never propagate to the purchase flow.
type PrintGateway interface {
	// CreateJob submits one print job and returns the remote job id.
	CreateJob(ctx context.Context, req PrintRequest) (int64, error)
}

// PrintQueue decouples purchase completion from printer submission. The
// purchase flow enqueues requests after the authoritative result is
// finalized; a background job drains and submits them.
type PrintQueue interface {
	// Enqueue adds a request for later submission. It never blocks the caller.
	Enqueue(req PrintRequest)

	// DequeueAll removes and returns all pending requests in FIFO order.
	DequeueAll() []PrintRequest
}
