package printnode

import (
	"context"

	"fulfillment/internal/core/ports"
)

// Disabled is the no-op gateway used when the printer service is not
// configured. Submissions are acknowledged and dropped, so purchases and the
// dispatch job keep working without a printer.
type Disabled struct{}

var _ ports.PrintGateway = Disabled{}

// CreateJob drops the request and reports job id 0.
func (Disabled) CreateJob(_ context.Context, _ ports.PrintRequest) (int64, error) {
	return 0, nil
}
