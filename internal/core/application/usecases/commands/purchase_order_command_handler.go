package commands

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/keylock"
)

// ErrDuplicateOrder is returned when a purchase arrives for an order id that
// already has a recorded purchase. No carrier call is made in that case.
var ErrDuplicateOrder = errors.New("order has already been purchased")

// PurchaseOrderCommandHandler buys shipping labels for an order and records
// the result. Labels are purchased strictly sequentially in package order; a
// failure stops the sequence immediately and already-issued labels are
// surfaced, never rolled back. Purchases sharing an order id are serialized
// through a per-key lock so the duplicate check and the ledger insert act as
// one atomic step.
//
// Printing is fire-and-forget: after a fully successful purchase the label
// documents (and the packing slip, when the order is recorded) are enqueued
// for a background job to submit, and any enqueue-side failure never affects
// the purchase outcome.
type PurchaseOrderCommandHandler struct {
	gateway    ports.CarrierGateway
	ledger     ports.OrderLedger
	printQueue ports.PrintQueue
	slips      ports.PackingSlipRenderer
	locks      *keylock.KeyedMutex
	logger     *slog.Logger
}

// NewPurchaseOrderCommandHandler creates a handler for label purchases.
func NewPurchaseOrderCommandHandler(
	gateway ports.CarrierGateway,
	ledger ports.OrderLedger,
	printQueue ports.PrintQueue,
	slips ports.PackingSlipRenderer,
	logger *slog.Logger,
) PurchaseOrderCommandHandler {
	return PurchaseOrderCommandHandler{
		gateway:    gateway,
		ledger:     ledger,
		printQueue: printQueue,
		slips:      slips,
		locks:      keylock.NewKeyedMutex(),
		logger:     logger,
	}
}

// Handle processes the purchase command.
//
// The returned error covers everything that prevents purchasing: command
// validation, a duplicate order id (ErrDuplicateOrder) or a ledger read
// failure. Once purchasing has begun, failures are reported inside the
// PurchaseResult instead, alongside whatever labels were already issued --
// including a ledger write failure after every label succeeded, since those
// labels are charged and must stay inspectable.
func (h PurchaseOrderCommandHandler) Handle(
	ctx context.Context, cmd PurchaseOrderCommand,
) (order.PurchaseResult, error) {
	if err := cmd.Validate(); err != nil {
		return order.PurchaseResult{}, err
	}

	if cmd.OrderID() != "" {
		unlock := h.locks.Lock(cmd.OrderID())
		defer unlock()

		if err := h.guardAgainstDuplicate(ctx, cmd.OrderID()); err != nil {
			return order.PurchaseResult{}, err
		}
	}

	result := h.purchaseLabels(ctx, cmd)
	if result.Failed() {
		return result, nil
	}

	record, err := h.recordOrder(ctx, cmd, result.Labels)
	if err != nil {
		result.Err = fmt.Errorf("failed to record order %q: %w", cmd.OrderID(), err)
		return result, nil
	}

	h.enqueuePrintJobs(cmd, record, result.Labels)
	return result, nil
}

func (h PurchaseOrderCommandHandler) guardAgainstDuplicate(ctx context.Context, orderID string) error {
	_, err := h.ledger.Get(ctx, orderID)
	if err == nil {
		return ErrDuplicateOrder
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	return nil
}

func (h PurchaseOrderCommandHandler) purchaseLabels(
	ctx context.Context, cmd PurchaseOrderCommand,
) order.PurchaseResult {
	selections := cmd.Selections()
	labels := make([]order.Label, 0, len(selections))

	for _, sel := range selections {
		issued, err := h.gateway.PurchaseLabel(ctx, sel.RateID())
		if err != nil {
			return order.PurchaseResult{
				Labels: labels,
				Err: fmt.Errorf("failed to purchase label for package %d: %w",
					sel.PackageIndex()+1, err),
			}
		}

		label, err := order.NewLabel(sel.PackageIndex(),
			issued.TrackingNumber, issued.LabelURL, issued.TrackingURL)
		if err != nil {
			return order.PurchaseResult{
				Labels: labels,
				Err: fmt.Errorf("carrier returned an unusable label for package %d: %w",
					sel.PackageIndex()+1, err),
			}
		}

		labels = append(labels, label)
	}

	return order.PurchaseResult{Labels: labels}
}

func (h PurchaseOrderCommandHandler) recordOrder(
	ctx context.Context, cmd PurchaseOrderCommand, labels []order.Label,
) (*order.Record, error) {
	if cmd.OrderID() == "" {
		return nil, nil
	}

	chosen := cmd.Chosen()
	record, err := order.NewRecord(cmd.OrderID(), chosen.Method(),
		chosen.EstimatedDays(), chosen.Total(), labels)
	if err != nil {
		return nil, err
	}

	if err := h.ledger.PutIfAbsent(ctx, record); err != nil {
		if errors.Is(err, ports.ErrOrderAlreadyRecorded) {
			return nil, ErrDuplicateOrder
		}
		return nil, err
	}

	return record, nil
}

func (h PurchaseOrderCommandHandler) enqueuePrintJobs(
	cmd PurchaseOrderCommand, record *order.Record, labels []order.Label,
) {
	for _, label := range labels {
		h.printQueue.Enqueue(ports.PrintRequest{
			ID:          kernel.NewUUID(),
			Title:       h.labelTitle(cmd.OrderID(), label),
			ContentType: ports.PrintContentPDFURI,
			Content:     label.LabelURL(),
		})
	}

	if record == nil {
		return
	}

	slip, err := h.slips.Render(record, cmd.Packages(), cmd.Destination())
	if err != nil {
		h.logger.Error("failed to render packing slip",
			"order_id", record.ID(), "error", err)
		return
	}

	h.printQueue.Enqueue(ports.PrintRequest{
		ID:          kernel.NewUUID(),
		Title:       fmt.Sprintf("Packing slip %s", record.ID()),
		ContentType: ports.PrintContentRawBase64,
		Content:     base64.StdEncoding.EncodeToString(slip),
	})
}

func (h PurchaseOrderCommandHandler) labelTitle(orderID string, label order.Label) string {
	if orderID != "" {
		return fmt.Sprintf("Label %s package %d", orderID, label.PackageIndex()+1)
	}
	return fmt.Sprintf("Label %s", label.TrackingNumber())
}
