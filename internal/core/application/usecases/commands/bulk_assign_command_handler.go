package commands

import (
	"context"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"
)

// BulkAssignItem reports the outcome for one order of a bulk assignment.
// Exactly one of Delivery and Error is meaningful, depending on Success.
type BulkAssignItem struct {
	OrderID  kernel.UUID
	Success  bool
	Delivery *delivery.Delivery
	Error    string
}

// BulkAssignResult aggregates the per-order outcomes of a bulk assignment.
type BulkAssignResult struct {
	Total      int
	Successful int
	Failed     int
	Results    []BulkAssignItem
}

// BulkAssignCommandHandler auto-assigns a batch of orders one at a time.
// Each order runs through the full assignment workflow in its own
// transaction, so a failed item leaves no partial state and the remaining
// items still get their chance at the driver pool.
type BulkAssignCommandHandler struct {
	assigner OrderAssigner
}

// NewBulkAssignCommandHandler creates a handler for bulk assignment.
func NewBulkAssignCommandHandler(assigner OrderAssigner) BulkAssignCommandHandler {
	return BulkAssignCommandHandler{
		assigner: assigner,
	}
}

// Handle processes the orders sequentially, in request order, and reports a
// per-order outcome. Sequential processing is deliberate: each successful
// assignment changes driver load, so later orders must observe the pool as
// earlier ones left it.
func (h BulkAssignCommandHandler) Handle(ctx context.Context, command BulkAssignCommand) (BulkAssignResult, error) {
	if err := command.Validate(); err != nil {
		return BulkAssignResult{}, err
	}

	result := BulkAssignResult{
		Total:   len(command.OrderIDs()),
		Results: make([]BulkAssignItem, 0, len(command.OrderIDs())),
	}

	for _, orderID := range command.OrderIDs() {
		item := BulkAssignItem{OrderID: orderID}

		assignCmd, err := NewAssignOrderCommand(orderID, nil, "")
		if err != nil {
			item.Error = err.Error()
			result.Failed++
			result.Results = append(result.Results, item)
			continue
		}

		assigned, err := h.assigner.Handle(ctx, assignCmd)
		if err != nil {
			item.Error = err.Error()
			result.Failed++
		} else {
			item.Success = true
			item.Delivery = assigned.Delivery
			result.Successful++
		}
		result.Results = append(result.Results, item)
	}

	return result, nil
}
