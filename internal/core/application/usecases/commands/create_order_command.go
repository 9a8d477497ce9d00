package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderNumberIsRequired = errors.New("order number is required")
	ErrAddressIsRequired     = errors.New("address is required")
)

// CreateOrderCommand represents a request to register a new delivery order.
// HIGH and URGENT orders additionally trigger a best-effort automatic
// assignment attempt after creation.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, "ORD-1042", "123 Main Street",
//	    order.PriorityHigh, warehouseID, &districtID)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	ord, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	orderNumber string
	address     string
	priority    order.Priority
	warehouseID kernel.UUID
	districtID  *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new delivery order.
// Validates identifiers, requires a non-empty order number and address, and
// checks that the priority is a known value.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	orderNumber string,
	address string,
	priority order.Priority,
	warehouseID kernel.UUID,
	districtID *kernel.UUID,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOrderNumber(orderNumber),
		cmd.setAddress(address),
		cmd.setPriority(priority),
		cmd.setWarehouseID(warehouseID),
		cmd.setDistrictID(districtID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OrderNumber returns the human-facing unique order number.
func (c CreateOrderCommand) OrderNumber() string {
	return c.orderNumber
}

// Address returns the delivery destination address.
func (c CreateOrderCommand) Address() string {
	return c.address
}

// Priority returns the order priority.
func (c CreateOrderCommand) Priority() order.Priority {
	return c.priority
}

// WarehouseID returns the identifier of the dispatching warehouse.
func (c CreateOrderCommand) WarehouseID() kernel.UUID {
	return c.warehouseID
}

// DistrictID returns the destination district, or nil when unmatched.
func (c CreateOrderCommand) DistrictID() *kernel.UUID {
	return c.districtID
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return ErrOrderNumberIsRequired
	}

	c.orderNumber = orderNumber
	return nil
}

func (c *CreateOrderCommand) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}

	c.address = address
	return nil
}

func (c *CreateOrderCommand) setPriority(priority order.Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}

	c.priority = priority
	return nil
}

func (c *CreateOrderCommand) setWarehouseID(warehouseID kernel.UUID) error {
	if err := warehouseID.Validate(); err != nil {
		return err
	}

	c.warehouseID = warehouseID
	return nil
}

func (c *CreateOrderCommand) setDistrictID(districtID *kernel.UUID) error {
	if districtID != nil {
		if err := districtID.Validate(); err != nil {
			return err
		}
	}

	c.districtID = districtID
	return nil
}
