package commands

import (
	"context"
	"log/slog"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/pkg/errs"
)

// OrderEventPublisher announces successfully placed orders to interested
// consumers. Publishing happens after the transaction commits; a publish
// failure never fails the order.
type OrderEventPublisher interface {
	PublishOrderCreated(ctx context.Context, placed *order.Order) error
}

// CreateOrderCommandHandler handles the business logic for placing orders.
// It validates the customer and the requested products, decrements product
// stock, and persists the order with its line items inside a single
// transaction, so either every write lands or none does.
//
// Validation is completed in full before any write: an unknown customer, a
// missing product, or an insufficient stock quantity rolls the transaction
// back with no stock decremented and no order stored.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, publisher, logger)
//	item, _ := NewOrderItem(productID, 3)
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), customerID, []OrderItem{item})
//
//	placed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// placed now carries the stored line items with snapshotted prices
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	publisher  OrderEventPublisher
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires a UoWFactory spanning customer, product, and order repositories.
// The publisher may be nil when no event transport is configured.
func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	publisher OrderEventPublisher,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "create_order_command_handler"),
	}
}

// Handle processes the order placement command and returns the persisted order.
//
// Steps, all within one transaction:
//  1. Look up the customer; a missing customer fails with an
//     errs.ObjectNotFoundError.
//  2. Look up all requested products in one locked batch; a count mismatch
//     fails with a validation error ("some ordered products do not exist").
//  3. Decrement each product's stock in memory; any shortfall fails with a
//     validation error naming the product, before anything is written.
//  4. Persist the updated stock quantities as a batch.
//  5. Persist the order with line items carrying each product's current price.
//
// Products are matched to requested items by identifier, never by position,
// so the repository's result ordering is irrelevant.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	buyer, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID())
	if err != nil {
		return nil, err
	}

	items := cmd.Items()
	productIDs := make([]kernel.UUID, len(items))
	for i, item := range items {
		productIDs[i] = item.ProductID()
	}

	products, err := uow.ProductRepository().GetAllByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}
	if len(products) != len(items) {
		return nil, errs.NewValueIsInvalidError("some ordered products do not exist")
	}

	productsByID := make(map[kernel.UUID]*product.Product, len(products))
	for _, p := range products {
		productsByID[p.ID()] = p
	}

	lineItems := make([]order.LineItem, 0, len(items))
	for _, item := range items {
		p, ok := productsByID[item.ProductID()]
		if !ok {
			return nil, errs.NewValueIsInvalidError("some ordered products do not exist")
		}

		if err = p.DecreaseStock(item.Quantity()); err != nil {
			return nil, err
		}

		lineItem, itemErr := order.NewLineItem(p.ID(), p.Price(), item.Quantity())
		if itemErr != nil {
			return nil, itemErr
		}
		lineItems = append(lineItems, lineItem)
	}

	if err = uow.ProductRepository().UpdateStock(ctx, products); err != nil {
		return nil, err
	}

	placed, err := order.NewOrder(cmd.OrderID(), buyer.ID(), lineItems)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publishOrderCreated(ctx, placed)

	return placed, nil
}

func (h *CreateOrderCommandHandler) publishOrderCreated(ctx context.Context, placed *order.Order) {
	if h.publisher == nil {
		return
	}

	if err := h.publisher.PublishOrderCreated(ctx, placed); err != nil {
		h.logger.ErrorContext(ctx, "Failed to publish order created event",
			"order_id", placed.ID().String(), "error", err)
	}
}
