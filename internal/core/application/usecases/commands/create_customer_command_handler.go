package commands

import (
	"context"

	"ordering/internal/core/domain/model/customer"
)

// CreateCustomerCommandHandler handles the business logic for customer registration.
//
// Example:
//
//	handler := NewCreateCustomerCommandHandler(uowFactory)
//	cmd, _ := NewCreateCustomerCommand(kernel.NewUUID(), "Ada Lovelace", "ada@example.com")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("customer registration failed: %w", err)
//	}
type CreateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewCreateCustomerCommandHandler creates a handler for customer registration.
// Requires a CustomerUoWFactory for transactional persistence.
func NewCreateCustomerCommandHandler(uowFactory CustomerUoWFactory) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the customer registration command.
// Uses a transaction to ensure the customer is properly persisted or rolled back on error.
func (h *CreateCustomerCommandHandler) Handle(ctx context.Context, cmd CreateCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	newCustomer, err := customer.NewCustomer(cmd.CustomerID(), cmd.Name(), cmd.Email())
	if err != nil {
		return err
	}

	if err = uow.CustomerRepository().Add(ctx, newCustomer); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
