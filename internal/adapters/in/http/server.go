// Package http exposes the ordering use cases over a REST API.
package http

import (
	"errors"
	"net/http"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the JSON error body returned by all endpoints on failure.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateCustomerRequest is the body of POST /api/v1/customers.
type CreateCustomerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CreateCustomerResponse carries the identifier of the created customer.
type CreateCustomerResponse struct {
	ID string `json:"id"`
}

// CreateProductRequest is the body of POST /api/v1/products.
// Price is a decimal currency amount, converted to cents internally.
type CreateProductRequest struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// CreateProductResponse carries the identifier of the created product.
type CreateProductResponse struct {
	ID string `json:"id"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	CustomerID string             `json:"customer_id"`
	Items      []OrderItemRequest `json:"items"`
}

// OrderItemRequest is one requested product within CreateOrderRequest.
type OrderItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// OrderResponse is the representation of an order returned by
// POST /api/v1/orders and GET /api/v1/orders/:id.
type OrderResponse struct {
	ID         string              `json:"id"`
	CustomerID string              `json:"customer_id"`
	Items      []OrderItemResponse `json:"items"`
	TotalCents int64               `json:"total_cents"`
	CreatedAt  string              `json:"created_at"`
}

// OrderItemResponse is one line item within OrderResponse.
// PriceCents is the unit price snapshot taken at order creation.
type OrderItemResponse struct {
	ProductID  string `json:"product_id"`
	PriceCents int64  `json:"price_cents"`
	Quantity   int    `json:"quantity"`
}

// Server handles HTTP requests by coordinating between request parsing
// and the application use cases.
type Server struct {
	// Command handlers
	createCustomerHandler commands.CreateCustomerCommandHandler
	createProductHandler  commands.CreateProductCommandHandler
	createOrderHandler    commands.CreateOrderCommandHandler

	// Query handlers
	getOrderHandler queries.GetOrderQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createCustomerHandler commands.CreateCustomerCommandHandler,
	createProductHandler commands.CreateProductCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
) *Server {
	return &Server{
		createCustomerHandler: createCustomerHandler,
		createProductHandler:  createProductHandler,
		createOrderHandler:    createOrderHandler,
		getOrderHandler:       getOrderHandler,
	}
}

// RegisterRoutes attaches all API routes to the given Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/customers", s.CreateCustomer)
	api.POST("/products", s.CreateProduct)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:id", s.GetOrder)

	e.GET("/health", s.Health)
}

// CreateCustomer handles POST /api/v1/customers - registers a new customer.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var req CreateCustomerRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx)
	}

	customerID := kernel.NewUUID()
	cmd, err := commands.NewCreateCustomerCommand(customerID, req.Name, req.Email)
	if err != nil {
		return unprocessable(ctx, "Invalid customer data: "+err.Error())
	}

	if handleErr := s.createCustomerHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to create customer")
	}

	return ctx.JSON(http.StatusCreated, CreateCustomerResponse{ID: customerID.String()})
}

// CreateProduct handles POST /api/v1/products - registers a new product.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var req CreateProductRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx)
	}

	price, err := kernel.MoneyFromFloat(req.Price)
	if err != nil {
		return unprocessable(ctx, "Invalid product data: "+err.Error())
	}

	productID := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(productID, req.Name, price, req.Quantity)
	if err != nil {
		return unprocessable(ctx, "Invalid product data: "+err.Error())
	}

	if handleErr := s.createProductHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to create product")
	}

	return ctx.JSON(http.StatusCreated, CreateProductResponse{ID: productID.String()})
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx)
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return unprocessable(ctx, "Invalid order data: "+err.Error())
	}

	items := make([]commands.OrderItem, 0, len(req.Items))
	for _, reqItem := range req.Items {
		productID, idErr := kernel.UUIDFromString(reqItem.ProductID)
		if idErr != nil {
			return unprocessable(ctx, "Invalid order data: "+idErr.Error())
		}

		item, itemErr := commands.NewOrderItem(productID, reqItem.Quantity)
		if itemErr != nil {
			return unprocessable(ctx, "Invalid order data: "+itemErr.Error())
		}
		items = append(items, item)
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), customerID, items)
	if err != nil {
		return unprocessable(ctx, "Invalid order data: "+err.Error())
	}

	placed, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err, "Failed to create order")
	}

	total, err := placed.Total()
	if err != nil {
		return internalError(ctx, "Failed to create order")
	}

	lineItems := placed.LineItems()
	respItems := make([]OrderItemResponse, len(lineItems))
	for i, item := range lineItems {
		respItems[i] = OrderItemResponse{
			ProductID:  item.ProductID().String(),
			PriceCents: item.Price().Cents(),
			Quantity:   item.Quantity(),
		}
	}

	return ctx.JSON(http.StatusCreated, OrderResponse{
		ID:         placed.ID().String(),
		CustomerID: placed.CustomerID().String(),
		Items:      respItems,
		TotalCents: total.Cents(),
		CreatedAt:  placed.CreatedAt().Format(time.RFC3339Nano),
	})
}

// GetOrder handles GET /api/v1/orders/:id - retrieves a persisted order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return unprocessable(ctx, "Invalid order ID: "+err.Error())
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return unprocessable(ctx, "Invalid order ID: "+err.Error())
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err, "Failed to retrieve order")
	}

	respItems := make([]OrderItemResponse, len(result.Items))
	var totalCents int64
	for i, item := range result.Items {
		respItems[i] = OrderItemResponse{
			ProductID:  item.ProductID.String(),
			PriceCents: item.Price.Cents(),
			Quantity:   item.Quantity,
		}
		totalCents += item.Price.Cents() * int64(item.Quantity)
	}

	return ctx.JSON(http.StatusOK, OrderResponse{
		ID:         result.ID.String(),
		CustomerID: result.CustomerID.String(),
		Items:      respItems,
		TotalCents: totalCents,
		CreatedAt:  result.CreatedAt.Format(time.RFC3339Nano),
	})
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// domainError maps use case errors onto HTTP status codes: missing objects
// map to 404, business rule violations to 422, everything else to 500.
func domainError(ctx echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusUnprocessableEntity, Error{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
		})
	default:
		return internalError(ctx, fallback)
	}
}

func badRequest(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: "Invalid request body",
	})
}

func unprocessable(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusUnprocessableEntity, Error{
		Code:    http.StatusUnprocessableEntity,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
