package http

import (
	"errors"
	"net/http"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/affiliation"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles HTTP requests for the marketplace.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler              commands.CreateOrderCommandHandler
	confirmPaymentHandler           commands.ConfirmPaymentCommandHandler
	finishPreparationHandler        commands.FinishPreparationCommandHandler
	confirmDeliveryHandler          commands.ConfirmDeliveryCommandHandler
	cancelOrderHandler              commands.CancelOrderCommandHandler
	withdrawOrderHandler            commands.WithdrawOrderCommandHandler
	requestAffiliationHandler       commands.RequestAffiliationCommandHandler
	updateAffiliationStatusHandler  commands.UpdateAffiliationStatusCommandHandler
	updateAvailabilityHandler       commands.UpdateAvailabilityCommandHandler
	expressInterestHandler          commands.ExpressInterestCommandHandler
	removeInterestHandler           commands.RemoveInterestCommandHandler
	updateFlavorAvailabilityHandler commands.UpdateFlavorAvailabilityCommandHandler

	// Query handlers
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	confirmPaymentHandler commands.ConfirmPaymentCommandHandler,
	finishPreparationHandler commands.FinishPreparationCommandHandler,
	confirmDeliveryHandler commands.ConfirmDeliveryCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	withdrawOrderHandler commands.WithdrawOrderCommandHandler,
	requestAffiliationHandler commands.RequestAffiliationCommandHandler,
	updateAffiliationStatusHandler commands.UpdateAffiliationStatusCommandHandler,
	updateAvailabilityHandler commands.UpdateAvailabilityCommandHandler,
	expressInterestHandler commands.ExpressInterestCommandHandler,
	removeInterestHandler commands.RemoveInterestCommandHandler,
	updateFlavorAvailabilityHandler commands.UpdateFlavorAvailabilityCommandHandler,
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:              createOrderHandler,
		confirmPaymentHandler:           confirmPaymentHandler,
		finishPreparationHandler:        finishPreparationHandler,
		confirmDeliveryHandler:          confirmDeliveryHandler,
		cancelOrderHandler:              cancelOrderHandler,
		withdrawOrderHandler:            withdrawOrderHandler,
		requestAffiliationHandler:       requestAffiliationHandler,
		updateAffiliationStatusHandler:  updateAffiliationStatusHandler,
		updateAvailabilityHandler:       updateAvailabilityHandler,
		expressInterestHandler:          expressInterestHandler,
		removeInterestHandler:           removeInterestHandler,
		updateFlavorAvailabilityHandler: updateFlavorAvailabilityHandler,
		getCustomerOrdersHandler:        getCustomerOrdersHandler,
	}
}

// RegisterRoutes attaches every API route to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:order_id/payment", s.ConfirmPayment)
	api.POST("/orders/:order_id/ready", s.FinishPreparation)
	api.POST("/orders/:order_id/delivered", s.ConfirmDelivery)
	api.DELETE("/orders/:order_id", s.CancelOrder)
	api.POST("/orders/:order_id/withdraw", s.WithdrawOrder)
	api.GET("/customers/:customer_id/orders", s.GetCustomerOrders)

	api.POST("/affiliations", s.RequestAffiliation)
	api.PUT("/affiliations/:affiliation_id/status", s.UpdateAffiliationStatus)
	api.PUT("/affiliations/:affiliation_id/availability", s.UpdateAvailability)

	api.POST("/flavors/:flavor_id/interest", s.ExpressInterest)
	api.DELETE("/flavors/:flavor_id/interest", s.RemoveInterest)
	api.PUT("/flavors/:flavor_id/availability", s.UpdateFlavorAvailability)
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+err.Error())
	}
	establishmentID, err := kernel.UUIDFromString(req.EstablishmentID)
	if err != nil {
		return badRequest(ctx, "Invalid establishment id: "+err.Error())
	}

	pizzas := make([]order.Pizza, 0, len(req.Pizzas))
	for _, p := range req.Pizzas {
		pizza, pizzaErr := pizzaFromRequest(p)
		if pizzaErr != nil {
			return badRequest(ctx, "Invalid pizza: "+pizzaErr.Error())
		}
		pizzas = append(pizzas, pizza)
	}

	orderID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(
		orderID, customerID, establishmentID,
		req.AccessCode, req.DeliveryAddress, pizzas,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondWithError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.String()})
}

// ConfirmPayment handles POST /api/v1/orders/{order_id}/payment - pays for an order.
func (s *Server) ConfirmPayment(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("order_id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var req ConfirmPaymentRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+err.Error())
	}

	method, err := order.PaymentMethodFromString(req.PaymentMethod)
	if err != nil {
		return badRequest(ctx, "Invalid payment method: "+err.Error())
	}

	cmd, err := commands.NewConfirmPaymentCommand(orderID, customerID, req.AccessCode, method)
	if err != nil {
		return badRequest(ctx, "Invalid payment data: "+err.Error())
	}

	if handleErr := s.confirmPaymentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondWithError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// FinishPreparation handles POST /api/v1/orders/{order_id}/ready - marks an
// order as ready and triggers courier assignment.
func (s *Server) FinishPreparation(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("order_id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var req EstablishmentActionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	establishmentID, err := kernel.UUIDFromString(req.EstablishmentID)
	if err != nil {
		return badRequest(ctx, "Invalid establishment id: "+err.Error())
	}

	cmd, err := commands.NewFinishPreparationCommand(orderID, establishmentID, req.AccessCode)
	if err != nil {
		return badRequest(ctx, "Invalid request data: "+err.Error())
	}

	if handleErr := s.finishPreparationHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondWithError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmDelivery handles POST /api/v1/orders/{order_id}/delivered - confirms
// receipt of an order and releases the courier.
func (s *Server) ConfirmDelivery(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("order_id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var req CustomerActionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+err.Error())
	}

	cmd, err := commands.NewConfirmDeliveryCommand(orderID, customerID, req.AccessCode)
	if err != nil {
		return badRequest(ctx, "Invalid request data: "+err.Error())
	}

	if handleErr := s.confirmDeliveryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondWithError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles DELETE /api/v1/orders/{order_id} - cancels an order
// that has not been prepared yet.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("order_id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var req CustomerActionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+err.Error())
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, customerID, req.AccessCode)
	if err != nil {
		return badRequest(ctx, "Invalid request data: "+err.Error())
	}

	if handleErr := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondWithError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// WithdrawOrder handles POST /api/v1/orders/{order_id}/withdraw - the
// establishment pulls one of its own orders, releasing the courier if one is
// already out with it.
func (s *Server) WithdrawOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("order_id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var req EstablishmentActionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	establishmentID, err := kernel.UUIDFromString(req.EstablishmentID)
	if err != nil {
		return badRequest(ctx, "Invalid establishment id: "+err.Error())
	}

	cmd, err := commands.NewWithdrawOrderCommand(orderID, establishmentID, req.AccessCode)
	if err != nil {
		return badRequest(ctx, "Invalid request data: "+err.Error())
	}

	if handleErr := s.withdrawOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondWithError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCustomerOrders handles GET /api/v1/customers/{customer_id}/orders -
// lists the customer's orders grouped by status.
func (s *Server) GetCustomerOrders(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("customer_id"))
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+err.Error())
	}

	query, err := queries.NewGetCustomerOrdersQuery(customerID)
	if err != nil {
		return badRequest(ctx, "Invalid query data: "+err.Error())
	}

	orders, err := s.getCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondWithError(ctx, err)
	}

	response := make([]CustomerOrder, len(orders))
	for i, o := range orders {
		response[i] = CustomerOrder{
			ID:              o.ID.String(),
			EstablishmentID: o.EstablishmentID.String(),
			DeliveryAddress: o.DeliveryAddress,
			Total:           o.Total,
			Paid:            o.Paid,
			Status:          o.Status,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// RequestAffiliation handles POST /api/v1/affiliations - a courier applies
// to work for an establishment.
func (s *Server) RequestAffiliation(ctx echo.Context) error {
	var req RequestAffiliationRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	courierID, err := kernel.UUIDFromString(req.CourierID)
	if err != nil {
		return badRequest(ctx, "Invalid courier id: "+err.Error())
	}
	establishmentID, err := kernel.UUIDFromString(req.EstablishmentID)
	if err != nil {
		return badRequest(ctx, "Invalid establishment id: "+err.Error())
	}

	affiliationID := kernel.NewUUID()

	cmd, err := commands.NewRequestAffiliationCommand(
		affiliationID, courierID, establishmentID, req.AccessCode,
	)
	if err != nil {
		return badRequest(ctx, "Invalid affiliation data: "+err.Error())
	}

	if handleErr := s.requestAffiliationHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondWithError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, RequestAffiliationResponse{ID: affiliationID.String()})
}

// UpdateAffiliationStatus handles PUT /api/v1/affiliations/{affiliation_id}/status -
// an establishment approves or rejects a pending request.
func (s *Server) UpdateAffiliationStatus(ctx echo.Context) error {
	affiliationID, err := kernel.UUIDFromString(ctx.Param("affiliation_id"))
	if err != nil {
		return badRequest(ctx, "Invalid affiliation id: "+err.Error())
	}

	var req UpdateAffiliationStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	establishmentID, err := kernel.UUIDFromString(req.EstablishmentID)
	if err != nil {
		return badRequest(ctx, "Invalid establishment id: "+err.Error())
	}

	decision, err := affiliation.ApprovalStatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	cmd, err := commands.NewUpdateAffiliationStatusCommand(
		affiliationID, establishmentID, req.AccessCode, decision,
	)
	if err != nil {
		return badRequest(ctx, "Invalid request data: "+err.Error())
	}

	if handleErr := s.updateAffiliationStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondWithError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateAvailability handles PUT /api/v1/affiliations/{affiliation_id}/availability -
// a courier goes on or off duty for an establishment.
func (s *Server) UpdateAvailability(ctx echo.Context) error {
	affiliationID, err := kernel.UUIDFromString(ctx.Param("affiliation_id"))
	if err != nil {
		return badRequest(ctx, "Invalid affiliation id: "+err.Error())
	}

	var req UpdateAvailabilityRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	courierID, err := kernel.UUIDFromString(req.CourierID)
	if err != nil {
		return badRequest(ctx, "Invalid courier id: "+err.Error())
	}

	availability, err := affiliation.AvailabilityFromString(req.Availability)
	if err != nil {
		return badRequest(ctx, "Invalid availability: "+err.Error())
	}

	cmd, err := commands.NewUpdateAvailabilityCommand(
		affiliationID, courierID, req.AccessCode, availability,
	)
	if err != nil {
		return badRequest(ctx, "Invalid request data: "+err.Error())
	}

	if handleErr := s.updateAvailabilityHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondWithError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ExpressInterest handles POST /api/v1/flavors/{flavor_id}/interest - a
// customer asks to be notified when an unavailable flavor returns.
func (s *Server) ExpressInterest(ctx echo.Context) error {
	flavorID, err := kernel.UUIDFromString(ctx.Param("flavor_id"))
	if err != nil {
		return badRequest(ctx, "Invalid flavor id: "+err.Error())
	}

	var req CustomerActionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+err.Error())
	}

	cmd, err := commands.NewExpressInterestCommand(flavorID, customerID, req.AccessCode)
	if err != nil {
		return badRequest(ctx, "Invalid request data: "+err.Error())
	}

	if handleErr := s.expressInterestHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondWithError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveInterest handles DELETE /api/v1/flavors/{flavor_id}/interest - a
// customer withdraws a flavor notification request.
func (s *Server) RemoveInterest(ctx echo.Context) error {
	flavorID, err := kernel.UUIDFromString(ctx.Param("flavor_id"))
	if err != nil {
		return badRequest(ctx, "Invalid flavor id: "+err.Error())
	}

	var req CustomerActionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+err.Error())
	}

	cmd, err := commands.NewRemoveInterestCommand(flavorID, customerID, req.AccessCode)
	if err != nil {
		return badRequest(ctx, "Invalid request data: "+err.Error())
	}

	if handleErr := s.removeInterestHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondWithError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateFlavorAvailability handles PUT /api/v1/flavors/{flavor_id}/availability -
// an establishment toggles a flavor on or off the menu.
func (s *Server) UpdateFlavorAvailability(ctx echo.Context) error {
	flavorID, err := kernel.UUIDFromString(ctx.Param("flavor_id"))
	if err != nil {
		return badRequest(ctx, "Invalid flavor id: "+err.Error())
	}

	var req UpdateFlavorAvailabilityRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	establishmentID, err := kernel.UUIDFromString(req.EstablishmentID)
	if err != nil {
		return badRequest(ctx, "Invalid establishment id: "+err.Error())
	}

	cmd, err := commands.NewUpdateFlavorAvailabilityCommand(
		flavorID, establishmentID, req.AccessCode, req.Available,
	)
	if err != nil {
		return badRequest(ctx, "Invalid request data: "+err.Error())
	}

	if handleErr := s.updateFlavorAvailabilityHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondWithError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func pizzaFromRequest(p PizzaRequest) (order.Pizza, error) {
	size, err := order.SizeFromString(p.Size)
	if err != nil {
		return order.Pizza{}, err
	}

	flavorIDs := make([]kernel.UUID, 0, len(p.FlavorIDs))
	for _, raw := range p.FlavorIDs {
		id, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return order.Pizza{}, idErr
		}
		flavorIDs = append(flavorIDs, id)
	}

	return order.NewPizza(size, flavorIDs)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// respondWithError translates use case failures into HTTP status codes via
// the error kind they unwrap to.
func respondWithError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrUnauthorized):
		code = http.StatusUnauthorized
	case errors.Is(err, errs.ErrInvalidOperation):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrConflict):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}
