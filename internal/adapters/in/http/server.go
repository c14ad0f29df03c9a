// Package http exposes the dispatch use cases over a JSON API served by echo.
package http

import (
	"log/slog"
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateOrder  commands.CreateOrderCommandHandler
	AssignMaster commands.AssignMasterCommandHandler
	ChangeStatus commands.ChangeStatusCommandHandler
	AttachAdl    commands.AttachAdlCommandHandler
	CreateMaster commands.CreateMasterCommandHandler

	GetOrder    queries.GetOrderQueryHandler
	ListOrders  queries.ListOrdersQueryHandler
	ListMasters queries.ListMastersQueryHandler
}

// Server translates HTTP requests into commands and queries and maps their
// results and errors back to JSON.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http"),
	}
}

// Register mounts the API routes on g.
func (s *Server) Register(g *echo.Group) {
	g.GET("/orders", s.ListOrders)
	g.POST("/orders", s.CreateOrder)
	g.GET("/orders/:id", s.GetOrder)
	g.POST("/orders/:id/assign", s.AssignOrder)
	g.PATCH("/orders/:id/status", s.UpdateOrderStatus)
	g.POST("/orders/:id/complete", s.CompleteOrder)
	g.POST("/orders/:id/cancel", s.CancelOrder)
	g.POST("/orders/:id/adl", s.AttachAdl)

	g.GET("/masters", s.ListMasters)
	g.POST("/masters", s.CreateMaster)
}

// ListOrders handles GET /orders.
func (s *Server) ListOrders(c echo.Context) error {
	var status *string
	if err := runtime.BindQueryParameter("form", true, false, "status", c.QueryParams(), &status); err != nil {
		return s.fail(c, errs.NewValueIsInvalidErrorWithCause("status", err))
	}

	filter := ""
	if status != nil {
		filter = *status
	}

	query, err := queries.NewListOrdersQuery(filter)
	if err != nil {
		return s.fail(c, err)
	}

	orders, err := s.handlers.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	response := make([]OrderResponse, 0)
	for snapshot, readErr := range orders {
		if readErr != nil {
			return s.fail(c, readErr)
		}
		response = append(response, toOrderResponse(snapshot))
	}

	return c.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /orders.
func (s *Server) CreateOrder(c echo.Context) error {
	var body NewOrderRequest
	if err := c.Bind(&body); err != nil {
		return s.fail(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		body.Title,
		body.Description,
		body.GeoLat,
		body.GeoLng,
		order.Contact{Name: body.CustomerName, Phone: body.CustomerPhone},
	)
	if err != nil {
		return s.fail(c, err)
	}

	created, err := s.handlers.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, toOrderResponse(created.Snapshot()))
}

// GetOrder handles GET /orders/{id}.
func (s *Server) GetOrder(c echo.Context) error {
	orderID, err := bindOrderID(c)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.fail(c, err)
	}

	details, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, toOrderDetailsResponse(details))
}

// AssignOrder handles POST /orders/{id}/assign. Without a masterId the
// nearest free master is chosen.
func (s *Server) AssignOrder(c echo.Context) error {
	orderID, err := bindOrderID(c)
	if err != nil {
		return s.fail(c, err)
	}

	var body AssignRequest
	if err = c.Bind(&body); err != nil {
		return s.fail(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	var masterID *kernel.UUID
	if body.MasterID != nil {
		id, convErr := kernel.UUIDFromBytes(body.MasterID[:])
		if convErr != nil {
			return s.fail(c, errs.NewValueIsInvalidErrorWithCause("masterId", convErr))
		}
		masterID = &id
	}

	cmd, err := commands.NewAssignMasterCommand(orderID, masterID)
	if err != nil {
		return s.fail(c, err)
	}

	assigned, err := s.handlers.AssignMaster.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, toOrderResponse(assigned.Snapshot()))
}

// UpdateOrderStatus handles PATCH /orders/{id}/status.
func (s *Server) UpdateOrderStatus(c echo.Context) error {
	orderID, err := bindOrderID(c)
	if err != nil {
		return s.fail(c, err)
	}

	var body StatusRequest
	if err = c.Bind(&body); err != nil {
		return s.fail(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewChangeStatusCommand(orderID, body.Status)
	if err != nil {
		return s.fail(c, err)
	}

	return s.changeStatus(c, cmd)
}

// CompleteOrder handles POST /orders/{id}/complete.
func (s *Server) CompleteOrder(c echo.Context) error {
	orderID, err := bindOrderID(c)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID)
	if err != nil {
		return s.fail(c, err)
	}

	return s.changeStatus(c, cmd)
}

// CancelOrder handles POST /orders/{id}/cancel.
func (s *Server) CancelOrder(c echo.Context) error {
	orderID, err := bindOrderID(c)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return s.fail(c, err)
	}

	return s.changeStatus(c, cmd)
}

func (s *Server) changeStatus(c echo.Context, cmd commands.ChangeStatusCommand) error {
	changed, err := s.handlers.ChangeStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, toOrderResponse(changed.Snapshot()))
}

// AttachAdl handles POST /orders/{id}/adl.
func (s *Server) AttachAdl(c echo.Context) error {
	orderID, err := bindOrderID(c)
	if err != nil {
		return s.fail(c, err)
	}

	var body NewAdlEntryRequest
	if err = c.Bind(&body); err != nil {
		return s.fail(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewAttachAdlCommand(
		orderID,
		kernel.NewUUID(),
		body.Type,
		body.URL,
		body.GpsLat,
		body.GpsLng,
		body.CapturedAt,
		body.Meta,
	)
	if err != nil {
		return s.fail(c, err)
	}

	entry, err := s.handlers.AttachAdl.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, toAdlEntryResponse(entry.Snapshot()))
}

// ListMasters handles GET /masters.
func (s *Server) ListMasters(c echo.Context) error {
	masters, err := s.handlers.ListMasters.Handle(c.Request().Context(), queries.NewListMastersQuery())
	if err != nil {
		return s.fail(c, err)
	}

	response := make([]MasterResponse, 0, len(masters))
	for _, m := range masters {
		response = append(response, MasterResponse{
			ID:     m.ID.String(),
			Name:   m.Name,
			GeoLat: m.Location.Latitude(),
			GeoLng: m.Location.Longitude(),
		})
	}

	return c.JSON(http.StatusOK, response)
}

// CreateMaster handles POST /masters.
func (s *Server) CreateMaster(c echo.Context) error {
	var body NewMasterRequest
	if err := c.Bind(&body); err != nil {
		return s.fail(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	created, err := s.handlers.CreateMaster.Handle(
		c.Request().Context(),
		commands.NewCreateMasterCommand(body.Name, body.GeoLat, body.GeoLng),
	)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, toMasterResponse(created))
}

// fail writes err as an error body. Unclassified errors are logged and
// reported without their message.
func (s *Server) fail(c echo.Context, err error) error {
	status, retryable := statusOf(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err,
		)
		message = http.StatusText(status)
	}

	return c.JSON(status, ErrorResponse{Error: message, Retryable: retryable})
}

func bindOrderID(c echo.Context) (kernel.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "id", c.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}

	return orderID, nil
}
