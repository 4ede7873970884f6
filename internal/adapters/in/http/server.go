package http

import (
	"errors"
	"net/http"
	"time"

	"agrimarket/internal/core/application/usecases/commands"
	"agrimarket/internal/core/application/usecases/queries"
	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/core/domain/model/logistics"
	"agrimarket/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles HTTP requests for the marketplace API.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	addStockHandler              commands.AddStockCommandHandler
	createOrderHandler           commands.CreateOrderCommandHandler
	confirmCapacityHandler       commands.ConfirmCapacityCommandHandler
	assignLogisticsHandler       commands.AssignLogisticsCommandHandler
	updateLogisticsStatusHandler commands.UpdateLogisticsStatusCommandHandler

	// Query handlers
	getStockHandler     queries.GetStockQueryHandler
	getOrdersHandler    queries.GetOrdersQueryHandler
	getOrderHandler     queries.GetOrderQueryHandler
	getLogisticsHandler queries.GetLogisticsQueryHandler
	getKPIReportHandler queries.GetKPIReportQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	addStockHandler commands.AddStockCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	confirmCapacityHandler commands.ConfirmCapacityCommandHandler,
	assignLogisticsHandler commands.AssignLogisticsCommandHandler,
	updateLogisticsStatusHandler commands.UpdateLogisticsStatusCommandHandler,
	getStockHandler queries.GetStockQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getLogisticsHandler queries.GetLogisticsQueryHandler,
	getKPIReportHandler queries.GetKPIReportQueryHandler,
) *Server {
	return &Server{
		addStockHandler:              addStockHandler,
		createOrderHandler:           createOrderHandler,
		confirmCapacityHandler:       confirmCapacityHandler,
		assignLogisticsHandler:       assignLogisticsHandler,
		updateLogisticsStatusHandler: updateLogisticsStatusHandler,
		getStockHandler:              getStockHandler,
		getOrdersHandler:             getOrdersHandler,
		getOrderHandler:              getOrderHandler,
		getLogisticsHandler:          getLogisticsHandler,
		getKPIReportHandler:          getKPIReportHandler,
	}
}

// RegisterRoutes attaches every API route to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	e.POST("/api/stock", s.AddStock)
	e.GET("/api/stock", s.GetStock)

	e.POST("/api/orders", s.CreateOrder)
	e.GET("/api/orders", s.GetOrders)
	e.GET("/api/orders/:id", s.GetOrder)
	e.POST("/api/orders/:id/confirm-capacity", s.ConfirmCapacity)
	e.POST("/api/orders/:id/logistics", s.AssignLogistics)

	e.GET("/api/logistics", s.GetLogistics)
	e.PUT("/api/logistics/:id/status", s.UpdateLogisticsStatus)

	e.GET("/api/analytics/kpis", s.GetKPIReport)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// AddStock handles POST /api/stock - publishes a new stock listing.
func (s *Server) AddStock(ctx echo.Context) error {
	var newStock NewStock
	if err := ctx.Bind(&newStock); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	farmerID, err := kernel.UUIDFromString(newStock.FarmerID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid farmer_id: " + err.Error(),
		})
	}

	var harvestDate *time.Time
	if newStock.HarvestDate != nil {
		parsed, parseErr := time.Parse(harvestDateLayout, *newStock.HarvestDate)
		if parseErr != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid harvest_date: expected YYYY-MM-DD",
			})
		}
		harvestDate = &parsed
	}

	cmd, err := commands.NewAddStockCommand(
		kernel.NewUUID(),
		farmerID,
		newStock.Crop,
		newStock.Variety,
		newStock.QtyKg,
		newStock.Location,
		harvestDate,
		newStock.PricePerKg,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	listing, err := s.addStockHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, stockFromDomain(listing))
}

// GetStock handles GET /api/stock - lists sellable stock, optionally filtered
// by crop substring and exact location.
func (s *Server) GetStock(ctx echo.Context) error {
	query := queries.NewGetStockQuery(
		ctx.QueryParam("crop"),
		ctx.QueryParam("location"),
	)

	listings, err := s.getStockHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]Stock, len(listings))
	for i, listing := range listings {
		response[i] = stockFromQuery(listing)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/orders - places a new purchase order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	stockID, err := kernel.UUIDFromString(newOrder.StockID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid stock_id: " + err.Error(),
		})
	}

	buyerID, err := kernel.UUIDFromString(newOrder.BuyerID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid buyer_id: " + err.Error(),
		})
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), stockID, buyerID, newOrder.QtyKg, newOrder.PricePerKg)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderFromDomain(created))
}

// GetOrders handles GET /api/orders - lists orders, optionally filtered by buyer.
func (s *Server) GetOrders(ctx echo.Context) error {
	var buyerFilter *kernel.UUID
	if raw := ctx.QueryParam("buyer_id"); raw != "" {
		buyerID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid buyer_id: " + err.Error(),
			})
		}
		buyerFilter = &buyerID
	}

	query, err := queries.NewGetOrdersQuery(buyerFilter)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]Order, len(orders))
	for i, row := range orders {
		response[i] = orderFromQuery(row)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/orders/:id - retrieves a single order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id: " + err.Error(),
		})
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	row, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromQuery(row))
}

// ConfirmCapacity handles POST /api/orders/:id/confirm-capacity - evaluates
// remaining stock capacity and records the verdict on the order.
func (s *Server) ConfirmCapacity(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id: " + err.Error(),
		})
	}

	cmd, err := commands.NewConfirmCapacityCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	confirmed, err := s.confirmCapacityHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromDomain(confirmed))
}

// AssignLogistics handles POST /api/orders/:id/logistics - arranges transport
// for a capacity-confirmed order.
func (s *Server) AssignLogistics(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id: " + err.Error(),
		})
	}

	var newLogistics NewLogistics
	if err = ctx.Bind(&newLogistics); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	mode, err := logistics.ModeFromString(newLogistics.Mode)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAssignLogisticsCommand(
		kernel.NewUUID(),
		orderID,
		mode,
		newLogistics.Carrier,
		newLogistics.Cost,
		newLogistics.Discount,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.assignLogisticsHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, logisticsFromDomain(result.Logistics))
}

// GetLogistics handles GET /api/logistics - lists all transport arrangements.
func (s *Server) GetLogistics(ctx echo.Context) error {
	query := queries.NewGetLogisticsQuery()

	arrangements, err := s.getLogisticsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]Logistics, len(arrangements))
	for i, row := range arrangements {
		response[i] = logisticsFromQuery(row)
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateLogisticsStatus handles PUT /api/logistics/:id/status - advances a
// transport arrangement; delivery completion also completes the linked order.
func (s *Server) UpdateLogisticsStatus(ctx echo.Context) error {
	logisticsID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid logistics id: " + err.Error(),
		})
	}

	var update LogisticsStatusUpdate
	if err = ctx.Bind(&update); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	newStatus, err := logistics.StatusFromString(update.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateLogisticsStatusCommand(logisticsID, newStatus)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.updateLogisticsStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, logisticsFromDomain(result.Logistics))
}

// GetKPIReport handles GET /api/analytics/kpis - computes the fulfillment
// KPI report on demand.
func (s *Server) GetKPIReport(ctx echo.Context) error {
	query := queries.NewGetKPIReportQuery()

	report, err := s.getKPIReportHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, kpiReportFromQuery(report))
}

// respondError maps domain errors onto HTTP status codes.
func respondError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, kernel.ErrUUIDIsNotConstructed):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidState),
		errors.Is(err, errs.ErrConflict):
		code = http.StatusConflict
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}
