// Package http is the inbound HTTP surface: three JSON endpoints for quotes,
// purchases and order lookup, mounted on echo alongside the static admin page.
package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	purchaseHandler  commands.PurchaseOrderCommandHandler
	getQuotesHandler queries.GetQuotesQueryHandler
	getOrderHandler  queries.GetOrderQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	purchaseHandler commands.PurchaseOrderCommandHandler,
	getQuotesHandler queries.GetQuotesQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
) *Server {
	return &Server{
		purchaseHandler:  purchaseHandler,
		getQuotesHandler: getQuotesHandler,
		getOrderHandler:  getOrderHandler,
	}
}

// RegisterRoutes mounts the API endpoints on e.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/order/:id", s.GetOrder)
	e.POST("/api/rates", s.GetRates)
	e.POST("/api/purchase", s.Purchase)
}

// GetOrder handles GET /api/order/:id - looks up a recorded order.
func (s *Server) GetOrder(ctx echo.Context) error {
	query, err := queries.NewGetOrderQuery(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	record, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, ErrorResponse{
				Code:    http.StatusNotFound,
				Message: "Order not found",
			})
		}
		return internalError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, recordToDTO(record))
}

// GetRates handles POST /api/rates - returns aggregated quotes covering every
// package. An empty list is a valid 200 response: no carrier service level is
// available for all packages.
func (s *Server) GetRates(ctx echo.Context) error {
	var req RatesRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	packages, err := packagesToDomain(req.Packages)
	if err != nil {
		return badRequest(ctx, err)
	}
	destination, err := req.Destination.toDomain()
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetQuotesQuery(packages, destination)
	if err != nil {
		return badRequest(ctx, err)
	}

	quotes, err := s.getQuotesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusBadGateway, ErrorResponse{
			Code:    http.StatusBadGateway,
			Message: err.Error(),
		})
	}

	response := make([]QuoteDTO, 0, len(quotes))
	for _, quote := range quotes {
		response = append(response, quoteToDTO(quote))
	}
	return ctx.JSON(http.StatusOK, response)
}

// Purchase handles POST /api/purchase - buys one label per package. A failure
// part-way returns 502 with the labels already issued, which are charged and
// never rolled back.
func (s *Server) Purchase(ctx echo.Context) error {
	var req PurchaseRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	cmd, err := s.buildPurchaseCommand(req)
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := s.purchaseHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, commands.ErrDuplicateOrder) {
			return ctx.JSON(http.StatusConflict, ErrorResponse{
				Code:    http.StatusConflict,
				Message: "Order has already been purchased",
			})
		}
		return internalError(ctx, err)
	}

	if result.Failed() {
		return ctx.JSON(http.StatusBadGateway, ErrorResponse{
			Code:            http.StatusBadGateway,
			Message:         result.Err.Error(),
			CompletedLabels: labelsToDTO(result.Labels),
		})
	}

	return ctx.JSON(http.StatusOK, PurchaseResponse{
		OrderID: req.OrderID,
		Labels:  labelsToDTO(result.Labels),
	})
}

func (s *Server) buildPurchaseCommand(req PurchaseRequest) (commands.PurchaseOrderCommand, error) {
	packages, err := packagesToDomain(req.Packages)
	if err != nil {
		return commands.PurchaseOrderCommand{}, err
	}
	destination, err := req.Destination.toDomain()
	if err != nil {
		return commands.PurchaseOrderCommand{}, err
	}
	selections, err := selectionsToDomain(req.Selections)
	if err != nil {
		return commands.PurchaseOrderCommand{}, err
	}

	var chosen commands.ChosenQuote
	if req.OrderID != "" && req.Chosen != nil {
		total, moneyErr := kernel.NewMoneyFromString(req.Chosen.Amount, req.Chosen.Currency)
		if moneyErr != nil {
			return commands.PurchaseOrderCommand{}, moneyErr
		}
		chosen, err = commands.NewChosenQuote(req.Chosen.Method, req.Chosen.EstimatedDays, total)
		if err != nil {
			return commands.PurchaseOrderCommand{}, err
		}
	}

	return commands.NewPurchaseOrderCommand(packages, destination, selections, req.OrderID, chosen)
}

func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}

func internalError(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
	})
}
