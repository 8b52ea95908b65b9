// Package http exposes orderdesk over HTTP with echo. Handlers translate requests into
// commands and queries, and map domain errors onto status codes.
package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/generated/servers"
	"orderdesk/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// BatchRegisteredMessage prefixes the id in a successful batch registration response.
const BatchRegisteredMessage = "Batch order registered successfully. Your batch order id is: "

type (
	// OrderStatusReader answers order status queries.
	OrderStatusReader interface {
		Handle(ctx context.Context, query queries.GetOrderStatusQuery) (queries.GetOrderStatusQueryResponse, error)
	}

	// BatchRegistrar registers batch orders.
	BatchRegistrar interface {
		Handle(ctx context.Context, cmd commands.RegisterBatchOrderCommand) (kernel.UUID, error)
	}

	// BatchOrderReader answers batch order queries.
	BatchOrderReader interface {
		Handle(ctx context.Context, query queries.GetBatchOrderQuery) (queries.GetBatchOrderQueryResponse, error)
	}

	// Responder answers free-text order requests.
	Responder interface {
		Respond(ctx context.Context, userText string) string
		RespondWithDraft(ctx context.Context, userText, draft string) string
	}
)

// Server implements servers.ServerInterface.
type Server struct {
	orderStatus OrderStatusReader
	registrar   BatchRegistrar
	batchOrders BatchOrderReader
	responder   Responder
	logger      *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	orderStatus OrderStatusReader,
	registrar BatchRegistrar,
	batchOrders BatchOrderReader,
	responder Responder,
	logger *slog.Logger,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		orderStatus: orderStatus,
		registrar:   registrar,
		batchOrders: batchOrders,
		responder:   responder,
		logger:      logger.With("component", "HTTPServer"),
	}
}

// GetOrderStatus handles GET /orderstatus/{orderId}.
func (s *Server) GetOrderStatus(ctx echo.Context, orderID string) error {
	query, err := queries.NewGetOrderStatusQuery(orderID)
	if err != nil {
		return ctx.String(http.StatusBadRequest, "order id is required.")
	}

	res, err := s.orderStatus.Handle(ctx.Request().Context(), query)
	if err != nil {
		s.logger.ErrorContext(ctx.Request().Context(), "failed to get order status",
			"orderId", query.OrderID(), "error", err)
		return ctx.String(http.StatusInternalServerError, "failed to get order status.")
	}

	if !res.Found {
		return ctx.String(http.StatusNotFound, commands.NotFoundText(res.OrderID))
	}

	return ctx.String(http.StatusOK,
		fmt.Sprintf("order %s is in status: %s (%s).", res.OrderID, res.Status, res.Item))
}

// MissingOrderID handles /orderstatus requests that carry no id at all.
func (s *Server) MissingOrderID(ctx echo.Context) error {
	return ctx.String(http.StatusBadRequest, "order id is required.")
}

// RegisterBatchOrder handles POST /batchorder.
func (s *Server) RegisterBatchOrder(ctx echo.Context) error {
	var body servers.RegisterBatchOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewRegisterBatchOrderCommand(body.Customer, body.Items)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid batch order: "+err.Error())
	}

	id, err := s.registrar.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if isValidationError(err) {
			return jsonError(ctx, http.StatusBadRequest, "Invalid batch order: "+err.Error())
		}
		s.logger.ErrorContext(ctx.Request().Context(), "failed to register batch order",
			"customer", cmd.Customer(), "error", err)
		return jsonError(ctx, http.StatusInternalServerError, "Failed to register batch order")
	}

	return ctx.JSON(http.StatusOK, servers.BatchOrderRegistered{
		BatchOrderId: id.Value(),
		Message:      BatchRegisteredMessage + id.String(),
	})
}

// GetBatchOrder handles GET /batchorder/{batchOrderId}.
func (s *Server) GetBatchOrder(ctx echo.Context, batchOrderID openapi_types.UUID) error {
	query, err := queries.NewGetBatchOrderQuery(batchOrderID.String())
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid batch order id")
	}

	res, err := s.batchOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return jsonError(ctx, http.StatusNotFound, "Batch order not found")
		}
		s.logger.ErrorContext(ctx.Request().Context(), "failed to get batch order",
			"batchOrderId", batchOrderID, "error", err)
		return jsonError(ctx, http.StatusInternalServerError, "Failed to get batch order")
	}

	return ctx.JSON(http.StatusOK, servers.BatchOrder{
		Id:        res.ID.Value(),
		Customer:  res.Customer,
		Items:     res.Items,
		CreatedAt: res.CreatedAt,
	})
}

// ResolveOrderRequest handles POST /resolve.
func (s *Server) ResolveOrderRequest(ctx echo.Context) error {
	var body servers.ResolveOrderRequestJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid request body")
	}
	if strings.TrimSpace(body.Message) == "" {
		return jsonError(ctx, http.StatusBadRequest, "Message is required")
	}

	var answer string
	if body.Draft != nil {
		answer = s.responder.RespondWithDraft(ctx.Request().Context(), body.Message, *body.Draft)
	} else {
		answer = s.responder.Respond(ctx.Request().Context(), body.Message)
	}

	return ctx.JSON(http.StatusOK, servers.ResolveResponse{Response: answer})
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

func jsonError(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, servers.Error{Code: code, Message: message})
}

func isValidationError(err error) bool {
	return errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsOutOfRange)
}
