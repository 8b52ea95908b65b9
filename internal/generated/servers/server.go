package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Registers several items for one customer.
	// (POST /batchorder)
	RegisterBatchOrder(ctx echo.Context) error
	// Returns a registered batch order.
	// (GET /batchorder/{batchOrderId})
	GetBatchOrder(ctx echo.Context, batchOrderId openapi_types.UUID) error
	// Liveness probe.
	// (GET /health)
	GetHealth(ctx echo.Context) error
	// Returns the status of an order.
	// (GET /orderstatus/{orderId})
	GetOrderStatus(ctx echo.Context, orderId string) error
	// Answers a free-text order request.
	// (POST /resolve)
	ResolveOrderRequest(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// RegisterBatchOrder converts echo context to params.
func (w *ServerInterfaceWrapper) RegisterBatchOrder(ctx echo.Context) error {
	return w.Handler.RegisterBatchOrder(ctx)
}

// GetBatchOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetBatchOrder(ctx echo.Context) error {
	var batchOrderId openapi_types.UUID

	err := runtime.BindStyledParameterWithOptions("simple", "batchOrderId", ctx.Param("batchOrderId"), &batchOrderId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter batchOrderId: %s", err))
	}

	return w.Handler.GetBatchOrder(ctx, batchOrderId)
}

// GetHealth converts echo context to params.
func (w *ServerInterfaceWrapper) GetHealth(ctx echo.Context) error {
	return w.Handler.GetHealth(ctx)
}

// GetOrderStatus converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrderStatus(ctx echo.Context) error {
	var orderId string

	err := runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	return w.Handler.GetOrderStatus(ctx, orderId)
}

// ResolveOrderRequest converts echo context to params.
func (w *ServerInterfaceWrapper) ResolveOrderRequest(ctx echo.Context) error {
	return w.Handler.ResolveOrderRequest(ctx)
}

// EchoRouter is the subset of echo.Echo and echo.Group used for registration.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends baseURL to the paths,
// so that the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST(baseURL+"/batchorder", wrapper.RegisterBatchOrder)
	router.GET(baseURL+"/batchorder/:batchOrderId", wrapper.GetBatchOrder)
	router.GET(baseURL+"/health", wrapper.GetHealth)
	router.GET(baseURL+"/orderstatus/:orderId", wrapper.GetOrderStatus)
	router.POST(baseURL+"/resolve", wrapper.ResolveOrderRequest)
}
