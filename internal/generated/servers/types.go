// Package servers holds the HTTP contract of orderdesk: the OpenAPI document, the
// request and response models it defines and the echo wrapper that binds requests
// to a ServerInterface implementation.
package servers

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// BatchOrder defines model for BatchOrder.
type BatchOrder struct {
	CreatedAt time.Time          `json:"createdAt"`
	Customer  string             `json:"customer"`
	Id        openapi_types.UUID `json:"id"`
	Items     []string           `json:"items"`
}

// BatchOrderRegistered defines model for BatchOrderRegistered.
type BatchOrderRegistered struct {
	BatchOrderId openapi_types.UUID `json:"batchOrderId"`
	Message      string             `json:"message"`
}

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewBatchOrder defines model for NewBatchOrder.
type NewBatchOrder struct {
	Customer string   `json:"customer"`
	Items    []string `json:"items"`
}

// ResolveRequest defines model for ResolveRequest.
type ResolveRequest struct {
	Draft   *string `json:"draft,omitempty"`
	Message string  `json:"message"`
}

// ResolveResponse defines model for ResolveResponse.
type ResolveResponse struct {
	Response string `json:"response"`
}

// RegisterBatchOrderJSONRequestBody defines body for RegisterBatchOrder for application/json ContentType.
type RegisterBatchOrderJSONRequestBody = NewBatchOrder

// ResolveOrderRequestJSONRequestBody defines body for ResolveOrderRequest for application/json ContentType.
type ResolveOrderRequestJSONRequestBody = ResolveRequest
