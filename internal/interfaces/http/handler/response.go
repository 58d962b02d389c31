package handler

import "github.com/felipesbcabral/desafio-pc-sub000/internal/interfaces/http/dto"

// The types below only describe the dto.Response envelope to swag. Handlers
// never build them; Success, Created and Page write dto.Response directly.

// DataResponse is the envelope around a single resource or a plain list
// @Description Successful response carrying one resource
type DataResponse[T any] struct {
	Success bool `json:"success" example:"true"`
	Data    T    `json:"data"`
}

// PageResponse is the envelope around one page of a filtered listing
// @Description Successful response carrying one page of results
type PageResponse[T any] struct {
	Success bool      `json:"success" example:"true"`
	Data    []T       `json:"data"`
	Meta    *dto.Meta `json:"meta"`
}

// ErrorResponse is the envelope of every failed request. error.code is one of
// the dto.ErrCode values and error.request_id echoes the X-Request-ID header.
// @Description Failed request
type ErrorResponse struct {
	Success bool           `json:"success" example:"false"`
	Error   *dto.ErrorInfo `json:"error"`
}
