package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gavelapp/goapi/domain"
	"github.com/gavelapp/goapi/service/query"
)

// JsonResponse is the envelope shared by every endpoint
type JsonResponse struct {
	Ok      bool        `json:"ok"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// statusOf overrides the handler supplied status for well known domain errors
func statusOf(err error, fallback int) int {
	switch {
	case errors.Is(err, domain.ErrNotFound) || errors.Is(err, query.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUnauthenticated) || errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrConflict) || errors.Is(err, domain.ErrAlreadyFinalized) || errors.Is(err, query.ErrDuplicateKey):
		return http.StatusConflict
	case errors.Is(err, domain.ErrExpired):
		return http.StatusGone
	case errors.Is(err, domain.ErrInvalidInput) ||
		errors.Is(err, domain.ErrBadParamInput) ||
		errors.Is(err, domain.ErrBidTooLow) ||
		errors.Is(err, domain.ErrSelfBid) ||
		errors.Is(err, domain.ErrNoWinner):
		return http.StatusBadRequest
	}
	return fallback
}

func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		status = statusOf(err, status)
		return c.JSON(status, JsonResponse{Ok: false, Message: err.Error()})
	}

	if status >= 400 {
		msg, _ := data.(string)
		return c.JSON(status, JsonResponse{Ok: false, Message: msg})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{Ok: true, Data: data})
	}

	return c.JSON(status, data)
}
