package handler

import (
	"errors"
	"net/http"

	"ethsql/internal/core"
	"ethsql/pkg/jwt"
	"ethsql/pkg/sqltypes"
)

const oopsErr = "Oops! Something went wrong. Please try again later."

type Response struct {
	Message string      `json:"message,omitempty"` // short message for humans
	Data    interface{} `json:"data,omitempty"`    // actual payload (can be nil)
	Error   string      `json:"error,omitempty"`   // error detail (if any)
}

// errorStatus maps service errors to the status code returned to clients.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, core.ErrUserNotFound),
		errors.Is(err, core.ErrIncorrectPassword),
		errors.Is(err, core.ErrInvalidClaims),
		errors.Is(err, jwt.ErrTokenNotValid),
		errors.Is(err, jwt.ErrTokenExpired):
		return http.StatusUnauthorized
	case errors.Is(err, core.ErrNoTransactions):
		return http.StatusNotFound
	case errors.Is(err, core.ErrInvalidRLP),
		errors.Is(err, sqltypes.ErrMalformed),
		errors.Is(err, sqltypes.ErrLengthMismatch),
		errors.Is(err, sqltypes.ErrOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
