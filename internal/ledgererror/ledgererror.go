package ledgererror

import (
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
)

type ErrorCode string

const (
	ErrInvalidAmount     ErrorCode = "INVALID_AMOUNT"
	ErrInactiveAccount   ErrorCode = "INACTIVE_ACCOUNT"
	ErrInsufficientFunds ErrorCode = "INSUFFICIENT_FUNDS"
	ErrBelowMinimum      ErrorCode = "BELOW_MINIMUM_BALANCE"
	ErrOverdraftExceeded ErrorCode = "OVERDRAFT_LIMIT_EXCEEDED"
	ErrValidation        ErrorCode = "VALIDATION_ERROR"
	ErrAccountNotFound   ErrorCode = "ACCOUNT_NOT_FOUND"
	ErrConflict          ErrorCode = "CONFLICT"
	ErrInternalServer    ErrorCode = "INTERNAL_SERVER_ERROR"
)

// LedgerError is the error type returned by every failing domain operation.
// The shell maps it to a user-facing representation; the domain never
// formats presentation text.
type LedgerError struct {
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func (e LedgerError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewLedgerError(code ErrorCode, message string, details interface{}) LedgerError {
	if details != nil {
		logrus.Error(details)
	}
	return LedgerError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// Is reports whether err is a LedgerError carrying the given code.
func Is(err error, code ErrorCode) bool {
	ledgerErr, ok := err.(LedgerError)
	return ok && ledgerErr.Code == code
}

func MapErrorToHTTPStatus(err error) int {
	if ledgerErr, ok := err.(LedgerError); ok {
		switch ledgerErr.Code {
		case ErrAccountNotFound:
			return http.StatusNotFound
		case ErrConflict:
			return http.StatusConflict
		case ErrInvalidAmount, ErrValidation:
			return http.StatusBadRequest
		case ErrInactiveAccount:
			return http.StatusForbidden
		case ErrInsufficientFunds, ErrBelowMinimum, ErrOverdraftExceeded:
			return http.StatusUnprocessableEntity
		case ErrInternalServer:
			return http.StatusInternalServerError
		default:
			return http.StatusInternalServerError
		}
	}
	return http.StatusInternalServerError
}
