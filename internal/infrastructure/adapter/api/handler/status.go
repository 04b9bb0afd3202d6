package handler

import (
	"net/http"

	errs "github.com/amirhossein-jamali/casino-wallet/internal/domain/error"
)

// statusForCode maps a domain error code to an HTTP status
func statusForCode(code int) int {
	switch code {
	case errs.CodeInvalidAmount, errs.CodeInvalidPlayerID, errs.CodeOutOfRange,
		errs.CodeUnknownOperation, errs.CodeInvalidRequest:
		return http.StatusBadRequest
	case errs.CodeInsufficientFunds:
		return http.StatusUnprocessableEntity
	case errs.CodePlayerNotFound:
		return http.StatusNotFound
	case errs.CodeSessionUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// statusFor maps a domain error to an HTTP status
func statusFor(err error) int {
	return statusForCode(errs.ErrorCode(err))
}
