package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error codes used on the wire. Every error body carries one of these.
const (
	CodeAuthenticationError = "AUTHENTICATION_ERROR"
	CodeBadRequest          = "BAD_REQUEST_ERROR"
	CodeNotFound            = "NOT_FOUND_ERROR"
	CodeInvalidVPA          = "INVALID_VPA"
	CodeInvalidCard         = "INVALID_CARD"
	CodeExpiredCard         = "EXPIRED_CARD"
	CodeInternalServerError = "INTERNAL_SERVER_ERROR"
	CodePaymentFailed       = "PAYMENT_FAILED"
)

// ErrorBody carries the machine-readable code and a human-readable
// description for a failed request.
type ErrorBody struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// ErrorResponse is the envelope for every non-2xx response.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// Error sends an error response with the given status, code and description
func Error(c *gin.Context, statusCode int, code, description string) {
	c.JSON(statusCode, ErrorResponse{Error: ErrorBody{Code: code, Description: description}})
}

// AuthenticationError sends a 401 with the fixed credentials message
func AuthenticationError(c *gin.Context) {
	Error(c, http.StatusUnauthorized, CodeAuthenticationError, "Invalid API credentials")
}

// BadRequest sends a 400 Bad Request response
func BadRequest(c *gin.Context, description string) {
	Error(c, http.StatusBadRequest, CodeBadRequest, description)
}

// NotFound sends a 404 Not Found response
func NotFound(c *gin.Context, description string) {
	Error(c, http.StatusNotFound, CodeNotFound, description)
}

// InternalServerError sends a 500 with a generic description; details
// stay in the logs.
func InternalServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, CodeInternalServerError, "Internal server error")
}
