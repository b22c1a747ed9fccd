package response

import (
	"errors"
	"net/http"

	"marketing-portal/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// The portal's wire contract is flat: payloads are returned as-is on success,
// and every failure is `{"error": <message>}`. External form providers depend
// on these exact shapes.

// OK sends a 200 response with data.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created sends a 201 response with data.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Success sends a 201 response with the `{"success":true}` body used by the
// lead intake and manual-entry endpoints.
func Success(c *gin.Context) {
	c.JSON(http.StatusCreated, gin.H{"success": true})
}

// Error sends an error response. It checks if err is an *apperror.AppError
// and maps it accordingly, otherwise returns 500.
func Error(c *gin.Context, err error) {
	status, body := ErrorBody(err)
	c.JSON(status, body)
}

// ErrorBody resolves the status code and `{"error": ...}` body for an error
// without writing it, for handlers that audit the response before sending it.
func ErrorBody(err error) (int, gin.H) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPStatus, gin.H{"error": appErr.Message}
	}
	return http.StatusInternalServerError, gin.H{"error": "Internal server error"}
}
