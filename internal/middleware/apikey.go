package middleware

import (
	"crypto/subtle"
	"net/http"

	"sensor-api/internal/apierror"

	"github.com/gin-gonic/gin"
)

// APIKeyHeader is the request header carrying the shared API key.
const APIKeyHeader = "X-Api-Key"

// APIKeyAuth rejects requests that do not carry the expected API key.
// A missing header yields 401, a mismatching key 403; in both cases the
// request never reaches the handler.
func APIKeyAuth(apiKey string) gin.HandlerFunc {
	expected := []byte(apiKey)

	return func(c *gin.Context) {
		provided := c.GetHeader(APIKeyHeader)
		if provided == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.Response{
				Code:    apierror.CodeUnauthorized,
				Message: "API key is missing.",
			})
			return
		}

		if subtle.ConstantTimeCompare([]byte(provided), expected) != 1 {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.Response{
				Code:    apierror.CodeForbidden,
				Message: "Invalid API key.",
			})
			return
		}

		c.Next()
	}
}
