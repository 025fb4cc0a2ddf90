package response

import (
	"net/http"
	"time"

	apperrors "github.com/alurafood/payments/internal/utils/errors"
	"github.com/gin-gonic/gin"
)

// now is replaced in tests.
var now = time.Now

// Error renders err as an error document, aborting the handler chain.
// The document is produced by apperrors.Classify against the request path.
func Error(c *gin.Context, err error) {
	path := ""
	if c.Request != nil && c.Request.URL != nil {
		path = c.Request.URL.Path
	}

	doc := apperrors.Classify(err, path, now())
	_ = c.Error(err)
	c.AbortWithStatusJSON(doc.StatusCode, doc)
}

// OK sends a 200 response with body.
func OK(c *gin.Context, body any) {
	c.JSON(http.StatusOK, body)
}

// Created sends a 201 response with a Location header.
func Created(c *gin.Context, location string, body any) {
	if location != "" {
		c.Header("Location", location)
	}
	c.JSON(http.StatusCreated, body)
}

// NoContent sends a 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
