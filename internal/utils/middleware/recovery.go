package middleware

import (
	"fmt"
	"runtime/debug"

	apperrors "github.com/alurafood/payments/internal/utils/errors"
	"github.com/alurafood/payments/internal/utils/logger"
	"github.com/alurafood/payments/internal/utils/response"
	"github.com/gin-gonic/gin"
)

// Recovery returns a middleware that recovers from panics.
// If log is nil, it will use a default logger.
func Recovery(log *logger.Logger) gin.HandlerFunc {
	if log == nil {
		log = logger.New(nil)
	}

	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				err := fmt.Errorf("panic: %v", rec)
				log.ForRequest(c.Request.Context()).Error("panic recovered",
					logger.Err(err),
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"client_ip", c.ClientIP(),
					"stack", string(debug.Stack()),
				)

				response.Error(c, apperrors.Internal("", err))
			}
		}()
		c.Next()
	}
}
