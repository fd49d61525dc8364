package middleware

import (
	"io"
	"net/http"
	"runtime/debug"

	"github.com/farellandr/fyyur/internal/helpers"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recovery turns a panic in any handler into the server error page. The
// stack goes to the zap logger instead of gin's stderr writer.
func Recovery(logger *zap.SugaredLogger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		logger.Errorw("panic recovered",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"panic", recovered,
			"stack", string(debug.Stack()),
		)
		helpers.RespondWithError(c, http.StatusInternalServerError)
	})
}
