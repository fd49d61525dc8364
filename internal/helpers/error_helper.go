package helpers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	NotFoundTemplate    = "errors/404.html"
	ServerErrorTemplate = "errors/500.html"
)

func HTTPStatusText(code int) string {
	return http.StatusText(code)
}

// RespondWithError renders the error page matching statusCode and aborts
// the handler chain. Anything other than 404 gets the server error page.
func RespondWithError(c *gin.Context, statusCode int) {
	name := ServerErrorTemplate
	if statusCode == http.StatusNotFound {
		name = NotFoundTemplate
	}
	c.HTML(statusCode, name, gin.H{
		"Title":    HTTPStatusText(statusCode),
		"Messages": Flashes(c),
	})
	c.Abort()
}
