package middleware

import (
	"github.com/farellandr/fyyur/internal/helpers"
	"github.com/gin-gonic/gin"
)

// FlashMiddleware makes the signer available to handlers and loads any
// flash messages carried over from the previous response. Messages are
// shown once: the cookie is cleared as soon as it has been read. A cookie
// that fails verification is dropped silently.
func FlashMiddleware(signer *helpers.FlashSigner) gin.HandlerFunc {
	return func(c *gin.Context) {
		helpers.SetFlashSigner(c, signer)

		if token, err := c.Cookie(helpers.FlashCookieName); err == nil && token != "" {
			if messages, err := signer.Verify(token); err == nil {
				helpers.SetFlashes(c, messages)
			}
			helpers.ClearFlashCookie(c)
		}

		c.Next()
	}
}
