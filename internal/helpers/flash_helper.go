package helpers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	FlashCookieName = "fyyur_flash"

	flashSignerKey  = "flash_signer"
	flashMessageKey = "flash_messages"
	flashPendingKey = "flash_pending"
)

func SetFlashSigner(c *gin.Context, signer *FlashSigner) {
	c.Set(flashSignerKey, signer)
}

func GetFlashSigner(c *gin.Context) *FlashSigner {
	signer, exists := c.Get(flashSignerKey)
	if !exists {
		return nil
	}
	return signer.(*FlashSigner)
}

// SetFlashes records the messages that arrived with the request.
func SetFlashes(c *gin.Context, messages []string) {
	c.Set(flashMessageKey, messages)
}

// Flashes returns the messages that arrived with the request.
func Flashes(c *gin.Context) []string {
	return c.GetStringSlice(flashMessageKey)
}

// Flash queues a message for the next page the client loads. Call it
// before writing the redirect.
func Flash(c *gin.Context, message string) {
	pending := append(c.GetStringSlice(flashPendingKey), message)
	c.Set(flashPendingKey, pending)

	signer := GetFlashSigner(c)
	if signer == nil {
		return
	}
	token, err := signer.Sign(pending)
	if err != nil {
		_ = c.Error(err)
		return
	}
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     FlashCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearFlashCookie expires the flash cookie once its messages were read.
func ClearFlashCookie(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     FlashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
