package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/farellandr/fyyur/internal/forms"
	"github.com/farellandr/fyyur/internal/helpers"
	"github.com/farellandr/fyyur/internal/repository"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler serves every page. It holds the store explicitly; nothing is
// shared between requests except the database behind it.
type Handler struct {
	store  *repository.Store
	logger *zap.SugaredLogger
	now    func() time.Time
}

func New(store *repository.Store, logger *zap.SugaredLogger) *Handler {
	return &Handler{store: store, logger: logger, now: time.Now}
}

func Home(c *gin.Context) {
	render(c, http.StatusOK, "pages/home.html", gin.H{})
}

func NotFound(c *gin.Context) {
	helpers.RespondWithError(c, http.StatusNotFound)
}

func render(c *gin.Context, status int, name string, data gin.H) {
	if _, ok := data["Messages"]; !ok {
		data["Messages"] = helpers.Flashes(c)
	}
	c.HTML(status, name, data)
}

// renderForm re-renders a rejected form in place with notice shown on top.
func renderForm(c *gin.Context, name string, data gin.H, notice string) {
	data["Messages"] = append(helpers.Flashes(c), notice)
	data["Genres"] = forms.Genres
	data["States"] = forms.States
	c.HTML(http.StatusBadRequest, name, data)
}

func formData(form any) gin.H {
	return gin.H{
		"Form":   form,
		"Genres": forms.Genres,
		"States": forms.States,
	}
}

// redirect flashes message and sends the client to location with a GET.
func redirect(c *gin.Context, location, message string) {
	helpers.Flash(c, message)
	c.Redirect(http.StatusSeeOther, location)
}

// pathID parses the :id parameter. A malformed id cannot match any row, so
// it is answered with the not-found page.
func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := helpers.ParseID(c.Param("id"))
	if err != nil {
		NotFound(c)
		return uuid.Nil, false
	}
	return id, true
}

// failRead maps a read error to the matching error page.
func (h *Handler) failRead(c *gin.Context, op string, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		NotFound(c)
		return
	}
	h.logger.Errorw("read failed", "op", op, "path", c.Request.URL.Path, "error", err)
	helpers.RespondWithError(c, http.StatusInternalServerError)
}
