package handlers

import (
	"net/http"

	"github.com/farellandr/fyyur/internal/forms"
	"github.com/farellandr/fyyur/internal/views"
	"github.com/gin-gonic/gin"
)

const showFailedMessage = "An error occurred. Show could not be listed."

func (h *Handler) ListShows(c *gin.Context) {
	ctx := c.Request.Context()

	shows, err := h.store.ListShows(ctx)
	if err != nil {
		h.failRead(c, "list shows", err)
		return
	}
	venues, err := h.store.VenuesByIDs(ctx, views.CounterpartIDs(shows, views.VenueOf))
	if err != nil {
		h.failRead(c, "list show venues", err)
		return
	}
	artists, err := h.store.ArtistsByIDs(ctx, views.CounterpartIDs(shows, views.ArtistOf))
	if err != nil {
		h.failRead(c, "list show artists", err)
		return
	}

	listing, err := views.NewShowListing(shows, venues, artists)
	if err != nil {
		h.failRead(c, "build show listing", err)
		return
	}

	render(c, http.StatusOK, "pages/shows.html", gin.H{
		"Title": "Shows",
		"Shows": listing,
	})
}

func (h *Handler) CreateShowForm(c *gin.Context) {
	render(c, http.StatusOK, "forms/new_show.html", gin.H{
		"Title": "New show",
		"Form":  forms.ShowForm{},
	})
}

func (h *Handler) CreateShow(c *gin.Context) {
	var form forms.ShowForm
	if err := c.ShouldBind(&form); err != nil {
		renderForm(c, "forms/new_show.html", gin.H{"Title": "New show", "Form": form}, showFailedMessage)
		return
	}
	artistID, venueID, startTime, err := form.Parse()
	if err != nil {
		renderForm(c, "forms/new_show.html", gin.H{"Title": "New show", "Form": form}, showFailedMessage)
		return
	}

	show, err := h.store.CreateShow(c.Request.Context(), artistID, venueID, startTime)
	if err != nil {
		h.logger.Errorw("create show failed", "artist_id", artistID, "venue_id", venueID, "error", err)
		redirect(c, "/", showFailedMessage)
		return
	}

	h.logger.Infow("show created", "id", show.ID, "artist_id", show.ArtistID, "venue_id", show.VenueID)
	redirect(c, "/", "Show was successfully listed!")
}
