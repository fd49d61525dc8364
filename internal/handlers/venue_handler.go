package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/farellandr/fyyur/internal/forms"
	"github.com/farellandr/fyyur/internal/helpers"
	"github.com/farellandr/fyyur/internal/repository"
	"github.com/farellandr/fyyur/internal/views"
	"github.com/gin-gonic/gin"
)

func (h *Handler) ListVenues(c *gin.Context) {
	venues, err := h.store.ListVenues(c.Request.Context())
	if err != nil {
		h.failRead(c, "list venues", err)
		return
	}

	render(c, http.StatusOK, "pages/venues.html", gin.H{
		"Title": "Venues",
		"Areas": views.GroupByArea(venues),
	})
}

func (h *Handler) SearchVenues(c *gin.Context) {
	term := c.PostForm("search_term")

	venues, err := h.store.SearchVenues(c.Request.Context(), term)
	if err != nil {
		h.failRead(c, "search venues", err)
		return
	}

	render(c, http.StatusOK, "pages/search_venues.html", gin.H{
		"Title":   "Venue search",
		"Results": views.NewVenueSearchResult(term, venues),
	})
}

func (h *Handler) GetVenue(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	venue, err := h.store.GetVenue(ctx, id)
	if err != nil {
		h.failRead(c, "get venue", err)
		return
	}
	shows, err := h.store.VenueShows(ctx, id)
	if err != nil {
		h.failRead(c, "get venue shows", err)
		return
	}
	artists, err := h.store.ArtistsByIDs(ctx, views.CounterpartIDs(shows, views.ArtistOf))
	if err != nil {
		h.failRead(c, "get venue artists", err)
		return
	}

	detail, err := views.NewVenueDetail(*venue, shows, artists, h.now())
	if err != nil {
		h.failRead(c, "build venue detail", err)
		return
	}

	render(c, http.StatusOK, "pages/show_venue.html", gin.H{
		"Title": venue.Name,
		"Venue": detail,
	})
}

func (h *Handler) CreateVenueForm(c *gin.Context) {
	data := formData(forms.VenueForm{})
	data["Title"] = "New venue"
	render(c, http.StatusOK, "forms/new_venue.html", data)
}

func (h *Handler) CreateVenue(c *gin.Context) {
	var form forms.VenueForm
	if err := c.ShouldBind(&form); err != nil {
		renderForm(c, "forms/new_venue.html", gin.H{"Title": "New venue", "Form": form},
			fmt.Sprintf("An error occurred. Venue %s could not be listed.", c.PostForm("name")))
		return
	}

	venue, err := h.store.CreateVenue(c.Request.Context(), form.Fields())
	if err != nil {
		h.logger.Errorw("create venue failed", "name", form.Name, "error", err)
		redirect(c, "/", fmt.Sprintf("An error occurred. Venue %s could not be listed.", form.Name))
		return
	}

	h.logger.Infow("venue created", "id", venue.ID, "name", venue.Name)
	redirect(c, "/", fmt.Sprintf("Venue %s was successfully listed!", venue.Name))
}

func (h *Handler) EditVenueForm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	venue, err := h.store.GetVenue(c.Request.Context(), id)
	if err != nil {
		h.failRead(c, "edit venue form", err)
		return
	}

	data := formData(forms.VenueFormFrom(*venue))
	data["Title"] = "Edit " + venue.Name
	data["ID"] = venue.ID
	render(c, http.StatusOK, "forms/edit_venue.html", data)
}

func (h *Handler) UpdateVenue(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var form forms.VenueForm
	if err := c.ShouldBind(&form); err != nil {
		if _, err := h.store.GetVenue(c.Request.Context(), id); err != nil {
			h.failRead(c, "update venue", err)
			return
		}
		renderForm(c, "forms/edit_venue.html", gin.H{"Title": "Edit venue", "Form": form, "ID": id},
			"An error occurred. Venue could not be changed.")
		return
	}

	location := "/venues/" + id.String()
	if _, err := h.store.UpdateVenue(c.Request.Context(), id, form.Fields()); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c)
			return
		}
		h.logger.Errorw("update venue failed", "id", id, "error", err)
		redirect(c, location, "An error occurred. Venue could not be changed.")
		return
	}

	redirect(c, location, "Venue was successfully updated!")
}

// DeleteVenue is called from the venue page script, which navigates on its
// own once the response arrives. It answers with a bare status so the
// queued notice is read by that navigation and not by a followed redirect.
func (h *Handler) DeleteVenue(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	err := h.store.DeleteVenue(c.Request.Context(), id)
	switch {
	case err == nil:
		h.logger.Infow("venue deleted", "id", id)
		helpers.Flash(c, fmt.Sprintf("Venue %s was successfully deleted.", id))
		c.Status(http.StatusNoContent)
	case errors.Is(err, repository.ErrNotFound):
		NotFound(c)
	case errors.Is(err, repository.ErrConflict):
		helpers.Flash(c, fmt.Sprintf("Venue %s still has shows booked and could not be deleted.", id))
		c.Status(http.StatusConflict)
	default:
		h.logger.Errorw("delete venue failed", "id", id, "error", err)
		helpers.Flash(c, fmt.Sprintf("An error occurred. Venue %s could not be deleted.", id))
		c.Status(http.StatusInternalServerError)
	}
}
