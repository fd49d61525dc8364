package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/farellandr/fyyur/internal/forms"
	"github.com/farellandr/fyyur/internal/repository"
	"github.com/farellandr/fyyur/internal/views"
	"github.com/gin-gonic/gin"
)

func (h *Handler) ListArtists(c *gin.Context) {
	artists, err := h.store.ListArtists(c.Request.Context())
	if err != nil {
		h.failRead(c, "list artists", err)
		return
	}

	render(c, http.StatusOK, "pages/artists.html", gin.H{
		"Title":   "Artists",
		"Artists": views.NewArtistListing(artists),
	})
}

func (h *Handler) SearchArtists(c *gin.Context) {
	term := c.PostForm("search_term")

	artists, err := h.store.SearchArtists(c.Request.Context(), term)
	if err != nil {
		h.failRead(c, "search artists", err)
		return
	}

	render(c, http.StatusOK, "pages/search_artists.html", gin.H{
		"Title":   "Artist search",
		"Results": views.NewArtistSearchResult(term, artists),
	})
}

func (h *Handler) GetArtist(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	artist, err := h.store.GetArtist(ctx, id)
	if err != nil {
		h.failRead(c, "get artist", err)
		return
	}
	shows, err := h.store.ArtistShows(ctx, id)
	if err != nil {
		h.failRead(c, "get artist shows", err)
		return
	}
	venues, err := h.store.VenuesByIDs(ctx, views.CounterpartIDs(shows, views.VenueOf))
	if err != nil {
		h.failRead(c, "get artist venues", err)
		return
	}

	detail, err := views.NewArtistDetail(*artist, shows, venues, h.now())
	if err != nil {
		h.failRead(c, "build artist detail", err)
		return
	}

	render(c, http.StatusOK, "pages/show_artist.html", gin.H{
		"Title":  artist.Name,
		"Artist": detail,
	})
}

func (h *Handler) CreateArtistForm(c *gin.Context) {
	data := formData(forms.ArtistForm{})
	data["Title"] = "New artist"
	render(c, http.StatusOK, "forms/new_artist.html", data)
}

func (h *Handler) CreateArtist(c *gin.Context) {
	var form forms.ArtistForm
	if err := c.ShouldBind(&form); err != nil {
		renderForm(c, "forms/new_artist.html", gin.H{"Title": "New artist", "Form": form},
			fmt.Sprintf("An error occurred. Artist %s could not be listed.", c.PostForm("name")))
		return
	}

	artist, err := h.store.CreateArtist(c.Request.Context(), form.Fields())
	if err != nil {
		h.logger.Errorw("create artist failed", "name", form.Name, "error", err)
		redirect(c, "/", fmt.Sprintf("An error occurred. Artist %s could not be listed.", form.Name))
		return
	}

	h.logger.Infow("artist created", "id", artist.ID, "name", artist.Name)
	redirect(c, "/", fmt.Sprintf("Artist %s was successfully listed!", artist.Name))
}

func (h *Handler) EditArtistForm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	artist, err := h.store.GetArtist(c.Request.Context(), id)
	if err != nil {
		h.failRead(c, "edit artist form", err)
		return
	}

	data := formData(forms.ArtistFormFrom(*artist))
	data["Title"] = "Edit " + artist.Name
	data["ID"] = artist.ID
	render(c, http.StatusOK, "forms/edit_artist.html", data)
}

func (h *Handler) UpdateArtist(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var form forms.ArtistForm
	if err := c.ShouldBind(&form); err != nil {
		if _, err := h.store.GetArtist(c.Request.Context(), id); err != nil {
			h.failRead(c, "update artist", err)
			return
		}
		renderForm(c, "forms/edit_artist.html", gin.H{"Title": "Edit artist", "Form": form, "ID": id},
			"An error occurred. Artist could not be changed.")
		return
	}

	location := "/artists/" + id.String()
	if _, err := h.store.UpdateArtist(c.Request.Context(), id, form.Fields()); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c)
			return
		}
		h.logger.Errorw("update artist failed", "id", id, "error", err)
		redirect(c, location, "An error occurred. Artist could not be changed.")
		return
	}

	redirect(c, location, "Artist was successfully updated!")
}
