// Package forms holds the typed shapes of the create and edit forms. Binding
// goes through gin, and the rules are validator/v10 tags.
package forms

import (
	"fmt"
	"strings"
	"time"

	"github.com/farellandr/fyyur/internal/helpers"
	"github.com/farellandr/fyyur/internal/models"
	"github.com/farellandr/fyyur/internal/repository"
	"github.com/google/uuid"
)

type VenueForm struct {
	Name               string    `form:"name" binding:"required,max=120"`
	City               string    `form:"city" binding:"required,max=120"`
	State              string    `form:"state" binding:"required,usstate"`
	Address            string    `form:"address" binding:"required,max=120"`
	Phone              string    `form:"phone" binding:"max=120"`
	Genres             []string  `form:"genres" binding:"dive,genre"`
	ImageLink          string    `form:"image_link" binding:"omitempty,url,max=500"`
	FacebookLink       string    `form:"facebook_link" binding:"omitempty,url,max=120"`
	Website            string    `form:"website" binding:"omitempty,url,max=120"`
	SeekingTalent      *Checkbox `form:"seeking_talent"`
	SeekingDescription string    `form:"seeking_description"`
}

// Fields converts the form into a full replacement of a venue's columns.
// An absent seeking_talent box means false.
func (f VenueForm) Fields() repository.VenueFields {
	return repository.VenueFields{
		Name:               strings.TrimSpace(f.Name),
		City:               strings.TrimSpace(f.City),
		State:              f.State,
		Address:            strings.TrimSpace(f.Address),
		Phone:              strings.TrimSpace(f.Phone),
		Genres:             f.Genres,
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		Website:            f.Website,
		SeekingTalent:      f.SeekingTalent.Checked(),
		SeekingDescription: f.SeekingDescription,
	}
}

func VenueFormFrom(venue models.Venue) VenueForm {
	seeking := Checkbox(venue.SeekingTalent)
	return VenueForm{
		Name:               venue.Name,
		City:               venue.City,
		State:              venue.State,
		Address:            venue.Address,
		Phone:              venue.Phone,
		Genres:             venue.Genres,
		ImageLink:          venue.ImageLink,
		FacebookLink:       venue.FacebookLink,
		Website:            venue.Website,
		SeekingTalent:      &seeking,
		SeekingDescription: venue.SeekingDescription,
	}
}

type ArtistForm struct {
	Name               string    `form:"name" binding:"required,max=120"`
	City               string    `form:"city" binding:"required,max=120"`
	State              string    `form:"state" binding:"required,usstate"`
	Phone              string    `form:"phone" binding:"max=120"`
	Genres             []string  `form:"genres" binding:"dive,genre"`
	ImageLink          string    `form:"image_link" binding:"omitempty,url,max=500"`
	FacebookLink       string    `form:"facebook_link" binding:"omitempty,url,max=120"`
	Website            string    `form:"website" binding:"omitempty,url,max=120"`
	SeekingVenue       *Checkbox `form:"seeking_venue"`
	SeekingDescription string    `form:"seeking_description"`
}

func (f ArtistForm) Fields() repository.ArtistFields {
	return repository.ArtistFields{
		Name:               strings.TrimSpace(f.Name),
		City:               strings.TrimSpace(f.City),
		State:              f.State,
		Phone:              strings.TrimSpace(f.Phone),
		Genres:             f.Genres,
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		Website:            f.Website,
		SeekingVenue:       f.SeekingVenue.Checked(),
		SeekingDescription: f.SeekingDescription,
	}
}

func ArtistFormFrom(artist models.Artist) ArtistForm {
	seeking := Checkbox(artist.SeekingVenue)
	return ArtistForm{
		Name:               artist.Name,
		City:               artist.City,
		State:              artist.State,
		Phone:              artist.Phone,
		Genres:             artist.Genres,
		ImageLink:          artist.ImageLink,
		FacebookLink:       artist.FacebookLink,
		Website:            artist.Website,
		SeekingVenue:       &seeking,
		SeekingDescription: artist.SeekingDescription,
	}
}

type ShowForm struct {
	ArtistID  string `form:"artist_id" binding:"required,uuid"`
	VenueID   string `form:"venue_id" binding:"required,uuid"`
	StartTime string `form:"start_time" binding:"required"`
}

// Parse validates the ids and start time and returns them typed.
func (f ShowForm) Parse() (artistID, venueID uuid.UUID, startTime time.Time, err error) {
	if artistID, err = helpers.ParseID(f.ArtistID); err != nil {
		return uuid.Nil, uuid.Nil, time.Time{}, fmt.Errorf("artist_id: %w", err)
	}
	if venueID, err = helpers.ParseID(f.VenueID); err != nil {
		return uuid.Nil, uuid.Nil, time.Time{}, fmt.Errorf("venue_id: %w", err)
	}
	startTime, err = helpers.ParseStartTime(f.StartTime)
	if err != nil {
		return uuid.Nil, uuid.Nil, time.Time{}, fmt.Errorf("start_time: %w", err)
	}
	return artistID, venueID, startTime, nil
}
