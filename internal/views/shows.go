package views

import (
	"fmt"
	"time"

	"github.com/farellandr/fyyur/internal/models"
	"github.com/google/uuid"
)

type ShowListing struct {
	VenueID         uuid.UUID
	VenueName       string
	ArtistID        uuid.UUID
	ArtistName      string
	ArtistImageLink string
	Starts          time.Time
}

// NewShowListing resolves both sides of every show, keeping the order the
// shows were given in. Past and upcoming shows are listed alike.
func NewShowListing(shows []models.Show, venues map[uuid.UUID]models.Venue, artists map[uuid.UUID]models.Artist) ([]ShowListing, error) {
	listing := make([]ShowListing, 0, len(shows))
	for _, show := range shows {
		venue, ok := venues[show.VenueID]
		if !ok {
			return nil, fmt.Errorf("show %s venue %s: %w", show.ID, show.VenueID, ErrDanglingReference)
		}
		artist, ok := artists[show.ArtistID]
		if !ok {
			return nil, fmt.Errorf("show %s artist %s: %w", show.ID, show.ArtistID, ErrDanglingReference)
		}
		listing = append(listing, ShowListing{
			VenueID:         venue.ID,
			VenueName:       venue.Name,
			ArtistID:        artist.ID,
			ArtistName:      artist.Name,
			ArtistImageLink: artist.ImageLink,
			Starts:          show.StartTime,
		})
	}
	return listing, nil
}
