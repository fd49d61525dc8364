package views

import (
	"fmt"
	"time"

	"github.com/farellandr/fyyur/internal/models"
	"github.com/google/uuid"
)

// Booking is one show as seen from a detail page: the counterpart of the
// entity being viewed plus when the show starts.
type Booking struct {
	CounterpartID        uuid.UUID
	CounterpartName      string
	CounterpartImageLink string
	Starts               time.Time
}

type VenueDetail struct {
	Venue              models.Venue
	PastShows          []Booking
	UpcomingShows      []Booking
	PastShowsCount     int
	UpcomingShowsCount int
}

type ArtistDetail struct {
	Artist             models.Artist
	PastShows          []Booking
	UpcomingShows      []Booking
	PastShowsCount     int
	UpcomingShowsCount int
}

func NewVenueDetail(venue models.Venue, shows []models.Show, artists map[uuid.UUID]models.Artist, now time.Time) (*VenueDetail, error) {
	counterpart := func(show models.Show) (Booking, error) {
		artist, ok := artists[show.ArtistID]
		if !ok {
			return Booking{}, fmt.Errorf("show %s artist %s: %w", show.ID, show.ArtistID, ErrDanglingReference)
		}
		return Booking{
			CounterpartID:        artist.ID,
			CounterpartName:      artist.Name,
			CounterpartImageLink: artist.ImageLink,
		}, nil
	}

	past, upcoming, err := bookings(shows, now, counterpart)
	if err != nil {
		return nil, err
	}
	return &VenueDetail{
		Venue:              venue,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

func NewArtistDetail(artist models.Artist, shows []models.Show, venues map[uuid.UUID]models.Venue, now time.Time) (*ArtistDetail, error) {
	counterpart := func(show models.Show) (Booking, error) {
		venue, ok := venues[show.VenueID]
		if !ok {
			return Booking{}, fmt.Errorf("show %s venue %s: %w", show.ID, show.VenueID, ErrDanglingReference)
		}
		return Booking{
			CounterpartID:        venue.ID,
			CounterpartName:      venue.Name,
			CounterpartImageLink: venue.ImageLink,
		}, nil
	}

	past, upcoming, err := bookings(shows, now, counterpart)
	if err != nil {
		return nil, err
	}
	return &ArtistDetail{
		Artist:             artist,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

func bookings(shows []models.Show, now time.Time, counterpart func(models.Show) (Booking, error)) (past, upcoming []Booking, err error) {
	pastShows, upcomingShows := Partition(shows, now)

	past = make([]Booking, 0, len(pastShows))
	for _, show := range pastShows {
		b, err := counterpart(show)
		if err != nil {
			return nil, nil, err
		}
		b.Starts = show.StartTime
		past = append(past, b)
	}

	upcoming = make([]Booking, 0, len(upcomingShows))
	for _, show := range upcomingShows {
		b, err := counterpart(show)
		if err != nil {
			return nil, nil, err
		}
		b.Starts = show.StartTime
		upcoming = append(upcoming, b)
	}
	return past, upcoming, nil
}

// CounterpartIDs collects the ids a set of shows points at on the other
// side of the booking, without duplicates.
func CounterpartIDs(shows []models.Show, pick func(models.Show) uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(shows))
	ids := make([]uuid.UUID, 0, len(shows))
	for _, show := range shows {
		id := pick(show)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

func ArtistOf(show models.Show) uuid.UUID { return show.ArtistID }

func VenueOf(show models.Show) uuid.UUID { return show.VenueID }
