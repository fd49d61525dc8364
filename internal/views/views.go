// Package views turns stored venues, artists and shows into the shapes the
// HTML pages render. Nothing here touches the database: callers load rows
// first and pass an explicit "now", so derived values such as past and
// upcoming shows are recomputed on every read and never stored.
package views

import (
	"errors"
	"sort"
	"time"

	"github.com/farellandr/fyyur/internal/models"
	"github.com/google/uuid"
)

// ErrDanglingReference is returned when a show points at an artist or venue
// that was not supplied.
var ErrDanglingReference = errors.New("show references a missing entity")

type Summary struct {
	ID   uuid.UUID
	Name string
}

type Area struct {
	City   string
	State  string
	Venues []Summary
}

type areaKey struct {
	city, state string
}

// GroupByArea buckets venues by their distinct (city, state) pair. Areas are
// sorted by city then state; venues keep their input order within an area.
func GroupByArea(venues []models.Venue) []Area {
	index := make(map[areaKey]int)
	var areas []Area
	for _, venue := range venues {
		key := areaKey{venue.City, venue.State}
		i, ok := index[key]
		if !ok {
			i = len(areas)
			index[key] = i
			areas = append(areas, Area{City: venue.City, State: venue.State})
		}
		areas[i].Venues = append(areas[i].Venues, Summary{ID: venue.ID, Name: venue.Name})
	}

	sort.SliceStable(areas, func(i, j int) bool {
		if areas[i].City != areas[j].City {
			return areas[i].City < areas[j].City
		}
		return areas[i].State < areas[j].State
	})
	return areas
}

type SearchResult struct {
	Term  string
	Count int
	Data  []Summary
}

func NewVenueSearchResult(term string, venues []models.Venue) SearchResult {
	result := SearchResult{Term: term, Data: make([]Summary, 0, len(venues))}
	for _, venue := range venues {
		result.Data = append(result.Data, Summary{ID: venue.ID, Name: venue.Name})
	}
	result.Count = len(result.Data)
	return result
}

func NewArtistSearchResult(term string, artists []models.Artist) SearchResult {
	result := SearchResult{Term: term, Data: make([]Summary, 0, len(artists))}
	for _, artist := range artists {
		result.Data = append(result.Data, Summary{ID: artist.ID, Name: artist.Name})
	}
	result.Count = len(result.Data)
	return result
}

func NewArtistListing(artists []models.Artist) []Summary {
	listing := make([]Summary, 0, len(artists))
	for _, artist := range artists {
		listing = append(listing, Summary{ID: artist.ID, Name: artist.Name})
	}
	return listing
}

// Partition splits shows into those strictly before now and those strictly
// after it. A show starting exactly at now belongs to neither.
func Partition(shows []models.Show, now time.Time) (past, upcoming []models.Show) {
	for _, show := range shows {
		switch {
		case show.StartTime.Before(now):
			past = append(past, show)
		case show.StartTime.After(now):
			upcoming = append(upcoming, show)
		}
	}
	return past, upcoming
}
