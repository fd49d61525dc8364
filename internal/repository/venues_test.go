package repository_test

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/farellandr/fyyur/internal/repository"
	"github.com/farellandr/fyyur/internal/repository/repotest"
	"github.com/google/uuid"
)

func musicalHop() repository.VenueFields {
	return repository.VenueFields{
		Name:               "The Musical Hop",
		City:               "San Francisco",
		State:              "CA",
		Address:            "1015 Folsom Street",
		Phone:              "123-123-1234",
		Genres:             []string{"Jazz", "Reggae", "Swing"},
		ImageLink:          "https://images.example.com/hop.jpg",
		FacebookLink:       "https://www.facebook.com/TheMusicalHop",
		Website:            "https://www.themusicalhop.com",
		SeekingTalent:      true,
		SeekingDescription: "We are on the lookout for a local artist to play every two weeks.",
	}
}

func TestCreateVenueThenGet(t *testing.T) {
	store := repotest.NewStore(t)
	ctx := context.Background()

	created, err := store.CreateVenue(ctx, musicalHop())
	if err != nil {
		t.Fatalf("create venue: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Fatal("expected generated id")
	}

	got, err := store.GetVenue(ctx, created.ID)
	if err != nil {
		t.Fatalf("get venue: %v", err)
	}

	want := musicalHop()
	if got.Name != want.Name || got.City != want.City || got.State != want.State || got.Address != want.Address {
		t.Fatalf("venue = %+v, want fields %+v", got, want)
	}
	if got.Phone != want.Phone || got.ImageLink != want.ImageLink || got.FacebookLink != want.FacebookLink || got.Website != want.Website {
		t.Fatalf("venue links = %+v, want fields %+v", got, want)
	}
	if !got.SeekingTalent || got.SeekingDescription != want.SeekingDescription {
		t.Fatalf("seeking = %v %q, want true %q", got.SeekingTalent, got.SeekingDescription, want.SeekingDescription)
	}
	if !slices.Equal([]string(got.Genres), want.Genres) {
		t.Fatalf("genres = %v, want %v", got.Genres, want.Genres)
	}
}

func TestGetVenueNotFound(t *testing.T) {
	store := repotest.NewStore(t)

	_, err := store.GetVenue(context.Background(), uuid.New())
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestUpdateVenueOverwritesEveryField(t *testing.T) {
	store := repotest.NewStore(t)
	ctx := context.Background()

	created, err := store.CreateVenue(ctx, musicalHop())
	if err != nil {
		t.Fatalf("create venue: %v", err)
	}

	replacement := repository.VenueFields{
		Name:    "The Dueling Pianos Bar",
		City:    "New York",
		State:   "NY",
		Address: "335 Delancey Street",
	}
	if _, err := store.UpdateVenue(ctx, created.ID, replacement); err != nil {
		t.Fatalf("update venue: %v", err)
	}

	got, err := store.GetVenue(ctx, created.ID)
	if err != nil {
		t.Fatalf("get venue: %v", err)
	}
	if got.ID != created.ID {
		t.Fatalf("id = %s, want %s", got.ID, created.ID)
	}
	if got.Name != replacement.Name || got.City != "New York" || got.State != "NY" {
		t.Fatalf("venue = %+v, want %+v", got, replacement)
	}
	if got.Phone != "" || got.Website != "" || got.ImageLink != "" || got.FacebookLink != "" || got.SeekingDescription != "" {
		t.Fatalf("expected cleared optional fields, got %+v", got)
	}
	if got.SeekingTalent {
		t.Fatal("expected seeking_talent cleared to false")
	}
	if len(got.Genres) != 0 {
		t.Fatalf("genres = %v, want empty", got.Genres)
	}
}

func TestUpdateVenueNotFound(t *testing.T) {
	store := repotest.NewStore(t)

	_, err := store.UpdateVenue(context.Background(), uuid.New(), musicalHop())
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}

	venues, err := store.ListVenues(context.Background())
	if err != nil {
		t.Fatalf("list venues: %v", err)
	}
	if len(venues) != 0 {
		t.Fatalf("venues = %d, want 0", len(venues))
	}
}

func TestDeleteVenue(t *testing.T) {
	store := repotest.NewStore(t)
	ctx := context.Background()

	created, err := store.CreateVenue(ctx, musicalHop())
	if err != nil {
		t.Fatalf("create venue: %v", err)
	}

	if err := store.DeleteVenue(ctx, created.ID); err != nil {
		t.Fatalf("delete venue: %v", err)
	}
	if _, err := store.GetVenue(ctx, created.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("get after delete err = %v, want ErrNotFound", err)
	}
	if err := store.DeleteVenue(ctx, created.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("second delete err = %v, want ErrNotFound", err)
	}
}

func TestDeleteVenueWithShowsConflicts(t *testing.T) {
	store := repotest.NewStore(t)
	ctx := context.Background()

	venue, err := store.CreateVenue(ctx, musicalHop())
	if err != nil {
		t.Fatalf("create venue: %v", err)
	}
	artist, err := store.CreateArtist(ctx, gunsNPetals())
	if err != nil {
		t.Fatalf("create artist: %v", err)
	}
	if _, err := store.CreateShow(ctx, artist.ID, venue.ID, time.Now().Add(24*time.Hour)); err != nil {
		t.Fatalf("create show: %v", err)
	}

	if err := store.DeleteVenue(ctx, venue.ID); !errors.Is(err, repository.ErrConflict) {
		t.Fatalf("err = %v, want ErrConflict", err)
	}
	if _, err := store.GetVenue(ctx, venue.ID); err != nil {
		t.Fatalf("venue should survive a rejected delete: %v", err)
	}
}

func TestListVenuesOrderedByArea(t *testing.T) {
	store := repotest.NewStore(t)
	ctx := context.Background()

	for _, f := range []repository.VenueFields{
		{Name: "Park Square Live Music & Coffee", City: "San Francisco", State: "CA", Address: "34 Whiskey Moore Ave"},
		{Name: "The Dueling Pianos Bar", City: "New York", State: "NY", Address: "335 Delancey Street"},
		{Name: "The Musical Hop", City: "San Francisco", State: "CA", Address: "1015 Folsom Street"},
	} {
		if _, err := store.CreateVenue(ctx, f); err != nil {
			t.Fatalf("create venue: %v", err)
		}
	}

	venues, err := store.ListVenues(ctx)
	if err != nil {
		t.Fatalf("list venues: %v", err)
	}
	var names []string
	for _, v := range venues {
		names = append(names, v.Name)
	}
	want := []string{"The Dueling Pianos Bar", "Park Square Live Music & Coffee", "The Musical Hop"}
	if !slices.Equal(names, want) {
		t.Fatalf("names = %v, want %v", names, want)
	}
}

func TestSearchVenues(t *testing.T) {
	store := repotest.NewStore(t)
	ctx := context.Background()

	for _, f := range []repository.VenueFields{
		{Name: "The Musical Hop", City: "San Francisco", State: "CA", Address: "1015 Folsom Street"},
		{Name: "Park Square Live Music & Coffee", City: "San Francisco", State: "CA", Address: "34 Whiskey Moore Ave"},
		{Name: "100% Jazz_Club", City: "New York", State: "NY", Address: "1 Main Street"},
	} {
		if _, err := store.CreateVenue(ctx, f); err != nil {
			t.Fatalf("create venue: %v", err)
		}
	}

	tests := []struct {
		term string
		want int
	}{
		{term: "", want: 3},
		{term: "musical", want: 1},
		{term: "HOP", want: 1},
		{term: "music", want: 2},
		{term: "%", want: 1},
		{term: "_", want: 1},
		{term: "z_c", want: 1},
		{term: "zzz", want: 0},
	}
	for _, tt := range tests {
		venues, err := store.SearchVenues(ctx, tt.term)
		if err != nil {
			t.Fatalf("search %q: %v", tt.term, err)
		}
		if len(venues) != tt.want {
			t.Fatalf("search %q = %d results, want %d", tt.term, len(venues), tt.want)
		}
	}
}

func TestVenuesByIDsSkipsMissing(t *testing.T) {
	store := repotest.NewStore(t)
	ctx := context.Background()

	venue, err := store.CreateVenue(ctx, musicalHop())
	if err != nil {
		t.Fatalf("create venue: %v", err)
	}

	byID, err := store.VenuesByIDs(ctx, []uuid.UUID{venue.ID, uuid.New()})
	if err != nil {
		t.Fatalf("venues by ids: %v", err)
	}
	if len(byID) != 1 || byID[venue.ID].Name != venue.Name {
		t.Fatalf("byID = %v, want only %s", byID, venue.ID)
	}
}
