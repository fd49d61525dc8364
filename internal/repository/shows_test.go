package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/farellandr/fyyur/internal/models"
	"github.com/farellandr/fyyur/internal/repository"
	"github.com/farellandr/fyyur/internal/repository/repotest"
	"github.com/google/uuid"
)

func TestCreateShowRequiresExistingArtistAndVenue(t *testing.T) {
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
	start := time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		artistID uuid.UUID
		venueID  uuid.UUID
	}{
		{name: "missing artist", artistID: uuid.New(), venueID: venue.ID},
		{name: "missing venue", artistID: artist.ID, venueID: uuid.New()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.CreateShow(ctx, tt.artistID, tt.venueID, start)
			if !errors.Is(err, repository.ErrDanglingReference) {
				t.Fatalf("err = %v, want ErrDanglingReference", err)
			}
		})
	}

	shows, err := store.ListShows(ctx)
	if err != nil {
		t.Fatalf("list shows: %v", err)
	}
	if len(shows) != 0 {
		t.Fatalf("shows = %d, want 0 after failed creates", len(shows))
	}

	show, err := store.CreateShow(ctx, artist.ID, venue.ID, start)
	if err != nil {
		t.Fatalf("create show: %v", err)
	}
	venueShows, err := store.VenueShows(ctx, venue.ID)
	if err != nil {
		t.Fatalf("venue shows: %v", err)
	}
	if len(venueShows) != 1 || venueShows[0].ID != show.ID || !venueShows[0].StartTime.Equal(start) {
		t.Fatalf("venue shows = %+v, want %s at %s", venueShows, show.ID, start)
	}
	artistShows, err := store.ArtistShows(ctx, artist.ID)
	if err != nil {
		t.Fatalf("artist shows: %v", err)
	}
	if len(artistShows) != 1 {
		t.Fatalf("artist shows = %d, want 1", len(artistShows))
	}
}

func TestTransactionRollsBackOnError(t *testing.T) {
	store := repotest.NewStore(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := store.Transaction(ctx, func(tx *repository.Store) error {
		if _, err := tx.CreateVenue(ctx, musicalHop()); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}

	venues, err := store.ListVenues(ctx)
	if err != nil {
		t.Fatalf("list venues: %v", err)
	}
	if len(venues) != 0 {
		t.Fatalf("venues = %d, want 0 after rollback", len(venues))
	}
}

func TestSchemaRefusesDanglingShow(t *testing.T) {
	store := repotest.NewStore(t)
	ctx := context.Background()

	venue, err := store.CreateVenue(ctx, musicalHop())
	if err != nil {
		t.Fatalf("create venue: %v", err)
	}

	show := models.Show{ArtistID: uuid.New(), VenueID: venue.ID, StartTime: time.Now()}
	if err := store.DB().WithContext(ctx).Create(&show).Error; err == nil {
		t.Fatal("insert of a show with a missing artist should fail")
	}

	shows, err := store.ListShows(ctx)
	if err != nil {
		t.Fatalf("list shows: %v", err)
	}
	if len(shows) != 0 {
		t.Fatalf("shows = %d, want 0", len(shows))
	}
}

func TestSchemaRestrictsVenueDeleteWithShows(t *testing.T) {
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
	if _, err := store.CreateShow(ctx, artist.ID, venue.ID, time.Now()); err != nil {
		t.Fatalf("create show: %v", err)
	}

	if err := store.DB().WithContext(ctx).Delete(&models.Venue{}, "id = ?", venue.ID).Error; err == nil {
		t.Fatal("raw delete of a venue with shows should fail")
	}
	if _, err := store.GetVenue(ctx, venue.ID); err != nil {
		t.Fatalf("venue should survive: %v", err)
	}
}
