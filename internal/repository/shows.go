package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/farellandr/fyyur/internal/models"
	"github.com/google/uuid"
)

// ListShows returns every show in the order it was stored.
func (s *Store) ListShows(ctx context.Context) ([]models.Show, error) {
	var shows []models.Show
	err := s.db.WithContext(ctx).Order("created_at, id").Find(&shows).Error
	return shows, err
}

// CreateShow books an artist at a venue. Both must already exist; otherwise
// nothing is written and ErrDanglingReference is returned.
func (s *Store) CreateShow(ctx context.Context, artistID, venueID uuid.UUID, startTime time.Time) (*models.Show, error) {
	show := &models.Show{
		ArtistID:  artistID,
		VenueID:   venueID,
		StartTime: startTime,
	}

	err := s.Transaction(ctx, func(tx *Store) error {
		ok, err := tx.exists(ctx, &models.Artist{}, artistID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("artist %s: %w", artistID, ErrDanglingReference)
		}

		ok, err = tx.exists(ctx, &models.Venue{}, venueID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("venue %s: %w", venueID, ErrDanglingReference)
		}

		return tx.db.Create(show).Error
	})
	if err != nil {
		return nil, err
	}
	return show, nil
}
