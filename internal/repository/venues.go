package repository

import (
	"context"

	"github.com/farellandr/fyyur/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm/clause"
)

// VenueFields is the mutable part of a venue. An update overwrites every
// one of them, so a zero value clears the stored column.
type VenueFields struct {
	Name               string
	City               string
	State              string
	Address            string
	Phone              string
	Genres             []string
	ImageLink          string
	FacebookLink       string
	Website            string
	SeekingTalent      bool
	SeekingDescription string
}

func (f VenueFields) apply(venue *models.Venue) {
	venue.Name = f.Name
	venue.City = f.City
	venue.State = f.State
	venue.Address = f.Address
	venue.Phone = f.Phone
	venue.Genres = append([]string{}, f.Genres...)
	venue.ImageLink = f.ImageLink
	venue.FacebookLink = f.FacebookLink
	venue.Website = f.Website
	venue.SeekingTalent = f.SeekingTalent
	venue.SeekingDescription = f.SeekingDescription
}

// ListVenues returns every venue ordered by area and then name.
func (s *Store) ListVenues(ctx context.Context) ([]models.Venue, error) {
	var venues []models.Venue
	err := s.db.WithContext(ctx).Order("city, state, name").Find(&venues).Error
	return venues, err
}

func (s *Store) SearchVenues(ctx context.Context, term string) ([]models.Venue, error) {
	var venues []models.Venue
	err := nameContains(s.db.WithContext(ctx), term).Order("name").Find(&venues).Error
	return venues, err
}

func (s *Store) GetVenue(ctx context.Context, id uuid.UUID) (*models.Venue, error) {
	var venue models.Venue
	if err := s.first(ctx, &venue, id); err != nil {
		return nil, wrap("get venue", id, err)
	}
	return &venue, nil
}

// VenueShows returns every show booked at the venue, earliest first.
func (s *Store) VenueShows(ctx context.Context, venueID uuid.UUID) ([]models.Show, error) {
	var shows []models.Show
	err := s.db.WithContext(ctx).Where("venue_id = ?", venueID).Order("start_time").Find(&shows).Error
	return shows, err
}

// VenuesByIDs loads the given venues keyed by id. Ids with no row are
// simply absent from the map.
func (s *Store) VenuesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.Venue, error) {
	byID := make(map[uuid.UUID]models.Venue, len(ids))
	if len(ids) == 0 {
		return byID, nil
	}
	var venues []models.Venue
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&venues).Error; err != nil {
		return nil, err
	}
	for _, venue := range venues {
		byID[venue.ID] = venue
	}
	return byID, nil
}

func (s *Store) CreateVenue(ctx context.Context, fields VenueFields) (*models.Venue, error) {
	venue := &models.Venue{}
	fields.apply(venue)

	err := s.Transaction(ctx, func(tx *Store) error {
		return tx.db.Create(venue).Error
	})
	if err != nil {
		return nil, err
	}
	return venue, nil
}

// UpdateVenue replaces every mutable column of the venue in one
// transaction. A missing venue yields ErrNotFound.
func (s *Store) UpdateVenue(ctx context.Context, id uuid.UUID, fields VenueFields) (*models.Venue, error) {
	var venue models.Venue
	err := s.Transaction(ctx, func(tx *Store) error {
		if err := tx.first(ctx, &venue, id); err != nil {
			return err
		}
		fields.apply(&venue)
		return tx.db.Omit(clause.Associations).Save(&venue).Error
	})
	if err != nil {
		return nil, wrap("update venue", id, err)
	}
	return &venue, nil
}

// DeleteVenue removes a venue that has no shows. A venue with shows is
// left in place and ErrConflict is returned.
func (s *Store) DeleteVenue(ctx context.Context, id uuid.UUID) error {
	err := s.Transaction(ctx, func(tx *Store) error {
		var venue models.Venue
		if err := tx.first(ctx, &venue, id); err != nil {
			return err
		}

		var booked int64
		if err := tx.db.Model(&models.Show{}).Where("venue_id = ?", id).Count(&booked).Error; err != nil {
			return err
		}
		if booked > 0 {
			return ErrConflict
		}

		return tx.db.Delete(&venue).Error
	})
	return wrap("delete venue", id, err)
}
