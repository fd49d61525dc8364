package repository

import (
	"context"

	"github.com/farellandr/fyyur/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm/clause"
)

type ArtistFields struct {
	Name               string
	City               string
	State              string
	Phone              string
	Genres             []string
	ImageLink          string
	FacebookLink       string
	Website            string
	SeekingVenue       bool
	SeekingDescription string
}

func (f ArtistFields) apply(artist *models.Artist) {
	artist.Name = f.Name
	artist.City = f.City
	artist.State = f.State
	artist.Phone = f.Phone
	artist.Genres = append([]string{}, f.Genres...)
	artist.ImageLink = f.ImageLink
	artist.FacebookLink = f.FacebookLink
	artist.Website = f.Website
	artist.SeekingVenue = f.SeekingVenue
	artist.SeekingDescription = f.SeekingDescription
}

func (s *Store) ListArtists(ctx context.Context) ([]models.Artist, error) {
	var artists []models.Artist
	err := s.db.WithContext(ctx).Order("name").Find(&artists).Error
	return artists, err
}

func (s *Store) SearchArtists(ctx context.Context, term string) ([]models.Artist, error) {
	var artists []models.Artist
	err := nameContains(s.db.WithContext(ctx), term).Order("name").Find(&artists).Error
	return artists, err
}

func (s *Store) GetArtist(ctx context.Context, id uuid.UUID) (*models.Artist, error) {
	var artist models.Artist
	if err := s.first(ctx, &artist, id); err != nil {
		return nil, wrap("get artist", id, err)
	}
	return &artist, nil
}

func (s *Store) ArtistShows(ctx context.Context, artistID uuid.UUID) ([]models.Show, error) {
	var shows []models.Show
	err := s.db.WithContext(ctx).Where("artist_id = ?", artistID).Order("start_time").Find(&shows).Error
	return shows, err
}

func (s *Store) ArtistsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.Artist, error) {
	byID := make(map[uuid.UUID]models.Artist, len(ids))
	if len(ids) == 0 {
		return byID, nil
	}
	var artists []models.Artist
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&artists).Error; err != nil {
		return nil, err
	}
	for _, artist := range artists {
		byID[artist.ID] = artist
	}
	return byID, nil
}

func (s *Store) CreateArtist(ctx context.Context, fields ArtistFields) (*models.Artist, error) {
	artist := &models.Artist{}
	fields.apply(artist)

	err := s.Transaction(ctx, func(tx *Store) error {
		return tx.db.Create(artist).Error
	})
	if err != nil {
		return nil, err
	}
	return artist, nil
}

func (s *Store) UpdateArtist(ctx context.Context, id uuid.UUID, fields ArtistFields) (*models.Artist, error) {
	var artist models.Artist
	err := s.Transaction(ctx, func(tx *Store) error {
		if err := tx.first(ctx, &artist, id); err != nil {
			return err
		}
		fields.apply(&artist)
		return tx.db.Omit(clause.Associations).Save(&artist).Error
	})
	if err != nil {
		return nil, wrap("update artist", id, err)
	}
	return &artist, nil
}
