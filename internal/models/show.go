package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Show books an artist at a venue. Shows are never updated or deleted, and
// whether one is past or upcoming is always computed from StartTime.
type Show struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	ArtistID  uuid.UUID `gorm:"type:uuid;not null;index"`
	VenueID   uuid.UUID `gorm:"type:uuid;not null;index"`
	StartTime time.Time `gorm:"not null"`
	CreatedAt time.Time
}

func (show *Show) BeforeCreate(tx *gorm.DB) (err error) {
	if show.ID == uuid.Nil {
		show.ID = uuid.New()
	}
	return
}
