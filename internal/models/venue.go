package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Venue struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key"`
	Name               string    `gorm:"not null"`
	City               string    `gorm:"not null;index:idx_venues_area"`
	State              string    `gorm:"not null;index:idx_venues_area"`
	Address            string    `gorm:"not null"`
	Phone              string
	Genres             datatypes.JSONSlice[string]
	ImageLink          string
	FacebookLink       string
	Website            string
	SeekingTalent      bool `gorm:"not null;default:false"`
	SeekingDescription string
	Shows              []Show `gorm:"constraint:OnDelete:RESTRICT;"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (venue *Venue) BeforeCreate(tx *gorm.DB) (err error) {
	if venue.ID == uuid.Nil {
		venue.ID = uuid.New()
	}
	return
}
