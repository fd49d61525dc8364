package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Artist struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key"`
	Name               string    `gorm:"not null;index"`
	City               string    `gorm:"not null"`
	State              string    `gorm:"not null"`
	Phone              string
	Genres             datatypes.JSONSlice[string]
	ImageLink          string
	FacebookLink       string
	Website            string
	SeekingVenue       bool `gorm:"not null;default:false"`
	SeekingDescription string
	Shows              []Show `gorm:"constraint:OnDelete:RESTRICT;"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (artist *Artist) BeforeCreate(tx *gorm.DB) (err error) {
	if artist.ID == uuid.Nil {
		artist.ID = uuid.New()
	}
	return
}
