package model

import "time"

// EventModel mirrors the 'events' table. Speakers are stored as a JSON text
// column, matching the upstream schema; the repository marshals the slice.
type EventModel struct {
	ID                   uint      `gorm:"primaryKey;autoIncrement"`
	Title                string    `gorm:"type:varchar(200);not null"`
	Slug                 string    `gorm:"type:varchar(200);uniqueIndex;not null"`
	Description          string    `gorm:"type:text;not null"`
	Date                 time.Time `gorm:"type:date;not null;index"`
	StartTime            string    `gorm:"type:varchar(5);not null"`
	EndTime              string    `gorm:"type:varchar(5);not null"`
	Location             string    `gorm:"type:varchar(255);not null"`
	Category             string    `gorm:"type:varchar(100);not null;index"`
	EventType            string    `gorm:"type:varchar(20);not null;default:presencial"`
	Capacity             int       `gorm:"not null"`
	Registered           int       `gorm:"not null;default:0"`
	Organizer            string    `gorm:"type:varchar(255);not null"`
	Speakers             string    `gorm:"type:text"`
	ImageURL             string    `gorm:"type:text"`
	Status               string    `gorm:"type:varchar(20);not null;default:upcoming;index"`
	Featured             bool      `gorm:"not null;default:false"`
	RegistrationRequired bool      `gorm:"not null;default:true"`
	Price                string    `gorm:"type:varchar(100);default:Gratuito"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (EventModel) TableName() string {
	return "events"
}
