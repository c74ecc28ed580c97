package models

import (
	"encoding/json"
	"errors"
	"time"
)

// Store represents a physical store.
type Store struct {
	ID         string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	StoreID    int64     `json:"storeID" gorm:"uniqueIndex;not null"`
	Name       string    `json:"name" gorm:"type:varchar(255);not null"`
	Address    string    `json:"address" gorm:"type:varchar(512);not null"`
	StoreImage *string   `json:"storeImage"`
	Location   GeoPoint  `json:"location" gorm:"embedded;embeddedPrefix:location_"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
}

// ErrInvalidLocation is returned when a location is not a point with exactly
// two coordinates.
var ErrInvalidLocation = errors.New("location must be a Point with [longitude, latitude] coordinates")

// GeoPoint is a longitude/latitude pair encoded as a GeoJSON point.
type GeoPoint struct {
	Longitude float64
	Latitude  float64
}

type geoJSONPoint struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

func (p GeoPoint) MarshalJSON() ([]byte, error) {
	return json.Marshal(geoJSONPoint{Type: "Point", Coordinates: []float64{p.Longitude, p.Latitude}})
}

func (p *GeoPoint) UnmarshalJSON(b []byte) error {
	var g geoJSONPoint
	if err := json.Unmarshal(b, &g); err != nil {
		return ErrInvalidLocation
	}
	if g.Type != "" && g.Type != "Point" {
		return ErrInvalidLocation
	}
	if len(g.Coordinates) != 2 {
		return ErrInvalidLocation
	}
	p.Longitude, p.Latitude = g.Coordinates[0], g.Coordinates[1]
	return nil
}
