package model

import "time"

// Movie represents a catalog entry. TMDBID is the external provider key and
// guards against duplicate imports.
type Movie struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"size:200;not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	PosterURL   string    `json:"poster_url" gorm:"size:300"`
	TMDBID      int64     `json:"tmdb_id" gorm:"column:tmdb_id;uniqueIndex;not null"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`

	// Relations
	Ratings []Rating `json:"-" gorm:"foreignKey:MovieID"`
}
