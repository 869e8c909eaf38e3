package model

// Rating links a user's integer score to a catalog entry. Persisted schema
// only; no HTTP surface reads or writes it yet.
type Rating struct {
	ID      uint `json:"id" gorm:"primaryKey"`
	UserID  uint `json:"user_id" gorm:"not null;index"`
	MovieID uint `json:"movie_id" gorm:"not null;index"`
	Rating  int  `json:"rating" gorm:"not null"`
}
