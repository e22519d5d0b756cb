package model

import "time"

// CanteenMenu represents one menu item served on a given day.
type CanteenMenu struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Day       string    `json:"day" gorm:"size:20;not null;index"` // Monday, Tuesday, ...
	Item      string    `json:"item" gorm:"size:100;not null"`
	Price     float64   `json:"price" gorm:"not null"`
	Category  string    `json:"category,omitempty" gorm:"size:50"` // breakfast, lunch, dinner, snacks
	CreatedAt time.Time `json:"created_at"`
}

// CanteenMenuPatch enumerates the updatable menu fields.
type CanteenMenuPatch struct {
	Day      *string  `json:"day"`
	Item     *string  `json:"item"`
	Price    *float64 `json:"price"`
	Category *string  `json:"category"`
}
