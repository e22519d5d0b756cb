package model

import "time"

// BusSchedule represents one departure on a campus bus route.
type BusSchedule struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Route     string    `json:"route" gorm:"size:100;not null;index"`
	Time      string    `json:"time" gorm:"size:20;not null"` // 08:30
	BusNo     string    `json:"bus_no" gorm:"size:20;not null"`
	CreatedAt time.Time `json:"created_at"`
}

// BusSchedulePatch enumerates the updatable bus schedule fields.
type BusSchedulePatch struct {
	Route *string `json:"route"`
	Time  *string `json:"time"`
	BusNo *string `json:"bus_no"`
}
