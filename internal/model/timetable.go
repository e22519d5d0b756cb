package model

import "time"

// Timetable represents a single class slot in the weekly schedule.
type Timetable struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Day       string    `json:"day" gorm:"size:20;not null;index"` // Monday, Tuesday, ...
	Time      string    `json:"time" gorm:"size:20;not null"`      // 09:00-10:00
	Subject   string    `json:"subject" gorm:"size:100;not null"`
	Room      string    `json:"room" gorm:"size:50;not null"`
	CreatedAt time.Time `json:"created_at"`
}

// TimetablePatch enumerates the updatable timetable fields.
type TimetablePatch struct {
	Day     *string `json:"day"`
	Time    *string `json:"time"`
	Subject *string `json:"subject"`
	Room    *string `json:"room"`
}
