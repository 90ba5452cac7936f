package models

import "time"

// Exercise represents a single logged exercise entry belonging to a user.
// Records are append-only: they are never mutated or deleted through the API.
type Exercise struct {
	// ExerciseID is the internal unique identifier of the record,
	// assigned by the database on insert.
	ExerciseID int64 `json:"-"`

	// UserID references the owning user. The reference is non-owning:
	// deleting a user does not cascade to its exercises.
	UserID int64 `json:"user_id"`

	// Description is the free-form text of what was done.
	Description string `json:"description"`

	// Duration is the exercise length in whole minutes. Always positive.
	Duration int `json:"duration"`

	// Date is the calendar date of the exercise, stored at midnight UTC.
	Date time.Time `json:"date"`
}

// TableName returns the name of the database table
// associated with the Exercise model.
func (e Exercise) TableName() string {
	return "exercises"
}

// LogFilter describes the exercise selection criteria used by the log query.
// Nil fields mean "no bound": a nil From/To leaves that side of the date
// range open, a nil Limit returns every matching record.
type LogFilter struct {
	UserID int64
	From   *time.Time
	To     *time.Time
	Limit  *int
}
