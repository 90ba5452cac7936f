package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/fitlog/exercise-tracker/models"
)

const (
	createUser = `INSERT INTO users (username) 
    VALUES ($1) 
    RETURNING user_id, username;`

	findUserByID = `SELECT user_id, username 
    FROM users 
    WHERE user_id = $1;`

	findAllUsers = `SELECT user_id, username 
    FROM users;`

	createExercise = `INSERT INTO exercises (user_id, description, duration, date) 
    VALUES ($1, $2, $3, $4) 
    RETURNING exercise_id, user_id, description, duration, date;`
)

// buildLogQuery dynamically builds the exercise log SELECT for the given
// filter. The base query selects all exercises of the user; a From bound adds
// `date >= $n`, a To bound adds `date <= $n` (both inclusive), and Limit caps
// the result set. No ORDER BY is added: callers get storage's natural order.
func buildLogQuery(filter models.LogFilter) (string, []any, error) {
	query := sq.
		Select("exercise_id", "user_id", "description", "duration", "date").
		From("exercises").
		Where(sq.Eq{"user_id": filter.UserID}).
		PlaceholderFormat(sq.Dollar)

	if filter.From != nil {
		query = query.Where(sq.GtOrEq{"date": *filter.From})
	}

	if filter.To != nil {
		query = query.Where(sq.LtOrEq{"date": *filter.To})
	}

	if filter.Limit != nil {
		query = query.Limit(uint64(*filter.Limit))
	}

	return query.ToSql()
}
