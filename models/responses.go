package models

// UserResponse is the wire shape of a user record: exactly the username and
// the opaque identifier, nothing else.
type UserResponse struct {
	Username string `json:"username"`
	ID       string `json:"id"`
}

// ExerciseResponse is the wire shape returned after logging an exercise.
//
// ID and Username belong to the *user*, not the exercise. This echo of the
// owner is the documented response contract and must stay exactly as is.
type ExerciseResponse struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Date        string `json:"date"`
	Duration    int    `json:"duration"`
	Description string `json:"description"`
}

// LogEntry is one exercise record inside a LogResponse.
type LogEntry struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`

	// Date is rendered in the fixed "Mon Jan 02 2006" textual form,
	// not ISO-8601.
	Date string `json:"date"`
}

// LogResponse is the wire shape of a user's filtered exercise log.
type LogResponse struct {
	Username string `json:"username"`

	// Count is the number of records actually returned, after the date
	// filter and the limit have been applied. It is not the total number
	// of matches before limiting.
	Count int        `json:"count"`
	ID    string     `json:"id"`
	Log   []LogEntry `json:"log"`
}

// ErrorResponse is the uniform error body. Domain errors such as an unknown
// user are written with an HTTP success status; infrastructure failures use
// a server-error status. Both share this shape.
type ErrorResponse struct {
	Error string `json:"error"`
}

// GreetingResponse is the body of GET /api/hello.
type GreetingResponse struct {
	Greeting string `json:"greeting"`
}
