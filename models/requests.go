// SPDX-License-Identifier: Apache-2.0

package models

// CreateUserRequest is the typed payload of POST /api/users.
// The endpoint accepts both urlencoded form bodies and JSON.
type CreateUserRequest struct {
	// Username is required and must be non-empty.
	Username string `json:"username"`
}

// AddExerciseRequest is the typed payload of POST /api/users/{id}/exercises.
// All fields arrive as strings (the original surface posts urlencoded forms);
// the service layer performs the fallible conversion to typed values.
type AddExerciseRequest struct {
	// Description is required and must be non-empty.
	Description string `json:"description"`

	// Duration is required: a positive integer number of minutes.
	Duration string `json:"duration"`

	// Date is optional. When present it must be a calendar date in
	// "YYYY-MM-DD" form; when absent the server's current date is used.
	Date string `json:"date"`
}

// LogRequest carries the raw query parameters of GET /api/users/{id}/logs.
// Empty strings mean the parameter was not supplied.
type LogRequest struct {
	// From, when set, keeps only exercises dated on or after it ("YYYY-MM-DD").
	From string `json:"from"`

	// To, when set, keeps only exercises dated on or before it ("YYYY-MM-DD").
	To string `json:"to"`

	// Limit, when set, caps the number of returned records. There is no
	// default cap when omitted.
	Limit string `json:"limit"`
}
