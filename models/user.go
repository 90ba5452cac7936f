package models

// User represents a tracked account that exercises are logged against.
// It carries only identity attributes; the model holds no credentials.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is assigned by the database on insert and is not exposed via JSON
	// directly; response shapes render it as an opaque string.
	UserID int64 `json:"-"`

	// Username is the display name supplied at sign-up.
	// No uniqueness constraint is enforced at this layer.
	Username string `json:"username"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
