package student

import "time"

// Student mirrors the student row keyed by the owning user id.
type Student struct {
	UserID   string `db:"user_id" json:"user_id"`
	FullName string `db:"full_name" json:"full_name"`
	Email    string `db:"email" json:"email"`
}

// Profile is a student joined with the demographic columns of the base user
// row, the shape the admin and student info endpoints return.
type Profile struct {
	UserID   string     `db:"user_id" json:"user_id"`
	FullName string     `db:"full_name" json:"full_name"`
	Email    string     `db:"email" json:"email"`
	DOB      *time.Time `db:"dob" json:"dob,omitempty"`
	Gender   *string    `db:"gender" json:"gender,omitempty"`
}
