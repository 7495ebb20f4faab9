package user

import (
	"time"

	"github.com/coopportal/coopportal/internal/types"
)

// User is the base identity row every role-specific record hangs off.
type User struct {
	ID       string         `db:"user_id" json:"user_id"`
	FullName string         `db:"full_name" json:"full_name"`
	Email    string         `db:"email" json:"email"`
	Role     types.UserRole `db:"role" json:"role"`
	DOB      *time.Time     `db:"dob" json:"dob,omitempty"`
	Gender   *string        `db:"gender" json:"gender,omitempty"`
}
