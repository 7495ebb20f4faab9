package application

import (
	"time"

	"github.com/coopportal/coopportal/internal/types"
)

// Application is one student's attempt to obtain one internship position.
// For a given (student, position) pair only the most recent row by SentOn is
// live; older rows are kept for audit and excluded from active views.
type Application struct {
	ID         string                  `db:"application_id" json:"application_id"`
	StudentID  string                  `db:"user_id" json:"user_id"`
	PositionID string                  `db:"position_id" json:"position_id"`
	SentOn     time.Time               `db:"sent_on" json:"sent_on"`
	Status     types.ApplicationStatus `db:"status" json:"status"`
}

// Detail is an application joined with its position and company, the shape
// the student-facing listings return.
type Detail struct {
	ID           string                  `db:"application_id" json:"application_id"`
	StudentID    string                  `db:"user_id" json:"user_id"`
	PositionID   string                  `db:"position_id" json:"position_id"`
	Title        string                  `db:"position_title" json:"position_title"`
	Description  string                  `db:"position_description" json:"position_description"`
	Requirements string                  `db:"requirements" json:"requirements"`
	CompanyName  string                  `db:"company_name" json:"company_name"`
	SentOn       time.Time               `db:"sent_on" json:"sent_on"`
	Status       types.ApplicationStatus `db:"status" json:"status"`
}

// Review is an application joined with the applying student, the shape HR
// reviews and the HR status-update endpoint returns.
type Review struct {
	ID            string                  `db:"application_id" json:"application_id"`
	StudentID     string                  `db:"user_id" json:"user_id"`
	StudentName   string                  `db:"full_name" json:"full_name"`
	StudentEmail  string                  `db:"email" json:"email"`
	PositionID    string                  `db:"position_id" json:"position_id"`
	PositionTitle string                  `db:"position_title" json:"position_title"`
	SentOn        time.Time               `db:"sent_on" json:"sent_on"`
	Status        types.ApplicationStatus `db:"status" json:"status"`
}
