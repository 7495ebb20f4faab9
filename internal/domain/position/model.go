package position

import (
	"time"

	"github.com/coopportal/coopportal/internal/types"
)

// Position is an internship requisition posted by an HR actor.
type Position struct {
	ID           string               `db:"position_id" json:"position_id"`
	HRID         string               `db:"hr_id" json:"hr_id"`
	Title        string               `db:"title" json:"title"`
	Description  string               `db:"description" json:"description"`
	Requirements string               `db:"requirements" json:"requirements"`
	Status       types.PositionStatus `db:"status" json:"status"`
	PostedDate   time.Time            `db:"posted_date" json:"posted_date"`
}

// WithCount is a position row carrying its application count, the shape of
// the HR listing.
type WithCount struct {
	Position
	ApplicationCount int `db:"application_count" json:"application_count"`
}

// Listing is a position joined with the posting company, the shape students
// browse.
type Listing struct {
	ID           string               `db:"position_id" json:"position_id"`
	Title        string               `db:"position_title" json:"position_title"`
	Description  string               `db:"position_description" json:"position_description"`
	Requirements string               `db:"requirements" json:"requirements"`
	CompanyName  string               `db:"company_name" json:"company_name"`
	Status       types.PositionStatus `db:"status" json:"status"`
	PostedDate   time.Time            `db:"posted_date" json:"posted_date"`
}

// Analytics is the per-position application breakdown for the HR dashboard.
type Analytics struct {
	PositionID        string `db:"position_id" json:"position_id"`
	Title             string `db:"title" json:"title"`
	TotalApplications int    `db:"total_applications" json:"total_applications"`
	Accepted          int    `db:"accepted" json:"accepted"`
	Rejected          int    `db:"rejected" json:"rejected"`
	Pending           int    `db:"pending" json:"pending"`
}
