package coop

import "time"

// Record is one co-op placement for a student. Approval is an admin action.
type Record struct {
	ID          string     `db:"co_op_id" json:"co_op_id"`
	StudentID   string     `db:"student_id" json:"student_id"`
	CompanyName string     `db:"company_name" json:"company_name"`
	StartDate   time.Time  `db:"start_date" json:"start_date"`
	EndDate     *time.Time `db:"end_date" json:"end_date,omitempty"`
	Approved    bool       `db:"approved" json:"approved"`
}

// CompanyStats is the per-company aggregate row behind the coop-status report.
type CompanyStats struct {
	CompanyName   string     `db:"company_name" json:"company_name"`
	StudentCount  int        `db:"student_count" json:"student_count"`
	EarliestStart time.Time  `db:"earliest_start" json:"earliest_start"`
	LatestEnd     *time.Time `db:"latest_end" json:"latest_end"`
}
