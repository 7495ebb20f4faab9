package grade

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record is one course grade for a student.
type Record struct {
	ID           string          `db:"grade_id" json:"grade_id"`
	StudentID    string          `db:"student_id" json:"student_id"`
	CourseName   string          `db:"course_name" json:"course_name"`
	Grade        decimal.Decimal `db:"grade" json:"grade"`
	RecordedBy   string          `db:"recorded_by" json:"recorded_by"`
	RecordedDate time.Time       `db:"recorded_date" json:"recorded_date"`
}

// RecordWithStudent joins the grade with the student's name and email for the
// admin academic-records listing.
type RecordWithStudent struct {
	Record
	StudentName  string `db:"full_name" json:"full_name"`
	StudentEmail string `db:"email" json:"email"`
}

// CourseStats is the per-course aggregate row behind the admin analytics and
// grade-distribution reports.
type CourseStats struct {
	CourseName     string          `db:"course_name" json:"course_name"`
	StudentCount   int             `db:"student_count" json:"student_count"`
	AvgGrade       decimal.Decimal `db:"avg_grade" json:"avg_grade"`
	MinGrade       decimal.Decimal `db:"min_grade" json:"min_grade"`
	MaxGrade       decimal.Decimal `db:"max_grade" json:"max_grade"`
	HighPerformers int             `db:"high_performers" json:"high_performers"`
}
