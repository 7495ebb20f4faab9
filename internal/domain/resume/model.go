package resume

import "time"

// Resume is a student's uploaded resume document.
type Resume struct {
	ID           string    `db:"resume_id" json:"resume_id"`
	UserID       string    `db:"user_id" json:"user_id"`
	DocName      string    `db:"doc_name" json:"doc_name"`
	TimeUploaded time.Time `db:"time_uploaded" json:"time_uploaded"`
}

// Suggestion is one feedback entry an HR reviewer attached to a resume.
type Suggestion struct {
	ID          string    `db:"suggestion_id" json:"suggestion_id"`
	ResumeID    string    `db:"resume_id" json:"resume_id"`
	Text        string    `db:"suggestion_text" json:"suggestion_text"`
	TimeCreated time.Time `db:"time_created" json:"time_created"`
}

// Screening is a resume joined with its student and the most recent feedback
// entry, the shape the HR resume screen renders. LatestSuggestion is nil when
// no feedback exists yet.
type Screening struct {
	ID               string    `db:"resume_id" json:"resume_id"`
	UserID           string    `db:"user_id" json:"user_id"`
	DocName          string    `db:"doc_name" json:"doc_name"`
	TimeUploaded     time.Time `db:"time_uploaded" json:"time_uploaded"`
	StudentName      string    `db:"full_name" json:"full_name"`
	StudentEmail     string    `db:"email" json:"email"`
	LatestSuggestion *string   `db:"latest_suggestion" json:"latest_suggestion"`
}
