package resume

import "context"

type Repository interface {
	Create(ctx context.Context, r *Resume) error
	Get(ctx context.Context, id string) (*Resume, error)
	GetByStudent(ctx context.Context, userID string) (*Resume, error)
	UpdateDocName(ctx context.Context, id, docName string) error
	// ListScreenings returns every resume with student info and its latest
	// suggestion, newest uploads first.
	ListScreenings(ctx context.Context) ([]*Screening, error)
}

type SuggestionRepository interface {
	Create(ctx context.Context, s *Suggestion) error
	ListByResume(ctx context.Context, resumeID string) ([]*Suggestion, error)
	// Latest returns the single suggestion with the greatest creation time
	// for the resume; ties resolve deterministically to exactly one row.
	Latest(ctx context.Context, resumeID string) (*Suggestion, error)
}
