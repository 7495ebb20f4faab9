package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/coopportal/coopportal/internal/domain/resume"
	ierr "github.com/coopportal/coopportal/internal/errors"
)

type InMemoryResumeStore struct {
	mu      sync.Mutex
	resumes map[string]*resume.Resume

	students    *InMemoryStudentStore
	suggestions *InMemorySuggestionStore
}

func NewInMemoryResumeStore() *InMemoryResumeStore {
	return &InMemoryResumeStore{resumes: make(map[string]*resume.Resume)}
}

func (r *InMemoryResumeStore) Attach(students *InMemoryStudentStore, suggestions *InMemorySuggestionStore) {
	r.students = students
	r.suggestions = suggestions
}

func (r *InMemoryResumeStore) Create(ctx context.Context, res *resume.Resume) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *res
	r.resumes[res.ID] = &cp
	return nil
}

func (r *InMemoryResumeStore) Get(ctx context.Context, id string) (*resume.Resume, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, exists := r.resumes[id]
	if !exists {
		return nil, ierr.NewError("resume not found").
			WithHint("Resume not found").
			Mark(ierr.ErrNotFound)
	}
	cp := *res
	return &cp, nil
}

func (r *InMemoryResumeStore) GetByStudent(ctx context.Context, userID string) (*resume.Resume, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var latest *resume.Resume
	for _, res := range r.resumes {
		if res.UserID != userID {
			continue
		}
		if latest == nil || res.TimeUploaded.After(latest.TimeUploaded) {
			latest = res
		}
	}
	if latest == nil {
		return nil, ierr.NewError("resume not found").
			WithHint("Resume not found").
			Mark(ierr.ErrNotFound)
	}
	cp := *latest
	return &cp, nil
}

func (r *InMemoryResumeStore) UpdateDocName(ctx context.Context, id, docName string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, exists := r.resumes[id]
	if !exists {
		return ierr.NewError("resume not found").
			WithHint("Resume not found").
			Mark(ierr.ErrNotFound)
	}
	res.DocName = docName
	return nil
}

func (r *InMemoryResumeStore) ListScreenings(ctx context.Context) ([]*resume.Screening, error) {
	r.mu.Lock()
	resumes := make([]*resume.Resume, 0, len(r.resumes))
	for _, res := range r.resumes {
		cp := *res
		resumes = append(resumes, &cp)
	}
	r.mu.Unlock()

	screenings := make([]*resume.Screening, 0, len(resumes))
	for _, res := range resumes {
		sc := &resume.Screening{
			ID:           res.ID,
			UserID:       res.UserID,
			DocName:      res.DocName,
			TimeUploaded: res.TimeUploaded,
		}
		if r.students != nil {
			if s, ok := r.students.lookup(res.UserID); ok {
				sc.StudentName = s.FullName
				sc.StudentEmail = s.Email
			}
		}
		if r.suggestions != nil {
			if latest, err := r.suggestions.Latest(ctx, res.ID); err == nil {
				sc.LatestSuggestion = &latest.Text
			}
		}
		screenings = append(screenings, sc)
	}
	sort.Slice(screenings, func(i, j int) bool {
		if !screenings[i].TimeUploaded.Equal(screenings[j].TimeUploaded) {
			return screenings[i].TimeUploaded.After(screenings[j].TimeUploaded)
		}
		return screenings[i].ID > screenings[j].ID
	})
	return screenings, nil
}

func (r *InMemoryResumeStore) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resumes = make(map[string]*resume.Resume)
}

type InMemorySuggestionStore struct {
	mu          sync.Mutex
	suggestions map[string]*resume.Suggestion
}

func NewInMemorySuggestionStore() *InMemorySuggestionStore {
	return &InMemorySuggestionStore{suggestions: make(map[string]*resume.Suggestion)}
}

func (r *InMemorySuggestionStore) Create(ctx context.Context, s *resume.Suggestion) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *s
	r.suggestions[s.ID] = &cp
	return nil
}

func (r *InMemorySuggestionStore) ListByResume(ctx context.Context, resumeID string) ([]*resume.Suggestion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []*resume.Suggestion
	for _, s := range r.suggestions {
		if s.ResumeID == resumeID {
			cp := *s
			result = append(result, &cp)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].TimeCreated.Equal(result[j].TimeCreated) {
			return result[i].TimeCreated.After(result[j].TimeCreated)
		}
		return result[i].ID > result[j].ID
	})
	return result, nil
}

func (r *InMemorySuggestionStore) Latest(ctx context.Context, resumeID string) (*resume.Suggestion, error) {
	all, err := r.ListByResume(ctx, resumeID)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, ierr.NewError("no suggestions for resume").
			WithHint("No suggestions for resume").
			Mark(ierr.ErrNotFound)
	}
	return all[0], nil
}

func (r *InMemorySuggestionStore) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.suggestions = make(map[string]*resume.Suggestion)
}
