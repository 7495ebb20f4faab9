package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/coopportal/coopportal/internal/domain/application"
	ierr "github.com/coopportal/coopportal/internal/errors"
	"github.com/coopportal/coopportal/internal/types"
)

// InMemoryApplicationStore implements application.Repository with the same
// ranking semantics the SQL window query enforces: newest row per
// (student, position) pair is current, status filters apply after ranking.
type InMemoryApplicationStore struct {
	mu           sync.Mutex
	applications map[string]*application.Application

	positions *InMemoryPositionStore
	students  *InMemoryStudentStore
}

func NewInMemoryApplicationStore() *InMemoryApplicationStore {
	return &InMemoryApplicationStore{
		applications: make(map[string]*application.Application),
	}
}

// Attach wires the lookup stores joins resolve against.
func (r *InMemoryApplicationStore) Attach(positions *InMemoryPositionStore, students *InMemoryStudentStore) {
	r.positions = positions
	r.students = students
}

func (r *InMemoryApplicationStore) Create(ctx context.Context, a *application.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *a
	r.applications[a.ID] = &cp
	return nil
}

func (r *InMemoryApplicationStore) Get(ctx context.Context, id string) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, exists := r.applications[id]
	if !exists {
		return nil, ierr.NewError("application not found").
			WithHint("Application not found").
			Mark(ierr.ErrNotFound)
	}
	cp := *a
	return &cp, nil
}

func (r *InMemoryApplicationStore) UpdateStatus(ctx context.Context, id string, status types.ApplicationStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, exists := r.applications[id]
	if !exists {
		return ierr.NewError("application not found").
			WithHint("Application not found").
			Mark(ierr.ErrNotFound)
	}
	a.Status = status
	return nil
}

func (r *InMemoryApplicationStore) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.applications[id]; !exists {
		return ierr.NewError("application not found").
			WithHint("Application not found").
			Mark(ierr.ErrNotFound)
	}
	delete(r.applications, id)
	return nil
}

func (r *InMemoryApplicationStore) CountByPosition(ctx context.Context, positionID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for _, a := range r.applications {
		if a.PositionID == positionID {
			count++
		}
	}
	return count, nil
}

// rank returns all rows of one student grouped per position, newest first;
// index 0 in each group is the current row.
func (r *InMemoryApplicationStore) rank(studentID string) [][]*application.Application {
	byPosition := make(map[string][]*application.Application)
	for _, a := range r.applications {
		if a.StudentID == studentID {
			byPosition[a.PositionID] = append(byPosition[a.PositionID], a)
		}
	}

	groups := make([][]*application.Application, 0, len(byPosition))
	for _, group := range byPosition {
		sort.Slice(group, func(i, j int) bool {
			if !group[i].SentOn.Equal(group[j].SentOn) {
				return group[i].SentOn.After(group[j].SentOn)
			}
			return group[i].ID > group[j].ID
		})
		groups = append(groups, group)
	}
	return groups
}

func (r *InMemoryApplicationStore) detail(a *application.Application) *application.Detail {
	d := &application.Detail{
		ID:         a.ID,
		StudentID:  a.StudentID,
		PositionID: a.PositionID,
		SentOn:     a.SentOn,
		Status:     a.Status,
	}
	if r.positions != nil {
		if p, company, ok := r.positions.lookup(a.PositionID); ok {
			d.Title = p.Title
			d.Description = p.Description
			d.Requirements = p.Requirements
			d.CompanyName = company
		}
	}
	return d
}

func (r *InMemoryApplicationStore) ListActiveByStudent(ctx context.Context, studentID string) ([]*application.Detail, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var details []*application.Detail
	for _, group := range r.rank(studentID) {
		if current := group[0]; current.Status == types.ApplicationStatusPending {
			details = append(details, r.detail(current))
		}
	}
	sortDetails(details)
	return details, nil
}

func (r *InMemoryApplicationStore) ListHistoryByStudent(ctx context.Context, studentID string) ([]*application.Detail, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var details []*application.Detail
	for _, group := range r.rank(studentID) {
		for i, a := range group {
			if i > 0 || a.Status != types.ApplicationStatusPending {
				details = append(details, r.detail(a))
			}
		}
	}
	sortDetails(details)
	return details, nil
}

func (r *InMemoryApplicationStore) ListCurrentByStatus(ctx context.Context, status types.ApplicationStatus) ([]*application.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	studentIDs := make(map[string]struct{})
	for _, a := range r.applications {
		studentIDs[a.StudentID] = struct{}{}
	}

	var reviews []*application.Review
	for studentID := range studentIDs {
		for _, group := range r.rank(studentID) {
			if current := group[0]; current.Status == status {
				reviews = append(reviews, r.review(current))
			}
		}
	}
	sort.Slice(reviews, func(i, j int) bool {
		if !reviews[i].SentOn.Equal(reviews[j].SentOn) {
			return reviews[i].SentOn.After(reviews[j].SentOn)
		}
		return reviews[i].ID > reviews[j].ID
	})
	return reviews, nil
}

func (r *InMemoryApplicationStore) GetReview(ctx context.Context, id string) (*application.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, exists := r.applications[id]
	if !exists {
		return nil, ierr.NewError("application not found").
			WithHint("Application not found").
			Mark(ierr.ErrNotFound)
	}
	return r.review(a), nil
}

func (r *InMemoryApplicationStore) review(a *application.Application) *application.Review {
	review := &application.Review{
		ID:         a.ID,
		StudentID:  a.StudentID,
		PositionID: a.PositionID,
		SentOn:     a.SentOn,
		Status:     a.Status,
	}
	if r.positions != nil {
		if p, _, ok := r.positions.lookup(a.PositionID); ok {
			review.PositionTitle = p.Title
		}
	}
	if r.students != nil {
		if s, ok := r.students.lookup(a.StudentID); ok {
			review.StudentName = s.FullName
			review.StudentEmail = s.Email
		}
	}
	return review
}

func sortDetails(details []*application.Detail) {
	sort.Slice(details, func(i, j int) bool {
		if !details[i].SentOn.Equal(details[j].SentOn) {
			return details[i].SentOn.After(details[j].SentOn)
		}
		return details[i].ID > details[j].ID
	})
}

func (r *InMemoryApplicationStore) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.applications = make(map[string]*application.Application)
}
