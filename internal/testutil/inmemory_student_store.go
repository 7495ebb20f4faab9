package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/coopportal/coopportal/internal/domain/student"
	ierr "github.com/coopportal/coopportal/internal/errors"
)

type InMemoryStudentStore struct {
	mu       sync.Mutex
	students map[string]*student.Profile
}

func NewInMemoryStudentStore() *InMemoryStudentStore {
	return &InMemoryStudentStore{students: make(map[string]*student.Profile)}
}

func (r *InMemoryStudentStore) lookup(userID string) (*student.Profile, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, exists := r.students[userID]
	if !exists {
		return nil, false
	}
	cp := *p
	return &cp, true
}

func (r *InMemoryStudentStore) Create(ctx context.Context, s *student.Student) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.students[s.UserID] = &student.Profile{
		UserID:   s.UserID,
		FullName: s.FullName,
		Email:    s.Email,
	}
	return nil
}

func (r *InMemoryStudentStore) Get(ctx context.Context, userID string) (*student.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, exists := r.students[userID]
	if !exists {
		return nil, ierr.NewError("student not found").
			WithHint("Student not found").
			Mark(ierr.ErrNotFound)
	}
	return &student.Student{UserID: p.UserID, FullName: p.FullName, Email: p.Email}, nil
}

func (r *InMemoryStudentStore) GetProfile(ctx context.Context, userID string) (*student.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, exists := r.students[userID]
	if !exists {
		return nil, ierr.NewError("student not found").
			WithHint("Student not found").
			Mark(ierr.ErrNotFound)
	}
	cp := *p
	return &cp, nil
}

func (r *InMemoryStudentStore) List(ctx context.Context) ([]*student.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	profiles := make([]*student.Profile, 0, len(r.students))
	for _, p := range r.students {
		cp := *p
		profiles = append(profiles, &cp)
	}
	sort.Slice(profiles, func(i, j int) bool { return profiles[i].UserID < profiles[j].UserID })
	return profiles, nil
}

func (r *InMemoryStudentStore) Update(ctx context.Context, s *student.Student) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, exists := r.students[s.UserID]
	if !exists {
		return ierr.NewError("student not found").
			WithHint("Student not found").
			Mark(ierr.ErrNotFound)
	}
	p.FullName = s.FullName
	p.Email = s.Email
	return nil
}

// Remove deletes the student row, standing in for the store-level cascade
// off the user row.
func (r *InMemoryStudentStore) Remove(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.students, userID)
}

func (r *InMemoryStudentStore) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.students = make(map[string]*student.Profile)
}
