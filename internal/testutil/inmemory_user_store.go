package testutil

import (
	"context"
	"sync"

	"github.com/coopportal/coopportal/internal/domain/user"
	ierr "github.com/coopportal/coopportal/internal/errors"
)

type InMemoryUserStore struct {
	mu    sync.Mutex
	users map[string]*user.User

	students *InMemoryStudentStore
}

func NewInMemoryUserStore() *InMemoryUserStore {
	return &InMemoryUserStore{users: make(map[string]*user.User)}
}

func (r *InMemoryUserStore) Attach(students *InMemoryStudentStore) {
	r.students = students
}

func (r *InMemoryUserStore) Create(ctx context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[u.ID]; exists {
		return ierr.NewError("user already exists").
			WithHint("User already exists").
			Mark(ierr.ErrAlreadyExists)
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *InMemoryUserStore) Get(ctx context.Context, id string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, exists := r.users[id]
	if !exists {
		return nil, ierr.NewError("user not found").
			WithHint("User not found").
			Mark(ierr.ErrNotFound)
	}
	cp := *u
	return &cp, nil
}

func (r *InMemoryUserStore) Update(ctx context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[u.ID]; !exists {
		return ierr.NewError("user not found").
			WithHint("User not found").
			Mark(ierr.ErrNotFound)
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *InMemoryUserStore) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	_, exists := r.users[id]
	delete(r.users, id)
	r.mu.Unlock()

	if !exists {
		return ierr.NewError("user not found").
			WithHint("User not found").
			Mark(ierr.ErrNotFound)
	}
	// Mirror the store-level cascade onto the student row.
	if r.students != nil {
		r.students.Remove(id)
	}
	return nil
}

func (r *InMemoryUserStore) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = make(map[string]*user.User)
}
