package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/coopportal/coopportal/internal/domain/position"
	ierr "github.com/coopportal/coopportal/internal/errors"
	"github.com/coopportal/coopportal/internal/types"
)

type InMemoryPositionStore struct {
	mu        sync.Mutex
	positions map[string]*position.Position
	companies map[string]string // hr_id -> company_name

	applications *InMemoryApplicationStore
}

func NewInMemoryPositionStore() *InMemoryPositionStore {
	return &InMemoryPositionStore{
		positions: make(map[string]*position.Position),
		companies: make(map[string]string),
	}
}

func (r *InMemoryPositionStore) Attach(applications *InMemoryApplicationStore) {
	r.applications = applications
}

// SetCompany registers the company an HR actor posts for, standing in for
// the hr_manager join.
func (r *InMemoryPositionStore) SetCompany(hrID, companyName string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.companies[hrID] = companyName
}

func (r *InMemoryPositionStore) lookup(id string) (*position.Position, string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, exists := r.positions[id]
	if !exists {
		return nil, "", false
	}
	cp := *p
	return &cp, r.companies[p.HRID], true
}

func (r *InMemoryPositionStore) Create(ctx context.Context, p *position.Position) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *p
	r.positions[p.ID] = &cp
	return nil
}

func (r *InMemoryPositionStore) Get(ctx context.Context, id string) (*position.Position, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, exists := r.positions[id]
	if !exists {
		return nil, ierr.NewError("position not found").
			WithHint("Position not found").
			Mark(ierr.ErrNotFound)
	}
	cp := *p
	return &cp, nil
}

func (r *InMemoryPositionStore) Update(ctx context.Context, p *position.Position) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.positions[p.ID]; !exists {
		return ierr.NewError("position not found").
			WithHint("Position not found").
			Mark(ierr.ErrNotFound)
	}
	cp := *p
	r.positions[p.ID] = &cp
	return nil
}

func (r *InMemoryPositionStore) UpdateStatus(ctx context.Context, id string, status types.PositionStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, exists := r.positions[id]
	if !exists {
		return ierr.NewError("position not found").
			WithHint("Position not found").
			Mark(ierr.ErrNotFound)
	}
	p.Status = status
	return nil
}

func (r *InMemoryPositionStore) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.positions[id]; !exists {
		return ierr.NewError("position not found").
			WithHint("Position not found").
			Mark(ierr.ErrNotFound)
	}
	delete(r.positions, id)
	return nil
}

func (r *InMemoryPositionStore) ListWithCounts(ctx context.Context) ([]*position.WithCount, error) {
	r.mu.Lock()
	positions := make([]*position.Position, 0, len(r.positions))
	for _, p := range r.positions {
		cp := *p
		positions = append(positions, &cp)
	}
	r.mu.Unlock()

	result := make([]*position.WithCount, 0, len(positions))
	for _, p := range positions {
		count := 0
		if r.applications != nil {
			count, _ = r.applications.CountByPosition(ctx, p.ID)
		}
		result = append(result, &position.WithCount{Position: *p, ApplicationCount: count})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].PostedDate.After(result[j].PostedDate)
	})
	return result, nil
}

func (r *InMemoryPositionStore) ListActive(ctx context.Context) ([]*position.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var listings []*position.Listing
	for _, p := range r.positions {
		if p.Status != types.PositionStatusActive {
			continue
		}
		listings = append(listings, &position.Listing{
			ID:           p.ID,
			Title:        p.Title,
			Description:  p.Description,
			Requirements: p.Requirements,
			CompanyName:  r.companies[p.HRID],
			Status:       p.Status,
			PostedDate:   p.PostedDate,
		})
	}
	sort.Slice(listings, func(i, j int) bool {
		return listings[i].PostedDate.After(listings[j].PostedDate)
	})
	return listings, nil
}

func (r *InMemoryPositionStore) Analytics(ctx context.Context) ([]*position.Analytics, error) {
	r.mu.Lock()
	positions := make([]*position.Position, 0, len(r.positions))
	for _, p := range r.positions {
		cp := *p
		positions = append(positions, &cp)
	}
	r.mu.Unlock()

	var result []*position.Analytics
	for _, p := range positions {
		row := &position.Analytics{PositionID: p.ID, Title: p.Title}
		if r.applications != nil {
			r.applications.mu.Lock()
			for _, a := range r.applications.applications {
				if a.PositionID != p.ID {
					continue
				}
				row.TotalApplications++
				switch a.Status {
				case types.ApplicationStatusAccepted:
					row.Accepted++
				case types.ApplicationStatusRejected:
					row.Rejected++
				case types.ApplicationStatusPending:
					row.Pending++
				}
			}
			r.applications.mu.Unlock()
		}
		result = append(result, row)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].PositionID < result[j].PositionID })
	return result, nil
}

func (r *InMemoryPositionStore) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.positions = make(map[string]*position.Position)
	r.companies = make(map[string]string)
}
