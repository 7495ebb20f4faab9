package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/coopportal/coopportal/internal/domain/coop"
	ierr "github.com/coopportal/coopportal/internal/errors"
)

type InMemoryCoopStore struct {
	mu      sync.Mutex
	records map[string]*coop.Record
}

func NewInMemoryCoopStore() *InMemoryCoopStore {
	return &InMemoryCoopStore{records: make(map[string]*coop.Record)}
}

func (r *InMemoryCoopStore) Create(ctx context.Context, rec *coop.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *rec
	r.records[rec.ID] = &cp
	return nil
}

func (r *InMemoryCoopStore) Get(ctx context.Context, id string) (*coop.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, exists := r.records[id]
	if !exists {
		return nil, ierr.NewError("co-op record not found").
			WithHint("Co-op record not found").
			Mark(ierr.ErrNotFound)
	}
	cp := *rec
	return &cp, nil
}

func (r *InMemoryCoopStore) ListByStudent(ctx context.Context, studentID string) ([]*coop.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []*coop.Record
	for _, rec := range r.records {
		if rec.StudentID == studentID {
			cp := *rec
			result = append(result, &cp)
		}
	}
	sortCoops(result)
	return result, nil
}

func (r *InMemoryCoopStore) ListAll(ctx context.Context) ([]*coop.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]*coop.Record, 0, len(r.records))
	for _, rec := range r.records {
		cp := *rec
		result = append(result, &cp)
	}
	sortCoops(result)
	return result, nil
}

func (r *InMemoryCoopStore) Approve(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, exists := r.records[id]
	if !exists {
		return ierr.NewError("co-op record not found").
			WithHint("Co-op record not found").
			Mark(ierr.ErrNotFound)
	}
	rec.Approved = true
	return nil
}

func (r *InMemoryCoopStore) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[id]; !exists {
		return ierr.NewError("co-op record not found").
			WithHint("Co-op record not found").
			Mark(ierr.ErrNotFound)
	}
	delete(r.records, id)
	return nil
}

func (r *InMemoryCoopStore) CompanyStats(ctx context.Context) ([]*coop.CompanyStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	byCompany := make(map[string][]*coop.Record)
	for _, rec := range r.records {
		byCompany[rec.CompanyName] = append(byCompany[rec.CompanyName], rec)
	}

	var stats []*coop.CompanyStats
	for company, records := range byCompany {
		row := &coop.CompanyStats{CompanyName: company}
		students := make(map[string]struct{})
		for i, rec := range records {
			students[rec.StudentID] = struct{}{}
			if i == 0 || rec.StartDate.Before(row.EarliestStart) {
				row.EarliestStart = rec.StartDate
			}
			if rec.EndDate != nil && (row.LatestEnd == nil || rec.EndDate.After(*row.LatestEnd)) {
				end := *rec.EndDate
				row.LatestEnd = &end
			}
		}
		row.StudentCount = len(students)
		stats = append(stats, row)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].CompanyName < stats[j].CompanyName })
	return stats, nil
}

func sortCoops(records []*coop.Record) {
	sort.Slice(records, func(i, j int) bool {
		if !records[i].StartDate.Equal(records[j].StartDate) {
			return records[i].StartDate.After(records[j].StartDate)
		}
		return records[i].ID > records[j].ID
	})
}

func (r *InMemoryCoopStore) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = make(map[string]*coop.Record)
}
