package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/coopportal/coopportal/internal/domain/maintenance"
	ierr "github.com/coopportal/coopportal/internal/errors"
)

type InMemoryDatabaseStore struct {
	mu        sync.Mutex
	databases map[string]*maintenance.DatabaseInfo
}

func NewInMemoryDatabaseStore() *InMemoryDatabaseStore {
	return &InMemoryDatabaseStore{databases: make(map[string]*maintenance.DatabaseInfo)}
}

// Seed inserts a database row directly; the portal only updates and deletes
// inventory entries.
func (r *InMemoryDatabaseStore) Seed(d *maintenance.DatabaseInfo) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *d
	r.databases[d.ID] = &cp
}

func (r *InMemoryDatabaseStore) List(ctx context.Context) ([]*maintenance.DatabaseInfo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]*maintenance.DatabaseInfo, 0, len(r.databases))
	for _, d := range r.databases {
		cp := *d
		result = append(result, &cp)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].LastUpdate.Equal(result[j].LastUpdate) {
			return result[i].LastUpdate.After(result[j].LastUpdate)
		}
		return result[i].ID > result[j].ID
	})
	return result, nil
}

func (r *InMemoryDatabaseStore) Update(ctx context.Context, d *maintenance.DatabaseInfo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.databases[d.ID]; !exists {
		return ierr.NewError("database not found").
			WithHint("Database not found").
			Mark(ierr.ErrNotFound)
	}
	cp := *d
	r.databases[d.ID] = &cp
	return nil
}

func (r *InMemoryDatabaseStore) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.databases[id]; !exists {
		return ierr.NewError("database not found").
			WithHint("Database not found").
			Mark(ierr.ErrNotFound)
	}
	delete(r.databases, id)
	return nil
}

func (r *InMemoryDatabaseStore) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.databases = make(map[string]*maintenance.DatabaseInfo)
}

type InMemoryAlertStore struct {
	mu     sync.Mutex
	alerts map[string]*maintenance.Alert

	databases *InMemoryDatabaseStore
}

func NewInMemoryAlertStore() *InMemoryAlertStore {
	return &InMemoryAlertStore{alerts: make(map[string]*maintenance.Alert)}
}

func (r *InMemoryAlertStore) Attach(databases *InMemoryDatabaseStore) {
	r.databases = databases
}

func (r *InMemoryAlertStore) Create(ctx context.Context, a *maintenance.Alert) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *a
	r.alerts[a.ID] = &cp
	return nil
}

func (r *InMemoryAlertStore) withDatabase(a *maintenance.Alert) *maintenance.AlertWithDatabase {
	row := &maintenance.AlertWithDatabase{Alert: *a}
	if r.databases != nil {
		r.databases.mu.Lock()
		if d, ok := r.databases.databases[a.DatabaseID]; ok {
			row.DatabaseName = d.Name
		}
		r.databases.mu.Unlock()
	}
	return row
}

func (r *InMemoryAlertStore) List(ctx context.Context) ([]*maintenance.AlertWithDatabase, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]*maintenance.AlertWithDatabase, 0, len(r.alerts))
	for _, a := range r.alerts {
		result = append(result, r.withDatabase(a))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

func (r *InMemoryAlertStore) ListByRecency(ctx context.Context) ([]*maintenance.AlertWithDatabase, error) {
	return r.List(ctx)
}

func (r *InMemoryAlertStore) Update(ctx context.Context, a *maintenance.Alert) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.alerts[a.ID]; !exists {
		return ierr.NewError("alert not found").
			WithHint("Alert not found").
			Mark(ierr.ErrNotFound)
	}
	cp := *a
	r.alerts[a.ID] = &cp
	return nil
}

func (r *InMemoryAlertStore) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.alerts[id]; !exists {
		return ierr.NewError("alert not found").
			WithHint("Alert not found").
			Mark(ierr.ErrNotFound)
	}
	delete(r.alerts, id)
	return nil
}

func (r *InMemoryAlertStore) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.alerts = make(map[string]*maintenance.Alert)
}

type InMemoryBackupStore struct {
	mu      sync.Mutex
	backups map[string]*maintenance.Backup
}

func NewInMemoryBackupStore() *InMemoryBackupStore {
	return &InMemoryBackupStore{backups: make(map[string]*maintenance.Backup)}
}

func (r *InMemoryBackupStore) Create(ctx context.Context, b *maintenance.Backup) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *b
	r.backups[b.ID] = &cp
	return nil
}

func (r *InMemoryBackupStore) List(ctx context.Context) ([]*maintenance.Backup, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]*maintenance.Backup, 0, len(r.backups))
	for _, b := range r.backups {
		cp := *b
		result = append(result, &cp)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].BackupDate.Equal(result[j].BackupDate) {
			return result[i].BackupDate.After(result[j].BackupDate)
		}
		return result[i].ID > result[j].ID
	})
	return result, nil
}

func (r *InMemoryBackupStore) Update(ctx context.Context, b *maintenance.Backup) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.backups[b.ID]
	if !exists {
		return ierr.NewError("backup record not found").
			WithHint("Backup record not found").
			Mark(ierr.ErrNotFound)
	}
	cp := *b
	cp.Reference = existing.Reference
	r.backups[b.ID] = &cp
	return nil
}

func (r *InMemoryBackupStore) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.backups[id]; !exists {
		return ierr.NewError("backup record not found").
			WithHint("Backup record not found").
			Mark(ierr.ErrNotFound)
	}
	delete(r.backups, id)
	return nil
}

func (r *InMemoryBackupStore) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.backups = make(map[string]*maintenance.Backup)
}

type InMemoryAlterationStore struct {
	mu          sync.Mutex
	alterations map[string]*maintenance.Alteration
}

func NewInMemoryAlterationStore() *InMemoryAlterationStore {
	return &InMemoryAlterationStore{alterations: make(map[string]*maintenance.Alteration)}
}

func (r *InMemoryAlterationStore) Create(ctx context.Context, a *maintenance.Alteration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *a
	r.alterations[a.ID] = &cp
	return nil
}

func (r *InMemoryAlterationStore) List(ctx context.Context) ([]*maintenance.Alteration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]*maintenance.Alteration, 0, len(r.alterations))
	for _, a := range r.alterations {
		cp := *a
		result = append(result, &cp)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].AlterationDate.Equal(result[j].AlterationDate) {
			return result[i].AlterationDate.After(result[j].AlterationDate)
		}
		return result[i].ID > result[j].ID
	})
	return result, nil
}

func (r *InMemoryAlterationStore) Update(ctx context.Context, a *maintenance.Alteration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.alterations[a.ID]; !exists {
		return ierr.NewError("alteration record not found").
			WithHint("Alteration record not found").
			Mark(ierr.ErrNotFound)
	}
	cp := *a
	r.alterations[a.ID] = &cp
	return nil
}

func (r *InMemoryAlterationStore) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.alterations[id]; !exists {
		return ierr.NewError("alteration record not found").
			WithHint("Alteration record not found").
			Mark(ierr.ErrNotFound)
	}
	delete(r.alterations, id)
	return nil
}

func (r *InMemoryAlterationStore) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.alterations = make(map[string]*maintenance.Alteration)
}
