package maintenance

import "context"

type DatabaseRepository interface {
	List(ctx context.Context) ([]*DatabaseInfo, error)
	Update(ctx context.Context, d *DatabaseInfo) error
	Delete(ctx context.Context, id string) error
}

type AlertRepository interface {
	Create(ctx context.Context, a *Alert) error
	List(ctx context.Context) ([]*AlertWithDatabase, error)
	// ListByRecency orders alerts by the monitored database's last update,
	// the shape the performance monitor renders.
	ListByRecency(ctx context.Context) ([]*AlertWithDatabase, error)
	Update(ctx context.Context, a *Alert) error
	Delete(ctx context.Context, id string) error
}

type BackupRepository interface {
	Create(ctx context.Context, b *Backup) error
	List(ctx context.Context) ([]*Backup, error)
	Update(ctx context.Context, b *Backup) error
	Delete(ctx context.Context, id string) error
}

type AlterationRepository interface {
	Create(ctx context.Context, a *Alteration) error
	List(ctx context.Context) ([]*Alteration, error)
	Update(ctx context.Context, a *Alteration) error
	Delete(ctx context.Context, id string) error
}
