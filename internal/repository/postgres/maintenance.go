package postgres

import (
	"context"

	"github.com/coopportal/coopportal/internal/domain/maintenance"
	ierr "github.com/coopportal/coopportal/internal/errors"
	"github.com/coopportal/coopportal/internal/logger"
	"github.com/coopportal/coopportal/internal/postgres"
)

type databaseRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewDatabaseRepository(db *postgres.DB, logger *logger.Logger) maintenance.DatabaseRepository {
	return &databaseRepository{db: db, logger: logger}
}

func (r *databaseRepository) List(ctx context.Context) ([]*maintenance.DatabaseInfo, error) {
	query := `
	SELECT database_id, name, version, type, last_update
	FROM database_info
	ORDER BY last_update DESC, database_id DESC
	`

	var databases []*maintenance.DatabaseInfo
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &databases, query); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list databases").
			Mark(ierr.ErrDatabase)
	}
	return databases, nil
}

func (r *databaseRepository) Update(ctx context.Context, d *maintenance.DatabaseInfo) error {
	query := `
	UPDATE database_info
	SET name = $2, version = $3, type = $4, last_update = $5
	WHERE database_id = $1
	`

	res, err := r.db.GetQuerier(ctx).ExecContext(ctx, query,
		d.ID, d.Name, d.Version, d.Type, d.LastUpdate)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update database").
			Mark(ierr.ErrDatabase)
	}
	return requireRowsAffected(res, "Database not found")
}

func (r *databaseRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.GetQuerier(ctx).ExecContext(ctx,
		`DELETE FROM database_info WHERE database_id = $1`, id)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete database").
			Mark(ierr.ErrDatabase)
	}
	return requireRowsAffected(res, "Database not found")
}

type alertRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewAlertRepository(db *postgres.DB, logger *logger.Logger) maintenance.AlertRepository {
	return &alertRepository{db: db, logger: logger}
}

func (r *alertRepository) Create(ctx context.Context, a *maintenance.Alert) error {
	query := `
	INSERT INTO alert_history (alert_id, database_id, metrics, alerts, severity)
	VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.GetQuerier(ctx).ExecContext(ctx, query,
		a.ID, a.DatabaseID, a.Metrics, a.Alerts, a.Severity)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create alert").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *alertRepository) List(ctx context.Context) ([]*maintenance.AlertWithDatabase, error) {
	query := `
	SELECT a.alert_id, a.database_id, a.metrics, a.alerts, a.severity,
	       d.name AS database_name
	FROM alert_history a
	JOIN database_info d ON a.database_id = d.database_id
	ORDER BY a.alert_id DESC
	`

	var alerts []*maintenance.AlertWithDatabase
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &alerts, query); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list alerts").
			Mark(ierr.ErrDatabase)
	}
	return alerts, nil
}

func (r *alertRepository) ListByRecency(ctx context.Context) ([]*maintenance.AlertWithDatabase, error) {
	query := `
	SELECT a.alert_id, a.database_id, a.metrics, a.alerts, a.severity,
	       d.name AS database_name
	FROM alert_history a
	JOIN database_info d ON a.database_id = d.database_id
	ORDER BY d.last_update DESC, a.alert_id DESC
	`

	var alerts []*maintenance.AlertWithDatabase
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &alerts, query); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list alerts").
			Mark(ierr.ErrDatabase)
	}
	return alerts, nil
}

func (r *alertRepository) Update(ctx context.Context, a *maintenance.Alert) error {
	query := `
	UPDATE alert_history
	SET database_id = $2, metrics = $3, alerts = $4, severity = $5
	WHERE alert_id = $1
	`

	res, err := r.db.GetQuerier(ctx).ExecContext(ctx, query,
		a.ID, a.DatabaseID, a.Metrics, a.Alerts, a.Severity)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update alert").
			Mark(ierr.ErrDatabase)
	}
	return requireRowsAffected(res, "Alert not found")
}

func (r *alertRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.GetQuerier(ctx).ExecContext(ctx,
		`DELETE FROM alert_history WHERE alert_id = $1`, id)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete alert").
			Mark(ierr.ErrDatabase)
	}
	return requireRowsAffected(res, "Alert not found")
}

type backupRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewBackupRepository(db *postgres.DB, logger *logger.Logger) maintenance.BackupRepository {
	return &backupRepository{db: db, logger: logger}
}

func (r *backupRepository) Create(ctx context.Context, b *maintenance.Backup) error {
	query := `
	INSERT INTO backup_history (backup_id, reference, type, backup_date, backup_type, details, database_id)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.GetQuerier(ctx).ExecContext(ctx, query,
		b.ID, b.Reference, b.Type, b.BackupDate, b.BackupType, b.Details, b.DatabaseID)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create backup record").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *backupRepository) List(ctx context.Context) ([]*maintenance.Backup, error) {
	query := `
	SELECT backup_id, reference, type, backup_date, backup_type, details, database_id
	FROM backup_history
	ORDER BY backup_date DESC, backup_id DESC
	`

	var backups []*maintenance.Backup
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &backups, query); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list backups").
			Mark(ierr.ErrDatabase)
	}
	return backups, nil
}

func (r *backupRepository) Update(ctx context.Context, b *maintenance.Backup) error {
	query := `
	UPDATE backup_history
	SET type = $2, backup_date = $3, backup_type = $4, details = $5, database_id = $6
	WHERE backup_id = $1
	`

	res, err := r.db.GetQuerier(ctx).ExecContext(ctx, query,
		b.ID, b.Type, b.BackupDate, b.BackupType, b.Details, b.DatabaseID)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update backup record").
			Mark(ierr.ErrDatabase)
	}
	return requireRowsAffected(res, "Backup record not found")
}

func (r *backupRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.GetQuerier(ctx).ExecContext(ctx,
		`DELETE FROM backup_history WHERE backup_id = $1`, id)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete backup record").
			Mark(ierr.ErrDatabase)
	}
	return requireRowsAffected(res, "Backup record not found")
}

type alterationRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewAlterationRepository(db *postgres.DB, logger *logger.Logger) maintenance.AlterationRepository {
	return &alterationRepository{db: db, logger: logger}
}

func (r *alterationRepository) Create(ctx context.Context, a *maintenance.Alteration) error {
	query := `
	INSERT INTO data_alteration_history (alteration_id, alteration_type, alteration_date, database_id)
	VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.GetQuerier(ctx).ExecContext(ctx, query,
		a.ID, a.AlterationType, a.AlterationDate, a.DatabaseID)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create alteration record").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *alterationRepository) List(ctx context.Context) ([]*maintenance.Alteration, error) {
	query := `
	SELECT alteration_id, alteration_type, alteration_date, database_id
	FROM data_alteration_history
	ORDER BY alteration_date DESC, alteration_id DESC
	`

	var alterations []*maintenance.Alteration
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &alterations, query); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list alterations").
			Mark(ierr.ErrDatabase)
	}
	return alterations, nil
}

func (r *alterationRepository) Update(ctx context.Context, a *maintenance.Alteration) error {
	query := `
	UPDATE data_alteration_history
	SET alteration_type = $2, alteration_date = $3, database_id = $4
	WHERE alteration_id = $1
	`

	res, err := r.db.GetQuerier(ctx).ExecContext(ctx, query,
		a.ID, a.AlterationType, a.AlterationDate, a.DatabaseID)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update alteration record").
			Mark(ierr.ErrDatabase)
	}
	return requireRowsAffected(res, "Alteration record not found")
}

func (r *alterationRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.GetQuerier(ctx).ExecContext(ctx,
		`DELETE FROM data_alteration_history WHERE alteration_id = $1`, id)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete alteration record").
			Mark(ierr.ErrDatabase)
	}
	return requireRowsAffected(res, "Alteration record not found")
}
