package maintenance

import "time"

// DatabaseInfo describes one monitored database instance.
type DatabaseInfo struct {
	ID         string    `db:"database_id" json:"database_id"`
	Name       string    `db:"name" json:"name"`
	Version    string    `db:"version" json:"version"`
	Type       string    `db:"type" json:"type"`
	LastUpdate time.Time `db:"last_update" json:"last_update"`
}

// Alert is one alert-history row for a monitored database.
type Alert struct {
	ID         string `db:"alert_id" json:"alert_id"`
	DatabaseID string `db:"database_id" json:"database_id"`
	Metrics    string `db:"metrics" json:"metrics"`
	Alerts     string `db:"alerts" json:"alerts"`
	Severity   string `db:"severity" json:"severity"`
}

// AlertWithDatabase joins the alert with the database name for the
// performance and alert views.
type AlertWithDatabase struct {
	Alert
	DatabaseName string `db:"database_name" json:"database_name"`
}

// Backup is one backup-history row. Reference is a short server-assigned
// code surfaced in the backup manager.
type Backup struct {
	ID         string    `db:"backup_id" json:"backup_id"`
	Reference  string    `db:"reference" json:"reference"`
	Type       string    `db:"type" json:"type"`
	BackupDate time.Time `db:"backup_date" json:"backup_date"`
	BackupType string    `db:"backup_type" json:"backup_type"`
	Details    string    `db:"details" json:"details"`
	DatabaseID string    `db:"database_id" json:"database_id"`
}

// Alteration is one data-alteration-history row.
type Alteration struct {
	ID             string    `db:"alteration_id" json:"alteration_id"`
	AlterationType string    `db:"alteration_type" json:"alteration_type"`
	AlterationDate time.Time `db:"alteration_date" json:"alteration_date"`
	DatabaseID     string    `db:"database_id" json:"database_id"`
}
