package history

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UpdateRecord is one journaled update run.
type UpdateRecord struct {
	ID         string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	RunAt      time.Time `gorm:"column:run_at;index" json:"run_at"`
	EVTPath    string    `gorm:"column:evt_path;size:1024" json:"evt_path"`
	Sources    string    `gorm:"column:sources;size:4096" json:"sources"`
	Added      int       `gorm:"column:added" json:"added"`
	Updated    int       `gorm:"column:updated" json:"updated"`
	Unchanged  int       `gorm:"column:unchanged" json:"unchanged"`
	Total      int       `gorm:"column:total" json:"total"`
	DryRun     bool      `gorm:"column:dry_run" json:"dry_run"`
	BackupPath string    `gorm:"column:backup_path;size:1024" json:"backup_path,omitempty"`
}

// TableName pins the table name regardless of naming strategy.
func (UpdateRecord) TableName() string {
	return "lynx_updates"
}

// Store is the journal surface used by the update service and the CLI.
type Store interface {
	Record(ctx context.Context, rec *UpdateRecord) error
	List(ctx context.Context, limit int) ([]UpdateRecord, error)
}

var _ Store = (*Journal)(nil)

// Journal stores update records in a SQL database.
type Journal struct {
	db *gorm.DB
}

// NewJournal wraps an open database. Call Migrate before first use.
func NewJournal(db *gorm.DB) *Journal {
	return &Journal{db: db}
}

// Open connects using cfg and prepares the schema.
func Open(ctx context.Context, cfg Config) (*Journal, error) {
	db, err := Connect(cfg)
	if err != nil {
		return nil, err
	}

	j := NewJournal(db)
	if err := j.Migrate(ctx); err != nil {
		_ = j.Close()
		return nil, err
	}
	return j, nil
}

// Migrate creates or updates the journal table.
func (j *Journal) Migrate(ctx context.Context) error {
	if err := j.db.WithContext(ctx).AutoMigrate(&UpdateRecord{}); err != nil {
		return fmt.Errorf("failed to migrate history table: %w", err)
	}
	return nil
}

// Record stores rec, assigning an ID and timestamp when missing.
func (j *Journal) Record(ctx context.Context, rec *UpdateRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.RunAt.IsZero() {
		rec.RunAt = time.Now().UTC()
	}

	if err := j.db.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("failed to record update %s: %w", rec.ID, err)
	}
	return nil
}

// List returns the most recent records first. A limit of zero or less
// returns every record.
func (j *Journal) List(ctx context.Context, limit int) ([]UpdateRecord, error) {
	var records []UpdateRecord

	q := j.db.WithContext(ctx).Order("run_at desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list updates: %w", err)
	}
	return records, nil
}

// Close releases the underlying connection pool.
func (j *Journal) Close() error {
	sqlDB, err := j.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
