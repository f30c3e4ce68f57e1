// Package history keeps an audit log of applied change sets in a local
// sqlite database, one row per confirmed submission.
package history

import (
	"time"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/zonevi/zonevi/internal/logger/adapter/gormlogger"
)

// ChangeSet is one applied diff.
type ChangeSet struct {
	ID        uint64 `gorm:"primaryKey"`
	Zone      string `gorm:"index"`
	AppliedAt time.Time
	Adds      int
	Deletes   int
	Script    string // the reviewed directive script, verbatim
}

// Log is an open history database.
type Log struct {
	db *gorm.DB
}

// Open opens (or creates) the history database at path.
func Open(path string) (*Log, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: gormlogger.New()})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open history database %s", path)
	}

	if err := db.AutoMigrate(&ChangeSet{}); err != nil {
		return nil, errors.Wrap(err, "failed to migrate history database")
	}

	return &Log{db: db}, nil
}

// Record stores one applied change set. AppliedAt is filled in when
// unset.
func (l *Log) Record(cs *ChangeSet) error {
	if cs.AppliedAt.IsZero() {
		cs.AppliedAt = time.Now()
	}

	if err := l.db.Create(cs).Error; err != nil {
		return errors.Wrap(err, "failed to record change set")
	}

	return nil
}

// List returns the most recent change sets, newest first, optionally
// filtered by zone. A limit of zero means no limit.
func (l *Log) List(zoneName string, limit int) ([]ChangeSet, error) {
	q := l.db.Order("applied_at DESC, id DESC")

	if zoneName != "" {
		q = q.Where("zone = ?", zoneName)
	}

	if limit > 0 {
		q = q.Limit(limit)
	}

	var sets []ChangeSet
	if err := q.Find(&sets).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list change sets")
	}

	return sets, nil
}
