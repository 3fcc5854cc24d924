package kv

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVEntry is the row layout of the SQL backends. The column is named kv_key
// because KEY is reserved in MySQL.
type KVEntry struct {
	Key       string         `gorm:"column:kv_key;primaryKey;size:255"`
	Value     datatypes.JSON `gorm:"not null"`
	Version   int64          `gorm:"not null;default:1"`
	UpdatedAt time.Time
}

func (KVEntry) TableName() string { return "kv_entries" }

// SQLStore works on both the postgres and the mysql gorm dialects.
type SQLStore struct {
	db *gorm.DB
}

func NewSQLStore(db *gorm.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Get(ctx context.Context, key string) (json.RawMessage, error) {
	var e KVEntry
	err := s.db.WithContext(ctx).First(&e, "kv_key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return json.RawMessage(e.Value), nil
}

func (s *SQLStore) Set(ctx context.Context, key string, value json.RawMessage) error {
	now := time.Now().UTC()
	e := KVEntry{Key: key, Value: datatypes.JSON(value), Version: 1, UpdatedAt: now}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "kv_key"}},
		DoUpdates: clause.Assignments(map[string]any{
			"value":      datatypes.JSON(value),
			"updated_at": now,
			"version":    gorm.Expr("kv_entries.version + 1"),
		}),
	}).Create(&e).Error
}

func (s *SQLStore) GetByPrefix(ctx context.Context, prefix string) ([]Entry, error) {
	var rows []KVEntry
	err := s.db.WithContext(ctx).
		Where("kv_key LIKE ?", escapeLike(prefix)+"%").
		Order("kv_key asc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, Entry{Key: r.Key, Value: json.RawMessage(r.Value)})
	}
	return entries, nil
}

func (s *SQLStore) Update(ctx context.Context, key string, fn UpdateFunc) (json.RawMessage, error) {
	for attempt := 0; attempt < MaxUpdateRetries; attempt++ {
		var e KVEntry
		err := s.db.WithContext(ctx).First(&e, "kv_key = ?", key).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		if err != nil {
			return nil, err
		}

		next, err := fn(json.RawMessage(e.Value))
		if err != nil {
			return nil, err
		}

		res := s.db.WithContext(ctx).Model(&KVEntry{}).
			Where("kv_key = ? AND version = ?", key, e.Version).
			Updates(map[string]any{
				"value":      datatypes.JSON(next),
				"version":    e.Version + 1,
				"updated_at": time.Now().UTC(),
			})
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 1 {
			return next, nil
		}
		observeRetry("sql")
	}
	return nil, ErrConflict
}

func (s *SQLStore) Close(context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
