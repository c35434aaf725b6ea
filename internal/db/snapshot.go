// Package db provides the durable snapshot store for the record collection.
package db

import (
	"database/sql"
	"fmt"

	apperrors "github.com/labops/labstock/internal/errors"
	"github.com/labops/labstock/internal/models"
)

// snapshotWrittenKey marks that a snapshot has been persisted at least
// once. It distinguishes a never-written store from a saved empty
// collection, so an operator who removes every record is not re-seeded on
// the next start.
const snapshotWrittenKey = "snapshot_written"

// SnapshotStore persists the entire record collection to the local SQLite
// file. Every Save rewrites the whole collection; there is no incremental
// log. The snapshot is the source of truth at process start.
type SnapshotStore struct {
	db *sql.DB
}

// NewSnapshotStore creates a new SnapshotStore instance.
func NewSnapshotStore(db *sql.DB) *SnapshotStore {
	return &SnapshotStore{db: db}
}

// Load reads the persisted collection in its natural (insertion) order.
// The second return value is false when no snapshot has ever been written.
func (s *SnapshotStore) Load() ([]models.StockRecord, bool, error) {
	var marker string
	err := s.db.QueryRow("SELECT value FROM snapshot_meta WHERE key = ?", snapshotWrittenKey).Scan(&marker)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, apperrors.Wrap(apperrors.ErrSnapshot, "failed to read snapshot marker", err)
	}

	query := `
	SELECT id, item, quantity, expiry_date, storage_location, vendor,
		   catalog_number, added_by, added_date
	FROM stock_records ORDER BY position
	`
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, false, apperrors.Wrap(apperrors.ErrSnapshot, "failed to read snapshot", err)
	}
	defer rows.Close()

	records := []models.StockRecord{}
	for rows.Next() {
		var rec models.StockRecord
		if err := rows.Scan(
			&rec.ID, &rec.Item, &rec.Quantity, &rec.ExpiryDate, &rec.StorageLocation,
			&rec.Vendor, &rec.CatalogNumber, &rec.AddedBy, &rec.AddedDate,
		); err != nil {
			return nil, false, apperrors.Wrap(apperrors.ErrSnapshot, "failed to scan record", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, false, apperrors.Wrap(apperrors.ErrSnapshot, "failed to read snapshot", err)
	}
	return records, true, nil
}

// Save overwrites the entire prior snapshot with the given collection.
// The rewrite happens in one transaction, so a reader never observes a
// half-written snapshot.
func (s *SnapshotStore) Save(records []models.StockRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return apperrors.Wrap(apperrors.ErrSnapshot, "failed to begin transaction", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM stock_records"); err != nil {
		return apperrors.Wrap(apperrors.ErrSnapshot, "failed to clear prior snapshot", err)
	}

	insert := `
	INSERT INTO stock_records (id, position, item, quantity, expiry_date,
		storage_location, vendor, catalog_number, added_by, added_date)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	stmt, err := tx.Prepare(insert)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrSnapshot, "failed to prepare insert", err)
	}
	defer stmt.Close()

	for i, rec := range records {
		if _, err := stmt.Exec(
			rec.ID, i, rec.Item, rec.Quantity, rec.ExpiryDate, rec.StorageLocation,
			rec.Vendor, rec.CatalogNumber, rec.AddedBy, rec.AddedDate,
		); err != nil {
			return apperrors.Wrap(apperrors.ErrSnapshot,
				fmt.Sprintf("failed to write record %d", rec.ID), err)
		}
	}

	marker := `INSERT INTO snapshot_meta (key, value) VALUES (?, '1')
			   ON CONFLICT(key) DO UPDATE SET value = '1'`
	if _, err := tx.Exec(marker, snapshotWrittenKey); err != nil {
		return apperrors.Wrap(apperrors.ErrSnapshot, "failed to write snapshot marker", err)
	}

	if err := tx.Commit(); err != nil {
		return apperrors.Wrap(apperrors.ErrSnapshot, "failed to commit snapshot", err)
	}
	return nil
}

// Bootstrap returns the initial collection for process start. If a
// snapshot exists it is loaded; otherwise the fixed seed collection is
// persisted and returned.
func (s *SnapshotStore) Bootstrap() ([]models.StockRecord, error) {
	records, ok, err := s.Load()
	if err != nil {
		return nil, err
	}
	if ok {
		return records, nil
	}
	seed := SeedRecords()
	if err := s.Save(seed); err != nil {
		return nil, err
	}
	return seed, nil
}
