package inventory

import (
	"io"
	"sync"

	"go.uber.org/zap"

	"github.com/labops/labstock/internal/db"
	apperrors "github.com/labops/labstock/internal/errors"
	"github.com/labops/labstock/internal/export"
	"github.com/labops/labstock/internal/models"
	"github.com/labops/labstock/internal/store"
	"github.com/labops/labstock/internal/tabular"
)

// Service exposes the core inventory operations. Every mutating operation
// reads the record store, computes a whole new collection, replaces the
// store, and writes the full post-mutation collection through the
// snapshot store. Mutations are serialized; the single-operator event
// model never overlaps them in practice.
type Service struct {
	mu        sync.Mutex
	store     *store.RecordStore
	snapshots *db.SnapshotStore
	formatter *export.Formatter
	log       *zap.Logger
}

// NewService creates an inventory Service.
func NewService(records *store.RecordStore, snapshots *db.SnapshotStore, formatter *export.Formatter, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		store:     records,
		snapshots: snapshots,
		formatter: formatter,
		log:       log,
	}
}

// AddInput holds the field values submitted for a manual add. Quantity is
// accepted as given; the core does not validate it.
type AddInput struct {
	Item            string      `json:"item"`
	Quantity        int         `json:"quantity"`
	ExpiryDate      models.Date `json:"expiry_date"`
	StorageLocation string      `json:"storage_location"`
	Vendor          string      `json:"vendor"`
	CatalogNumber   string      `json:"catalog_number"`
	AddedBy         string      `json:"added_by"`
}

// Add appends a new record with the next allocator ID and today's
// AddedDate, then persists the new collection.
func (s *Service) Add(input AddInput) (models.StockRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.store.Current()
	rec := models.StockRecord{
		ID:              NextID(records),
		Item:            input.Item,
		Quantity:        input.Quantity,
		ExpiryDate:      input.ExpiryDate,
		StorageLocation: input.StorageLocation,
		Vendor:          input.Vendor,
		CatalogNumber:   input.CatalogNumber,
		AddedBy:         input.AddedBy,
		AddedDate:       models.Today(),
	}

	newCollection := append(models.CloneRecords(records), rec)
	s.store.Replace(newCollection)
	if err := s.snapshots.Save(newCollection); err != nil {
		s.log.Error("failed to persist after add", zap.Int64("id", rec.ID), zap.Error(err))
		return models.StockRecord{}, err
	}

	s.log.Info("record added", zap.Int64("id", rec.ID), zap.String("item", rec.Item))
	return rec, nil
}

// Remove deletes the records at the given display-order indices. An empty
// selection is a silent no-op. All resolved IDs are removed in one atomic
// replace and one persisted write.
func (s *Service) Remove(indices []int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(indices) == 0 {
		return 0, nil
	}

	records := s.store.Current()
	ids := ResolveSelection(records, indices)
	if len(ids) == 0 {
		return 0, nil
	}

	targets := make(map[int64]bool, len(ids))
	for _, id := range ids {
		targets[id] = true
	}

	newCollection := make([]models.StockRecord, 0, len(records)-len(ids))
	for _, rec := range records {
		if !targets[rec.ID] {
			newCollection = append(newCollection, rec)
		}
	}

	s.store.Replace(newCollection)
	if err := s.snapshots.Save(newCollection); err != nil {
		s.log.Error("failed to persist after remove", zap.Int64s("ids", ids), zap.Error(err))
		return 0, err
	}

	s.log.Info("records removed", zap.Int64s("ids", ids))
	return len(ids), nil
}

// Import parses an uploaded workbook, reconciles its rows against the
// fixed schema, and appends them to the collection. A malformed workbook
// aborts the whole import with no partial effect; bad cells within a row
// never do.
func (s *Service) Import(r io.Reader) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := tabular.ParseWorkbook(r)
	if err != nil {
		s.log.Warn("import rejected", zap.Error(err))
		return 0, apperrors.Wrap(apperrors.ErrBadWorkbook, "could not read uploaded file", err)
	}

	records := s.store.Current()
	newCollection := Reconcile(records, rows)

	s.store.Replace(newCollection)
	if err := s.snapshots.Save(newCollection); err != nil {
		s.log.Error("failed to persist after import", zap.Int("rows", len(rows)), zap.Error(err))
		return 0, err
	}

	s.log.Info("import completed", zap.Int("rows", len(rows)))
	return len(rows), nil
}

// Export serializes the current collection into a downloadable workbook.
// Read-only; the store is not touched.
func (s *Service) Export() (*export.Result, error) {
	result, err := s.formatter.Format(s.store.Current())
	if err != nil {
		s.log.Error("export failed", zap.Error(err))
		return nil, err
	}
	s.log.Info("export produced",
		zap.String("filename", result.Filename), zap.Int("items", result.ItemCount))
	return result, nil
}

// FindDuplicates returns the number of Item groups with more than one
// record. Read-only diagnostic.
func (s *Service) FindDuplicates() int {
	return CountDuplicateItems(s.store.Current())
}

// List returns the collection in display order (AddedDate descending).
func (s *Service) List() []models.StockRecord {
	return DisplayOrder(s.store.Current())
}
