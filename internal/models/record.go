// Package models provides data model definitions for the labstock core.
package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// dateLayout is the canonical wire and storage format for calendar dates.
const dateLayout = "2006-01-02"

// parseLayouts are the formats accepted when normalizing externally
// supplied date cells. Anything else coerces to a null Date.
var parseLayouts = []string{
	dateLayout,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"01/02/2006",
	"1/2/06",
}

// Date is a nullable calendar date. The zero value is null.
type Date struct {
	Time  time.Time
	Valid bool
}

// NewDate returns a valid Date truncated to the calendar day.
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC), Valid: true}
}

// Today returns the current calendar date.
func Today() Date {
	return NewDate(time.Now())
}

// ParseDate normalizes a raw cell value into a Date. Unparseable or empty
// input yields a null Date rather than an error; individual bad cells must
// never abort a whole import batch.
func ParseDate(raw string) Date {
	if raw == "" {
		return Date{}
	}
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return NewDate(t)
		}
	}
	return Date{}
}

// String returns the date in YYYY-MM-DD form, or "" when null.
func (d Date) String() string {
	if !d.Valid {
		return ""
	}
	return d.Time.Format(dateLayout)
}

// Before reports whether d sorts strictly before other. Null dates sort
// before every valid date.
func (d Date) Before(other Date) bool {
	if !d.Valid {
		return other.Valid
	}
	if !other.Valid {
		return false
	}
	return d.Time.Before(other.Time)
}

// Equal reports whether two dates are the same calendar day (or both null).
func (d Date) Equal(other Date) bool {
	if d.Valid != other.Valid {
		return false
	}
	return !d.Valid || d.Time.Equal(other.Time)
}

// Value implements driver.Valuer for Date. Null dates store as NULL.
func (d Date) Value() (driver.Value, error) {
	if !d.Valid {
		return nil, nil
	}
	return d.String(), nil
}

// Scan implements sql.Scanner for Date.
func (d *Date) Scan(value interface{}) error {
	if value == nil {
		*d = Date{}
		return nil
	}
	var raw string
	switch v := value.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	case time.Time:
		*d = NewDate(v)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", value)
	}
	if raw == "" {
		*d = Date{}
		return nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", raw, err)
	}
	*d = NewDate(t)
	return nil
}

// MarshalJSON encodes the date as "YYYY-MM-DD" or null.
func (d Date) MarshalJSON() ([]byte, error) {
	if !d.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes "YYYY-MM-DD" or null.
func (d *Date) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil || *raw == "" {
		*d = Date{}
		return nil
	}
	t, err := time.Parse(dateLayout, *raw)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", *raw, err)
	}
	*d = NewDate(t)
	return nil
}

// StockRecord represents one inventory entry. Records are immutable once
// created; every mutation of the inventory is a whole-collection replace.
type StockRecord struct {
	ID              int64  `db:"id" json:"id"`
	Item            string `db:"item" json:"item"`
	Quantity        int    `db:"quantity" json:"quantity"`
	ExpiryDate      Date   `db:"expiry_date" json:"expiry_date"`
	StorageLocation string `db:"storage_location" json:"storage_location"`
	Vendor          string `db:"vendor" json:"vendor"`
	CatalogNumber   string `db:"catalog_number" json:"catalog_number"`
	AddedBy         string `db:"added_by" json:"added_by"`
	AddedDate       Date   `db:"added_date" json:"added_date"`
}

// TableName returns the table name for StockRecord.
func (StockRecord) TableName() string {
	return "stock_records"
}

// CloneRecords returns an independent copy of a record collection.
// StockRecord holds no reference types, so a slice copy is a deep copy.
func CloneRecords(records []StockRecord) []StockRecord {
	if records == nil {
		return nil
	}
	out := make([]StockRecord, len(records))
	copy(out, records)
	return out
}
