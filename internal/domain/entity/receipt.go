package entity

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// LineItem is a single line on a receipt. Quantity and unit price are kept
// as the text the user typed; unparsable values count as zero in totals.
// The ID is an ephemeral client-side identifier used for list editing only.
type LineItem struct {
	ID          string `json:"id,omitempty"`
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
}

// Subtotal returns quantity x unit price for this line.
func (li LineItem) Subtotal() float64 {
	return ParseAmount(li.Quantity) * ParseAmount(li.UnitPrice)
}

// ParseAmount parses a decimal-as-text field, returning 0 when the text is
// empty or not a number.
func ParseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// Receipt represents a persisted customer receipt. Receipts are immutable
// once created except for deletion: TotalAmount is denormalized at creation
// and never recomputed, and BusinessSnapshot is a point-in-time copy of the
// settings in effect when the receipt was issued.
type Receipt struct {
	ID               string  `gorm:"primaryKey;size:36" json:"id"`
	ReceiptNumber    int64   `gorm:"uniqueIndex;not null" json:"receipt_number"`
	CreatedAt        int64   `gorm:"not null;index;autoCreateTime:false" json:"created_at"`
	CustomerName     string  `gorm:"type:text" json:"customer_name"`
	Items            string  `gorm:"type:text;not null" json:"-"`
	TotalAmount      float64 `gorm:"not null" json:"total_amount"`
	BusinessSnapshot string  `gorm:"type:text" json:"-"`
}

// TableName returns the table name for the Receipt model
func (Receipt) TableName() string {
	return "receipts"
}

// CreatedTime returns the creation instant. CreatedAt is stored as unix
// milliseconds.
func (r *Receipt) CreatedTime() time.Time {
	return time.UnixMilli(r.CreatedAt)
}

// LineItems decodes the items column.
func (r *Receipt) LineItems() ([]LineItem, error) {
	return DecodeLineItems(r.Items)
}

// Snapshot decodes the business snapshot column.
func (r *Receipt) Snapshot() (BusinessSnapshot, error) {
	return DecodeSnapshot(r.BusinessSnapshot)
}

// MarshalJSON exposes the decoded items and snapshot instead of the raw
// storage documents.
func (r Receipt) MarshalJSON() ([]byte, error) {
	type Alias Receipt
	items, err := DecodeLineItems(r.Items)
	if err != nil {
		return nil, err
	}
	snapshot, err := DecodeSnapshot(r.BusinessSnapshot)
	if err != nil {
		return nil, err
	}
	return json.Marshal(&struct {
		Alias
		Items            []LineItem       `json:"items"`
		BusinessSnapshot BusinessSnapshot `json:"business_snapshot"`
	}{
		Alias:            Alias(r),
		Items:            items,
		BusinessSnapshot: snapshot,
	})
}
