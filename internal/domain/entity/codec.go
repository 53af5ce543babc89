package entity

import (
	"encoding/json"
	"fmt"
	"strings"
)

// The items and business_snapshot text columns carry a schema-versioned
// JSON envelope so the storage format can evolve without a table migration.
// Decoders also accept the unversioned form (a bare array / bare object)
// written by early builds.
const codecVersion = 1

type lineItemsDocument struct {
	Version int        `json:"version"`
	Items   []LineItem `json:"items"`
}

type snapshotDocument struct {
	Version  int              `json:"version"`
	Snapshot BusinessSnapshot `json:"snapshot"`
}

// EncodeLineItems serializes line items for the receipts.items column.
func EncodeLineItems(items []LineItem) (string, error) {
	doc := lineItemsDocument{Version: codecVersion, Items: items}
	b, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("encode line items: %w", err)
	}
	return string(b), nil
}

// DecodeLineItems deserializes the receipts.items column.
func DecodeLineItems(raw string) ([]LineItem, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if strings.HasPrefix(raw, "[") {
		// Legacy unversioned form: a bare array.
		var items []LineItem
		if err := json.Unmarshal([]byte(raw), &items); err != nil {
			return nil, fmt.Errorf("decode line items: %w", err)
		}
		return items, nil
	}
	var doc lineItemsDocument
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("decode line items: %w", err)
	}
	if doc.Version > codecVersion {
		return nil, fmt.Errorf("decode line items: unsupported version %d", doc.Version)
	}
	return doc.Items, nil
}

// EncodeSnapshot serializes a settings snapshot for the
// receipts.business_snapshot column.
func EncodeSnapshot(snapshot BusinessSnapshot) (string, error) {
	doc := snapshotDocument{Version: codecVersion, Snapshot: snapshot}
	b, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}
	return string(b), nil
}

// DecodeSnapshot deserializes the receipts.business_snapshot column. An
// empty column yields a zero snapshot.
func DecodeSnapshot(raw string) (BusinessSnapshot, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return BusinessSnapshot{}, nil
	}
	var doc snapshotDocument
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return BusinessSnapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	if doc.Version > codecVersion {
		return BusinessSnapshot{}, fmt.Errorf("decode snapshot: unsupported version %d", doc.Version)
	}
	if doc.Version == 0 {
		// Legacy unversioned form: the snapshot fields at the top level.
		var snapshot BusinessSnapshot
		if err := json.Unmarshal([]byte(raw), &snapshot); err != nil {
			return BusinessSnapshot{}, fmt.Errorf("decode snapshot: %w", err)
		}
		return snapshot, nil
	}
	return doc.Snapshot, nil
}
