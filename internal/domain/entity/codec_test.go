package entity

import (
	"strings"
	"testing"
)

func TestLineItemsRoundTrip(t *testing.T) {
	items := []LineItem{
		{ID: "a1", Description: "Coffee", Quantity: "2", UnitPrice: "3.50"},
		{Description: "Bagel", Quantity: "1", UnitPrice: "2.25"},
	}

	encoded, err := EncodeLineItems(items)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !strings.Contains(encoded, `"version":1`) {
		t.Errorf("encoded document missing version: %s", encoded)
	}

	decoded, err := DecodeLineItems(encoded)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("expected 2 items, got %d", len(decoded))
	}
	if decoded[0] != items[0] || decoded[1] != items[1] {
		t.Errorf("round trip mismatch: %+v", decoded)
	}
}

func TestDecodeLineItemsLegacyArray(t *testing.T) {
	raw := `[{"description":"Tea","quantity":"1","unit_price":"1.50"}]`

	items, err := DecodeLineItems(raw)
	if err != nil {
		t.Fatalf("decode legacy: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Description != "Tea" || items[0].UnitPrice != "1.50" {
		t.Errorf("unexpected item: %+v", items[0])
	}
}

func TestDecodeLineItemsEmpty(t *testing.T) {
	items, err := DecodeLineItems("")
	if err != nil {
		t.Fatalf("decode empty: %v", err)
	}
	if items != nil {
		t.Errorf("expected nil items, got %+v", items)
	}
}

func TestDecodeLineItemsFutureVersion(t *testing.T) {
	_, err := DecodeLineItems(`{"version":2,"items":[]}`)
	if err == nil {
		t.Fatal("expected error for unsupported version")
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	snapshot := BusinessSnapshot{
		BusinessName:    "Acme Traders",
		BusinessAddress: "12 Market St\nNairobi",
		LogoURI:         "/storage/logo_1.png",
	}

	encoded, err := EncodeSnapshot(snapshot)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	decoded, err := DecodeSnapshot(encoded)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded != snapshot {
		t.Errorf("round trip mismatch: %+v", decoded)
	}
}

func TestDecodeSnapshotLegacyObject(t *testing.T) {
	raw := `{"business_name":"Old Shop","business_address":"Somewhere"}`

	snapshot, err := DecodeSnapshot(raw)
	if err != nil {
		t.Fatalf("decode legacy: %v", err)
	}
	if snapshot.BusinessName != "Old Shop" {
		t.Errorf("unexpected snapshot: %+v", snapshot)
	}
}

func TestDecodeSnapshotEmpty(t *testing.T) {
	snapshot, err := DecodeSnapshot("")
	if err != nil {
		t.Fatalf("decode empty: %v", err)
	}
	if snapshot != (BusinessSnapshot{}) {
		t.Errorf("expected zero snapshot, got %+v", snapshot)
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"10", 10},
		{"3.50", 3.5},
		{" 2.25 ", 2.25},
		{"", 0},
		{"abc", 0},
		{"1,000", 0},
		{"-5", -5},
	}

	for _, tt := range tests {
		if got := ParseAmount(tt.in); got != tt.want {
			t.Errorf("ParseAmount(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLineItemSubtotal(t *testing.T) {
	tests := []struct {
		name string
		item LineItem
		want float64
	}{
		{"simple", LineItem{Quantity: "2", UnitPrice: "3.50"}, 7},
		{"unparsable quantity", LineItem{Quantity: "two", UnitPrice: "3.50"}, 0},
		{"unparsable price", LineItem{Quantity: "2", UnitPrice: "free"}, 0},
		{"fractional quantity", LineItem{Quantity: "0.5", UnitPrice: "10"}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.item.Subtotal(); got != tt.want {
				t.Errorf("Subtotal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSnapshotNilSettings(t *testing.T) {
	var settings *BusinessSettings
	if got := settings.Snapshot(); got != (BusinessSnapshot{}) {
		t.Errorf("nil settings snapshot = %+v, want zero", got)
	}
}
