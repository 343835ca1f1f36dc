package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"

	"github.com/playfield/tournament-service/internal/domain/storage"
)

func TestConflictError_UniqueViolation(t *testing.T) {
	cases := []struct {
		constraint string
		wantField  string
	}{
		{"users_email_key", "email"},
		{"users_username_key", "username"},
		{"sports_name_key", "name"},
		{"", "record"},
	}

	for _, tc := range cases {
		err := conflictError(&pq.Error{Code: uniqueViolation, Constraint: tc.constraint})

		conflict, ok := storage.AsConflict(err)
		if !ok {
			t.Fatalf("constraint %q: expected conflict, got %v", tc.constraint, err)
		}
		if conflict.Field != tc.wantField {
			t.Fatalf("constraint %q: expected field %q, got %q", tc.constraint, tc.wantField, conflict.Field)
		}
	}
}

func TestConflictError_PassesThroughOtherErrors(t *testing.T) {
	plain := fmt.Errorf("connection reset")
	if got := conflictError(plain); !errors.Is(got, plain) {
		t.Fatalf("expected error passed through, got %v", got)
	}

	fk := &pq.Error{Code: "23503", Constraint: "events_sport_id_fkey"}
	if got := conflictError(fk); !errors.Is(got, fk) {
		t.Fatalf("expected foreign key error passed through, got %v", got)
	}
}

func TestDocRoundTrip(t *testing.T) {
	raw, err := marshalDoc(map[string]any{"runs": 45, "batsman": true})
	if err != nil {
		t.Fatalf("marshal doc failed: %v", err)
	}

	doc, err := unmarshalDoc(raw)
	if err != nil {
		t.Fatalf("unmarshal doc failed: %v", err)
	}
	if doc["batsman"] != true {
		t.Fatalf("unexpected doc %v", doc)
	}
}

func TestDocNilAndEmpty(t *testing.T) {
	raw, err := marshalDoc(nil)
	if err != nil {
		t.Fatalf("marshal nil doc failed: %v", err)
	}
	if string(raw) != "{}" {
		t.Fatalf("expected empty object, got %s", raw)
	}

	doc, err := unmarshalDoc(nil)
	if err != nil {
		t.Fatalf("unmarshal empty doc failed: %v", err)
	}
	if doc == nil || len(doc) != 0 {
		t.Fatalf("expected empty map, got %v", doc)
	}
}

func TestNullStringHelpers(t *testing.T) {
	if got := nullString(nil); got.Valid {
		t.Fatalf("expected invalid for nil, got %v", got)
	}

	value := "v1"
	got := nullString(&value)
	if !got.Valid || got.String != "v1" {
		t.Fatalf("unexpected null string %v", got)
	}

	if ptr := stringPtr(got); ptr == nil || *ptr != "v1" {
		t.Fatalf("unexpected pointer %v", ptr)
	}
}
