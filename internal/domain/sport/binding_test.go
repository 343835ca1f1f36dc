package sport

import (
	"errors"
	"testing"
)

func cricketSchema() ConfigSchema {
	return ConfigSchema{
		Roles:      []string{"batsman", "bowler"},
		StatFields: []string{"runs", "wickets"},
	}
}

func TestBind_CoercesStatFields(t *testing.T) {
	schema := cricketSchema()

	got, err := schema.Bind(map[string]any{
		"batsman": true,
		"runs":    "45",
		"wickets": float64(2),
	}, BindStrict)
	if err != nil {
		t.Fatalf("bind failed: %v", err)
	}

	if got["runs"] != int64(45) {
		t.Fatalf("expected runs coerced to int64(45), got %T(%v)", got["runs"], got["runs"])
	}
	if got["wickets"] != int64(2) {
		t.Fatalf("expected wickets coerced to int64(2), got %T(%v)", got["wickets"], got["wickets"])
	}
	if got["batsman"] != true {
		t.Fatalf("expected role key passed through, got %v", got["batsman"])
	}
}

func TestBind_FractionalStatStaysFloat(t *testing.T) {
	schema := ConfigSchema{StatFields: []string{"overs"}}

	got, err := schema.Bind(map[string]any{"overs": "3.5"}, BindStrict)
	if err != nil {
		t.Fatalf("bind failed: %v", err)
	}
	if got["overs"] != 3.5 {
		t.Fatalf("expected overs 3.5, got %T(%v)", got["overs"], got["overs"])
	}
}

func TestBind_UndeclaredKeys(t *testing.T) {
	schema := cricketSchema()
	submitted := map[string]any{"runs": 10, "favorite_color": "green"}

	t.Run("strict rejects", func(t *testing.T) {
		_, err := schema.Bind(submitted, BindStrict)
		var bindErr *BindError
		if !errors.As(err, &bindErr) {
			t.Fatalf("expected BindError, got %v", err)
		}
		if len(bindErr.UnknownKeys) != 1 || bindErr.UnknownKeys[0] != "favorite_color" {
			t.Fatalf("unexpected unknown keys: %v", bindErr.UnknownKeys)
		}
	})

	t.Run("lenient keeps", func(t *testing.T) {
		got, err := schema.Bind(submitted, BindLenient)
		if err != nil {
			t.Fatalf("bind failed: %v", err)
		}
		if got["favorite_color"] != "green" {
			t.Fatalf("expected undeclared key kept, got %v", got)
		}
	})

	t.Run("strip drops", func(t *testing.T) {
		got, err := schema.Bind(submitted, BindStrip)
		if err != nil {
			t.Fatalf("bind failed: %v", err)
		}
		if _, ok := got["favorite_color"]; ok {
			t.Fatalf("expected undeclared key dropped, got %v", got)
		}
		if got["runs"] != int64(10) {
			t.Fatalf("expected declared key kept, got %v", got)
		}
	})
}

func TestBind_NonNumericStatValue(t *testing.T) {
	schema := cricketSchema()

	_, err := schema.Bind(map[string]any{"runs": "plenty"}, BindStrict)
	var bindErr *BindError
	if !errors.As(err, &bindErr) {
		t.Fatalf("expected BindError, got %v", err)
	}
	if _, ok := bindErr.BadValues["runs"]; !ok {
		t.Fatalf("expected runs reported as bad value, got %v", bindErr.BadValues)
	}
}

func TestBind_EmptyDocument(t *testing.T) {
	got, err := cricketSchema().Bind(nil, BindStrict)
	if err != nil {
		t.Fatalf("bind failed: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty document, got %v", got)
	}
}

func TestParseBindMode(t *testing.T) {
	for raw, want := range map[string]BindMode{
		"strict":  BindStrict,
		"Lenient": BindLenient,
		" strip ": BindStrip,
		"":        BindStrict,
	} {
		got, err := ParseBindMode(raw)
		if err != nil {
			t.Fatalf("parse %q: %v", raw, err)
		}
		if got != want {
			t.Fatalf("parse %q: got %q want %q", raw, got, want)
		}
	}

	if _, err := ParseBindMode("chaotic"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}
