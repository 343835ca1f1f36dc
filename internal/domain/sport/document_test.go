package sport

import (
	"reflect"
	"testing"
)

func TestDocumentRoundTrip(t *testing.T) {
	schema := ConfigSchema{
		Roles:      []string{"lifter"},
		StatFields: []string{"snatch", "total"},
		Extra: map[string]any{
			"weight_categories": []any{"61kg", "73kg"},
		},
	}

	got := SchemaFromDocument(schema.Document())

	if !reflect.DeepEqual(got.Roles, schema.Roles) {
		t.Fatalf("roles changed: %v", got.Roles)
	}
	if !reflect.DeepEqual(got.StatFields, schema.StatFields) {
		t.Fatalf("stat fields changed: %v", got.StatFields)
	}
	if !reflect.DeepEqual(got.Extra, schema.Extra) {
		t.Fatalf("extra changed: %v", got.Extra)
	}
}

func TestSchemaFromDocument_DropsNonStringEntries(t *testing.T) {
	got := SchemaFromDocument(map[string]any{
		"roles":       []any{"batsman", 7, "bowler"},
		"stat_fields": "not-a-list",
		"max_squad":   float64(15),
	})

	if !reflect.DeepEqual(got.Roles, []string{"batsman", "bowler"}) {
		t.Fatalf("unexpected roles: %v", got.Roles)
	}
	if len(got.StatFields) != 0 {
		t.Fatalf("expected no stat fields, got %v", got.StatFields)
	}
	if got.Extra["max_squad"] != float64(15) {
		t.Fatalf("expected unknown key in extra, got %v", got.Extra)
	}
}

func TestDocument_AlwaysCarriesReservedKeys(t *testing.T) {
	doc := ConfigSchema{}.Document()

	if _, ok := doc["roles"]; !ok {
		t.Fatalf("expected roles key, got %v", doc)
	}
	if _, ok := doc["stat_fields"]; !ok {
		t.Fatalf("expected stat_fields key, got %v", doc)
	}
}
