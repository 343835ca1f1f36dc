package querybuilder

import (
	"reflect"
	"testing"
)

func TestSelectBuilder(t *testing.T) {
	sql, args, err := Select("id", "title").
		From("events").
		Where(Eq("sport_id", "s1"), ILike("title", "%cup%")).
		OrderBy("start_date ASC").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("to sql failed: %v", err)
	}

	want := "SELECT id, title FROM events WHERE sport_id = $1 AND title ILIKE $2 ORDER BY start_date ASC LIMIT 10"
	if sql != want {
		t.Fatalf("unexpected sql:\n got %q\nwant %q", sql, want)
	}
	if !reflect.DeepEqual(args, []any{"s1", "%cup%"}) {
		t.Fatalf("unexpected args %v", args)
	}
}

func TestSelectBuilder_RequiresTable(t *testing.T) {
	if _, _, err := Select("id").ToSQL(); err == nil {
		t.Fatalf("expected error for missing table")
	}
}

func TestInCondition(t *testing.T) {
	sql, args, err := Select("id").From("events").Where(In("status", []any{"upcoming", "live"})).ToSQL()
	if err != nil {
		t.Fatalf("to sql failed: %v", err)
	}
	if sql != "SELECT id FROM events WHERE status IN ($1, $2)" {
		t.Fatalf("unexpected sql %q", sql)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args %v", args)
	}
}

func TestInCondition_EmptyNeverMatches(t *testing.T) {
	sql, args, err := Select("id").From("events").Where(In("status", nil)).ToSQL()
	if err != nil {
		t.Fatalf("to sql failed: %v", err)
	}
	if sql != "SELECT id FROM events WHERE 1=0" {
		t.Fatalf("unexpected sql %q", sql)
	}
	if len(args) != 0 {
		t.Fatalf("unexpected args %v", args)
	}
}

func TestExprCondition_RewritesPlaceholders(t *testing.T) {
	sql, args, err := Select("id").
		From("events").
		Where(Eq("manager_id", "m1"), Expr("start_date <= ?", "2026-01-01")).
		ToSQL()
	if err != nil {
		t.Fatalf("to sql failed: %v", err)
	}
	if sql != "SELECT id FROM events WHERE manager_id = $1 AND start_date <= $2" {
		t.Fatalf("unexpected sql %q", sql)
	}
	if !reflect.DeepEqual(args, []any{"m1", "2026-01-01"}) {
		t.Fatalf("unexpected args %v", args)
	}
}

func TestInsertBuilder(t *testing.T) {
	sql, args, err := InsertInto("venues").
		Columns("id", "name").
		Values("v1", "Riverside Arena").
		Values("v2", "Central Stadium").
		ToSQL()
	if err != nil {
		t.Fatalf("to sql failed: %v", err)
	}
	if sql != "INSERT INTO venues (id, name) VALUES ($1, $2), ($3, $4)" {
		t.Fatalf("unexpected sql %q", sql)
	}
	if len(args) != 4 {
		t.Fatalf("unexpected args %v", args)
	}
}

func TestInsertBuilder_RowArityMismatch(t *testing.T) {
	_, _, err := InsertInto("venues").Columns("id", "name").Values("v1").ToSQL()
	if err == nil {
		t.Fatalf("expected arity error")
	}
}

func TestUpdateBuilder(t *testing.T) {
	sql, args, err := Update("teams").
		Set("name", "River Kings").
		Set("city", "Pune").
		Where(Eq("id", "t1")).
		ToSQL()
	if err != nil {
		t.Fatalf("to sql failed: %v", err)
	}
	if sql != "UPDATE teams SET name = $1, city = $2 WHERE id = $3" {
		t.Fatalf("unexpected sql %q", sql)
	}
	if !reflect.DeepEqual(args, []any{"River Kings", "Pune", "t1"}) {
		t.Fatalf("unexpected args %v", args)
	}
}

func TestDeleteBuilder_RefusesWithoutWhere(t *testing.T) {
	if _, _, err := DeleteFrom("teams").ToSQL(); err == nil {
		t.Fatalf("expected error for delete without where")
	}

	sql, args, err := DeleteFrom("teams").Where(Eq("event_id", "e1")).ToSQL()
	if err != nil {
		t.Fatalf("to sql failed: %v", err)
	}
	if sql != "DELETE FROM teams WHERE event_id = $1" {
		t.Fatalf("unexpected sql %q", sql)
	}
	if len(args) != 1 {
		t.Fatalf("unexpected args %v", args)
	}
}
