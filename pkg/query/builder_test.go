package query_test

import (
	"testing"

	"github.com/foremanhq/foreman/pkg/query"
)

func testProjection() *query.ProjectionMap {
	return query.NewProjectionMap("public", "widgets", "w").
		Project("id", "id").
		Project("name", "name").
		Project("created_at", "created_at")
}

func TestBuildNoConditions(t *testing.T) {
	sql, args := query.NewBuilder(testProjection()).Build()

	want := "SELECT w.id, w.name, w.created_at FROM public.widgets w"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 0 {
		t.Errorf("args = %v, want none", args)
	}
}

func TestBuildWhereParameterNumbering(t *testing.T) {
	name := "gear"
	sql, args := query.NewBuilder(testProjection()).
		WhereEquals("id", 7).
		WhereContains("name", &name).
		Build()

	want := "SELECT w.id, w.name, w.created_at FROM public.widgets w" +
		" WHERE w.id = $1 AND w.name ILIKE $2"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 2 || args[0] != 7 || args[1] != "%gear%" {
		t.Errorf("args = %v", args)
	}
}

func TestWhereEqualsSkipsNil(t *testing.T) {
	var id *int
	sql, args := query.NewBuilder(testProjection()).WhereEquals("id", id).Build()

	if len(args) != 0 {
		t.Errorf("args = %v, want none", args)
	}
	want := "SELECT w.id, w.name, w.created_at FROM public.widgets w"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
}

func TestWhereSearch(t *testing.T) {
	search := "abc"
	sql, args := query.NewBuilder(testProjection()).
		WhereSearch(&search, "name", "id").
		BuildCount()

	want := "SELECT COUNT(*) FROM public.widgets w" +
		" WHERE (w.name ILIKE $1 OR w.id ILIKE $2)"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 2 || args[0] != "%abc%" || args[1] != "%abc%" {
		t.Errorf("args = %v", args)
	}
}

func TestBuildPage(t *testing.T) {
	sql, _ := query.NewBuilder(testProjection(), query.SortField{Field: "created_at", Descending: true}).
		BuildPage(2, 25)

	want := "SELECT w.id, w.name, w.created_at FROM public.widgets w" +
		" ORDER BY w.created_at DESC LIMIT 25 OFFSET 25"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
}

func TestOrderByOverridesDefault(t *testing.T) {
	sql, _ := query.NewBuilder(testProjection(), query.SortField{Field: "created_at", Descending: true}).
		OrderByFields([]query.SortField{{Field: "name"}}).
		Build()

	want := "SELECT w.id, w.name, w.created_at FROM public.widgets w ORDER BY w.name ASC"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
}

func TestBuildSingle(t *testing.T) {
	sql, args := query.NewBuilder(testProjection()).BuildSingle("id", 42)

	want := "SELECT w.id, w.name, w.created_at FROM public.widgets w WHERE w.id = $1"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 1 || args[0] != 42 {
		t.Errorf("args = %v", args)
	}
}

func TestParseSortFields(t *testing.T) {
	fields := query.ParseSortFields("name, -created_at")

	if len(fields) != 2 {
		t.Fatalf("field count = %d, want 2", len(fields))
	}
	if fields[0].Field != "name" || fields[0].Descending {
		t.Errorf("fields[0] = %+v", fields[0])
	}
	if fields[1].Field != "created_at" || !fields[1].Descending {
		t.Errorf("fields[1] = %+v", fields[1])
	}

	if got := query.ParseSortFields(""); got != nil {
		t.Errorf("ParseSortFields(\"\") = %v, want nil", got)
	}
}
