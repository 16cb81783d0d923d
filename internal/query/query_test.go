package query

import (
	"errors"
	"net/url"
	"testing"

	errs "task-tracker-system.com/task-tracker-system/internal/errors"
)

func TestParse_Defaults(t *testing.T) {
	q, err := Parse(url.Values{}, 100)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if q.Limit != 100 {
		t.Errorf("limit = %d, want the default 100", q.Limit)
	}
	if q.Skip != 0 || q.CountOnly || len(q.Where) != 0 || len(q.Sort) != 0 || len(q.Select) != 0 {
		t.Errorf("unexpected non-zero fields in %+v", q)
	}
}

func TestParse_FullQuery(t *testing.T) {
	values := url.Values{}
	values.Set("where", `{"completed": false, "assignedUser": "u1"}`)
	values.Set("sort", `{"deadline": -1}`)
	values.Set("select", `{"name": 1}`)
	values.Set("skip", "5")
	values.Set("limit", "10")
	values.Set("count", "true")

	q, err := Parse(values, 100)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if q.Where["assignedUser"] != "u1" {
		t.Errorf("where = %v", q.Where)
	}
	if q.Sort["deadline"] != -1 {
		t.Errorf("sort = %v", q.Sort)
	}
	if q.Skip != 5 || q.Limit != 10 || !q.CountOnly {
		t.Errorf("skip/limit/count = %d/%d/%v", q.Skip, q.Limit, q.CountOnly)
	}
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]url.Values{
		"malformed where": {"where": []string{`{"completed":`}},
		"malformed sort":  {"sort": []string{`[1,2]`}},
		"negative skip":   {"skip": []string{"-1"}},
		"non-int limit":   {"limit": []string{"ten"}},
	}

	for name, values := range cases {
		if _, err := Parse(values, 0); !errors.Is(err, errs.ErrInvalidQuery) {
			t.Errorf("%s: err = %v, want ErrInvalidQuery", name, err)
		}
	}
}

func TestProject_Inclusion(t *testing.T) {
	doc := map[string]any{"id": "t1", "name": "a", "completed": false}
	q := ListQuery{Select: map[string]int{"name": 1}}

	out := q.Project(doc)
	if out["id"] != "t1" || out["name"] != "a" {
		t.Errorf("projection = %v", out)
	}
	if _, ok := out["completed"]; ok {
		t.Error("unselected field survived inclusion projection")
	}
}

func TestProject_InclusionWithoutID(t *testing.T) {
	doc := map[string]any{"id": "t1", "name": "a"}
	q := ListQuery{Select: map[string]int{"name": 1, "id": 0}}

	out := q.Project(doc)
	if _, ok := out["id"]; ok {
		t.Error("id survived explicit exclusion")
	}
	if out["name"] != "a" {
		t.Errorf("projection = %v", out)
	}
}

func TestProject_Exclusion(t *testing.T) {
	doc := map[string]any{"id": "t1", "name": "a", "completed": false}
	q := ListQuery{Select: map[string]int{"name": 0}}

	out := q.Project(doc)
	if _, ok := out["name"]; ok {
		t.Error("excluded field survived")
	}
	if out["id"] != "t1" {
		t.Errorf("projection dropped unlisted fields: %v", out)
	}
}
