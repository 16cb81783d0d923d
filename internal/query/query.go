package query

import (
	"encoding/json"
	"net/url"
	"sort"
	"strconv"

	"gorm.io/gorm"

	errs "task-tracker-system.com/task-tracker-system/internal/errors"
)

// ListQuery is the parsed form of the read-side query parameters:
// where / sort / select / skip / limit / count. The where, sort and select
// values arrive JSON-encoded in the query string.
type ListQuery struct {
	Where     map[string]any
	Sort      map[string]int
	Select    map[string]int
	Skip      int
	Limit     int
	CountOnly bool
}

// Field-name to column mappings per entity. Filtering and sorting are only
// allowed on mapped fields; pendingTasks is deliberately absent since it is
// stored as a serialized document field, not a comparable column.
var (
	TaskFields = map[string]string{
		"id":               "id",
		"name":             "name",
		"description":      "description",
		"deadline":         "deadline",
		"completed":        "completed",
		"assignedUser":     "assigned_user",
		"assignedUserName": "assigned_user_name",
		"dateCreated":      "date_created",
	}

	UserFields = map[string]string{
		"id":          "id",
		"name":        "name",
		"email":       "email",
		"dateCreated": "date_created",
	}
)

// Parse builds a ListQuery from raw request query parameters. defaultLimit
// applies when the caller omits limit; zero means unlimited.
func Parse(values url.Values, defaultLimit int) (ListQuery, error) {
	q := ListQuery{Limit: defaultLimit}

	if raw := values.Get("where"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &q.Where); err != nil {
			return ListQuery{}, errs.ErrInvalidQuery
		}
	}
	if raw := values.Get("sort"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &q.Sort); err != nil {
			return ListQuery{}, errs.ErrInvalidQuery
		}
	}
	if raw := values.Get("select"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &q.Select); err != nil {
			return ListQuery{}, errs.ErrInvalidQuery
		}
	}
	if raw := values.Get("skip"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return ListQuery{}, errs.ErrInvalidQuery
		}
		q.Skip = n
	}
	if raw := values.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return ListQuery{}, errs.ErrInvalidQuery
		}
		q.Limit = n
	}
	q.CountOnly = values.Get("count") == "true"

	return q, nil
}

// ApplyFilter narrows db by the where clause, matching each mapped field by
// equality. Unknown field names are a client error.
func (q ListQuery) ApplyFilter(db *gorm.DB, fields map[string]string) (*gorm.DB, error) {
	for _, name := range sortedKeysAny(q.Where) {
		col, ok := fields[name]
		if !ok {
			return nil, errs.ErrInvalidQuery
		}
		db = db.Where(col+" = ?", q.Where[name])
	}
	return db, nil
}

// Apply narrows db by the full query: filter, sort, skip and limit.
func (q ListQuery) Apply(db *gorm.DB, fields map[string]string) (*gorm.DB, error) {
	db, err := q.ApplyFilter(db, fields)
	if err != nil {
		return nil, err
	}

	for _, name := range sortedKeysInt(q.Sort) {
		col, ok := fields[name]
		if !ok {
			return nil, errs.ErrInvalidQuery
		}
		if q.Sort[name] < 0 {
			db = db.Order(col + " desc")
		} else {
			db = db.Order(col + " asc")
		}
	}

	if q.Skip > 0 {
		db = db.Offset(q.Skip)
	}
	if q.Limit > 0 {
		db = db.Limit(q.Limit)
	}

	return db, nil
}

// HasSelect reports whether a field projection was requested.
func (q ListQuery) HasSelect() bool {
	return len(q.Select) > 0
}

// Project applies the select specification to one record. Fields marked 1
// form an inclusion list (id stays unless explicitly excluded); fields
// marked 0 form an exclusion list.
func (q ListQuery) Project(doc any) map[string]any {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil
	}

	inclusion := false
	for name, mode := range q.Select {
		if name != "id" && mode != 0 {
			inclusion = true
			break
		}
	}

	if inclusion {
		out := make(map[string]any)
		if mode, ok := q.Select["id"]; !ok || mode != 0 {
			out["id"] = m["id"]
		}
		for name, mode := range q.Select {
			if mode == 0 {
				continue
			}
			if v, ok := m[name]; ok {
				out[name] = v
			}
		}
		return out
	}

	for name, mode := range q.Select {
		if mode == 0 {
			delete(m, name)
		}
	}
	return m
}

// ProjectAll applies Project to every record, preserving order.
func (q ListQuery) ProjectAll(docs []any) []map[string]any {
	out := make([]map[string]any, 0, len(docs))
	for _, d := range docs {
		out = append(out, q.Project(d))
	}
	return out
}

// Map iteration order is unspecified; sorting keys keeps generated SQL
// stable across runs.
func sortedKeysAny(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedKeysInt(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
