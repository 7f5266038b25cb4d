// Package query holds the shared list-endpoint plumbing: resolving raw
// page/limit/sort parameters, allow-listing filter keys, and building the
// conjunctive filter expression every module uses.
package query

import (
	"net/url"
	"strconv"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/schema"
)

// PaginationKeys are the query parameters consumed by FormatOptions rather
// than by the per-entity filter.
var PaginationKeys = []string{"page", "limit", "sortBy", "sortOrder"}

// RawOptions are the untyped pagination parameters as they arrive on the URL.
// Absent parameters are empty strings.
type RawOptions struct {
	Page      string
	Limit     string
	SortBy    string
	SortOrder string
}

// Options is the resolved form of RawOptions.
//
// Page resolves to 0 when the raw value is absent or non-numeric, and that 0
// is what list responses report in their meta. Skip is only computed when
// both raw page and raw limit parse; otherwise it stays 0 ("first page").
// Existing API consumers depend on this exact behavior, so it is kept even
// though a reported page of 0 looks off by one.
type Options struct {
	Page      int
	Limit     int
	Skip      int
	SortBy    string
	SortOrder string
}

// OptionsFromQuery pulls the pagination parameters out of a URL query.
func OptionsFromQuery(values url.Values) RawOptions {
	return RawOptions{
		Page:      values.Get("page"),
		Limit:     values.Get("limit"),
		SortBy:    values.Get("sortBy"),
		SortOrder: values.Get("sortOrder"),
	}
}

// FormatOptions resolves raw pagination parameters, applying the defaults
// limit=10, sortBy=createdAt, sortOrder=desc. An explicit limit of 0 or a
// negative limit is passed through unchanged; bounds are the persistence
// layer's problem.
func FormatOptions(raw RawOptions) Options {
	page, pageErr := strconv.Atoi(raw.Page)
	if pageErr != nil {
		page = 0
	}

	limit := 10
	rawLimit, limitErr := strconv.Atoi(raw.Limit)
	if limitErr == nil {
		limit = rawLimit
	}

	skip := 0
	if pageErr == nil && limitErr == nil {
		skip = (page - 1) * rawLimit
	}

	sortBy := raw.SortBy
	if sortBy == "" {
		sortBy = "createdAt"
	}

	sortOrder := raw.SortOrder
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}

	return Options{
		Page:      page,
		Limit:     limit,
		Skip:      skip,
		SortBy:    sortBy,
		SortOrder: sortOrder,
	}
}

// Apply adds offset, limit and ordering to a gorm query. The sort field is
// converted from its JSON name to the column name and quoted by gorm, so an
// unknown field surfaces as a database error instead of injected SQL.
func (o Options) Apply(db *gorm.DB) *gorm.DB {
	return db.
		Offset(o.Skip).
		Limit(o.Limit).
		Order(clause.OrderByColumn{
			Column: clause.Column{Name: ColumnName(o.SortBy)},
			Desc:   o.SortOrder == "desc",
		})
}

// Pick copies only the allow-listed, present keys out of a URL query.
func Pick(values url.Values, keys []string) map[string]string {
	picked := make(map[string]string)
	for _, key := range keys {
		if values.Has(key) {
			picked[key] = values.Get(key)
		}
	}
	return picked
}

// Scope is an entity-specific extra predicate appended to a Filter.
type Scope func(*gorm.DB) *gorm.DB

// Filter describes the conjunctive filter expression shared by every list
// endpoint: an OR-group of case-insensitive substring matches over the
// entity's searchable fields, AND exact-equality conditions for every other
// provided key, AND any entity-specific scopes. An empty Filter matches all
// rows.
type Filter struct {
	SearchTerm   string
	SearchFields []string
	Equals       map[string]interface{}
	Scopes       []Scope
}

// Apply builds the filter onto a gorm query.
func (f Filter) Apply(db *gorm.DB) *gorm.DB {
	if f.SearchTerm != "" && len(f.SearchFields) > 0 {
		pattern := "%" + f.SearchTerm + "%"
		group := db.Session(&gorm.Session{NewDB: true})
		for i, field := range f.SearchFields {
			cond := "LOWER(" + ColumnName(field) + ") LIKE LOWER(?)"
			if i == 0 {
				group = group.Where(cond, pattern)
			} else {
				group = group.Or(cond, pattern)
			}
		}
		db = db.Where(group)
	}

	if len(f.Equals) > 0 {
		equals := make(map[string]interface{}, len(f.Equals))
		for field, value := range f.Equals {
			equals[ColumnName(field)] = value
		}
		db = db.Where(equals)
	}

	for _, scope := range f.Scopes {
		db = scope(db)
	}

	return db
}

// ColumnName maps a JSON field name to its database column name using gorm's
// default naming strategy (createdAt -> created_at).
func ColumnName(field string) string {
	return schema.NamingStrategy{}.ColumnName("", field)
}
