package query

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestFormatOptions(t *testing.T) {
	tests := []struct {
		name string
		raw  RawOptions
		want Options
	}{
		{
			name: "all defaults",
			raw:  RawOptions{},
			want: Options{Page: 0, Limit: 10, Skip: 0, SortBy: "createdAt", SortOrder: "desc"},
		},
		{
			name: "page and limit given",
			raw:  RawOptions{Page: "2", Limit: "10"},
			want: Options{Page: 2, Limit: 10, Skip: 10, SortBy: "createdAt", SortOrder: "desc"},
		},
		{
			name: "page without limit keeps skip zero",
			raw:  RawOptions{Page: "3"},
			want: Options{Page: 3, Limit: 10, Skip: 0, SortBy: "createdAt", SortOrder: "desc"},
		},
		{
			name: "limit without page keeps skip zero",
			raw:  RawOptions{Limit: "25"},
			want: Options{Page: 0, Limit: 25, Skip: 0, SortBy: "createdAt", SortOrder: "desc"},
		},
		{
			name: "non-numeric page treated as absent",
			raw:  RawOptions{Page: "abc", Limit: "5"},
			want: Options{Page: 0, Limit: 5, Skip: 0, SortBy: "createdAt", SortOrder: "desc"},
		},
		{
			name: "non-numeric limit falls back to ten",
			raw:  RawOptions{Page: "2", Limit: "lots"},
			want: Options{Page: 2, Limit: 10, Skip: 0, SortBy: "createdAt", SortOrder: "desc"},
		},
		{
			name: "zero limit passes through",
			raw:  RawOptions{Page: "1", Limit: "0"},
			want: Options{Page: 1, Limit: 0, Skip: 0, SortBy: "createdAt", SortOrder: "desc"},
		},
		{
			name: "negative limit passes through",
			raw:  RawOptions{Page: "2", Limit: "-5"},
			want: Options{Page: 2, Limit: -5, Skip: -5, SortBy: "createdAt", SortOrder: "desc"},
		},
		{
			name: "explicit sort",
			raw:  RawOptions{SortBy: "name", SortOrder: "asc"},
			want: Options{Page: 0, Limit: 10, Skip: 0, SortBy: "name", SortOrder: "asc"},
		},
		{
			name: "unknown sort order falls back to desc",
			raw:  RawOptions{SortOrder: "sideways"},
			want: Options{Page: 0, Limit: 10, Skip: 0, SortBy: "createdAt", SortOrder: "desc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatOptions(tt.raw))
		})
	}
}

func TestOptionsFromQuery(t *testing.T) {
	values := url.Values{}
	values.Set("page", "2")
	values.Set("limit", "5")
	values.Set("sortBy", "name")
	values.Set("sortOrder", "asc")
	values.Set("searchTerm", "ignored")

	raw := OptionsFromQuery(values)
	assert.Equal(t, RawOptions{Page: "2", Limit: "5", SortBy: "name", SortOrder: "asc"}, raw)
}

func TestPick(t *testing.T) {
	values := url.Values{}
	values.Set("searchTerm", "shoe")
	values.Set("status", "PUBLISHED")
	values.Set("page", "2")

	picked := Pick(values, []string{"searchTerm", "status", "isActive"})

	assert.Equal(t, map[string]string{
		"searchTerm": "shoe",
		"status":     "PUBLISHED",
	}, picked)
	assert.NotContains(t, picked, "page")
	assert.NotContains(t, picked, "isActive")
}

func TestColumnName(t *testing.T) {
	assert.Equal(t, "created_at", ColumnName("createdAt"))
	assert.Equal(t, "name", ColumnName("name"))
	assert.Equal(t, "category_id", ColumnName("categoryId"))
}

type filterItem struct {
	ID       uint `gorm:"primaryKey"`
	Name     string
	Email    string
	Status   string
	Price    float64
	IsActive bool
}

func setupFilterDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&filterItem{}))

	items := []filterItem{
		{Name: "Red Shoe", Email: "a@example.com", Status: "PUBLISHED", Price: 20, IsActive: true},
		{Name: "Blue Shirt", Email: "b@example.com", Status: "DRAFT", Price: 35, IsActive: true},
		{Name: "Green shoe", Email: "c@example.com", Status: "PUBLISHED", Price: 50, IsActive: false},
	}
	require.NoError(t, db.Create(&items).Error)
	return db
}

func TestFilterApply(t *testing.T) {
	db := setupFilterDB(t)

	t.Run("empty filter matches all", func(t *testing.T) {
		var items []filterItem
		require.NoError(t, Filter{}.Apply(db.Model(&filterItem{})).Find(&items).Error)
		assert.Len(t, items, 3)
	})

	t.Run("search is case-insensitive across fields", func(t *testing.T) {
		var items []filterItem
		filter := Filter{SearchTerm: "SHOE", SearchFields: []string{"name", "email"}}
		require.NoError(t, filter.Apply(db.Model(&filterItem{})).Find(&items).Error)
		assert.Len(t, items, 2)
	})

	t.Run("search and equals combine with AND", func(t *testing.T) {
		var items []filterItem
		filter := Filter{
			SearchTerm:   "shoe",
			SearchFields: []string{"name"},
			Equals:       map[string]interface{}{"status": "PUBLISHED", "isActive": true},
		}
		require.NoError(t, filter.Apply(db.Model(&filterItem{})).Find(&items).Error)
		require.Len(t, items, 1)
		assert.Equal(t, "Red Shoe", items[0].Name)
	})

	t.Run("scopes narrow the result", func(t *testing.T) {
		var items []filterItem
		filter := Filter{
			Scopes: []Scope{
				func(db *gorm.DB) *gorm.DB { return db.Where("price >= ?", 30.0) },
				func(db *gorm.DB) *gorm.DB { return db.Where("price <= ?", 40.0) },
			},
		}
		require.NoError(t, filter.Apply(db.Model(&filterItem{})).Find(&items).Error)
		require.Len(t, items, 1)
		assert.Equal(t, "Blue Shirt", items[0].Name)
	})
}

func TestOptionsApply(t *testing.T) {
	db := setupFilterDB(t)

	opts := Options{Skip: 1, Limit: 1, SortBy: "price", SortOrder: "asc"}

	var items []filterItem
	require.NoError(t, opts.Apply(db.Model(&filterItem{})).Find(&items).Error)
	require.Len(t, items, 1)
	assert.Equal(t, "Blue Shirt", items[0].Name)
}
