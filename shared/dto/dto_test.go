package dto_test

import (
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"aset/shared/constant"
	"aset/shared/dto"
	"aset/shared/model"
	"aset/shared/timezone"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC)

	modelMetadata := model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "creator",
		ModifiedBy: "modifier",
	}

	metadata := &dto.Metadata{}
	metadata.FromModel(modelMetadata)

	if metadata.CreatedAt != timezone.Format(createdAt, constant.DateFormat) {
		t.Errorf("unexpected CreatedAt: %s", metadata.CreatedAt)
	}

	if metadata.ModifiedAt != timezone.Format(modifiedAt, constant.DateFormat) {
		t.Errorf("unexpected ModifiedAt: %s", metadata.ModifiedAt)
	}

	if metadata.CreatedBy != "creator" {
		t.Errorf("expected CreatedBy to be 'creator', got %s", metadata.CreatedBy)
	}

	if metadata.ModifiedBy != "modifier" {
		t.Errorf("expected ModifiedBy to be 'modifier', got %s", metadata.ModifiedBy)
	}
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    map[string]string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name: "with all valid parameters",
			queryParams: map[string]string{
				"page":     "2",
				"limit":    "20",
				"sort_by":  "name",
				"sort_dir": "ASC",
			},
			defaultRequest: false,
			expected: dto.QueryParams{
				Page:    2,
				Limit:   20,
				SortBy:  "name",
				SortDir: "ASC",
			},
		},
		{
			name:           "with default request enabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
		{
			name:           "with default request disabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: false,
			expected:       dto.QueryParams{},
		},
		{
			name: "with invalid page parameter",
			queryParams: map[string]string{
				"page": "invalid",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
		{
			name: "with negative page parameter",
			queryParams: map[string]string{
				"page": "-1",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
		{
			name: "with lowercase sort direction",
			queryParams: map[string]string{
				"sort_dir": "desc",
			},
			defaultRequest: false,
			expected: dto.QueryParams{
				SortDir: "DESC",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := url.Values{}
			for key, value := range tt.queryParams {
				values.Set(key, value)
			}

			req := &http.Request{URL: &url.URL{RawQuery: values.Encode()}}

			var params dto.QueryParams
			params.FromRequest(req, tt.defaultRequest)

			if params != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, params)
			}
		})
	}
}

func TestFilter_GetWhereClause(t *testing.T) {
	t.Run("eq with table prefix", func(t *testing.T) {
		filter := dto.Filter{
			Field:    "status",
			Value:    "aktif",
			Operator: dto.FilterOperatorEq,
			Table:    "assets",
		}

		where, args := filter.GetWhereClause()

		if where != "assets.status = :status" {
			t.Errorf("unexpected where clause: %q", where)
		}

		if args["status"] != "aktif" {
			t.Errorf("unexpected args: %+v", args)
		}
	})

	t.Run("like wraps and lowercases", func(t *testing.T) {
		filter := dto.Filter{
			Field:    "name",
			Value:    "kamar",
			Operator: dto.FilterOperatorLike,
			Table:    "assets",
		}

		where, args := filter.GetWhereClause()

		if !strings.Contains(where, "LOWER(assets.name) LIKE LOWER(:name)") {
			t.Errorf("unexpected where clause: %q", where)
		}

		if args["name"] != "%kamar%" {
			t.Errorf("unexpected args: %+v", args)
		}
	})

	t.Run("in expands slice values", func(t *testing.T) {
		filter := dto.Filter{
			Field:    "property_id",
			Value:    []string{"id-1", "id-2"},
			Operator: dto.FilterOperatorIn,
			Table:    "assets",
		}

		where, args := filter.GetWhereClause()

		if !strings.Contains(where, "assets.property_id IN (:property_id_0, :property_id_1)") {
			t.Errorf("unexpected where clause: %q", where)
		}

		if args["property_id_0"] != "id-1" || args["property_id_1"] != "id-2" {
			t.Errorf("unexpected args: %+v", args)
		}
	})

	t.Run("arg name override keeps same field distinct", func(t *testing.T) {
		from := dto.Filter{
			ArgName:  "start_date_from",
			Field:    "start_date",
			Value:    "2026-01-01",
			Operator: dto.FilterOperatorGreaterEq,
			Table:    "maintenance_orders",
		}

		to := dto.Filter{
			ArgName:  "start_date_to",
			Field:    "start_date",
			Value:    "2026-01-31",
			Operator: dto.FilterOperatorLessEq,
			Table:    "maintenance_orders",
		}

		group := dto.FilterGroup{
			Operator: dto.FilterGroupOperatorAnd,
			Filters:  []any{from, to},
		}

		where, args := group.GetWhereClause()

		if !strings.Contains(where, ":start_date_from") || !strings.Contains(where, ":start_date_to") {
			t.Errorf("unexpected where clause: %q", where)
		}

		if len(args) != 2 {
			t.Errorf("expected 2 args, got %d: %+v", len(args), args)
		}
	})
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	t.Run("empty group yields empty clause", func(t *testing.T) {
		group := dto.FilterGroup{}

		where, args := group.GetWhereClause()

		if where != "" {
			t.Errorf("expected empty where clause, got %q", where)
		}

		if len(args) != 0 {
			t.Errorf("expected no args, got %+v", args)
		}
	})

	t.Run("joins filters with the group operator", func(t *testing.T) {
		group := dto.FilterGroup{
			Operator: dto.FilterGroupOperatorAnd,
			Filters: []any{
				dto.Filter{Field: "property_id", Value: "id-1", Operator: dto.FilterOperatorEq, Table: "assets"},
				dto.Filter{Field: "status", Value: "aktif", Operator: dto.FilterOperatorEq, Table: "assets"},
			},
		}

		where, args := group.GetWhereClause()

		if !strings.Contains(where, " AND ") {
			t.Errorf("expected AND join, got %q", where)
		}

		if len(args) != 2 {
			t.Errorf("expected 2 args, got %+v", args)
		}
	})
}
