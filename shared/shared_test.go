package shared_test

import (
	"reflect"
	"testing"
	"time"

	"aset/shared"
	"aset/shared/constant"
	"aset/shared/dto"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{
			name:     "empty string returns nil",
			input:    "",
			expected: nil,
		},
		{
			name:     "valid true string",
			input:    "true",
			expected: boolPtr(true),
		},
		{
			name:     "valid false string",
			input:    "false",
			expected: boolPtr(false),
		},
		{
			name:     "valid 1 string",
			input:    "1",
			expected: boolPtr(true),
		},
		{
			name:     "valid 0 string",
			input:    "0",
			expected: boolPtr(false),
		},
		{
			name:     "invalid string returns nil",
			input:    "invalid",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.ConvertStringToBool(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", *result)
				}
			} else {
				if result == nil {
					t.Errorf("expected %v, got nil", *tt.expected)
				} else if *result != *tt.expected {
					t.Errorf("expected %v, got %v", *tt.expected, *result)
				}
			}
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{
			name:     "zero total returns 1",
			total:    0,
			limit:    10,
			expected: 1,
		},
		{
			name:     "zero limit returns 1",
			total:    100,
			limit:    0,
			expected: 1,
		},
		{
			name:     "exact division",
			total:    100,
			limit:    10,
			expected: 10,
		},
		{
			name:     "partial last page",
			total:    101,
			limit:    10,
			expected: 11,
		},
		{
			name:     "single page",
			total:    5,
			limit:    10,
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.CalculateTotalPage(tt.total, tt.limit)
			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestSanitizeSearch(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain term untouched",
			input:    "kamar 101",
			expected: "kamar 101",
		},
		{
			name:     "percent stripped",
			input:    "%kamar%",
			expected: "kamar",
		},
		{
			name:     "underscore stripped",
			input:    "kamar_101",
			expected: "kamar101",
		},
		{
			name:     "whitespace trimmed",
			input:    "  kamar  ",
			expected: "kamar",
		},
		{
			name:     "only metacharacters",
			input:    "%_%",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.SanitizeSearch(tt.input)
			if result != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestTransformFields(t *testing.T) {
	type updateRequest struct {
		Name        string   `db:"name"`
		Description string   `db:"description"`
		Cost        *float64 `db:"cost"`
		Ignored     string
	}

	cost := 100.0
	req := updateRequest{
		Name:    "New Name",
		Cost:    &cost,
		Ignored: "should not appear",
	}

	result := shared.TransformFields(req, "test-user")

	if result["name"] != "New Name" {
		t.Errorf("expected name to be 'New Name', got %v", result["name"])
	}

	if _, ok := result["description"]; ok {
		t.Error("expected zero-valued description to be skipped")
	}

	if _, ok := result["Ignored"]; ok {
		t.Error("expected untagged field to be skipped")
	}

	if result[constant.FieldModifiedBy] != "test-user" {
		t.Errorf("expected modified_by to be 'test-user', got %v", result[constant.FieldModifiedBy])
	}

	if _, ok := result[constant.FieldModifiedAt].(time.Time); !ok {
		t.Error("expected modified_at to be a time.Time")
	}
}

func TestFilterByID(t *testing.T) {
	filter := shared.FilterByID("some-id", "id", "assets")

	expected := dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    "id",
				Value:    "some-id",
				Operator: dto.FilterOperatorEq,
				Table:    "assets",
			},
		},
	}

	if !reflect.DeepEqual(filter, expected) {
		t.Errorf("expected %+v, got %+v", expected, filter)
	}
}

func TestBuildCacheKey(t *testing.T) {
	result := shared.BuildCacheKey("asset", "get", "some-id")
	if result != "asset:get:some-id" {
		t.Errorf("expected 'asset:get:some-id', got %q", result)
	}
}

func boolPtr(b bool) *bool {
	return &b
}
