package shared_test

import (
	"reflect"
	"testing"
	"time"
	"village/shared"
	"village/shared/constant"
	"village/shared/dto"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "zero total returns 1", total: 0, limit: 10, expected: 1},
		{name: "zero limit returns 1", total: 100, limit: 0, expected: 1},
		{name: "negative limit returns 1", total: 100, limit: -5, expected: 1},
		{name: "exact division", total: 100, limit: 10, expected: 10},
		{name: "division with remainder", total: 101, limit: 10, expected: 11},
		{name: "limit greater than total", total: 5, limit: 10, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := shared.CalculateTotalPage(tt.total, tt.limit); result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestTransformFields(t *testing.T) {
	type listing struct {
		Title       string   `db:"title"`
		Description string   `db:"description"`
		Price       *float64 `db:"default_price"`
		Internal    string
	}

	price := 0.0
	data := listing{
		Title: "Laundry Express",
		Price: &price,
	}

	result := shared.TransformFields(data, "seller-1")

	if result[constant.FieldModifiedBy] != "seller-1" {
		t.Errorf("expected modified_by to be seller-1, got %v", result[constant.FieldModifiedBy])
	}

	if _, ok := result[constant.FieldModifiedAt].(time.Time); !ok {
		t.Error("expected modified_at to be a time.Time")
	}

	if result["title"] != "Laundry Express" {
		t.Errorf("expected title to survive, got %v", result["title"])
	}

	// Zero-valued strings are dropped, non-nil pointers survive even at zero.
	if _, exists := result["description"]; exists {
		t.Error("expected zero description to be dropped")
	}

	if result["default_price"] != &price {
		t.Error("expected pointer field to survive at zero value")
	}

	if _, exists := result["Internal"]; exists {
		t.Error("expected untagged field to be dropped")
	}
}

func TestFilterByID(t *testing.T) {
	result := shared.FilterByID("booking-1", "id", "bookings")

	expected := dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    "id",
				Value:    "booking-1",
				Operator: dto.FilterOperatorEq,
				Table:    "bookings",
			},
		},
	}

	if !reflect.DeepEqual(result, expected) {
		t.Errorf("expected %+v, got %+v", expected, result)
	}
}

func TestBuildCacheKey(t *testing.T) {
	key := shared.BuildCacheKey("booking:list", "user-1", "buyer")

	if key != "booking:list:user-1:buyer" {
		t.Errorf("unexpected cache key %s", key)
	}
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 2, Limit: 10}
	filter := shared.FilterByID("laundry", "category", "services")

	first := shared.BuildCacheKeyWithQuery("service:gets", params, filter)
	second := shared.BuildCacheKeyWithQuery("service:gets", params, filter)

	if first != second {
		t.Errorf("expected deterministic keys, got %s and %s", first, second)
	}

	other := shared.BuildCacheKeyWithQuery("service:gets", dto.QueryParams{Page: 3, Limit: 10}, filter)
	if first == other {
		t.Error("expected different params to produce different keys")
	}
}

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{name: "empty string returns nil", input: "", expected: nil},
		{name: "true", input: "true", expected: boolPtr(true)},
		{name: "false", input: "false", expected: boolPtr(false)},
		{name: "numeric true", input: "1", expected: boolPtr(true)},
		{name: "numeric false", input: "0", expected: boolPtr(false)},
		{name: "invalid string returns nil", input: "maybe", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.ConvertStringToBool(tt.input)

			switch {
			case tt.expected == nil:
				if result != nil {
					t.Errorf("expected nil, got %v", *result)
				}
			case result == nil:
				t.Errorf("expected %v, got nil", *tt.expected)
			case *result != *tt.expected:
				t.Errorf("expected %v, got %v", *tt.expected, *result)
			}
		})
	}
}

func boolPtr(b bool) *bool {
	return &b
}
