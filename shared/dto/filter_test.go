package dto_test

import (
	"strings"
	"testing"
	"village/shared/dto"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name: "eq with table",
			filter: dto.Filter{
				Field:    "is_active",
				Value:    true,
				Operator: dto.FilterOperatorEq,
				Table:    "services",
			},
			wantWhere: "services.is_active = :is_active",
			wantArgs:  map[string]any{"is_active": true},
		},
		{
			name: "eq with explicit arg name",
			filter: dto.Filter{
				ArgName:  "owner",
				Field:    "user_id",
				Value:    "seller-1",
				Operator: dto.FilterOperatorEq,
				Table:    "services",
			},
			wantWhere: "services.user_id = :owner",
			wantArgs:  map[string]any{"owner": "seller-1"},
		},
		{
			name: "like wraps the value in wildcards",
			filter: dto.Filter{
				Field:    "title",
				Value:    "laundry",
				Operator: dto.FilterOperatorLike,
				Table:    "services",
			},
			wantWhere: "LOWER(services.title) LIKE LOWER(:title)",
			wantArgs:  map[string]any{"title": "%laundry%"},
		},
		{
			name: "in expands a slice into named args",
			filter: dto.Filter{
				Field:    "service_id",
				Value:    []string{"service-1", "service-2"},
				Operator: dto.FilterOperatorIn,
				Table:    "bookings",
			},
			wantWhere: "bookings.service_id IN (:service_id_0, :service_id_1)",
			wantArgs:  map[string]any{"service_id_0": "service-1", "service_id_1": "service-2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			if strings.TrimSpace(where) != tt.wantWhere {
				t.Errorf("expected where %q, got %q", tt.wantWhere, strings.TrimSpace(where))
			}

			if len(args) != len(tt.wantArgs) {
				t.Fatalf("expected %d args, got %d", len(tt.wantArgs), len(args))
			}

			for key, want := range tt.wantArgs {
				if args[key] != want {
					t.Errorf("expected arg %s to be %v, got %v", key, want, args[key])
				}
			}
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				Field:    "is_active",
				Value:    true,
				Operator: dto.FilterOperatorEq,
				Table:    "services",
			},
			dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{
						ArgName:  "search_title",
						Field:    "title",
						Value:    "express",
						Operator: dto.FilterOperatorLike,
						Table:    "services",
					},
					dto.Filter{
						ArgName:  "search_description",
						Field:    "description",
						Value:    "express",
						Operator: dto.FilterOperatorLike,
						Table:    "services",
					},
				},
			},
		},
	}

	where, args := group.GetWhereClause()

	if !strings.Contains(where, " AND ") {
		t.Errorf("expected AND between top-level filters, got %q", where)
	}

	if !strings.Contains(where, " OR ") {
		t.Errorf("expected OR inside the nested group, got %q", where)
	}

	if len(args) != 3 {
		t.Errorf("expected 3 args, got %d", len(args))
	}

	if args["search_title"] != "%express%" || args["search_description"] != "%express%" {
		t.Errorf("expected distinct search args, got %v", args)
	}
}

func TestFilterGroup_Empty(t *testing.T) {
	group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

	where, args := group.GetWhereClause()

	if where != "" {
		t.Errorf("expected empty where clause, got %q", where)
	}

	if len(args) != 0 {
		t.Errorf("expected no args, got %v", args)
	}
}
