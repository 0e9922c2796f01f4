package fixture

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/jsamuelsen11/blog-domain/internal/domain/blog"
	"github.com/jsamuelsen11/blog-domain/internal/domain/model"
)

func ptr[T any](v T) *T { return &v }

func attrNames(attrs []model.Attr) []string {
	names := make([]string, 0, len(attrs))
	for _, a := range attrs {
		names = append(names, a.Name)
	}
	return names
}

func TestToUserAttrs_ExtraKeysSorted(t *testing.T) {
	t.Parallel()

	dto := &UserDTO{
		Username: "ada",
		Extra:    map[string]any{"zodiac": "leo", "nickname": "countess"},
	}
	got := attrNames(ToUserAttrs(dto))
	want := []string{
		"username", "password", "email", "first_name", "last_name",
		"is_active", "is_author", "is_moderator",
		"nickname", "zodiac",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ToUserAttrs() names mismatch (-want +got):\n%s", diff)
	}
}

func TestToPostAttrs_StatusIsTyped(t *testing.T) {
	t.Parallel()

	attrs := ToPostAttrs(&PostDTO{Title: "T", Status: "r"}, nil, nil)

	var status any
	for _, a := range attrs {
		if a.Name == blog.FieldStatus {
			status = a.Value
		}
	}
	if status != blog.StatusReview {
		t.Errorf("status attr = %#v, want blog.StatusReview", status)
	}
	if diff := cmp.Diff([]string{"title", "body", "status"}, attrNames(attrs)); diff != "" {
		t.Errorf("ToPostAttrs() names mismatch (-want +got):\n%s", diff)
	}
}

func TestToPostChanges(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		dto  TransitionDTO
		want []string
	}{
		{"nothing", TransitionDTO{By: "ada"}, nil},
		{"status only", TransitionDTO{Status: ptr("p")}, []string{"status"}},
		{"fixed order", TransitionDTO{Status: ptr("r"), Title: ptr("x"), Body: ptr("b"), Category: ptr("")}, []string{"category", "body", "title", "status"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ToPostChanges(&tt.dto, nil)
			if diff := cmp.Diff(tt.want, attrNames(got), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("ToPostChanges() names mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestToPostChanges_EmptyCategoryClears(t *testing.T) {
	t.Parallel()

	got := ToPostChanges(&TransitionDTO{Category: ptr("")}, nil)
	if len(got) != 1 || got[0].Name != blog.FieldCategory || got[0].Value != nil {
		t.Errorf("ToPostChanges(category=\"\") = %+v, want a single nil category change", got)
	}
}
