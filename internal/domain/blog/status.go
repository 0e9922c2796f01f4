package blog

import "github.com/jsamuelsen11/blog-domain/internal/domain/model"

// Status is the lifecycle state of a Post.
type Status string

const (
	StatusDraft     Status = "d"
	StatusReview    Status = "r"
	StatusPublished Status = "p"
	StatusArchived  Status = "a"
)

// StatusChoices is the ordered choice set of the post status field.
var StatusChoices = []model.Choice{
	{Value: StatusDraft, Label: "Draft"},
	{Value: StatusReview, Label: "Review"},
	{Value: StatusPublished, Label: "Published"},
	{Value: StatusArchived, Label: "Archived"},
}

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusReview, StatusPublished, StatusArchived:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// Label returns the human-readable name, or "" for an invalid status.
func (s Status) Label() string {
	for _, c := range StatusChoices {
		if c.Value == s {
			return c.Label
		}
	}
	return ""
}

// TitleEditable reports whether a post in this status may change its title.
func (s Status) TitleEditable() bool {
	return s == StatusDraft || s == StatusReview
}
