package fixture

import (
	"errors"
	"fmt"

	"github.com/jsamuelsen11/blog-domain/internal/domain"
)

// Loader errors that are not domain validation failures.
var (
	ErrUnknownReference = errors.New("unknown reference")
	ErrDuplicateKey     = errors.New("duplicate key")
)

// Outcome is the result of loading one fixture record, or one transition of
// a post.
type Outcome struct {
	Entity string
	Key    string
	Step   string
	Err    error
}

// OK reports whether the record loaded.
func (o Outcome) OK() bool {
	return o.Err == nil
}

// Kind classifies a failed outcome: the domain error kind for validation
// failures, "reference" or "duplicate" for fixture wiring problems.
func (o Outcome) Kind() string {
	switch {
	case o.Err == nil:
		return ""
	case domain.KindOf(o.Err) != "":
		return domain.KindOf(o.Err).String()
	case errors.Is(o.Err, ErrUnknownReference):
		return "reference"
	case errors.Is(o.Err, ErrDuplicateKey):
		return "duplicate"
	default:
		return "error"
	}
}

func (o Outcome) String() string {
	name := o.Entity + " " + o.Key
	if o.Step != "" {
		name += " (" + o.Step + ")"
	}
	if o.Err == nil {
		return name + ": ok"
	}
	return fmt.Sprintf("%s: %s: %v", name, o.Kind(), o.Err)
}

// Report collects the outcome of every record in load order.
type Report struct {
	Outcomes []Outcome
}

func (r *Report) add(entity, key, step string, err error) {
	r.Outcomes = append(r.Outcomes, Outcome{Entity: entity, Key: key, Step: step, Err: err})
}

// Failures returns the failed outcomes.
func (r *Report) Failures() []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if !o.OK() {
			out = append(out, o)
		}
	}
	return out
}

// OK reports whether every record loaded.
func (r *Report) OK() bool {
	return len(r.Failures()) == 0
}
