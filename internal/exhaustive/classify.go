package exhaustive

// Member is one value of an enum.
type Member struct {
	Key  string // identity used to match case labels
	Name string // name shown in diagnostics
}

// Resolver supplies the host's view of a switch statement.
//
// S is the selector (for example a types.Type), L a case label expression
// and T a statement of the default clause.
type Resolver[S, L, T any] interface {
	// Members returns the enum members of the selector in declaration order.
	// It returns false if the selector is not an enum.
	Members(selector S) ([]Member, bool)
	// Resolve returns the member key of a case label.
	// It returns false if the label cannot be resolved.
	Resolve(label L) (string, bool)
	// Aborts reports whether stmt unconditionally stops normal control flow.
	Aborts(stmt T) bool
}

// Default is the default clause of a switch.
type Default[T any] struct {
	Body []T
}

// Classify computes the Info of a switch statement.
// def is nil when the switch has no default clause.
// It returns false if the selector is not an enum.
func Classify[S, L, T any](r Resolver[S, L, T], selector S, labels []L, def *Default[T]) (Info, bool) {
	members, ok := r.Members(selector)
	if !ok {
		return Info{}, false
	}

	covered := make(map[string]struct{}, len(labels))

	for _, label := range labels {
		if key, ok := r.Resolve(label); ok {
			covered[key] = struct{}{}
		}
	}

	var missing []string

	for _, m := range members {
		if _, ok := covered[m.Key]; !ok {
			missing = append(missing, m.Name)
		}
	}

	hasDefault := def != nil
	defaultAborts := hasDefault && len(def.Body) > 0 && r.Aborts(def.Body[0])

	return Info{
		missing:       missing,
		hasDefault:    hasDefault,
		defaultAborts: defaultAborts,
	}, true
}
