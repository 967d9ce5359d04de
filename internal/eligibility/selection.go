package eligibility

// Mode selects which predicates apply to a search
type Mode int

const (
	// ModeFrontend customer search: pickup location is required,
	// supplier minimum rental days apply, availability is not filtered
	ModeFrontend Mode = iota
	// ModeBackend back-office search: location is optional,
	// availability filter applies, supplier minimum rental days do not
	ModeBackend
)

func (m Mode) String() string {
	if m == ModeBackend {
		return "backend"
	}
	return "frontend"
}

// Selection is a two-value multi-select (limited/unlimited, available/unavailable)
// reduced to what it actually constrains
type Selection int

const (
	SelectAny Selection = iota
	SelectPositiveOnly
	SelectNegativeOnly
	SelectNone
)

// ParseSelection derives a Selection from raw filter values.
// nil means no constraint, an empty slice matches nothing,
// both values present means no constraint.
func ParseSelection(values []string, positive, negative string) Selection {
	if values == nil {
		return SelectAny
	}
	if len(values) == 0 {
		return SelectNone
	}

	var hasPositive, hasNegative bool
	for _, v := range values {
		switch v {
		case positive:
			hasPositive = true
		case negative:
			hasNegative = true
		}
	}

	switch {
	case hasPositive && !hasNegative:
		return SelectPositiveOnly
	case hasNegative && !hasPositive:
		return SelectNegativeOnly
	default:
		return SelectAny
	}
}

// Allows reports whether a car on the positive (true) or negative (false) side passes
func (s Selection) Allows(positive bool) bool {
	switch s {
	case SelectPositiveOnly:
		return positive
	case SelectNegativeOnly:
		return !positive
	case SelectNone:
		return false
	default:
		return true
	}
}
