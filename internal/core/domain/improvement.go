package domain

// ImprovementKind names a canned enhancement that can be applied to a project.
type ImprovementKind string

// Available improvements.
const (
	ImprovementDescription ImprovementKind = "description"
	ImprovementMetrics     ImprovementKind = "metrics"
	ImprovementCompetitive ImprovementKind = "competitive"
	ImprovementTeam        ImprovementKind = "team"
	ImprovementVision      ImprovementKind = "vision"
)

// IsValid returns true if the improvement kind is recognised.
func (k ImprovementKind) IsValid() bool {
	switch k {
	case ImprovementDescription, ImprovementMetrics, ImprovementCompetitive, ImprovementTeam, ImprovementVision:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (k ImprovementKind) String() string {
	return string(k)
}

// Description returns a human-readable description of the improvement.
func (k ImprovementKind) Description() string {
	switch k {
	case ImprovementDescription:
		return "Enhance project description"
	case ImprovementMetrics:
		return "Add key traction metrics"
	case ImprovementCompetitive:
		return "Highlight competitive advantages"
	case ImprovementTeam:
		return "Strengthen team section"
	case ImprovementVision:
		return "Articulate long-term vision"
	default:
		return unknownDescription
	}
}

// Impact returns the expected gain in match score, in points.
func (k ImprovementKind) Impact() int {
	switch k {
	case ImprovementDescription:
		return 8
	case ImprovementMetrics:
		return 12
	case ImprovementCompetitive:
		return 7
	case ImprovementTeam:
		return 5
	case ImprovementVision:
		return 6
	default:
		return 0
	}
}

// AllImprovementKinds returns every improvement in display order.
func AllImprovementKinds() []ImprovementKind {
	return []ImprovementKind{
		ImprovementDescription,
		ImprovementMetrics,
		ImprovementCompetitive,
		ImprovementTeam,
		ImprovementVision,
	}
}
