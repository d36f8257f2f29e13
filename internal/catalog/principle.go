package catalog

// Principle identifies one of the SOLID design principles.
type Principle string

const (
	PrincipleSRP Principle = "single-responsibility"
	PrincipleOCP Principle = "open-closed"
	PrincipleLSP Principle = "liskov-substitution"
	PrincipleISP Principle = "interface-segregation"
	PrincipleDIP Principle = "dependency-inversion"
)

// AllPrinciples returns all principles in canonical display order.
func AllPrinciples() []Principle {
	return []Principle{
		PrincipleSRP,
		PrincipleOCP,
		PrincipleLSP,
		PrincipleISP,
		PrincipleDIP,
	}
}

// ParsePrinciple resolves a user-supplied principle key. It accepts the
// canonical key ("single-responsibility") or the common short form ("srp").
func ParsePrinciple(s string) (Principle, bool) {
	switch s {
	case "srp", string(PrincipleSRP):
		return PrincipleSRP, true
	case "ocp", string(PrincipleOCP):
		return PrincipleOCP, true
	case "lsp", string(PrincipleLSP):
		return PrincipleLSP, true
	case "isp", string(PrincipleISP):
		return PrincipleISP, true
	case "dip", string(PrincipleDIP):
		return PrincipleDIP, true
	}
	return "", false
}

// PrincipleDisplayName returns a human-readable name for a principle.
func PrincipleDisplayName(p Principle) string {
	switch p {
	case PrincipleSRP:
		return "Single Responsibility"
	case PrincipleOCP:
		return "Open/Closed"
	case PrincipleLSP:
		return "Liskov Substitution"
	case PrincipleISP:
		return "Interface Segregation"
	case PrincipleDIP:
		return "Dependency Inversion"
	default:
		return string(p)
	}
}

// PrincipleLetter returns the single-letter abbreviation for a principle.
func PrincipleLetter(p Principle) string {
	switch p {
	case PrincipleSRP:
		return "S"
	case PrincipleOCP:
		return "O"
	case PrincipleLSP:
		return "L"
	case PrincipleISP:
		return "I"
	case PrincipleDIP:
		return "D"
	default:
		return "?"
	}
}
