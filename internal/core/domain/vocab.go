package domain

import "strings"

// Chamber is the closed chamber enumeration.
type Chamber string

const (
	// ChamberHouse is the House of Representatives.
	ChamberHouse Chamber = "HOUSE"

	// ChamberSenate is the Senate.
	ChamberSenate Chamber = "SENATE"

	// ChamberUnknown is used when the source text names no known chamber.
	ChamberUnknown Chamber = "UNKNOWN"
)

// NormalizeChamber maps chamber free text ("House", "HOUSE", "H") into the
// closed enumeration. Unrecognised text maps to ChamberUnknown.
func NormalizeChamber(s string) Chamber {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "HOUSE", "H", "HOUSE OF REPRESENTATIVES":
		return ChamberHouse
	case "SENATE", "S":
		return ChamberSenate
	default:
		return ChamberUnknown
	}
}

// ActionType is the closed action classification vocabulary.
type ActionType string

const (
	ActionIntroducedHouse  ActionType = "INTRODUCED_HOUSE"
	ActionIntroducedSenate ActionType = "INTRODUCED_SENATE"
	ActionReferredCommittee ActionType = "REFERRED_COMMITTEE"
	ActionReportedCommittee ActionType = "REPORTED_COMMITTEE"
	ActionPassedHouse      ActionType = "PASSED_HOUSE"
	ActionPassedSenate     ActionType = "PASSED_SENATE"
	ActionSignedPresident  ActionType = "SIGNED_PRESIDENT"
	ActionVetoed           ActionType = "VETOED"
	ActionBecameLaw        ActionType = "BECAME_LAW"

	// ActionUnknown is the explicit fallback. Unclassifiable action text is
	// common in the source feeds and must not abort ingestion.
	ActionUnknown ActionType = "UNKNOWN"
)

// actionRule pairs required keywords with a classification. Rules are
// evaluated in order; the first rule whose keywords all appear wins.
type actionRule struct {
	keywords []string
	atype    ActionType
}

// actionRules is ordered most-specific first. "became public law" must be
// checked before "passed", and vetoes before signatures.
var actionRules = []actionRule{
	{[]string{"became", "law"}, ActionBecameLaw},
	{[]string{"public", "law"}, ActionBecameLaw},
	{[]string{"vetoed"}, ActionVetoed},
	{[]string{"signed", "president"}, ActionSignedPresident},
	{[]string{"introduced", "house"}, ActionIntroducedHouse},
	{[]string{"introduced", "senate"}, ActionIntroducedSenate},
	{[]string{"reported", "committee"}, ActionReportedCommittee},
	{[]string{"referred", "committee"}, ActionReferredCommittee},
	{[]string{"passed", "house"}, ActionPassedHouse},
	{[]string{"passed", "senate"}, ActionPassedSenate},
	{[]string{"agreed to", "house"}, ActionPassedHouse},
	{[]string{"agreed to", "senate"}, ActionPassedSenate},
}

// ClassifyAction maps raw action text into the closed vocabulary using
// ordered keyword rules. The chamber disambiguates rules whose text names
// no chamber (e.g., "Introduced" with Chamber=HOUSE). Unmatched text maps
// to ActionUnknown rather than failing.
func ClassifyAction(text string, chamber Chamber) ActionType {
	lower := strings.ToLower(text)

	for _, rule := range actionRules {
		if containsAll(lower, rule.keywords) {
			return rule.atype
		}
	}

	// Chamber-qualified fallbacks for text that omits the chamber name.
	switch {
	case strings.Contains(lower, "introduced") && chamber == ChamberHouse:
		return ActionIntroducedHouse
	case strings.Contains(lower, "introduced") && chamber == ChamberSenate:
		return ActionIntroducedSenate
	case strings.Contains(lower, "passed") && chamber == ChamberHouse:
		return ActionPassedHouse
	case strings.Contains(lower, "passed") && chamber == ChamberSenate:
		return ActionPassedSenate
	}

	return ActionUnknown
}

// containsAll reports whether every keyword appears in s.
func containsAll(s string, keywords []string) bool {
	for _, kw := range keywords {
		if !strings.Contains(s, kw) {
			return false
		}
	}
	return true
}
