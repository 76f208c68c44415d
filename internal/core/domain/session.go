package domain

// The First Congress convened in 1789; each congress spans a two-year term.
const (
	congressBaseYear   = 1789
	congressTermYears  = 2
	congressFirstValid = 1
)

// SessionYear derives the internal session-year key from an origin congress
// number. The mapping is pure and deterministic: congress 118 begins in 2023,
// 119 in 2025, and consecutive congresses are always two years apart.
func SessionYear(congress int) int {
	return congressBaseYear + (congress-1)*congressTermYears
}

// ValidCongress reports whether a congress number is in the valid range.
func ValidCongress(congress int) bool {
	return congress >= congressFirstValid
}
