package kinds

import (
	"fmt"
	"regexp"
	"sort"
	"time"

	"github.com/openlegis/lexfeed/internal/core/domain"
	"github.com/openlegis/lexfeed/internal/core/ports/driven"
)

// Ensure Registry implements the interface.
var _ driven.KindRegistry = (*Registry)(nil)

// Entry binds a kind code to its filename pattern and handler pair.
type Entry struct {
	// Kind is the kind code (e.g., "bill").
	Kind string

	// Pattern matches the kind's staged filenames. Submatches are passed
	// to Identify.
	Pattern *regexp.Regexp

	// Identify converts a pattern match into an artifact identity.
	// modTime is the fallback published timestamp.
	Identify func(matches []string, modTime time.Time) (domain.ArtifactIdentity, error)

	// Deserialiser parses and validates the kind's document bodies.
	Deserialiser driven.Deserialiser

	// Mapper normalises the kind's IR into canonical documents.
	Mapper driven.Mapper
}

// Registry is the process-wide kind table. It is populated once at startup
// and read-only thereafter.
type Registry struct {
	entries []Entry
	byKind  map[string]Entry
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{byKind: make(map[string]Entry)}
}

// Register adds a kind entry. Registration happens during startup; a
// duplicate or incomplete entry is a programming error.
func (r *Registry) Register(e Entry) error {
	if e.Kind == "" || e.Pattern == nil || e.Identify == nil ||
		e.Deserialiser == nil || e.Mapper == nil {
		return fmt.Errorf("register kind %q: %w", e.Kind, domain.ErrInvalidInput)
	}
	if _, exists := r.byKind[e.Kind]; exists {
		return fmt.Errorf("register kind %q: already registered", e.Kind)
	}
	r.entries = append(r.entries, e)
	r.byKind[e.Kind] = e
	return nil
}

// Resolve returns the handler pair for a kind code.
func (r *Registry) Resolve(kind string) (driven.Deserialiser, driven.Mapper, error) {
	e, ok := r.byKind[kind]
	if !ok {
		return nil, nil, &domain.UnknownKindError{Kind: kind}
	}
	return e.Deserialiser, e.Mapper, nil
}

// Extract parses a filename into an artifact identity using the registered
// patterns. An unparseable name is a hard failure: without a matching
// pattern no identity can be established.
func (r *Registry) Extract(filename string, modTime time.Time) (domain.ArtifactIdentity, error) {
	for _, e := range r.entries {
		m := e.Pattern.FindStringSubmatch(filename)
		if m == nil {
			continue
		}
		return e.Identify(m, modTime)
	}
	return domain.ArtifactIdentity{}, &domain.ExtractionError{
		Filename: filename,
		Reason:   "filename matches no registered pattern",
	}
}

// Kinds returns all registered kind codes, sorted.
func (r *Registry) Kinds() []string {
	kinds := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		kinds = append(kinds, e.Kind)
	}
	sort.Strings(kinds)
	return kinds
}
