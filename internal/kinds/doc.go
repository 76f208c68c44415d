// Package kinds provides the kind registry: the static mapping of document
// kind code to filename pattern, deserialiser, and domain mapper. Kind
// implementations live in subpackages (bill, law) and are registered at
// startup via Defaults.
//
// The registry is the single extension point for new document kinds; the
// orchestrator resolves handlers through it and never switches on kind.
package kinds
