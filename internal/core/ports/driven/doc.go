// Package driven defines the interfaces the pipeline core depends on:
// the staging store, per-kind deserialisers and mappers, the kind registry,
// and the persistence stores. Adapters implement these interfaces.
package driven
