// Package memory provides in-memory implementations of the driven storage
// ports. They back dry-run ingestion and service-level tests where a real
// database would only add noise.
package memory
