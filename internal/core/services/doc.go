// Package services contains the core orchestration logic. The ingest
// orchestrator drives artifacts through the identify, deserialise, map,
// persist, archive pipeline; the scheduler triggers ingestion runs on an
// interval. Services depend only on ports, never on adapters.
package services
