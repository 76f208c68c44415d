// Package sqlite implements the persistence stores on SQLite.
// One database file holds canonical documents, the outcome log, and
// scheduler state; wrapper types expose each store interface over the
// shared connection.
package sqlite
