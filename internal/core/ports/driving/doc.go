// Package driving defines the interfaces through which the CLI and
// scheduler drive the pipeline core.
package driving
