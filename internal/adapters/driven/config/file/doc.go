// Package file provides a TOML-backed configuration store. Configuration
// lives in a single file under the lexfeed config directory; missing files
// and missing keys fall back to defaults so a fresh install works with no
// setup beyond pointing at a staging directory.
package file
