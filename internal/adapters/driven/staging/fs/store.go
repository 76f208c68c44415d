// Package fs implements the staging store on the local filesystem.
// The staging directory acts as the intake queue: producers drop files under
// staging/<kind>/, and completed artifacts are relocated with atomic renames
// so a crash mid-run never double-counts or loses a file.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/openlegis/lexfeed/internal/core/domain"
	"github.com/openlegis/lexfeed/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.StagingStore = (*Store)(nil)

// errorSidecarSuffix marks quarantine diagnostic files.
const errorSidecarSuffix = ".error"

// Store manages the staging, archive, and quarantine trees.
// All three roots must live on the same filesystem so relocation is a
// rename, never a copy.
type Store struct {
	stagingRoot    string
	archiveRoot    string
	quarantineRoot string
}

// NewStore creates a staging store, ensuring the three roots exist.
func NewStore(stagingRoot, archiveRoot, quarantineRoot string) (*Store, error) {
	for _, root := range []string{stagingRoot, archiveRoot, quarantineRoot} {
		if err := os.MkdirAll(root, 0700); err != nil {
			return nil, fmt.Errorf("creating directory %s: %w", root, err)
		}
	}
	return &Store{
		stagingRoot:    stagingRoot,
		archiveRoot:    archiveRoot,
		quarantineRoot: quarantineRoot,
	}, nil
}

// Kinds returns the kind subdirectories present under staging.
func (s *Store) Kinds() ([]string, error) {
	entries, err := os.ReadDir(s.stagingRoot)
	if err != nil {
		return nil, fmt.Errorf("listing staging root: %w", err)
	}

	var kinds []string //nolint:prealloc // size unknown until filtered
	for _, entry := range entries {
		if entry.IsDir() {
			kinds = append(kinds, entry.Name())
		}
	}
	return kinds, nil
}

// ListPending produces a lazy sequence over the files staged for a kind.
// Both channels close when the listing is exhausted. Subdirectories are
// skipped: nested data is not part of the intake queue. Archived artifacts
// can never re-appear here because archiving physically removes them.
func (s *Store) ListPending(ctx context.Context, kind string) (<-chan domain.StagedArtifact, <-chan error) {
	artifacts := make(chan domain.StagedArtifact)
	errs := make(chan error, 1)

	go func() {
		defer close(artifacts)
		defer close(errs)

		dir := filepath.Join(s.stagingRoot, kind)
		entries, err := os.ReadDir(dir)
		if err != nil {
			errs <- fmt.Errorf("listing staging for kind %s: %w", kind, err)
			return
		}

		for _, entry := range entries {
			if entry.IsDir() || strings.HasSuffix(entry.Name(), errorSidecarSuffix) {
				continue
			}
			info, err := entry.Info()
			if err != nil {
				// File removed between listing and stat; not an
				// intake failure.
				continue
			}

			artifact := domain.StagedArtifact{
				Path:    filepath.Join(dir, entry.Name()),
				Name:    entry.Name(),
				Kind:    kind,
				ModTime: info.ModTime(),
				Size:    info.Size(),
			}

			select {
			case <-ctx.Done():
				errs <- ctx.Err()
				return
			case artifacts <- artifact:
			}
		}
	}()

	return artifacts, errs
}

// Read returns the artifact's raw bytes.
func (s *Store) Read(artifact domain.StagedArtifact) ([]byte, error) {
	data, err := os.ReadFile(artifact.Path)
	if err != nil {
		return nil, fmt.Errorf("reading artifact %s: %w", artifact.Name, err)
	}
	return data, nil
}

// Archive moves a processed artifact to
// archive/<kind>/<session year>/<type>/<filename> with a rename.
func (s *Store) Archive(artifact domain.StagedArtifact, identity domain.ArtifactIdentity) error {
	dir := filepath.Join(
		s.archiveRoot,
		artifact.Kind,
		strconv.Itoa(domain.SessionYear(identity.Congress)),
		strings.ToLower(identity.DocType),
	)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("creating archive directory: %w", err)
	}
	if err := os.Rename(artifact.Path, filepath.Join(dir, artifact.Name)); err != nil {
		return fmt.Errorf("archiving %s: %w", artifact.Name, err)
	}
	return nil
}

// Quarantine moves a failed artifact to quarantine/<kind>/<filename> and
// writes a sidecar error note naming the failed stage and message.
func (s *Store) Quarantine(artifact domain.StagedArtifact, stage domain.Stage, cause error) error {
	dir := filepath.Join(s.quarantineRoot, artifact.Kind)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("creating quarantine directory: %w", err)
	}
	if err := os.Rename(artifact.Path, filepath.Join(dir, artifact.Name)); err != nil {
		return fmt.Errorf("quarantining %s: %w", artifact.Name, err)
	}

	note := fmt.Sprintf("stage: %s\nerror: %v\n", stage, cause)
	sidecar := filepath.Join(dir, artifact.Name+errorSidecarSuffix)
	if err := os.WriteFile(sidecar, []byte(note), 0600); err != nil {
		return fmt.Errorf("writing error sidecar for %s: %w", artifact.Name, err)
	}
	return nil
}
