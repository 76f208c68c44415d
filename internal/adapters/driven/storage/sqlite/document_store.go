package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/openlegis/lexfeed/internal/core/domain"
	"github.com/openlegis/lexfeed/internal/core/ports/driven"
)

// documentStore implements driven.DocumentStore.
type documentStore struct {
	store *Store
}

var _ driven.DocumentStore = (*documentStore)(nil)

// Upsert atomically inserts or updates a document keyed by its composite
// identity. Sponsors and actions are deleted and re-inserted in the same
// transaction; re-ingestion is the authoritative refresh mechanism.
func (s *documentStore) Upsert(ctx context.Context, doc *domain.Document) (domain.PersistResult, error) {
	if doc == nil {
		return 0, &domain.PersistenceError{Op: "upsert", Err: domain.ErrInvalidInput}
	}

	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, &domain.PersistenceError{Op: "begin", Err: err}
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	now := time.Now().UTC()

	// The pre-check only distinguishes insert from update for the caller;
	// the write itself resolves conflicts natively. Transactions open
	// immediate, so the check cannot race another writer.
	result := domain.PersistInserted
	var existingID int64
	row := tx.QueryRowContext(ctx, `
		SELECT id FROM documents
		WHERE doc_type = ? AND doc_number = ? AND session_year = ?
	`, doc.DocType, doc.Number, doc.SessionYear)
	switch err := row.Scan(&existingID); {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return 0, &domain.PersistenceError{Op: "select document", Err: err}
	default:
		result = domain.PersistUpdated
	}

	var docID int64
	if err := tx.QueryRowContext(ctx, `
		INSERT INTO documents (doc_type, doc_number, session_year, title, text_body,
			origin_congress, origin_source, origin_published, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(doc_type, doc_number, session_year) DO UPDATE SET
			title = excluded.title,
			text_body = excluded.text_body,
			origin_congress = excluded.origin_congress,
			origin_source = excluded.origin_source,
			origin_published = excluded.origin_published,
			updated_at = excluded.updated_at
		RETURNING id
	`, doc.DocType, doc.Number, doc.SessionYear, doc.Title, doc.Text,
		doc.Provenance.Congress, doc.Provenance.Source, doc.Provenance.Published,
		now, now).Scan(&docID); err != nil {
		return 0, &domain.PersistenceError{Op: "upsert document", Err: err}
	}

	// Replace children wholesale for this identity.
	for _, table := range []string{"sponsors", "actions"} {
		if _, err := tx.ExecContext(ctx,
			fmt.Sprintf("DELETE FROM %s WHERE document_id = ?", table), docID,
		); err != nil {
			return 0, &domain.PersistenceError{Op: "delete " + table, Err: err}
		}
	}

	for i, sp := range doc.Sponsors {
		var legislatorID interface{}
		if sp.LegislatorID != nil {
			legislatorID = *sp.LegislatorID
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO sponsors (document_id, name, party, state, legislator_id, position)
			VALUES (?, ?, ?, ?, ?, ?)
		`, docID, sp.Name, sp.Party, sp.State, legislatorID, i); err != nil {
			return 0, &domain.PersistenceError{Op: "insert sponsor", Err: err}
		}
	}

	for _, a := range doc.Actions {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO actions (document_id, occurred_on, chamber, action_type, action_text, position)
			VALUES (?, ?, ?, ?, ?, ?)
		`, docID, a.Date, string(a.Chamber), string(a.Type), a.Text, a.Position); err != nil {
			return 0, &domain.PersistenceError{Op: "insert action", Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, &domain.PersistenceError{Op: "commit", Err: err}
	}
	return result, nil
}

// Get retrieves a document with its children by composite identity.
func (s *documentStore) Get(ctx context.Context, docType string, number, sessionYear int) (*domain.Document, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, doc_type, doc_number, session_year, title, text_body,
			origin_congress, origin_source, origin_published, created_at, updated_at
		FROM documents
		WHERE doc_type = ? AND doc_number = ? AND session_year = ?
	`, docType, number, sessionYear)

	var docID int64
	doc, err := scanDocument(row.Scan, &docID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning document: %w", err)
	}

	if doc.Sponsors, err = s.sponsors(ctx, docID); err != nil {
		return nil, err
	}
	if doc.Actions, err = s.actions(ctx, docID); err != nil {
		return nil, err
	}

	return doc, nil
}

// List returns documents without child collections, optionally filtered by
// session year.
func (s *documentStore) List(ctx context.Context, sessionYear int) ([]domain.Document, error) {
	query := `
		SELECT id, doc_type, doc_number, session_year, title, text_body,
			origin_congress, origin_source, origin_published, created_at, updated_at
		FROM documents`
	args := []interface{}{}
	if sessionYear != 0 {
		query += " WHERE session_year = ?"
		args = append(args, sessionYear)
	}
	query += " ORDER BY session_year, doc_type, doc_number"

	rows, err := s.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying documents: %w", err)
	}
	defer rows.Close()

	var docs []domain.Document //nolint:prealloc // size unknown from query
	for rows.Next() {
		var docID int64
		doc, err := scanDocument(rows.Scan, &docID)
		if err != nil {
			return nil, fmt.Errorf("scanning document: %w", err)
		}
		docs = append(docs, *doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating documents: %w", err)
	}
	return docs, nil
}

// sponsors loads a document's sponsors in source order.
func (s *documentStore) sponsors(ctx context.Context, docID int64) ([]domain.Sponsor, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT name, party, state, legislator_id
		FROM sponsors WHERE document_id = ? ORDER BY position
	`, docID)
	if err != nil {
		return nil, fmt.Errorf("querying sponsors: %w", err)
	}
	defer rows.Close()

	var sponsors []domain.Sponsor //nolint:prealloc // size unknown from query
	for rows.Next() {
		var sp domain.Sponsor
		var legislatorID sql.NullString
		if err := rows.Scan(&sp.Name, &sp.Party, &sp.State, &legislatorID); err != nil {
			return nil, fmt.Errorf("scanning sponsor: %w", err)
		}
		if legislatorID.Valid {
			sp.LegislatorID = &legislatorID.String
		}
		sponsors = append(sponsors, sp)
	}
	return sponsors, rows.Err()
}

// actions loads a document's actions in their persisted order.
func (s *documentStore) actions(ctx context.Context, docID int64) ([]domain.Action, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT occurred_on, chamber, action_type, action_text, position
		FROM actions WHERE document_id = ? ORDER BY occurred_on, position
	`, docID)
	if err != nil {
		return nil, fmt.Errorf("querying actions: %w", err)
	}
	defer rows.Close()

	var actions []domain.Action //nolint:prealloc // size unknown from query
	for rows.Next() {
		var a domain.Action
		var occurred sql.NullTime
		var chamber, atype string
		if err := rows.Scan(&occurred, &chamber, &atype, &a.Text, &a.Position); err != nil {
			return nil, fmt.Errorf("scanning action: %w", err)
		}
		if occurred.Valid {
			a.Date = occurred.Time
		}
		a.Chamber = domain.Chamber(chamber)
		a.Type = domain.ActionType(atype)
		actions = append(actions, a)
	}
	return actions, rows.Err()
}

// scanDocument scans a document row shared by Get and List.
func scanDocument(scan func(...any) error, docID *int64) (*domain.Document, error) {
	var doc domain.Document
	var published, createdAt, updatedAt sql.NullTime
	if err := scan(docID, &doc.DocType, &doc.Number, &doc.SessionYear,
		&doc.Title, &doc.Text, &doc.Provenance.Congress, &doc.Provenance.Source,
		&published, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	if published.Valid {
		doc.Provenance.Published = published.Time
	}
	if createdAt.Valid {
		doc.CreatedAt = createdAt.Time
	}
	if updatedAt.Valid {
		doc.UpdatedAt = updatedAt.Time
	}
	return &doc, nil
}
