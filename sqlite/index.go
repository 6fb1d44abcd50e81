package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/fwojciec/confindex"
)

// Compile-time interface verification.
var _ confindex.IndexService = (*IndexService)(nil)

// IndexService implements confindex.IndexService using SQLite.
type IndexService struct {
	db *DB
}

// NewIndexService creates a new IndexService.
func NewIndexService(db *DB) *IndexService {
	return &IndexService{db: db}
}

// CreateIndex stores a confession with its units and scripture references.
// Unit IDs are stored as assigned by the parser.
func (s *IndexService) CreateIndex(ctx context.Context, idx *confindex.Index) error {
	if err := idx.Validate(); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	c := idx.Confession

	var exists int
	err = tx.QueryRowContext(ctx, "SELECT 1 FROM confessions WHERE file_name = ?", c.FileName).Scan(&exists)
	if err == nil {
		return confindex.Errorf(confindex.ECONFLICT, "confession %q already indexed", c.FileName)
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	result, err := tx.ExecContext(ctx, `
		INSERT INTO confessions (file_name, title, country, tradition, year, quiz, content_hash)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, c.FileName, c.Title, c.Country, c.Tradition, c.Year, c.Quiz, c.ContentHash)
	if err != nil {
		return fmt.Errorf("failed to insert confession: %w", err)
	}
	confessionID, err := result.LastInsertId()
	if err != nil {
		return err
	}

	for _, unit := range idx.SearchIndex {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO search_index (id, confession_id, file_name, title, contents)
			VALUES (?, ?, ?, ?, ?)
		`, unit.ID, confessionID, unit.FileName, unit.Title, unit.Contents); err != nil {
			return fmt.Errorf("failed to insert search index %d: %w", unit.ID, err)
		}
	}

	refIDs := make([]int64, len(idx.ScriptureIndex))
	for i, ref := range idx.ScriptureIndex {
		result, err := tx.ExecContext(ctx, `
			INSERT INTO scripture_index (search_index_id, address, reference, book, chapter_number)
			VALUES (?, ?, ?, ?, ?)
		`, ref.SearchIndexID, ref.Address, ref.Reference, ref.Book, ref.ChapterNumber)
		if err != nil {
			return fmt.Errorf("failed to insert scripture index %q: %w", ref.Reference, err)
		}
		if refIDs[i], err = result.LastInsertId(); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	// Assign generated IDs only once the transaction has committed.
	c.ID = confessionID
	for _, unit := range idx.SearchIndex {
		unit.ConfessionID = confessionID
	}
	for i, ref := range idx.ScriptureIndex {
		ref.ID = refIDs[i]
	}
	return nil
}

// FindConfessions retrieves confessions matching the filter, ordered by ID.
func (s *IndexService) FindConfessions(ctx context.Context, filter confindex.ConfessionFilter) ([]*confindex.Confession, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT id, file_name, title, country, tradition, year, quiz, content_hash FROM confessions WHERE 1=1`)

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.FileName != nil {
		query.WriteString(" AND file_name = ?")
		args = append(args, *filter.FileName)
	}
	if filter.Tradition != nil {
		query.WriteString(" AND tradition = ?")
		args = append(args, *filter.Tradition)
	}

	query.WriteString(" ORDER BY id")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var confessions []*confindex.Confession
	for rows.Next() {
		var c confindex.Confession
		if err := rows.Scan(&c.ID, &c.FileName, &c.Title, &c.Country, &c.Tradition, &c.Year, &c.Quiz, &c.ContentHash); err != nil {
			return nil, err
		}
		confessions = append(confessions, &c)
	}

	return confessions, rows.Err()
}

// FindSearchIndex retrieves units matching the filter, ordered by ID.
func (s *IndexService) FindSearchIndex(ctx context.Context, filter confindex.SearchIndexFilter) ([]*confindex.SearchIndex, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT id, confession_id, file_name, title, contents FROM search_index WHERE 1=1`)

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.ConfessionID != nil {
		query.WriteString(" AND confession_id = ?")
		args = append(args, *filter.ConfessionID)
	}
	if filter.Query != nil {
		pattern := likePattern(*filter.Query)
		query.WriteString(` AND (contents LIKE ? ESCAPE '\' OR title LIKE ? ESCAPE '\')`)
		args = append(args, pattern, pattern)
	}

	query.WriteString(" ORDER BY id")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var units []*confindex.SearchIndex
	for rows.Next() {
		var u confindex.SearchIndex
		if err := rows.Scan(&u.ID, &u.ConfessionID, &u.FileName, &u.Title, &u.Contents); err != nil {
			return nil, err
		}
		units = append(units, &u)
	}

	return units, rows.Err()
}

// FindScriptureIndex retrieves scripture references matching the filter,
// ordered by unit and then by insertion.
func (s *IndexService) FindScriptureIndex(ctx context.Context, filter confindex.ScriptureIndexFilter) ([]*confindex.ScriptureIndex, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT id, search_index_id, address, reference, book, chapter_number FROM scripture_index WHERE 1=1`)

	if filter.SearchIndexID != nil {
		query.WriteString(" AND search_index_id = ?")
		args = append(args, *filter.SearchIndexID)
	}
	if filter.Book != nil {
		query.WriteString(" AND book = ?")
		args = append(args, *filter.Book)
	}
	if filter.ChapterNumber != nil {
		query.WriteString(" AND chapter_number = ?")
		args = append(args, *filter.ChapterNumber)
	}

	query.WriteString(" ORDER BY search_index_id, id")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var refs []*confindex.ScriptureIndex
	for rows.Next() {
		var r confindex.ScriptureIndex
		if err := rows.Scan(&r.ID, &r.SearchIndexID, &r.Address, &r.Reference, &r.Book, &r.ChapterNumber); err != nil {
			return nil, err
		}
		refs = append(refs, &r)
	}

	return refs, rows.Err()
}

// DeleteConfession permanently removes a confession with its index entries.
func (s *IndexService) DeleteConfession(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM confessions WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return confindex.Errorf(confindex.ENOTFOUND, "confession not found")
	}

	return nil
}

// LastSearchIndexID returns the highest stored unit ID, or 0 when empty.
func (s *IndexService) LastSearchIndexID(ctx context.Context) (int64, error) {
	var id int64
	if err := s.db.QueryRowContext(ctx, "SELECT COALESCE(MAX(id), 0) FROM search_index").Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// ReplaceSynonyms replaces the stored synonym table, preserving order.
func (s *IndexService) ReplaceSynonyms(ctx context.Context, synonyms []confindex.Synonym) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM synonyms"); err != nil {
		return err
	}
	for i, syn := range synonyms {
		if syn.AlternateWord == "" {
			return confindex.Errorf(confindex.EINVALID, "synonym alternate word required")
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO synonyms (position, alternate_word, preferred_word) VALUES (?, ?, ?)
		`, i+1, syn.AlternateWord, syn.PreferredWord); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindSynonyms returns the stored synonym table in order.
func (s *IndexService) FindSynonyms(ctx context.Context) ([]confindex.Synonym, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT alternate_word, preferred_word FROM synonyms ORDER BY position")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var synonyms []confindex.Synonym
	for rows.Next() {
		var syn confindex.Synonym
		if err := rows.Scan(&syn.AlternateWord, &syn.PreferredWord); err != nil {
			return nil, err
		}
		synonyms = append(synonyms, syn)
	}

	return synonyms, rows.Err()
}

// Reset drops and recreates every table.
func (s *IndexService) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, dropSchema); err != nil {
		return fmt.Errorf("failed to drop schema: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
