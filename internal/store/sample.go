package store

import (
	"database/sql"
	"fmt"
	"time"
)

const sampleColumns = `id, body, share_token, char_count, block_count, substituted_count, created_at, updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanSample(row scanner) (*Sample, error) {
	var s Sample
	err := row.Scan(&s.ID, &s.Body, &s.ShareToken, &s.CharCount, &s.BlockCount, &s.SubstitutedCount, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// UpsertSample inserts or replaces a sample and its block counts in one
// transaction (idempotent on id). The original created_at is kept.
// It reports whether the sample was new.
func (db *DB) UpsertSample(s *Sample) (bool, error) {
	tx, err := db.Begin()
	if err != nil {
		return false, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var createdAt int64
	err = tx.QueryRow(`SELECT created_at FROM samples WHERE id = ?`, s.ID).Scan(&createdAt)
	created := err == sql.ErrNoRows
	if err != nil && !created {
		return false, fmt.Errorf("check sample: %w", err)
	}

	now := time.Now().UnixMilli()
	switch {
	case !created:
		s.CreatedAt = createdAt
	case s.CreatedAt == 0:
		s.CreatedAt = now
	}
	s.UpdatedAt = now
	if _, err := tx.Exec(`
		INSERT INTO samples (`+sampleColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			body = excluded.body,
			share_token = excluded.share_token,
			char_count = excluded.char_count,
			block_count = excluded.block_count,
			substituted_count = excluded.substituted_count,
			updated_at = excluded.updated_at`,
		s.ID, s.Body, s.ShareToken, s.CharCount, s.BlockCount, s.SubstitutedCount, s.CreatedAt, s.UpdatedAt); err != nil {
		return false, fmt.Errorf("upsert sample: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM sample_blocks WHERE sample_id = ?`, s.ID); err != nil {
		return false, fmt.Errorf("clear sample blocks: %w", err)
	}
	for _, b := range s.Blocks {
		if _, err := tx.Exec(`
			INSERT INTO sample_blocks (sample_id, block_name, char_count, first_index)
			VALUES (?, ?, ?, ?)`,
			s.ID, b.BlockName, b.CharCount, b.FirstIndex); err != nil {
			return false, fmt.Errorf("insert sample block %q: %w", b.BlockName, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit sample: %w", err)
	}
	return created, nil
}

// GetSample returns a sample with its blocks, or nil if it does not exist.
func (db *DB) GetSample(id string) (*Sample, error) {
	s, err := scanSample(db.QueryRow(`SELECT `+sampleColumns+` FROM samples WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`
		SELECT block_name, char_count, first_index
		FROM sample_blocks
		WHERE sample_id = ?
		ORDER BY first_index`, id)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	for rows.Next() {
		var b SampleBlock
		if err := rows.Scan(&b.BlockName, &b.CharCount, &b.FirstIndex); err != nil {
			return nil, err
		}
		s.Blocks = append(s.Blocks, b)
	}
	return s, rows.Err()
}

// ListSamples returns samples, most recently updated first. Blocks are not
// loaded.
func (db *DB) ListSamples(limit, offset int) ([]Sample, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	rows, err := db.Query(`
		SELECT `+sampleColumns+`
		FROM samples
		ORDER BY updated_at DESC, id
		LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var samples []Sample
	for rows.Next() {
		s, err := scanSample(rows)
		if err != nil {
			return nil, err
		}
		samples = append(samples, *s)
	}
	return samples, rows.Err()
}

// DeleteSample removes a sample and, through the foreign key, its blocks.
// It reports whether the sample existed.
func (db *DB) DeleteSample(id string) (bool, error) {
	res, err := db.Exec(`DELETE FROM samples WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// SampleCount returns the number of saved samples.
func (db *DB) SampleCount() (int, error) {
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM samples`).Scan(&n)
	return n, err
}
