package store

// BlockStats aggregates character counts per block across every saved
// sample, largest first.
func (db *DB) BlockStats(limit int) ([]BlockStat, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.Query(`
		SELECT block_name, COUNT(*), SUM(char_count)
		FROM sample_blocks
		GROUP BY block_name
		ORDER BY SUM(char_count) DESC, block_name
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var stats []BlockStat
	for rows.Next() {
		var s BlockStat
		if err := rows.Scan(&s.BlockName, &s.Samples, &s.Chars); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
