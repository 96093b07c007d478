package sqlite

import "database/sql"

// CollectRows scans every remaining row with scan and closes rows.
func CollectRows[T any](rows *sql.Rows, scan func(*sql.Rows, *T) error) ([]T, error) {
	defer rows.Close()

	items := make([]T, 0)

	for rows.Next() {
		var item T

		if err := scan(rows, &item); err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, rows.Err()
}
