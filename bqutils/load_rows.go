package bqutils

import (
	"errors"

	"google.golang.org/api/iterator"

	"github.com/doitintl/bq-audit/bqutils/iface"
)

// LoadRows drains the iterator into a slice of typed rows.
func LoadRows[T any](iter iface.RowIterator) ([]T, error) {
	var rows []T

	for {
		var row T

		err := iter.Next(&row)
		if err != nil {
			if errors.Is(err, iterator.Done) {
				break
			}

			return nil, err
		}

		rows = append(rows, row)
	}

	return rows, nil
}
