package bqutils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"google.golang.org/api/iterator"

	"github.com/doitintl/bq-audit/bqutils/mocks"
)

type testRow struct {
	Name  string
	Count int64
}

func TestLoadRows(t *testing.T) {
	t.Run("loads all rows until done", func(t *testing.T) {
		iter := mocks.NewRowIterator(t)

		rows := []testRow{
			{Name: "first", Count: 1},
			{Name: "second", Count: 2},
		}

		i := 0

		iter.On("Next", mock.AnythingOfType("*bqutils.testRow")).
			Return(func(dst interface{}) error {
				if i >= len(rows) {
					return iterator.Done
				}

				*dst.(*testRow) = rows[i]
				i++

				return nil
			}).Times(3)

		got, err := LoadRows[testRow](iter)

		assert.NoError(t, err)
		assert.Equal(t, rows, got)
	})

	t.Run("empty iterator yields nil slice", func(t *testing.T) {
		iter := mocks.NewRowIterator(t)
		iter.On("Next", mock.Anything).Return(iterator.Done).Once()

		got, err := LoadRows[testRow](iter)

		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("propagates iterator error", func(t *testing.T) {
		someErr := errors.New("read failed")

		iter := mocks.NewRowIterator(t)
		iter.On("Next", mock.Anything).Return(someErr).Once()

		got, err := LoadRows[testRow](iter)

		assert.ErrorIs(t, err, someErr)
		assert.Nil(t, got)
	})
}
