package store

import (
	"github.com/solaris-one/bondsale/errors"
)

// SliceIterator is an Iterator over a preloaded slice of models.
type SliceIterator struct {
	data []Model
	idx  int
}

var _ Iterator = (*SliceIterator)(nil)

// NewSliceIterator creates a new Iterator over this slice.
func NewSliceIterator(data []Model) *SliceIterator {
	return &SliceIterator{
		data: data,
	}
}

// Next returns the next key-value pair, or errors.ErrIteratorDone when
// the data set is exhausted.
func (s *SliceIterator) Next() ([]byte, []byte, error) {
	if s.idx >= len(s.data) {
		return nil, nil, errors.ErrIteratorDone
	}
	val := s.data[s.idx]
	s.idx++
	return val.Key, val.Value, nil
}

// Release frees the iterator data.
func (s *SliceIterator) Release() {
	s.data = nil
	s.idx = 0
}

// ReadAll consumes the whole iterator, releasing it, and returns all
// models it produced.
func ReadAll(iter Iterator) ([]Model, error) {
	defer iter.Release()

	var out []Model
	for {
		key, value, err := iter.Next()
		switch {
		case err == nil:
			out = append(out, Model{Key: key, Value: value})
		case errors.ErrIteratorDone.Is(err):
			return out, nil
		default:
			return nil, errors.Wrap(err, "iterator")
		}
	}
}
