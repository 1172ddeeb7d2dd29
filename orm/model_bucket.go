package orm

import (
	"reflect"

	"github.com/solaris-one/bondsale"
	"github.com/solaris-one/bondsale/errors"
)

// Model is implemented by any entity that can be stored using
// ModelBucket.
type Model interface {
	bondsale.Persistent
	Validate() error
}

// ModelSlicePtr represents a pointer to a slice of models. Used when
// loading many models, for example:
//   var bonds []Bond
//   bucket.ByIndex(db, "owner", addr, &bonds)
type ModelSlicePtr interface{}

// ModelBucket is implemented by buckets that operate on Models.
type ModelBucket interface {
	// One queries the database for a single model instance. Lookup is
	// done by the primary key. The result is loaded into the given
	// destination model. This method returns ErrNotFound if the entity
	// does not exist in the database.
	One(db bondsale.ReadOnlyKVStore, key []byte, dest Model) error

	// ByIndex returns all objects that are indexed by given index under
	// given key value. Main index keys of the matching entities are
	// returned, and the models are appended to the destination slice.
	ByIndex(db bondsale.ReadOnlyKVStore, indexName string, key []byte, dest ModelSlicePtr) ([][]byte, error)

	// Put saves given model in the database. A nil key means a new key
	// is acquired from the bucket sequence. The key the model was
	// stored under is returned.
	Put(db bondsale.KVStore, key []byte, m Model) ([]byte, error)

	// Delete removes an entity with given primary key from the
	// database. It returns ErrNotFound if an entity with given key does
	// not exist.
	Delete(db bondsale.KVStore, key []byte) error

	// Has returns nil if an entity with given primary key exists, and
	// ErrNotFound otherwise.
	Has(db bondsale.ReadOnlyKVStore, key []byte) error
}

// Indexer returns the secondary index key of given model. Returning a
// nil key with no error means the model is not indexed.
type Indexer func(Model) ([]byte, error)

// ModelBucketOption configures a ModelBucket during creation.
type ModelBucketOption func(mb *modelBucket)

// WithIDSequence configures the bucket to use given sequence instance
// for generating primary keys of models stored with a nil key.
func WithIDSequence(s Sequence) ModelBucketOption {
	return func(mb *modelBucket) {
		mb.idSeq = &s
	}
}

// WithIndex configures a secondary index on the bucket. When unique is
// true at most one entity may be stored under each index key.
func WithIndex(name string, indexer Indexer, unique bool) ModelBucketOption {
	return func(mb *modelBucket) {
		mb.indexes = append(mb.indexes, bucketIndex{
			name:    name,
			indexer: indexer,
			unique:  unique,
		})
	}
}

type bucketIndex struct {
	name    string
	indexer Indexer
	unique  bool
}

// NewModelBucket returns a ModelBucket instance storing entities of the
// same type as given model under a prefix derived from the bucket name.
func NewModelBucket(name string, m Model, opts ...ModelBucketOption) ModelBucket {
	mb := &modelBucket{
		name:  name,
		model: reflect.TypeOf(m).Elem(),
	}
	for _, opt := range opts {
		opt(mb)
	}
	return mb
}

type modelBucket struct {
	name    string
	model   reflect.Type
	idSeq   *Sequence
	indexes []bucketIndex
}

var _ ModelBucket = (*modelBucket)(nil)

func (mb *modelBucket) dbKey(key []byte) []byte {
	return append([]byte(mb.name+":"), key...)
}

// indexKey builds the full database key of a single index entry. The
// index value is length prefixed so that value/primary-key boundaries
// are unambiguous.
func (mb *modelBucket) indexKey(idx bucketIndex, indexValue, primary []byte) []byte {
	out := mb.indexPrefix(idx, indexValue)
	return append(out, primary...)
}

func (mb *modelBucket) indexPrefix(idx bucketIndex, indexValue []byte) []byte {
	out := []byte("_i." + mb.name + "_" + idx.name + ":")
	out = append(out, byte(len(indexValue)))
	return append(out, indexValue...)
}

func (mb *modelBucket) One(db bondsale.ReadOnlyKVStore, key []byte, dest Model) error {
	raw, err := db.Get(mb.dbKey(key))
	if err != nil {
		return err
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "%T not in the store", dest)
	}
	if reflect.TypeOf(dest).Elem() != mb.model {
		return errors.Wrapf(errors.ErrType, "%T cannot contain %s", dest, mb.model.Name())
	}
	return dest.Unmarshal(raw)
}

func (mb *modelBucket) ByIndex(db bondsale.ReadOnlyKVStore, indexName string, key []byte, dest ModelSlicePtr) ([][]byte, error) {
	idx, err := mb.index(indexName)
	if err != nil {
		return nil, err
	}

	prefix := mb.indexPrefix(idx, key)
	iter, err := db.Iterator(prefix, prefixEnd(prefix))
	if err != nil {
		return nil, errors.Wrap(err, "index iterator")
	}
	defer iter.Release()

	dv := reflect.ValueOf(dest)
	if dv.Kind() != reflect.Ptr || dv.Elem().Kind() != reflect.Slice {
		return nil, errors.Wrapf(errors.ErrType, "%T is not a pointer to a slice", dest)
	}
	slice := dv.Elem()
	sliceOfPointers := slice.Type().Elem().Kind() == reflect.Ptr

	var keys [][]byte
	for {
		fullKey, primary, err := iter.Next()
		switch {
		case err == nil:
			// continue below
		case errors.ErrIteratorDone.Is(err):
			dv.Elem().Set(slice)
			return keys, nil
		default:
			return nil, errors.Wrap(err, "index iterator")
		}
		_ = fullKey

		raw, err := db.Get(mb.dbKey(primary))
		if err != nil {
			return nil, err
		}
		if raw == nil {
			return nil, errors.Wrapf(errors.ErrState, "dangling %q index entry", indexName)
		}
		item := reflect.New(mb.model)
		if err := item.Interface().(Model).Unmarshal(raw); err != nil {
			return nil, errors.Wrap(err, "unmarshal indexed model")
		}
		if sliceOfPointers {
			slice = reflect.Append(slice, item)
		} else {
			slice = reflect.Append(slice, item.Elem())
		}
		keys = append(keys, primary)
	}
}

func (mb *modelBucket) Put(db bondsale.KVStore, key []byte, m Model) ([]byte, error) {
	mt := reflect.TypeOf(m).Elem()
	if mt != mb.model {
		return nil, errors.Wrapf(errors.ErrType, "cannot store %s in %s bucket", mt.Name(), mb.model.Name())
	}
	if err := m.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid model")
	}

	if key == nil {
		if mb.idSeq == nil {
			return nil, errors.Wrap(errors.ErrHuman, "bucket has no ID sequence")
		}
		k, err := mb.idSeq.NextVal(db)
		if err != nil {
			return nil, errors.Wrap(err, "cannot acquire ID")
		}
		key = k
	} else if err := mb.unindex(db, key); err != nil {
		// Replacing an entity must drop its old index entries first.
		return nil, err
	}

	raw, err := m.Marshal()
	if err != nil {
		return nil, errors.Wrap(err, "cannot marshal model")
	}
	if err := db.Set(mb.dbKey(key), raw); err != nil {
		return nil, err
	}
	if err := mb.reindex(db, key, m); err != nil {
		return nil, err
	}
	return key, nil
}

func (mb *modelBucket) Delete(db bondsale.KVStore, key []byte) error {
	if err := mb.Has(db, key); err != nil {
		return err
	}
	if err := mb.unindex(db, key); err != nil {
		return err
	}
	return db.Delete(mb.dbKey(key))
}

func (mb *modelBucket) Has(db bondsale.ReadOnlyKVStore, key []byte) error {
	ok, err := db.Has(mb.dbKey(key))
	if err != nil {
		return err
	}
	if !ok {
		return errors.Wrapf(errors.ErrNotFound, "no %s with given key", mb.model.Name())
	}
	return nil
}

func (mb *modelBucket) index(name string) (bucketIndex, error) {
	for _, idx := range mb.indexes {
		if idx.name == name {
			return idx, nil
		}
	}
	return bucketIndex{}, errors.Wrapf(errors.ErrHuman, "no %q index", name)
}

// reindex writes index entries of given model.
func (mb *modelBucket) reindex(db bondsale.KVStore, key []byte, m Model) error {
	for _, idx := range mb.indexes {
		iv, err := idx.indexer(m)
		if err != nil {
			return errors.Wrapf(err, "index %q", idx.name)
		}
		if iv == nil {
			continue
		}
		if idx.unique {
			prefix := mb.indexPrefix(idx, iv)
			iter, err := db.Iterator(prefix, prefixEnd(prefix))
			if err != nil {
				return err
			}
			existing, err := ReadAllKeys(iter)
			if err != nil {
				return err
			}
			if len(existing) > 0 {
				return errors.Wrapf(errors.ErrDuplicate, "index %q", idx.name)
			}
		}
		if err := db.Set(mb.indexKey(idx, iv, key), key); err != nil {
			return err
		}
	}
	return nil
}

// unindex removes index entries of the entity currently stored under
// given key, if any.
func (mb *modelBucket) unindex(db bondsale.KVStore, key []byte) error {
	raw, err := db.Get(mb.dbKey(key))
	if err != nil {
		return err
	}
	if raw == nil {
		return nil
	}
	old := reflect.New(mb.model).Interface().(Model)
	if err := old.Unmarshal(raw); err != nil {
		return errors.Wrap(err, "unmarshal stored model")
	}
	for _, idx := range mb.indexes {
		iv, err := idx.indexer(old)
		if err != nil {
			return errors.Wrapf(err, "index %q", idx.name)
		}
		if iv == nil {
			continue
		}
		if err := db.Delete(mb.indexKey(idx, iv, key)); err != nil {
			return err
		}
	}
	return nil
}

// ReadAllKeys consumes the iterator, releasing it, and returns all keys
// it produced.
func ReadAllKeys(iter bondsale.Iterator) ([][]byte, error) {
	defer iter.Release()

	var keys [][]byte
	for {
		key, _, err := iter.Next()
		switch {
		case err == nil:
			keys = append(keys, key)
		case errors.ErrIteratorDone.Is(err):
			return keys, nil
		default:
			return nil, errors.Wrap(err, "iterator")
		}
	}
}

// prefixEnd returns the key directly after all keys with given prefix.
// Nil is returned when the prefix is the last representable value.
func prefixEnd(prefix []byte) []byte {
	end := make([]byte, len(prefix))
	copy(end, prefix)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xff {
			end[i]++
			return end[:i+1]
		}
	}
	return nil
}
