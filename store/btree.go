package store

import (
	"bytes"
	"sort"

	"github.com/google/btree"
	"github.com/solaris-one/bondsale/errors"
)

const (
	// DefaultFreeListSize is the size we hold for free nodes in btree.
	DefaultFreeListSize = btree.DefaultFreeListSize

	// degree is the branching factor of the cache btrees.
	degree = 2
)

// BTreeCacheable adds a simple btree-based CacheWrap strategy to a
// KVStore.
type BTreeCacheable struct {
	KVStore
}

var _ CacheableKVStore = BTreeCacheable{}

// CacheWrap returns a BTreeCacheWrap that can be later written to this
// store, or rolled back.
func (b BTreeCacheable) CacheWrap() KVCacheWrap {
	return NewBTreeCacheWrap(b.KVStore, b.KVStore.NewBatch(), nil)
}

// MemStore returns a simple implementation useful for tests. There is no
// persistence here.
func MemStore() CacheableKVStore {
	e := EmptyKVStore{}
	return NewBTreeCacheWrap(e, e.NewBatch(), nil)
}

// BTreeCacheWrap places a btree cache over a KVStore.
type BTreeCacheWrap struct {
	bt    *btree.BTree
	free  *btree.FreeList
	back  ReadOnlyKVStore
	batch Batch
}

var _ KVCacheWrap = BTreeCacheWrap{}

// NewBTreeCacheWrap initializes a BTree to cache around this kv store.
// Use ReadOnlyKVStore to emphasize that all writes must go through the
// Batch.
//
// free may be nil, but set to an existing list to reuse it for memory
// savings.
func NewBTreeCacheWrap(kv ReadOnlyKVStore, batch Batch, free *btree.FreeList) BTreeCacheWrap {
	if free == nil {
		free = btree.NewFreeList(DefaultFreeListSize)
	}
	return BTreeCacheWrap{
		bt:    btree.NewWithFreeList(degree, free),
		free:  free,
		back:  kv,
		batch: batch,
	}
}

// CacheWrap layers another BTree on top of this one. Don't change horses
// in mid-stream. Uses NonAtomicBatch as it is only backed by another
// in-memory batch.
func (b BTreeCacheWrap) CacheWrap() KVCacheWrap {
	return NewBTreeCacheWrap(b, b.NewBatch(), b.free)
}

// NewBatch returns a non-atomic batch that eventually may write to our
// cachewrap.
func (b BTreeCacheWrap) NewBatch() Batch {
	return NewNonAtomicBatch(b)
}

// Write syncs with the underlying store and then cleans up.
func (b BTreeCacheWrap) Write() error {
	err := b.batch.Write()
	b.Discard()
	return err
}

// Discard invalidates this CacheWrap and releases all data.
func (b BTreeCacheWrap) Discard() {
	for stop := false; !stop; {
		rem := b.bt.DeleteMin()
		stop = (rem == nil)
	}
}

// Set writes to the BTree and to the batch.
func (b BTreeCacheWrap) Set(key, value []byte) error {
	b.bt.ReplaceOrInsert(newSetItem(key, value))
	return b.batch.Set(key, value)
}

// Delete deletes from the BTree and marks the deletion in the batch.
func (b BTreeCacheWrap) Delete(key []byte) error {
	b.bt.ReplaceOrInsert(newDeletedItem(key))
	return b.batch.Delete(key)
}

// Get reads from the BTree if the key was written in this cache,
// otherwise it falls back to the backing store.
func (b BTreeCacheWrap) Get(key []byte) ([]byte, error) {
	if key == nil {
		return nil, errors.Wrap(errors.ErrHuman, "nil key")
	}
	res := b.bt.Get(bkey{key})
	switch t := res.(type) {
	case setItem:
		return t.value, nil
	case deletedItem:
		return nil, nil
	case nil:
		return b.back.Get(key)
	default:
		return nil, errors.Wrapf(errors.ErrHuman, "unknown cache item %T", t)
	}
}

// Has reads from the BTree if the key was written in this cache,
// otherwise it falls back to the backing store.
func (b BTreeCacheWrap) Has(key []byte) (bool, error) {
	if key == nil {
		return false, errors.Wrap(errors.ErrHuman, "nil key")
	}
	res := b.bt.Get(bkey{key})
	switch t := res.(type) {
	case setItem:
		return true, nil
	case deletedItem:
		return false, nil
	case nil:
		return b.back.Has(key)
	default:
		return false, errors.Wrapf(errors.ErrHuman, "unknown cache item %T", t)
	}
}

// Iterator over a domain of keys in ascending order. Merges the cached
// writes with the backing data.
func (b BTreeCacheWrap) Iterator(start, end []byte) (Iterator, error) {
	models, err := b.merged(start, end)
	if err != nil {
		return nil, err
	}
	return NewSliceIterator(models), nil
}

// ReverseIterator over a domain of keys in descending order.
func (b BTreeCacheWrap) ReverseIterator(start, end []byte) (Iterator, error) {
	models, err := b.merged(start, end)
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(models)-1; i < j; i, j = i+1, j-1 {
		models[i], models[j] = models[j], models[i]
	}
	return NewSliceIterator(models), nil
}

// merged produces an ascending list of all key-value pairs within
// [start, end), with cached writes taking precedence over the backing
// store and cached deletes removing backing pairs.
func (b BTreeCacheWrap) merged(start, end []byte) ([]Model, error) {
	iter, err := b.back.Iterator(start, end)
	if err != nil {
		return nil, errors.Wrap(err, "backing iterator")
	}
	backing, err := ReadAll(iter)
	if err != nil {
		return nil, err
	}

	overlay := make(map[string]keyItem)
	walk := func(i btree.Item) bool {
		item := i.(keyItem)
		overlay[string(item.key())] = item
		return true
	}
	switch {
	case start == nil && end == nil:
		b.bt.Ascend(walk)
	case start == nil:
		b.bt.AscendLessThan(bkey{end}, walk)
	case end == nil:
		b.bt.AscendGreaterOrEqual(bkey{start}, walk)
	default:
		b.bt.AscendRange(bkey{start}, bkey{end}, walk)
	}

	var models []Model
	for _, m := range backing {
		if item, ok := overlay[string(m.Key)]; ok {
			if set, isSet := item.(setItem); isSet {
				models = append(models, Model{Key: set.bkey.k, Value: set.value})
			}
			delete(overlay, string(m.Key))
			continue
		}
		models = append(models, m)
	}
	for _, item := range overlay {
		if set, ok := item.(setItem); ok {
			models = append(models, Model{Key: set.bkey.k, Value: set.value})
		}
	}
	sort.Slice(models, func(i, j int) bool {
		return bytes.Compare(models[i].Key, models[j].Key) < 0
	})
	return models, nil
}

// ----- btree items -----

// bkey implements btree.Item and is used for lookups. Both setItem and
// deletedItem embed it so all three compare by key.
type bkey struct {
	k []byte
}

func (k bkey) Less(item btree.Item) bool {
	cmp := item.(keyItem).key()
	return bytes.Compare(k.k, cmp) < 0
}

func (k bkey) key() []byte {
	return k.k
}

// keyItem is implemented by all items stored in the cache btree.
type keyItem interface {
	btree.Item
	key() []byte
}

type setItem struct {
	bkey
	value []byte
}

func newSetItem(key, value []byte) setItem {
	return setItem{bkey: bkey{key}, value: value}
}

type deletedItem struct {
	bkey
}

func newDeletedItem(key []byte) deletedItem {
	return deletedItem{bkey{key}}
}
