package store

import "github.com/solaris-one/bondsale"

// Move references for all storage types into this package for shorter
// names everywhere.

type ReadOnlyKVStore = bondsale.ReadOnlyKVStore
type KVStore = bondsale.KVStore
type Batch = bondsale.Batch
type Iterator = bondsale.Iterator
type CacheableKVStore = bondsale.CacheableKVStore
type KVCacheWrap = bondsale.KVCacheWrap

// SetDeleter is a subset of KVStore that a Batch flushes into.
type SetDeleter interface {
	Set(key, value []byte) error
	Delete(key []byte) error
}

// Model groups a key-value pair.
type Model struct {
	Key   []byte
	Value []byte
}
