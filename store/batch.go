package store

// Op represents a single operation recorded in a batch.
type Op struct {
	// delete is true for deletions, false for writes
	delete bool
	key    []byte
	value  []byte
}

// Apply performs the operation on given store.
func (o Op) Apply(out SetDeleter) error {
	if o.delete {
		return out.Delete(o.key)
	}
	return out.Set(o.key, o.value)
}

// IsSetOp returns true if this operation writes a value.
func (o Op) IsSetOp() bool {
	return !o.delete
}

// Key returns the key this operation works on.
func (o Op) Key() []byte {
	return o.key
}

// SetOp builds an Op to set a value.
func SetOp(key, value []byte) Op {
	return Op{
		delete: false,
		key:    key,
		value:  value,
	}
}

// DelOp builds an Op to delete a key.
func DelOp(key []byte) Op {
	return Op{
		delete: true,
		key:    key,
	}
}

// NonAtomicBatch accumulates operations in memory and writes them to the
// underlying store on demand. It is not atomic with respect to the
// backing store, which is fine when the backing store is an in-memory
// cache layer itself.
type NonAtomicBatch struct {
	out SetDeleter
	ops []Op
}

var _ Batch = (*NonAtomicBatch)(nil)

// NewNonAtomicBatch creates an empty batch that flushes into given
// store.
func NewNonAtomicBatch(out SetDeleter) *NonAtomicBatch {
	return &NonAtomicBatch{
		out: out,
	}
}

// Set adds a write operation to the batch.
func (b *NonAtomicBatch) Set(key, value []byte) error {
	set := Op{
		key:   key,
		value: value,
	}
	b.ops = append(b.ops, set)
	return nil
}

// Delete adds a delete operation to the batch.
func (b *NonAtomicBatch) Delete(key []byte) error {
	del := Op{
		delete: true,
		key:    key,
	}
	b.ops = append(b.ops, del)
	return nil
}

// Write flushes all operations into the underlying store and resets the
// batch.
func (b *NonAtomicBatch) Write() error {
	for _, op := range b.ops {
		if err := op.Apply(b.out); err != nil {
			return err
		}
	}
	b.ops = nil
	return nil
}

// ShowOps returns all ops in this batch, mainly for testing and
// debugging.
func (b *NonAtomicBatch) ShowOps() []Op {
	return b.ops
}
