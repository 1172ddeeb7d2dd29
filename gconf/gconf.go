package gconf

import (
	"github.com/solaris-one/bondsale"
	"github.com/solaris-one/bondsale/errors"
)

// ValidMarshaler is implemented by objects that can serialize themselves
// to a binary representation and sanity check their content.
type ValidMarshaler interface {
	Marshal() ([]byte, error)
	Validate() error
}

// Configuration combines serialization with deserialization. This
// interface is implemented by all protobuf configuration messages.
type Configuration interface {
	ValidMarshaler
	Unmarshal([]byte) error
}

func confKey(pkg string) []byte {
	return []byte("_c:" + pkg)
}

// Save validates the object before writing it to the special
// "configuration" singleton for that package name.
func Save(db bondsale.KVStore, pkg string, src ValidMarshaler) error {
	key := confKey(pkg)
	if err := src.Validate(); err != nil {
		return errors.Wrapf(err, "validation: key %q", key)
	}
	raw, err := src.Marshal()
	if err != nil {
		return errors.Wrapf(err, "marshal: key %q", key)
	}
	return db.Set(key, raw)
}

// Load reads the configuration singleton of given package into the
// destination. ErrNotFound is returned when no configuration was saved.
func Load(db bondsale.ReadOnlyKVStore, pkg string, dst Configuration) error {
	key := confKey(pkg)
	raw, err := db.Get(key)
	if err != nil {
		return err
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "key %q", key)
	}
	if err := dst.Unmarshal(raw); err != nil {
		return errors.Wrapf(err, "unmarshal: key %q", key)
	}
	return nil
}

// InitConfig takes opts["conf"][pkg], parses it into the given
// Configuration object, validates it, and stores it under the proper key
// in the database. Returns an error if anything goes wrong.
func InitConfig(db bondsale.KVStore, opts bondsale.Options, pkg string, conf Configuration) error {
	var confOptions bondsale.Options
	if err := opts.ReadOptions("conf", &confOptions); err != nil {
		return errors.Wrap(err, "read conf")
	}
	if confOptions[pkg] == nil {
		return errors.Wrapf(errors.ErrNotFound, "no configuration in genesis for %q package", pkg)
	}
	if err := confOptions.ReadOptions(pkg, conf); err != nil {
		return errors.Wrapf(err, "read configuration for %s", pkg)
	}
	if err := Save(db, pkg, conf); err != nil {
		return errors.Wrapf(err, "save configuration for %s", pkg)
	}
	return nil
}
