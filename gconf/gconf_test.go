package gconf

import (
	"encoding/json"
	"testing"

	"github.com/solaris-one/bondsale"
	"github.com/solaris-one/bondsale/bondsaletest/assert"
	"github.com/solaris-one/bondsale/errors"
	"github.com/solaris-one/bondsale/store"
)

// jsonConf is a minimal configuration for testing. JSON is enough of a
// serialization here.
type jsonConf struct {
	Ticker string `json:"ticker"`
}

func (c *jsonConf) Marshal() ([]byte, error) {
	return json.Marshal(c)
}

func (c *jsonConf) Unmarshal(raw []byte) error {
	return json.Unmarshal(raw, c)
}

func (c *jsonConf) Validate() error {
	if c.Ticker == "" {
		return errors.Wrap(errors.ErrEmpty, "ticker")
	}
	return nil
}

func TestSaveAndLoad(t *testing.T) {
	db := store.MemStore()

	assert.Nil(t, Save(db, "mypkg", &jsonConf{Ticker: "SOL"}))

	var got jsonConf
	assert.Nil(t, Load(db, "mypkg", &got))
	assert.Equal(t, "SOL", got.Ticker)

	// Namespaces do not leak into each other.
	err := Load(db, "otherpkg", &got)
	assert.IsErr(t, errors.ErrNotFound, err)
}

func TestSaveRejectsInvalid(t *testing.T) {
	db := store.MemStore()
	if err := Save(db, "mypkg", &jsonConf{}); err == nil {
		t.Fatal("expected a validation error")
	}
}

func TestInitConfig(t *testing.T) {
	db := store.MemStore()
	opts := bondsale.Options{
		"conf": []byte(`{"mypkg": {"ticker": "SOL"}}`),
	}

	var conf jsonConf
	assert.Nil(t, InitConfig(db, opts, "mypkg", &conf))
	assert.Equal(t, "SOL", conf.Ticker)

	var got jsonConf
	assert.Nil(t, Load(db, "mypkg", &got))
	assert.Equal(t, "SOL", got.Ticker)

	err := InitConfig(db, opts, "unknown", &conf)
	assert.IsErr(t, errors.ErrNotFound, err)
}
