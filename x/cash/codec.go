package cash

import (
	"github.com/gogo/protobuf/proto"

	"github.com/solaris-one/bondsale"
	"github.com/solaris-one/bondsale/coin"
	"github.com/solaris-one/bondsale/errors"
)

// Wallet is the set of coins held by a single account. The account
// address is the wallet key and is not repeated in the value.
type Wallet struct {
	Coins []*coin.Coin `protobuf:"bytes,1,rep,name=coins,proto3" json:"coins,omitempty"`
}

var _ proto.Message = (*Wallet)(nil)

func (w *Wallet) Reset()         { *w = Wallet{} }
func (w *Wallet) String() string { return proto.CompactTextString(w) }
func (*Wallet) ProtoMessage()    {}

type rawWallet Wallet

func (w *rawWallet) Reset()         { *w = rawWallet{} }
func (w *rawWallet) String() string { return proto.CompactTextString(w) }
func (*rawWallet) ProtoMessage()    {}

func (w *Wallet) Marshal() ([]byte, error) {
	return proto.Marshal((*rawWallet)(w))
}

func (w *Wallet) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*rawWallet)(w))
}

// Validate ensures every coin is well formed and tickers are unique.
func (w *Wallet) Validate() error {
	if w == nil {
		return errors.Wrap(errors.ErrEmpty, "wallet")
	}
	seen := make(map[string]struct{}, len(w.Coins))
	for i, c := range w.Coins {
		if c == nil {
			return errors.Wrapf(errors.ErrEmpty, "coin %d", i)
		}
		if err := c.Validate(); err != nil {
			return errors.Wrapf(err, "coin %d", i)
		}
		if _, ok := seen[c.Ticker]; ok {
			return errors.Wrapf(errors.ErrDuplicate, "ticker %s", c.Ticker)
		}
		seen[c.Ticker] = struct{}{}
	}
	return nil
}

// Balance returns the amount of given ticker held. A missing ticker is
// a zero balance, not an error.
func (w *Wallet) Balance(ticker string) coin.Coin {
	for _, c := range w.Coins {
		if c.Ticker == ticker {
			return *c
		}
	}
	return coin.NewCoin(0, ticker)
}

// Add merges given funds into the wallet. Adding a negative amount is
// rejected by the coin arithmetic. Tickers that drop to zero are
// removed so empty wallets stay empty.
func (w *Wallet) Add(c coin.Coin) error {
	for i, have := range w.Coins {
		if have.Ticker != c.Ticker {
			continue
		}
		sum, err := have.Add(c)
		if err != nil {
			return err
		}
		if sum.IsZero() {
			w.Coins = append(w.Coins[:i], w.Coins[i+1:]...)
		} else {
			w.Coins[i] = &sum
		}
		return nil
	}
	if c.IsZero() {
		return nil
	}
	w.Coins = append(w.Coins, &c)
	return nil
}

// Subtract removes given funds from the wallet. It fails when the
// wallet does not hold enough of the ticker.
func (w *Wallet) Subtract(c coin.Coin) error {
	if c.IsZero() {
		return nil
	}
	have := w.Balance(c.Ticker)
	rest, err := have.Subtract(c)
	if err != nil {
		return err
	}
	for i := range w.Coins {
		if w.Coins[i].Ticker != c.Ticker {
			continue
		}
		if rest.IsZero() {
			w.Coins = append(w.Coins[:i], w.Coins[i+1:]...)
		} else {
			w.Coins[i] = &rest
		}
		return nil
	}
	return errors.Wrapf(errors.ErrAmount, "no %s in wallet", c.Ticker)
}

// Minter names the single account allowed to issue new coins of a
// ticker. The ticker is the record key.
type Minter struct {
	Authority bondsale.Address `protobuf:"bytes,1,opt,name=authority,proto3,casttype=github.com/solaris-one/bondsale.Address" json:"authority,omitempty"`
}

var _ proto.Message = (*Minter)(nil)

func (m *Minter) Reset()         { *m = Minter{} }
func (m *Minter) String() string { return proto.CompactTextString(m) }
func (*Minter) ProtoMessage()    {}

type rawMinter Minter

func (m *rawMinter) Reset()         { *m = rawMinter{} }
func (m *rawMinter) String() string { return proto.CompactTextString(m) }
func (*rawMinter) ProtoMessage()    {}

func (m *Minter) Marshal() ([]byte, error) {
	return proto.Marshal((*rawMinter)(m))
}

func (m *Minter) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*rawMinter)(m))
}

func (m *Minter) Validate() error {
	if m == nil {
		return errors.Wrap(errors.ErrEmpty, "minter")
	}
	return errors.AppendField(nil, "Authority", m.Authority.Validate())
}

// Configuration holds module wide settings. The governor may rewire the
// minting authorities.
type Configuration struct {
	Governor bondsale.Address `protobuf:"bytes,1,opt,name=governor,proto3,casttype=github.com/solaris-one/bondsale.Address" json:"governor,omitempty"`
}

var _ proto.Message = (*Configuration)(nil)

func (c *Configuration) Reset()         { *c = Configuration{} }
func (c *Configuration) String() string { return proto.CompactTextString(c) }
func (*Configuration) ProtoMessage()    {}

type rawConfiguration Configuration

func (c *rawConfiguration) Reset()         { *c = rawConfiguration{} }
func (c *rawConfiguration) String() string { return proto.CompactTextString(c) }
func (*rawConfiguration) ProtoMessage()    {}

func (c *Configuration) Marshal() ([]byte, error) {
	return proto.Marshal((*rawConfiguration)(c))
}

func (c *Configuration) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*rawConfiguration)(c))
}

func (c *Configuration) Validate() error {
	return errors.AppendField(nil, "Governor", c.Governor.Validate())
}
