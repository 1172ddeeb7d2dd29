package coin

import (
	"fmt"
	"math"
	"regexp"

	"github.com/gogo/protobuf/proto"
	"github.com/solaris-one/bondsale/errors"
)

// IsCC determines if a string is a valid currency code. Currency codes
// are uppercase and between 3 and 4 characters long.
var IsCC = regexp.MustCompile(`^[A-Z]{3,4}$`).MatchString

// Coin is an amount of a single asset, identified by its ticker. All
// amounts are expressed in the asset's smallest indivisible unit.
type Coin struct {
	Ticker string `protobuf:"bytes,1,opt,name=ticker,proto3" json:"ticker,omitempty"`
	Amount int64  `protobuf:"varint,2,opt,name=amount,proto3" json:"amount,omitempty"`
}

var _ proto.Message = (*Coin)(nil)

func (c *Coin) Reset()         { *c = Coin{} }
func (c *Coin) ProtoMessage()  {}
func (c *Coin) String() string { return fmt.Sprintf("%d %s", c.Amount, c.Ticker) }

type rawCoin Coin

func (c *rawCoin) Reset()         { *c = rawCoin{} }
func (c *rawCoin) String() string { return proto.CompactTextString(c) }
func (*rawCoin) ProtoMessage()    {}

// Marshal returns the protobuf wire representation.
func (c *Coin) Marshal() ([]byte, error) {
	return proto.Marshal((*rawCoin)(c))
}

// Unmarshal parses the protobuf wire representation.
func (c *Coin) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*rawCoin)(c))
}

// NewCoin creates a coin of given asset and amount.
func NewCoin(amount int64, ticker string) Coin {
	return Coin{
		Ticker: ticker,
		Amount: amount,
	}
}

// Validate returns an error if the coin does not represent a valid,
// non-negative amount of a named asset.
func (c Coin) Validate() error {
	if !IsCC(c.Ticker) {
		return errors.Wrapf(errors.ErrAmount, "invalid currency: %s", c.Ticker)
	}
	if c.Amount < 0 {
		return errors.Wrapf(errors.ErrAmount, "negative amount: %d", c.Amount)
	}
	return nil
}

// IsZero returns true if the amount is zero.
func (c Coin) IsZero() bool {
	return c.Amount == 0
}

// IsPositive returns true if the amount is greater than zero.
func (c Coin) IsPositive() bool {
	return c.Amount > 0
}

// SameTicker returns true if both coins name the same asset.
func (c Coin) SameTicker(o Coin) bool {
	return c.Ticker == o.Ticker
}

// Add combines two amounts of the same asset. It returns an error on
// ticker mismatch or overflow.
func (c Coin) Add(o Coin) (Coin, error) {
	if !c.SameTicker(o) {
		return Coin{}, errors.Wrapf(errors.ErrAmount, "adding %s to %s", o.Ticker, c.Ticker)
	}
	amount, err := safeAdd(c.Amount, o.Amount)
	if err != nil {
		return Coin{}, err
	}
	return Coin{Ticker: c.Ticker, Amount: amount}, nil
}

// Subtract removes given amount of the same asset. It returns an error
// on ticker mismatch, overflow, or when the result would be negative.
func (c Coin) Subtract(o Coin) (Coin, error) {
	if !c.SameTicker(o) {
		return Coin{}, errors.Wrapf(errors.ErrAmount, "subtracting %s from %s", o.Ticker, c.Ticker)
	}
	amount, err := safeAdd(c.Amount, -o.Amount)
	if err != nil {
		return Coin{}, err
	}
	if amount < 0 {
		return Coin{}, errors.Wrapf(errors.ErrAmount, "insufficient funds: %d - %d", c.Amount, o.Amount)
	}
	return Coin{Ticker: c.Ticker, Amount: amount}, nil
}

// Compare returns -1, 0 or 1 depending on whether this amount is
// smaller, equal or greater than the other. Both coins must name the
// same asset.
func (c Coin) Compare(o Coin) int {
	switch {
	case c.Amount < o.Amount:
		return -1
	case c.Amount > o.Amount:
		return 1
	default:
		return 0
	}
}

// Equals returns true when both the asset and amount are the same.
func (c Coin) Equals(o Coin) bool {
	return c.SameTicker(o) && c.Amount == o.Amount
}

func safeAdd(a, b int64) (int64, error) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, errors.Wrapf(errors.ErrOverflow, "%d + %d", a, b)
	}
	if sum == math.MinInt64 {
		return 0, errors.Wrapf(errors.ErrOverflow, "%d + %d", a, b)
	}
	return sum, nil
}
