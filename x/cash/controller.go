package cash

import (
	"github.com/solaris-one/bondsale"
	"github.com/solaris-one/bondsale/coin"
	"github.com/solaris-one/bondsale/errors"
	"github.com/solaris-one/bondsale/orm"
)

// Controller is the interface other modules use to operate on the
// ledger. Accept this interface, not the concrete type.
type Controller interface {
	// MoveCoins transfers funds between two accounts. It fails when
	// the source does not hold enough.
	MoveCoins(db bondsale.KVStore, src, dest bondsale.Address, amount coin.Coin) error

	// IssueCoins creates new funds in the destination account. The
	// authority must be the registered minter of the ticker.
	IssueCoins(db bondsale.KVStore, authority, dest bondsale.Address, amount coin.Coin) error

	// Balance returns the funds of one ticker held by an account. A
	// missing account has a zero balance.
	Balance(db bondsale.ReadOnlyKVStore, account bondsale.Address, ticker string) (coin.Coin, error)
}

// BaseController implements Controller on top of the wallet and minter
// buckets.
type BaseController struct {
	wallets orm.ModelBucket
	minters orm.ModelBucket
}

var _ Controller = BaseController{}

// NewController returns a Controller operating on the default buckets.
func NewController() BaseController {
	return BaseController{
		wallets: NewWalletBucket(),
		minters: NewMinterBucket(),
	}
}

func (c BaseController) MoveCoins(db bondsale.KVStore, src, dest bondsale.Address, amount coin.Coin) error {
	if !amount.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "must be a positive transfer")
	}
	if src.Equals(dest) {
		return errors.Wrap(errors.ErrInput, "source equals destination")
	}

	sender, err := c.wallet(db, src)
	if err != nil {
		return errors.Wrap(err, "source")
	}
	if err := sender.Subtract(amount); err != nil {
		return errors.Wrap(err, "insufficient funds")
	}

	recipient, err := c.wallet(db, dest)
	if err != nil {
		return errors.Wrap(err, "destination")
	}
	if err := recipient.Add(amount); err != nil {
		return err
	}

	if _, err := c.wallets.Put(db, src, sender); err != nil {
		return errors.Wrap(err, "save source")
	}
	_, err = c.wallets.Put(db, dest, recipient)
	return errors.Wrap(err, "save destination")
}

func (c BaseController) IssueCoins(db bondsale.KVStore, authority, dest bondsale.Address, amount coin.Coin) error {
	if !amount.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "must be a positive issue")
	}

	var minter Minter
	switch err := c.minters.One(db, []byte(amount.Ticker), &minter); {
	case errors.ErrNotFound.Is(err):
		return errors.Wrapf(ErrMintAuthority, "no minter for %s", amount.Ticker)
	case err != nil:
		return errors.Wrap(err, "minter")
	}
	if !minter.Authority.Equals(authority) {
		return errors.Wrapf(ErrMintAuthority, "%s cannot mint %s", authority, amount.Ticker)
	}

	recipient, err := c.wallet(db, dest)
	if err != nil {
		return errors.Wrap(err, "destination")
	}
	if err := recipient.Add(amount); err != nil {
		return err
	}
	_, err = c.wallets.Put(db, dest, recipient)
	return errors.Wrap(err, "save destination")
}

func (c BaseController) Balance(db bondsale.ReadOnlyKVStore, account bondsale.Address, ticker string) (coin.Coin, error) {
	var w Wallet
	switch err := c.wallets.One(db, account, &w); {
	case errors.ErrNotFound.Is(err):
		return coin.NewCoin(0, ticker), nil
	case err != nil:
		return coin.Coin{}, errors.Wrap(err, "wallet")
	}
	return w.Balance(ticker), nil
}

// SetMinter registers the minting authority of a ticker, replacing any
// previous one. This bypasses authorization and must only be reachable
// from the genesis initializer and the guarded handler.
func (c BaseController) SetMinter(db bondsale.KVStore, ticker string, authority bondsale.Address) error {
	if !coin.IsCC(ticker) {
		return errors.Wrapf(errors.ErrInput, "invalid ticker %s", ticker)
	}
	minter := Minter{Authority: authority}
	_, err := c.minters.Put(db, []byte(ticker), &minter)
	return errors.Wrap(err, "save minter")
}

// wallet loads the wallet of an account, returning an empty wallet when
// none was stored yet.
func (c BaseController) wallet(db bondsale.ReadOnlyKVStore, account bondsale.Address) (*Wallet, error) {
	if err := account.Validate(); err != nil {
		return nil, err
	}
	var w Wallet
	switch err := c.wallets.One(db, account, &w); {
	case err == nil, errors.ErrNotFound.Is(err):
		return &w, nil
	default:
		return nil, err
	}
}
