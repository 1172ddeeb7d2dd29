/*
Package cash keeps the token ledger.

Each account is a wallet addressed by its owner and holding any number
of coins of distinct tickers. The Controller is the only way other
modules move or create funds, which keeps all balance arithmetic and
the minting authority check in one place. New coins can only be issued
by the authority registered for their ticker.
*/
package cash
