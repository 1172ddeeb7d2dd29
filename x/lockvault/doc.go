/*
Package lockvault holds funds in escrow until a release time.

A lock is created on behalf of an owner by moving funds into the vault
account. Once the release time passes the owner withdraws the full
amount. Locks cannot be extended, shortened or transferred.
*/
package lockvault
