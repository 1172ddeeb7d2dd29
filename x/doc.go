/*
Package x contains some standard extensions and the interfaces they
share, most notably the Authenticator used by every handler to check
caller identity.

Extensions implementing the engine live in subpackages: bond,
depository, cash, lockvault and govern.
*/
package x
