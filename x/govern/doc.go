/*
Package govern provides a two phase ownership record shared by modules
that put privileged operations behind a single governor account.

A governor hands control over by proposing a candidate. Nothing changes
until the candidate accepts, so a typo in the proposal cannot brick the
record. Either side can overwrite a pending proposal before it is
accepted.
*/
package govern
