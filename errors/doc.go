/*
Package errors implements the error taxonomy of the bond sale engine.

Each returned failure wraps exactly one registered root error. Handlers
and clients test failures with the root's Is method instead of comparing
strings, so every rejection reason declared by the engine stays
discriminable across process boundaries.

Use Wrap and Wrapf to add information while traveling up the call stack.
A stack trace is attached once, at the innermost wrap.
*/
package errors
