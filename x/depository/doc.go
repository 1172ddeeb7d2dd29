/*
Package depository administers the teller fleet.

It creates teller instances as configuration records over the shared
sale logic, keeps the set of tellers authorized to draw freshly minted
reward asset, and is the only party that talks to the minting
authority. A teller that was removed from the set cannot provision
rewards even though its configuration still exists.
*/
package depository
