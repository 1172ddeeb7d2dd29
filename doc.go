/*
Package bondsale defines the common interfaces that tie the bond sale
engine together: addresses and conditions, messages and transactions,
handlers, stores and execution context.

The engine is a deterministic, transactional state machine. Every
operation is a message routed to a handler that executes against a
key-value store. The embedding runtime owns persistence and ordering
and guarantees that each call either fully commits or fully fails.
Time is never observed directly; handlers read the current block time
from the context and compute decay and vesting lazily from it.

Subpackages implement the components: x/bond is the teller (pricing,
deposits, vesting claims), x/depository authorizes and provisions
tellers, x/cash is the asset ledger, x/lockvault holds time locked
stake positions and x/govern carries the two phase governance record.
*/
package bondsale
