/*
Package bond implements the teller, the sale engine that exchanges a
principal asset for a vesting claim on the reward asset.

Each teller instance sells against a single principal ticker under a
set of terms posted by its governor. The unit price decays towards a
floor by halving once per configured half life and is pushed back up a
little by every purchase. A deposit that passes the capacity, size and
slippage guards either mints a bond, a transferable record releasing
the payout linearly over the vesting term, or stakes the payout
straight into the lock vault.

Deposits can enter through three doors: a direct message, a message
carrying an off band permit signature, or a bare transfer of the
principal asset. All three converge on the same internal routine so
the guards cannot drift apart.
*/
package bond
