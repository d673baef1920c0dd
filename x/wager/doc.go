/*

Package wager implements a trustless two-party wager.

Two independent parties each commit a quantity of a fungible asset to a
jointly-controlled custody account (a vault). Exactly one resolution event
releases the pooled assets according to an outcome decision. No party can
unilaterally withdraw, double-commit or re-trigger the resolution.

The flow is as follows:
1. Initiator creates a Challenge, committing their stake into the initiator
vault in the same transaction.
2. Acceptor accepts the Challenge, committing their own stake into a second
vault. Only the first accept succeeds.
3. Once both vaults are funded anyone can ask for the resolution. An
OutcomeDecider picks the winner, the winner receives both stakes, both
vaults are closed and the Challenge becomes Resolved.
4. If the Challenge timed out before resolution, stakes can be returned to
their owners instead.

Vault addresses and the capability to move funds out of them are derived
from fixed seed material (the challenge key and the vault role). No private
key controls a vault. Only this package can re-derive the authority
condition, so only the resolution logic can move staked funds.

*/
package wager
