package wager

import (
	"github.com/iov-one/weave/errors"
)

// The wager extension reserves the 1200-1219 ABCI code space.
var (
	// ErrInvalidSeed is returned when authority seed material is
	// malformed, empty or oversized.
	ErrInvalidSeed = errors.Register(1200, "invalid authority seed")

	// ErrVaultExists is returned when a vault is created at an address
	// that is already allocated.
	ErrVaultExists = errors.Register(1201, "vault already exists")

	// ErrTickerMismatch is returned when funding a vault with an asset
	// type different from the one the vault was declared with.
	ErrTickerMismatch = errors.Register(1202, "asset type mismatch")

	// ErrAlreadyFunded is returned on any funding attempt after the
	// first. A vault is funded exactly once.
	ErrAlreadyFunded = errors.Register(1203, "vault already funded")

	// ErrVaultBalance is returned when a payout asks for more than the
	// vault's recorded balance.
	ErrVaultBalance = errors.Register(1204, "insufficient vault balance")

	// ErrVaultNotEmpty is returned when closing a vault that still holds
	// funds.
	ErrVaultNotEmpty = errors.Register(1205, "vault not empty")

	// ErrAlreadyAccepted is returned when accepting a challenge that has
	// left the Created state. The first accept to commit wins.
	ErrAlreadyAccepted = errors.Register(1206, "challenge already accepted")

	// ErrNotAccepted is returned when resolving a challenge that was not
	// accepted yet.
	ErrNotAccepted = errors.Register(1207, "challenge not accepted")

	// ErrAlreadyResolved is returned when resolving a challenge that
	// reached a terminal state before.
	ErrAlreadyResolved = errors.Register(1208, "challenge already resolved")

	// ErrBalanceMismatch is returned when a vault's actual balance does
	// not match the declared wager. This indicates tampering or a funding
	// bug and aborts the resolution with no state change.
	ErrBalanceMismatch = errors.Register(1209, "vault balance mismatch")
)
