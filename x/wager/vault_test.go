package wager

import (
	"testing"

	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
	"github.com/iov-one/weave/x/cash"
)

func TestVaultLifecycle(t *testing.T) {
	db := store.MemStore()
	migration.MustInitPkg(db, "wager", "cash")

	bank := cash.NewBucket()
	ctrl := cash.NewController(bank)
	vaults := NewVaultManager(ctrl)

	owner := weavetest.NewCondition().Address()
	winner := weavetest.NewCondition().Address()
	seed := ChallengeKey(owner, []byte("seed"))

	funds, err := coin.CombineCoins(coin.NewCoin(100, 0, "TEST"))
	assert.Nil(t, err)
	acct, err := cash.WalletWith(owner, funds...)
	assert.Nil(t, err)
	assert.Nil(t, bank.Save(db, acct))

	addr, err := vaults.create(db, seed, owner, RoleInitiator, "TEST")
	assert.Nil(t, err)

	// The same seed and role cannot be claimed twice.
	if _, err := vaults.create(db, seed, owner, RoleInitiator, "TEST"); !ErrVaultExists.Is(err) {
		t.Fatalf("expected vault exists, got %+v", err)
	}

	// A deposit in a foreign asset type bounces and leaves the vault
	// untouched, no wallet was ever written for it.
	if err := vaults.deposit(db, addr, coin.NewCoin(100, 0, "OTHR")); !ErrTickerMismatch.Is(err) {
		t.Fatalf("expected ticker mismatch, got %+v", err)
	}
	if _, err := ctrl.Balance(db, addr); !errors.ErrNotFound.Is(err) {
		t.Fatalf("expected no wallet, got %+v", err)
	}

	// Paying out before funding is refused.
	if err := vaults.payout(db, seed, addr, winner, nil); !ErrVaultBalance.Is(err) {
		t.Fatalf("expected vault balance, got %+v", err)
	}

	stake := coin.NewCoin(100, 0, "TEST")
	assert.Nil(t, vaults.deposit(db, addr, stake))

	// A vault takes exactly one deposit.
	if err := vaults.deposit(db, addr, stake); !ErrAlreadyFunded.Is(err) {
		t.Fatalf("expected already funded, got %+v", err)
	}

	// A funded vault cannot be closed.
	if err := vaults.close(db, addr); !ErrVaultNotEmpty.Is(err) {
		t.Fatalf("expected vault not empty, got %+v", err)
	}

	// Only the matching seed releases the stake.
	badSeed := ChallengeKey(owner, []byte("other seed"))
	if err := vaults.payout(db, badSeed, addr, winner, &stake); !errors.ErrUnauthorized.Is(err) {
		t.Fatalf("expected unauthorized, got %+v", err)
	}

	// A recorded deposit that disagrees with the declared wager aborts.
	declared := coin.NewCoin(150, 0, "TEST")
	if err := vaults.payout(db, seed, addr, winner, &declared); !ErrBalanceMismatch.Is(err) {
		t.Fatalf("expected balance mismatch, got %+v", err)
	}

	assert.Nil(t, vaults.payout(db, seed, addr, winner, &stake))
	won, err := ctrl.Balance(db, winner)
	assert.Nil(t, err)
	assert.Equal(t, true, won.Equals(funds))

	assert.Nil(t, vaults.close(db, addr))
	var v Vault
	if err := vaults.bucket.One(db, addr, &v); !errors.ErrNotFound.Is(err) {
		t.Fatalf("expected vault to be gone, got %+v", err)
	}
}

func TestVaultRolesAreIndependent(t *testing.T) {
	db := store.MemStore()
	migration.MustInitPkg(db, "wager", "cash")

	ctrl := cash.NewController(cash.NewBucket())
	vaults := NewVaultManager(ctrl)

	alice := weavetest.NewCondition().Address()
	bob := weavetest.NewCondition().Address()
	seed := ChallengeKey(alice, nil)

	a, err := vaults.create(db, seed, alice, RoleInitiator, "TEST")
	assert.Nil(t, err)
	b, err := vaults.create(db, seed, bob, RoleAcceptor, "TEST")
	assert.Nil(t, err)

	if a.Equals(b) {
		t.Fatal("both roles derived the same vault address")
	}
}
