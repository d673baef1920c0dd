package wager_test

import (
	"context"
	"testing"
	"time"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
	"github.com/iov-one/weave/x"
	"github.com/iov-one/weave/x/cash"

	"github.com/hazard-one/hazard/x/wager"
)

var blockNow = time.Now()

// pickInitiator is a deterministic decider so tests know the winner
// upfront.
var pickInitiator = wager.DeciderFunc(func(ctx weave.Context, db weave.KVStore, c *wager.Challenge) (weave.Address, error) {
	return c.Initiator, nil
})

func TestCreateChallengeHandler(t *testing.T) {
	alice := weavetest.NewCondition()
	bob := weavetest.NewCondition()

	stake := coin.NewCoin(100, 0, "TEST")

	initialCoins, err := coin.CombineCoins(coin.NewCoin(1000, 0, "TEST"))
	assert.Nil(t, err)

	bank := cash.NewBucket()
	ctrl := cash.NewController(bank)
	bucket := wager.NewChallengeBucket()

	r := app.NewRouter()
	authenticator := &weavetest.CtxAuth{Key: "auth"}
	auth := x.ChainAuth(authenticator)
	wager.RegisterRoutes(r, auth, ctrl, pickInitiator)

	cases := map[string]struct {
		setup          func(ctx weave.Context, db weave.KVStore) weave.Context
		check          func(t *testing.T, db weave.KVStore)
		wantCheckErr   *errors.Error
		wantDeliverErr *errors.Error
		mutator        func(msg *wager.CreateChallengeMsg)
	}{
		"happy path": {
			setup: func(ctx weave.Context, db weave.KVStore) weave.Context {
				setBalance(t, bank, db, alice.Address(), initialCoins)
				return authenticator.SetConditions(ctx, alice)
			},
			check: func(t *testing.T, db weave.KVStore) {
				key := wager.ChallengeKey(alice.Address(), []byte("game-1"))
				var c wager.Challenge
				assert.Nil(t, bucket.One(db, key, &c))
				assert.Equal(t, wager.ChallengeStatusCreated, c.Status)
				assert.Equal(t, alice.Address(), c.Initiator)

				locked, err := ctrl.Balance(db, c.InitiatorVault)
				assert.Nil(t, err)
				assert.Equal(t, true, locked.Equals(coin.Coins{&stake}))
			},
		},
		"zero amount": {
			setup: func(ctx weave.Context, db weave.KVStore) weave.Context {
				setBalance(t, bank, db, alice.Address(), initialCoins)
				return authenticator.SetConditions(ctx, alice)
			},
			mutator: func(msg *wager.CreateChallengeMsg) {
				c := coin.NewCoin(0, 0, "TEST")
				msg.Wager = &c
			},
			wantCheckErr:   errors.ErrAmount,
			wantDeliverErr: errors.ErrAmount,
		},
		"timeout in the past": {
			setup: func(ctx weave.Context, db weave.KVStore) weave.Context {
				setBalance(t, bank, db, alice.Address(), initialCoins)
				return authenticator.SetConditions(ctx, alice)
			},
			mutator: func(msg *wager.CreateChallengeMsg) {
				msg.Timeout = weave.AsUnixTime(blockNow.Add(-time.Hour))
			},
			wantCheckErr:   errors.ErrInput,
			wantDeliverErr: errors.ErrInput,
		},
		"no funds": {
			setup: func(ctx weave.Context, db weave.KVStore) weave.Context {
				return authenticator.SetConditions(ctx, bob)
			},
			wantDeliverErr: errors.ErrEmpty,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			db := store.MemStore()
			migration.MustInitPkg(db, "wager", "cash")

			msg := &wager.CreateChallengeMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Salt:     []byte("game-1"),
				Wager:    &stake,
				Timeout:  weave.AsUnixTime(blockNow.Add(time.Hour)),
			}
			if tc.mutator != nil {
				tc.mutator(msg)
			}

			ctx := weave.WithHeight(context.Background(), 500)
			ctx = weave.WithBlockTime(ctx, blockNow)
			if tc.setup != nil {
				ctx = tc.setup(ctx, db)
			}

			cache := db.CacheWrap()
			tx := &weavetest.Tx{Msg: msg}
			if _, err := r.Check(ctx, cache, tx); !tc.wantCheckErr.Is(err) {
				t.Fatalf("check expected: %+v but got %+v", tc.wantCheckErr, err)
			}
			cache.Discard()

			if _, err := r.Deliver(ctx, cache, tx); !tc.wantDeliverErr.Is(err) {
				t.Fatalf("deliver expected: %+v but got %+v", tc.wantDeliverErr, err)
			}
			if tc.check != nil {
				tc.check(t, cache)
			}
		})
	}
}

func TestCreateChallengeTwice(t *testing.T) {
	alice := weavetest.NewCondition()

	db := store.MemStore()
	migration.MustInitPkg(db, "wager", "cash")

	bank := cash.NewBucket()
	ctrl := cash.NewController(bank)
	r := app.NewRouter()
	authenticator := &weavetest.CtxAuth{Key: "auth"}
	wager.RegisterRoutes(r, x.ChainAuth(authenticator), ctrl, pickInitiator)

	funds, err := coin.CombineCoins(coin.NewCoin(1000, 0, "TEST"))
	assert.Nil(t, err)
	setBalance(t, bank, db, alice.Address(), funds)

	ctx := weave.WithHeight(context.Background(), 500)
	ctx = weave.WithBlockTime(ctx, blockNow)
	ctx = authenticator.SetConditions(ctx, alice)

	stake := coin.NewCoin(100, 0, "TEST")
	msg := &wager.CreateChallengeMsg{
		Metadata: &weave.Metadata{Schema: 1},
		Salt:     []byte("rematch"),
		Wager:    &stake,
		Timeout:  weave.AsUnixTime(blockNow.Add(time.Hour)),
	}
	if _, err := r.Deliver(ctx, db, &weavetest.Tx{Msg: msg}); err != nil {
		t.Fatalf("first create failed: %+v", err)
	}
	// The same initiator and salt derive the same challenge key.
	if _, err := r.Deliver(ctx, db, &weavetest.Tx{Msg: msg}); !errors.ErrDuplicate.Is(err) {
		t.Fatalf("expected duplicate, got %+v", err)
	}
	// A different salt opens an independent challenge.
	msg.Salt = []byte("rematch-2")
	if _, err := r.Deliver(ctx, db, &weavetest.Tx{Msg: msg}); err != nil {
		t.Fatalf("create with fresh salt failed: %+v", err)
	}
}

func TestAcceptChallengeHandler(t *testing.T) {
	alice := weavetest.NewCondition()
	bob := weavetest.NewCondition()
	carl := weavetest.NewCondition()

	db := store.MemStore()
	migration.MustInitPkg(db, "wager", "cash")

	bank := cash.NewBucket()
	ctrl := cash.NewController(bank)
	bucket := wager.NewChallengeBucket()
	r := app.NewRouter()
	authenticator := &weavetest.CtxAuth{Key: "auth"}
	wager.RegisterRoutes(r, x.ChainAuth(authenticator), ctrl, pickInitiator)

	funds, err := coin.CombineCoins(coin.NewCoin(1000, 0, "TEST"))
	assert.Nil(t, err)
	for _, addr := range []weave.Address{alice.Address(), bob.Address(), carl.Address()} {
		setBalance(t, bank, db, addr, funds)
	}

	baseCtx := weave.WithHeight(context.Background(), 500)
	baseCtx = weave.WithBlockTime(baseCtx, blockNow)

	stake := coin.NewCoin(100, 0, "TEST")
	challengeID := createChallenge(t, r, authenticator.SetConditions(baseCtx, alice), db, stake)

	accept := &wager.AcceptChallengeMsg{
		Metadata:    &weave.Metadata{Schema: 1},
		ChallengeId: challengeID,
		Wager:       &stake,
	}

	bobCtx := authenticator.SetConditions(baseCtx, bob)
	if _, err := r.Deliver(bobCtx, db, &weavetest.Tx{Msg: accept}); err != nil {
		t.Fatalf("accept failed: %+v", err)
	}

	var c wager.Challenge
	assert.Nil(t, bucket.One(db, challengeID, &c))
	assert.Equal(t, wager.ChallengeStatusAccepted, c.Status)
	assert.Equal(t, bob.Address(), c.Acceptor)
	locked, err := ctrl.Balance(db, c.AcceptorVault)
	assert.Nil(t, err)
	assert.Equal(t, true, locked.Equals(coin.Coins{&stake}))

	// The race guard: whoever commits second must be rejected and the
	// first acceptor stays on the record.
	carlCtx := authenticator.SetConditions(baseCtx, carl)
	if _, err := r.Deliver(carlCtx, db, &weavetest.Tx{Msg: accept}); !wager.ErrAlreadyAccepted.Is(err) {
		t.Fatalf("expected already accepted, got %+v", err)
	}
	assert.Nil(t, bucket.One(db, challengeID, &c))
	assert.Equal(t, bob.Address(), c.Acceptor)

	// Accepting an unknown challenge reports it as missing.
	accept.ChallengeId = wager.ChallengeKey(carl.Address(), nil)
	if _, err := r.Deliver(carlCtx, db, &weavetest.Tx{Msg: accept}); !errors.ErrNotFound.Is(err) {
		t.Fatalf("expected not found, got %+v", err)
	}
}

func TestAcceptExpiredChallenge(t *testing.T) {
	alice := weavetest.NewCondition()
	bob := weavetest.NewCondition()

	db := store.MemStore()
	migration.MustInitPkg(db, "wager", "cash")

	bank := cash.NewBucket()
	ctrl := cash.NewController(bank)
	r := app.NewRouter()
	authenticator := &weavetest.CtxAuth{Key: "auth"}
	wager.RegisterRoutes(r, x.ChainAuth(authenticator), ctrl, pickInitiator)

	funds, err := coin.CombineCoins(coin.NewCoin(1000, 0, "TEST"))
	assert.Nil(t, err)
	setBalance(t, bank, db, alice.Address(), funds)
	setBalance(t, bank, db, bob.Address(), funds)

	baseCtx := weave.WithHeight(context.Background(), 500)
	baseCtx = weave.WithBlockTime(baseCtx, blockNow)

	stake := coin.NewCoin(100, 0, "TEST")
	challengeID := createChallenge(t, r, authenticator.SetConditions(baseCtx, alice), db, stake)

	lateCtx := weave.WithHeight(context.Background(), 600)
	lateCtx = weave.WithBlockTime(lateCtx, blockNow.Add(2*time.Hour))
	lateCtx = authenticator.SetConditions(lateCtx, bob)

	accept := &wager.AcceptChallengeMsg{
		Metadata:    &weave.Metadata{Schema: 1},
		ChallengeId: challengeID,
		Wager:       &stake,
	}
	if _, err := r.Deliver(lateCtx, db, &weavetest.Tx{Msg: accept}); !errors.ErrExpired.Is(err) {
		t.Fatalf("expected expired, got %+v", err)
	}
}

func TestResolveChallengeHandler(t *testing.T) {
	alice := weavetest.NewCondition()
	bob := weavetest.NewCondition()

	db := store.MemStore()
	migration.MustInitPkg(db, "wager", "cash")

	bank := cash.NewBucket()
	ctrl := cash.NewController(bank)
	bucket := wager.NewChallengeBucket()
	vaults := wager.NewVaultBucket()
	r := app.NewRouter()
	authenticator := &weavetest.CtxAuth{Key: "auth"}
	wager.RegisterRoutes(r, x.ChainAuth(authenticator), ctrl, pickInitiator)

	funds, err := coin.CombineCoins(coin.NewCoin(100, 0, "TEST"))
	assert.Nil(t, err)
	setBalance(t, bank, db, alice.Address(), funds)
	setBalance(t, bank, db, bob.Address(), funds)

	baseCtx := weave.WithHeight(context.Background(), 500)
	baseCtx = weave.WithBlockTime(baseCtx, blockNow)

	stake := coin.NewCoin(100, 0, "TEST")
	challengeID := createChallenge(t, r, authenticator.SetConditions(baseCtx, alice), db, stake)

	resolve := &wager.ResolveChallengeMsg{
		Metadata:    &weave.Metadata{Schema: 1},
		ChallengeId: challengeID,
	}

	// Resolution needs an acceptor first.
	if _, err := r.Deliver(baseCtx, db, &weavetest.Tx{Msg: resolve}); !wager.ErrNotAccepted.Is(err) {
		t.Fatalf("expected not accepted, got %+v", err)
	}

	accept := &wager.AcceptChallengeMsg{
		Metadata:    &weave.Metadata{Schema: 1},
		ChallengeId: challengeID,
		Wager:       &stake,
	}
	if _, err := r.Deliver(authenticator.SetConditions(baseCtx, bob), db, &weavetest.Tx{Msg: accept}); err != nil {
		t.Fatalf("accept failed: %+v", err)
	}

	var c wager.Challenge
	assert.Nil(t, bucket.One(db, challengeID, &c))
	initiatorVault, acceptorVault := c.InitiatorVault, c.AcceptorVault

	if _, err := r.Deliver(baseCtx, db, &weavetest.Tx{Msg: resolve}); err != nil {
		t.Fatalf("resolve failed: %+v", err)
	}

	// 100 + 100 stake ends up with the winner, the vaults are drained
	// and gone.
	pooled, err := coin.CombineCoins(coin.NewCoin(200, 0, "TEST"))
	assert.Nil(t, err)
	winnings, err := ctrl.Balance(db, alice.Address())
	assert.Nil(t, err)
	assert.Equal(t, true, winnings.Equals(pooled))
	leftover, err := ctrl.Balance(db, bob.Address())
	assert.Nil(t, err)
	assert.Equal(t, true, leftover.IsEmpty())

	for _, addr := range []weave.Address{initiatorVault, acceptorVault} {
		drained, err := ctrl.Balance(db, addr)
		assert.Nil(t, err)
		assert.Equal(t, true, drained.IsEmpty())
		var v wager.Vault
		if err := vaults.One(db, addr, &v); !errors.ErrNotFound.Is(err) {
			t.Fatalf("expected vault %s to be closed, got %+v", addr, err)
		}
	}

	assert.Nil(t, bucket.One(db, challengeID, &c))
	assert.Equal(t, wager.ChallengeStatusResolved, c.Status)

	// A second resolution must not move anything.
	if _, err := r.Deliver(baseCtx, db, &weavetest.Tx{Msg: resolve}); !wager.ErrAlreadyResolved.Is(err) {
		t.Fatalf("expected already resolved, got %+v", err)
	}
	winnings, err = ctrl.Balance(db, alice.Address())
	assert.Nil(t, err)
	assert.Equal(t, true, winnings.Equals(pooled))
}

func TestResolveTamperedVault(t *testing.T) {
	alice := weavetest.NewCondition()
	bob := weavetest.NewCondition()

	db := store.MemStore()
	migration.MustInitPkg(db, "wager", "cash")

	bank := cash.NewBucket()
	ctrl := cash.NewController(bank)
	bucket := wager.NewChallengeBucket()
	r := app.NewRouter()
	authenticator := &weavetest.CtxAuth{Key: "auth"}
	wager.RegisterRoutes(r, x.ChainAuth(authenticator), ctrl, pickInitiator)

	funds, err := coin.CombineCoins(coin.NewCoin(1000, 0, "TEST"))
	assert.Nil(t, err)
	setBalance(t, bank, db, alice.Address(), funds)
	setBalance(t, bank, db, bob.Address(), funds)

	baseCtx := weave.WithHeight(context.Background(), 500)
	baseCtx = weave.WithBlockTime(baseCtx, blockNow)

	stake := coin.NewCoin(100, 0, "TEST")
	challengeID := createChallenge(t, r, authenticator.SetConditions(baseCtx, alice), db, stake)
	accept := &wager.AcceptChallengeMsg{
		Metadata:    &weave.Metadata{Schema: 1},
		ChallengeId: challengeID,
		Wager:       &stake,
	}
	if _, err := r.Deliver(authenticator.SetConditions(baseCtx, bob), db, &weavetest.Tx{Msg: accept}); err != nil {
		t.Fatalf("accept failed: %+v", err)
	}

	// Siphon tokens out of the acceptor vault behind the record's back.
	var c wager.Challenge
	assert.Nil(t, bucket.One(db, challengeID, &c))
	siphon := coin.NewCoin(1, 0, "TEST")
	assert.Nil(t, ctrl.MoveCoins(db, c.AcceptorVault, bob.Address(), siphon))

	resolve := &wager.ResolveChallengeMsg{
		Metadata:    &weave.Metadata{Schema: 1},
		ChallengeId: challengeID,
	}
	if _, err := r.Deliver(baseCtx, db, &weavetest.Tx{Msg: resolve}); !wager.ErrBalanceMismatch.Is(err) {
		t.Fatalf("expected balance mismatch, got %+v", err)
	}

	// The challenge stays accepted, eligible for a corrected retry.
	assert.Nil(t, bucket.One(db, challengeID, &c))
	assert.Equal(t, wager.ChallengeStatusAccepted, c.Status)
}

func TestReturnChallengeHandler(t *testing.T) {
	alice := weavetest.NewCondition()
	bob := weavetest.NewCondition()

	db := store.MemStore()
	migration.MustInitPkg(db, "wager", "cash")

	bank := cash.NewBucket()
	ctrl := cash.NewController(bank)
	bucket := wager.NewChallengeBucket()
	r := app.NewRouter()
	authenticator := &weavetest.CtxAuth{Key: "auth"}
	wager.RegisterRoutes(r, x.ChainAuth(authenticator), ctrl, pickInitiator)

	funds, err := coin.CombineCoins(coin.NewCoin(100, 0, "TEST"))
	assert.Nil(t, err)
	setBalance(t, bank, db, alice.Address(), funds)
	setBalance(t, bank, db, bob.Address(), funds)

	baseCtx := weave.WithHeight(context.Background(), 500)
	baseCtx = weave.WithBlockTime(baseCtx, blockNow)

	stake := coin.NewCoin(100, 0, "TEST")
	challengeID := createChallenge(t, r, authenticator.SetConditions(baseCtx, alice), db, stake)
	accept := &wager.AcceptChallengeMsg{
		Metadata:    &weave.Metadata{Schema: 1},
		ChallengeId: challengeID,
		Wager:       &stake,
	}
	if _, err := r.Deliver(authenticator.SetConditions(baseCtx, bob), db, &weavetest.Tx{Msg: accept}); err != nil {
		t.Fatalf("accept failed: %+v", err)
	}

	ret := &wager.ReturnChallengeMsg{
		Metadata:    &weave.Metadata{Schema: 1},
		ChallengeId: challengeID,
	}

	// Too early.
	if _, err := r.Deliver(baseCtx, db, &weavetest.Tx{Msg: ret}); !errors.ErrState.Is(err) {
		t.Fatalf("expected state error, got %+v", err)
	}

	lateCtx := weave.WithHeight(context.Background(), 600)
	lateCtx = weave.WithBlockTime(lateCtx, blockNow.Add(2*time.Hour))
	if _, err := r.Deliver(lateCtx, db, &weavetest.Tx{Msg: ret}); err != nil {
		t.Fatalf("return failed: %+v", err)
	}

	// Both parties got their stake back.
	for _, addr := range []weave.Address{alice.Address(), bob.Address()} {
		balance, err := ctrl.Balance(db, addr)
		assert.Nil(t, err)
		assert.Equal(t, true, balance.Equals(funds))
	}
	var c wager.Challenge
	assert.Nil(t, bucket.One(db, challengeID, &c))
	assert.Equal(t, wager.ChallengeStatusRefunded, c.Status)

	// No forward transition out of the refund.
	resolve := &wager.ResolveChallengeMsg{
		Metadata:    &weave.Metadata{Schema: 1},
		ChallengeId: challengeID,
	}
	if _, err := r.Deliver(lateCtx, db, &weavetest.Tx{Msg: resolve}); !errors.ErrState.Is(err) {
		t.Fatalf("expected state error, got %+v", err)
	}
}

func createChallenge(t *testing.T, r *app.Router, ctx weave.Context, db weave.KVStore, stake coin.Coin) []byte {
	t.Helper()
	msg := &wager.CreateChallengeMsg{
		Metadata: &weave.Metadata{Schema: 1},
		Salt:     []byte("game-1"),
		Wager:    &stake,
		Timeout:  weave.AsUnixTime(blockNow.Add(time.Hour)),
	}
	res, err := r.Deliver(ctx, db, &weavetest.Tx{Msg: msg})
	if err != nil {
		t.Fatalf("create failed: %+v", err)
	}
	return res.Data
}

func setBalance(t *testing.T, bank cash.WalletBucket, db weave.KVStore, addr weave.Address, coins coin.Coins) {
	t.Helper()
	acct, err := cash.WalletWith(addr, coins...)
	assert.Nil(t, err)
	assert.Nil(t, bank.Save(db, acct))
}
