package wager

import (
	"fmt"
	"testing"
	"time"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
)

func TestChallengeKeyDerivation(t *testing.T) {
	alice := weavetest.NewCondition().Address()
	bob := weavetest.NewCondition().Address()

	// Identical inputs always derive the identical key so external
	// parties can recompute it offline.
	a := ChallengeKey(alice, []byte("x"))
	b := ChallengeKey(alice, []byte("x"))
	assert.Equal(t, a, b)
	assert.Nil(t, a.Validate())

	if ChallengeKey(alice, []byte("x")).Equals(ChallengeKey(alice, []byte("y"))) {
		t.Fatal("different salt must derive a different key")
	}
	if ChallengeKey(alice, []byte("x")).Equals(ChallengeKey(bob, []byte("x"))) {
		t.Fatal("different initiator must derive a different key")
	}
}

func TestDerivationUniqueness(t *testing.T) {
	// A sweep over many initiators, salts and roles must never derive
	// the same address twice. Well over ten thousand samples.
	seen := make(map[string]bool)
	record := func(addr weave.Address) {
		if seen[string(addr)] {
			t.Fatalf("address derived twice: %s", addr)
		}
		seen[string(addr)] = true
	}

	for i := 0; i < 2000; i++ {
		initiator := weave.NewCondition("sigs", "ed25519", []byte(fmt.Sprintf("key-%d", i))).Address()
		for _, salt := range [][]byte{nil, []byte("a"), []byte("b")} {
			key := ChallengeKey(initiator, salt)
			record(key)
			for _, role := range []string{RoleInitiator, RoleAcceptor} {
				cond, err := vaultCondition(key, role)
				assert.Nil(t, err)
				record(cond.Address())
			}
		}
	}
}

func TestVaultConditionRejectsBadSeeds(t *testing.T) {
	if _, err := vaultCondition(nil, RoleInitiator); !ErrInvalidSeed.Is(err) {
		t.Fatalf("expected invalid seed, got %+v", err)
	}
	key := ChallengeKey(weavetest.NewCondition().Address(), nil)
	if _, err := vaultCondition(key, "referee"); !ErrInvalidSeed.Is(err) {
		t.Fatalf("expected invalid seed, got %+v", err)
	}
}

func TestChallengeValidate(t *testing.T) {
	alice := weavetest.NewCondition().Address()
	bob := weavetest.NewCondition().Address()
	key := ChallengeKey(alice, nil)
	stake := coin.NewCoinp(100, 0, "TEST")
	timeout := weave.AsUnixTime(time.Now().Add(time.Hour))

	vaultFor := func(role string) weave.Address {
		cond, err := vaultCondition(key, role)
		assert.Nil(t, err)
		return cond.Address()
	}

	cases := map[string]struct {
		mutate  func(c *Challenge)
		wantErr *errors.Error
	}{
		"valid created": {},
		"valid accepted": {
			mutate: func(c *Challenge) { c.Status = ChallengeStatusAccepted },
		},
		"missing metadata": {
			mutate:  func(c *Challenge) { c.Metadata = nil },
			wantErr: errors.ErrMetadata,
		},
		"missing initiator": {
			mutate:  func(c *Challenge) { c.Initiator = nil },
			wantErr: errors.ErrEmpty,
		},
		"zero wager": {
			mutate:  func(c *Challenge) { c.InitiatorWager = coin.NewCoinp(0, 0, "TEST") },
			wantErr: errors.ErrAmount,
		},
		"missing authority seed": {
			mutate:  func(c *Challenge) { c.AuthoritySeed = nil },
			wantErr: errors.ErrEmpty,
		},
		"missing timeout": {
			mutate:  func(c *Challenge) { c.Timeout = 0 },
			wantErr: errors.ErrInput,
		},
		"accepted without acceptor": {
			mutate: func(c *Challenge) {
				c.Status = ChallengeStatusAccepted
				c.Acceptor = nil
				c.AcceptorVault = nil
				c.AcceptorWager = nil
			},
			wantErr: errors.ErrEmpty,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			c := Challenge{
				Metadata:       &weave.Metadata{Schema: 1},
				Initiator:      alice,
				InitiatorVault: vaultFor(RoleInitiator),
				InitiatorWager: stake,
				Acceptor:       bob,
				AcceptorVault:  vaultFor(RoleAcceptor),
				AcceptorWager:  stake,
				Status:         ChallengeStatusCreated,
				AuthoritySeed:  key,
				Timeout:        timeout,
			}
			if tc.mutate != nil {
				tc.mutate(&c)
			}
			if err := c.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("expected %+v, got %+v", tc.wantErr, err)
			}
		})
	}
}

func TestVaultValidate(t *testing.T) {
	alice := weavetest.NewCondition().Address()
	key := ChallengeKey(alice, nil)

	cases := map[string]struct {
		mutate  func(v *Vault)
		wantErr *errors.Error
	}{
		"valid": {},
		"missing challenge": {
			mutate:  func(v *Vault) { v.Challenge = nil },
			wantErr: errors.ErrEmpty,
		},
		"unknown role": {
			mutate:  func(v *Vault) { v.Role = "referee" },
			wantErr: errors.ErrInput,
		},
		"bad ticker": {
			mutate:  func(v *Vault) { v.Ticker = "x" },
			wantErr: errors.ErrCurrency,
		},
		"balance in a foreign ticker": {
			mutate:  func(v *Vault) { v.Balance = coin.NewCoinp(1, 0, "OTHR") },
			wantErr: ErrTickerMismatch,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			v := Vault{
				Metadata:  &weave.Metadata{Schema: 1},
				Challenge: key,
				Owner:     alice,
				Role:      RoleInitiator,
				Ticker:    "TEST",
				Balance:   &coin.Coin{Ticker: "TEST"},
			}
			if tc.mutate != nil {
				tc.mutate(&v)
			}
			if err := v.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("expected %+v, got %+v", tc.wantErr, err)
			}
		})
	}
}
