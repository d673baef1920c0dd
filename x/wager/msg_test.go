package wager_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/weavetest"

	"github.com/hazard-one/hazard/x/wager"
)

func TestCreateChallengeMsgValidate(t *testing.T) {
	timeout := weave.AsUnixTime(time.Now().Add(time.Hour))

	cases := map[string]struct {
		mutate  func(msg *wager.CreateChallengeMsg)
		wantErr *errors.Error
	}{
		"valid": {},
		"valid without salt": {
			mutate: func(msg *wager.CreateChallengeMsg) { msg.Salt = nil },
		},
		"missing metadata": {
			mutate:  func(msg *wager.CreateChallengeMsg) { msg.Metadata = nil },
			wantErr: errors.ErrMetadata,
		},
		"oversized salt": {
			mutate:  func(msg *wager.CreateChallengeMsg) { msg.Salt = bytes.Repeat([]byte("x"), 129) },
			wantErr: errors.ErrInput,
		},
		"missing wager": {
			mutate:  func(msg *wager.CreateChallengeMsg) { msg.Wager = nil },
			wantErr: errors.ErrEmpty,
		},
		"negative wager": {
			mutate:  func(msg *wager.CreateChallengeMsg) { msg.Wager = coin.NewCoinp(-1, 0, "TEST") },
			wantErr: errors.ErrAmount,
		},
		"missing timeout": {
			mutate:  func(msg *wager.CreateChallengeMsg) { msg.Timeout = 0 },
			wantErr: errors.ErrInput,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			msg := &wager.CreateChallengeMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Salt:     []byte("salt"),
				Wager:    coin.NewCoinp(100, 0, "TEST"),
				Timeout:  timeout,
			}
			if tc.mutate != nil {
				tc.mutate(msg)
			}
			if err := msg.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("expected %+v, got %+v", tc.wantErr, err)
			}
		})
	}
}

func TestAcceptChallengeMsgValidate(t *testing.T) {
	challengeID := wager.ChallengeKey(weavetest.NewCondition().Address(), nil)

	cases := map[string]struct {
		mutate  func(msg *wager.AcceptChallengeMsg)
		wantErr *errors.Error
	}{
		"valid": {},
		"missing metadata": {
			mutate:  func(msg *wager.AcceptChallengeMsg) { msg.Metadata = nil },
			wantErr: errors.ErrMetadata,
		},
		"malformed challenge id": {
			mutate:  func(msg *wager.AcceptChallengeMsg) { msg.ChallengeId = []byte("too short") },
			wantErr: errors.ErrInput,
		},
		"missing wager": {
			mutate:  func(msg *wager.AcceptChallengeMsg) { msg.Wager = nil },
			wantErr: errors.ErrEmpty,
		},
		"zero wager": {
			mutate:  func(msg *wager.AcceptChallengeMsg) { msg.Wager = coin.NewCoinp(0, 0, "TEST") },
			wantErr: errors.ErrAmount,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			msg := &wager.AcceptChallengeMsg{
				Metadata:    &weave.Metadata{Schema: 1},
				ChallengeId: challengeID,
				Wager:       coin.NewCoinp(100, 0, "TEST"),
			}
			if tc.mutate != nil {
				tc.mutate(msg)
			}
			if err := msg.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("expected %+v, got %+v", tc.wantErr, err)
			}
		})
	}
}

func TestResolveAndReturnMsgValidate(t *testing.T) {
	challengeID := wager.ChallengeKey(weavetest.NewCondition().Address(), nil)

	good := []weave.Msg{
		&wager.ResolveChallengeMsg{Metadata: &weave.Metadata{Schema: 1}, ChallengeId: challengeID},
		&wager.ReturnChallengeMsg{Metadata: &weave.Metadata{Schema: 1}, ChallengeId: challengeID},
	}
	for _, msg := range good {
		if err := msg.Validate(); err != nil {
			t.Fatalf("%s: unexpected error %+v", msg.Path(), err)
		}
	}

	bad := []weave.Msg{
		&wager.ResolveChallengeMsg{Metadata: &weave.Metadata{Schema: 1}},
		&wager.ReturnChallengeMsg{Metadata: &weave.Metadata{Schema: 1}},
	}
	for _, msg := range bad {
		if err := msg.Validate(); !errors.ErrEmpty.Is(err) {
			t.Fatalf("%s: expected empty error, got %+v", msg.Path(), err)
		}
	}
}
