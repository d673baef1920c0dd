package wager_test

import (
	"context"
	"testing"
	"time"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"

	"github.com/hazard-one/hazard/x/wager"
)

func TestCoinTossDecider(t *testing.T) {
	alice := weavetest.NewCondition().Address()
	bob := weavetest.NewCondition().Address()

	challenge := &wager.Challenge{
		Metadata:       &weave.Metadata{Schema: 1},
		Initiator:      alice,
		Acceptor:       bob,
		InitiatorWager: coin.NewCoinp(100, 0, "TEST"),
		AcceptorWager:  coin.NewCoinp(100, 0, "TEST"),
		AuthoritySeed:  wager.ChallengeKey(alice, nil),
	}

	now := time.Now()
	ctx := weave.WithBlockTime(context.Background(), now)

	var decider wager.CoinTossDecider
	winner, err := decider.Decide(ctx, nil, challenge)
	assert.Nil(t, err)
	if !winner.Equals(alice) && !winner.Equals(bob) {
		t.Fatalf("winner %s is neither party", winner)
	}

	// Same block, same challenge, same winner on every node.
	again, err := decider.Decide(ctx, nil, challenge)
	assert.Nil(t, err)
	assert.Equal(t, winner, again)

	// Without a block time there is no entropy to toss with.
	if _, err := decider.Decide(context.Background(), nil, challenge); err == nil {
		t.Fatal("expected an error without block time")
	}
}
