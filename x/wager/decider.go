package wager

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
)

// OutcomeDecider picks the winner of an accepted challenge. The decision
// must be a pure function of the consensus state so that every node
// resolving the same block agrees on the winner. Implementations return
// either the initiator or the acceptor address.
type OutcomeDecider interface {
	Decide(ctx weave.Context, db weave.KVStore, c *Challenge) (weave.Address, error)
}

// DeciderFunc turns a plain function into an OutcomeDecider.
type DeciderFunc func(ctx weave.Context, db weave.KVStore, c *Challenge) (weave.Address, error)

var _ OutcomeDecider = DeciderFunc(nil)

func (f DeciderFunc) Decide(ctx weave.Context, db weave.KVStore, c *Challenge) (weave.Address, error) {
	return f(ctx, db, c)
}

// CoinTossDecider flips an even coin seeded with the challenge identity
// and the resolution block time. Both inputs are fixed by the chain
// state, so all nodes toss the same coin. This is not a source anyone
// should wager serious value on, a block proposer can shift the block
// time within tolerance. Deployments that care plug in their own
// decider.
type CoinTossDecider struct{}

var _ OutcomeDecider = CoinTossDecider{}

func (CoinTossDecider) Decide(ctx weave.Context, db weave.KVStore, c *Challenge) (weave.Address, error) {
	blockTime, err := weave.BlockTime(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "block time")
	}
	var stamp [8]byte
	binary.BigEndian.PutUint64(stamp[:], uint64(blockTime.Unix()))

	h := sha256.New()
	_, _ = h.Write(c.AuthoritySeed)
	_, _ = h.Write(stamp[:])
	sum := h.Sum(nil)

	if sum[0]%2 == 0 {
		return c.Initiator, nil
	}
	return c.Acceptor, nil
}
