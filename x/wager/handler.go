package wager

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
	"github.com/iov-one/weave/x"
	"github.com/iov-one/weave/x/cash"
)

const (
	// pay challenge creation cost up-front
	createChallengeCost  int64 = 300
	acceptChallengeCost  int64 = 200
	resolveChallengeCost int64 = 0
	returnChallengeCost  int64 = 0
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r weave.Registry, auth x.Authenticator, cashctrl cash.Controller, decider OutcomeDecider) {
	r = migration.SchemaMigratingRegistry("wager", r)
	bucket := NewChallengeBucket()
	vaults := NewVaultManager(cashctrl)

	r.Handle(&CreateChallengeMsg{}, CreateChallengeHandler{auth, bucket, vaults})
	r.Handle(&AcceptChallengeMsg{}, AcceptChallengeHandler{auth, bucket, vaults})
	r.Handle(&ResolveChallengeMsg{}, ResolveChallengeHandler{auth, bucket, vaults, decider})
	r.Handle(&ReturnChallengeMsg{}, ReturnChallengeHandler{auth, bucket, vaults})
}

// RegisterQuery will register challenges as "/challenges" and vaults as
// "/vaults"
func RegisterQuery(qr weave.QueryRouter) {
	NewChallengeBucket().Register("challenges", qr)
	NewVaultBucket().Register("vaults", qr)
}

// CreateChallengeHandler opens a challenge and locks the initiator
// stake in a freshly derived vault.
type CreateChallengeHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	vaults VaultManager
}

var _ weave.Handler = CreateChallengeHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it.
func (h CreateChallengeHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	_, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	res := &weave.CheckResult{
		GasAllocated: createChallengeCost,
	}
	return res, nil
}

// Deliver creates the challenge together with the initiator vault and
// deposits the wager, all within one transaction. Either every step
// succeeds or the store is untouched.
func (h CreateChallengeHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	initiator := x.AnySigner(ctx, h.auth).Address()
	key := ChallengeKey(initiator, msg.Salt)

	switch err := h.bucket.Has(db, key); {
	case err == nil:
		return nil, errors.Wrapf(errors.ErrDuplicate, "challenge %s", key)
	case !errors.ErrNotFound.Is(err):
		return nil, errors.Wrap(err, "cannot check challenge existence")
	}

	vaultAddr, err := h.vaults.create(db, key, initiator, RoleInitiator, msg.Wager.Ticker)
	if err != nil {
		return nil, err
	}
	if err := h.vaults.deposit(db, vaultAddr, *msg.Wager); err != nil {
		return nil, err
	}

	challenge := &Challenge{
		Metadata:       msg.Metadata,
		Initiator:      initiator,
		InitiatorVault: vaultAddr,
		InitiatorWager: msg.Wager,
		Status:         ChallengeStatusCreated,
		AuthoritySeed:  key,
		Timeout:        msg.Timeout,
	}
	if _, err := h.bucket.Put(db, key, challenge); err != nil {
		return nil, errors.Wrap(err, "cannot store challenge")
	}
	return &weave.DeliverResult{Data: key}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h CreateChallengeHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*CreateChallengeMsg, error) {
	var msg CreateChallengeMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}

	if weave.IsExpired(ctx, msg.Timeout) {
		return nil, errors.Wrap(errors.ErrInput, "timeout in the past")
	}

	return &msg, nil
}

// AcceptChallengeHandler joins the main signer to an open challenge and
// locks the acceptor stake in a second vault.
type AcceptChallengeHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	vaults VaultManager
}

var _ weave.Handler = AcceptChallengeHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it.
func (h AcceptChallengeHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	_, _, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	return &weave.CheckResult{GasAllocated: acceptChallengeCost}, nil
}

// Deliver sets the acceptor, creates and funds the acceptor vault and
// flips the challenge to accepted.
func (h AcceptChallengeHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, challenge, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	acceptor := x.AnySigner(ctx, h.auth).Address()

	vaultAddr, err := h.vaults.create(db, challenge.AuthoritySeed, acceptor, RoleAcceptor, msg.Wager.Ticker)
	if err != nil {
		return nil, err
	}
	if err := h.vaults.deposit(db, vaultAddr, *msg.Wager); err != nil {
		return nil, err
	}

	challenge.Acceptor = acceptor
	challenge.AcceptorVault = vaultAddr
	challenge.AcceptorWager = msg.Wager
	challenge.Status = ChallengeStatusAccepted
	if _, err := h.bucket.Put(db, msg.ChallengeId, challenge); err != nil {
		return nil, errors.Wrap(err, "cannot store challenge")
	}
	return &weave.DeliverResult{Data: msg.ChallengeId}, nil
}

// validate does all common pre-processing between Check and Deliver.
// This is where the accept race is decided: the first transaction to
// commit flips the status, every later one fails right here.
func (h AcceptChallengeHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*AcceptChallengeMsg, *Challenge, error) {
	var msg AcceptChallengeMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}

	var challenge Challenge
	if err := h.bucket.One(db, msg.ChallengeId, &challenge); err != nil {
		return nil, nil, errors.Wrap(err, "cannot load challenge from the store")
	}

	switch challenge.Status {
	case ChallengeStatusCreated:
		// All good.
	case ChallengeStatusAccepted:
		return nil, nil, errors.Wrapf(ErrAlreadyAccepted, "accepted by %s", challenge.Acceptor)
	default:
		return nil, nil, errors.Wrapf(errors.ErrState, "challenge status %s", challenge.Status)
	}

	if weave.IsExpired(ctx, challenge.Timeout) {
		return nil, nil, errors.Wrapf(errors.ErrExpired, "challenge expired %v", challenge.Timeout)
	}

	return &msg, &challenge, nil
}

// ResolveChallengeHandler determines the winner of an accepted
// challenge and pays out both vaults to it.
type ResolveChallengeHandler struct {
	auth    x.Authenticator
	bucket  orm.ModelBucket
	vaults  VaultManager
	decider OutcomeDecider
}

var _ weave.Handler = ResolveChallengeHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it.
func (h ResolveChallengeHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	_, _, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	return &weave.CheckResult{GasAllocated: resolveChallengeCost}, nil
}

// Deliver asks the decider for the winner, moves the whole pooled stake
// to it and closes both vaults. Any failure aborts with no state change
// and leaves the challenge accepted, eligible for another resolution
// attempt.
func (h ResolveChallengeHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, challenge, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	winner, err := h.decider.Decide(ctx, db, challenge)
	if err != nil {
		return nil, errors.Wrap(err, "decide outcome")
	}
	if !winner.Equals(challenge.Initiator) && !winner.Equals(challenge.Acceptor) {
		return nil, errors.Wrapf(errors.ErrHuman, "decider picked a stranger %s", winner)
	}

	seed := challenge.AuthoritySeed
	if err := h.vaults.payout(db, seed, challenge.InitiatorVault, winner, challenge.InitiatorWager); err != nil {
		return nil, errors.Wrap(err, "initiator vault")
	}
	if err := h.vaults.payout(db, seed, challenge.AcceptorVault, winner, challenge.AcceptorWager); err != nil {
		return nil, errors.Wrap(err, "acceptor vault")
	}
	if err := h.vaults.close(db, challenge.InitiatorVault); err != nil {
		return nil, errors.Wrap(err, "initiator vault")
	}
	if err := h.vaults.close(db, challenge.AcceptorVault); err != nil {
		return nil, errors.Wrap(err, "acceptor vault")
	}

	challenge.Status = ChallengeStatusResolved
	if _, err := h.bucket.Put(db, msg.ChallengeId, challenge); err != nil {
		return nil, errors.Wrap(err, "cannot store challenge")
	}
	return &weave.DeliverResult{Data: winner}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h ResolveChallengeHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*ResolveChallengeMsg, *Challenge, error) {
	var msg ResolveChallengeMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}

	var challenge Challenge
	if err := h.bucket.One(db, msg.ChallengeId, &challenge); err != nil {
		return nil, nil, errors.Wrap(err, "cannot load challenge from the store")
	}

	switch challenge.Status {
	case ChallengeStatusAccepted:
		// All good.
	case ChallengeStatusCreated:
		return nil, nil, errors.Wrap(ErrNotAccepted, "missing an acceptor")
	case ChallengeStatusResolved:
		return nil, nil, errors.Wrapf(ErrAlreadyResolved, "challenge %s", weave.Address(msg.ChallengeId))
	default:
		return nil, nil, errors.Wrapf(errors.ErrState, "challenge status %s", challenge.Status)
	}

	return &msg, &challenge, nil
}

// ReturnChallengeHandler gives both stakes back to their owners once
// the challenge timed out without being resolved.
type ReturnChallengeHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	vaults VaultManager
}

var _ weave.Handler = ReturnChallengeHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it.
func (h ReturnChallengeHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	_, _, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	return &weave.CheckResult{GasAllocated: returnChallengeCost}, nil
}

// Deliver refunds every funded vault to its owner, closes the vaults
// and flips the challenge to refunded.
func (h ReturnChallengeHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, challenge, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	seed := challenge.AuthoritySeed
	if err := h.vaults.payout(db, seed, challenge.InitiatorVault, challenge.Initiator, challenge.InitiatorWager); err != nil {
		return nil, errors.Wrap(err, "initiator vault")
	}
	if err := h.vaults.close(db, challenge.InitiatorVault); err != nil {
		return nil, errors.Wrap(err, "initiator vault")
	}
	if challenge.Status == ChallengeStatusAccepted {
		if err := h.vaults.payout(db, seed, challenge.AcceptorVault, challenge.Acceptor, challenge.AcceptorWager); err != nil {
			return nil, errors.Wrap(err, "acceptor vault")
		}
		if err := h.vaults.close(db, challenge.AcceptorVault); err != nil {
			return nil, errors.Wrap(err, "acceptor vault")
		}
	}

	challenge.Status = ChallengeStatusRefunded
	if _, err := h.bucket.Put(db, msg.ChallengeId, challenge); err != nil {
		return nil, errors.Wrap(err, "cannot store challenge")
	}
	return &weave.DeliverResult{}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h ReturnChallengeHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*ReturnChallengeMsg, *Challenge, error) {
	var msg ReturnChallengeMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}

	var challenge Challenge
	if err := h.bucket.One(db, msg.ChallengeId, &challenge); err != nil {
		return nil, nil, errors.Wrap(err, "cannot load challenge from the store")
	}

	switch challenge.Status {
	case ChallengeStatusCreated, ChallengeStatusAccepted:
		// All good.
	case ChallengeStatusResolved:
		return nil, nil, errors.Wrapf(ErrAlreadyResolved, "challenge %s", weave.Address(msg.ChallengeId))
	default:
		return nil, nil, errors.Wrapf(errors.ErrState, "challenge status %s", challenge.Status)
	}

	if !weave.IsExpired(ctx, challenge.Timeout) {
		return nil, nil, errors.Wrapf(errors.ErrState, "challenge not expired %v", challenge.Timeout)
	}

	return &msg, &challenge, nil
}
