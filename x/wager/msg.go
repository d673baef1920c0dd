package wager

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
)

func init() {
	// Migration needs to be registered for every message introduced in the codec.
	// This is the convention to message versioning.
	migration.MustRegister(1, &CreateChallengeMsg{}, migration.NoModification)
	migration.MustRegister(1, &AcceptChallengeMsg{}, migration.NoModification)
	migration.MustRegister(1, &ResolveChallengeMsg{}, migration.NoModification)
	migration.MustRegister(1, &ReturnChallengeMsg{}, migration.NoModification)
}

const (
	pathCreateChallenge  = "wager/create"
	pathAcceptChallenge  = "wager/accept"
	pathResolveChallenge = "wager/resolve"
	pathReturnChallenge  = "wager/return"

	// Salt is mixed into a fixed size derivation hash, a bound keeps
	// the transaction size sane.
	maxSaltSize int = 128
)

var _ weave.Msg = (*CreateChallengeMsg)(nil)
var _ weave.Msg = (*AcceptChallengeMsg)(nil)
var _ weave.Msg = (*ResolveChallengeMsg)(nil)
var _ weave.Msg = (*ReturnChallengeMsg)(nil)

// ROUTING, Path method fulfills weave.Msg interface to allow routing

func (CreateChallengeMsg) Path() string {
	return pathCreateChallenge
}

func (AcceptChallengeMsg) Path() string {
	return pathAcceptChallenge
}

func (ResolveChallengeMsg) Path() string {
	return pathResolveChallenge
}

func (ReturnChallengeMsg) Path() string {
	return pathReturnChallenge
}

// VALIDATION, Validate method makes sure basic rules are enforced upon input data and fulfills weave.Msg interface

func (m *CreateChallengeMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if len(m.Salt) > maxSaltSize {
		return errors.Wrapf(errors.ErrInput, "salt must be at most %d bytes", maxSaltSize)
	}
	if m.Wager == nil {
		return errors.Wrap(errors.ErrEmpty, "wager")
	}
	if err := m.Wager.Validate(); err != nil {
		return errors.Wrap(err, "wager")
	}
	if !m.Wager.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "wager must be a positive amount")
	}
	if m.Timeout == 0 {
		// Zero timeout is a valid value that dates to 1970-01-01. We
		// know that this value is in the past and makes no sense. Most
		// likely value was not provided and a zero value remained.
		return errors.Wrap(errors.ErrInput, "timeout is required")
	}
	if err := m.Timeout.Validate(); err != nil {
		return errors.Wrap(err, "invalid timeout value")
	}
	return nil
}

func (m *AcceptChallengeMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := weave.Address(m.ChallengeId).Validate(); err != nil {
		return errors.Wrap(err, "challenge id")
	}
	if m.Wager == nil {
		return errors.Wrap(errors.ErrEmpty, "wager")
	}
	if err := m.Wager.Validate(); err != nil {
		return errors.Wrap(err, "wager")
	}
	if !m.Wager.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "wager must be a positive amount")
	}
	return nil
}

func (m *ResolveChallengeMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	return errors.Wrap(weave.Address(m.ChallengeId).Validate(), "challenge id")
}

func (m *ReturnChallengeMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	return errors.Wrap(weave.Address(m.ChallengeId).Validate(), "challenge id")
}
