package wager

import (
	"bytes"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

func init() {
	migration.MustRegister(1, &Challenge{}, migration.NoModification)
}

var _ orm.CloneableData = (*Challenge)(nil)

// Validate ensures the challenge is valid
func (c *Challenge) Validate() error {
	if err := c.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := c.Initiator.Validate(); err != nil {
		return errors.Wrap(err, "initiator")
	}
	if err := c.InitiatorVault.Validate(); err != nil {
		return errors.Wrap(err, "initiator vault")
	}
	if c.InitiatorWager == nil || !c.InitiatorWager.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "initiator wager must be a positive amount")
	}
	// Acceptor fields are empty until the challenge is accepted. A
	// refunded challenge may have been abandoned before anyone joined,
	// so there they stay optional.
	needAcceptor := c.Status == ChallengeStatusAccepted || c.Status == ChallengeStatusResolved
	if needAcceptor || len(c.Acceptor) != 0 {
		if err := c.Acceptor.Validate(); err != nil {
			return errors.Wrap(err, "acceptor")
		}
		if err := c.AcceptorVault.Validate(); err != nil {
			return errors.Wrap(err, "acceptor vault")
		}
		if c.AcceptorWager == nil || !c.AcceptorWager.IsPositive() {
			return errors.Wrap(errors.ErrAmount, "acceptor wager must be a positive amount")
		}
	}
	switch c.Status {
	case ChallengeStatusCreated, ChallengeStatusAccepted,
		ChallengeStatusResolved, ChallengeStatusRefunded:
		// All good.
	default:
		return errors.Wrapf(errors.ErrState, "invalid status %d", c.Status)
	}
	if len(c.AuthoritySeed) == 0 {
		return errors.Wrap(errors.ErrEmpty, "authority seed is required")
	}
	if c.Timeout == 0 {
		// Zero timeout is a valid value that dates to 1970-01-01. We
		// know that this value is in the past and makes no sense. Most
		// likely value was not provided and a zero value remained.
		return errors.Wrap(errors.ErrInput, "timeout is required")
	}
	if err := c.Timeout.Validate(); err != nil {
		return errors.Wrap(err, "invalid timeout value")
	}
	return nil
}

// Copy makes a new challenge
func (c *Challenge) Copy() orm.CloneableData {
	return &Challenge{
		Metadata:       c.Metadata.Copy(),
		Initiator:      c.Initiator.Clone(),
		InitiatorVault: c.InitiatorVault.Clone(),
		InitiatorWager: c.InitiatorWager.Clone(),
		Acceptor:       c.Acceptor.Clone(),
		AcceptorVault:  c.AcceptorVault.Clone(),
		AcceptorWager:  c.AcceptorWager.Clone(),
		Status:         c.Status,
		AuthoritySeed:  append([]byte(nil), c.AuthoritySeed...),
		Timeout:        c.Timeout,
	}
}

// NewChallengeBucket returns a bucket for keeping track of challenges.
// Challenges are stored under the address derived from the initiator and
// the salt, never under a sequence counter. Recreating a challenge with
// the same initiator and salt therefore collides on purpose.
func NewChallengeBucket() orm.ModelBucket {
	b := orm.NewModelBucket("chlng", &Challenge{},
		orm.WithIndex("initiator", idxInitiator, false),
		orm.WithIndex("acceptor", idxAcceptor, false),
	)
	return migration.NewModelBucket("wager", b)
}

func toChallenge(obj orm.Object) (*Challenge, error) {
	if obj == nil {
		return nil, errors.Wrap(errors.ErrHuman, "Cannot take index of nil")
	}
	c, ok := obj.Value().(*Challenge)
	if !ok {
		return nil, errors.Wrap(errors.ErrHuman, "Can only take index of Challenge")
	}
	return c, nil
}

func idxInitiator(obj orm.Object) ([]byte, error) {
	c, err := toChallenge(obj)
	if err != nil {
		return nil, err
	}
	return c.Initiator, nil
}

func idxAcceptor(obj orm.Object) ([]byte, error) {
	c, err := toChallenge(obj)
	if err != nil {
		return nil, err
	}
	return c.Acceptor, nil
}

// ChallengeKey deterministically derives the store key of a challenge
// from the initiator address and a salt. Anyone with the two inputs can
// recompute the key without consulting the store.
func ChallengeKey(initiator weave.Address, salt []byte) weave.Address {
	material := bytes.Join([][]byte{initiator, salt}, []byte("|"))
	return weave.NewCondition("wager", "seq", material).Address()
}

// vaultCondition derives the condition guarding one stake vault. The seed
// binds the vault to a single challenge, the role separates the two
// parties' vaults under the same seed. Only this package can produce the
// condition, which is what makes vault balances spendable exclusively
// through the wager handlers.
func vaultCondition(seed []byte, role string) (weave.Condition, error) {
	if len(seed) == 0 {
		return nil, errors.Wrap(ErrInvalidSeed, "empty seed")
	}
	switch role {
	case RoleInitiator, RoleAcceptor:
		// All good.
	default:
		return nil, errors.Wrapf(ErrInvalidSeed, "unknown role %q", role)
	}
	material := bytes.Join([][]byte{seed, []byte(role)}, []byte("|"))
	return weave.NewCondition("wager", "vault", material), nil
}

// Roles a vault can be derived for. The role is mixed into the vault
// address so both parties of one challenge get distinct vaults.
const (
	RoleInitiator = "initiator"
	RoleAcceptor  = "acceptor"
)
