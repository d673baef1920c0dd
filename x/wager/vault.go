package wager

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
	"github.com/iov-one/weave/x/cash"
)

func init() {
	migration.MustRegister(1, &Vault{}, migration.NoModification)
}

var _ orm.CloneableData = (*Vault)(nil)

// Validate ensures the vault is valid
func (v *Vault) Validate() error {
	if err := v.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := weave.Address(v.Challenge).Validate(); err != nil {
		return errors.Wrap(err, "challenge")
	}
	if err := v.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	switch v.Role {
	case RoleInitiator, RoleAcceptor:
		// All good.
	default:
		return errors.Wrapf(errors.ErrInput, "unknown role %q", v.Role)
	}
	if !coin.IsCC(v.Ticker) {
		return errors.Wrapf(errors.ErrCurrency, "invalid ticker: %s", v.Ticker)
	}
	if v.Balance != nil {
		if err := v.Balance.Validate(); err != nil {
			return errors.Wrap(err, "balance")
		}
		if v.Balance.Ticker != v.Ticker {
			return errors.Wrapf(ErrTickerMismatch, "balance in %s", v.Balance.Ticker)
		}
	}
	return nil
}

// Copy makes a new vault
func (v *Vault) Copy() orm.CloneableData {
	return &Vault{
		Metadata:  v.Metadata.Copy(),
		Challenge: append([]byte(nil), v.Challenge...),
		Owner:     v.Owner.Clone(),
		Role:      v.Role,
		Ticker:    v.Ticker,
		Balance:   v.Balance.Clone(),
	}
}

// NewVaultBucket returns a bucket for keeping track of vaults. A vault
// is stored under its derived address so the record and the wallet it
// guards share a key.
func NewVaultBucket() orm.ModelBucket {
	b := orm.NewModelBucket("vault", &Vault{},
		orm.WithIndex("challenge", idxChallenge, false),
		orm.WithIndex("owner", idxOwner, false),
	)
	return migration.NewModelBucket("wager", b)
}

func toVault(obj orm.Object) (*Vault, error) {
	if obj == nil {
		return nil, errors.Wrap(errors.ErrHuman, "Cannot take index of nil")
	}
	v, ok := obj.Value().(*Vault)
	if !ok {
		return nil, errors.Wrap(errors.ErrHuman, "Can only take index of Vault")
	}
	return v, nil
}

func idxChallenge(obj orm.Object) ([]byte, error) {
	v, err := toVault(obj)
	if err != nil {
		return nil, err
	}
	return v.Challenge, nil
}

func idxOwner(obj orm.Object) ([]byte, error) {
	v, err := toVault(obj)
	if err != nil {
		return nil, err
	}
	return v.Owner, nil
}

// VaultManager bundles every operation that touches a stake vault. All
// token movement in this package flows through the manager so the
// deposit bookkeeping can never drift apart from the wallet content
// unnoticed.
type VaultManager struct {
	bucket orm.ModelBucket
	bank   cash.Controller
}

func NewVaultManager(bank cash.Controller) VaultManager {
	return VaultManager{
		bucket: NewVaultBucket(),
		bank:   bank,
	}
}

// create derives a fresh vault address for the given challenge seed and
// role and persists an empty vault record under it. Creating the same
// vault twice fails.
func (m VaultManager) create(db weave.KVStore, seed []byte, owner weave.Address, role string, ticker string) (weave.Address, error) {
	cond, err := vaultCondition(seed, role)
	if err != nil {
		return nil, err
	}
	addr := cond.Address()

	switch err := m.bucket.Has(db, addr); {
	case err == nil:
		return nil, errors.Wrapf(ErrVaultExists, "vault %s", addr)
	case !errors.ErrNotFound.Is(err):
		return nil, errors.Wrap(err, "cannot check vault existence")
	}

	vault := &Vault{
		Metadata:  &weave.Metadata{Schema: 1},
		Challenge: seed,
		Owner:     owner,
		Role:      role,
		Ticker:    ticker,
		Balance:   &coin.Coin{Ticker: ticker},
	}
	if _, err := m.bucket.Put(db, addr, vault); err != nil {
		return nil, errors.Wrap(err, "cannot store vault")
	}
	return addr, nil
}

// deposit moves the amount from the vault owner into the vault wallet
// and records it. A vault accepts exactly one deposit in exactly the
// asset type it was created for.
func (m VaultManager) deposit(db weave.KVStore, addr weave.Address, amount coin.Coin) error {
	var vault Vault
	if err := m.bucket.One(db, addr, &vault); err != nil {
		return errors.Wrap(err, "cannot load vault from the store")
	}
	if vault.Ticker != amount.Ticker {
		return errors.Wrapf(ErrTickerMismatch, "vault holds %s, deposit in %s", vault.Ticker, amount.Ticker)
	}
	if vault.Balance != nil && !vault.Balance.IsZero() {
		return errors.Wrapf(ErrAlreadyFunded, "vault %s", addr)
	}
	if err := m.bank.MoveCoins(db, vault.Owner, addr, amount); err != nil {
		return errors.Wrap(err, "cannot fund vault")
	}
	vault.Balance = amount.Clone()
	if _, err := m.bucket.Put(db, addr, &vault); err != nil {
		return errors.Wrap(err, "cannot store vault")
	}
	return nil
}

// payout re-derives the vault condition from the challenge authority
// seed, proves it controls the given address and moves the whole vault
// content to the destination. The recorded deposit is cross-checked
// against both the expected amount and the wallet content first, a
// drift means a funding bug or tampering and aborts the payout.
func (m VaultManager) payout(db weave.KVStore, seed []byte, addr weave.Address, dest weave.Address, expected *coin.Coin) error {
	var vault Vault
	if err := m.bucket.One(db, addr, &vault); err != nil {
		return errors.Wrap(err, "cannot load vault from the store")
	}

	cond, err := vaultCondition(seed, vault.Role)
	if err != nil {
		return err
	}
	if !cond.Address().Equals(addr) {
		return errors.Wrapf(errors.ErrUnauthorized, "authority seed does not control vault %s", addr)
	}

	if vault.Balance == nil || vault.Balance.IsZero() {
		return errors.Wrapf(ErrVaultBalance, "vault %s is not funded", addr)
	}
	if expected != nil && !vault.Balance.Equals(*expected) {
		return errors.Wrapf(ErrBalanceMismatch, "vault %s holds %s, expected %s", addr, vault.Balance, expected)
	}
	available, err := m.bank.Balance(db, addr)
	if err != nil {
		return errors.Wrap(err, "cannot query vault balance")
	}
	if !available.Equals(coin.Coins{vault.Balance}) {
		return errors.Wrapf(ErrBalanceMismatch, "vault %s, recorded %s", addr, vault.Balance)
	}

	if err := cash.MoveCoins(db, m.bank, addr, dest, available); err != nil {
		return errors.Wrap(err, "cannot pay out vault")
	}
	vault.Balance = &coin.Coin{Ticker: vault.Ticker}
	if _, err := m.bucket.Put(db, addr, &vault); err != nil {
		return errors.Wrap(err, "cannot store vault")
	}
	return nil
}

// close removes an emptied vault record. Closing a vault that still
// holds tokens fails.
func (m VaultManager) close(db weave.KVStore, addr weave.Address) error {
	var vault Vault
	if err := m.bucket.One(db, addr, &vault); err != nil {
		return errors.Wrap(err, "cannot load vault from the store")
	}
	available, err := m.bank.Balance(db, addr)
	if err != nil {
		return errors.Wrap(err, "cannot query vault balance")
	}
	if available.IsPositive() {
		return errors.Wrapf(ErrVaultNotEmpty, "vault %s", addr)
	}
	if err := m.bucket.Delete(db, addr); err != nil {
		return errors.Wrap(err, "cannot delete vault")
	}
	return nil
}
