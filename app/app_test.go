package app

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/iov-one/weave"
	weaveapp "github.com/iov-one/weave/app"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/commands/server"
	"github.com/iov-one/weave/crypto"
	"github.com/iov-one/weave/x/cash"
	"github.com/iov-one/weave/x/sigs"

	"github.com/hazard-one/hazard/x/wager"
)

// genesisTime anchors all block times so that challenge timeouts
// in this test are deterministic.
var genesisTime = time.Unix(1565000000, 0).UTC()

func testInitChain(t *testing.T, myApp weaveapp.BaseApp, alice, bob weave.Address) {
	t.Helper()

	appState := fmt.Sprintf(`{
		"cash": [
			{
				"address": "%s",
				"coins": [{"whole": 50000, "ticker": "HZD"}]
			},
			{
				"address": "%s",
				"coins": [{"whole": 50000, "ticker": "HZD"}]
			}
		],
		"conf": {
			"cash": {
				"collector_address": "%s",
				"minimal_fee": {"whole": 0}
			},
			"migration": {"admin": "%s"}
		},
		"initialize_schema": [
			{"pkg": "cash", "ver": 1},
			{"pkg": "sigs", "ver": 1},
			{"pkg": "utils", "ver": 1},
			{"pkg": "wager", "ver": 1}
		]
	}`, alice, bob, alice, alice)

	assert.Equal(t, "", myApp.GetChainID())
	myApp.InitChain(abci.RequestInitChain{
		AppStateBytes: []byte(appState),
		ChainId:       "wager-net-1",
	})
}

// testCommit runs an empty block at the given height and returns
// the new app hash.
func testCommit(t *testing.T, myApp weaveapp.BaseApp, h int64, blockTime time.Time) []byte {
	t.Helper()

	header := abci.Header{
		Height:  h,
		ChainID: myApp.GetChainID(),
		Time:    blockTime,
	}
	myApp.BeginBlock(abci.RequestBeginBlock{Header: header})
	myApp.EndBlock(abci.RequestEndBlock{})
	cres := myApp.Commit()
	assert.NotEmpty(t, cres.Data)
	return cres.Data
}

func testQuery(t *testing.T, myApp weaveapp.BaseApp, path string, key []byte, obj weave.Persistent) {
	t.Helper()

	qres := myApp.Query(abci.RequestQuery{Path: path, Data: key})
	require.Equal(t, uint32(0), qres.Code, "%#v", qres)
	require.NotEmpty(t, qres.Value)
	err := weaveapp.UnmarshalOneResult(qres.Value, obj)
	require.NoError(t, err)
}

// testDeliverTx runs a complete block at the given height and
// block time containing a single signed transaction. Both CheckTx
// and DeliverTx must pass.
func testDeliverTx(t *testing.T, myApp weaveapp.BaseApp, h int64, blockTime time.Time,
	sum isTx_Sum, signer *crypto.PrivateKey, seq int64) abci.ResponseDeliverTx {
	t.Helper()

	tx := &Tx{Sum: sum}
	sig, err := sigs.SignTx(signer, tx, myApp.GetChainID(), seq)
	require.NoError(t, err)
	tx.Signatures = []*sigs.StdSignature{sig}
	txBytes, err := tx.Marshal()
	require.NoError(t, err)
	require.NotEmpty(t, txBytes)

	header := abci.Header{
		Height:  h,
		ChainID: myApp.GetChainID(),
		Time:    blockTime,
	}
	myApp.BeginBlock(abci.RequestBeginBlock{Header: header})
	chres := myApp.CheckTx(txBytes)
	require.Equal(t, uint32(0), chres.Code, chres.Log)
	dres := myApp.DeliverTx(txBytes)
	require.Equal(t, uint32(0), dres.Code, dres.Log)
	myApp.EndBlock(abci.RequestEndBlock{})
	cres := myApp.Commit()
	assert.NotEmpty(t, cres.Data)
	return dres
}

func walletCoins(t *testing.T, myApp weaveapp.BaseApp, addr weave.Address) coin.Coins {
	t.Helper()

	var set cash.Set
	testQuery(t, myApp, "/wallets", addr, &set)
	return set.Coins
}

func TestApp(t *testing.T) {
	abciApp, err := GenerateApp(&server.Options{
		Home:   "",
		Logger: log.NewNopLogger(),
		Debug:  true,
	})
	require.NoError(t, err)
	myApp := abciApp.(weaveapp.BaseApp)

	alicePriv := crypto.GenPrivKeyEd25519()
	alice := alicePriv.PublicKey().Address()
	bobPriv := crypto.GenPrivKeyEd25519()
	bob := bobPriv.PublicKey().Address()

	testInitChain(t, myApp, alice, bob)
	hash1 := testCommit(t, myApp, 1, genesisTime)

	// both parties start with their genesis allocation
	funds := walletCoins(t, myApp, alice)
	require.Equal(t, 1, len(funds))
	assert.Equal(t, int64(50000), funds[0].Whole)
	assert.Equal(t, "HZD", funds[0].Ticker)

	// alice opens a challenge over 2000 HZD
	stake := coin.NewCoin(2000, 0, "HZD")
	timeout := weave.AsUnixTime(genesisTime.Add(2 * time.Hour))
	dres := testDeliverTx(t, myApp, 2, genesisTime.Add(5*time.Second), &Tx_WagerCreateChallengeMsg{
		&wager.CreateChallengeMsg{
			Metadata: &weave.Metadata{Schema: 1},
			Salt:     []byte("match-1"),
			Wager:    &stake,
			Timeout:  timeout,
		},
	}, alicePriv, 0)
	challengeID := dres.Data
	require.NotEmpty(t, challengeID)

	hash2 := testCommit(t, myApp, 3, genesisTime.Add(6*time.Second))
	assert.NotEqual(t, hash1, hash2)

	// the stake left alice's wallet and sits in her vault
	funds = walletCoins(t, myApp, alice)
	require.Equal(t, 1, len(funds))
	assert.Equal(t, int64(48000), funds[0].Whole)

	var created wager.Challenge
	testQuery(t, myApp, "/challenges", challengeID, &created)
	assert.Equal(t, wager.ChallengeStatusCreated, created.Status)
	assert.Equal(t, alice, created.Initiator)

	// bob accepts with a matching stake
	testDeliverTx(t, myApp, 4, genesisTime.Add(10*time.Second), &Tx_WagerAcceptChallengeMsg{
		&wager.AcceptChallengeMsg{
			Metadata:    &weave.Metadata{Schema: 1},
			ChallengeId: challengeID,
			Wager:       &stake,
		},
	}, bobPriv, 0)

	funds = walletCoins(t, myApp, bob)
	require.Equal(t, 1, len(funds))
	assert.Equal(t, int64(48000), funds[0].Whole)

	var accepted wager.Challenge
	testQuery(t, myApp, "/challenges", challengeID, &accepted)
	assert.Equal(t, wager.ChallengeStatusAccepted, accepted.Status)
	assert.Equal(t, bob, accepted.Acceptor)

	// anyone can resolve, alice submits the transaction
	rres := testDeliverTx(t, myApp, 5, genesisTime.Add(15*time.Second), &Tx_WagerResolveChallengeMsg{
		&wager.ResolveChallengeMsg{
			Metadata:    &weave.Metadata{Schema: 1},
			ChallengeId: challengeID,
		},
	}, alicePriv, 1)

	winner := weave.Address(rres.Data)
	require.NoError(t, winner.Validate())
	require.True(t, winner.Equals(alice) || winner.Equals(bob))
	loser := alice
	if winner.Equals(alice) {
		loser = bob
	}

	// the winner holds both stakes, the loser only the remainder
	funds = walletCoins(t, myApp, winner)
	require.Equal(t, 1, len(funds))
	assert.Equal(t, int64(52000), funds[0].Whole)
	funds = walletCoins(t, myApp, loser)
	require.Equal(t, 1, len(funds))
	assert.Equal(t, int64(48000), funds[0].Whole)

	var resolved wager.Challenge
	testQuery(t, myApp, "/challenges", challengeID, &resolved)
	assert.Equal(t, wager.ChallengeStatusResolved, resolved.Status)
}

func TestAppRefund(t *testing.T) {
	abciApp, err := GenerateApp(&server.Options{
		Home:   "",
		Logger: log.NewNopLogger(),
		Debug:  true,
	})
	require.NoError(t, err)
	myApp := abciApp.(weaveapp.BaseApp)

	alicePriv := crypto.GenPrivKeyEd25519()
	alice := alicePriv.PublicKey().Address()
	bobPriv := crypto.GenPrivKeyEd25519()
	bob := bobPriv.PublicKey().Address()

	testInitChain(t, myApp, alice, bob)
	testCommit(t, myApp, 1, genesisTime)

	stake := coin.NewCoin(700, 0, "HZD")
	timeout := weave.AsUnixTime(genesisTime.Add(time.Hour))
	dres := testDeliverTx(t, myApp, 2, genesisTime.Add(5*time.Second), &Tx_WagerCreateChallengeMsg{
		&wager.CreateChallengeMsg{
			Metadata: &weave.Metadata{Schema: 1},
			Salt:     []byte("abandoned"),
			Wager:    &stake,
			Timeout:  timeout,
		},
	}, alicePriv, 0)
	challengeID := dres.Data

	funds := walletCoins(t, myApp, alice)
	require.Equal(t, 1, len(funds))
	assert.Equal(t, int64(49300), funds[0].Whole)

	// nobody accepted, after the deadline bob sweeps the stake
	// back to alice
	testDeliverTx(t, myApp, 3, genesisTime.Add(2*time.Hour), &Tx_WagerReturnChallengeMsg{
		&wager.ReturnChallengeMsg{
			Metadata:    &weave.Metadata{Schema: 1},
			ChallengeId: challengeID,
		},
	}, bobPriv, 0)

	funds = walletCoins(t, myApp, alice)
	require.Equal(t, 1, len(funds))
	assert.Equal(t, int64(50000), funds[0].Whole)

	var refunded wager.Challenge
	testQuery(t, myApp, "/challenges", challengeID, &refunded)
	assert.Equal(t, wager.ChallengeStatusRefunded, refunded.Status)
}
