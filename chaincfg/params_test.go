// Copyright (c) 2020 The funexd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math/big"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/require"
)

func TestNetworkMagicDistinct(t *testing.T) {
	t.Parallel()

	r := newTestRegistry()
	seen := make(map[wire.BitcoinNet]NetworkID)
	for _, id := range Networks() {
		net := r.ByNetwork(id).Net
		other, ok := seen[net]
		require.False(t, ok, "%v shares magic %08x with %v", id, uint32(net), other)
		seen[net] = id
	}
	require.Len(t, seen, 4)
}

func TestNetworkNames(t *testing.T) {
	t.Parallel()

	r := newTestRegistry()
	tests := []struct {
		id   NetworkID
		name string
		port string
	}{
		{MainNet, "main", "20201"},
		{TestNet, "test", "20202"},
		{RegTest, "regtest", "20203"},
		{UnitTest, "unittest", "12125"},
	}
	for _, test := range tests {
		params := r.ByNetwork(test.id)
		require.Equal(t, test.id, params.ID)
		require.Equal(t, test.name, params.Name)
		require.Equal(t, test.name, test.id.String())
		require.Equal(t, test.port, params.DefaultPort)
	}
	require.Equal(t, "Unknown NetworkID (9)", NetworkID(9).String())
}

func TestGenesisCheckpoints(t *testing.T) {
	t.Parallel()

	r := newTestRegistry()
	for _, id := range []NetworkID{MainNet, TestNet, RegTest} {
		params := r.ByNetwork(id)
		cps := params.Checkpoints.Checkpoints
		require.Len(t, cps, 1, id.String())
		require.Equal(t, int32(0), cps[0].Height, id.String())
		require.Equal(t, *params.GenesisHash, *cps[0].Hash, id.String())
		require.Equal(t, params.GenesisBlock.Header.Timestamp,
			params.Checkpoints.LastCheckpointTime, id.String())
	}

	// The unit test network shares the main network table by value.
	mainNet, unitTest := r.ByNetwork(MainNet), r.ByNetwork(UnitTest)
	require.Equal(t, mainNet.Checkpoints, unitTest.Checkpoints)
	require.NotSame(t, mainNet.Checkpoints.Checkpoints[0].Hash,
		unitTest.Checkpoints.Checkpoints[0].Hash)
}

func TestMoneySupply(t *testing.T) {
	t.Parallel()

	r := newTestRegistry()
	mainNet, testNet := r.ByNetwork(MainNet), r.ByNetwork(TestNet)

	require.Equal(t, btcutil.Amount(50000000000*btcutil.SatoshiPerBitcoin), mainNet.MaxMoneyOut)
	require.Equal(t, btcutil.Amount(194472000*btcutil.SatoshiPerBitcoin), testNet.MaxMoneyOut)
	require.Less(t, int64(testNet.MaxMoneyOut), int64(mainNet.MaxMoneyOut))
	require.Equal(t, testNet.MaxMoneyOut, r.ByNetwork(RegTest).MaxMoneyOut)
	require.Equal(t, mainNet.MaxMoneyOut, r.ByNetwork(UnitTest).MaxMoneyOut)
}

func TestPowLimit(t *testing.T) {
	t.Parallel()

	r := newTestRegistry()
	want := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 255), big.NewInt(1))
	for _, id := range Networks() {
		params := r.ByNetwork(id)
		require.Zero(t, want.Cmp(params.PowLimit), id.String())
		require.Equal(t, uint32(0x207fffff), params.PowLimitBits, id.String())
	}

	// Profiles never share their limit.
	r.ByNetwork(UnitTest).PowLimit.SetInt64(1)
	require.Zero(t, want.Cmp(r.ByNetwork(MainNet).PowLimit))
	require.Zero(t, want.Cmp(mainPowLimit))
}

func TestProfileLayering(t *testing.T) {
	t.Parallel()

	r := newTestRegistry()
	mainNet := r.ByNetwork(MainNet)
	testNet := r.ByNetwork(TestNet)
	regTest := r.ByNetwork(RegTest)
	unitTest := r.ByNetwork(UnitTest)

	// Main network.
	require.Len(t, mainNet.DNSSeeds, 6)
	require.Len(t, mainNet.FixedSeeds, len(mainNetSeeds))
	require.True(t, mainNet.MiningRequiresPeers)
	require.True(t, mainNet.RequireStandard)
	require.False(t, mainNet.AllowMinDifficultyBlocks)
	require.False(t, mainNet.MineBlocksOnDemand)
	require.False(t, mainNet.TestnetToBeDeprecatedFieldRPC)
	require.Equal(t, int32(1050000), mainNet.SubsidyReductionInterval)
	require.Equal(t, int64(1440), mainNet.TargetBlocksPerRetarget())

	// Test network overrides.
	require.Empty(t, testNet.DNSSeeds)
	require.Empty(t, testNet.FixedSeeds)
	require.Equal(t, int32(51), testNet.EnforceBlockUpgradeMajority)
	require.Equal(t, int32(75), testNet.RejectBlockOutdatedMajority)
	require.Equal(t, int32(100), testNet.ToCheckBlockUpgradeMajority)
	require.Equal(t, 2*time.Minute, testNet.TargetTimePerBlock)
	require.Equal(t, int64(720), testNet.TargetBlocksPerRetarget())
	require.Equal(t, int32(4), testNet.MasternodeCountDrift)
	require.Equal(t, int32(2), testNet.PoolMaxTransactions)
	require.Equal(t, int32(3), testNet.BudgetFeeConfirmations)
	require.False(t, testNet.RequireStandard)
	require.True(t, testNet.TestnetToBeDeprecatedFieldRPC)
	require.NotEqual(t, mainNet.SporkKey, testNet.SporkKey)

	// Fields the test network does not override come from main.
	require.Equal(t, mainNet.SubsidyReductionInterval, testNet.SubsidyReductionInterval)
	require.Equal(t, mainNet.MaxReorganizationDepth, testNet.MaxReorganizationDepth)
	require.Equal(t, mainNet.GenesisBlock.Transactions, testNet.GenesisBlock.Transactions)

	// The regression test network keeps the test network addresses.
	require.Equal(t, testNet.Base58Prefix(PubKeyAddress), regTest.Base58Prefix(PubKeyAddress))
	require.Equal(t, testNet.Base58Prefix(ScriptAddress), regTest.Base58Prefix(ScriptAddress))
	require.Equal(t, testNet.Base58Prefix(SecretKey), regTest.Base58Prefix(SecretKey))
	require.Equal(t, testNet.HDPublicKeyID, regTest.HDPublicKeyID)
	require.Equal(t, testNet.HDPrivateKeyID, regTest.HDPrivateKeyID)
	require.Equal(t, testNet.HDCoinType, regTest.HDCoinType)
	require.Equal(t, testNet.SporkKey, regTest.SporkKey)
	require.Equal(t, testNet.MaxMoneyOut, regTest.MaxMoneyOut)
	require.Equal(t, int32(150), regTest.SubsidyReductionInterval)
	require.Equal(t, int32(750), regTest.EnforceBlockUpgradeMajority)
	require.Equal(t, time.Minute, regTest.TargetTimePerBlock)
	require.Empty(t, regTest.DNSSeeds)
	require.Empty(t, regTest.FixedSeeds)
	require.False(t, regTest.MiningRequiresPeers)
	require.True(t, regTest.AllowMinDifficultyBlocks)
	require.True(t, regTest.DefaultConsistencyChecks)
	require.True(t, regTest.MineBlocksOnDemand)
	require.False(t, regTest.TestnetToBeDeprecatedFieldRPC)

	// The unit test network keeps main's genesis and addresses.
	require.Equal(t, *mainNet.GenesisHash, *unitTest.GenesisHash)
	require.NotSame(t, mainNet.GenesisHash, unitTest.GenesisHash)
	require.NotSame(t, mainNet.GenesisBlock, unitTest.GenesisBlock)
	require.Equal(t, mainNet.PubKeyHashAddrID, unitTest.PubKeyHashAddrID)
	require.Equal(t, mainNet.HDPrivateKeyID, unitTest.HDPrivateKeyID)
	require.Empty(t, unitTest.DNSSeeds)
	require.Empty(t, unitTest.FixedSeeds)
	require.False(t, unitTest.MiningRequiresPeers)
	require.True(t, unitTest.DefaultConsistencyChecks)
	require.False(t, unitTest.AllowMinDifficultyBlocks)
	require.True(t, unitTest.MineBlocksOnDemand)
	require.False(t, unitTest.SkipProofOfWorkCheck)
}

// zeroSeedTimes clears the random part of a profile so builds can be
// compared.
func zeroSeedTimes(p *Params) {
	for _, na := range p.FixedSeeds {
		na.Timestamp = time.Time{}
	}
}

func TestBuildDeterministic(t *testing.T) {
	t.Parallel()

	// Identical clock and seed give identical profiles, seeds included.
	first, second := newTestRegistry(), newTestRegistry()
	for _, id := range Networks() {
		require.Equal(t, first.ByNetwork(id), second.ByNetwork(id), id.String())
	}

	// With different randomness only the seed timestamps may differ.
	other := NewRegistry(time.Now, rand.New(rand.NewSource(42)))
	for _, id := range Networks() {
		a, b := first.ByNetwork(id).clone(), other.ByNetwork(id).clone()
		zeroSeedTimes(a)
		zeroSeedTimes(b)
		require.Equal(t, a, b, id.String())
	}
}

func TestCloneIsDeep(t *testing.T) {
	t.Parallel()

	orig := newTestRegistry().ByNetwork(MainNet)
	c := orig.clone()
	require.Equal(t, orig, c)

	c.AlertPubKey[0] = 0
	c.SporkKey[0] = 0
	c.DNSSeeds[0].Host = "changed"
	c.FixedSeeds[0].Port = 1
	c.FixedSeeds[0].IP[15] = 0
	c.Checkpoints.Checkpoints[0].Hash[0] = 0xff
	c.GenesisBlock.Header.Nonce = 0
	c.GenesisHash[0] = 0xff
	c.genesis.pubKey[0] = 0

	require.Equal(t, byte(0x04), orig.AlertPubKey[0])
	require.Equal(t, byte(0x04), orig.SporkKey[0])
	require.Equal(t, "51.38.200.147", orig.DNSSeeds[0].Host)
	require.Equal(t, uint16(20201), orig.FixedSeeds[0].Port)
	require.Equal(t, byte(147), orig.FixedSeeds[0].IP[15])
	require.Equal(t, *orig.GenesisHash, *orig.Checkpoints.Checkpoints[0].Hash)
	require.Equal(t, uint32(1766932), orig.GenesisBlock.Header.Nonce)
	require.Equal(t, byte(0x04), orig.genesis.pubKey[0])
	require.Equal(t, byte(0x04), genesisOutputPubKey[0])
}

func TestBase58Prefixes(t *testing.T) {
	t.Parallel()

	r := newTestRegistry()
	tests := []struct {
		id         NetworkID
		pubKey     []byte
		script     []byte
		secret     []byte
		extPublic  []byte
		extSecret  []byte
		addrPrefix string
	}{
		{
			id:         MainNet,
			pubKey:     []byte{35},
			script:     []byte{95},
			secret:     []byte{55},
			extPublic:  []byte{0x08, 0x89, 0xca, 0xfd},
			extSecret:  []byte{0x08, 0x89, 0xac, 0xdf},
			addrPrefix: "F",
		},
		{
			id:         TestNet,
			pubKey:     []byte{65},
			script:     []byte{127},
			secret:     []byte{105},
			extPublic:  []byte{0x06, 0x42, 0x76, 0xcb},
			extSecret:  []byte{0x06, 0x39, 0x23, 0x64},
			addrPrefix: "T",
		},
	}

	for _, test := range tests {
		params := r.ByNetwork(test.id)
		require.Equal(t, test.pubKey, params.Base58Prefix(PubKeyAddress))
		require.Equal(t, test.script, params.Base58Prefix(ScriptAddress))
		require.Equal(t, test.secret, params.Base58Prefix(SecretKey))
		require.Equal(t, test.extPublic, params.Base58Prefix(ExtPublicKey))
		require.Equal(t, test.extSecret, params.Base58Prefix(ExtSecretKey))
		require.Equal(t, []byte{0x80, 0x00, 0x00, 0x77}, params.Base58Prefix(ExtCoinType))

		// Any 20 byte hash encodes to an address with the documented
		// leading character.
		addr := base58.CheckEncode(make([]byte, 20), params.PubKeyHashAddrID)
		require.True(t, strings.HasPrefix(addr, test.addrPrefix), addr)

		_, version, err := base58.CheckDecode(params.MasternodePoolDummyAddress)
		require.NoError(t, err)
		require.Equal(t, params.PubKeyHashAddrID, version)
	}

	// The returned slices are copies.
	mainNet := r.ByNetwork(MainNet)
	mainNet.Base58Prefix(ExtPublicKey)[0] = 0xff
	require.Equal(t, byte(0x08), mainNet.HDPublicKeyID[0])

	require.Panics(t, func() { mainNet.Base58Prefix(Base58Type(42)) })
}

func TestInvalidKeysAreFatal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(p *Params)
	}{
		{
			name:   "bad alert key",
			mutate: func(p *Params) { p.AlertPubKey = []byte{0x04, 0x01} },
		},
		{
			name:   "bad spork key",
			mutate: func(p *Params) { p.SporkKey = nil },
		},
		{
			name: "dummy address checksum",
			mutate: func(p *Params) {
				p.MasternodePoolDummyAddress = "FTThDvMhmizBQvQJWfPbR9F3aGx5YHJArh"
			},
		},
		{
			name: "dummy address of another network",
			mutate: func(p *Params) {
				p.MasternodePoolDummyAddress = "TQdFkLXeMwvwwQCt83YF7zeyxbnGrxqejR"
			},
		},
	}

	base := newTestRegistry().ByNetwork(MainNet)
	require.NotPanics(t, base.mustValidateKeys)
	for _, test := range tests {
		p := base.clone()
		test.mutate(p)
		require.Panics(t, p.mustValidateKeys, test.name)
	}
}
