// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2020 The funexd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math/big"
	"time"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/btcutil"
)

// masternodePaymentsDelay is how long after genesis masternode payments
// start on every network.
const masternodePaymentsDelay = 24 * time.Hour

// seedSource is the clock and randomness fixed seeds are aged with.
type seedSource struct {
	now  func() time.Time
	rand RandSource
}

// newMainNetParams builds the main network profile.  Every field is set
// explicitly; the other profiles are derived from it.
func newMainNetParams(src seedSource) *Params {
	p := &Params{
		ID:          MainNet,
		Name:        MainNet.String(),
		Net:         mainNetMagic,
		DefaultPort: "20201",
		AlertPubKey: hexToBytes("04c74366671c2ac36505220c9e0ceb47aa2a0727e04" +
			"58c747ce168965b0655a7c9103103938ca30cec4ff9a33de895a934e75ab" +
			"6a96cf4b73f968f0637205f05de"),
		DNSSeeds: []DNSSeed{
			{"51.38.200.147", "51.38.200.147"},
			{"51.38.200.148", "51.38.200.148"},
			{"51.89.29.8", "51.89.29.8"},
			{"51.89.29.9", "51.89.29.9"},
			{"51.89.29.10", "51.89.29.10"},
			{"136.243.102.155", "136.243.102.155"},
		},
		FixedSeeds: ConvertSeeds(mainNetSeeds, src.now, src.rand),

		// Chain parameters
		PowLimit:                    new(big.Int).Set(mainPowLimit),
		PowLimitBits:                blockchain.BigToCompact(mainPowLimit),
		SubsidyReductionInterval:    1050000,
		MaxReorganizationDepth:      100,
		EnforceBlockUpgradeMajority: 750,
		RejectBlockOutdatedMajority: 950,
		ToCheckBlockUpgradeMajority: 1000,
		MinerThreads:                0,
		TargetTimespan:              time.Hour * 24, // 1 day
		TargetTimePerBlock:          time.Minute,    // 1 minute
		CoinbaseMaturity:            10,
		MasternodeCountDrift:        20,
		MaxMoneyOut:                 btcutil.Amount(50000000000 * btcutil.SatoshiPerBitcoin),

		// Height or time based activations
		LastPOWBlock:        1000,
		ModifierUpdateBlock: 1,

		MiningRequiresPeers:           true,
		AllowMinDifficultyBlocks:      false,
		DefaultConsistencyChecks:      false,
		RequireStandard:               true,
		MineBlocksOnDemand:            false,
		SkipProofOfWorkCheck:          false,
		TestnetToBeDeprecatedFieldRPC: false,
		HeadersFirstSyncingActive:     false,

		Checkpoints: CheckpointData{
			Checkpoints: []Checkpoint{
				{0, newHashFromStr("000009de1f54f56e269d4ee2b2215670293a068f0eec4843cd3fba687d2d3a20")},
			},
			LastCheckpointTime:   time.Unix(1598286246, 0),
			TxnsAtLastCheckpoint: 0,
			TxnsPerDay:           2000,
		},

		PoolMaxTransactions: 3,
		SporkKey: hexToBytes("04afd4fb0490a2d33ed77c81aa5dc9a029963cd9a8983" +
			"a2f1977c9e36ebdc71fba0b2dfbc7d37c6ecdefda381e29f47979dc91ce37" +
			"67ddd02f04085933681f3909"),
		MasternodePoolDummyAddress: "FTThDvMhmizBQvQJWfPbR9F3aGx5YHJArg",
		BudgetFeeConfirmations:     6,

		// Address encoding magics
		PubKeyHashAddrID: 35, // starts with F
		ScriptHashAddrID: 95, // starts with b
		PrivateKeyID:     55, // starts with K

		// BIP32 hierarchical deterministic extended key magics
		HDPublicKeyID:  [4]byte{0x08, 0x89, 0xca, 0xfd},
		HDPrivateKeyID: [4]byte{0x08, 0x89, 0xac, 0xdf},

		// BIP44 coin type used in the hierarchical deterministic path for
		// address generation.
		HDCoinType: 119,

		genesis: mainGenesis.clone(),
	}

	p.finishGenesis()
	p.mustValidateKeys()
	return p
}

// finishGenesis assembles and checks the genesis block from the profile's
// template and refreshes the fields derived from it.
func (p *Params) finishGenesis() {
	p.GenesisBlock, p.GenesisHash = p.genesis.mustAssemble(p.Name)
	p.StartMasternodePayments = p.genesis.timestamp.Add(masternodePaymentsDelay)
}
