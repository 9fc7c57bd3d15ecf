// Copyright (c) 2020 The funexd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math/big"
	"time"

	"github.com/btcsuite/btcd/blockchain"
)

// newRegTestParams builds the regression test network profile on top of the
// test network profile.  Address prefixes, keys and the coin type are kept
// from the test network.
func newRegTestParams(testNet *Params) *Params {
	p := testNet.clone()

	p.ID = RegTest
	p.Name = RegTest.String()
	p.Net = regTestMagic
	p.DefaultPort = "20203"

	p.SubsidyReductionInterval = 150
	p.EnforceBlockUpgradeMajority = 750
	p.RejectBlockOutdatedMajority = 950
	p.ToCheckBlockUpgradeMajority = 1000
	p.MinerThreads = 1
	p.TargetTimespan = time.Hour * 24  // 1 day
	p.TargetTimePerBlock = time.Minute // 1 minute
	p.PowLimit = new(big.Int).Set(regressionPowLimit)
	p.PowLimitBits = blockchain.BigToCompact(regressionPowLimit)

	p.genesis.timestamp = time.Unix(1598287110, 0) // 2020-08-24 16:38:30 +0000 UTC
	p.genesis.bits = 0x207fffff
	p.genesis.nonce = 1
	p.genesis.hash = *newHashFromStr("1b21a6b011979287509d784af25183181a32fa4d8b088d16bb8615ef62df3831")
	p.genesis.headerDigest = *newHashFromStr("0b84eac00831ca3be943b5828a6d295c9d1c4c27200f13f37320d11cb0fba9bd")
	p.finishGenesis()

	// NOTE: There must NOT be any seeds.
	p.DNSSeeds = nil
	p.FixedSeeds = nil

	p.MiningRequiresPeers = false
	p.AllowMinDifficultyBlocks = true
	p.DefaultConsistencyChecks = true
	p.RequireStandard = false
	p.MineBlocksOnDemand = true
	p.TestnetToBeDeprecatedFieldRPC = false

	p.Checkpoints = CheckpointData{
		Checkpoints: []Checkpoint{
			{0, newHashFromStr("1b21a6b011979287509d784af25183181a32fa4d8b088d16bb8615ef62df3831")},
		},
		LastCheckpointTime:   time.Unix(1598287110, 0),
		TxnsAtLastCheckpoint: 0,
		TxnsPerDay:           100,
	}

	return p
}
