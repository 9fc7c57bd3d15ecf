// Copyright (c) 2020 The funexd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"

	"github.com/btcsuite/btcd/btcutil"
)

// newTestNetParams builds the public test network profile by overriding the
// fields of the main network profile that differ.
func newTestNetParams(mainNet *Params, src seedSource) *Params {
	p := mainNet.clone()

	p.ID = TestNet
	p.Name = TestNet.String()
	p.Net = testNetMagic
	p.DefaultPort = "20202"
	p.AlertPubKey = hexToBytes("04fca8cbe51761339bfb5a4f5b7536371470ccae503d" +
		"332a2e52928c7c448a34e16ddcde94042bae8900ce8253ba1324690795c1d02442" +
		"0134edbad123e9b4dece")

	p.EnforceBlockUpgradeMajority = 51
	p.RejectBlockOutdatedMajority = 75
	p.ToCheckBlockUpgradeMajority = 100
	p.MinerThreads = 0
	p.TargetTimespan = time.Hour * 24      // 1 day
	p.TargetTimePerBlock = time.Minute * 2 // 2 minutes
	p.LastPOWBlock = 1000
	p.CoinbaseMaturity = 10
	p.MasternodeCountDrift = 4
	p.ModifierUpdateBlock = 1
	p.MaxMoneyOut = btcutil.Amount(194472000 * btcutil.SatoshiPerBitcoin)

	// Same genesis block as main with a later timestamp.
	p.genesis.timestamp = time.Unix(1598287085, 0) // 2020-08-24 16:38:05 +0000 UTC
	p.genesis.nonce = 1305507
	p.genesis.hash = *newHashFromStr("00000a2d8634d794a60f06377c1c2d520ed5b93c9c0f278dd934a31cf4078a09")
	p.genesis.headerDigest = *newHashFromStr("01ccdefa84162f8d9f9d543db1031971a76ab01696e2242ef866f27223764adf")
	p.finishGenesis()

	p.DNSSeeds = nil
	p.FixedSeeds = ConvertSeeds(testNetSeeds, src.now, src.rand)

	// Address encoding magics
	p.PubKeyHashAddrID = 65  // starts with T
	p.ScriptHashAddrID = 127 // starts with t
	p.PrivateKeyID = 105     // starts with k

	// BIP32 hierarchical deterministic extended key magics
	p.HDPublicKeyID = [4]byte{0x06, 0x42, 0x76, 0xcb}
	p.HDPrivateKeyID = [4]byte{0x06, 0x39, 0x23, 0x64}
	p.HDCoinType = 119

	p.MiningRequiresPeers = true
	p.AllowMinDifficultyBlocks = false
	p.DefaultConsistencyChecks = false
	p.RequireStandard = false
	p.MineBlocksOnDemand = false
	p.TestnetToBeDeprecatedFieldRPC = true

	p.Checkpoints = CheckpointData{
		Checkpoints: []Checkpoint{
			{0, newHashFromStr("00000a2d8634d794a60f06377c1c2d520ed5b93c9c0f278dd934a31cf4078a09")},
		},
		LastCheckpointTime:   time.Unix(1598287085, 0),
		TxnsAtLastCheckpoint: 0,
		TxnsPerDay:           250,
	}

	p.PoolMaxTransactions = 2
	p.SporkKey = hexToBytes("040f481b828bbf754d1e5cd3a00329a68aed33e50c9ee1" +
		"eb1490b511ec81663e47cfff7b07c0f020a6a242e852371546e2dc4899741caea4" +
		"5b9153c446f60ae947")
	p.MasternodePoolDummyAddress = "TQdFkLXeMwvwwQCt83YF7zeyxbnGrxqejR"

	// The test network only has an 8 block finalization window.
	p.BudgetFeeConfirmations = 3

	p.mustValidateKeys()
	return p
}
