// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2020 The funexd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincfg defines the network parameter profiles of the chain.
//
// A profile (Params) carries every consensus constant, address-encoding
// prefix, the genesis block, the checkpoint table and the peer discovery
// seeds of one network.  Four profiles exist: the main network, the public
// test network, the local regression test network and the in-process unit
// test network.
//
// A Registry builds all four profiles at once.  The process-wide registry
// behind the package level functions is built on first use, so an
// application should install its logger with UseLogger before calling any
// of them.  Test layers its overrides on Main, RegTest layers on Test and
// UnitTest layers on Main.  Each build reassembles its genesis block and
// panics, after logging a critical message, when the merkle root or header
// differs from the values recorded for that network or when the recorded
// block hash does not meet the header's difficulty bits.
//
// An application selects exactly one profile at startup and reads it through
// the registry afterwards:
//
//	chaincfg.SelectParams(chaincfg.TestNet)
//	params := chaincfg.ActiveParams()
//	fmt.Println(params.DefaultPort)
//
// Reading the active profile before a selection is a programming error and
// panics.  Only the UnitTest profile may be changed after selection, through
// the capability returned by ModifiableParamsForTest.
package chaincfg
