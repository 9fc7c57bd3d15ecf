// Copyright (c) 2020 The funexd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// chainparams selects one of the network profiles and prints it.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/davecgh/go-spew/spew"

	"github.com/funexcoin/funexd/chaincfg"
)

// writeSummary writes the commonly needed parameters of params to w.
func writeSummary(w io.Writer, params *chaincfg.Params, now time.Time) {
	fmt.Fprintf(w, "network:            %s\n", params.Name)
	fmt.Fprintf(w, "magic:              %08x\n", uint32(params.Net))
	fmt.Fprintf(w, "port:               %s\n", params.DefaultPort)
	fmt.Fprintf(w, "genesis:            %v\n", params.GenesisHash)
	fmt.Fprintf(w, "genesis time:       %v\n",
		params.GenesisBlock.Header.Timestamp.UTC())
	fmt.Fprintf(w, "pow limit bits:     %08x\n", params.PowLimitBits)
	fmt.Fprintf(w, "block spacing:      %v\n", params.TargetTimePerBlock)
	fmt.Fprintf(w, "halving interval:   %d\n", params.SubsidyReductionInterval)
	fmt.Fprintf(w, "coinbase maturity:  %d\n", params.CoinbaseMaturity)
	fmt.Fprintf(w, "max money:          %.0f\n",
		params.MaxMoneyOut.ToUnit(btcutil.AmountBTC))
	fmt.Fprintf(w, "last pow block:     %d\n", params.LastPOWBlock)
	fmt.Fprintf(w, "masternode pay:     %v\n",
		params.StartMasternodePayments.UTC())
	fmt.Fprintf(w, "address prefixes:   pubkey %d script %d secret %d\n",
		params.PubKeyHashAddrID, params.ScriptHashAddrID,
		params.PrivateKeyID)
	fmt.Fprintf(w, "extended keys:      public %x private %x coin type %d\n",
		params.HDPublicKeyID, params.HDPrivateKeyID, params.HDCoinType)

	for _, seed := range params.DNSSeeds {
		fmt.Fprintf(w, "dns seed:           %s (%v)\n", seed.Name, seed)
	}
	for _, na := range params.FixedSeeds {
		fmt.Fprintf(w, "fixed seed:         [%v]:%d\n", na.IP, na.Port)
	}

	data := &params.Checkpoints
	for _, cp := range data.Checkpoints {
		fmt.Fprintf(w, "checkpoint:         %d %v\n", cp.Height, cp.Hash)
	}

	// A node holding only the genesis block.
	progress := data.GuessVerificationProgress(1,
		params.GenesisBlock.Header.Timestamp, now, true)
	fmt.Fprintf(w, "genesis progress:   %.8f\n", progress)
}

// chainParamsMain is the real main function for chainparams.  It is necessary
// to work around the fact that deferred functions do not run when os.Exit() is
// called.
func chainParamsMain() error {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		return err
	}
	defer func() {
		if logRotator != nil {
			logRotator.Close()
		}
	}()

	chaincfg.SelectParams(cfg.network())
	params := chaincfg.ActiveParams()
	cprmLog.Debugf("Genesis coinbase of %s: %v", params.Name,
		params.GenesisBlock.Transactions[0].TxHash())

	writeSummary(os.Stdout, params, time.Now())
	if cfg.Dump {
		spew.Fdump(os.Stdout, params)
	}

	return nil
}

func main() {
	if err := chainParamsMain(); err != nil {
		if errors.Is(err, errHelp) {
			os.Exit(0)
		}
		os.Exit(1)
	}
}
