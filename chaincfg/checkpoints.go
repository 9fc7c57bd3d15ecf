// Copyright (c) 2020 The funexd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// sigCheckVerificationFactor is how much more expensive a transaction whose
// signatures must be checked is to verify than one below the last checkpoint.
const sigCheckVerificationFactor = 5.0

// CheckpointData is the checkpoint table of a network plus the statistics
// used to estimate initial sync progress.  The statistics never influence
// consensus.
type CheckpointData struct {
	// Checkpoints ordered from oldest to newest.
	Checkpoints []Checkpoint

	// LastCheckpointTime is the timestamp of the last checkpoint block.
	LastCheckpointTime time.Time

	// TxnsAtLastCheckpoint is the total number of transactions between
	// genesis and the last checkpoint.
	TxnsAtLastCheckpoint uint64

	// TxnsPerDay is the estimated number of transactions per day after the
	// last checkpoint.
	TxnsPerDay float64
}

func (d CheckpointData) clone() CheckpointData {
	c := d
	if d.Checkpoints == nil {
		return c
	}
	c.Checkpoints = make([]Checkpoint, 0, len(d.Checkpoints))
	for _, cp := range d.Checkpoints {
		hash := *cp.Hash
		c.Checkpoints = append(c.Checkpoints, Checkpoint{cp.Height, &hash})
	}
	return c
}

// LatestCheckpoint returns the most recent checkpoint, or nil when the table
// is empty.
func (d *CheckpointData) LatestCheckpoint() *Checkpoint {
	if len(d.Checkpoints) == 0 {
		return nil
	}
	return &d.Checkpoints[len(d.Checkpoints)-1]
}

// TotalBlocksEstimate returns the height of the latest checkpoint, which is
// the lowest height a synced chain is known to reach.
func (d *CheckpointData) TotalBlocksEstimate() int32 {
	if cp := d.LatestCheckpoint(); cp != nil {
		return cp.Height
	}
	return 0
}

// CheckpointHash returns the checkpointed hash at height, if any.
func (d *CheckpointData) CheckpointHash(height int32) (*chainhash.Hash, bool) {
	for i := range d.Checkpoints {
		if d.Checkpoints[i].Height == height {
			return d.Checkpoints[i].Hash, true
		}
	}
	return nil, false
}

// CheckBlock reports whether a block with the given hash may sit at height.
// It is false only when a checkpoint exists at height with a different hash.
func (d *CheckpointData) CheckBlock(height int32, hash *chainhash.Hash) bool {
	want, ok := d.CheckpointHash(height)
	if !ok {
		return true
	}
	return want.IsEqual(hash)
}

// GuessVerificationProgress estimates the fraction of the verification work
// done once a block with blockTime and chainTxns transactions in the chain up
// to and including it is connected.  Transactions past the last checkpoint
// are weighted by sigCheckVerificationFactor when sigChecks is set.
func (d *CheckpointData) GuessVerificationProgress(chainTxns uint64,
	blockTime, now time.Time, sigChecks bool) float64 {

	factor := 1.0
	if sigChecks {
		factor = sigCheckVerificationFactor
	}

	var workBefore, workAfter float64
	if chainTxns <= d.TxnsAtLastCheckpoint {
		cheapBefore := float64(chainTxns)
		cheapAfter := float64(d.TxnsAtLastCheckpoint - chainTxns)
		expensiveAfter := now.Sub(d.LastCheckpointTime).Hours() / 24 *
			d.TxnsPerDay
		workBefore = cheapBefore
		workAfter = cheapAfter + expensiveAfter*factor
	} else {
		cheapBefore := float64(d.TxnsAtLastCheckpoint)
		expensiveBefore := float64(chainTxns - d.TxnsAtLastCheckpoint)
		expensiveAfter := now.Sub(blockTime).Hours() / 24 * d.TxnsPerDay
		workBefore = cheapBefore + expensiveBefore*factor
		workAfter = expensiveAfter * factor
	}

	if workBefore+workAfter == 0 {
		return 0
	}
	return workBefore / (workBefore + workAfter)
}
