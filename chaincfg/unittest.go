// Copyright (c) 2020 The funexd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// newUnitTestParams builds the unit test network profile on top of the main
// network profile.  It keeps the main genesis block, addresses and checkpoint
// table but never talks to other peers.
func newUnitTestParams(mainNet *Params) *Params {
	p := mainNet.clone()

	p.ID = UnitTest
	p.Name = UnitTest.String()
	p.Net = unitTestMagic
	p.DefaultPort = "12125"

	p.DNSSeeds = nil
	p.FixedSeeds = nil

	p.MiningRequiresPeers = false
	p.DefaultConsistencyChecks = true
	p.AllowMinDifficultyBlocks = false
	p.MineBlocksOnDemand = true

	return p
}

// ModifiableParams is the capability to change the active UnitTest profile
// between test cases.  It is only handed out while UnitTest is the active
// network.
//
// It is not safe for concurrent use.  Callers must not change the profile
// while it is being read elsewhere.
type ModifiableParams struct {
	params *Params
}

// SetSubsidyReductionInterval sets the subsidy halving interval.
func (m *ModifiableParams) SetSubsidyReductionInterval(interval int32) {
	m.params.SubsidyReductionInterval = interval
}

// SetEnforceBlockUpgradeMajority sets the number of upgraded blocks needed to
// enforce the new rules on upgraded blocks.
func (m *ModifiableParams) SetEnforceBlockUpgradeMajority(majority int32) {
	m.params.EnforceBlockUpgradeMajority = majority
}

// SetRejectBlockOutdatedMajority sets the number of upgraded blocks needed to
// reject blocks with an outdated version.
func (m *ModifiableParams) SetRejectBlockOutdatedMajority(majority int32) {
	m.params.RejectBlockOutdatedMajority = majority
}

// SetToCheckBlockUpgradeMajority sets the window the two majorities above
// are counted in.
func (m *ModifiableParams) SetToCheckBlockUpgradeMajority(window int32) {
	m.params.ToCheckBlockUpgradeMajority = window
}

// SetDefaultConsistencyChecks toggles the expensive consistency checks.
func (m *ModifiableParams) SetDefaultConsistencyChecks(enabled bool) {
	m.params.DefaultConsistencyChecks = enabled
}

// SetAllowMinDifficultyBlocks toggles minimum difficulty blocks.
func (m *ModifiableParams) SetAllowMinDifficultyBlocks(allow bool) {
	m.params.AllowMinDifficultyBlocks = allow
}

// SetSkipProofOfWorkCheck toggles skipping the proof of work check.
func (m *ModifiableParams) SetSkipProofOfWorkCheck(skip bool) {
	m.params.SkipProofOfWorkCheck = skip
}
