// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2020 The funexd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math/big"
	"time"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// These variables are the chain proof-of-work limit parameters for each default
// network.
var (
	// bigOne is 1 represented as a big.Int.  It is defined here to avoid
	// the overhead of creating it multiple times.
	bigOne = big.NewInt(1)

	// mainPowLimit is the highest proof of work value a block can have for
	// the main network.  It is the value 2^255 - 1.
	mainPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 255), bigOne)

	// regressionPowLimit is the highest proof of work value a block can
	// have for the regression test network.  It is the value 2^255 - 1.
	regressionPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 255), bigOne)
)

// NetworkID identifies one of the closed set of networks a profile exists
// for.
type NetworkID int

const (
	// MainNet is the production network.
	MainNet NetworkID = iota

	// TestNet is the public test network.
	TestNet

	// RegTest is the local regression test network.
	RegTest

	// UnitTest is the in-process network used by unit tests.  It is the
	// only network whose profile may change after selection.
	UnitTest

	// numNetworks is the number of defined networks.  It must always come
	// last.
	numNetworks
)

// netIDStrings maps each network to the name used for it on the command line
// and in the data directory.
var netIDStrings = map[NetworkID]string{
	MainNet:  "main",
	TestNet:  "test",
	RegTest:  "regtest",
	UnitTest: "unittest",
}

// String returns the network name in human-readable form.
func (id NetworkID) String() string {
	if s, ok := netIDStrings[id]; ok {
		return s
	}
	return fmt.Sprintf("Unknown NetworkID (%d)", int(id))
}

// Networks returns every defined network in declaration order.
func Networks() []NetworkID {
	ids := make([]NetworkID, 0, numNetworks)
	for id := MainNet; id < numNetworks; id++ {
		ids = append(ids, id)
	}
	return ids
}

// Network magic values.  Each is the little-endian reading of the four bytes
// that start every wire message of the network.
const (
	mainNetMagic  wire.BitcoinNet = 0x584e5546 // FUNX
	testNetMagic  wire.BitcoinNet = 0x786e7566 // funx
	regTestMagic  wire.BitcoinNet = 0x74676572 // regt
	unitTestMagic wire.BitcoinNet = 0x74696e75 // unit
)

// Base58Type enumerates the base58 prefixes a profile defines.
type Base58Type int

const (
	PubKeyAddress Base58Type = iota
	ScriptAddress
	SecretKey
	ExtPublicKey
	ExtSecretKey
	ExtCoinType
)

// hardenedKeyStart is the index at which a hardened BIP32 key starts.
const hardenedKeyStart = 0x80000000

// Checkpoint identifies a known good point in the block chain.  Using
// checkpoints allows a few optimizations for old blocks during initial download
// and also prevents forks from old blocks.
type Checkpoint struct {
	Height int32
	Hash   *chainhash.Hash
}

// DNSSeed identifies a DNS seed.
type DNSSeed struct {
	// Name is the label shown for the seed.
	Name string

	// Host defines the hostname or address queried for peers.
	Host string
}

// String returns the hostname of the DNS seed in human-readable form.
func (d DNSSeed) String() string {
	return d.Host
}

// Params defines a network by its parameters.  These parameters may be used
// by applications to differentiate networks as well as addresses and keys for
// one network from those intended for use on another network.
//
// A Params value must be treated as read-only once it has been selected.  The
// UnitTest profile is the only exception and is changed solely through
// ModifiableParams.
type Params struct {
	// ID is the network the parameters belong to.
	ID NetworkID

	// Name defines a human-readable identifier for the network.
	Name string

	// Net defines the magic bytes used to identify the network.
	Net wire.BitcoinNet

	// DefaultPort defines the default peer-to-peer port for the network.
	DefaultPort string

	// AlertPubKey is the uncompressed public key alerts are signed with.
	AlertPubKey []byte

	// DNSSeeds defines a list of DNS seeds for the network that are used
	// as one method to discover peers.
	DNSSeeds []DNSSeed

	// FixedSeeds are the hard-coded peers used when DNS discovery is not
	// available.
	FixedSeeds []*wire.NetAddress

	// GenesisBlock defines the first block of the chain.
	GenesisBlock *wire.MsgBlock

	// GenesisHash is the starting block hash.
	GenesisHash *chainhash.Hash

	// PowLimit defines the highest allowed proof of work value for a block
	// as a uint256.
	PowLimit *big.Int

	// PowLimitBits defines the highest allowed proof of work value for a
	// block in compact form.
	PowLimitBits uint32

	// SubsidyReductionInterval is the interval of blocks before the subsidy
	// is reduced.
	SubsidyReductionInterval int32

	// MaxReorganizationDepth is the deepest reorganization a node accepts.
	MaxReorganizationDepth int32

	// Block version majority thresholds.  Out of the last
	// ToCheckBlockUpgradeMajority blocks, EnforceBlockUpgradeMajority
	// upgraded blocks enforce the new rules for upgraded blocks and
	// RejectBlockOutdatedMajority reject blocks with the outdated version.
	EnforceBlockUpgradeMajority int32
	RejectBlockOutdatedMajority int32
	ToCheckBlockUpgradeMajority int32

	// MinerThreads is the default number of threads the built-in miner
	// uses.  Zero means one per CPU.
	MinerThreads int32

	// TargetTimespan is the desired amount of time that should elapse
	// before the block difficulty requirement is examined to determine how
	// it should be changed in order to maintain the desired block
	// generation rate.
	TargetTimespan time.Duration

	// TargetTimePerBlock is the desired amount of time to generate each
	// block.
	TargetTimePerBlock time.Duration

	// CoinbaseMaturity is the number of blocks required before newly mined
	// coins (coinbase transactions) can be spent.
	CoinbaseMaturity uint16

	// MasternodeCountDrift is the tolerated difference between the local
	// and the network masternode count.
	MasternodeCountDrift int32

	// MaxMoneyOut is the maximum total supply.
	MaxMoneyOut btcutil.Amount

	// LastPOWBlock is the last height that may be mined with proof of work
	// only.
	LastPOWBlock int32

	// ModifierUpdateBlock is the height at which the stake modifier
	// update activates.
	ModifierUpdateBlock int32

	// StartMasternodePayments is when masternode payments begin.
	StartMasternodePayments time.Time

	// Behaviour flags.
	MiningRequiresPeers           bool
	AllowMinDifficultyBlocks      bool
	DefaultConsistencyChecks      bool
	RequireStandard               bool
	MineBlocksOnDemand            bool
	SkipProofOfWorkCheck          bool
	TestnetToBeDeprecatedFieldRPC bool
	HeadersFirstSyncingActive     bool

	// Checkpoints is the checkpoint table together with the metadata used
	// for sync progress estimates.
	Checkpoints CheckpointData

	// Masternode and budget parameters.
	PoolMaxTransactions        int32
	SporkKey                   []byte
	MasternodePoolDummyAddress string
	BudgetFeeConfirmations     int32

	// Address encoding magics
	PubKeyHashAddrID byte // First byte of a P2PKH address
	ScriptHashAddrID byte // First byte of a P2SH address
	PrivateKeyID     byte // First byte of a WIF private key

	// BIP32 hierarchical deterministic extended key magics
	HDPrivateKeyID [4]byte
	HDPublicKeyID  [4]byte

	// BIP44 coin type used in the hierarchical deterministic path for
	// address generation.
	HDCoinType uint32

	// genesis holds the literal inputs the genesis block is assembled from,
	// so derived profiles can override a few of them and reassemble.
	genesis genesisTemplate
}

// Base58Prefix returns the prefix bytes of the given kind.  The returned slice
// is a copy.
func (p *Params) Base58Prefix(kind Base58Type) []byte {
	switch kind {
	case PubKeyAddress:
		return []byte{p.PubKeyHashAddrID}
	case ScriptAddress:
		return []byte{p.ScriptHashAddrID}
	case SecretKey:
		return []byte{p.PrivateKeyID}
	case ExtPublicKey:
		return append([]byte(nil), p.HDPublicKeyID[:]...)
	case ExtSecretKey:
		return append([]byte(nil), p.HDPrivateKeyID[:]...)
	case ExtCoinType:
		var b [4]byte
		binary.BigEndian.PutUint32(b[:], hardenedKeyStart+p.HDCoinType)
		return b[:]
	}
	panic(fmt.Sprintf("unknown base58 prefix type %d", int(kind)))
}

// TargetBlocksPerRetarget is the number of blocks between difficulty
// retargets implied by the target timespan and spacing.
func (p *Params) TargetBlocksPerRetarget() int64 {
	return int64(p.TargetTimespan / p.TargetTimePerBlock)
}

// clone returns a deep copy of p.  Derived profiles start from a clone so that
// no slice, big.Int or block is shared between profiles.
func (p *Params) clone() *Params {
	c := *p
	c.AlertPubKey = append([]byte(nil), p.AlertPubKey...)
	c.SporkKey = append([]byte(nil), p.SporkKey...)
	c.DNSSeeds = append([]DNSSeed(nil), p.DNSSeeds...)
	if p.FixedSeeds != nil {
		c.FixedSeeds = make([]*wire.NetAddress, 0, len(p.FixedSeeds))
		for _, na := range p.FixedSeeds {
			addr := *na
			addr.IP = append([]byte(nil), na.IP...)
			c.FixedSeeds = append(c.FixedSeeds, &addr)
		}
	}
	c.PowLimit = new(big.Int).Set(p.PowLimit)
	c.Checkpoints = p.Checkpoints.clone()
	c.genesis = p.genesis.clone()
	if p.GenesisBlock != nil {
		c.GenesisBlock = copyBlock(p.GenesisBlock)
	}
	if p.GenesisHash != nil {
		hash := *p.GenesisHash
		c.GenesisHash = &hash
	}
	return &c
}

// mustValidateKeys aborts when any hard-coded key or address of the profile
// is malformed.
func (p *Params) mustValidateKeys() {
	if _, err := btcec.ParsePubKey(p.AlertPubKey); err != nil {
		panicf("%s: invalid alert public key: %v", p.Name, err)
	}
	if _, err := btcec.ParsePubKey(p.SporkKey); err != nil {
		panicf("%s: invalid spork public key: %v", p.Name, err)
	}

	_, version, err := base58.CheckDecode(p.MasternodePoolDummyAddress)
	if err != nil {
		panicf("%s: invalid masternode pool dummy address %q: %v",
			p.Name, p.MasternodePoolDummyAddress, err)
	}
	if version != p.PubKeyHashAddrID {
		panicf("%s: masternode pool dummy address %q has version %d, "+
			"want %d", p.Name, p.MasternodePoolDummyAddress, version,
			p.PubKeyHashAddrID)
	}
}

// panicf logs the formatted message as critical and panics with it.  It is
// only used for violated invariants of hard-coded data and for misuse of the
// registry, both of which are programming errors.
func panicf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	log.Critical(msg)
	panic(msg)
}

// newHashFromStr converts the passed big-endian hex string into a
// chainhash.Hash.  It only differs from the one available in chainhash in that
// it panics on an error since it will only (and must only) be called with
// hard-coded, and therefore known good, hashes.
func newHashFromStr(hexStr string) *chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(hexStr)
	if err != nil {
		// Ordinarily I don't like panics in library code since it
		// can take applications down without them having a chance to
		// recover which is extremely annoying, however an exception is
		// being made in this case because the only way this can panic
		// is if there is an error in the hard-coded hashes.  Thus it
		// will only ever potentially panic on init and therefore is
		// 100% predictable.
		panic(err)
	}
	return hash
}

// hexToBytes converts the passed hex string into bytes and panics on error.
// It must only be called with hard-coded values.
func hexToBytes(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("invalid hex in source file: " + s)
	}
	return b
}
