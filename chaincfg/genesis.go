// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2020 The funexd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"time"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
)

const (
	// genesisCoinbaseMessage is the newspaper headline embedded in the
	// coinbase input of every genesis block.
	genesisCoinbaseMessage = "Canadian Software Startup Puts 40 percent " +
		"of Cash Reserves Into Bitcoin"

	// genesisCoinbaseBits is the first number pushed by the genesis
	// coinbase input script.
	genesisCoinbaseBits = 486604799

	// genesisCoinbaseExtraNonce is pushed as a one byte script number
	// after genesisCoinbaseBits.
	genesisCoinbaseExtraNonce = 4
)

// genesisOutputPubKey is the public key paid, with zero value, by the genesis
// coinbase output.
var genesisOutputPubKey = hexToBytes("04497ddd1f1803601f1ce713ccc37240152" +
	"7a22a70ef3554ff3c68e61b7bbb5a2cc3ecd55864f40c6ab9b81c7098cd653658f14" +
	"40b5d80c524360dc88e4cf1958a")

// genesisTemplate holds the literal inputs of a genesis block together with
// the values the assembled block is checked against.
//
// The block hash of the chain is recorded, not computed here.  It is pinned
// to the exact header it names by headerDigest, the double SHA-256 of the
// serialized 80 byte header, and must satisfy the header's difficulty bits.
type genesisTemplate struct {
	message      string
	pubKey       []byte
	version      int32
	timestamp    time.Time
	bits         uint32
	nonce        uint32
	hash         chainhash.Hash
	headerDigest chainhash.Hash
	merkleRoot   chainhash.Hash
}

func (g genesisTemplate) clone() genesisTemplate {
	g.pubKey = append([]byte(nil), g.pubKey...)
	return g
}

// coinbase builds the single transaction of the genesis block.
func (g *genesisTemplate) coinbase() (*wire.MsgTx, error) {
	// The extra nonce is a data push of the script number 4 rather than
	// the OP_4 small integer opcode, so it is appended as raw bytes.
	sigScript, err := txscript.NewScriptBuilder().
		AddInt64(genesisCoinbaseBits).
		AddOps([]byte{txscript.OP_DATA_1, genesisCoinbaseExtraNonce}).
		AddData([]byte(g.message)).
		Script()
	if err != nil {
		return nil, err
	}

	pkScript, err := txscript.NewScriptBuilder().
		AddData(g.pubKey).
		AddOp(txscript.OP_CHECKSIG).
		Script()
	if err != nil {
		return nil, err
	}

	tx := wire.NewMsgTx(1)
	prevOut := wire.NewOutPoint(&chainhash.Hash{}, wire.MaxPrevOutIndex)
	tx.AddTxIn(wire.NewTxIn(prevOut, sigScript, nil))
	tx.AddTxOut(wire.NewTxOut(0, pkScript))
	return tx, nil
}

// assemble builds the genesis block from the template.  It does not compare
// against the recorded values.
func (g *genesisTemplate) assemble() (*wire.MsgBlock, error) {
	tx, err := g.coinbase()
	if err != nil {
		return nil, err
	}

	merkleRoot := blockchain.CalcMerkleRoot(
		[]*btcutil.Tx{btcutil.NewTx(tx)}, false,
	)
	block := &wire.MsgBlock{
		Header: wire.BlockHeader{
			Version:    g.version,
			PrevBlock:  chainhash.Hash{},
			MerkleRoot: merkleRoot,
			Timestamp:  g.timestamp,
			Bits:       g.bits,
			Nonce:      g.nonce,
		},
		Transactions: []*wire.MsgTx{tx},
	}
	return block, nil
}

// checkGenesis compares an assembled genesis block against the recorded
// values of the template.
func (g *genesisTemplate) checkGenesis(block *wire.MsgBlock) error {
	header := &block.Header
	if header.MerkleRoot != g.merkleRoot {
		return fmt.Errorf("genesis merkle root is %v, want %v",
			header.MerkleRoot, g.merkleRoot)
	}
	if digest := header.BlockHash(); digest != g.headerDigest {
		return fmt.Errorf("genesis header digest is %v, want %v",
			digest, g.headerDigest)
	}

	target := blockchain.CompactToBig(header.Bits)
	if target.Sign() <= 0 {
		return fmt.Errorf("genesis difficulty bits %08x give a "+
			"non-positive target", header.Bits)
	}
	if blockchain.HashToBig(&g.hash).Cmp(target) > 0 {
		return fmt.Errorf("genesis block hash %v is above the target "+
			"of bits %08x", g.hash, header.Bits)
	}
	return nil
}

// mustAssemble assembles the genesis block of the named network and panics
// when it differs from the recorded constants.
//
// TODO: compute the block hash from the header once the header hash
// function of the chain is implemented, and compare it with g.hash here.
func (g *genesisTemplate) mustAssemble(network string) (*wire.MsgBlock, *chainhash.Hash) {
	block, err := g.assemble()
	if err != nil {
		panicf("%s: unable to assemble genesis block: %v", network, err)
	}
	if err := g.checkGenesis(block); err != nil {
		panicf("%s: %v", network, err)
	}
	hash := g.hash
	return block, &hash
}

// copyBlock returns a deep copy of block.
func copyBlock(block *wire.MsgBlock) *wire.MsgBlock {
	c := &wire.MsgBlock{
		Header:       block.Header,
		Transactions: make([]*wire.MsgTx, 0, len(block.Transactions)),
	}
	for _, tx := range block.Transactions {
		c.Transactions = append(c.Transactions, tx.Copy())
	}
	return c
}

// mainGenesis is the genesis template of the main network.  The other
// networks start from it and change the timestamp, bits and nonce.
var mainGenesis = genesisTemplate{
	message:   genesisCoinbaseMessage,
	pubKey:    genesisOutputPubKey,
	version:   1,
	timestamp: time.Unix(1598286246, 0), // 2020-08-24 16:24:06 +0000 UTC
	bits:      0x1e0ffff0,
	nonce:     1766932,
	hash:         *newHashFromStr("000009de1f54f56e269d4ee2b2215670293a068f0eec4843cd3fba687d2d3a20"),
	headerDigest: *newHashFromStr("25d4848be5700e53c369d95ada774fd07d72523a9b6c59f853d6ed7aa3ec6242"),
	merkleRoot:   *newHashFromStr("1663ca82406c1ab513d0de245ed2121e57980ed18e49459548eeb59e214faf5f"),
}
