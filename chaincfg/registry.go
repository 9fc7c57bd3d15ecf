// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2020 The funexd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/btcsuite/btcd/wire"
)

var (
	// ErrDuplicateNet describes an error where the parameters for a network
	// could not be registered because another registered network uses the
	// same magic bytes.
	ErrDuplicateNet = errors.New("duplicate network magic")

	// ErrUnknownHDKeyID describes an error where the provided id which
	// is intended to identify the network for a hierarchical deterministic
	// private extended key is not registered.
	ErrUnknownHDKeyID = errors.New("unknown hd private extended key bytes")

	// ErrInvalidHDKeyID describes an error where the provided hierarchical
	// deterministic version bytes, or hd key id, is malformed.
	ErrInvalidHDKeyID = errors.New("invalid hd extended key version bytes")
)

// Registry holds the four network profiles of a process and tracks which one
// is active.  A registry starts unselected and moves to selected on the first
// call to Select.  There is no way back to unselected.
//
// Select must complete before the active profile is read from other
// goroutines.  After that the profiles are read-only, except for the UnitTest
// profile changed through MutableActive, and may be read concurrently.
type Registry struct {
	profiles [numNetworks]*Params
	active   *Params

	registeredNets    map[wire.BitcoinNet]struct{}
	pubKeyHashAddrIDs map[byte]struct{}
	scriptHashAddrIDs map[byte]struct{}
	hdPrivToPubKeyIDs map[[4]byte][]byte
}

// NewRegistry builds and registers every network profile.  The clock and
// random source are used to age the fixed seeds.  It panics when a genesis
// block does not match its recorded hash, when a hard-coded key is malformed
// or when two profiles share network magic.
func NewRegistry(now func() time.Time, rnd RandSource) *Registry {
	src := seedSource{now: now, rand: rnd}

	mainNet := newMainNetParams(src)
	testNet := newTestNetParams(mainNet, src)

	r := &Registry{
		registeredNets:    make(map[wire.BitcoinNet]struct{}),
		pubKeyHashAddrIDs: make(map[byte]struct{}),
		scriptHashAddrIDs: make(map[byte]struct{}),
		hdPrivToPubKeyIDs: make(map[[4]byte][]byte),
	}
	r.mustRegister(mainNet)
	r.mustRegister(testNet)
	r.mustRegister(newRegTestParams(testNet))
	r.mustRegister(newUnitTestParams(mainNet))
	return r
}

// register adds the profile and its address magics to the registry.  It
// fails with ErrDuplicateNet when the network magic is already in use.
func (r *Registry) register(params *Params) error {
	if _, ok := r.registeredNets[params.Net]; ok {
		return ErrDuplicateNet
	}

	err := r.registerHDKeyID(params.HDPublicKeyID[:], params.HDPrivateKeyID[:])
	if err != nil {
		return err
	}

	r.registeredNets[params.Net] = struct{}{}
	r.pubKeyHashAddrIDs[params.PubKeyHashAddrID] = struct{}{}
	r.scriptHashAddrIDs[params.ScriptHashAddrID] = struct{}{}
	r.profiles[params.ID] = params
	return nil
}

// mustRegister performs the same function as register except it panics if
// there is an error.  This should only be called while building a registry.
func (r *Registry) mustRegister(params *Params) {
	if err := r.register(params); err != nil {
		panicf("failed to register network %s: %v", params.Name, err)
	}
}

// registerHDKeyID registers a public and private hierarchical deterministic
// extended key ID pair.
func (r *Registry) registerHDKeyID(hdPublicKeyID []byte, hdPrivateKeyID []byte) error {
	if len(hdPublicKeyID) != 4 || len(hdPrivateKeyID) != 4 {
		return ErrInvalidHDKeyID
	}

	var keyID [4]byte
	copy(keyID[:], hdPrivateKeyID)
	r.hdPrivToPubKeyIDs[keyID] = append([]byte(nil), hdPublicKeyID...)

	return nil
}

// Select makes the profile of the given network the active one.  It is meant
// to be called exactly once at startup.  An unknown network is a programming
// error and panics.
func (r *Registry) Select(id NetworkID) {
	params := r.ByNetwork(id)
	r.active = params

	log.Infof("Selected %s network (magic %08x, port %s)", params.Name,
		uint32(params.Net), params.DefaultPort)
}

// Active returns the active profile.  Calling it before Select is a
// programming error and panics.
func (r *Registry) Active() *Params {
	if r.active == nil {
		panicf("network parameters read before a network was selected")
	}
	return r.active
}

// ByNetwork returns the profile of the given network without changing the
// active one.  An unknown network is a programming error and panics.
func (r *Registry) ByNetwork(id NetworkID) *Params {
	if id < 0 || id >= numNetworks || r.profiles[id] == nil {
		panicf("unimplemented network %v", id)
	}
	return r.profiles[id]
}

// MutableActive returns the capability to change the active profile.  It
// panics unless the active network is UnitTest.
func (r *Registry) MutableActive() *ModifiableParams {
	params := r.Active()
	if params.ID != UnitTest {
		panicf("network parameters of %s are immutable", params.Name)
	}
	return &ModifiableParams{params: params}
}

// IsPubKeyHashAddrID returns whether the id is an identifier known to prefix a
// pay-to-pubkey-hash address on any registered network.  This is used when
// decoding an address string into a specific address type.  It is up to the
// caller to check both this and IsScriptHashAddrID and decide whether an
// address is a pubkey hash address, script hash address, neither, or
// undeterminable (if both return true).
func (r *Registry) IsPubKeyHashAddrID(id byte) bool {
	_, ok := r.pubKeyHashAddrIDs[id]
	return ok
}

// IsScriptHashAddrID returns whether the id is an identifier known to prefix a
// pay-to-script-hash address on any registered network.  This is used when
// decoding an address string into a specific address type.  It is up to the
// caller to check both this and IsPubKeyHashAddrID and decide whether an
// address is a pubkey hash address, script hash address, neither, or
// undeterminable (if both return true).
func (r *Registry) IsScriptHashAddrID(id byte) bool {
	_, ok := r.scriptHashAddrIDs[id]
	return ok
}

// HDPrivateKeyToPublicKeyID accepts a private hierarchical deterministic
// extended key id and returns the associated public key id.  When the provided
// id is not registered, the ErrUnknownHDKeyID error will be returned.
func (r *Registry) HDPrivateKeyToPublicKeyID(id []byte) ([]byte, error) {
	if len(id) != 4 {
		return nil, ErrUnknownHDKeyID
	}

	var key [4]byte
	copy(key[:], id)
	pubBytes, ok := r.hdPrivToPubKeyIDs[key]
	if !ok {
		return nil, ErrUnknownHDKeyID
	}

	return append([]byte(nil), pubBytes...), nil
}

// lazyRegistry builds a registry on first use.
type lazyRegistry struct {
	once     sync.Once
	build    func() *Registry
	registry *Registry
}

// get returns the registry, building it on the first call.  A build that
// panics leaves no registry behind.
func (l *lazyRegistry) get() *Registry {
	l.once.Do(func() {
		l.registry = l.build()
	})
	if l.registry == nil {
		panicf("network parameters are unavailable after a failed build")
	}
	return l.registry
}

// defaultRegistry is the process-wide registry used by the package level
// functions below.  It is built on first use rather than at package
// initialization, so a logger installed with UseLogger beforehand sees the
// critical message of a failed genesis check.
var defaultRegistry = &lazyRegistry{
	build: func() *Registry {
		return NewRegistry(time.Now,
			rand.New(rand.NewSource(time.Now().UnixNano())))
	},
}

// DefaultRegistry returns the process-wide registry, for callers that pass
// the registry to their subsystems explicitly.
func DefaultRegistry() *Registry {
	return defaultRegistry.get()
}

// SelectParams selects the active network of the process-wide registry.
func SelectParams(id NetworkID) {
	DefaultRegistry().Select(id)
}

// ActiveParams returns the active profile of the process-wide registry.
func ActiveParams() *Params {
	return DefaultRegistry().Active()
}

// ParamsForNetwork returns the profile of the given network from the
// process-wide registry.
func ParamsForNetwork(id NetworkID) *Params {
	return DefaultRegistry().ByNetwork(id)
}

// ModifiableParamsForTest returns the capability to change the active
// profile of the process-wide registry.  It panics unless UnitTest is active.
func ModifiableParamsForTest() *ModifiableParams {
	return DefaultRegistry().MutableActive()
}

// IsPubKeyHashAddrID reports whether id prefixes pay-to-pubkey-hash addresses
// on any network of the process-wide registry.
func IsPubKeyHashAddrID(id byte) bool {
	return DefaultRegistry().IsPubKeyHashAddrID(id)
}

// IsScriptHashAddrID reports whether id prefixes pay-to-script-hash addresses
// on any network of the process-wide registry.
func IsScriptHashAddrID(id byte) bool {
	return DefaultRegistry().IsScriptHashAddrID(id)
}

// HDPrivateKeyToPublicKeyID maps an extended private key id to its public
// key id using the process-wide registry.
func HDPrivateKeyToPublicKeyID(id []byte) ([]byte, error) {
	return DefaultRegistry().HDPrivateKeyToPublicKeyID(id)
}
