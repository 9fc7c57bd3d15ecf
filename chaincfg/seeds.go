// Copyright (c) 2020 The funexd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"net"
	"time"

	"github.com/btcsuite/btcd/wire"
)

// oneWeek is the width of the window seed timestamps are drawn from.
const oneWeek = 7 * 24 * time.Hour

// SeedSpec is a hard-coded peer: a 16 byte IPv6 address, IPv4 peers using the
// IPv4-mapped form, and a port.
type SeedSpec struct {
	Addr [16]byte
	Port uint16
}

// RandSource is the random number source used to age fixed seeds.  A
// *math/rand.Rand satisfies it.
type RandSource interface {
	// Int63n returns a uniform number in [0, n).
	Int63n(n int64) int64
}

// ConvertSeeds turns hard-coded peers into address records.  Each record gets
// a random last-seen time in [now-2w, now-1w), old enough that addresses
// learned from real peers are preferred and recent enough to still be tried
// when nothing better is known.
func ConvertSeeds(specs []SeedSpec, now func() time.Time, rnd RandSource) []*wire.NetAddress {
	weekSecs := int64(oneWeek / time.Second)

	addrs := make([]*wire.NetAddress, 0, len(specs))
	for _, spec := range specs {
		ip := make(net.IP, net.IPv6len)
		copy(ip, spec.Addr[:])

		age := time.Duration(rnd.Int63n(weekSecs)+1) * time.Second
		na := wire.NewNetAddressIPPort(ip, spec.Port, wire.SFNodeNetwork)
		na.Timestamp = now().Add(-oneWeek - age)
		addrs = append(addrs, na)
	}
	return addrs
}

// ipv4Seed returns the IPv4-mapped SeedSpec of a.b.c.d:port.
func ipv4Seed(a, b, c, d byte, port uint16) SeedSpec {
	return SeedSpec{
		Addr: [16]byte{10: 0xff, 11: 0xff, 12: a, 13: b, 14: c, 15: d},
		Port: port,
	}
}

// mainNetSeeds are the fixed seeds of the main network.
var mainNetSeeds = []SeedSpec{
	ipv4Seed(51, 38, 200, 147, 20201),
	ipv4Seed(51, 38, 200, 148, 20201),
	ipv4Seed(51, 89, 29, 8, 20201),
	ipv4Seed(51, 89, 29, 9, 20201),
	ipv4Seed(51, 89, 29, 10, 20201),
	ipv4Seed(136, 243, 102, 155, 20201),
}

// testNetSeeds are the fixed seeds of the test network.  There are none yet.
var testNetSeeds = []SeedSpec{}
