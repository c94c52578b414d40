package netplan

import (
	"encoding/binary"
	"fmt"
	"net/netip"
	"sort"
)

// AWS accepts VPC and subnet blocks between /16 and /28
const (
	minPrefixBits = 16
	maxPrefixBits = 28
)

// labeledPrefix keeps the config field a prefix came from for error reporting
type labeledPrefix struct {
	field  string
	raw    string
	prefix netip.Prefix
}

// parseCIDR parses an IPv4 network block in canonical form
func parseCIDR(field, raw string) (netip.Prefix, error) {
	p, err := netip.ParsePrefix(raw)
	if err != nil {
		return netip.Prefix{}, invalid(field, raw, "is not valid CIDR notation")
	}
	if !p.Addr().Is4() {
		return netip.Prefix{}, invalid(field, raw, "must be an IPv4 block")
	}
	if p.Masked() != p {
		return netip.Prefix{}, invalid(field, raw, fmt.Sprintf("has host bits set (network is %s)", p.Masked()))
	}
	if p.Bits() < minPrefixBits || p.Bits() > maxPrefixBits {
		return netip.Prefix{}, invalid(field, raw, fmt.Sprintf("prefix length must be between /%d and /%d", minPrefixBits, maxPrefixBits))
	}
	return p, nil
}

// containsPrefix reports whether inner lies entirely within outer
func containsPrefix(outer, inner netip.Prefix) bool {
	return outer.Bits() <= inner.Bits() && outer.Contains(inner.Addr())
}

// lastAddr returns the broadcast address of an IPv4 prefix
func lastAddr(p netip.Prefix) netip.Addr {
	a := p.Addr().As4()
	v := uint64(binary.BigEndian.Uint32(a[:]))
	v |= (uint64(1) << (32 - p.Bits())) - 1

	var out [4]byte
	binary.BigEndian.PutUint32(out[:], uint32(v))
	return netip.AddrFrom4(out)
}

// findOverlap sorts the prefixes by start address and sweeps once, returning
// the first intersecting pair in input order.
func findOverlap(prefixes []labeledPrefix) (a, b labeledPrefix, found bool) {
	if len(prefixes) < 2 {
		return a, b, false
	}

	order := make([]int, len(prefixes))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		pi, pj := prefixes[order[i]].prefix, prefixes[order[j]].prefix
		if c := pi.Addr().Compare(pj.Addr()); c != 0 {
			return c < 0
		}
		return pi.Bits() < pj.Bits()
	})

	widest := order[0]
	end := lastAddr(prefixes[widest].prefix)
	for _, idx := range order[1:] {
		cur := prefixes[idx].prefix
		if cur.Addr().Compare(end) <= 0 {
			first, second := widest, idx
			if second < first {
				first, second = second, first
			}
			return prefixes[first], prefixes[second], true
		}
		if e := lastAddr(cur); e.Compare(end) > 0 {
			widest, end = idx, e
		}
	}

	return a, b, false
}
