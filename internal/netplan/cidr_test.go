package netplan

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func labeled(t *testing.T, cidrs ...string) []labeledPrefix {
	t.Helper()
	out := make([]labeledPrefix, 0, len(cidrs))
	for _, c := range cidrs {
		out = append(out, labeledPrefix{field: c, raw: c, prefix: netip.MustParsePrefix(c)})
	}
	return out
}

func TestLastAddr(t *testing.T) {
	assert.Equal(t, "10.0.0.255", lastAddr(netip.MustParsePrefix("10.0.0.0/24")).String())
	assert.Equal(t, "10.0.255.255", lastAddr(netip.MustParsePrefix("10.0.0.0/16")).String())
	assert.Equal(t, "172.16.0.31", lastAddr(netip.MustParsePrefix("172.16.0.16/28")).String())
	assert.Equal(t, "255.255.255.255", lastAddr(netip.MustParsePrefix("0.0.0.0/0")).String())
}

func TestFindOverlap(t *testing.T) {
	tests := []struct {
		name   string
		cidrs  []string
		found  bool
		first  string
		second string
	}{
		{"empty", nil, false, "", ""},
		{"single", []string{"10.0.0.0/24"}, false, "", ""},
		{"adjacent", []string{"10.0.0.0/24", "10.0.1.0/24"}, false, "", ""},
		{"unsorted disjoint", []string{"10.0.9.0/24", "10.0.1.0/24", "10.0.4.0/22"}, false, "", ""},
		{"contained", []string{"10.0.0.0/24", "10.0.0.128/25"}, true, "10.0.0.0/24", "10.0.0.128/25"},
		{"reported in input order", []string{"10.0.5.0/24", "10.0.4.0/22"}, true, "10.0.5.0/24", "10.0.4.0/22"},
		{"wide block hides later overlap", []string{"10.0.0.0/20", "10.0.1.0/24", "10.0.14.0/24"}, true, "10.0.0.0/20", "10.0.1.0/24"},
		{"identical", []string{"10.0.3.0/24", "10.0.3.0/24"}, true, "10.0.3.0/24", "10.0.3.0/24"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b, found := findOverlap(labeled(t, tt.cidrs...))
			require.Equal(t, tt.found, found)
			if found {
				assert.Equal(t, tt.first, a.raw)
				assert.Equal(t, tt.second, b.raw)
			}
		})
	}
}

func TestContainsPrefix(t *testing.T) {
	vpc := netip.MustParsePrefix("10.0.0.0/16")
	assert.True(t, containsPrefix(vpc, netip.MustParsePrefix("10.0.0.0/16")))
	assert.True(t, containsPrefix(vpc, netip.MustParsePrefix("10.0.255.240/28")))
	assert.False(t, containsPrefix(vpc, netip.MustParsePrefix("10.1.0.0/24")))
	assert.False(t, containsPrefix(vpc, netip.MustParsePrefix("10.0.0.0/15")))
}
