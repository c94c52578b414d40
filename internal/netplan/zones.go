package netplan

import (
	"math/rand/v2"
	"slices"
)

// ShuffleZones returns a shuffled copy of zones. Selecting zones at random is
// kept out of Build so that a fixed pool always produces the same plan; pass
// a seeded source to reproduce an order.
func ShuffleZones(zones []string, r *rand.Rand) []string {
	out := slices.Clone(zones)
	if r == nil {
		rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
		return out
	}
	r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// SeededRand returns a deterministic source for ShuffleZones
func SeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// ZonePool picks the zone pool for cfg: the pinned availability_zones when
// present, otherwise a shuffle of the region's zones.
func ZonePool(cfg NetworkConfig, regionZones []string, r *rand.Rand) []string {
	if len(cfg.AvailabilityZones) > 0 {
		return slices.Clone(cfg.AvailabilityZones)
	}
	return ShuffleZones(regionZones, r)
}
