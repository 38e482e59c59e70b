package blocking

import (
	"slices"

	"camlink/internal/identification"
)

// Clusters maps a blocking key to the ids of its members, in first-seen order
// and without duplicates.
type Clusters map[string][]string

// Add appends id to the cluster for key unless it is already a member.
func (c Clusters) Add(key, id string) {
	members := c[key]
	if slices.Contains(members, id) {
		return
	}
	c[key] = append(members, id)
}

// Keys returns the cluster keys in sorted order.
func (c Clusters) Keys() []string {
	keys := make([]string, 0, len(c))
	for key := range c {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

// BySolvedIdentity clusters solved records by brand and model. Unsolved
// records are ignored.
func BySolvedIdentity(records []identification.Record) Clusters {
	clusters := make(Clusters)
	for _, record := range records {
		if !record.Solved() {
			continue
		}
		clusters.Add(record.Identity(), record.ID)
	}
	return clusters
}

// ByNormalizedTitle clusters records by their exact normalized title.
func ByNormalizedTitle(records []identification.Record) Clusters {
	clusters := make(Clusters)
	for _, record := range records {
		clusters.Add(record.NormalizedTitle, record.ID)
	}
	return clusters
}

// Pairs emits every pair of distinct members within each cluster of two or
// more members.
func (c Clusters) Pairs() PairSet {
	pairs := make(PairSet)
	for _, members := range c {
		if len(members) < 2 {
			continue
		}
		for i, left := range members {
			for _, right := range members[i+1:] {
				if pair, ok := NewPair(left, right); ok {
					pairs[pair] = struct{}{}
				}
			}
		}
	}
	return pairs
}
