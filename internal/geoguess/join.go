package geoguess

// MapWithRounds is a Map with the rounds played on it attached.
type MapWithRounds struct {
	Map
	Rounds []Round `json:"rounds"`
}

// GroupRoundsByMap buckets rounds by MapID, keeping their order.
func GroupRoundsByMap(rounds []Round) map[string][]Round {
	groups := make(map[string][]Round)
	for _, r := range rounds {
		groups[r.MapID] = append(groups[r.MapID], r)
	}
	return groups
}

// JoinRounds attaches to every map the rounds that reference it. Maps
// without rounds get an empty, non-nil slice.
func JoinRounds(maps []Map, rounds []Round) []MapWithRounds {
	groups := GroupRoundsByMap(rounds)
	out := make([]MapWithRounds, 0, len(maps))
	for _, m := range maps {
		rs := groups[m.ID]
		if rs == nil {
			rs = []Round{}
		}
		out = append(out, MapWithRounds{Map: m, Rounds: rs})
	}
	return out
}

// PickUnplayed chooses uniformly among maps whose id is not in played.
// intn must return a value in [0, n). ok is false when every map has
// been played.
func PickUnplayed(maps []Map, played []string, intn func(n int) int) (m Map, ok bool) {
	seen := make(map[string]struct{}, len(played))
	for _, id := range played {
		seen[id] = struct{}{}
	}

	var candidates []Map
	for _, m := range maps {
		if _, done := seen[m.ID]; !done {
			candidates = append(candidates, m)
		}
	}
	if len(candidates) == 0 {
		return Map{}, false
	}
	return candidates[intn(len(candidates))], true
}
