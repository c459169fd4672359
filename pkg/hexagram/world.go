package hexagram

import "github.com/aretw0/najia/pkg/domain"

// worldTable caches DeriveWorld for all 64 patterns.
var worldTable = buildWorld()

func buildWorld() map[domain.Pattern]domain.WorldResponse {
	table := make(map[domain.Pattern]domain.WorldResponse, 64)
	for p := range names {
		table[p] = DeriveWorld(p)
	}
	return table
}

// World returns the world/response/anchor triple of a valid pattern.
func World(p domain.Pattern) domain.WorldResponse {
	wr, ok := worldTable[p]
	if !ok && p.Valid() {
		corrupt("world", p)
	}
	return wr
}

// DeriveWorld places the world line by comparing the inner and outer
// trigram line by line (heaven = top, man = middle, earth = bottom).
// The rules are evaluated in order and the first match wins:
//
//	heaven same, others differ: 2nd   heaven differs, others same: 5th
//	man same, others differ: 4th, wandering (anchor 6)
//	man differs, others same: 3rd, returning (anchor 6)
//	earth same, others differ: 4th    earth differs, others same: 1st
//	trigrams equal: 6th               otherwise: 3rd
func DeriveWorld(p domain.Pattern) domain.WorldResponse {
	in, out := p.Lower(), p.Upper()
	top := in.Top() == out.Top()
	mid := in.Middle() == out.Middle()
	bot := in.Bottom() == out.Bottom()

	if top {
		if !mid && !bot {
			return place(2, 0)
		}
	} else if mid && bot {
		return place(5, 0)
	}

	if mid {
		if !bot && !top {
			return place(4, 6)
		}
	} else if bot && top {
		return place(3, 6)
	}

	if bot {
		if !mid && !top {
			return place(4, 0)
		}
	} else if mid && top {
		return place(1, 0)
	}

	if in == out {
		return place(6, 0)
	}
	return place(3, 0)
}

func place(world, anchor int) domain.WorldResponse {
	response := world + 3
	if world > 3 {
		response = world - 3
	}
	if anchor == 0 {
		anchor = world
	}
	return domain.WorldResponse{World: world, Response: response, Anchor: anchor}
}
