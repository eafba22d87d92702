package resource

// Consolidate collapses a raw candidate set into one representative per
// logical id: the candidate with the highest parsed resource_version,
// carrying the maximum relevance score seen across all versions of that
// id. Which version is shown and how relevant the entry is are tracked
// separately and merged only here, at the output step.
//
// Representatives keep the first-seen order of their ids. Candidates
// without an id cannot be deduplicated and are dropped. When two
// candidates of one id parse to the same version, the first seen wins;
// with an unordered backend this tie-break is arbitrary.
func Consolidate(candidates []Resource) []Resource {
	type entry struct {
		best     Resource
		bestVer  Version
		maxScore float64
	}

	order := make([]string, 0, len(candidates))
	byID := make(map[string]*entry, len(candidates))

	for _, c := range candidates {
		if c.ID() == "" {
			continue
		}

		ver := c.Version()
		e, ok := byID[c.ID()]
		if !ok {
			order = append(order, c.ID())
			byID[c.ID()] = &entry{best: c, bestVer: ver, maxScore: c.Score()}
			continue
		}

		if c.Score() > e.maxScore {
			e.maxScore = c.Score()
		}
		if e.bestVer.Less(ver) {
			e.best = c
			e.bestVer = ver
		}
	}

	out := make([]Resource, 0, len(order))
	for _, id := range order {
		e := byID[id]
		out = append(out, e.best.WithScore(e.maxScore))
	}
	return out
}

// Latest returns one entry per id, keeping only the highest
// resource_version. Scores are irrelevant here; representatives keep
// their own score.
func Latest(candidates []Resource) []Resource {
	type entry struct {
		best    Resource
		bestVer Version
	}

	order := make([]string, 0, len(candidates))
	byID := make(map[string]*entry, len(candidates))

	for _, c := range candidates {
		if c.ID() == "" {
			continue
		}

		ver := c.Version()
		e, ok := byID[c.ID()]
		if !ok {
			order = append(order, c.ID())
			byID[c.ID()] = &entry{best: c, bestVer: ver}
			continue
		}
		if e.bestVer.Less(ver) {
			e.best = c
			e.bestVer = ver
		}
	}

	out := make([]Resource, 0, len(order))
	for _, id := range order {
		out = append(out, byID[id].best)
	}
	return out
}
