package search

import (
	"sort"
	"strings"

	"github.com/gem5-vision/catalogd/internal/domain/resource"
	"github.com/gem5-vision/catalogd/internal/domain/search/policy"
)

// rank orders consolidated resources in place by the requested policy.
// The sort is stable, so equal keys keep consolidation order.
func rank(resources []resource.Resource, p policy.Policy) {
	switch p {
	case policy.Date:
		sort.SliceStable(resources, func(i, j int) bool {
			return resources[i].Date() > resources[j].Date()
		})
	case policy.Name, policy.IDAsc:
		sort.SliceStable(resources, func(i, j int) bool {
			return strings.ToLower(resources[i].ID()) < strings.ToLower(resources[j].ID())
		})
	case policy.IDDesc:
		sort.SliceStable(resources, func(i, j int) bool {
			return strings.ToLower(resources[i].ID()) > strings.ToLower(resources[j].ID())
		})
	case policy.Version:
		sort.SliceStable(resources, func(i, j int) bool {
			return resources[i].MaxGem5Version() > resources[j].MaxGem5Version()
		})
	default:
		sort.SliceStable(resources, func(i, j int) bool {
			return resources[i].Score() > resources[j].Score()
		})
	}
}
