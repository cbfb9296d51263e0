package diagram

import "github.com/atlasops/vpcatlas/internal/model"

// AZGroups is an insertion-ordered partition of subnets by availability
// zone. Key order is the order of first occurrence in the input; subnet
// order within a group is input order. Both orders are contractual:
// they decide the nesting order of the emitted diagram.
type AZGroups struct {
	keys   []string
	groups map[string][]*model.Subnet
}

// GroupByAZ partitions subnets by their AZ, preserving discovery order.
// Every subnet lands in exactly one group.
func GroupByAZ(subnets []model.Subnet) *AZGroups {
	g := &AZGroups{groups: make(map[string][]*model.Subnet)}
	for i := range subnets {
		s := &subnets[i]
		if _, seen := g.groups[s.AZ]; !seen {
			g.keys = append(g.keys, s.AZ)
		}
		g.groups[s.AZ] = append(g.groups[s.AZ], s)
	}
	return g
}

// Zones returns the AZ names in first-occurrence order.
func (g *AZGroups) Zones() []string {
	return g.keys
}

// Subnets returns the subnets of one zone in input order.
func (g *AZGroups) Subnets(az string) []*model.Subnet {
	return g.groups[az]
}

// Len returns the number of distinct zones.
func (g *AZGroups) Len() int {
	return len(g.keys)
}
