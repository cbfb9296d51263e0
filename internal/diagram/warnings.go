package diagram

import (
	"fmt"

	"github.com/atlasops/vpcatlas/internal/model"
)

// Warning flags a degenerate but non-fatal condition in the input
// model. Emission proceeds regardless; the result may contain empty
// blocks or visually merged nodes.
type Warning struct {
	Resource string
	ID       string
	Message  string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s %s: %s", w.Resource, w.ID, w.Message)
}

// Lint scans a model for conditions that degrade the diagram without
// breaking it: VPCs with no subnets, route tables with no routes,
// security groups with no ingress rules, and distinct raw ids that
// collapse to the same sanitized token.
func Lint(m *model.NetworkModel) []Warning {
	var warnings []Warning
	seen := make(map[string]string) // sanitized token -> first raw id

	note := func(resource, id, msg string) {
		warnings = append(warnings, Warning{Resource: resource, ID: id, Message: msg})
	}
	checkCollision := func(resource, id string) {
		token := Sanitize(id)
		if prev, ok := seen[token]; ok && prev != id {
			note(resource, id, fmt.Sprintf("sanitizes to %q, colliding with %q; nodes will merge", token, prev))
			return
		}
		seen[token] = id
	}

	for i := range m.VPCs {
		vpc := &m.VPCs[i]
		checkCollision("vpc", vpc.ID)
		if len(vpc.Subnets) == 0 {
			note("vpc", vpc.ID, "has no subnets; block will be empty")
		}
		for j := range vpc.Subnets {
			checkCollision("subnet", vpc.Subnets[j].ID)
		}
		for j := range vpc.RouteTables {
			rt := &vpc.RouteTables[j]
			checkCollision("route_table", rt.ID)
			if len(rt.Routes) == 0 {
				note("route_table", rt.ID, "has no routes")
			}
		}
		for j := range vpc.SecurityGroups {
			sg := &vpc.SecurityGroups[j]
			checkCollision("security_group", sg.ID)
			if len(sg.RulesIngress) == 0 {
				note("security_group", sg.ID, "has no ingress rules")
			}
		}
	}
	return warnings
}
