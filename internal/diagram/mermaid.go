package diagram

import (
	"fmt"
	"strings"

	"github.com/atlasops/vpcatlas/internal/model"
)

// Layout constants. Every emitted line carries its own relative indent
// and the final artifact joins lines with "\n" plus one base indent, so
// everything sits one level under the "graph TB" declaration. Mermaid
// ignores the extra whitespace but the exact bytes are part of the
// output contract for renderer compatibility.
const (
	lineSep     = "\n    "
	indentVPC   = "    "
	indentAZ    = "        "
	indentSub   = "            "
	indentLeaf  = "                "
	placeholder = "Unknown"
)

// Emit converts a network model into Mermaid diagram text. It is a
// pure function: the same model yields byte-identical output on every
// call, and the model is never mutated. The only failure mode is a
// structurally invalid model.
func Emit(m *model.NetworkModel) (string, error) {
	if err := model.Validate(m); err != nil {
		return "", err
	}

	lines := []string{"graph TB"}
	for i := range m.VPCs {
		lines = append(lines, vpcLines(&m.VPCs[i])...)
	}
	lines = append(lines, styleLines()...)
	return strings.Join(lines, lineSep), nil
}

// vpcLines renders one VPC block: the containment subgraph with its AZ
// groups, followed by the Internet Gateway node and its edges to the
// VPC's public subnets (declaration order, not grouped order).
func vpcLines(vpc *model.VPC) []string {
	vpcID := Sanitize(vpc.ID)

	lines := []string{
		fmt.Sprintf(`%ssubgraph %s["%s (%s)"]`, indentVPC, vpcID, vpc.Name, vpc.CIDR),
	}

	groups := GroupByAZ(vpc.Subnets)
	for _, az := range groups.Zones() {
		lines = append(lines, azLines(az, groups.Subnets(az), vpc)...)
	}

	lines = append(lines,
		indentVPC+"end",
		fmt.Sprintf(`%sigw_%s["Internet Gateway"]`, indentVPC, vpcID),
	)

	for i := range vpc.Subnets {
		if vpc.Subnets[i].Public {
			lines = append(lines, fmt.Sprintf("%sigw_%s --> subnet_%s", indentVPC, vpcID, Sanitize(vpc.Subnets[i].ID)))
		}
	}
	return lines
}

func azLines(az string, subnets []*model.Subnet, vpc *model.VPC) []string {
	lines := []string{
		fmt.Sprintf(`%ssubgraph %s["%s"]`, indentAZ, Sanitize(az), az),
	}
	for _, subnet := range subnets {
		lines = append(lines, subnetLines(subnet, vpc)...)
	}
	return append(lines, indentAZ+"end")
}

func subnetLines(subnet *model.Subnet, vpc *model.VPC) []string {
	subnetID := Sanitize(subnet.ID)
	subnetType := "Private"
	if subnet.Public {
		subnetType = "Public"
	}

	lines := []string{
		fmt.Sprintf(`%ssubgraph subnet_%s["%s Subnet (%s)"]`, indentSub, subnetID, subnetType, subnet.CIDR),
	}
	for _, rt := range RouteTablesFor(subnet, vpc) {
		lines = append(lines, routeTableLines(rt, subnetID)...)
	}
	for _, sg := range SecurityGroupsFor(subnet, vpc) {
		lines = append(lines, securityGroupLines(sg, subnetID)...)
	}
	return append(lines, indentSub+"end")
}

// routeTableLines renders a route-table node plus its edge into the
// subnet block. Route entries missing a side fall back to "Unknown"
// rather than failing.
func routeTableLines(rt *model.RouteTable, subnetID string) []string {
	rtID := Sanitize(rt.ID)

	entries := make([]string, 0, len(rt.Routes))
	for _, r := range rt.Routes {
		dest, target := r.Destination, r.Target
		if dest == "" {
			dest = placeholder
		}
		if target == "" {
			target = placeholder
		}
		entries = append(entries, fmt.Sprintf("- %s → %s", dest, target))
	}

	return []string{
		fmt.Sprintf(`%srt_%s["Route Table<br/>%s"]`, indentLeaf, rtID, strings.Join(entries, "<br/>")),
		fmt.Sprintf("%srt_%s --> subnet_%s", indentLeaf, rtID, subnetID),
	}
}

// securityGroupLines renders a security-group node plus its edge into
// the subnet block. The label carries the group name and one line per
// ingress rule.
func securityGroupLines(sg *model.SecurityGroup, subnetID string) []string {
	sgID := Sanitize(sg.ID)

	entries := make([]string, 0, len(sg.RulesIngress))
	for _, rule := range sg.RulesIngress {
		proto := rule.Protocol
		if proto == "" {
			proto = "All"
		}
		ports := rule.PortRange
		if ports == "" {
			ports = "All-All"
		}
		entries = append(entries, fmt.Sprintf("- %s %s from %s",
			strings.ToUpper(proto), ports, strings.Join(rule.Sources, ", ")))
	}

	return []string{
		fmt.Sprintf(`%ssg_%s["%s<br/>Inbound:<br/>%s"]`, indentLeaf, sgID, sg.Name, strings.Join(entries, "<br/>")),
		fmt.Sprintf("%ssg_%s --> subnet_%s", indentLeaf, sgID, subnetID),
	}
}
