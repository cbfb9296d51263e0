package diagram

import (
	"slices"

	"github.com/atlasops/vpcatlas/internal/model"
)

// RouteTablesFor returns the route tables of vpc explicitly associated
// with subnet, preserving the vpc's route-table order.
func RouteTablesFor(subnet *model.Subnet, vpc *model.VPC) []*model.RouteTable {
	var out []*model.RouteTable
	for i := range vpc.RouteTables {
		rt := &vpc.RouteTables[i]
		if slices.Contains(rt.SubnetAssociations, subnet.ID) {
			out = append(out, rt)
		}
	}
	return out
}

// SecurityGroupsFor returns every security group of vpc, in order.
// Security groups are VPC-level objects in the collected model and are
// not scoped to individual subnets, so each subnet shows all of them.
func SecurityGroupsFor(subnet *model.Subnet, vpc *model.VPC) []*model.SecurityGroup {
	out := make([]*model.SecurityGroup, 0, len(vpc.SecurityGroups))
	for i := range vpc.SecurityGroups {
		out = append(out, &vpc.SecurityGroups[i])
	}
	return out
}
