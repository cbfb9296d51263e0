package aws

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/atlasops/vpcatlas/internal/model"
)

// NetworkCollector walks the EC2 networking APIs and assembles the
// resource model the diagram engine consumes. Pure data-fetch: all
// shaping decisions (grouping, identifiers, labels) live downstream.
type NetworkCollector struct {
	Client *ec2.Client
	Region string
}

func NewNetworkCollector(cfg aws.Config) *NetworkCollector {
	return &NetworkCollector{
		Client: ec2.NewFromConfig(cfg),
		Region: cfg.Region,
	}
}

// Collect describes every VPC in the region along with its subnets,
// route tables and security groups. Resource order follows API return
// order, which downstream emission preserves.
func (c *NetworkCollector) Collect(ctx context.Context) (*model.NetworkModel, error) {
	m := &model.NetworkModel{
		Region:    c.Region,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	paginator := ec2.NewDescribeVpcsPaginator(c.Client, &ec2.DescribeVpcsInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to describe vpcs: %v", err)
		}

		for _, vpc := range page.Vpcs {
			v := model.VPC{
				ID:   aws.ToString(vpc.VpcId),
				Name: nameTag(vpc.Tags),
				CIDR: aws.ToString(vpc.CidrBlock),
			}

			if v.Subnets, err = c.collectSubnets(ctx, v.ID); err != nil {
				return nil, err
			}
			if v.RouteTables, err = c.collectRouteTables(ctx, v.ID); err != nil {
				return nil, err
			}
			if v.SecurityGroups, err = c.collectSecurityGroups(ctx, v.ID); err != nil {
				return nil, err
			}

			m.VPCs = append(m.VPCs, v)
		}
	}
	return m, nil
}

func (c *NetworkCollector) collectSubnets(ctx context.Context, vpcID string) ([]model.Subnet, error) {
	var subnets []model.Subnet

	paginator := ec2.NewDescribeSubnetsPaginator(c.Client, &ec2.DescribeSubnetsInput{
		Filters: vpcFilter(vpcID),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to describe subnets for %s: %v", vpcID, err)
		}
		for _, subnet := range page.Subnets {
			subnets = append(subnets, model.Subnet{
				ID:     aws.ToString(subnet.SubnetId),
				Name:   nameTag(subnet.Tags),
				CIDR:   aws.ToString(subnet.CidrBlock),
				AZ:     aws.ToString(subnet.AvailabilityZone),
				Public: aws.ToBool(subnet.MapPublicIpOnLaunch),
			})
		}
	}
	return subnets, nil
}

func (c *NetworkCollector) collectRouteTables(ctx context.Context, vpcID string) ([]model.RouteTable, error) {
	var tables []model.RouteTable

	paginator := ec2.NewDescribeRouteTablesPaginator(c.Client, &ec2.DescribeRouteTablesInput{
		Filters: vpcFilter(vpcID),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to describe route tables for %s: %v", vpcID, err)
		}
		for _, rt := range page.RouteTables {
			t := model.RouteTable{
				ID:   aws.ToString(rt.RouteTableId),
				Name: nameTag(rt.Tags),
			}
			for _, route := range rt.Routes {
				t.Routes = append(t.Routes, model.Route{
					Destination: stringOr(route.DestinationCidrBlock, "Unknown"),
					Target:      routeTarget(route),
				})
			}
			for _, assoc := range rt.Associations {
				if assoc.SubnetId != nil {
					t.SubnetAssociations = append(t.SubnetAssociations, *assoc.SubnetId)
				}
			}
			tables = append(tables, t)
		}
	}
	return tables, nil
}

func (c *NetworkCollector) collectSecurityGroups(ctx context.Context, vpcID string) ([]model.SecurityGroup, error) {
	var groups []model.SecurityGroup

	paginator := ec2.NewDescribeSecurityGroupsPaginator(c.Client, &ec2.DescribeSecurityGroupsInput{
		Filters: vpcFilter(vpcID),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to describe security groups for %s: %v", vpcID, err)
		}
		for _, sg := range page.SecurityGroups {
			g := model.SecurityGroup{
				ID:          aws.ToString(sg.GroupId),
				Name:        aws.ToString(sg.GroupName),
				Description: aws.ToString(sg.Description),
			}
			for _, perm := range sg.IpPermissions {
				rule := model.IngressRule{
					Protocol:  stringOr(perm.IpProtocol, "All"),
					PortRange: portRange(perm.FromPort, perm.ToPort),
				}
				for _, ipRange := range perm.IpRanges {
					rule.Sources = append(rule.Sources, aws.ToString(ipRange.CidrIp))
				}
				g.RulesIngress = append(g.RulesIngress, rule)
			}
			groups = append(groups, g)
		}
	}
	return groups, nil
}

func vpcFilter(vpcID string) []types.Filter {
	return []types.Filter{{
		Name:   aws.String("vpc-id"),
		Values: []string{vpcID},
	}}
}

// nameTag extracts the Name tag, falling back to "Unnamed".
func nameTag(tags []types.Tag) string {
	for _, tag := range tags {
		if aws.ToString(tag.Key) == "Name" {
			return aws.ToString(tag.Value)
		}
	}
	return "Unnamed"
}

// routeTarget picks the first populated target id on a route. A route
// always carries exactly one target in practice; "Unknown" covers
// propagated or malformed entries.
func routeTarget(route types.Route) string {
	candidates := []*string{
		route.GatewayId,
		route.NatGatewayId,
		route.TransitGatewayId,
		route.VpcPeeringConnectionId,
		route.EgressOnlyInternetGatewayId,
		route.InstanceId,
		route.NetworkInterfaceId,
		route.CarrierGatewayId,
		route.LocalGatewayId,
	}
	for _, id := range candidates {
		if id != nil && *id != "" {
			return *id
		}
	}
	return "Unknown"
}

// portRange renders "{from}-{to}" with "All" for an absent bound, e.g.
// "80-80", "All-All" for protocol -1 rules.
func portRange(from, to *int32) string {
	return fmt.Sprintf("%s-%s", portBound(from), portBound(to))
}

func portBound(p *int32) string {
	if p == nil {
		return "All"
	}
	return fmt.Sprintf("%d", *p)
}

func stringOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}
