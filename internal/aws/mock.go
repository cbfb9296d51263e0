package aws

import (
	"context"
	"time"

	"github.com/atlasops/vpcatlas/internal/model"
)

// MockCollector returns a fixed two-AZ topology without touching AWS.
// Used by the hidden --mock flag for demos and CI runs that have no
// credentials.
type MockCollector struct{}

func NewMockCollector() *MockCollector {
	return &MockCollector{}
}

func (c *MockCollector) Collect(ctx context.Context) (*model.NetworkModel, error) {
	// Simulate network delay so the CLI feels like a real scan.
	time.Sleep(100 * time.Millisecond)

	return &model.NetworkModel{
		Region:    "us-east-1",
		Timestamp: "2024-01-01T00:00:00Z",
		VPCs: []model.VPC{
			{
				ID:   "vpc-0mock1234567890",
				Name: "demo-vpc",
				CIDR: "10.0.0.0/16",
				Subnets: []model.Subnet{
					{ID: "subnet-0mockpub1a", Name: "demo-public-a", CIDR: "10.0.1.0/24", AZ: "us-east-1a", Public: true},
					{ID: "subnet-0mockpriv1a", Name: "demo-private-a", CIDR: "10.0.2.0/24", AZ: "us-east-1a"},
					{ID: "subnet-0mockpriv1b", Name: "demo-private-b", CIDR: "10.0.3.0/24", AZ: "us-east-1b"},
				},
				RouteTables: []model.RouteTable{
					{
						ID:   "rtb-0mockpublic",
						Name: "demo-public-rt",
						Routes: []model.Route{
							{Destination: "10.0.0.0/16", Target: "local"},
							{Destination: "0.0.0.0/0", Target: "igw-0mock123"},
						},
						SubnetAssociations: []string{"subnet-0mockpub1a"},
					},
					{
						ID:   "rtb-0mockprivate",
						Name: "demo-private-rt",
						Routes: []model.Route{
							{Destination: "10.0.0.0/16", Target: "local"},
							{Destination: "0.0.0.0/0", Target: "nat-0mock456"},
						},
						SubnetAssociations: []string{"subnet-0mockpriv1a", "subnet-0mockpriv1b"},
					},
				},
				SecurityGroups: []model.SecurityGroup{
					{
						ID:          "sg-0mockweb",
						Name:        "web",
						Description: "Allow inbound HTTP/HTTPS",
						RulesIngress: []model.IngressRule{
							{Protocol: "tcp", PortRange: "80-80", Sources: []string{"0.0.0.0/0"}},
							{Protocol: "tcp", PortRange: "443-443", Sources: []string{"0.0.0.0/0"}},
						},
					},
					{
						ID:          "sg-0mockdb",
						Name:        "database",
						Description: "Postgres from app tier",
						RulesIngress: []model.IngressRule{
							{Protocol: "tcp", PortRange: "5432-5432", Sources: []string{"10.0.0.0/16"}},
						},
					},
				},
			},
		},
	}, nil
}
