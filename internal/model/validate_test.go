package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validModel() *NetworkModel {
	return &NetworkModel{
		Region: "us-east-1",
		VPCs: []VPC{
			{
				ID:   "vpc-1",
				Name: "main",
				CIDR: "10.0.0.0/16",
				Subnets: []Subnet{
					{ID: "subnet-1", CIDR: "10.0.1.0/24", AZ: "us-east-1a", Public: true},
				},
				RouteTables: []RouteTable{
					{ID: "rtb-1", SubnetAssociations: []string{"subnet-1"}},
				},
				SecurityGroups: []SecurityGroup{
					{ID: "sg-1", Name: "web"},
				},
			},
		},
	}
}

func TestValidate_OK(t *testing.T) {
	require.NoError(t, Validate(validModel()))
	require.NoError(t, Validate(&NetworkModel{}))
}

func TestValidate_MissingFields(t *testing.T) {
	cases := []struct {
		name     string
		mutate   func(*NetworkModel)
		resource string
		id       string
		field    string
	}{
		{
			name:     "vpc without cidr",
			mutate:   func(m *NetworkModel) { m.VPCs[0].CIDR = "" },
			resource: "vpc", id: "vpc-1", field: "cidr",
		},
		{
			name:     "vpc without id",
			mutate:   func(m *NetworkModel) { m.VPCs[0].ID = "" },
			resource: "vpc", id: "#0", field: "id",
		},
		{
			name:     "subnet without az",
			mutate:   func(m *NetworkModel) { m.VPCs[0].Subnets[0].AZ = "" },
			resource: "subnet", id: "subnet-1", field: "az",
		},
		{
			name:     "subnet without id",
			mutate:   func(m *NetworkModel) { m.VPCs[0].Subnets[0].ID = "" },
			resource: "subnet", id: "#0", field: "id",
		},
		{
			name:     "route table without id",
			mutate:   func(m *NetworkModel) { m.VPCs[0].RouteTables[0].ID = "" },
			resource: "route_table", id: "#0", field: "id",
		},
		{
			name:     "security group without id",
			mutate:   func(m *NetworkModel) { m.VPCs[0].SecurityGroups[0].ID = "" },
			resource: "security_group", id: "#0", field: "id",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := validModel()
			tc.mutate(m)

			err := Validate(m)
			require.Error(t, err)

			var serr *StructuralError
			require.ErrorAs(t, err, &serr)
			assert.Equal(t, tc.resource, serr.Resource)
			assert.Equal(t, tc.id, serr.ID)
			assert.Equal(t, tc.field, serr.Field)
		})
	}
}

func TestDecode_RoundTrip(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, Encode(&buf, validModel()))

	m, err := Decode(strings.NewReader(buf.String()))
	require.NoError(t, err)
	assert.Equal(t, validModel(), m)
}

func TestDecode_FieldNames(t *testing.T) {
	// Wire names are fixed by the collector contract; a rename here
	// would break every stored snapshot.
	input := `{
		"region": "eu-west-1",
		"timestamp": "req-123",
		"vpcs": [{
			"id": "vpc-1", "name": "main", "cidr": "10.0.0.0/16",
			"subnets": [{"id": "subnet-1", "name": "a", "cidr": "10.0.1.0/24", "az": "eu-west-1a", "public": true}],
			"route_tables": [{
				"id": "rtb-1", "name": "rt",
				"routes": [{"destination": "0.0.0.0/0", "target": "igw-1"}],
				"subnet_associations": ["subnet-1"]
			}],
			"security_groups": [{
				"id": "sg-1", "name": "web", "description": "d",
				"rules_ingress": [{"protocol": "tcp", "port_range": "80-80", "sources": ["0.0.0.0/0"]}]
			}]
		}]
	}`

	m, err := Decode(strings.NewReader(input))
	require.NoError(t, err)

	vpc := m.VPCs[0]
	assert.Equal(t, "eu-west-1", m.Region)
	assert.Equal(t, "req-123", m.Timestamp)
	assert.True(t, vpc.Subnets[0].Public)
	assert.Equal(t, []string{"subnet-1"}, vpc.RouteTables[0].SubnetAssociations)
	assert.Equal(t, "igw-1", vpc.RouteTables[0].Routes[0].Target)
	assert.Equal(t, "80-80", vpc.SecurityGroups[0].RulesIngress[0].PortRange)
}

func TestDecode_InvalidJSON(t *testing.T) {
	_, err := Decode(strings.NewReader("{not json"))
	require.Error(t, err)
}

func TestDecode_StructurallyInvalid(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"vpcs": [{"name": "no-id"}]}`))
	var serr *StructuralError
	require.ErrorAs(t, err, &serr)
}
