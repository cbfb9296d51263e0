package aws

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

func TestNameTag(t *testing.T) {
	tags := []types.Tag{
		{Key: aws.String("env"), Value: aws.String("prod")},
		{Key: aws.String("Name"), Value: aws.String("core-vpc")},
	}
	if got := nameTag(tags); got != "core-vpc" {
		t.Errorf("nameTag = %q, want %q", got, "core-vpc")
	}
	if got := nameTag(nil); got != "Unnamed" {
		t.Errorf("nameTag(nil) = %q, want Unnamed", got)
	}
	if got := nameTag([]types.Tag{{Key: aws.String("env"), Value: aws.String("prod")}}); got != "Unnamed" {
		t.Errorf("nameTag without Name tag = %q, want Unnamed", got)
	}
}

func TestRouteTarget(t *testing.T) {
	cases := []struct {
		name  string
		route types.Route
		want  string
	}{
		{"internet gateway", types.Route{GatewayId: aws.String("igw-1")}, "igw-1"},
		{"nat gateway", types.Route{NatGatewayId: aws.String("nat-1")}, "nat-1"},
		{"transit gateway", types.Route{TransitGatewayId: aws.String("tgw-1")}, "tgw-1"},
		{"peering", types.Route{VpcPeeringConnectionId: aws.String("pcx-1")}, "pcx-1"},
		{"gateway wins over instance", types.Route{GatewayId: aws.String("igw-1"), InstanceId: aws.String("i-1")}, "igw-1"},
		{"no target", types.Route{}, "Unknown"},
		{"empty target id", types.Route{GatewayId: aws.String("")}, "Unknown"},
	}

	for _, tc := range cases {
		if got := routeTarget(tc.route); got != tc.want {
			t.Errorf("%s: routeTarget = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestPortRange(t *testing.T) {
	cases := []struct {
		from, to *int32
		want     string
	}{
		{aws.Int32(80), aws.Int32(80), "80-80"},
		{aws.Int32(1024), aws.Int32(65535), "1024-65535"},
		{nil, nil, "All-All"},
		{aws.Int32(22), nil, "22-All"},
		{nil, aws.Int32(22), "All-22"},
	}

	for _, tc := range cases {
		if got := portRange(tc.from, tc.to); got != tc.want {
			t.Errorf("portRange = %q, want %q", got, tc.want)
		}
	}
}

func TestStringOr(t *testing.T) {
	if got := stringOr(nil, "Unknown"); got != "Unknown" {
		t.Errorf("stringOr(nil) = %q", got)
	}
	if got := stringOr(aws.String(""), "All"); got != "All" {
		t.Errorf("stringOr(empty) = %q", got)
	}
	if got := stringOr(aws.String("tcp"), "All"); got != "tcp" {
		t.Errorf("stringOr(tcp) = %q", got)
	}
}
