package model

import (
	"encoding/json"
	"fmt"
	"io"
)

// NetworkModel is the top-level snapshot produced by a collector run.
// It is read-only input to the diagram engine: nothing downstream
// mutates it, so one model can back several Emit calls concurrently.
type NetworkModel struct {
	Region    string `json:"region"`
	Timestamp string `json:"timestamp"`
	VPCs      []VPC  `json:"vpcs" validate:"dive"`
}

// VPC is an isolated virtual network and everything scoped to it.
type VPC struct {
	ID             string          `json:"id" validate:"required"`
	Name           string          `json:"name"`
	CIDR           string          `json:"cidr" validate:"required"`
	Subnets        []Subnet        `json:"subnets" validate:"dive"`
	RouteTables    []RouteTable    `json:"route_tables" validate:"dive"`
	SecurityGroups []SecurityGroup `json:"security_groups" validate:"dive"`
}

// Subnet is an address-range partition of a VPC, pinned to one AZ.
type Subnet struct {
	ID     string `json:"id" validate:"required"`
	Name   string `json:"name"`
	CIDR   string `json:"cidr" validate:"required"`
	AZ     string `json:"az" validate:"required"`
	Public bool   `json:"public"`
}

// RouteTable holds routing rules plus the subnets they are attached to.
type RouteTable struct {
	ID                 string   `json:"id" validate:"required"`
	Name               string   `json:"name"`
	Routes             []Route  `json:"routes"`
	SubnetAssociations []string `json:"subnet_associations"`
}

// Route is a single destination/target pair. Either side may carry the
// "Unknown" placeholder when the upstream API omitted the field.
type Route struct {
	Destination string `json:"destination"`
	Target      string `json:"target"`
}

// SecurityGroup is a named set of ingress filtering rules.
type SecurityGroup struct {
	ID           string        `json:"id" validate:"required"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	RulesIngress []IngressRule `json:"rules_ingress"`
}

// IngressRule is one inbound permission. PortRange is pre-formatted as
// "{from}-{to}" with "All" standing in for an absent bound.
type IngressRule struct {
	Protocol  string   `json:"protocol"`
	PortRange string   `json:"port_range"`
	Sources   []string `json:"sources"`
}

// Decode reads a JSON-encoded NetworkModel and validates its structure.
func Decode(r io.Reader) (*NetworkModel, error) {
	var m NetworkModel
	dec := json.NewDecoder(r)
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to decode network model: %w", err)
	}
	if err := Validate(&m); err != nil {
		return nil, err
	}
	return &m, nil
}

// Encode writes the model as indented JSON, matching the artifact the
// collector lambda publishes.
func Encode(w io.Writer, m *NetworkModel) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("failed to encode network model: %w", err)
	}
	return nil
}
