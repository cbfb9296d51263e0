package model

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// StructuralError reports a required field that is missing or malformed
// in the input model. It is fatal: emission never starts on a model
// that fails validation.
type StructuralError struct {
	Resource string // "vpc", "subnet", "route_table", "security_group" or "model"
	ID       string // id of the offending entity, or "#<index>" when the id itself is the problem
	Field    string // json name of the offending field
}

func (e *StructuralError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("structural error: %s: missing required field %q", e.Resource, e.Field)
	}
	return fmt.Sprintf("structural error: %s %s: missing required field %q", e.Resource, e.ID, e.Field)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report json names, not Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// vpcs[3].subnets[1].az etc. Namespace segments use the registered json names.
var nsPattern = regexp.MustCompile(`vpcs\[(\d+)\](?:\.(subnets|route_tables|security_groups)\[(\d+)\])?\.([a-z_]+)$`)

// Validate checks the invariants the diagram engine relies on: every
// vpc, subnet, route table and security group carries an id, subnets
// carry cidr and az, vpcs carry cidr. The first violation is returned
// as a *StructuralError naming the offending entity.
func Validate(m *NetworkModel) error {
	err := validate.Struct(m)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return fmt.Errorf("failed to validate network model: %w", err)
	}
	return toStructuralError(m, verrs[0])
}

func toStructuralError(m *NetworkModel, fe validator.FieldError) *StructuralError {
	match := nsPattern.FindStringSubmatch(fe.Namespace())
	if match == nil {
		return &StructuralError{Resource: "model", Field: fe.Field()}
	}

	vi, _ := strconv.Atoi(match[1])
	if vi >= len(m.VPCs) {
		return &StructuralError{Resource: "model", Field: fe.Field()}
	}
	vpc := &m.VPCs[vi]

	if match[2] == "" {
		return &StructuralError{Resource: "vpc", ID: idOrIndex(vpc.ID, vi), Field: match[4]}
	}

	ci, _ := strconv.Atoi(match[3])
	switch match[2] {
	case "subnets":
		if ci < len(vpc.Subnets) {
			return &StructuralError{Resource: "subnet", ID: idOrIndex(vpc.Subnets[ci].ID, ci), Field: match[4]}
		}
	case "route_tables":
		if ci < len(vpc.RouteTables) {
			return &StructuralError{Resource: "route_table", ID: idOrIndex(vpc.RouteTables[ci].ID, ci), Field: match[4]}
		}
	case "security_groups":
		if ci < len(vpc.SecurityGroups) {
			return &StructuralError{Resource: "security_group", ID: idOrIndex(vpc.SecurityGroups[ci].ID, ci), Field: match[4]}
		}
	}
	return &StructuralError{Resource: "model", Field: fe.Field()}
}

func idOrIndex(id string, i int) string {
	if id != "" {
		return id
	}
	return "#" + strconv.Itoa(i)
}
