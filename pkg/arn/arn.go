// Package arn assembles and splits Amazon Resource Names.
//
// Assembly is driven by a rule table (see pkg/rules) deciding which
// fields a service's ARNs carry, with optional lookups of the region
// and account from AWS configuration when a profile name is supplied.
package arn

import (
	"fmt"
	"strings"
)

// Prefix is the fixed leading segment of every ARN.
const Prefix = "arn"

// DefaultPartition is used when a caller does not name a partition.
const DefaultPartition = "aws"

// ARN is a parsed Amazon Resource Name.
//
// String renders the standard colon-separated format. Fields the
// service's policy omits stay empty, producing adjacent colons.
type ARN struct {
	Partition string `json:"partition"`
	Service   string `json:"service"`
	Region    string `json:"region"`
	Account   string `json:"account"`
	Resource  string `json:"resource"`
}

func (a ARN) String() string {
	return strings.Join([]string{Prefix, a.Partition, a.Service, a.Region, a.Account, a.Resource}, ":")
}

// InvalidARNError reports an input that is not a well-formed ARN.
type InvalidARNError struct {
	ARN    string
	Reason string
}

func (e *InvalidARNError) Error() string {
	return fmt.Sprintf("invalid ARN %q: %s", e.ARN, e.Reason)
}

// Split parses s into its five fields. The resource field may itself
// contain colons; they are preserved verbatim.
func Split(s string) (ARN, error) {
	parts := strings.SplitN(s, ":", 6)
	if parts[0] != Prefix {
		return ARN{}, &InvalidARNError{ARN: s, Reason: `missing "arn" prefix`}
	}
	if len(parts) < 6 {
		return ARN{}, &InvalidARNError{ARN: s, Reason: "not enough sections"}
	}
	return ARN{
		Partition: parts[1],
		Service:   parts[2],
		Region:    parts[3],
		Account:   parts[4],
		Resource:  parts[5],
	}, nil
}
