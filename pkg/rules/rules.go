package rules

import (
	"regexp"

	"github.com/mitchellh/hashstructure/v2"
)

// Rule decides whether ARNs for a service carry a region and an account.
// A rule with a Resource pattern applies only to resources matching it;
// when the pattern does not match, evaluation moves on to later rules
// for the same service.
type Rule struct {
	Service  string `json:"service" yaml:"service"`
	Resource string `json:"resource,omitempty" yaml:"resource,omitempty"`
	Region   *bool  `json:"region,omitempty" yaml:"region,omitempty"`
	Account  *bool  `json:"account,omitempty" yaml:"account,omitempty"`

	pattern *regexp.Regexp
}

// Requirement is the resolved outcome for a (service, resource) pair.
type Requirement struct {
	Region  bool `json:"region"`
	Account bool `json:"account"`
}

// Force overrides the rule table's decision. A nil field leaves the
// table's outcome in place; a non-nil field wins in both directions.
type Force struct {
	Region  *bool
	Account *bool
}

// Ruleset is an ordered rule table. It is immutable once loaded and is
// safe for concurrent use.
type Ruleset struct {
	rules []Rule
}

// Resolve scans the table in order and returns the requirement of the
// first rule whose service matches and whose resource pattern, if it
// has one, is found in resource. Fields the matched rule leaves unset
// default to required, as do pairs matching no rule at all.
func (rs *Ruleset) Resolve(service, resource string, force Force) Requirement {
	req := Requirement{Region: true, Account: true}

	for _, rule := range rs.rules {
		if rule.Service != service {
			continue
		}
		if rule.pattern != nil && !rule.pattern.MatchString(resource) {
			continue
		}
		if rule.Region != nil {
			req.Region = *rule.Region
		}
		if rule.Account != nil {
			req.Account = *rule.Account
		}
		break
	}

	if force.Region != nil {
		req.Region = *force.Region
	}
	if force.Account != nil {
		req.Account = *force.Account
	}

	return req
}

// Len returns the number of rules in the table.
func (rs *Ruleset) Len() int {
	return len(rs.rules)
}

// Rules returns a copy of the rule table in evaluation order.
func (rs *Ruleset) Rules() []Rule {
	out := make([]Rule, len(rs.rules))
	copy(out, rs.rules)
	return out
}

// Fingerprint hashes the rule table so that differing tables can be
// told apart in logs across processes and deploys.
func (rs *Ruleset) Fingerprint() (uint64, error) {
	return hashstructure.Hash(rs.rules, hashstructure.FormatV2, nil)
}
