package arn

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/benkehoe/aws-arn/pkg/rules"
)

// WildcardAccount in a caller-supplied account maps to an empty account
// field rather than a literal asterisk, for writing IAM policy ARNs.
const WildcardAccount = "*"

// accountLength is the width AWS zero-pads account IDs to.
const accountLength = 12

// CredentialsProvider supplies the region and account associated with a
// named profile. Implementations may perform network calls; Build makes
// at most one lookup per field per call and does not retry.
type CredentialsProvider interface {
	Region(ctx context.Context, profile string) (string, error)
	AccountID(ctx context.Context, profile string) (string, error)
}

// MissingFieldsError reports fields the rule table requires but no
// source could supply. Fields preserves the order region, account.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return strings.Join(e.Fields, " and ") + " required"
}

// BuildInput carries the values for a single Build call. Zero-valued
// optional fields mean "not supplied". ForceRegion and ForceAccount are
// tri-state: nil leaves the rule table's decision in place.
type BuildInput struct {
	Service  string
	Resource string

	Region    string
	Account   string
	Partition string
	Profile   string

	ForceRegion  *bool
	ForceAccount *bool
}

// Builder assembles ARNs according to a rule table, pulling the region
// and account from a credentials provider when a profile is supplied.
// A Builder is safe for concurrent use.
type Builder struct {
	rules *rules.Ruleset
	creds CredentialsProvider
}

// NewBuilder returns a Builder over the given rule table. creds may be
// nil, in which case profile-based lookups fail.
func NewBuilder(rs *rules.Ruleset, creds CredentialsProvider) *Builder {
	return &Builder{rules: rs, creds: creds}
}

// Build assembles the ARN for in.
//
// The rule table decides whether the region and account fields are
// required. Required fields are taken from the input when supplied;
// otherwise, if a profile is named, they are resolved through the
// credentials provider, the two lookups running concurrently. A
// required field with no source at all yields a *MissingFieldsError.
//
// Directly supplied accounts are zero-padded to 12 digits, except the
// wildcard "*" which maps to an empty field. Accounts resolved from
// credentials are used as-is.
func (b *Builder) Build(ctx context.Context, in BuildInput) (ARN, error) {
	req := b.rules.Resolve(in.Service, in.Resource, rules.Force{
		Region:  in.ForceRegion,
		Account: in.ForceAccount,
	})

	a := ARN{
		Partition: in.Partition,
		Service:   in.Service,
		Region:    in.Region,
		Account:   in.Account,
		Resource:  in.Resource,
	}
	if a.Partition == "" {
		a.Partition = DefaultPartition
	}

	if !req.Region {
		a.Region = ""
	}

	switch {
	case !req.Account:
		a.Account = ""
	case a.Account == WildcardAccount:
		a.Account = ""
	case a.Account != "":
		a.Account = padAccount(a.Account)
	}

	// a wildcard account counts as supplied, so it never triggers a lookup
	needRegion := req.Region && in.Region == ""
	needAccount := req.Account && in.Account == ""

	if !needRegion && !needAccount {
		return a, nil
	}

	if in.Profile == "" {
		var missing []string
		if needRegion {
			missing = append(missing, "region")
		}
		if needAccount {
			missing = append(missing, "account")
		}
		return ARN{}, &MissingFieldsError{Fields: missing}
	}

	if b.creds == nil {
		return ARN{}, errors.Errorf("profile %q given but no credentials provider configured", in.Profile)
	}

	g, gctx := errgroup.WithContext(ctx)
	if needRegion {
		g.Go(func() error {
			region, err := b.creds.Region(gctx, in.Profile)
			if err != nil {
				return errors.Wrapf(err, "resolving region from profile %q", in.Profile)
			}
			a.Region = region
			return nil
		})
	}
	if needAccount {
		g.Go(func() error {
			account, err := b.creds.AccountID(gctx, in.Profile)
			if err != nil {
				return errors.Wrapf(err, "resolving account from profile %q", in.Profile)
			}
			a.Account = account
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return ARN{}, err
	}

	return a, nil
}

// padAccount left-pads numeric account IDs with zeros to 12 digits, so
// that accounts which lost leading zeros (a common spreadsheet mishap)
// round-trip correctly.
func padAccount(account string) string {
	if len(account) >= accountLength {
		return account
	}
	return strings.Repeat("0", accountLength-len(account)) + account
}
