// Package awscreds resolves the region and account for named AWS
// profiles, backed by the shared configuration files and STS.
package awscreds

import (
	"context"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials/stscreds"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/aws/smithy-go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// stsClient is the part of the STS API used for identity lookups.
type stsClient interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// Provider answers region and account lookups for AWS profiles. Shared
// configuration is loaded once per profile and cached for the life of
// the process. Lookups are single attempts; retry policy is left to the
// AWS SDK's own retryer.
type Provider struct {
	log *zap.SugaredLogger

	// RoleARN, when set, is assumed before the identity lookup.
	RoleARN string

	mu      sync.Mutex
	configs map[string]aws.Config

	loadConfig func(ctx context.Context, profile string) (aws.Config, error)
	newSTS     func(cfg aws.Config) stsClient
}

// New returns a Provider reading the ambient AWS shared config files.
func New(log *zap.SugaredLogger) *Provider {
	return &Provider{
		log:     log,
		configs: map[string]aws.Config{},
		loadConfig: func(ctx context.Context, profile string) (aws.Config, error) {
			return config.LoadDefaultConfig(ctx, config.WithSharedConfigProfile(profile))
		},
		newSTS: func(cfg aws.Config) stsClient {
			return sts.NewFromConfig(cfg)
		},
	}
}

func (p *Provider) config(ctx context.Context, profile string) (aws.Config, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if cfg, ok := p.configs[profile]; ok {
		return cfg, nil
	}

	p.log.With("profile", profile).Debug("loading AWS shared config")
	cfg, err := p.loadConfig(ctx, profile)
	if err != nil {
		return aws.Config{}, errors.Wrapf(err, "loading AWS config for profile %q", profile)
	}
	p.configs[profile] = cfg
	return cfg, nil
}

// Region returns the region configured for profile.
func (p *Provider) Region(ctx context.Context, profile string) (string, error) {
	cfg, err := p.config(ctx, profile)
	if err != nil {
		return "", err
	}
	if cfg.Region == "" {
		return "", errors.Errorf("profile %q has no region configured", profile)
	}
	return cfg.Region, nil
}

// AccountID looks up the caller's account with sts:GetCallerIdentity,
// assuming RoleARN first if one is set.
func (p *Provider) AccountID(ctx context.Context, profile string) (string, error) {
	cfg, err := p.config(ctx, profile)
	if err != nil {
		return "", err
	}

	if p.RoleARN != "" {
		p.log.With("role", p.RoleARN).Debug("assuming role for identity lookup")
		creds := stscreds.NewAssumeRoleProvider(sts.NewFromConfig(cfg), p.RoleARN)
		cfg.Credentials = aws.NewCredentialsCache(creds)
	}

	out, err := p.newSTS(cfg).GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			return "", errors.Wrapf(err, "getting caller identity for profile %q (%s)", profile, apiErr.ErrorCode())
		}
		return "", errors.Wrapf(err, "getting caller identity for profile %q", profile)
	}
	if out.Account == nil || *out.Account == "" {
		return "", errors.Errorf("caller identity for profile %q has no account", profile)
	}

	p.log.With("profile", profile, "account", *out.Account).Debug("resolved account")
	return *out.Account, nil
}
