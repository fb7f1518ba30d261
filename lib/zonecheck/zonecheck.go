// Package zonecheck verifies, before deployment, that Route53 hosts a public zone for each
// base domain a website is declared under. `cdk deploy` would otherwise only fail at the
// hosted zone lookup.
package zonecheck

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/route53"
	"github.com/aws/aws-sdk-go/service/route53/route53iface"
	"go.uber.org/zap"
)

// ErrMissingZone is returned when no public hosted zone matches a base domain.
var ErrMissingZone = errors.New("hosted zone not found")

// Zone is a public hosted zone found for a base domain.
type Zone struct {
	Domain string
	ID     string
}

// Checker looks base domains up in Route53.
type Checker struct {
	client route53iface.Route53API
	logger *zap.Logger
}

// New returns a Checker using client. A nil logger disables logging.
func New(client route53iface.Route53API, logger *zap.Logger) *Checker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Checker{client: client, logger: logger}
}

// Check returns the public zone named exactly baseDomain, or an error wrapping ErrMissingZone.
func (c *Checker) Check(ctx context.Context, baseDomain string) (Zone, error) {
	want := canonical(baseDomain)
	out, err := c.client.ListHostedZonesByNameWithContext(ctx, &route53.ListHostedZonesByNameInput{
		DNSName:  aws.String(want),
		MaxItems: aws.String("10"),
	})
	if err != nil {
		return Zone{}, fmt.Errorf("listing hosted zones for %s: %w", baseDomain, err)
	}

	// zones are sorted by name, so an exact match comes first when it exists
	for _, z := range out.HostedZones {
		if canonical(aws.StringValue(z.Name)) != want {
			continue
		}
		if z.Config != nil && aws.BoolValue(z.Config.PrivateZone) {
			c.logger.Debug("skipping private zone", zap.String("domain", baseDomain), zap.String("id", aws.StringValue(z.Id)))
			continue
		}
		zone := Zone{Domain: strings.TrimSuffix(want, "."), ID: strings.TrimPrefix(aws.StringValue(z.Id), "/hostedzone/")}
		c.logger.Info("hosted zone found", zap.String("domain", zone.Domain), zap.String("id", zone.ID))
		return zone, nil
	}
	return Zone{}, fmt.Errorf("%s: %w", baseDomain, ErrMissingZone)
}

// CheckAll checks every domain and joins the errors of those failing.
func (c *Checker) CheckAll(ctx context.Context, domains []string) ([]Zone, error) {
	var zones []Zone
	var errs []error
	for _, d := range domains {
		zone, err := c.Check(ctx, d)
		if err != nil {
			c.logger.Error("hosted zone check failed", zap.String("domain", d), zap.Error(err))
			errs = append(errs, err)
			continue
		}
		zones = append(zones, zone)
	}
	return zones, errors.Join(errs...)
}

// canonical lowercases domain and gives it the trailing dot Route53 reports.
func canonical(domain string) string {
	return strings.ToLower(strings.TrimSuffix(domain, ".")) + "."
}
