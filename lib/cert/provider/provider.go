package provider

import (
	"github.com/aws/aws-cdk-go/awscdk/v2/awscertificatemanager"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsroute53"
	"github.com/aws/constructs-go/constructs/v10"
)

// CertScope indicates certificate issuance scope: edge or region.
type CertScope string

const (
	// ScopeEdge issues a certificate in us-east-1, where CloudFront reads certificates from.
	ScopeEdge CertScope = "edge"
	// ScopeRegion issues a certificate in the same stack (and region) as the caller.
	ScopeRegion CertScope = "region"
)

// EdgeRegion is the only region CloudFront accepts viewer certificates from.
const EdgeRegion = "us-east-1"

// CertProvider defines how to obtain a DNS-validated ACM certificate for a domain.
type CertProvider interface {
	// Get returns an ACM certificate for fqdn, validated through zone, issued under the given scope.
	// sans lists extra SubjectAlternativeNames; pass them through DedupSANs first.
	Get(scope constructs.Construct, id string, zone awsroute53.IHostedZone, fqdn string, s CertScope, sans []string) awscertificatemanager.ICertificate
}
