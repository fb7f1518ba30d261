package domain

import (
	"github.com/aws/aws-cdk-go/awscdk/v2/awscertificatemanager"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsroute53"
	"github.com/aws/constructs-go/constructs/v10"
	jsii "github.com/aws/jsii-runtime-go"

	"github.com/trufnetwork/website/infra/lib/cdklogger"
	"github.com/trufnetwork/website/infra/lib/cert/provider"
	"github.com/trufnetwork/website/infra/lib/domain_utils"
)

// HostedDomainProps holds inputs for creating a HostedDomain construct.
type HostedDomainProps struct {
	// BaseDomain is the apex of the public hosted zone.
	BaseDomain string
	// Zone skips the lookup when set.
	Zone awsroute53.IHostedZone
	// CertificateDomain is the certificate's primary name.
	CertificateDomain string
	// AdditionalNames are extra SANs; duplicates and CertificateDomain itself are dropped.
	AdditionalNames []string
	EdgeCertificate bool // if true, issues the certificate in us-east-1
	// CertProvider defaults to provider.New().
	CertProvider provider.CertProvider
}

// HostedDomain is a construct that resolves a Route53 hosted zone and provisions a DNS-validated
// ACM certificate in it.
type HostedDomain struct {
	constructs.Construct
	Zone awsroute53.IHostedZone
	Cert awscertificatemanager.ICertificate
	// SANs holds the subject alternative names the certificate was issued with.
	SANs []string
}

// NewHostedDomain creates a HostedDomain under scope. The zone lookup is shared by every
// HostedDomain of the stack with the same base domain.
func NewHostedDomain(scope constructs.Construct, id string, props *HostedDomainProps) *HostedDomain {
	hdConstruct := constructs.NewConstruct(scope, jsii.String(id))
	hd := &HostedDomain{Construct: hdConstruct}

	hd.Zone = props.Zone
	if hd.Zone == nil {
		hd.Zone = domain_utils.HostedZoneFor(scope, ResourceIdentifier(props.BaseDomain), props.BaseDomain)
	}

	certProvider := props.CertProvider
	if certProvider == nil {
		certProvider = provider.New()
	}
	certScope := provider.ScopeRegion
	if props.EdgeCertificate {
		certScope = provider.ScopeEdge
	}

	hd.SANs = provider.DedupSANs(props.CertificateDomain, props.AdditionalNames)
	cdklogger.LogInfo(hdConstruct, id, "issuing %s certificate for %s with SANs %v", certScope, props.CertificateDomain, hd.SANs)

	hd.Cert = certProvider.Get(hdConstruct, ResourceIdentifier(props.CertificateDomain)+"Certificate", hd.Zone, props.CertificateDomain, certScope, hd.SANs)
	return hd
}

// AddARecord creates an A record in this hosted zone for recordName (a full domain name).
func (h *HostedDomain) AddARecord(id string, recordName string, target awsroute53.RecordTarget) awsroute53.ARecord {
	return awsroute53.NewARecord(h.Construct, jsii.String(id), &awsroute53.ARecordProps{
		Zone:       h.Zone,
		RecordName: jsii.String(recordName),
		Target:     target,
	})
}
