package provider

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscertificatemanager"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsroute53"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

// defaultProvider is the standard implementation of CertProvider.
type defaultProvider struct{}

// New returns a CertProvider that issues certificates for edge or regional scopes.
func New() CertProvider {
	return &defaultProvider{}
}

func (p *defaultProvider) Get(
	scope constructs.Construct,
	id string,
	zone awsroute53.IHostedZone,
	fqdn string,
	sScope CertScope,
	sans []string,
) awscertificatemanager.ICertificate {
	var certScope constructs.Construct = scope
	if sScope == ScopeEdge {
		certScope = edgeStack(scope, id)
	}

	certProps := &awscertificatemanager.CertificateProps{
		DomainName: jsii.String(fqdn),
		Validation: awscertificatemanager.CertificateValidation_FromDns(zone),
	}
	if len(sans) > 0 {
		certProps.SubjectAlternativeNames = jsii.Strings(sans...)
	}

	return awscertificatemanager.NewCertificate(certScope, jsii.String(id), certProps)
}

// edgeStack returns the us-east-1 stack holding edge certificates for scope, creating it once.
// It is a sibling of scope's stack so the certificate can be referenced across regions.
// When scope's stack is in another region it needs CrossRegionReferences as well.
func edgeStack(scope constructs.Construct, id string) awscdk.Stack {
	parent := awscdk.Stack_Of(scope)
	stackID := id + "EdgeCertStack"
	if existing := parent.Node().TryFindChild(jsii.String(stackID)); existing != nil {
		return existing.(awscdk.Stack)
	}
	env := &awscdk.Environment{Region: jsii.String(EdgeRegion)}
	if !*awscdk.Token_IsUnresolved(parent.Account()) {
		env.Account = parent.Account()
	}
	return awscdk.NewStack(parent, jsii.String(stackID), &awscdk.StackProps{
		Env:                   env,
		CrossRegionReferences: jsii.Bool(true),
	})
}
