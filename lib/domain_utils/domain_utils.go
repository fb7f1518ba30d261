package domain_utils

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsroute53"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"

	"github.com/trufnetwork/website/infra/lib/cdklogger"
)

// HostedZoneSuffix is appended to a domain's resource identifier to name its zone lookup.
const HostedZoneSuffix = "HostedZone"

// HostedZoneFor returns the public hosted zone of baseDomain, looked up at most once per stack.
// identifier names the lookup; requests with the same identifier share one construct.
// A missing zone fails `cdk synth` through the context provider, not here.
func HostedZoneFor(scope constructs.Construct, identifier string, baseDomain string) awsroute53.IHostedZone {
	stack := awscdk.Stack_Of(scope)
	id := identifier + HostedZoneSuffix
	if existing := stack.Node().TryFindChild(jsii.String(id)); existing != nil {
		return existing.(awsroute53.IHostedZone)
	}
	cdklogger.LogInfo(stack, id, "looking up hosted zone for %s", baseDomain)
	return awsroute53.HostedZone_FromLookup(stack, jsii.String(id), &awsroute53.HostedZoneProviderProps{
		DomainName: jsii.String(baseDomain),
	})
}
