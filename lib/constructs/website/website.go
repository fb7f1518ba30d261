package website

import (
	"fmt"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscertificatemanager"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudfront"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudfrontorigins"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsiam"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsroute53"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsroute53targets"
	"github.com/aws/aws-cdk-go/awscdk/v2/awss3"
	"github.com/aws/aws-cdk-go/awscdk/v2/awss3deployment"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"

	"github.com/trufnetwork/website/infra/config/domain"
	"github.com/trufnetwork/website/infra/lib/cdklogger"
	"github.com/trufnetwork/website/infra/scripts/renderer"
)

// Website hosts static content from a private S3 bucket behind CloudFront, under a
// www-prefixed site domain, with alias records for the bare and additional domains.
type Website struct {
	constructs.Construct
	Topology             domain.Topology
	Props                WebsiteProps
	HostedDomain         *domain.HostedDomain
	OriginAccessIdentity awscloudfront.IOriginAccessIdentity
	Bucket               awss3.Bucket
	Certificate          awscertificatemanager.ICertificate
	Distribution         awscloudfront.Distribution
	// IndexRewrite is nil unless WebsiteProps.IndexRewrite is set.
	IndexRewrite awscloudfront.Function
	SiteRecord   awsroute53.ARecord
	// AliasRecords holds one record per certificate domain, in the same order.
	AliasRecords []awsroute53.ARecord
	Deployment   awss3deployment.BucketDeployment
}

// NewWebsite declares the full hosting topology for props under scope.
// Invalid props panic, as does a construct ID collision between two Websites for the same base domain.
func NewWebsite(scope constructs.Construct, id string, props *WebsiteProps) *Website {
	if props == nil {
		panic("NewWebsite: props are required")
	}
	p := props.WithDefaults()
	if err := p.Validate(); err != nil {
		panic(err)
	}
	if p.EdgeCertificate {
		if region := awscdk.Stack_Of(scope).Region(); *awscdk.Token_IsUnresolved(region) {
			panic(fmt.Sprintf("NewWebsite %s: EdgeCertificate needs a stack with a concrete region, got %s", id, *region))
		}
	}

	w := &Website{
		Construct: constructs.NewConstruct(scope, jsii.String(id)),
		Topology:  domain.Resolve(p.Request()),
		Props:     p,
	}
	ident := w.Topology.ResourceIdentifier

	cdklogger.LogInfo(w.Construct, id, "website %s: serving %v from %s", w.Topology.SiteDomain, w.Topology.DistributionDomains, p.ContentPath)

	w.OriginAccessIdentity = p.OriginAccessIdentity
	if w.OriginAccessIdentity == nil {
		w.OriginAccessIdentity = awscloudfront.NewOriginAccessIdentity(w.Construct, jsii.String(ident+"OriginAccessIdentity"), &awscloudfront.OriginAccessIdentityProps{
			Comment: jsii.String("OAI for " + w.Topology.SiteDomain),
		})
	}

	w.Bucket = awss3.NewBucket(w.Construct, jsii.String(ident+"Bucket"), p.bucketProps(w.Topology.SiteDomain))
	// repeats the s3:GetObject grant the S3 origin adds, together with any extra actions
	w.Bucket.AddToResourcePolicy(awsiam.NewPolicyStatement(&awsiam.PolicyStatementProps{
		Actions:    jsii.Strings(p.PolicyActions()...),
		Resources:  jsii.Strings(*w.Bucket.ArnForObjects(jsii.String("*"))),
		Principals: &[]awsiam.IPrincipal{w.OriginAccessIdentity.GrantPrincipal()},
	}))

	w.HostedDomain = domain.NewHostedDomain(w.Construct, ident+"Domain", &domain.HostedDomainProps{
		BaseDomain:        p.BaseDomain,
		Zone:              p.HostedZone,
		CertificateDomain: w.Topology.SiteDomain,
		AdditionalNames:   w.Topology.CertificateDomains,
		EdgeCertificate:   p.EdgeCertificate,
		CertProvider:      p.CertProvider,
	})
	w.Certificate = w.HostedDomain.Cert

	var functions []*awscloudfront.FunctionAssociation
	if p.IndexRewrite {
		w.IndexRewrite = awscloudfront.NewFunction(w.Construct, jsii.String(ident+"IndexRewrite"), &awscloudfront.FunctionProps{
			Code: awscloudfront.FunctionCode_FromInline(jsii.String(renderer.MustRender(renderer.TplIndexRewrite, renderer.IndexRewriteData{
				DefaultRootObject: p.DefaultRootObject,
			}))),
			Runtime: awscloudfront.FunctionRuntime_JS_2_0(),
			Comment: jsii.String("Serves " + p.DefaultRootObject + " for directory requests"),
		})
		functions = append(functions, &awscloudfront.FunctionAssociation{
			Function:  w.IndexRewrite,
			EventType: awscloudfront.FunctionEventType_VIEWER_REQUEST,
		})
	}

	origin := awscloudfrontorigins.S3BucketOrigin_WithOriginAccessIdentity(w.Bucket, &awscloudfrontorigins.S3BucketOriginWithOAIProps{
		OriginAccessIdentity: w.OriginAccessIdentity,
	})
	w.Distribution = awscloudfront.NewDistribution(w.Construct, jsii.String(ident+"Distribution"), &awscloudfront.DistributionProps{
		DefaultBehavior:   defaultBehavior(origin, p.DefaultBehavior, functions),
		DomainNames:       jsii.Strings(w.Topology.DistributionDomains...),
		Certificate:       w.Certificate,
		DefaultRootObject: jsii.String(p.DefaultRootObject),
		ErrorResponses:    errorResponses(p.ErrorDocument),
		EnableLogging:     jsii.Bool(p.EnableLogging),
		PriceClass:        p.PriceClass,
		Comment:           jsii.String(w.Topology.SiteDomain),
	})

	w.addRecords()

	w.Deployment = awss3deployment.NewBucketDeployment(w.Construct, jsii.String(ident+"Deployment"), &awss3deployment.BucketDeploymentProps{
		Sources:           &[]awss3deployment.ISource{awss3deployment.Source_Asset(jsii.String(p.ContentPath), nil)},
		DestinationBucket: w.Bucket,
		Distribution:      w.Distribution,
		DistributionPaths: jsii.Strings(DistributionInvalidation),
	})

	w.addOutputs()
	return w
}

// addRecords points the site domain at the distribution and every certificate domain at the site record.
func (w *Website) addRecords() {
	ident := w.Topology.ResourceIdentifier
	w.SiteRecord = w.HostedDomain.AddARecord(ident+"SiteRecord", w.Topology.SiteDomain,
		awsroute53.RecordTarget_FromAlias(awsroute53targets.NewCloudFrontTarget(w.Distribution)))

	siteTarget := awsroute53.RecordTarget_FromAlias(awsroute53targets.NewRoute53RecordTarget(w.SiteRecord))
	w.AliasRecords = make([]awsroute53.ARecord, 0, len(w.Topology.CertificateDomains))
	for _, name := range w.Topology.CertificateDomains {
		// a repeated name yields a repeated ID and fails synthesis
		record := w.HostedDomain.AddARecord(domain.ResourceIdentifier(name)+"AliasRecord", name, siteTarget)
		w.AliasRecords = append(w.AliasRecords, record)
	}
}

// SiteURL returns the https URL of the site domain.
func (w *Website) SiteURL() string {
	return "https://" + w.Topology.SiteDomain
}
