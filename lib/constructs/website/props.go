package website

import (
	"fmt"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudfront"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsroute53"
	"github.com/aws/aws-cdk-go/awscdk/v2/awss3"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"

	"github.com/trufnetwork/website/infra/config/domain"
	"github.com/trufnetwork/website/infra/lib/cert/provider"
)

// Defaults applied by WithDefaults.
const (
	DefaultContentPath       = "dist"
	DefaultRootObject        = "index.html"
	DefaultErrorDocument     = "error.html"
	DefaultObjectReadAction  = "s3:GetObject"
	DistributionInvalidation = "/*"
)

// WebsiteProps configures a Website. Zero values fall back to the documented defaults.
type WebsiteProps struct {
	// BaseDomain is the apex of the hosted zone, e.g. "example.com". Its syntax is not checked.
	BaseDomain string `validate:"required"`
	// SubDomain is optional; "" and "www" both place the site directly under BaseDomain.
	SubDomain string
	// AdditionalDomains are extra names served by the distribution and added to the certificate.
	AdditionalDomains []string `validate:"dive,required"`
	// ContentPath is the local directory uploaded to the bucket. Default "dist".
	ContentPath string `validate:"required"`

	// HostedZone skips the Route53 lookup of BaseDomain.
	HostedZone awsroute53.IHostedZone `validate:"-"`
	// BucketProps replaces the private, S3-encrypted, retained bucket. BucketName defaults to the site domain.
	BucketProps *awss3.BucketProps `validate:"-"`
	// OriginAccessIdentity is reused instead of creating one.
	OriginAccessIdentity awscloudfront.IOriginAccessIdentity `validate:"-"`
	// EnableLogging turns on CloudFront standard logging.
	EnableLogging bool
	// DefaultRootObject defaults to "index.html".
	DefaultRootObject string `validate:"required"`
	// ErrorDocument is served, with status 404, for 403 and 404 origin responses. Default "error.html".
	ErrorDocument string `validate:"required"`
	// BucketPolicyActions are granted to the origin access identity besides s3:GetObject.
	BucketPolicyActions []string `validate:"dive,required"`
	// DefaultBehavior is merged over redirect-to-https, compressed, GET/HEAD. Its Origin is ignored.
	DefaultBehavior *awscloudfront.BehaviorOptions `validate:"-"`
	// EdgeCertificate issues the certificate in a us-east-1 stack instead of the Website's stack.
	// Outside us-east-1 the Website's stack must set CrossRegionReferences: true, or synthesis
	// fails when the distribution references the certificate. The stack region must be concrete.
	EdgeCertificate bool
	// IndexRewrite attaches a viewer-request function serving DefaultRootObject for directory URIs.
	IndexRewrite bool
	// PriceClass defaults to PriceClass_100.
	PriceClass awscloudfront.PriceClass `validate:"-"`
	// CertProvider defaults to provider.New().
	CertProvider provider.CertProvider `validate:"-"`
}

// WithDefaults returns a copy of p with every unset field filled in.
func (p WebsiteProps) WithDefaults() WebsiteProps {
	p.ContentPath = lo.Ternary(p.ContentPath == "", DefaultContentPath, p.ContentPath)
	p.DefaultRootObject = lo.Ternary(p.DefaultRootObject == "", DefaultRootObject, p.DefaultRootObject)
	p.ErrorDocument = lo.Ternary(p.ErrorDocument == "", DefaultErrorDocument, p.ErrorDocument)
	if p.PriceClass == "" {
		p.PriceClass = awscloudfront.PriceClass_PRICE_CLASS_100
	}
	p.AdditionalDomains = append([]string(nil), p.AdditionalDomains...)
	p.BucketPolicyActions = append([]string(nil), p.BucketPolicyActions...)
	return p
}

// Validate checks the structure of p. Domain names are passed through unchecked.
func (p WebsiteProps) Validate() error {
	if err := validator.New().Struct(p); err != nil {
		return fmt.Errorf("invalid website props for %q: %w", p.BaseDomain, err)
	}
	return nil
}

// Request returns the topology request described by p.
func (p WebsiteProps) Request() domain.Request {
	return domain.Request{
		BaseDomain:        p.BaseDomain,
		SubDomain:         p.SubDomain,
		AdditionalDomains: p.AdditionalDomains,
		ContentPath:       p.ContentPath,
	}
}

// PolicyActions returns s3:GetObject followed by BucketPolicyActions, without repeats.
func (p WebsiteProps) PolicyActions() []string {
	return lo.Uniq(append([]string{DefaultObjectReadAction}, p.BucketPolicyActions...))
}

// bucketProps returns the bucket configuration for siteDomain.
func (p WebsiteProps) bucketProps(siteDomain string) *awss3.BucketProps {
	if p.BucketProps == nil {
		return &awss3.BucketProps{
			BucketName:        &siteDomain,
			BlockPublicAccess: awss3.BlockPublicAccess_BLOCK_ALL(),
			Encryption:        awss3.BucketEncryption_S3_MANAGED,
			EnforceSSL:        lo.ToPtr(true),
			RemovalPolicy:     awscdk.RemovalPolicy_RETAIN,
		}
	}
	bp := *p.BucketProps
	if bp.BucketName == nil {
		bp.BucketName = &siteDomain
	}
	return &bp
}
