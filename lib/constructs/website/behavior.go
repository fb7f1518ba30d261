package website

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudfront"
	"github.com/aws/jsii-runtime-go"
	"github.com/samber/lo"
)

// errorStatuses are the origin responses rewritten to the error document.
var errorStatuses = []float64{403, 404}

// defaultBehavior merges override over the static-site defaults and points it at origin.
// Fields set in override win; Origin always comes from the Website.
func defaultBehavior(origin awscloudfront.IOrigin, override *awscloudfront.BehaviorOptions, functions []*awscloudfront.FunctionAssociation) *awscloudfront.BehaviorOptions {
	b := awscloudfront.BehaviorOptions{}
	if override != nil {
		b = *override
	}
	b.Origin = origin
	if b.ViewerProtocolPolicy == "" {
		b.ViewerProtocolPolicy = awscloudfront.ViewerProtocolPolicy_REDIRECT_TO_HTTPS
	}
	if b.Compress == nil {
		b.Compress = jsii.Bool(true)
	}
	if b.AllowedMethods == nil {
		b.AllowedMethods = awscloudfront.AllowedMethods_ALLOW_GET_HEAD()
	}
	if b.CachedMethods == nil {
		b.CachedMethods = awscloudfront.CachedMethods_CACHE_GET_HEAD()
	}
	if len(functions) > 0 {
		var existing []*awscloudfront.FunctionAssociation
		if b.FunctionAssociations != nil {
			existing = *b.FunctionAssociations
		}
		merged := append(append([]*awscloudfront.FunctionAssociation{}, existing...), functions...)
		b.FunctionAssociations = &merged
	}
	return &b
}

// errorResponses serves /<document> with a 404 for every status in errorStatuses.
func errorResponses(document string) *[]*awscloudfront.ErrorResponse {
	responses := lo.Map(errorStatuses, func(status float64, _ int) *awscloudfront.ErrorResponse {
		return &awscloudfront.ErrorResponse{
			HttpStatus:         jsii.Number(status),
			ResponseHttpStatus: jsii.Number(404),
			ResponsePagePath:   jsii.String("/" + document),
			Ttl:                awscdk.Duration_Minutes(jsii.Number(5)),
		}
	})
	return &responses
}
