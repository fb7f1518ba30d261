package config

import (
	"fmt"

	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"

	"github.com/trufnetwork/website/infra/config/domain"
)

// Context keys read from cdk.json or `cdk --context key=value`.
const (
	StackSuffixKey     = "stackSuffix"
	StageKey           = "stage"
	DevPrefixKey       = "devPrefix"
	SitesConfigPathKey = "sitesConfigPath"
)

// Defaults used when a context key is absent.
const (
	DefaultStackSuffix     = "dev"
	DefaultStage           = domain.StageProd
	DefaultSitesConfigPath = "sites.toml"
)

// contextString reads a string context value, falling back to def when absent.
// A non-string value panics with a clear message.
func contextString(scope constructs.Construct, key string, def string) string {
	raw := scope.Node().TryGetContext(jsii.String(key))
	if raw == nil {
		return def
	}
	v, ok := raw.(string)
	if !ok {
		panic(fmt.Sprintf("context %q must be a string, got %T", key, raw))
	}
	return v
}

// StackSuffix reads "stackSuffix" from CDK context; absence means "dev".
func StackSuffix(scope constructs.Construct) string {
	return contextString(scope, StackSuffixKey, DefaultStackSuffix)
}

// WithStackSuffix appends the stack suffix to name, e.g. "Website-dev".
func WithStackSuffix(scope constructs.Construct, name string) string {
	suffix := StackSuffix(scope)
	if suffix == "" {
		return name
	}
	return name + "-" + suffix
}

// GetStage reads "stage" from CDK context *at synth time*.
// • Absence → default "prod"
// • Bad value → panic with a clear message.
func GetStage(scope constructs.Construct) domain.StageType {
	stage := domain.StageType(contextString(scope, StageKey, string(DefaultStage)))
	switch stage {
	case domain.StageProd, domain.StageDev:
		return stage
	default:
		panic(fmt.Errorf("invalid %s=%q, allowed: prod | dev", StageKey, stage))
	}
}

// GetDevPrefix reads "devPrefix" from CDK context. It is required for the dev stage.
func GetDevPrefix(scope constructs.Construct) string {
	return contextString(scope, DevPrefixKey, "")
}

// SitesConfigPath reads "sitesConfigPath" from CDK context; absence means "sites.toml".
func SitesConfigPath(scope constructs.Construct) string {
	return contextString(scope, SitesConfigPathKey, DefaultSitesConfigPath)
}

// DomainSpec combines stage and dev prefix from context with sub.
func DomainSpec(scope constructs.Construct, sub string) domain.Spec {
	return domain.Spec{
		Stage:     GetStage(scope),
		Sub:       sub,
		DevPrefix: GetDevPrefix(scope),
	}
}
