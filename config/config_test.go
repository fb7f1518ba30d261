package config

import (
	"testing"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/jsii-runtime-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trufnetwork/website/infra/config/domain"
)

func appWithContext(ctx map[string]interface{}) awscdk.App {
	return awscdk.NewApp(&awscdk.AppProps{Context: &ctx})
}

func TestContextDefaults(t *testing.T) {
	app := appWithContext(map[string]interface{}{})

	assert.Equal(t, "dev", StackSuffix(app))
	assert.Equal(t, "Website-dev", WithStackSuffix(app, "Website"))
	assert.Equal(t, domain.StageProd, GetStage(app))
	assert.Equal(t, "", GetDevPrefix(app))
	assert.Equal(t, "sites.toml", SitesConfigPath(app))
}

func TestContextOverrides(t *testing.T) {
	app := appWithContext(map[string]interface{}{
		StackSuffixKey:     "",
		StageKey:           "dev",
		DevPrefixKey:       "alice",
		SitesConfigPathKey: "conf/sites.toml",
	})

	assert.Equal(t, "Website", WithStackSuffix(app, "Website"))
	assert.Equal(t, domain.StageDev, GetStage(app))
	assert.Equal(t, "conf/sites.toml", SitesConfigPath(app))

	spec := DomainSpec(app, "shop")
	assert.Equal(t, "shop.alice", spec.SubDomain())
}

func TestContextBadValuesPanic(t *testing.T) {
	assert.Panics(t, func() { GetStage(appWithContext(map[string]interface{}{StageKey: "staging"})) })
	assert.Panics(t, func() { StackSuffix(appWithContext(map[string]interface{}{StackSuffixKey: 3})) })
}

func TestMustParseEnv(t *testing.T) {
	t.Setenv("WEBSITE_BASE_DOMAIN", "example.com")
	t.Setenv("WEBSITE_ADDITIONAL_DOMAINS", "a.example.com,b.example.com")
	t.Setenv("WEBSITE_EDGE_CERTIFICATE", "true")

	vars := MustParseEnv[WebsiteEnvironmentVariables]()
	assert.Equal(t, "example.com", vars.BaseDomain)
	assert.Equal(t, []string{"a.example.com", "b.example.com"}, vars.AdditionalDomains)
	assert.Equal(t, "dist", vars.ContentPath)
	assert.True(t, vars.EdgeCertificate)
	assert.False(t, vars.IndexRewrite)

	t.Setenv("WEBSITE_EDGE_CERTIFICATE", "maybe")
	assert.Panics(t, func() { MustParseEnv[WebsiteEnvironmentVariables]() })

	assert.Equal(t, "info", MustParseEnv[LoggingEnvironmentVariables]().LogLevel)
}

func TestGetEnvironmentVariables_OnlyDuringSynthesis(t *testing.T) {
	t.Setenv("WEBSITE_BASE_DOMAIN", "example.com")

	// bundling is skipped for stacks outside the "aws:cdk:bundling-stacks" selection
	app := appWithContext(map[string]interface{}{"aws:cdk:bundling-stacks": []interface{}{}})
	stack := awscdk.NewStack(app, jsii.String("Skipped"), nil)
	require.False(t, IsStackInSynthesis(stack))
	assert.Equal(t, "", GetEnvironmentVariables[WebsiteEnvironmentVariables](stack).BaseDomain)

	stack = awscdk.NewStack(appWithContext(map[string]interface{}{}), jsii.String("Synth"), nil)
	require.True(t, IsStackInSynthesis(stack))
	assert.Equal(t, "example.com", GetEnvironmentVariables[WebsiteEnvironmentVariables](stack).BaseDomain)
}
