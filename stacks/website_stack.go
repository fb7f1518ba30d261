package stacks

import (
	"fmt"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"

	"github.com/trufnetwork/website/infra/config"
	"github.com/trufnetwork/website/infra/config/domain"
	"github.com/trufnetwork/website/infra/config/sites"
	"github.com/trufnetwork/website/infra/lib/cdklogger"
	"github.com/trufnetwork/website/infra/lib/constructs/website"
)

// WebsiteStackProps configures WebsiteStack.
type WebsiteStackProps struct {
	awscdk.StackProps
	// Sites overrides the sites file and the WEBSITE_* environment variables.
	Sites []sites.Site `json:",omitempty"`
}

// WebsiteStack hosts every configured site. Sites come from props, then the sites file
// named by the "sitesConfigPath" context, then the environment.
func WebsiteStack(
	scope constructs.Construct,
	id string,
	props *WebsiteStackProps,
) (awscdk.Stack, []*website.Website) {
	// Standard stack initialization
	var sprops awscdk.StackProps
	var declared []sites.Site
	if props != nil {
		sprops = props.StackProps
		declared = props.Sites
	}
	stack := awscdk.NewStack(scope, jsii.String(id), &sprops)
	if !config.IsStackInSynthesis(stack) {
		return stack, nil
	}

	if len(declared) == 0 {
		declared = configuredSites(stack)
	}
	if len(declared) == 0 {
		cdklogger.LogError(stack, id, "%v: set WEBSITE_BASE_DOMAIN or add a [[site]] to %s", sites.ErrNoSites, config.SitesConfigPath(stack))
		return stack, nil
	}

	websites := make([]*website.Website, 0, len(declared))
	for _, site := range declared {
		spec := config.DomainSpec(stack, site.SubDomain)
		req := spec.Request(site.BaseDomain, site.AdditionalDomains, site.ContentPath)
		constructID := domain.ResourceIdentifier(spec.FQDN(site.BaseDomain)) + "Website"

		websites = append(websites, website.NewWebsite(stack, constructID, &website.WebsiteProps{
			BaseDomain:        req.BaseDomain,
			SubDomain:         req.SubDomain,
			AdditionalDomains: req.AdditionalDomains,
			ContentPath:       req.ContentPath,
			EdgeCertificate:   site.EdgeCertificate,
			IndexRewrite:      site.IndexRewrite,
		}))
	}
	return stack, websites
}

// configuredSites reads the sites file, falling back to a single site from the environment.
func configuredSites(stack awscdk.Stack) []sites.Site {
	path := config.SitesConfigPath(stack)
	cfg, err := sites.LoadConfig(path)
	if err != nil {
		panic(fmt.Errorf("loading sites for stack %s: %w", *stack.StackName(), err))
	}
	if cfg != nil {
		cdklogger.LogInfo(stack, "", "loaded %d site(s) from %s", len(cfg.Sites), path)
		return cfg.Sites
	}

	vars := config.GetEnvironmentVariables[config.WebsiteEnvironmentVariables](stack)
	if vars.BaseDomain == "" {
		return nil
	}
	return []sites.Site{{
		BaseDomain:        vars.BaseDomain,
		SubDomain:         vars.SubDomain,
		AdditionalDomains: vars.AdditionalDomains,
		ContentPath:       vars.ContentPath,
		EdgeCertificate:   vars.EdgeCertificate,
		IndexRewrite:      vars.IndexRewrite,
	}}
}
