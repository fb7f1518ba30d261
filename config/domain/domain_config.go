package domain

import (
	"strings"
)

// StageType defines allowed deployment stages.
type StageType string

const (
	// StageProd is the production stage
	StageProd StageType = "prod"
	// StageDev is the development stage
	StageDev StageType = "dev"
)

// Spec encapsulates the stage, optional leaf subdomain, and (for dev) mandatory DevPrefix.
// It builds the subdomain labels placed in front of a site's base domain.
type Spec struct {
	Stage     StageType
	Sub       string // optional leaf subdomain; "www" is the same as none
	DevPrefix string // required when Stage==StageDev
}

// labels returns labels in order: Sub (if any), DevPrefix (dev only)
func (s Spec) labels() []string {
	// Ensure prod does not carry a DevPrefix
	if s.Stage == StageProd && s.DevPrefix != "" {
		panic("DevPrefix must be empty for prod stages")
	}
	parts := []string{}
	if s.Sub != "" && s.Sub != wwwLabel {
		parts = append(parts, s.Sub)
	}
	if s.Stage == StageDev {
		// Dev requires a DevPrefix label
		if s.DevPrefix == "" {
			panic("dev deployments must set Spec.DevPrefix")
		}
		parts = append(parts, s.DevPrefix)
	}
	return parts
}

// SubDomain joins the labels with a dot; empty for a prod site without Sub.
func (s Spec) SubDomain() string {
	return strings.Join(s.labels(), ".")
}

// FQDN returns the bare domain the labels resolve to under base, e.g. "shop.dev1.example.com".
func (s Spec) FQDN(base string) string {
	return strings.Join(append(s.labels(), base), ".")
}

// Request builds the website request for base with this spec's subdomain.
func (s Spec) Request(base string, additional []string, contentPath string) Request {
	return Request{
		BaseDomain:        base,
		SubDomain:         s.SubDomain(),
		AdditionalDomains: additional,
		ContentPath:       contentPath,
	}
}
