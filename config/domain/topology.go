package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// wwwLabel is the label the site is always served under.
const wwwLabel = "www"

// identifierSeparator replaces every dot of a domain in a resource identifier.
const identifierSeparator = "Dot"

// Request describes the website to host.
// SubDomain is optional; an empty value (or "www") means the site lives directly under the base domain.
type Request struct {
	BaseDomain        string
	SubDomain         string
	AdditionalDomains []string
	// ContentPath is opaque to the topology and only passed through.
	ContentPath string
}

// Topology is the resolved set of names derived from a Request.
type Topology struct {
	// SiteDomain is the www-prefixed hostname actually serving content.
	SiteDomain string
	// CertificateDomains holds the primary domain first; the rest are SANs.
	CertificateDomains []string
	// DistributionDomains is CertificateDomains followed by SiteDomain.
	DistributionDomains []string
	// ResourceIdentifier names every resource tied to the base domain.
	ResourceIdentifier string
}

func (r Request) hasSubDomain() bool {
	return r.SubDomain != "" && r.SubDomain != wwwLabel
}

// primaryDomain is the bare (not www-prefixed) domain placed first on the certificate.
func (r Request) primaryDomain() string {
	if r.hasSubDomain() {
		return r.SubDomain + "." + r.BaseDomain
	}
	return r.BaseDomain
}

// SiteDomain returns "www.<sub>.<base>" when a subdomain other than "www" is set, "www.<base>" otherwise.
// No syntax validation is performed.
func SiteDomain(req Request) string {
	return wwwLabel + "." + req.primaryDomain()
}

// CertificateDomains returns the primary domain followed by every additional domain, in input order.
// Duplicates are kept; removing them is up to the caller.
func CertificateDomains(req Request) []string {
	domains := make([]string, 0, 1+len(req.AdditionalDomains))
	domains = append(domains, req.primaryDomain())
	return append(domains, req.AdditionalDomains...)
}

// DistributionDomains returns CertificateDomains with SiteDomain appended last.
func DistributionDomains(req Request) []string {
	return append(CertificateDomains(req), SiteDomain(req))
}

// Resolve computes the full topology for req.
func Resolve(req Request) Topology {
	return Topology{
		SiteDomain:          SiteDomain(req),
		CertificateDomains:  CertificateDomains(req),
		DistributionDomains: DistributionDomains(req),
		ResourceIdentifier:  ResourceIdentifier(req.BaseDomain),
	}
}

// WordCase converts a single domain label into the form used inside a resource identifier.
type WordCase func(label string) string

// PascalWords capitalizes the first letter of every word in label and drops the separators,
// so "my-site" becomes "MySite".
func PascalWords(label string) string {
	words := strings.FieldsFunc(label, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	// a Caser keeps state between calls, so it is not shared
	caser := cases.Title(language.Und, cases.NoLower)
	var b strings.Builder
	for _, w := range words {
		b.WriteString(caser.String(w))
	}
	return b.String()
}

// UpperFirst capitalizes the first letter of label and keeps everything else, separators included.
func UpperFirst(label string) string {
	if label == "" {
		return label
	}
	runes := []rune(label)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// ResourceIdentifier converts domain into an alphanumeric logical-name fragment,
// e.g. "my-site.example.com" -> "MySiteDotExampleDotCom".
func ResourceIdentifier(domain string) string {
	return ResourceIdentifierWith(domain, PascalWords)
}

// ResourceIdentifierWith is ResourceIdentifier with a custom word case.
//
// Only the first "-" left after the word case is removed. PascalWords never leaves one,
// so the limitation only shows with word cases that keep separators (see UpperFirst).
func ResourceIdentifierWith(domain string, wordCase WordCase) string {
	var b strings.Builder
	for _, part := range strings.Split(domain, ".") {
		b.WriteString(wordCase(part))
		b.WriteString(identifierSeparator)
	}
	id := strings.Replace(b.String(), "-", "", 1)
	if i := strings.LastIndex(id, identifierSeparator); i >= 0 {
		id = id[:i]
	}
	return id
}
