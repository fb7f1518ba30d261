package sites

// Site is one website to host, as written in the sites file.
type Site struct {
	BaseDomain        string   `toml:"base_domain" validate:"required"`
	SubDomain         string   `toml:"sub_domain"`
	AdditionalDomains []string `toml:"additional_domains" validate:"dive,required"`
	// ContentPath is relative to the sites file unless absolute. Empty means "dist" next to the file.
	ContentPath     string `toml:"content_path"`
	IndexRewrite    bool   `toml:"index_rewrite"`
	EdgeCertificate bool   `toml:"edge_certificate"`
}

// Config is the root of the sites file:
//
//	[[site]]
//	base_domain = "example.com"
//	additional_domains = ["alt.example.com"]
type Config struct {
	Sites []Site `toml:"site" validate:"dive"`
}
