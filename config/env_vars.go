package config

import (
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/caarlos0/env/v11"
)

// WebsiteEnvironmentVariables describes a single site when no sites file is present.
type WebsiteEnvironmentVariables struct {
	BaseDomain string `env:"WEBSITE_BASE_DOMAIN"`
	SubDomain  string `env:"WEBSITE_SUB_DOMAIN"`
	// comma separated list of extra domains served by the site
	AdditionalDomains []string `env:"WEBSITE_ADDITIONAL_DOMAINS" envSeparator:","`
	ContentPath       string   `env:"WEBSITE_CONTENT_PATH" envDefault:"dist"`
	EdgeCertificate   bool     `env:"WEBSITE_EDGE_CERTIFICATE" envDefault:"false"`
	IndexRewrite      bool     `env:"WEBSITE_INDEX_REWRITE" envDefault:"false"`
}

// LoggingEnvironmentVariables configures the process logger.
type LoggingEnvironmentVariables struct {
	// one of debug, info, warn, error
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

func GetEnvironmentVariables[T any](scope constructs.Construct) T {
	var envObj T

	// only run if we are synthesizing the stack
	if !IsStackInSynthesis(scope) {
		return envObj
	}

	return MustParseEnv[T]()
}

// MustParseEnv parses T from the process environment, panicking on malformed values.
func MustParseEnv[T any]() T {
	envObj, err := env.ParseAs[T]()
	if err != nil {
		panic(err)
	}
	return envObj
}
