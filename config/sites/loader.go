package sites

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

// ErrNoSites is returned by Require when a config defines no site.
var ErrNoSites = errors.New("no sites defined")

// defaultContentPath is used, relative to the sites file, when a site has no content_path.
const defaultContentPath = "dist"

// LoadConfig reads the sites configuration from the specified TOML file.
// A missing file is not an error: it returns a nil config.
func LoadConfig(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("error reading sites config file %s: %w", filePath, err)
	}

	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, fmt.Errorf("error decoding sites config from %s: %w", filePath, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown keys in sites config %s: %v", filePath, undecoded)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid sites config %s: %w", filePath, err)
	}

	// content paths are resolved against the file's directory
	dir := filepath.Dir(filePath)
	for i := range cfg.Sites {
		p := cfg.Sites[i].ContentPath
		if p == "" {
			p = defaultContentPath
		}
		if !filepath.IsAbs(p) {
			p = filepath.Join(dir, p)
		}
		cfg.Sites[i].ContentPath = p
	}
	return &cfg, nil
}

// Require returns cfg's sites, or ErrNoSites when there are none.
func Require(cfg *Config) ([]Site, error) {
	if cfg == nil || len(cfg.Sites) == 0 {
		return nil, ErrNoSites
	}
	return cfg.Sites, nil
}

// BaseDomains returns every distinct base domain in cfg, in file order.
func (c *Config) BaseDomains() []string {
	if c == nil {
		return nil
	}
	return lo.Uniq(lo.Map(c.Sites, func(s Site, _ int) string { return s.BaseDomain }))
}
