package localize

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/localize/pkg/nugget"
)

// Config is the file-backed configuration of a Localizer.
type Config struct {
	// DefaultLanguage is the application default tag. Required.
	DefaultLanguage string `yaml:"default_language"`

	// Languages are the additional supported tags.
	Languages []string `yaml:"languages"`

	// LocalesDir is the catalog root directory.
	LocalesDir string `yaml:"locales_dir"`

	// CookieName overrides the language cookie name when non-empty.
	CookieName string `yaml:"cookie_name"`

	// URLScheme selects tag embedding: "prefix-always" or
	// "prefix-except-default" (the default).
	URLScheme string `yaml:"url_scheme"`

	// PermanentRedirect switches canonicalization redirects from 302 to 301.
	PermanentRedirect bool `yaml:"permanent_redirect"`

	// PersistCookie re-issues the language cookie on URL-resolved requests.
	PersistCookie bool `yaml:"persist_cookie"`

	// Tokens overrides the nugget delimiters; zero fields keep defaults.
	Tokens TokensConfig `yaml:"tokens"`
}

// TokensConfig mirrors nugget.Tokens for YAML decoding.
type TokensConfig struct {
	Begin            string `yaml:"begin"`
	End              string `yaml:"end"`
	ArgDelimiter     string `yaml:"arg_delimiter"`
	CommentDelimiter string `yaml:"comment_delimiter"`
}

// LoadConfig reads a YAML configuration file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("localize: reading config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: parsing %s: %s", ErrInvalidConfig, path, err)
	}
	return cfg, nil
}

// WithConfig applies a Config. Explicit options placed after WithConfig
// override its values.
func WithConfig(cfg Config) Option {
	return func(l *Localizer) error {
		if err := WithLanguages(cfg.DefaultLanguage, cfg.Languages...)(l); err != nil {
			return err
		}
		if cfg.LocalesDir != "" {
			l.localesDir = cfg.LocalesDir
		}
		if cfg.CookieName != "" {
			l.cookieName = cfg.CookieName
		}

		scheme, ok := schemeByName(cfg.URLScheme)
		if !ok {
			return fmt.Errorf("%w: unknown url_scheme %q", ErrInvalidConfig, cfg.URLScheme)
		}
		l.scheme = scheme

		if cfg.PermanentRedirect {
			if err := WithPermanentRedirect()(l); err != nil {
				return err
			}
		}
		l.persistCookie = cfg.PersistCookie

		tokens := nugget.DefaultTokens()
		if cfg.Tokens.Begin != "" {
			tokens.Begin = cfg.Tokens.Begin
		}
		if cfg.Tokens.End != "" {
			tokens.End = cfg.Tokens.End
		}
		if cfg.Tokens.ArgDelimiter != "" {
			tokens.ArgDelimiter = cfg.Tokens.ArgDelimiter
		}
		if cfg.Tokens.CommentDelimiter != "" {
			tokens.CommentDelimiter = cfg.Tokens.CommentDelimiter
		}
		l.tokens = tokens

		return nil
	}
}
