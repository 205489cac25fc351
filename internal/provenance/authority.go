// Package provenance classifies where a resolved value came from.
package provenance

import (
	"net/url"
	"strings"

	"github.com/ppiankov/capsule/internal/model"
)

// AuthorityClassifier classifies source URLs into authority tiers
type AuthorityClassifier struct {
	config       *model.AuthorityConfig
	primaryMap   map[string]bool
	secondaryMap map[string]bool
}

// NewAuthorityClassifier creates a new authority classifier
func NewAuthorityClassifier(config *model.AuthorityConfig) *AuthorityClassifier {
	if config == nil {
		config = &model.DefaultConfig().Authority
	}

	classifier := &AuthorityClassifier{
		config:       config,
		primaryMap:   make(map[string]bool),
		secondaryMap: make(map[string]bool),
	}

	for _, domain := range config.PrimaryDomains {
		classifier.primaryMap[strings.ToLower(domain)] = true
	}
	for _, domain := range config.SecondaryDomains {
		classifier.secondaryMap[strings.ToLower(domain)] = true
	}

	return classifier
}

// Classify classifies a source URL. Values without a citation are unknown.
func (a *AuthorityClassifier) Classify(rawURL string) model.AuthorityTier {
	if strings.TrimSpace(rawURL) == "" {
		return model.AuthorityUnknown
	}

	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return model.AuthorityTertiary
	}
	host := strings.ToLower(parsed.Hostname())

	// Explicit mappings win over suffix rules
	if tierStr, ok := a.config.DomainMap[host]; ok {
		return ParseAuthority(tierStr)
	}

	if matchDomain(host, a.primaryMap) {
		return model.AuthorityPrimary
	}
	if matchDomain(host, a.secondaryMap) {
		return model.AuthoritySecondary
	}

	if strings.HasSuffix(host, ".gov") || strings.HasSuffix(host, ".us") {
		return model.AuthorityPrimary
	}

	return model.AuthorityTertiary
}

// matchDomain reports whether host equals or is a subdomain of a listed domain
func matchDomain(host string, domains map[string]bool) bool {
	if domains[host] {
		return true
	}
	for domain := range domains {
		if strings.HasSuffix(host, "."+domain) {
			return true
		}
	}
	return false
}

// ParseAuthority converts a tier name to AuthorityTier
func ParseAuthority(tier string) model.AuthorityTier {
	switch strings.ToLower(strings.TrimSpace(tier)) {
	case "primary", "1":
		return model.AuthorityPrimary
	case "secondary", "2":
		return model.AuthoritySecondary
	default:
		return model.AuthorityTertiary
	}
}
