package provenance

import (
	"testing"

	"github.com/ppiankov/capsule/internal/model"
)

func TestAuthorityClassifier_Defaults(t *testing.T) {
	classifier := NewAuthorityClassifier(nil)

	tests := []struct {
		url      string
		expected model.AuthorityTier
		desc     string
	}{
		{"https://www.dol.gov/agencies/whd/minimum-wage/history/chart", model.AuthorityPrimary, "Primary domain with subdomain"},
		{"https://api.census.gov/data/2019/pep/population", model.AuthorityPrimary, "Census API"},
		{"https://lni.wa.gov/workers-rights/wages/minimum-wage/", model.AuthorityPrimary, ".gov suffix"},
		{"https://www.billboard.com/charts/hot-100/", model.AuthoritySecondary, "Chart publisher"},
		{"https://en.wikipedia.org/wiki/List_of_Super_Bowl_champions", model.AuthoritySecondary, "Encyclopedia"},
		{"https://docs.google.com/spreadsheets/d/e/abc/pub?output=csv", model.AuthorityTertiary, "Published sheet mapped explicitly"},
		{"https://example.com/prices.csv", model.AuthorityTertiary, "Unlisted domain"},
		{"", model.AuthorityUnknown, "No citation"},
		{"not a url", model.AuthorityTertiary, "Unparseable"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			if result := classifier.Classify(tt.url); result != tt.expected {
				t.Errorf("Expected %v for %q, got %v", tt.expected, tt.url, result)
			}
		})
	}
}

func TestAuthorityClassifier_DomainMapOverrides(t *testing.T) {
	classifier := NewAuthorityClassifier(&model.AuthorityConfig{
		PrimaryDomains: []string{"census.gov"},
		DomainMap:      map[string]string{"api.census.gov": "secondary"},
	})

	if got := classifier.Classify("https://api.census.gov/data"); got != model.AuthoritySecondary {
		t.Errorf("Expected domain map to override, got %v", got)
	}
	if got := classifier.Classify("https://www.census.gov/"); got != model.AuthorityPrimary {
		t.Errorf("Expected primary, got %v", got)
	}
}

func TestParseAuthority(t *testing.T) {
	tests := map[string]model.AuthorityTier{
		"primary":   model.AuthorityPrimary,
		"Secondary": model.AuthoritySecondary,
		"2":         model.AuthoritySecondary,
		"tertiary":  model.AuthorityTertiary,
		"bogus":     model.AuthorityTertiary,
	}
	for in, expected := range tests {
		if got := ParseAuthority(in); got != expected {
			t.Errorf("ParseAuthority(%q) = %v, want %v", in, got, expected)
		}
	}
}
