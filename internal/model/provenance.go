package model

// Tier names the rank of the source that produced a value
type Tier string

const (
	TierLocal    Tier = "local"    // City ordinance or city-level record
	TierState    Tier = "state"    // State law or state-level record
	TierFederal  Tier = "federal"  // Federal baseline
	TierNational Tier = "national" // National average or national record
	TierExact    Tier = "exact"    // Source keyed by the exact requested year or date
	TierCensus   Tier = "census"   // Decennial census count held forward
	TierRemote   Tier = "remote"   // Remote sheet maintained outside the binary
	TierStatic   Tier = "static"   // Compiled-in table
)

// Confidence signals whether a value matched the request exactly
type Confidence string

const (
	ConfidenceExact Confidence = "exact"
	// ConfidenceFallback marks a best-effort answer, e.g. the last known office holder
	// when no term covers the requested date
	ConfidenceFallback Confidence = "fallback"
)

// AuthorityTier represents the classification of source authority
type AuthorityTier int

const (
	AuthorityUnknown   AuthorityTier = 0 // Not yet classified
	AuthorityPrimary   AuthorityTier = 1 // Government statistics, statutes, official records
	AuthoritySecondary AuthorityTier = 2 // Encyclopedias, chart publishers, reputable media
	AuthorityTertiary  AuthorityTier = 3 // Community-maintained sheets, blogs
)

func (t AuthorityTier) String() string {
	switch t {
	case AuthorityPrimary:
		return "primary"
	case AuthoritySecondary:
		return "secondary"
	case AuthorityTertiary:
		return "tertiary"
	default:
		return "unknown"
	}
}

func (t AuthorityTier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
