package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ppiankov/capsule/internal/model"
)

const unavailable = "data unavailable"

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// display is the human form of a resolution
func display(v model.ResolvedValue) string {
	if v.IsAbsent() {
		return unavailable
	}
	return v.Formatted
}

// provenance describes where a value came from, e.g. "local, seattle, wa, 2024 (primary)"
func provenance(v model.ResolvedValue) string {
	if v.IsAbsent() {
		return ""
	}
	s := fmt.Sprintf("%s, %s, %d (%s)", v.Tier, v.Scope, v.DataYear, v.Authority)
	if v.Confidence == model.ConfidenceFallback {
		s += " fallback"
	}
	return s
}

func writeValue(w io.Writer, v model.ResolvedValue) {
	_, _ = fmt.Fprintln(w, display(v))
	if v.IsAbsent() {
		return
	}
	_, _ = fmt.Fprintf(w, "  tier:       %s (%s)\n", v.Tier, v.Source)
	_, _ = fmt.Fprintf(w, "  scope:      %s\n", v.Scope)
	_, _ = fmt.Fprintf(w, "  data year:  %d\n", v.DataYear)
	_, _ = fmt.Fprintf(w, "  confidence: %s\n", v.Confidence)
	_, _ = fmt.Fprintf(w, "  authority:  %s\n", v.Authority)
	if v.SourceURL != "" {
		_, _ = fmt.Fprintf(w, "  source:     %s\n", v.SourceURL)
	}
}
