package domain_models

// DiscoveryResult is what the engine hands back to the calling layer: the
// ranked candidates plus the strategy and unresolved gaps for observability.
type DiscoveryResult struct {
	Candidates []POICandidate `json:"candidates"`
	Strategy   SearchStrategy `json:"strategy"`
	Gaps       []CoverageGap  `json:"gaps,omitempty"`
	Route      []Coordinate   `json:"route,omitempty"`
}
