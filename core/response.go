package core

// ResponseBase is the JSON envelope the HTTP layer wraps results in.
type ResponseBase[T any] struct {
	Status  string `json:"status"`
	Content T      `json:"content"`
	Error   string `json:"error,omitempty"`
}

// SearchResult pairs matched items with the subtrees the walk had to skip.
type SearchResult struct {
	Items    []CatalogItem `json:"items"`
	Warnings []WalkWarning `json:"warnings,omitempty"`
}

// PrincipalPolicyResult aggregates policies mentioning one principal across
// a catalog subtree, again with partial-result warnings.
type PrincipalPolicyResult struct {
	Entries  []PrincipalPolicyEntry `json:"entries"`
	Warnings []WalkWarning          `json:"warnings,omitempty"`
}

// PrincipalPolicyEntry is one item on which the principal holds roles.
type PrincipalPolicyEntry struct {
	Path  string   `json:"path"`
	Roles []string `json:"roles"`
}
