package domain

// OutlineNode is one entry in the navigable outline of a merged bundle.
// Page is the zero-based first page of the entry in the merged PDF; inner
// nodes carry the page of their first descendant.
type OutlineNode struct {
	Title    string        `json:"title"`
	Page     int           `json:"page"`
	Children []OutlineNode `json:"children,omitempty"`
}

// BundleDocument pairs a document request with the grouping keys the outline
// builder needs. Index i of a bundle's documents corresponds to
// MergeResult.PageRanges[i].
type BundleDocument struct {
	Request         DocumentRequest `json:"request"`
	Title           string          `json:"title"`
	FileNumber      string          `json:"fileNumber"`
	ParticipantName string          `json:"participantName"`
}

// BundleRequest asks for an ordered set of documents merged into one PDF
// with a nested outline.
type BundleRequest struct {
	CourtDivisionCd string           `json:"courtDivisionCd"`
	Documents       []BundleDocument `json:"documents"`
}

// BundleResult extends the merge contract with the outline tree.
type BundleResult struct {
	Base64PDF  string        `json:"base64Pdf"`
	PageRanges []PageRange   `json:"pageRanges"`
	Outline    []OutlineNode `json:"outline"`
}
