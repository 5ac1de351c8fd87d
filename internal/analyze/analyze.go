package analyze

// HistogramRow is one row of the link-histogram analysis: the number of
// nodes that have exactly Degree outgoing neighbors.
type HistogramRow struct {
	Degree int
	Count  int64
}

// MostLinkedRow is one row of the most-linked analysis.
type MostLinkedRow struct {
	Title  string
	Degree int
}

// StepGroupRow is one row of the step-groups analysis: Steps[k] is the
// number of nodes first reached at distance exactly k from Root. Steps is
// nil when Unknown is true (the root was not present in the graph).
type StepGroupRow struct {
	Root    string
	Steps   []int
	Unknown bool
}
