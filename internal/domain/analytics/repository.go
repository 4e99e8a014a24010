package analytics

import "context"

// FactRepository loads the projections the aggregations run over. A zero
// From or To leaves that side of the range open.
type FactRepository interface {
	ReportFacts(ctx context.Context, scope Scope) ([]ReportFact, error)
	// UpdateFacts returns updates created in the range on reports in scope.
	UpdateFacts(ctx context.Context, scope Scope) ([]UpdateFact, error)
}
