package enum

// VarianceStatus tags a reconciliation line as on, over or under budget
type VarianceStatus string

const (
	VarianceStatusEqual VarianceStatus = "equal"
	VarianceStatusAbove VarianceStatus = "above"
	VarianceStatusBelow VarianceStatus = "below"
)
