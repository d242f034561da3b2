package batch

import (
	"fmt"

	allowable "Stratum/internal/calc/allowable"
	bearing "Stratum/internal/calc/bearing"
)

type BearingBatchInput struct {
	Items []bearing.Input `json:"items"`
}

type BearingBatchResult struct {
	Results []bearing.Result `json:"results"`
}

// CalculateBearing evaluates a set of independent footings. Each item is a
// self-contained calculation, so a failure names the offending index.
func CalculateBearing(in BearingBatchInput) (BearingBatchResult, error) {
	if len(in.Items) == 0 {
		return BearingBatchResult{}, fmt.Errorf("no items")
	}
	out := BearingBatchResult{Results: make([]bearing.Result, 0, len(in.Items))}
	for i, item := range in.Items {
		res, err := bearing.Calculate(item)
		if err != nil {
			return BearingBatchResult{}, fmt.Errorf("item %d: %w", i+1, err)
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}

type AllowableBatchInput struct {
	Items []allowable.Input `json:"items"`
}

type AllowableBatchResult struct {
	Results []allowable.Result `json:"results"`
}

// CalculateAllowable evaluates a set of independent settlement-limited
// checks, one per borehole or footing.
func CalculateAllowable(in AllowableBatchInput) (AllowableBatchResult, error) {
	if len(in.Items) == 0 {
		return AllowableBatchResult{}, fmt.Errorf("no items")
	}
	out := AllowableBatchResult{Results: make([]allowable.Result, 0, len(in.Items))}
	for i, item := range in.Items {
		res, err := allowable.Calculate(item)
		if err != nil {
			return AllowableBatchResult{}, fmt.Errorf("item %d: %w", i+1, err)
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}
