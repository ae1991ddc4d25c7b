package batch

import (
	"fmt"

	chain "ChainDrive/internal/calc/chain"
)

type ChainBatchInput struct {
	Items []chain.Input `json:"items"`
}

type ChainBatchResult struct {
	Results []chain.Result `json:"results"`
}

var ErrNoItems = fmt.Errorf("%w: no items", chain.ErrInvalidInput)

func CalculateChain(in ChainBatchInput) (ChainBatchResult, error) {
	if len(in.Items) == 0 {
		return ChainBatchResult{}, ErrNoItems
	}
	out := ChainBatchResult{Results: make([]chain.Result, 0, len(in.Items))}
	for i, item := range in.Items {
		res, err := chain.Calculate(item)
		if err != nil {
			return ChainBatchResult{}, fmt.Errorf("item %d: %w", i, err)
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}
