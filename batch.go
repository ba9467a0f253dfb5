package reedsolomon

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// BatchDecode decodes each block in blocks in place against the shared
// field, bounded to parallelism concurrent goroutines. It exercises the
// invariant that Field (and therefore Decoder) is safe to share across
// concurrent decodes: every goroutine gets its own *Decoder bound to the
// same *Field, and touches only its own block.
//
// BatchDecode is deliberately not fail-fast: one block failing to decode
// never cancels or skips any other block. It returns one error per block
// (nil on success), aligned with blocks by index, plus a top-level error
// only for a malformed call itself.
func BatchDecode(ctx context.Context, field *Field, blocks [][]byte, twoS int, parallelism int) ([]error, error) {
	if field == nil {
		return nil, &InvalidArgumentError{Msg: "batchDecode: nil field"}
	}
	if parallelism <= 0 {
		return nil, &InvalidArgumentError{Msg: "batchDecode: parallelism must be positive"}
	}

	results := make([]error, len(blocks))
	grp := new(errgroup.Group)
	grp.SetLimit(parallelism)

	for i, block := range blocks {
		i, block := i, block
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = err
				return nil
			}
			d := NewDecoder(field)
			results[i] = d.Decode(block, twoS)
			return nil
		})
	}
	// Every Go func above returns nil unconditionally and stores its
	// outcome in results; grp.Wait() is only a join point here, never a
	// source of a batch-level error.
	_ = grp.Wait()
	return results, nil
}
