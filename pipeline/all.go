// SPDX-License-Identifier: MIT

package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/rcsweep/config"
)

// CompileAll compiles every partition of cfg.PartitionList(), at most
// cfg.Parallel at a time. Results are in partition list order. The first
// fatal error cancels the partitions not yet finished.
func (c *Compiler) CompileAll(ctx context.Context, cfg config.Config) ([]*Result, error) {
	parts := cfg.PartitionList()
	results := make([]*Result, len(parts))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(max(1, cfg.Parallel))
	for i, p := range parts {
		eg.Go(func() error {
			r, err := c.Compile(ctx, cfg.ForPartition(p))
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
