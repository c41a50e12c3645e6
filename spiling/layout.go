package spiling

import (
	"context"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// FlattenAll flattens a set of planks concurrently. The result has the same
// order as the input. The first error cancels the remaining work and is
// returned.
func FlattenAll(ctx context.Context, planks []*Plank) ([]*FlattenedPlank, error) {
	flat := make([]*FlattenedPlank, len(planks))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, p := range planks {
		i, p := i, p
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			fp, err := p.Flatten()
			if err != nil {
				return errors.Wrapf(err, "plank %d", i)
			}
			flat[i] = fp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return flat, nil
}

// Layout orients every plank horizontally and stacks them bottom to top,
// each one gap above the previous one. The arguments are unchanged.
func Layout(planks []*FlattenedPlank, gap float64) []*FlattenedPlank {
	laid := make([]*FlattenedPlank, 0, len(planks))
	var top float64
	for i, p := range planks {
		p = p.Oriented()
		if i > 0 {
			p = p.Shifted(top - p.Bound().Min[1] + gap)
		}
		top = p.Bound().Max[1]
		laid = append(laid, p)
	}
	checkOverlaps(laid)
	return laid
}

func checkOverlaps(planks []*FlattenedPlank) {
	for i := 1; i < len(planks); i++ {
		if planks[i].N() < 2 || planks[i-1].N() < 2 {
			continue
		}
		if planks[i].Polygon().Overlaps(planks[i-1].Polygon()) {
			tracer().Errorf("planks %d and %d overlap after layout", i-1, i)
		}
	}
}
