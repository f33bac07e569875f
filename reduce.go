package custody

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
)

// Reduce draws round(frac*N) records without replacement. The draw is
// determined by seed alone, and the sampled records keep their original
// order. The reduced data set is processed anew.
func (ds *Dataset) Reduce(frac float64, seed int64) (*Dataset, error) {
	if !(frac > 0 && frac <= 1) {
		return nil, fmt.Errorf("reduce by %g: %w", frac, ErrBadFraction)
	}
	k := int(math.Round(frac * float64(ds.N)))

	rng := rand.New(rand.NewSource(seed))
	idx := rng.Perm(ds.N)[:k]
	sort.Ints(idx)

	reduced := ds.subset(fmt.Sprintf("%s reduced to %g", ds.Name, frac), idx)
	if err := reduced.Process(); err != nil {
		return nil, err
	}
	return reduced, nil
}
