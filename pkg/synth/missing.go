package synth

import (
	"math"

	"golang.org/x/exp/rand"
)

// injectMissing sets ~MissingRate of the entries in each missing-eligible
// column to NaN, using a source seeded independently of the data draws. Row
// selection is an independent Bernoulli per row per column, in the fixed
// column order of MissingEligibleColumns, so the mask is reproducible.
//
// This runs after the target is computed: the adoption score always reflects
// the values that were present at generation time.
func injectMissing(d *Dataset, cfg Config) {
	if cfg.MissingRate == 0 {
		return
	}
	rng := rand.New(rand.NewSource(cfg.MissingSeed))
	cols := []*[]float64{
		&d.Awareness,
		&d.Availability,
		&d.PriceSensitivity,
		&d.DigitalLiteracy,
		&d.TransactionValue,
	}
	for _, col := range cols {
		vals := *col
		for i := range vals {
			if rng.Float64() < cfg.MissingRate {
				vals[i] = math.NaN()
			}
		}
	}
}
