// Package synth generates the synthetic consumer-behavior dataset: fixed
// categorical marginals for the demographics, per-column continuous
// distributions for the behavioural features, demographic-linked attitudinal
// indices, and an adoption target defined by a fixed weighted sum plus noise.
//
// All randomness flows through explicitly seeded sources, never package-level
// state, so the same Config always reproduces the same table byte-for-byte.
package synth

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Dataset is a fully materialized table, one slice per column, all of length
// Rows. Missing cells in the float columns are math.NaN. A Dataset is never
// mutated after Generate returns it.
type Dataset struct {
	AgeCode    []int
	CityCode   []int
	IncomeCode []int
	EduCode    []int

	AgeLabel    []string
	CityLabel   []string
	IncomeLabel []string
	EduLabel    []string

	HouseholdSize    []int
	PurchaseFreq     []float64
	TransactionValue []float64
	DigitalLiteracy  []float64

	Awareness        []float64
	PriceSensitivity []float64
	Availability     []float64

	AgeScaled    []float64
	TierScaled   []float64
	IncomeScaled []float64
	Quality      []float64

	AdoptionScore  []float64
	AdoptionBinary []int
}

// Rows returns the number of records in the dataset.
func (d *Dataset) Rows() int { return len(d.AgeCode) }

// Generate produces the complete table for cfg. It is deterministic: two
// calls with the same Config yield identical datasets. The only failure mode
// is an invalid configuration.
//
// Draws are sequenced column-major (every row of a column, then the next
// column, in schema order) from a single source seeded with cfg.Seed.
// Missingness is injected last from a second source seeded with
// cfg.MissingSeed, after the target has been computed, so Equation 1 always
// saw fully populated inputs.
func Generate(cfg Config) (*Dataset, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	n := cfg.Rows
	src := rand.NewSource(cfg.Seed)
	rng := rand.New(src)

	d := &Dataset{}

	// Demographics: inverse-CDF categorical sampling against the target
	// proportion vectors.
	d.AgeCode = sampleCategorical(rng, cfg.AgeProportions, n)
	d.CityCode = sampleCategorical(rng, cfg.CityProportions, n)
	d.IncomeCode = sampleCategorical(rng, cfg.IncomeProportions, n)
	d.EduCode = sampleCategorical(rng, cfg.EduProportions, n)

	d.AgeLabel = mapLabels(d.AgeCode, ageLabels)
	d.CityLabel = mapLabels(d.CityCode, cityLabels)
	d.IncomeLabel = mapLabels(d.IncomeCode, incomeLabels)
	d.EduLabel = mapLabels(d.EduCode, eduLabels)

	d.HouseholdSize = make([]int, n)
	span := cfg.HouseholdMax - cfg.HouseholdMin + 1
	for i := 0; i < n; i++ {
		d.HouseholdSize[i] = cfg.HouseholdMin + rng.Intn(span)
	}

	// Behavioural features. Out-of-range exponential draws are clipped, not
	// resampled, so the emitted distribution is truncated at the bounds.
	expDist := distuv.Exponential{Rate: 1 / cfg.PurchaseScale, Src: src}
	d.PurchaseFreq = make([]float64, n)
	for i := 0; i < n; i++ {
		d.PurchaseFreq[i] = round(clip(expDist.Rand(), cfg.PurchaseMin, cfg.PurchaseMax), 3)
	}

	lnDist := distuv.LogNormal{Mu: cfg.TransactionMu, Sigma: cfg.TransactionSigma, Src: src}
	d.TransactionValue = make([]float64, n)
	for i := 0; i < n; i++ {
		d.TransactionValue[i] = round(lnDist.Rand(), 2)
	}

	// Digital literacy: the Beta alpha shifts with the age group, so older
	// cohorts skew lower.
	d.DigitalLiteracy = make([]float64, n)
	for i := 0; i < n; i++ {
		alpha := clip(cfg.DigitalAlphaBase+cfg.DigitalAlphaSlope*float64(d.AgeCode[i]),
			cfg.DigitalAlphaMin, cfg.DigitalAlphaMax)
		beta := distuv.Beta{Alpha: alpha, Beta: cfg.DigitalBeta, Src: src}
		d.DigitalLiteracy[i] = round(beta.Rand(), 4)
	}

	// Attitudinal indices: demographic-linked baselines plus Gaussian noise,
	// clipped to [0,1].
	awareNoise := distuv.Normal{Mu: 0, Sigma: cfg.AwarenessSigma, Src: src}
	d.Awareness = make([]float64, n)
	for i := 0; i < n; i++ {
		base := 0.30 +
			0.12*float64(d.EduCode[i]) +
			0.08*float64(4-d.AgeCode[i])/4 +
			0.06*float64(2-d.CityCode[i])/2
		d.Awareness[i] = round(clip01(base+awareNoise.Rand()), 4)
	}

	priceNoise := distuv.Normal{Mu: 0, Sigma: cfg.PriceSigma, Src: src}
	d.PriceSensitivity = make([]float64, n)
	for i := 0; i < n; i++ {
		base := 0.70 -
			0.10*float64(d.IncomeCode[i])/4 -
			0.05*float64(d.EduCode[i])/3
		d.PriceSensitivity[i] = round(clip01(base+priceNoise.Rand()), 4)
	}

	availNoise := distuv.Normal{Mu: 0, Sigma: cfg.AvailabilitySigma, Src: src}
	d.Availability = make([]float64, n)
	for i := 0; i < n; i++ {
		base := 0.60 -
			0.15*float64(d.CityCode[i]) +
			0.05*float64(d.EduCode[i])/3
		d.Availability[i] = round(clip01(base+availNoise.Rand()), 4)
	}

	// Derived scaled features: pure functions of the codes, no randomness,
	// except perceived quality which is an independent normal draw.
	d.AgeScaled = make([]float64, n)
	d.TierScaled = make([]float64, n)
	d.IncomeScaled = make([]float64, n)
	for i := 0; i < n; i++ {
		d.AgeScaled[i] = round(1-float64(d.AgeCode[i])/4, 4)
		d.TierScaled[i] = round(1-float64(d.CityCode[i])/2, 4)
		d.IncomeScaled[i] = round(1-float64(d.IncomeCode[i])/4, 4)
	}
	qualNoise := distuv.Normal{Mu: 0, Sigma: cfg.QualitySigma, Src: src}
	d.Quality = make([]float64, n)
	for i := 0; i < n; i++ {
		d.Quality[i] = round(clip01(0.5+qualNoise.Rand()), 4)
	}

	// Equation 1: fixed weighted sum of the seven upstream features plus
	// fresh Gaussian noise, clipped to [0,1]. The binary label is
	// thresholded on the stored (rounded) score so the emitted table is
	// self-consistent.
	eps := distuv.Normal{Mu: 0, Sigma: cfg.NoiseSigma, Src: src}
	w := cfg.Weights
	d.AdoptionScore = make([]float64, n)
	d.AdoptionBinary = make([]int, n)
	for i := 0; i < n; i++ {
		score := w.Awareness*d.Awareness[i] +
			w.Availability*d.Availability[i] +
			w.PriceInverse*(1-d.PriceSensitivity[i]) +
			w.Age*d.AgeScaled[i] +
			w.Tier*d.TierScaled[i] +
			w.Income*d.IncomeScaled[i] +
			w.Quality*d.Quality[i] +
			eps.Rand()
		d.AdoptionScore[i] = round(clip01(score), 4)
		if d.AdoptionScore[i] > 0.5 {
			d.AdoptionBinary[i] = 1
		}
	}

	injectMissing(d, cfg)
	return d, nil
}

// sampleCategorical draws n codes by inverse CDF against probs.
func sampleCategorical(rng *rand.Rand, probs []float64, n int) []int {
	cum := make([]float64, len(probs))
	s := 0.0
	for i, p := range probs {
		s += p
		cum[i] = s
	}
	// guard the final bucket against accumulated float error
	cum[len(cum)-1] = 1
	out := make([]int, n)
	for i := 0; i < n; i++ {
		u := rng.Float64()
		k := 0
		for u >= cum[k] {
			k++
		}
		out[i] = k
	}
	return out
}

func mapLabels(codes []int, labels []string) []string {
	out := make([]string, len(codes))
	for i, c := range codes {
		out[i] = labels[c]
	}
	return out
}

func clip(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clip01(v float64) float64 { return clip(v, 0, 1) }

func round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
