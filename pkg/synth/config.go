package synth

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// EquationWeights are the fixed coefficients of the adoption score equation
// (Equation 1 of the paper). They are generator constants, never re-estimated.
type EquationWeights struct {
	Awareness    float64 `yaml:"awareness"`
	Availability float64 `yaml:"availability"`
	PriceInverse float64 `yaml:"priceInverse"`
	Age          float64 `yaml:"age"`
	Tier         float64 `yaml:"tier"`
	Income       float64 `yaml:"income"`
	Quality      float64 `yaml:"quality"`
}

// Config holds every parameter of the generator. Generate is a pure function
// of this struct: the same Config always reproduces the same table.
type Config struct {
	Rows        int     `yaml:"rows"`
	Seed        uint64  `yaml:"seed"`
	MissingSeed uint64  `yaml:"missingSeed"`
	MissingRate float64 `yaml:"missingRate"`

	// Target marginal proportions per categorical code (index = code).
	AgeProportions    []float64 `yaml:"ageProportions"`
	CityProportions   []float64 `yaml:"cityProportions"`
	IncomeProportions []float64 `yaml:"incomeProportions"`
	EduProportions    []float64 `yaml:"eduProportions"`

	HouseholdMin int `yaml:"householdMin"`
	HouseholdMax int `yaml:"householdMax"`

	PurchaseScale float64 `yaml:"purchaseScale"`
	PurchaseMin   float64 `yaml:"purchaseMin"`
	PurchaseMax   float64 `yaml:"purchaseMax"`

	TransactionMu    float64 `yaml:"transactionMu"`
	TransactionSigma float64 `yaml:"transactionSigma"`

	// Digital literacy Beta(alpha, beta): alpha depends on the age code,
	// alpha = clamp(DigitalAlphaBase + DigitalAlphaSlope*age, AlphaMin, AlphaMax).
	DigitalAlphaBase  float64 `yaml:"digitalAlphaBase"`
	DigitalAlphaSlope float64 `yaml:"digitalAlphaSlope"`
	DigitalAlphaMin   float64 `yaml:"digitalAlphaMin"`
	DigitalAlphaMax   float64 `yaml:"digitalAlphaMax"`
	DigitalBeta       float64 `yaml:"digitalBeta"`

	AwarenessSigma    float64 `yaml:"awarenessSigma"`
	PriceSigma        float64 `yaml:"priceSigma"`
	AvailabilitySigma float64 `yaml:"availabilitySigma"`
	QualitySigma      float64 `yaml:"qualitySigma"`
	NoiseSigma        float64 `yaml:"noiseSigma"`

	Weights EquationWeights `yaml:"weights"`
}

// DefaultConfig returns the published generator parameters: 10,512 rows,
// seed 42, missingness seed 43, 3% missingness.
func DefaultConfig() Config {
	return Config{
		Rows:        10512,
		Seed:        42,
		MissingSeed: 43,
		MissingRate: 0.03,

		AgeProportions:    []float64{0.223, 0.297, 0.272, 0.150, 0.058},
		CityProportions:   []float64{0.42, 0.33, 0.25},
		IncomeProportions: []float64{0.200, 0.220, 0.255, 0.213, 0.113},
		EduProportions:    []float64{0.15, 0.35, 0.35, 0.15},

		HouseholdMin: 1,
		HouseholdMax: 7,

		PurchaseScale: 5,
		PurchaseMin:   1,
		PurchaseMax:   30,

		TransactionMu:    6.5,
		TransactionSigma: 0.9,

		DigitalAlphaBase:  2.0,
		DigitalAlphaSlope: -0.3,
		DigitalAlphaMin:   0.5,
		DigitalAlphaMax:   5.0,
		DigitalBeta:       1.5,

		AwarenessSigma:    0.08,
		PriceSigma:        0.07,
		AvailabilitySigma: 0.09,
		QualitySigma:      0.12,
		NoiseSigma:        0.05,

		Weights: EquationWeights{
			Awareness:    0.34,
			Availability: 0.28,
			PriceInverse: 0.22,
			Age:          0.08,
			Tier:         0.05,
			Income:       0.02,
			Quality:      0.01,
		},
	}
}

// LoadConfig reads a YAML file over the defaults, so a partial file only has
// to name the parameters it overrides. The result is validated.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("synth: read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("synth: parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

const proportionTol = 1e-9

// Validate fails fast on any configuration that could not produce a valid
// table. Generation itself cannot fail once Validate passes.
func (c Config) Validate() error {
	if c.Rows <= 0 {
		return fmt.Errorf("synth: rows must be positive, got %d", c.Rows)
	}
	if c.MissingRate < 0 || c.MissingRate > 1 {
		return fmt.Errorf("synth: missing rate %v outside [0,1]", c.MissingRate)
	}
	for _, pv := range []struct {
		name  string
		probs []float64
		want  int
	}{
		{"ageProportions", c.AgeProportions, len(ageLabels)},
		{"cityProportions", c.CityProportions, len(cityLabels)},
		{"incomeProportions", c.IncomeProportions, len(incomeLabels)},
		{"eduProportions", c.EduProportions, len(eduLabels)},
	} {
		if len(pv.probs) != pv.want {
			return fmt.Errorf("synth: %s needs %d entries, got %d", pv.name, pv.want, len(pv.probs))
		}
		sum := 0.0
		for _, p := range pv.probs {
			if p < 0 {
				return fmt.Errorf("synth: %s has negative entry %v", pv.name, p)
			}
			sum += p
		}
		if math.Abs(sum-1) > proportionTol {
			return fmt.Errorf("synth: %s sums to %v, want 1", pv.name, sum)
		}
	}
	if c.HouseholdMin < 1 || c.HouseholdMax < c.HouseholdMin {
		return fmt.Errorf("synth: household range [%d,%d] invalid", c.HouseholdMin, c.HouseholdMax)
	}
	if c.PurchaseScale <= 0 {
		return fmt.Errorf("synth: purchase scale must be positive, got %v", c.PurchaseScale)
	}
	if c.PurchaseMax <= c.PurchaseMin {
		return fmt.Errorf("synth: purchase clip range [%v,%v] invalid", c.PurchaseMin, c.PurchaseMax)
	}
	if c.TransactionSigma <= 0 {
		return fmt.Errorf("synth: transaction sigma must be positive, got %v", c.TransactionSigma)
	}
	if c.DigitalBeta <= 0 {
		return fmt.Errorf("synth: digital literacy beta must be positive, got %v", c.DigitalBeta)
	}
	if c.DigitalAlphaMin <= 0 || c.DigitalAlphaMax < c.DigitalAlphaMin {
		return fmt.Errorf("synth: digital literacy alpha clamp [%v,%v] invalid", c.DigitalAlphaMin, c.DigitalAlphaMax)
	}
	for _, s := range []struct {
		name  string
		sigma float64
	}{
		{"awarenessSigma", c.AwarenessSigma},
		{"priceSigma", c.PriceSigma},
		{"availabilitySigma", c.AvailabilitySigma},
		{"qualitySigma", c.QualitySigma},
		{"noiseSigma", c.NoiseSigma},
	} {
		if s.sigma <= 0 {
			return fmt.Errorf("synth: %s must be positive, got %v", s.name, s.sigma)
		}
	}
	return nil
}
