package synth

import (
	"fmt"
	"io"
)

// Column names, in the fixed schema order of the emitted table.
const (
	ColAgeCode      = "age_group_code"
	ColCityCode     = "city_tier_code"
	ColIncomeCode   = "income_q_code"
	ColEduCode      = "edu_level_code"
	ColAgeLabel     = "age_group_label"
	ColCityLabel    = "city_tier_label"
	ColIncomeLabel  = "income_q_label"
	ColEduLabel     = "edu_level_label"
	ColHousehold    = "household_size"
	ColPurchase     = "purchase_freq_raw"
	ColTransaction  = "transaction_value_inr"
	ColDigital      = "digital_literacy"
	ColAwareness    = "consumer_awareness_index"
	ColPrice        = "price_sensitivity"
	ColAvailability = "product_availability"
	ColAgeScaled    = "age_scaled"
	ColTierScaled   = "tier_scaled"
	ColIncomeScaled = "income_scaled"
	ColQuality      = "perceived_quality"
	ColScore        = "adoption_score"
	ColBinary       = "adoption_binary"

	// ColRecordID is the index column the CSV leads with; it is not part of
	// the 21-column data schema.
	ColRecordID = "record_id"
)

// Columns returns the 21 data column names in codebook order.
func Columns() []string {
	return []string{
		ColAgeCode, ColCityCode, ColIncomeCode, ColEduCode,
		ColAgeLabel, ColCityLabel, ColIncomeLabel, ColEduLabel,
		ColHousehold, ColPurchase, ColTransaction, ColDigital,
		ColAwareness, ColPrice, ColAvailability,
		ColAgeScaled, ColTierScaled, ColIncomeScaled, ColQuality,
		ColScore, ColBinary,
	}
}

// MissingEligibleColumns returns, in injection order, the only columns that
// may contain missing values. Codes, labels, derived features and targets are
// always fully populated.
func MissingEligibleColumns() []string {
	return []string{ColAwareness, ColAvailability, ColPrice, ColDigital, ColTransaction}
}

var (
	ageLabels    = []string{"18-25", "26-35", "36-45", "46-55", "55+"}
	cityLabels   = []string{"Tier-1", "Tier-2", "Tier-3"}
	incomeLabels = []string{"Top_20pct", "60_80pct", "40_60pct", "20_40pct", "Bottom_20pct"}
	eduLabels    = []string{"Below_Secondary", "Secondary", "Graduate", "Postgraduate"}
)

// AgeGroupLabel maps an age group code to its canonical label.
func AgeGroupLabel(code int) string { return ageLabels[code] }

// CityTierLabel maps a city tier code to its canonical label.
func CityTierLabel(code int) string { return cityLabels[code] }

// IncomeQuintileLabel maps an income quintile code to its canonical label.
func IncomeQuintileLabel(code int) string { return incomeLabels[code] }

// EducationLabel maps an education level code to its canonical label.
func EducationLabel(code int) string { return eduLabels[code] }

// WriteCodebook writes the human-readable dataset README: the column
// codebook, the target marginal proportions, and the generation weights.
func WriteCodebook(w io.Writer, cfg Config) error {
	var err error
	p := func(format string, args ...interface{}) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, format+"\n", args...)
	}

	p("=============================================================")
	p("DATASET README / CODEBOOK")
	p("=============================================================")
	p("Title   : Synthetic Consumer Behavior Dataset for")
	p("          Sustainable Product Adoption Analysis (India)")
	p("Records : %d", cfg.Rows)
	p("Columns : %d (+ %s index)", len(Columns()), ColRecordID)
	p("Format  : CSV, UTF-8, comma-delimited")
	p("Seeds   : data=%d, missingness=%d", cfg.Seed, cfg.MissingSeed)
	p("Missing : ~%.0f%% in %d attitudinal/behavioural columns",
		cfg.MissingRate*100, len(MissingEligibleColumns()))
	p("")
	p("IMPORTANT DISCLOSURE")
	p("--------------------")
	p("This dataset is SYNTHETICALLY GENERATED. The %s target is", ColScore)
	p("a fixed weighted sum of seven upstream features plus Gaussian noise;")
	p("feature-importance scores recover this generative structure, not any")
	p("real-world effect.")
	p("This is NOT a field-collected transaction dataset.")
	p("")
	p("COLUMN CODEBOOK")
	p("---------------")
	p("%-26s: row index (0-based)", ColRecordID)
	p("")
	p("DEMOGRAPHIC CODES (integer) AND LABELS (string, same information)")
	for code, lab := range ageLabels {
		p("  %s %d = %s", ColAgeCode, code, lab)
	}
	for code, lab := range cityLabels {
		p("  %s %d = %s", ColCityCode, code, lab)
	}
	for code, lab := range incomeLabels {
		p("  %s %d = %s", ColIncomeCode, code, lab)
	}
	for code, lab := range eduLabels {
		p("  %s %d = %s", ColEduCode, code, lab)
	}
	p("")
	p("HOUSEHOLD & BEHAVIOURAL")
	p("  %-24s: integer %d-%d", ColHousehold, cfg.HouseholdMin, cfg.HouseholdMax)
	p("  %-24s: purchases/month, Exponential(scale=%g) clipped [%g,%g]",
		ColPurchase, cfg.PurchaseScale, cfg.PurchaseMin, cfg.PurchaseMax)
	p("  %-24s: INR, LogNormal(mu=%g, sigma=%g)", ColTransaction, cfg.TransactionMu, cfg.TransactionSigma)
	p("  %-24s: 0-1, Beta(alpha by age group, beta=%g)", ColDigital, cfg.DigitalBeta)
	p("")
	p("ATTITUDINAL (0-1, may contain missing values)")
	p("  %-24s: primary adoption driver (weight %.2f)", ColAwareness, cfg.Weights.Awareness)
	p("  %-24s: higher = more price sensitive (weight %.2f, inverted)", ColPrice, cfg.Weights.PriceInverse)
	p("  %-24s: supply-side score (weight %.2f)", ColAvailability, cfg.Weights.Availability)
	p("")
	p("DERIVED SCALED FEATURES (0-1, never missing)")
	p("  %-24s: 1 - %s/4", ColAgeScaled, ColAgeCode)
	p("  %-24s: 1 - %s/2", ColTierScaled, ColCityCode)
	p("  %-24s: 1 - %s/4", ColIncomeScaled, ColIncomeCode)
	p("  %-24s: Normal(0.5, %g) clipped to [0,1]", ColQuality, cfg.QualitySigma)
	p("")
	p("TARGET VARIABLES")
	p("  %-24s: continuous [0,1], Equation (1)", ColScore)
	p("  %-24s: 1 if %s > 0.5, else 0", ColBinary, ColScore)
	p("")
	p("GENERATION WEIGHTS (Equation 1)")
	p("  %-26s: %.2f", ColAwareness, cfg.Weights.Awareness)
	p("  %-26s: %.2f", ColAvailability, cfg.Weights.Availability)
	p("  price competitiveness (inv): %.2f", cfg.Weights.PriceInverse)
	p("  %-26s: %.2f", ColAgeScaled, cfg.Weights.Age)
	p("  %-26s: %.2f", ColTierScaled, cfg.Weights.Tier)
	p("  %-26s: %.2f", ColIncomeScaled, cfg.Weights.Income)
	p("  %-26s: %.2f", ColQuality, cfg.Weights.Quality)
	p("  noise                     : N(0, %g^2)", cfg.NoiseSigma)
	p("")
	p("REPRODUCIBILITY")
	p("---------------")
	p("Regeneration with the same seeds reproduces this table byte-for-byte.")
	p("=============================================================")
	return err
}
