package analysis

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/drnleelavathy-code/rf-arima-sustainability-india/pkg/data"
	"github.com/drnleelavathy-code/rf-arima-sustainability-india/pkg/synth"
)

func generatedFrame(t *testing.T, rows int) *data.Frame {
	t.Helper()
	cfg := synth.DefaultConfig()
	cfg.Rows = rows
	ds, err := synth.Generate(cfg)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "dataset.csv")
	require.NoError(t, synth.WriteCSVFile(path, ds))

	fr, err := data.LoadCSV(path)
	require.NoError(t, err)
	return fr
}

func TestRunRecoversGenerativeStructure(t *testing.T) {
	fr := generatedFrame(t, 600)
	opts := Options{Trees: 30, MaxDepth: 10, Folds: 4, Seed: 11}
	res, err := Run(fr, opts)
	require.NoError(t, err)

	require.Equal(t, 600, res.Rows)
	require.Equal(t, FeatureColumns(), res.Features)
	require.Len(t, res.Coef, 12)
	require.Greater(t, res.Imputed, 0, "default config injects missing cells")

	// Equation 1 leaves only N(0, 0.05) unexplained, so the linear fit is
	// strong and its leading coefficients carry the generative signs.
	require.Greater(t, res.LinearR2, 0.6)
	require.Greater(t, res.CVR2Mean, 0.4)
	coef := map[string]float64{}
	for i, name := range res.Features {
		coef[name] = res.Coef[i]
	}
	require.InDelta(t, 0.34, coef[synth.ColAwareness], 0.1)
	require.InDelta(t, 0.28, coef[synth.ColAvailability], 0.1)
	require.InDelta(t, -0.22, coef[synth.ColPrice], 0.1)

	require.True(t, res.OOBValid)
	require.GreaterOrEqual(t, res.OOBError, 0.0)
	require.LessOrEqual(t, res.OOBError, 1.0)
	require.Greater(t, res.TrainAccuracy, 0.8)

	sum := 0.0
	for _, v := range res.Importances {
		sum += v
	}
	require.InDelta(t, 1.0, sum, 1e-9)

	// the primary generative driver must rank among the top importances
	top := res.RankedImportances()[:3]
	names := []string{top[0].Feature, top[1].Feature, top[2].Feature}
	require.Contains(t, names, synth.ColAwareness)
}

func TestRunDeterministic(t *testing.T) {
	fr := generatedFrame(t, 300)
	opts := Options{Trees: 10, MaxDepth: 8, Folds: 3, Seed: 5}
	a, err := Run(fr, opts)
	require.NoError(t, err)
	b, err := Run(fr, opts)
	require.NoError(t, err)

	require.Equal(t, a.LinearR2, b.LinearR2)
	require.Equal(t, a.CVR2Mean, b.CVR2Mean)
	require.Equal(t, a.OOBError, b.OOBError)
	require.Equal(t, a.Importances, b.Importances)
}

func TestRunOptionValidation(t *testing.T) {
	fr := generatedFrame(t, 100)
	_, err := Run(fr, Options{Trees: 0, Folds: 5})
	require.Error(t, err)
	_, err = Run(fr, Options{Trees: 10, Folds: 1})
	require.Error(t, err)
}

func TestWriteReport(t *testing.T) {
	fr := generatedFrame(t, 200)
	res, err := Run(fr, Options{Trees: 8, MaxDepth: 6, Folds: 3, Seed: 2})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, res.WriteReport(&buf, synth.DefaultConfig().Weights))
	out := buf.String()
	require.Contains(t, out, "R² (cross-val)")
	require.Contains(t, out, "OOB error")
	require.Contains(t, out, synth.ColAwareness)
}

func TestGenerativeCoefAlignment(t *testing.T) {
	gen := GenerativeCoef(synth.DefaultConfig().Weights)
	require.Len(t, gen, len(FeatureColumns()))
	coef := map[string]float64{}
	for i, name := range FeatureColumns() {
		coef[name] = gen[i]
	}
	require.Equal(t, 0.34, coef[synth.ColAwareness])
	require.Equal(t, -0.22, coef[synth.ColPrice])
	require.Equal(t, 0.0, coef[synth.ColHousehold])
}
