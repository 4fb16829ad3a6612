package analysis

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/drnleelavathy-code/rf-arima-sustainability-india/pkg/synth"
)

// WriteReport renders the fit statistics as the tables the technical note
// quotes: linear R² and CV R², coefficient recovery against the generative
// weights, and the forest's OOB error and importance ranking.
func (r *Result) WriteReport(w io.Writer, weights synth.EquationWeights) error {
	var err error
	p := func(format string, args ...interface{}) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, format+"\n", args...)
	}

	p("Rows analyzed      : %d", r.Rows)
	p("Cells imputed      : %d (column mean)", r.Imputed)
	p("")
	p("── Linear regression on %s ──", synth.ColScore)
	p("R² (in-sample)     : %.4f", r.LinearR2)
	p("RMSE (in-sample)   : %.4f", r.LinearRMSE)
	p("R² (cross-val)     : %.4f ± %.4f", r.CVR2Mean, r.CVR2Std)
	p("Intercept          : %.4f", r.Intercept)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "feature\tfitted coef\tgenerative")
	gen := GenerativeCoef(weights)
	for i, name := range r.Features {
		fmt.Fprintf(tw, "%s\t%+.4f\t%+.2f\n", name, r.Coef[i], gen[i])
	}
	if err = tw.Flush(); err != nil {
		return err
	}

	p("")
	p("── Random forest on %s ──", synth.ColBinary)
	p("Train accuracy     : %.4f", r.TrainAccuracy)
	if r.OOBValid {
		p("OOB error          : %.4f", r.OOBError)
	} else {
		p("OOB error          : n/a (no bootstrap)")
	}
	if err != nil {
		return err
	}

	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "rank\tfeature\timportance")
	for i, fi := range r.RankedImportances() {
		fmt.Fprintf(tw, "%d\t%s\t%.4f\n", i+1, fi.Feature, fi.Importance)
	}
	return tw.Flush()
}
