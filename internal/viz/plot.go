package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
)

// GrowthPlot renders a biomass trajectory as an ASCII chart.
func GrowthPlot(biomass []float64, light, dic float64, width, height int) string {
	caption := fmt.Sprintf("biomass (g/L), I=%.0f umol/m2/s, DIC=%.2f mM", light, dic)
	return asciigraph.Plot(biomass,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}

// FixationPlot renders the instantaneous CO2 uptake rate.
func FixationPlot(rate []float64, width, height int) string {
	return asciigraph.Plot(rate,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("qCO2 (g CO2/L/h)"),
	)
}
