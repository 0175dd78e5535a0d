package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
)

type ExportData struct {
	ID         string             `json:"id"`
	Light      float64            `json:"light"`
	DIC        float64            `json:"dic"`
	TMax       float64            `json:"t_max"`
	Integrator string             `json:"integrator"`
	Xmax       float64            `json:"x_max"`
	MuMax      float64            `json:"mu_max"`
	Samples    int                `json:"samples"`
	Times      []float64          `json:"times"`
	Biomass    []float64          `json:"biomass"`
	CO2Rate    []float64          `json:"co2_rate"`
	Metrics    map[string]float64 `json:"metrics"`
}

// ExportJSON writes a run as indented JSON.
func ExportJSON(w io.Writer, meta *RunMetadata, traj *Trajectory) error {
	data := ExportData{
		ID:         meta.ID,
		Light:      meta.Light,
		DIC:        meta.DIC,
		TMax:       meta.TMax,
		Integrator: meta.Integrator,
		Xmax:       meta.Xmax,
		MuMax:      meta.MuMax,
		Samples:    len(traj.Times),
		Times:      traj.Times,
		Biomass:    traj.Biomass,
		CO2Rate:    traj.CO2Rate,
		Metrics:    meta.Metrics,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// ExportCSV writes a run's trajectory as CSV.
func ExportCSV(w io.Writer, traj *Trajectory) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"time", "biomass", "qco2"}); err != nil {
		return err
	}

	for i := range traj.Times {
		row := []string{
			strconv.FormatFloat(traj.Times[i], 'f', 6, 64),
			strconv.FormatFloat(traj.Biomass[i], 'f', 6, 64),
			strconv.FormatFloat(traj.CO2Rate[i], 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	return cw.Error()
}
