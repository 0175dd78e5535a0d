package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pcosta/algrow/internal/biofix"
	"github.com/pcosta/algrow/internal/growth"
	"github.com/pcosta/algrow/internal/kinetics"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID         string             `json:"id"`
	Timestamp  time.Time          `json:"timestamp"`
	Light      float64            `json:"light"`
	DIC        float64            `json:"dic"`
	X0         float64            `json:"x0"`
	TMax       float64            `json:"t_max"`
	NPoints    int                `json:"n_points"`
	Integrator string             `json:"integrator"`
	Xmax       float64            `json:"x_max"`
	MuMax      float64            `json:"mu_max"`
	Metrics    map[string]float64 `json:"metrics"`
}

// Trajectory is one persisted run: times, biomass, and the derived CO2
// fixation series, index-aligned.
type Trajectory struct {
	Times   []float64
	Biomass []float64
	CO2Rate []float64
}

// Save persists a run as metadata.json plus trajectory.csv under a
// per-run directory and returns the run id.
func (s *Store) Save(env kinetics.Environment, x0 float64, cfg growth.Config, integrator string,
	coef kinetics.Coefficients, result *growth.Result, series biofix.Series) (string, error) {

	runID := fmt.Sprintf("run_%d", time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Timestamp:  time.Now(),
		Light:      env.Light,
		DIC:        env.DIC,
		X0:         x0,
		TMax:       cfg.TMax,
		NPoints:    cfg.NPoints,
		Integrator: integrator,
		Xmax:       coef.Xmax,
		MuMax:      coef.MuMax,
		Metrics:    result.Metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "trajectory.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"time", "biomass", "qco2"}); err != nil {
		return "", err
	}

	for i := range result.Times {
		rate := 0.0
		if i < len(series.Rate) {
			rate = series.Rate[i]
		}
		row := []string{
			strconv.FormatFloat(result.Times[i], 'f', 6, 64),
			strconv.FormatFloat(result.States[i][0], 'f', 6, 64),
			strconv.FormatFloat(rate, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadTrajectory(runID string) (*Trajectory, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "trajectory.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	traj := &Trajectory{}
	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < 3 {
			continue
		}

		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		x, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			continue
		}
		q, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			continue
		}

		traj.Times = append(traj.Times, t)
		traj.Biomass = append(traj.Biomass, x)
		traj.CO2Rate = append(traj.CO2Rate, q)
	}

	return traj, nil
}
