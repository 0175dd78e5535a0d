package config

// Presets mirror the scenarios explored in the reference study: the
// experimental optimum and a spread of sub- and supra-optimal cultures.
var Presets = map[string]*Config{
	"optimal": {
		Light: 120.0, DIC: 17.09, TMax: 200, NPoints: 200, Integrator: "rk45",
	},
	"suboptimal": {
		Light: 80.0, DIC: 10.0, TMax: 200, NPoints: 200, Integrator: "rk45",
	},
	"low-light": {
		Light: 50.0, DIC: 10.0, TMax: 200, NPoints: 200, Integrator: "rk45",
	},
	"high": {
		Light: 200.0, DIC: 25.0, TMax: 200, NPoints: 200, Integrator: "rk45",
	},
	"extreme": {
		Light: 300.0, DIC: 10.0, TMax: 200, NPoints: 200, Integrator: "rk45",
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
