package catalog

import (
	"os"

	"gopkg.in/yaml.v3"

	"classroom-planner/internal/scene"
)

// DefaultPath is the optional catalog override file, relative to the process
// working directory. Missing file means built-in defaults.
const DefaultPath = "assets/furniture.yaml"

// Def holds the per-kind interaction and presentation parameters. Radii are
// in screen pixels at scale 1; rotation is in degrees.
type Def struct {
	Label           string  `yaml:"label,omitempty"`
	HitRadius       float64 `yaml:"hit_radius,omitempty"`
	IndicatorRadius float64 `yaml:"indicator_radius,omitempty"`
	DefaultRotation float64 `yaml:"default_rotation,omitempty"`
}

// Catalog maps every furniture kind to its Def.
type Catalog struct {
	defs map[scene.Kind]Def
}

// Default returns the built-in catalog. Chairs spawn rotated 180 degrees so
// they face the blackboard; everything else spawns unrotated.
func Default() Catalog {
	return Catalog{defs: map[scene.Kind]Def{
		scene.KindChair:   {Label: "Chair", HitRadius: 40, IndicatorRadius: 35, DefaultRotation: 180},
		scene.KindDesk:    {Label: "Desk", HitRadius: 60, IndicatorRadius: 50},
		scene.KindTable:   {Label: "Table", HitRadius: 80, IndicatorRadius: 70},
		scene.KindPodium:  {Label: "Podium", HitRadius: 45, IndicatorRadius: 35},
		scene.KindCabinet: {Label: "Cabinet", HitRadius: 50, IndicatorRadius: 40},
	}}
}

// Load reads per-kind overrides from a YAML file keyed by kind name, e.g.
//
//	chair:
//	  hit_radius: 48
//
// Overrides are merged over the defaults; zero fields keep the default. If
// the file is missing or invalid, Load returns Default() and does not create
// a file.
func Load(path string) (Catalog, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, nil
	}
	var raw map[string]Def
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return c, nil
	}
	for name, over := range raw {
		kind, err := scene.ParseKind(name)
		if err != nil {
			continue
		}
		def := c.defs[kind]
		if over.Label != "" {
			def.Label = over.Label
		}
		if over.HitRadius > 0 {
			def.HitRadius = over.HitRadius
		}
		if over.IndicatorRadius > 0 {
			def.IndicatorRadius = over.IndicatorRadius
		}
		if over.DefaultRotation != 0 {
			def.DefaultRotation = over.DefaultRotation
		}
		c.defs[kind] = def
	}
	return c, nil
}

// Get returns the Def for a kind. Unknown kinds fall back to the chair Def
// so a bad value still hit-tests with a sane radius.
func (c Catalog) Get(k scene.Kind) Def {
	if d, ok := c.defs[k]; ok {
		return d
	}
	return c.defs[scene.KindChair]
}
