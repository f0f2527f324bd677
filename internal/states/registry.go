package states

import (
	"math"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"reform-engine/internal/model"
)

// DefaultState is the profile selected when nothing else is asked for.
const DefaultState = "California"

// Demonstration figures, not real data.
var defaultProfiles = []model.StateProfile{
	{Name: "California", FundingLoss: 42.3, Population: 39.5, MedicaidEnrollment: 14.2},
	{Name: "Texas", FundingLoss: 38.7, Population: 29.5, MedicaidEnrollment: 5.8},
	{Name: "New York", FundingLoss: 35.2, Population: 19.5, MedicaidEnrollment: 7.3},
	{Name: "Florida", FundingLoss: 31.5, Population: 21.8, MedicaidEnrollment: 5.2},
	{Name: "Pennsylvania", FundingLoss: 28.9, Population: 12.8, MedicaidEnrollment: 3.4},
	{Name: "Ohio", FundingLoss: 24.6, Population: 11.7, MedicaidEnrollment: 3.1},
	{Name: "Illinois", FundingLoss: 22.1, Population: 12.6, MedicaidEnrollment: 3.2},
	{Name: "Michigan", FundingLoss: 19.8, Population: 10.0, MedicaidEnrollment: 2.8},
	{Name: "North Carolina", FundingLoss: 17.3, Population: 10.6, MedicaidEnrollment: 2.4},
	{Name: "Georgia", FundingLoss: 15.9, Population: 10.7, MedicaidEnrollment: 2.0},
}

// Registry is an immutable table of state profiles keyed by name. It is
// safe for concurrent use.
type Registry struct {
	profiles []model.StateProfile
	byName   map[string]int
}

type stateFile struct {
	States []model.StateProfile `yaml:"states"`
}

// Default returns the built-in ten-state table.
func Default() *Registry {
	r, err := New(defaultProfiles)
	if err != nil {
		panic(err)
	}
	return r
}

// New builds a registry, rejecting empty tables, duplicate or blank names
// and negative figures.
func New(profiles []model.StateProfile) (*Registry, error) {
	if len(profiles) == 0 {
		return nil, eris.New("states: table is empty")
	}

	r := &Registry{
		profiles: make([]model.StateProfile, 0, len(profiles)),
		byName:   make(map[string]int, len(profiles)),
	}
	for _, p := range profiles {
		p.Name = strings.TrimSpace(p.Name)
		if p.Name == "" {
			return nil, eris.New("states: profile without a name")
		}
		if _, dup := r.byName[p.Name]; dup {
			return nil, eris.Errorf("states: duplicate profile %q", p.Name)
		}
		for _, v := range []float64{p.FundingLoss, p.Population, p.MedicaidEnrollment} {
			if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, eris.Errorf("states: invalid figures for %q", p.Name)
			}
		}
		r.byName[p.Name] = len(r.profiles)
		r.profiles = append(r.profiles, p)
	}
	return r, nil
}

// Load reads a YAML table from path, or returns the built-in table when
// path is empty.
func Load(path string) (*Registry, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "states: read %s", path)
	}

	var f stateFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, eris.Wrapf(err, "states: parse %s", path)
	}

	r, err := New(f.States)
	if err != nil {
		return nil, eris.Wrapf(err, "states: load %s", path)
	}
	return r, nil
}

// Lookup finds a profile by exact name, falling back to a case-insensitive
// match.
func (r *Registry) Lookup(name string) (model.StateProfile, bool) {
	name = strings.TrimSpace(name)
	if i, ok := r.byName[name]; ok {
		return r.profiles[i], true
	}
	for _, p := range r.profiles {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return model.StateProfile{}, false
}

func (r *Registry) Names() []string {
	names := make([]string, len(r.profiles))
	for i, p := range r.profiles {
		names[i] = p.Name
	}
	return names
}

// All returns the profiles in table order.
func (r *Registry) All() []model.StateProfile {
	out := make([]model.StateProfile, len(r.profiles))
	copy(out, r.profiles)
	return out
}
