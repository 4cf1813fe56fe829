package testgraph

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed testdata/*.yaml
var fixtures embed.FS

// Edge is one adjacency entry of a fixture file.
type Edge struct {
	From   string  `yaml:"from"`
	To     string  `yaml:"to"`
	Weight float64 `yaml:"weight"`
}

// Fixture is the YAML form of a small graph:
//
//	name: diamond
//	directed: true
//	edges:
//	  - {from: A, to: B, weight: 1}
type Fixture struct {
	Name      string             `yaml:"name"`
	Directed  bool               `yaml:"directed"`
	Edges     []Edge             `yaml:"edges"`
	Heuristic map[string]float64 `yaml:"heuristic"`
}

// Adjacency is a Fixture compiled into forward and reverse child lists.
// Child order follows the order of the edges in the file.
type Adjacency struct {
	Fixture
	forward map[string][]string
	reverse map[string][]string
	weights map[[2]string]float64
}

// Parse decodes a YAML fixture.
func Parse(data []byte) (*Adjacency, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("testgraph: decode fixture: %w", err)
	}
	a := &Adjacency{
		Fixture: f,
		forward: make(map[string][]string),
		reverse: make(map[string][]string),
		weights: make(map[[2]string]float64),
	}
	for _, e := range f.Edges {
		if e.From == "" || e.To == "" {
			return nil, fmt.Errorf("testgraph: fixture %q: edge with empty endpoint", f.Name)
		}
		a.add(e.From, e.To, e.Weight)
		if !f.Directed {
			a.add(e.To, e.From, e.Weight)
		}
	}
	return a, nil
}

func (a *Adjacency) add(from, to string, w float64) {
	a.forward[from] = append(a.forward[from], to)
	a.reverse[to] = append(a.reverse[to], from)
	a.weights[[2]string{from, to}] = w
}

// Load reads testdata/<name>.yaml.
func Load(name string) (*Adjacency, error) {
	data, err := fixtures.ReadFile("testdata/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("testgraph: read fixture %q: %w", name, err)
	}
	return Parse(data)
}

// MustLoad is Load for tests; it panics on error.
func MustLoad(name string) *Adjacency {
	a, err := Load(name)
	if err != nil {
		panic(err)
	}
	return a
}

// Children is the forward ChildGenerator.
func (a *Adjacency) Children(s string) []string { return a.forward[s] }

// Parents is the reverse ChildGenerator.
func (a *Adjacency) Parents(s string) []string { return a.reverse[s] }

// Weight is the EdgeWeigher; a missing edge weighs 0.
func (a *Adjacency) Weight(parent, child string) float64 {
	return a.weights[[2]string{parent, child}]
}

// Estimate is the Heuristic declared in the fixture; missing states estimate 0.
func (a *Adjacency) Estimate(s string) float64 { return a.Heuristic[s] }
