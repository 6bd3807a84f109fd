package mapping

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/brentp/intintmap"
)

const (
	// DownstreamAir is the Java Edition air state.
	DownstreamAir int32 = 0
	// DownstreamFallback is the solid block substituted for upstream states without a mapping.
	DownstreamFallback int32 = 1

	// WorldMinY and WorldHeight are the vertical bounds advertised to the downstream client.
	WorldMinY   = -1024
	WorldHeight = 2048
)

// UpstreamAir is the upstream air state, used as the fallback for unknown upstream descriptors.
var UpstreamAir = BlockState{ID: "base:air", Properties: map[string]string{"default": ""}}

var ErrMissingAir = errors.New("upstream catalog does not contain " + UpstreamAir.String())

// table is a bijection between block state descriptors and their index in the source array.
type table struct {
	states []BlockState
	ids    map[string]int32
}

func newTable(name string, descriptors []string) (*table, error) {
	t := &table{
		states: make([]BlockState, len(descriptors)),
		ids:    make(map[string]int32, len(descriptors)),
	}
	for i, descriptor := range descriptors {
		state := ParseBlockState(descriptor)
		key := state.String()
		if previous, ok := t.ids[key]; ok {
			return nil, fmt.Errorf("%s: %s is listed at both %d and %d", name, descriptor, previous, i)
		}
		t.states[i] = state
		t.ids[key] = int32(i)
	}
	return t, nil
}

func (t *table) id(state BlockState) (int32, bool) {
	id, ok := t.ids[state.String()]
	return id, ok
}

func (t *table) state(id int32) (BlockState, bool) {
	if id < 0 || int(id) >= len(t.states) {
		return BlockState{}, false
	}
	return t.states[id], true
}

// Catalog holds both block state catalogs and the upstream to downstream cross-mapping. It is
// immutable once built and safe for concurrent use.
type Catalog struct {
	upstream   *table
	downstream *table
	cross      *intintmap.Map

	upstreamAir int32
	explicit    int
	inherited   int

	registries *Registries
}

// NewCatalog builds a catalog from the upstream and downstream descriptor arrays and the
// upstream descriptor to downstream descriptor mappings. Mappings with an empty target are
// skipped. States without an explicit mapping inherit the target of their bare identifier.
func NewCatalog(upstream, downstream []string, mappings map[string]string, logger *slog.Logger) (*Catalog, error) {
	up, err := newTable("upstream block states", upstream)
	if err != nil {
		return nil, err
	}

	down, err := newTable("downstream block states", downstream)
	if err != nil {
		return nil, err
	}

	air, ok := up.id(UpstreamAir)
	if !ok {
		return nil, ErrMissingAir
	}

	c := &Catalog{
		upstream:    up,
		downstream:  down,
		cross:       intintmap.New(len(upstream), 0.6),
		upstreamAir: air,
	}
	for from, to := range mappings {
		fromID, ok := up.id(ParseBlockState(from))
		if !ok {
			return nil, fmt.Errorf("block state mappings: unknown upstream block state %s", from)
		}
		if to == "" {
			continue
		}

		toID, ok := down.id(ParseBlockState(to))
		if !ok {
			return nil, fmt.Errorf("block state mappings: unknown downstream block state %s", to)
		}
		if existing, ok := c.cross.Get(int64(fromID)); ok && int32(existing) != toID {
			return nil, fmt.Errorf("block state mappings: duplicate mapping for %s", from)
		}
		c.cross.Put(int64(fromID), int64(toID))
	}
	c.explicit = c.cross.Size()

	for i, state := range up.states {
		if len(state.Properties) == 0 {
			continue
		}
		if _, ok := c.cross.Get(int64(i)); ok {
			continue
		}
		bareID, ok := up.id(state.Bare())
		if !ok {
			continue
		}
		if to, ok := c.cross.Get(int64(bareID)); ok {
			c.cross.Put(int64(i), to)
			c.inherited++
		}
	}

	if logger != nil {
		logger.Debug("built block state catalog", "upstream", len(upstream), "downstream", len(downstream), "mapped", c.explicit, "inherited", c.inherited)
	}
	return c, nil
}

// UpstreamID returns the upstream numeric ID of the state passed.
func (c *Catalog) UpstreamID(state BlockState) (int32, bool) {
	return c.upstream.id(state)
}

// UpstreamState ...
func (c *Catalog) UpstreamState(id int32) (BlockState, bool) {
	return c.upstream.state(id)
}

// DownstreamID returns the downstream numeric ID of the state passed.
func (c *Catalog) DownstreamID(state BlockState) (int32, bool) {
	return c.downstream.id(state)
}

// DownstreamState ...
func (c *Catalog) DownstreamState(id int32) (BlockState, bool) {
	return c.downstream.state(id)
}

// CrossMap returns the downstream ID the upstream ID passed maps to.
func (c *Catalog) CrossMap(upstream int32) (int32, bool) {
	id, ok := c.cross.Get(int64(upstream))
	return int32(id), ok
}

// UpstreamAirID returns the upstream numeric ID of air.
func (c *Catalog) UpstreamAirID() int32 {
	return c.upstreamAir
}

// DownstreamAirID returns the downstream ID upstream air maps to, or DownstreamAir when air is not mapped.
func (c *Catalog) DownstreamAirID() int32 {
	if id, ok := c.CrossMap(c.upstreamAir); ok {
		return id
	}
	return DownstreamAir
}

// DownstreamStateCount returns the size of the downstream catalog, which sizes the global palette.
func (c *Catalog) DownstreamStateCount() int {
	return len(c.downstream.states)
}

// Registries returns the downstream registries and tags, or nil when none were loaded.
func (c *Catalog) Registries() *Registries {
	return c.registries
}

// SetRegistries attaches downstream registries and tags to the catalog. It must be called before
// the catalog is shared.
func (c *Catalog) SetRegistries(r *Registries) {
	c.registries = r
}

// PlainsBiome returns the biome ID every downstream biome cell is filled with.
func (c *Catalog) PlainsBiome() int32 {
	if c.registries == nil {
		return 0
	}
	return c.registries.PlainsBiome()
}

// Stats describes the coverage of the cross-mapping.
type Stats struct {
	Upstream   int
	Downstream int
	Explicit   int
	Inherited  int
	Unmapped   []string
}

// Stats ...
func (c *Catalog) Stats() Stats {
	s := Stats{
		Upstream:   len(c.upstream.states),
		Downstream: len(c.downstream.states),
		Explicit:   c.explicit,
		Inherited:  c.inherited,
	}
	for i, state := range c.upstream.states {
		if _, ok := c.cross.Get(int64(i)); !ok {
			s.Unmapped = append(s.Unmapped, state.String())
		}
	}
	return s
}
