package mapping

import (
	"fmt"
	"io"
	"sort"

	"github.com/sandertv/gophertunnel/minecraft/nbt"
)

const (
	dimensionTypeRegistry = "minecraft:dimension_type"
	biomeRegistry         = "minecraft:worldgen/biome"
	overworld             = "minecraft:overworld"
	plains                = "minecraft:plains"
)

// RegistryEntry is a single named entry of a downstream registry.
type RegistryEntry struct {
	Name string
	Data map[string]any
}

// Registry is a downstream registry with its entries in network order.
type Registry struct {
	Name    string
	Entries []RegistryEntry
}

// Tag is a named list of registry IDs.
type Tag struct {
	Name    string
	Entries []int32
}

// TagRegistry groups the tags of one registry.
type TagRegistry struct {
	Name string
	Tags []Tag
}

// Registries holds the registry data and tags sent to the downstream client during configuration.
// Entries are ordered by name; the client assigns numeric IDs in the order it receives them.
type Registries struct {
	Registries []Registry
	Tags       []TagRegistry

	plainsBiome int32
}

// DecodeRegistries decodes registries and tags from big-endian NBT, as found in vanilla data
// exports. The dimension type registry is reduced to the overworld, stretched to the proxy's
// world bounds. tags may be nil.
func DecodeRegistries(registries io.Reader, tags io.Reader) (*Registries, error) {
	var root map[string]any
	if err := nbt.NewDecoderWithEncoding(registries, nbt.BigEndian).Decode(&root); err != nil {
		return nil, fmt.Errorf("registries: %w", err)
	}

	if err := patchDimensions(root); err != nil {
		return nil, err
	}

	r := &Registries{}
	for _, name := range sortedKeys(root) {
		entries, ok := root[name].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("registries: %s is not a compound", name)
		}

		registry := Registry{Name: name}
		for _, entryName := range sortedKeys(entries) {
			data, _ := entries[entryName].(map[string]any)
			registry.Entries = append(registry.Entries, RegistryEntry{Name: entryName, Data: data})
		}
		r.Registries = append(r.Registries, registry)

		if name == biomeRegistry {
			for i, entry := range registry.Entries {
				if entry.Name == plains {
					r.plainsBiome = int32(i)
				}
			}
		}
	}

	if tags == nil {
		return r, nil
	}

	var tagRoot map[string]any
	if err := nbt.NewDecoderWithEncoding(tags, nbt.BigEndian).Decode(&tagRoot); err != nil {
		return nil, fmt.Errorf("tags: %w", err)
	}
	for _, name := range sortedKeys(tagRoot) {
		compound, ok := tagRoot[name].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("tags: %s is not a compound", name)
		}

		registry := TagRegistry{Name: name}
		for _, tagName := range sortedKeys(compound) {
			ids, ok := compound[tagName].([]int32)
			if !ok {
				return nil, fmt.Errorf("tags: %s/%s is not an int array", name, tagName)
			}
			registry.Tags = append(registry.Tags, Tag{Name: tagName, Entries: ids})
		}
		r.Tags = append(r.Tags, registry)
	}
	return r, nil
}

// PlainsBiome returns the index of the plains biome in the biome registry.
func (r *Registries) PlainsBiome() int32 {
	return r.plainsBiome
}

// BiomeCount returns the number of biomes sent to the client.
func (r *Registries) BiomeCount() int {
	for _, registry := range r.Registries {
		if registry.Name == biomeRegistry {
			return len(registry.Entries)
		}
	}
	return 0
}

func patchDimensions(root map[string]any) error {
	dimensions, ok := root[dimensionTypeRegistry].(map[string]any)
	if !ok {
		return fmt.Errorf("registries: missing %s", dimensionTypeRegistry)
	}

	dimension, ok := dimensions[overworld].(map[string]any)
	if !ok {
		return fmt.Errorf("registries: missing %s dimension", overworld)
	}

	dimension["min_y"] = int32(WorldMinY)
	dimension["height"] = int32(WorldHeight)
	dimension["logical_height"] = int32(WorldHeight)
	root[dimensionTypeRegistry] = map[string]any{overworld: dimension}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
