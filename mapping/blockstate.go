package mapping

import (
	"sort"
	"strings"
)

// BlockState is a block identifier plus an unordered set of properties. A property parsed without
// a value ("base:air[default]") is stored with an empty value and formatted back without "=".
type BlockState struct {
	ID         string
	Properties map[string]string
}

// ParseBlockState parses descriptors of the form id[k=v,k2=v2]. The property list is split on the
// first '[' and a trailing ']' is dropped.
func ParseBlockState(s string) BlockState {
	id, rest, found := strings.Cut(s, "[")
	if !found {
		return BlockState{ID: s}
	}

	rest = strings.TrimSuffix(rest, "]")
	state := BlockState{ID: id, Properties: make(map[string]string)}
	if rest == "" {
		return state
	}
	for _, property := range strings.Split(rest, ",") {
		k, v, _ := strings.Cut(property, "=")
		state.Properties[k] = v
	}
	return state
}

// Bare returns the state with its properties stripped.
func (s BlockState) Bare() BlockState {
	return BlockState{ID: s.ID}
}

// String formats the state with its properties sorted by key, so two states with the same
// property set always format identically.
func (s BlockState) String() string {
	if len(s.Properties) == 0 {
		return s.ID
	}

	keys := make([]string, 0, len(s.Properties))
	for k := range s.Properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(s.ID)
	b.WriteByte('[')
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(k)
		if v := s.Properties[k]; v != "" {
			b.WriteByte('=')
			b.WriteString(v)
		}
	}
	b.WriteByte(']')
	return b.String()
}

// Equal reports whether both states carry the same identifier and property set.
func (s BlockState) Equal(o BlockState) bool {
	if s.ID != o.ID || len(s.Properties) != len(o.Properties) {
		return false
	}
	for k, v := range s.Properties {
		if ov, ok := o.Properties[k]; !ok || ov != v {
			return false
		}
	}
	return true
}
