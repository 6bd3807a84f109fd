package mapping

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// Files lists the data files a Catalog is loaded from. Any file may be gzip or zstd compressed.
type Files struct {
	// UpstreamBlockStates is a JSON array of upstream block state descriptors, indexed by ID.
	UpstreamBlockStates string `yaml:"upstream_block_states"`
	// DownstreamBlockStates is a JSON array of downstream block state descriptors, or an object
	// holding that array under "blockstates".
	DownstreamBlockStates string `yaml:"downstream_block_states"`
	// BlockStateMappings is a JSON object mapping upstream descriptors to downstream descriptors.
	BlockStateMappings string `yaml:"block_state_mappings"`
	// Registries is the NBT registry data sent during configuration. Optional.
	Registries string `yaml:"registries"`
	// Tags is the NBT tag data sent during configuration. Optional.
	Tags string `yaml:"tags"`
}

// Load reads every file in files and builds a Catalog from them.
func Load(files Files, logger *slog.Logger) (*Catalog, error) {
	var upstream []string
	if err := readJSON(files.UpstreamBlockStates, &upstream); err != nil {
		return nil, err
	}

	downstream, err := readDownstreamStates(files.DownstreamBlockStates)
	if err != nil {
		return nil, err
	}

	var mappings map[string]string
	if err := readJSON(files.BlockStateMappings, &mappings); err != nil {
		return nil, err
	}

	c, err := NewCatalog(upstream, downstream, mappings, logger)
	if err != nil {
		return nil, err
	}

	if files.Registries == "" {
		return c, nil
	}

	registries, err := readFile(files.Registries)
	if err != nil {
		return nil, err
	}

	var tags io.Reader
	if files.Tags != "" {
		data, err := readFile(files.Tags)
		if err != nil {
			return nil, err
		}
		tags = bytes.NewReader(data)
	}

	r, err := DecodeRegistries(bytes.NewReader(registries), tags)
	if err != nil {
		return nil, err
	}
	c.SetRegistries(r)
	return c, nil
}

func readDownstreamStates(path string) ([]string, error) {
	var raw json.RawMessage
	if err := readJSON(path, &raw); err != nil {
		return nil, err
	}

	var states []string
	if err := json.Unmarshal(raw, &states); err == nil {
		return states, nil
	}

	var wrapped struct {
		BlockStates []string `json:"blockstates"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return wrapped.BlockStates, nil
}

func readJSON(path string, v any) error {
	data, err := readFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return nil
}

// readFile reads the file at path, transparently decompressing gzip and zstd content.
func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := decompress(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return data, nil
}

func decompress(r *bufio.Reader) ([]byte, error) {
	magic, _ := r.Peek(len(zstdMagic))
	switch {
	case bytes.HasPrefix(magic, gzipMagic):
		gr, err := gzip.NewReader(r)
		if err != nil {
			return nil, err
		}
		defer gr.Close()
		return io.ReadAll(gr)
	case bytes.HasPrefix(magic, zstdMagic):
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		return io.ReadAll(zr)
	default:
		return io.ReadAll(r)
	}
}
