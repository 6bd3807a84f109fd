package util

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadOpts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prism.yaml")
	config := `
addr: ":25570"
server: "cr.example.com:47137"
max_players: 20
mappings:
  upstream_block_states: up.json
  downstream_block_states: down.json.gz
  block_state_mappings: map.json
`
	if err := os.WriteFile(path, []byte(config), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	opts, err := LoadOpts(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if opts.Addr != ":25570" || opts.Server != "cr.example.com:47137" || opts.MaxPlayers != 20 {
		t.Fatalf("unexpected options %+v", opts)
	}
	if opts.ViewDistance != 32 || opts.MOTD != "Prism Proxy" {
		t.Fatalf("expected defaults to be kept, got %+v", opts)
	}
	if opts.Mappings.DownstreamBlockStates != "down.json.gz" {
		t.Fatalf("unexpected mapping files %+v", opts.Mappings)
	}
}

func TestValidate(t *testing.T) {
	opts := DefaultOpts()
	opts.APIAddr = ":8080"
	opts.ViewDistance = 64
	err := opts.Validate()
	if err == nil {
		t.Fatalf("expected an error")
	}
	for _, want := range []string{"mappings", "api_token", "view_distance"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected %q in %v", want, err)
		}
	}
}

func TestStatusJSON(t *testing.T) {
	status := NewStatusProvider("hello").ServerStatus(3, 100)
	var decoded map[string]any
	if err := json.Unmarshal([]byte(status.JSON()), &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	players := decoded["players"].(map[string]any)
	if players["online"] != float64(3) || players["max"] != float64(100) {
		t.Fatalf("unexpected players %v", players)
	}
	if decoded["version"].(map[string]any)["protocol"] != float64(767) {
		t.Fatalf("unexpected version %v", decoded["version"])
	}
}
