package util

import (
	"errors"
	"fmt"
	"os"

	"github.com/cooldogedev/prism/mapping"
	"gopkg.in/yaml.v3"
)

type Opts struct {
	// Addr is the address Java Edition clients connect to.
	Addr string `yaml:"addr"`
	// Server is the address of the Cosmic Reach server players are sent to.
	Server string `yaml:"server"`
	// FallbackServer is dialed when Server cannot be reached. It may be empty.
	FallbackServer string `yaml:"fallback_server"`
	// MOTD is the message shown in the server list.
	MOTD string `yaml:"motd"`
	// MaxPlayers is the player limit shown in the server list and sent on join.
	MaxPlayers int32 `yaml:"max_players"`
	// ViewDistance is the view and simulation distance sent on join, in chunks.
	ViewDistance int32 `yaml:"view_distance"`
	// TabListHeader and TabListFooter are shown above and below the player list.
	TabListHeader string `yaml:"tab_list_header"`
	TabListFooter string `yaml:"tab_list_footer"`
	// Mappings lists the block state and registry files the mapping catalog is loaded from.
	Mappings mapping.Files `yaml:"mappings"`
	// APIAddr is the address of the control API. The API is disabled when it is empty.
	APIAddr string `yaml:"api_addr"`
	// APIToken is the token API clients have to authenticate with.
	APIToken string `yaml:"api_token"`
}

func DefaultOpts() *Opts {
	return &Opts{
		Addr:          ":25565",
		Server:        "127.0.0.1:47137",
		MOTD:          "Prism Proxy",
		MaxPlayers:    100,
		ViewDistance:  32,
		TabListHeader: "Cosmic Reach",
		TabListFooter: "via Prism",
	}
}

// LoadOpts reads the YAML file at path over the default options and validates the result.
func LoadOpts(path string) (*Opts, error) {
	opts := DefaultOpts()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, opts); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return opts, nil
}

// Validate ...
func (o *Opts) Validate() error {
	var errs []error
	if o.Addr == "" {
		errs = append(errs, errors.New("addr must be set"))
	}
	if o.Server == "" {
		errs = append(errs, errors.New("server must be set"))
	}
	if o.MaxPlayers <= 0 {
		errs = append(errs, fmt.Errorf("max_players must be positive, got %d", o.MaxPlayers))
	}
	if o.ViewDistance < 2 || o.ViewDistance > 32 {
		errs = append(errs, fmt.Errorf("view_distance must be between 2 and 32, got %d", o.ViewDistance))
	}
	if o.Mappings.UpstreamBlockStates == "" || o.Mappings.DownstreamBlockStates == "" || o.Mappings.BlockStateMappings == "" {
		errs = append(errs, errors.New("mappings must name the upstream, downstream and mapping files"))
	}
	if o.APIAddr != "" && o.APIToken == "" {
		errs = append(errs, errors.New("api_token must be set when api_addr is"))
	}
	return errors.Join(errs...)
}
