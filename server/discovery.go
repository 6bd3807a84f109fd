package server

// Discovery defines an interface for discovering servers based on the name a player joined with.
type Discovery interface {
	// Discover determines the primary server.
	Discover(username string) (string, error)
	// DiscoverFallback determines the fallback server.
	DiscoverFallback(username string) (string, error)
}

// StaticDiscovery implements the Discovery interface with static server addresses.
type StaticDiscovery struct {
	server         string
	fallbackServer string
}

// NewStaticDiscovery creates a new StaticDiscovery with the given server addresses.
func NewStaticDiscovery(server string, fallbackServer string) *StaticDiscovery {
	return &StaticDiscovery{
		server:         server,
		fallbackServer: fallbackServer,
	}
}

// Discover ...
func (s *StaticDiscovery) Discover(string) (string, error) {
	return s.server, nil
}

// DiscoverFallback ...
func (s *StaticDiscovery) DiscoverFallback(string) (string, error) {
	return s.fallbackServer, nil
}
