package session

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/cooldogedev/prism/client"
	clientpacket "github.com/cooldogedev/prism/client/packet"
)

const (
	// KeepAliveInterval is the interval keep alive packets are sent to clients at.
	KeepAliveInterval = time.Second
	// FlushInterval is the interval changed chunks are sent to clients at.
	FlushInterval = 100 * time.Millisecond
)

// RunTicker runs fn for every registered session in play each period until ctx is cancelled. fn runs on
// the session's task goroutine; sessions with a full task queue skip the tick.
func RunTicker(ctx context.Context, registry *Registry, period time.Duration, name string, fn func(*Session) error, logger *slog.Logger) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for _, s := range registry.GetSessions() {
				if s.clientConn.State() != client.StatePlay {
					continue
				}

				s.TrySubmit(func() {
					if err := fn(s); err != nil {
						logger.Error("failed to run tick task", "task", name, "username", s.Username(), "err", err)
					}
				})
			}
		}
	}
}

// KeepAlive sends a keep alive with a random ID to the client of the session passed.
func KeepAlive(s *Session) error {
	return s.writeClient(clientpacket.KeepAlive(rand.Int64()))
}

// FlushChunks sends the chunks that changed since the previous flush to the client of the session
// passed.
func FlushChunks(s *Session) error {
	for _, chunk := range s.tracker.Flush() {
		if err := s.writeClient(chunk.Packet()); err != nil {
			return err
		}
	}
	return nil
}
