package shamir

import (
	"fmt"
	"log/slog"
	"math/big"
	"sync"

	"github.com/google/uuid"
)

// Collector gathers shares handed in one at a time and unlocks the secret
// once MinGroup distinct shares have arrived for a session.
// It is safe for concurrent use.
type Collector struct {
	dealer    Dealer
	threshold int
	logger    *slog.Logger

	mu       sync.Mutex
	sessions map[uuid.UUID][]*Share
}

// NewCollector creates a collector that unlocks with d. Only WithLogger is
// meaningful among opts.
func NewCollector(d Dealer, opts ...Option) *Collector {
	o := newOptions(opts)
	return &Collector{
		dealer:    d,
		threshold: d.Params().MinGroup,
		logger:    o.logger,
		sessions:  make(map[uuid.UUID][]*Share),
	}
}

// Open starts a new session and returns its identifier.
func (c *Collector) Open() uuid.UUID {
	id := uuid.New()

	c.mu.Lock()
	c.sessions[id] = nil
	c.mu.Unlock()

	c.logger.Info("collector session opened", "session", id, "min_group", c.threshold)
	return id
}

// Add records a share for the session. It returns (nil, nil) while more
// shares are needed. When the threshold is reached the session is closed
// and the result of Unlock is returned, error included; a failed session
// has to be reopened.
func (c *Collector) Add(id uuid.UUID, share *Share) (*big.Int, error) {
	if share == nil || share.X == nil || share.Y == nil {
		return nil, fmt.Errorf("%w: share is incomplete", ErrInvalidShare)
	}

	c.mu.Lock()
	collected, ok := c.sessions[id]
	if !ok {
		c.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", ErrUnknownSession, id)
	}
	for _, existing := range collected {
		if existing.X.Cmp(share.X) == 0 {
			c.mu.Unlock()
			c.logger.Warn("collector rejected duplicate share", "session", id, "x", share.X)
			return nil, fmt.Errorf("%w: x=%s already received", ErrDuplicateShareIndex, share.X)
		}
	}

	collected = append(collected, share.Clone())
	if len(collected) < c.threshold {
		c.sessions[id] = collected
		c.mu.Unlock()
		return nil, nil
	}
	delete(c.sessions, id)
	c.mu.Unlock()

	secret, err := c.dealer.Unlock(collected)
	if err != nil {
		c.logger.Warn("collector session failed", "session", id, "error", err)
		return nil, err
	}

	c.logger.Info("collector session unlocked", "session", id, "shares", len(collected))
	return secret, nil
}

// Pending reports how many shares the session holds.
func (c *Collector) Pending(id uuid.UUID) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	collected, ok := c.sessions[id]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownSession, id)
	}
	return len(collected), nil
}

// Close discards a session and the shares it holds.
func (c *Collector) Close(id uuid.UUID) {
	c.mu.Lock()
	delete(c.sessions, id)
	c.mu.Unlock()
}
