package leave

import (
	"fmt"
	"log/slog"
	"time"
)

// ApplicationCounter is the storage surface the generator needs.
type ApplicationCounter interface {
	CountApplications() (int64, error)
	ApplicationExists(lid string) (bool, error)
}

// IDGenerator produces leave application ids of the form "L001", "L002", ...
// The candidate starts at count+1 and walks forward past collisions left by
// deleted rows. When storage itself fails mid-generation the generator falls
// back to a timestamp-derived id; that trades strict uniqueness for
// availability, and the primary key constraint on lid remains the backstop.
type IDGenerator struct {
	store  ApplicationCounter
	logger *slog.Logger
	now    func() time.Time
}

func NewIDGenerator(store ApplicationCounter, logger *slog.Logger) *IDGenerator {
	return &IDGenerator{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

func (g *IDGenerator) Next() string {
	count, err := g.store.CountApplications()
	if err != nil {
		return g.fallback(err)
	}

	num := count + 1
	for {
		candidate := fmt.Sprintf("L%03d", num)
		exists, err := g.store.ApplicationExists(candidate)
		if err != nil {
			return g.fallback(err)
		}
		if !exists {
			return candidate
		}
		num++
	}
}

func (g *IDGenerator) fallback(cause error) string {
	id := fmt.Sprintf("L%d", g.now().UnixMilli()%100000)
	g.logger.Warn("leave id generation fell back to timestamp id",
		"error", cause,
		"lid", id)
	return id
}
