package gateway

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DeclineReason is the user-facing message for a declined simulated charge.
const DeclineReason = "Payment processing failed. Please try again."

// Simulated is a stand-in payment provider: it sleeps for the configured
// latency to model the network round-trip, then approves with the configured
// probability. Replace with a real provider client in production.
type Simulated struct {
	latency     time.Duration
	successRate float64

	// rng is swappable so tests get deterministic outcomes.
	rng func() float64
}

func NewSimulated(latency time.Duration, successRate float64) *Simulated {
	return &Simulated{
		latency:     latency,
		successRate: successRate,
		rng:         rand.Float64,
	}
}

func (s *Simulated) Process(ctx context.Context, amount int64, method string, card *CardDetails) (*Result, error) {
	if s.latency > 0 {
		t := time.NewTimer(s.latency)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-t.C:
		}
	}

	if s.rng() >= s.successRate {
		return &Result{Approved: false, Reason: DeclineReason}, nil
	}
	return &Result{Approved: true, TransactionID: newTransactionID()}, nil
}

// newTransactionID builds an opaque reference unique per call: a timestamp
// plus a random suffix.
func newTransactionID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("txn_%d_%s", time.Now().UnixMilli(), suffix)
}
