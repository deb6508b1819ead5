package gateway

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestSimulated_Approve(t *testing.T) {
	s := NewSimulated(0, 0.9)
	s.rng = func() float64 { return 0.5 }

	res, err := s.Process(context.Background(), 12000, "paypal", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Approved {
		t.Fatalf("expected approval, got %+v", res)
	}
	if !strings.HasPrefix(res.TransactionID, "txn_") {
		t.Fatalf("unexpected transaction id %q", res.TransactionID)
	}
	if res.Reason != "" {
		t.Fatalf("approved result must carry no reason, got %q", res.Reason)
	}
}

func TestSimulated_Decline(t *testing.T) {
	s := NewSimulated(0, 0.9)
	s.rng = func() float64 { return 0.95 }

	res, err := s.Process(context.Background(), 12000, "paypal", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Approved {
		t.Fatal("expected decline")
	}
	if res.TransactionID != "" {
		t.Fatalf("declined result must carry no transaction id, got %q", res.TransactionID)
	}
	if res.Reason != DeclineReason {
		t.Fatalf("unexpected reason %q", res.Reason)
	}
}

func TestSimulated_UniqueTransactionIDs(t *testing.T) {
	s := NewSimulated(0, 1)
	s.rng = func() float64 { return 0 }

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		res, err := s.Process(context.Background(), 100, "apple_pay", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if seen[res.TransactionID] {
			t.Fatalf("duplicate transaction id %q", res.TransactionID)
		}
		seen[res.TransactionID] = true
	}
}

func TestSimulated_ContextCancelledDuringLatency(t *testing.T) {
	s := NewSimulated(time.Minute, 1)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	_, err := s.Process(ctx, 100, "paypal", nil)
	if err == nil {
		t.Fatal("expected context error")
	}
	if time.Since(start) > 5*time.Second {
		t.Fatal("cancellation did not interrupt the simulated latency")
	}
}

func TestCardDetails_Complete(t *testing.T) {
	full := &CardDetails{Number: "4111111111111111", Expiry: "12/30", CVV: "123", Name: "Jane Doe"}
	if !full.Complete() {
		t.Fatal("expected complete card details")
	}
	var nilCard *CardDetails
	if nilCard.Complete() {
		t.Fatal("nil card details are not complete")
	}
	partial := &CardDetails{Number: "4111111111111111"}
	if partial.Complete() {
		t.Fatal("partial card details are not complete")
	}
}
