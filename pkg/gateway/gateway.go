// Package gateway abstracts the external payment provider. The orchestrator
// only depends on the Gateway interface, so the simulated provider can be
// swapped for a real gateway client without touching the payment flow.
package gateway

import "context"

// CardDetails are the credit card fields required for card payments.
type CardDetails struct {
	Number string `json:"number"`
	Expiry string `json:"expiry"`
	CVV    string `json:"cvv"`
	Name   string `json:"name"`
}

// Complete reports whether all card fields are present.
func (c *CardDetails) Complete() bool {
	return c != nil && c.Number != "" && c.Expiry != "" && c.CVV != "" && c.Name != ""
}

// Result is the provider's answer to a charge attempt. TransactionID is set
// only when Approved; Reason is set only when declined.
type Result struct {
	Approved      bool
	TransactionID string
	Reason        string
}

type Gateway interface {
	// Process attempts to charge amount through the given method. It never
	// touches persisted state; a declined charge is a Result with
	// Approved=false, not an error. Errors are transport-level failures.
	Process(ctx context.Context, amount int64, method string, card *CardDetails) (*Result, error)
}
