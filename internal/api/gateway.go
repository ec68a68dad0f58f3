// Package api implements the request gateway: every repository operation
// wrapped in a uniform asynchronous-style result envelope. The gateway
// validates input before touching storage, formats all failure into the
// envelope message, and never returns a Go error to its caller.
package api

import (
	"fmt"
	"log/slog"
	"time"

	"financetracker/internal/repository"
	"financetracker/internal/services"
)

// Response is the envelope every gateway operation returns.
type Response struct {
	Success   bool      `json:"success"`
	Data      any       `json:"data"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// DefaultDelay simulates network latency on each operation.
const DefaultDelay = 100 * time.Millisecond

type Gateway struct {
	repo      *repository.Repository
	processor *services.RecurringProcessor
	delay     time.Duration
}

// NewGateway wraps repo. A zero delay disables the simulated latency, which
// is what tests want.
func NewGateway(repo *repository.Repository, delay time.Duration) *Gateway {
	return &Gateway{
		repo:      repo,
		processor: services.NewRecurringProcessor(repo),
		delay:     delay,
	}
}

// pause models the artificial network delay. There is deliberately no
// cancellation: an in-flight operation always completes and the caller
// discards the result if it lost interest.
func (g *Gateway) pause() {
	if g.delay > 0 {
		time.Sleep(g.delay)
	}
}

func (g *Gateway) respond(data any, message string) Response {
	return Response{
		Success:   true,
		Data:      data,
		Message:   message,
		Timestamp: g.repo.Now(),
	}
}

func (g *Gateway) fail(message string) Response {
	return Response{
		Success:   false,
		Message:   message,
		Timestamp: g.repo.Now(),
	}
}

// failOp formats an underlying fault without letting it escape the envelope.
func (g *Gateway) failOp(operation string, err error) Response {
	slog.Error("Gateway operation failed", "operation", operation, "error", err)
	return g.fail(fmt.Sprintf("Failed to %s: %v", operation, err))
}
