package ai

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/time/rate"
)

// Roles a provider can be registered under. The chain falls through them in
// a fixed order when the configured model is unavailable or fails.
const (
	RolePlanner = "planner"
	RoleReplyer = "replyer"
)

// Attempt records one provider call made while resolving a request: where
// the provider came from, which model it was, and how it failed (empty error
// means it answered).
type Attempt struct {
	Source string `json:"source"` // "configured", "role:planner", "role:replyer", "first"
	Model  string `json:"model"`
	Error  string `json:"error,omitempty"`
}

// Result is a successful chain response plus the full selection trace,
// including the attempts that failed before one answered.
type Result struct {
	Text     string    `json:"text"`
	Model    string    `json:"model"`
	Attempts []Attempt `json:"attempts"`
}

// Chain resolves generation requests against a set of registered providers
// with multi-level fallback: the explicitly requested model first, then the
// planner role, then the replyer role, then whatever was registered first.
// Every attempt lands in the trace so a degraded schedule can explain itself.
type Chain struct {
	providers map[string]Provider
	roles     map[string]string
	order     []string
	limiter   *rate.Limiter
}

func NewChain() *Chain {
	return &Chain{
		providers: make(map[string]Provider),
		roles:     make(map[string]string),
		// Upstream free endpoints throttle aggressively; one request per
		// two seconds with a small burst keeps the chain under their limits.
		limiter: rate.NewLimiter(rate.Every(2*time.Second), 2),
	}
}

// Register adds a provider under zero or more roles. The first registered
// provider is the chain's last-resort fallback.
func (c *Chain) Register(p Provider, roles ...string) {
	name := p.Name()
	if _, exists := c.providers[name]; !exists {
		c.providers[name] = p
		c.order = append(c.order, name)
	}
	for _, role := range roles {
		c.roles[role] = name
	}
}

// Generate walks the fallback chain until a provider answers. The requested
// model may be "" to start directly at the planner role. A nil error means
// Result.Text holds the answer; on total failure the trace of every attempt
// is still returned alongside the error.
func (c *Chain) Generate(ctx context.Context, requested string, messages []Message) (*Result, error) {
	var attempts []Attempt
	tried := make(map[string]bool)

	try := func(source, name string) *Result {
		if name == "" || tried[name] {
			return nil
		}
		tried[name] = true
		p, ok := c.providers[name]
		if !ok {
			attempts = append(attempts, Attempt{Source: source, Model: name, Error: "not registered"})
			return nil
		}

		if err := c.limiter.Wait(ctx); err != nil {
			attempts = append(attempts, Attempt{Source: source, Model: name, Error: err.Error()})
			return nil
		}

		text, err := p.Generate(messages)
		if err != nil {
			log.Printf("[WARN] ai provider %s (%s) failed: %v", name, source, err)
			attempts = append(attempts, Attempt{Source: source, Model: name, Error: err.Error()})
			return nil
		}
		attempts = append(attempts, Attempt{Source: source, Model: name})
		return &Result{Text: text, Model: name, Attempts: attempts}
	}

	if r := try("configured", requested); r != nil {
		return r, nil
	}
	if r := try("role:"+RolePlanner, c.roles[RolePlanner]); r != nil {
		return r, nil
	}
	if r := try("role:"+RoleReplyer, c.roles[RoleReplyer]); r != nil {
		return r, nil
	}
	if len(c.order) > 0 {
		if r := try("first", c.order[0]); r != nil {
			return r, nil
		}
	}

	if ctx.Err() != nil {
		return &Result{Attempts: attempts}, ctx.Err()
	}
	return &Result{Attempts: attempts}, fmt.Errorf("all %d provider attempts failed", len(attempts))
}
