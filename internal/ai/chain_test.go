package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	name  string
	reply string
	err   error
	calls int
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) Generate(_ []Message) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func msgs() []Message {
	return []Message{{Role: "user", Content: "hi"}}
}

func TestChainConfiguredModelWins(t *testing.T) {
	chain := NewChain()
	planner := &stubProvider{name: "planner-model", reply: "from planner"}
	special := &stubProvider{name: "special-model", reply: "from special"}
	chain.Register(planner, RolePlanner, RoleReplyer)
	chain.Register(special)

	res, err := chain.Generate(context.Background(), "special-model", msgs())
	require.NoError(t, err)
	require.Equal(t, "from special", res.Text)
	require.Equal(t, "special-model", res.Model)
	require.Len(t, res.Attempts, 1)
	require.Equal(t, "configured", res.Attempts[0].Source)
	require.Zero(t, planner.calls)
}

func TestChainFallsThroughRoles(t *testing.T) {
	chain := NewChain()
	broken := &stubProvider{name: "broken", err: errors.New("boom")}
	replyer := &stubProvider{name: "replyer-model", reply: "from replyer"}
	chain.Register(broken, RolePlanner)
	chain.Register(replyer, RoleReplyer)

	res, err := chain.Generate(context.Background(), "no-such-model", msgs())
	require.NoError(t, err)
	require.Equal(t, "from replyer", res.Text)

	require.Len(t, res.Attempts, 3)
	require.Equal(t, "configured", res.Attempts[0].Source)
	require.Equal(t, "not registered", res.Attempts[0].Error)
	require.Equal(t, "role:planner", res.Attempts[1].Source)
	require.Equal(t, "boom", res.Attempts[1].Error)
	require.Equal(t, "role:replyer", res.Attempts[2].Source)
	require.Empty(t, res.Attempts[2].Error)
}

func TestChainSkipsAlreadyTriedProvider(t *testing.T) {
	chain := NewChain()
	only := &stubProvider{name: "only", err: errors.New("down")}
	chain.Register(only, RolePlanner, RoleReplyer)

	res, err := chain.Generate(context.Background(), "only", msgs())
	require.Error(t, err)
	require.Equal(t, 1, only.calls)
	require.Len(t, res.Attempts, 1)
}

func TestChainFirstRegisteredIsLastResort(t *testing.T) {
	chain := NewChain()
	first := &stubProvider{name: "first", reply: "from first"}
	chain.Register(first)

	res, err := chain.Generate(context.Background(), "", msgs())
	require.NoError(t, err)
	require.Equal(t, "from first", res.Text)
	require.Equal(t, "first", res.Attempts[0].Source)
}

func TestChainTotalFailure(t *testing.T) {
	chain := NewChain()
	a := &stubProvider{name: "a", err: errors.New("a down")}
	b := &stubProvider{name: "b", err: errors.New("b down")}
	chain.Register(a, RolePlanner)
	chain.Register(b, RoleReplyer)

	res, err := chain.Generate(context.Background(), "", msgs())
	require.Error(t, err)
	// planner and replyer each fail once; the first-registered fallback is
	// the planner again and is not retried
	require.Len(t, res.Attempts, 2)
	require.Equal(t, 1, a.calls)
	require.Equal(t, 1, b.calls)
}

func TestProviderSpecParsing(t *testing.T) {
	p, err := NewProvider("pollinations")
	require.NoError(t, err)
	require.Equal(t, "pollinations:openai", p.Name())

	p, err = NewProvider("pollinations:openai-large")
	require.NoError(t, err)
	require.Equal(t, "pollinations:openai-large", p.Name())

	p, err = NewProvider("g4f:groq/qwen/qwen3-32b")
	require.NoError(t, err)
	require.Equal(t, "g4f:qwen/qwen3-32b", p.Name())

	p, err = NewProvider("")
	require.NoError(t, err)
	require.Equal(t, "g4f:gpt-oss-120b", p.Name())

	_, err = NewProvider("ouija-board")
	require.Error(t, err)
}
