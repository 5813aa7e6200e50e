// Package chain exposes the refinement search as a langchaingo tool, so
// agent frameworks can call it with the plain question-in, answer-out
// signature they expect.
package chain

import (
	"context"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/tools"

	"answertree/agent"
	"answertree/oracle"
)

const toolDescription = "Refines an answer to a natural-language question by searching over candidate answers with Monte Carlo Tree Search. Input is the question; output is the refined answer."

// Tool implements tools.Tool. Call runs a full search over the input
// question and returns the refined answer.
type Tool struct {
	agent      *agent.MCTSAgent
	iterations int
}

var _ tools.Tool = (*Tool)(nil)

// NewTool builds a search tool around an existing agent.
func NewTool(a *agent.MCTSAgent, iterations int) *Tool {
	if iterations < 1 {
		iterations = 1
	}
	return &Tool{agent: a, iterations: iterations}
}

// NewToolFromModel builds a search tool directly from a langchaingo model,
// mirroring the persistent-agent-free convenience entry point.
func NewToolFromModel(model llms.Model, iterations int) *Tool {
	return NewTool(agent.NewMCTSAgent(oracle.NewLangChain(model)), iterations)
}

func (t *Tool) Name() string {
	return "monte_carlo_search"
}

func (t *Tool) Description() string {
	return toolDescription
}

func (t *Tool) Call(ctx context.Context, input string) (string, error) {
	return t.agent.Search(ctx, input, t.iterations)
}
