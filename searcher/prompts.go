package searcher

import (
	"fmt"
	"strings"
)

const draftInstruction = "Answer the question below as well as you can. Respond with only the answer, no preamble."

const critiqueInstruction = "You are a strict reviewer. Point out the most important weaknesses of the answer: factual errors, missing considerations, unclear reasoning. Be specific and brief."

const improveInstruction = "Rewrite the answer so it fixes the critique while staying focused on the question. Respond with only the improved answer, no preamble and no commentary."

func buildDraftPrompt(query string) string {
	var b strings.Builder
	b.WriteString(draftInstruction)
	b.WriteString("\n\nQuestion:\n")
	b.WriteString(query)
	return b.String()
}

func buildCritiquePrompt(query, answer string) string {
	var b strings.Builder
	b.WriteString(critiqueInstruction)
	b.WriteString("\n\nQuestion:\n")
	b.WriteString(query)
	b.WriteString("\n\nAnswer:\n")
	b.WriteString(answer)
	return b.String()
}

func buildImprovePrompt(query, answer, critique string) string {
	var b strings.Builder
	b.WriteString(improveInstruction)
	b.WriteString("\n\nQuestion:\n")
	b.WriteString(query)
	b.WriteString("\n\nAnswer:\n")
	b.WriteString(answer)
	if strings.TrimSpace(critique) != "" {
		b.WriteString("\n\nCritique:\n")
		b.WriteString(critique)
	}
	return b.String()
}

func buildRatePrompt(query, answer string, scale float64) string {
	var b strings.Builder
	b.WriteString("Rate how well the answer addresses the question for accuracy, completeness and clarity.\n")
	fmt.Fprintf(&b, "Respond with exactly one line of the form \"Rating: <number>\" where <number> is between 0 and %.0f.\n", scale)
	b.WriteString("\nQuestion:\n")
	b.WriteString(query)
	b.WriteString("\n\nAnswer:\n")
	b.WriteString(answer)
	return b.String()
}
