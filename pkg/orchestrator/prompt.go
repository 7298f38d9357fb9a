package orchestrator

import (
	"fmt"
	"strings"
	"sync"

	"github.com/pkoukk/tiktoken-go"

	"github.com/merxlab/merx/ent"
	"github.com/merxlab/merx/pkg/models"
)

// systemPromptTokenBudget is the soft ceiling on system prompt size. The
// retrieved context is the only part that is trimmed to fit; agent identity
// and the product list always survive.
const systemPromptTokenBudget = 200

// maxContextChars caps the concatenated retrieval context before token
// trimming even begins.
const maxContextChars = 1500

var (
	encoderOnce sync.Once
	encoderMu   sync.Mutex
	encoder     *tiktoken.Tiktoken
)

// tokenCount estimates tokens with the cl100k encoding, falling back to the
// chars/4 heuristic when the encoding data is unavailable (offline builds).
func tokenCount(s string) int {
	encoderOnce.Do(func() {
		enc, err := tiktoken.GetEncoding("cl100k_base")
		if err == nil {
			encoder = enc
		}
	})
	if encoder != nil {
		encoderMu.Lock()
		defer encoderMu.Unlock()
		return len(encoder.Encode(s, nil, nil))
	}
	return (len(s) + 3) / 4
}

// buildSystemPrompt renders the compact system turn: tone, company,
// enumerated products, and retrieved context when present.
func buildSystemPrompt(agent *ent.Agent, retrievedContext string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "You are %s, a %s sales assistant for %s.",
		agent.Name, agent.Tone, agent.CompanyName)
	if agent.CompanyDescription != "" {
		sb.WriteString(" ")
		sb.WriteString(agent.CompanyDescription)
	}
	if agent.SalesStrategy != "" {
		fmt.Fprintf(&sb, "\nSales approach: %s", agent.SalesStrategy)
	}
	if agent.Language != "" && agent.Language != "en" {
		fmt.Fprintf(&sb, "\nAlways respond in %s.", agent.Language)
	}

	if products := renderProducts(agent.Products); products != "" {
		sb.WriteString("\nProducts:\n")
		sb.WriteString(products)
	}

	base := sb.String()
	if retrievedContext == "" {
		return base
	}

	context := trimToBudget(retrievedContext, systemPromptTokenBudget-tokenCount(base))
	if context == "" {
		return base
	}
	return base + "\nRelevant information:\n" + context
}

// renderProducts enumerates the configured product list. Entries are a
// tagged variant: plain names render bare, structured specs render with
// description and price.
func renderProducts(products []models.ProductRef) string {
	var sb strings.Builder
	for _, p := range products {
		if p.Spec == nil {
			fmt.Fprintf(&sb, "- %s\n", p.Name)
			continue
		}
		fmt.Fprintf(&sb, "- %s", p.Spec.Name)
		if p.Spec.Description != "" {
			fmt.Fprintf(&sb, ": %s", p.Spec.Description)
		}
		if p.Spec.Price > 0 {
			currency := p.Spec.Currency
			if currency == "" {
				currency = "USD"
			}
			fmt.Fprintf(&sb, " (%.2f %s)", p.Spec.Price, currency)
		}
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// trimToBudget cuts text down to roughly budget tokens, on a word boundary.
// A non-positive budget drops the text entirely.
func trimToBudget(text string, budget int) string {
	if budget <= 0 {
		return ""
	}
	if tokenCount(text) <= budget {
		return text
	}

	words := strings.Fields(text)
	lo, hi := 0, len(words)
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if tokenCount(strings.Join(words[:mid], " ")) <= budget {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return strings.Join(words[:lo], " ")
}
