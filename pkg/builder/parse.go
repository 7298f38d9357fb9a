package builder

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/merxlab/merx/pkg/ingest"
	"github.com/merxlab/merx/pkg/models"
)

// Reply parsing is deterministic: small regexes and string splitting, no
// model calls. The same answer always lands in the accumulator the same way.

var (
	urlPattern   = regexp.MustCompile(`https?://[^\s<>"]+`)
	pricePattern = regexp.MustCompile(`(\d+(?:[.,]\d{1,2})?)\s*(€|\$|£|[A-Z]{3})?`)

	skipWords = map[string]struct{}{
		"skip": {}, "done": {}, "no": {}, "none": {}, "nothing": {},
		"finish": {}, "finished": {}, "complete": {}, "that's all": {},
		"thats all": {}, "no thanks": {},
	}

	toneWords = []string{"friendly", "professional", "casual", "formal"}
)

// isSkip reports whether the reply declines the current question or phase.
func isSkip(msg string) bool {
	_, ok := skipWords[strings.ToLower(strings.TrimSpace(msg))]
	return ok
}

// parseTone matches the reply against the known tone values.
func parseTone(msg string) string {
	lower := strings.ToLower(msg)
	for _, t := range toneWords {
		if strings.Contains(lower, t) {
			return t
		}
	}
	return ""
}

// parseProducts reads one product per line. Accepted line shapes:
//
//	Widget Classic
//	Widget Pro | heavy duty widget | 49.99 EUR
//	Widget Pro - heavy duty widget - $49.99
//
// Bare names become plain refs; anything with a description or price becomes
// a structured spec.
func parseProducts(msg string) []models.ProductRef {
	var refs []models.ProductRef
	for _, line := range strings.Split(msg, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(line, "-*• \t"))
		if line == "" || isSkip(line) {
			continue
		}

		parts := splitProductLine(line)
		name := strings.TrimSpace(parts[0])
		if name == "" {
			continue
		}
		if len(parts) == 1 {
			refs = append(refs, models.ProductRef{Name: name})
			continue
		}

		spec := &models.ProductSpec{Name: name}
		for _, part := range parts[1:] {
			part = strings.TrimSpace(part)
			if price, currency, ok := parsePrice(part); ok {
				spec.Price = price
				spec.Currency = currency
				continue
			}
			if spec.Description == "" {
				spec.Description = part
			}
		}
		refs = append(refs, models.ProductRef{Spec: spec})
	}
	return refs
}

func splitProductLine(line string) []string {
	if strings.Contains(line, "|") {
		return strings.Split(line, "|")
	}
	return strings.Split(line, " - ")
}

// parsePrice accepts forms like "49.99", "$49.99", "49,99 €", "49.99 EUR".
// A part qualifies as a price only when the number is most of the text.
func parsePrice(part string) (float64, string, bool) {
	m := pricePattern.FindStringSubmatch(part)
	if m == nil || len(m[0]) < len(strings.TrimLeft(part, "$€£ "))-4 {
		return 0, "", false
	}
	value, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64)
	if err != nil || value <= 0 {
		return 0, "", false
	}
	return value, normalizeCurrency(part, m[2]), true
}

func normalizeCurrency(part, matched string) string {
	switch {
	case matched == "€" || strings.Contains(part, "€"):
		return "EUR"
	case matched == "$" || strings.Contains(part, "$"):
		return "USD"
	case matched == "£" || strings.Contains(part, "£"):
		return "GBP"
	case matched != "":
		return matched
	}
	return ""
}

// parseTraining pulls URLs and Q/A pairs out of a free-form reply. FAQ lines
// follow the "Q: ... / A: ..." convention, one pair per two lines.
func parseTraining(msg string) ([]string, []ingest.FAQ) {
	urls := urlPattern.FindAllString(msg, -1)
	for i, u := range urls {
		urls[i] = strings.TrimRight(u, ".,;)")
	}

	var faqs []ingest.FAQ
	var question string
	for _, line := range strings.Split(msg, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case hasPrefixFold(line, "q:"):
			question = strings.TrimSpace(line[2:])
		case hasPrefixFold(line, "a:") && question != "":
			faqs = append(faqs, ingest.FAQ{
				Question: question,
				Answer:   strings.TrimSpace(line[2:]),
			})
			question = ""
		}
	}
	return urls, faqs
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
