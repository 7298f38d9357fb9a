package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsSkip(t *testing.T) {
	assert.True(t, isSkip("skip"))
	assert.True(t, isSkip("  Done "))
	assert.True(t, isSkip("No"))
	assert.False(t, isSkip("no, wait"))
	assert.False(t, isSkip("Acme Corp"))
}

func TestParseTone(t *testing.T) {
	assert.Equal(t, "professional", parseTone("Professional, please"))
	assert.Equal(t, "friendly", parseTone("friendly"))
	assert.Equal(t, "", parseTone("cheerful"))
}

func TestParseProductsBareNames(t *testing.T) {
	refs := parseProducts("Widget Classic\nWidget Mini")
	require.Len(t, refs, 2)
	assert.Equal(t, "Widget Classic", refs[0].Name)
	assert.Nil(t, refs[0].Spec)
	assert.Equal(t, "Widget Mini", refs[1].Name)
}

func TestParseProductsStructured(t *testing.T) {
	refs := parseProducts("Widget Pro | heavy duty widget | 49.99 EUR")
	require.Len(t, refs, 1)
	require.NotNil(t, refs[0].Spec)
	assert.Equal(t, "Widget Pro", refs[0].Spec.Name)
	assert.Equal(t, "heavy duty widget", refs[0].Spec.Description)
	assert.Equal(t, 49.99, refs[0].Spec.Price)
	assert.Equal(t, "EUR", refs[0].Spec.Currency)
}

func TestParseProductsDashSeparatorAndSymbol(t *testing.T) {
	refs := parseProducts("Widget Pro - heavy duty - $49.99")
	require.Len(t, refs, 1)
	require.NotNil(t, refs[0].Spec)
	assert.Equal(t, "heavy duty", refs[0].Spec.Description)
	assert.Equal(t, 49.99, refs[0].Spec.Price)
	assert.Equal(t, "USD", refs[0].Spec.Currency)
}

func TestParseProductsSkipsNoise(t *testing.T) {
	assert.Empty(t, parseProducts("   \n\n"))
	assert.Empty(t, parseProducts("skip"))
}

func TestParseTrainingURLs(t *testing.T) {
	urls, faqs := parseTraining("our site is https://acme.example/docs, also https://acme.example/faq.")
	assert.Equal(t, []string{"https://acme.example/docs", "https://acme.example/faq"}, urls)
	assert.Empty(t, faqs)
}

func TestParseTrainingFAQs(t *testing.T) {
	_, faqs := parseTraining("Q: Do you ship worldwide?\nA: Yes, to 40 countries.\nQ: Returns?\nA: 30 days.")
	require.Len(t, faqs, 2)
	assert.Equal(t, "Do you ship worldwide?", faqs[0].Question)
	assert.Equal(t, "Yes, to 40 countries.", faqs[0].Answer)
	assert.Equal(t, "30 days.", faqs[1].Answer)
}

func TestParseTrainingOrphanAnswerIgnored(t *testing.T) {
	_, faqs := parseTraining("A: an answer with no question")
	assert.Empty(t, faqs)
}

func TestParsePrice(t *testing.T) {
	value, currency, ok := parsePrice("49,99 €")
	require.True(t, ok)
	assert.Equal(t, 49.99, value)
	assert.Equal(t, "EUR", currency)

	_, _, ok = parsePrice("heavy duty widget with 3 modes")
	assert.False(t, ok, "numbers buried in prose are not prices")
}
