// Package orchestrator turns one inbound user utterance into a grounded
// assistant reply. The pipeline is a short fixed sequence of stages over a
// mutable turn state: greeting short-circuit, intent classification,
// context retrieval, reply generation, lead qualification. Retrieval and
// lead failures degrade locally; generation failures fall back to a fixed
// reply. Exactly one assistant turn is produced per invocation.
package orchestrator

import "regexp"

// Intent is the classified purpose of a user message.
type Intent string

// The closed intent set. Classification is keyword based and never calls
// the model.
const (
	IntentGreeting       Intent = "greeting"
	IntentProductInquiry Intent = "product_inquiry"
	IntentPricing        Intent = "pricing"
	IntentAvailability   Intent = "availability"
	IntentSupport        Intent = "support"
	IntentObjection      Intent = "objection"
	IntentPurchaseIntent Intent = "purchase_intent"
	IntentLeadCapture    Intent = "lead_capture"
	IntentSmalltalk      Intent = "smalltalk"
	IntentOther          Intent = "other"
)

type intentRule struct {
	intent  Intent
	pattern *regexp.Regexp
}

// intentRules is evaluated in order; the first match wins, which keeps
// classification deterministic. Earlier rules express stronger signals:
// an email address marks lead capture even when the message also mentions
// price.
var intentRules = []intentRule{
	{IntentLeadCapture, regexp.MustCompile(`(?i)[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}|\+?\d[\d\s().-]{6,}\d|\bmy (name|email|phone|number) is\b|\breach me\b|\bcontact me\b`)},
	{IntentPurchaseIntent, regexp.MustCompile(`(?i)\b(buy|purchase|order|checkout|add to cart|take it|i'?ll take|place an order|proceed with)\b`)},
	{IntentObjection, regexp.MustCompile(`(?i)\b(too expensive|too much|not sure|hesitant|competitor|cheaper|concern|worried|doubt|but why)\b`)},
	{IntentPricing, regexp.MustCompile(`(?i)\b(price|pricing|cost|how much|fee|fees|rate|rates|quote|discount|expensive|cheap)\b`)},
	{IntentAvailability, regexp.MustCompile(`(?i)\b(in stock|stock|available|availability|ship|shipping|deliver|delivery|lead time|when can|how long|eta)\b`)},
	{IntentSupport, regexp.MustCompile(`(?i)\b(help|support|issue|problem|broken|refund|return|warranty|complain|complaint|not working|error)\b`)},
	{IntentProductInquiry, regexp.MustCompile(`(?i)\b(product|products|catalog|catalogue|features?|spec|specs|specifications?|tell me (about|more)|what (do|does|is|are)|compare|difference|options?|models?)\b`)},
	{IntentGreeting, regexp.MustCompile(`(?i)^\s*(hi|hello|hey|howdy|good (morning|afternoon|evening)|greetings)\b`)},
	{IntentSmalltalk, regexp.MustCompile(`(?i)\b(how are you|what'?s up|nice to meet|thank you|thanks|bye|goodbye|see you)\b`)},
}

// ClassifyIntent maps a message into the closed intent set. Rules are
// checked in a fixed order and the first match wins; anything unmatched is
// IntentOther.
func ClassifyIntent(text string) Intent {
	for _, rule := range intentRules {
		if rule.pattern.MatchString(text) {
			return rule.intent
		}
	}
	return IntentOther
}
