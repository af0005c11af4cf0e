package agent

import "strings"

// Intent is the classified purpose of a user utterance.
type Intent string

const (
	IntentCheckAvailability Intent = "check_availability"
	IntentPlaceOrder        Intent = "place_order"
	IntentCheckout          Intent = "checkout"
	IntentViewCart          Intent = "view_cart"
	IntentOrderStatus       Intent = "order_status"
	IntentRecommend         Intent = "recommend"
	IntentUnknown           Intent = "unknown"
)

// Intents lists every intent Classify can return.
var Intents = []Intent{
	IntentCheckAvailability,
	IntentPlaceOrder,
	IntentCheckout,
	IntentViewCart,
	IntentOrderStatus,
	IntentRecommend,
	IntentUnknown,
}

type intentRule struct {
	intent  Intent
	phrases []string
}

// intentRules are evaluated top to bottom and the first phrase hit wins.
// The ordering is the tie-break rule: an utterance like "I want to place
// an order" contains phrases from several groups and resolves to the
// earliest one.
var intentRules = []intentRule{
	{IntentCheckAvailability, []string{"available", "in stock", "do you have"}},
	{IntentPlaceOrder, []string{"order", "buy", "purchase", "add to cart"}},
	{IntentCheckout, []string{"checkout", "place order", "complete order", "finish order"}},
	{IntentViewCart, []string{"cart", "what did i add", "what's in my cart"}},
	{IntentOrderStatus, []string{"order status", "my order"}},
	{IntentRecommend, []string{"recommend", "suggest", "what do you have"}},
}

// Classify maps an utterance to exactly one intent. It is total: any
// utterance that matches no phrase group yields IntentUnknown.
func Classify(utterance string) Intent {
	lower := strings.ToLower(utterance)
	for _, rule := range intentRules {
		for _, phrase := range rule.phrases {
			if strings.Contains(lower, phrase) {
				return rule.intent
			}
		}
	}
	return IntentUnknown
}
