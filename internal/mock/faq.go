package mock

import (
	"strings"
	"unicode"

	"github.com/sahilm/fuzzy"
)

// FAQ is a canned chat answer. Keywords are the lowercase terms a question
// must mention to select it.
type FAQ struct {
	Question string
	Keywords []string
	Answer   string
}

// ChatFAQ backs the chat widget.
var ChatFAQ = []FAQ{
	{
		Question: "When is my closing date?",
		Keywords: []string{"closing", "close", "date", "when", "day", "schedule"},
		Answer:   "Closing is targeted for " + RealProperty.ClosingDate + ".",
	},
	{
		Question: "How do I send my wire?",
		Keywords: []string{"wire", "wiring", "send", "transfer", "money", "bank", "routing", "account"},
		Answer:   "Use only the instructions inside the secure wire portal on the disclosure step, and call your escrow officer to confirm them.",
	},
	{
		Question: "What documents are missing?",
		Keywords: []string{"documents", "missing", "upload", "paperwork", "sheet", "page", "need"},
		Answer:   "We still need your Buyer Information Sheet and your Insurance Dec Page.",
	},
	{
		Question: "How much is my cash to close?",
		Keywords: []string{"cash", "close", "owe", "funds", "total", "amount", "cost", "pay"},
		Answer:   "Your final cash to close is " + FormatUSD(ClosingDisclosure(false).CashToClose) + ".",
	},
	{
		Question: "Who is my agent?",
		Keywords: []string{"agent", "who", "realtor", "broker", "contact", "phone"},
		Answer:   BuyerAgent.Name + " with " + BuyerAgent.Brokerage + ", " + BuyerAgent.Phone + ".",
	},
	{
		Question: "What is title insurance?",
		Keywords: []string{"title", "insurance", "policy", "protect", "coverage"},
		Answer:   "Title insurance protects you against claims on the property that the public record search could not reveal.",
	},
	{
		Question: "Can I sign remotely?",
		Keywords: []string{"remote", "remotely", "online", "sign", "signing", "notary", "where", "location"},
		Answer:   "Remote online notarization is currently restricted by your lender's guidelines. Signing is in-office in Westerville.",
	},
}

// DefaultChatAnswer is returned when no FAQ matches.
const DefaultChatAnswer = "A closing specialist will follow up shortly. For urgent questions call your escrow officer."

var stopWords = map[string]bool{
	"about": true, "and": true, "are": true, "can": true, "does": true,
	"for": true, "get": true, "have": true, "how": true, "much": true,
	"still": true, "the": true, "this": true, "that": true, "what": true,
	"will": true, "with": true, "you": true, "your": true,
}

// queryWords splits question into lowercase words worth matching.
func queryWords(question string) []string {
	fields := strings.FieldsFunc(strings.ToLower(question), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	words := fields[:0]
	for _, w := range fields {
		if len(w) < 3 || stopWords[w] {
			continue
		}
		words = append(words, w)
	}
	return words
}

// AnswerFor returns the canned answer whose keywords best cover question.
// Each word of the question is fuzzy matched against every FAQ's keywords;
// the FAQ matching the most words wins, ties going to the higher score.
func AnswerFor(question string) string {
	words := queryWords(question)
	best, bestHits, bestScore := -1, 0, 0
	for i, f := range ChatFAQ {
		hits, score := 0, 0
		for _, w := range words {
			if matches := fuzzy.Find(w, f.Keywords); len(matches) > 0 {
				hits++
				score += matches[0].Score
			}
		}
		if hits == 0 {
			continue
		}
		if hits > bestHits || (hits == bestHits && score > bestScore) {
			best, bestHits, bestScore = i, hits, score
		}
	}
	if best < 0 {
		return DefaultChatAnswer
	}
	return ChatFAQ[best].Answer
}
