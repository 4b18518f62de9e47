// Package intent maps free-text caller utterances to coarse yes/no intents.
//
// Classification is an ordered keyword-rule walk rather than a learned
// model: behavior stays deterministic and auditable, which matters when
// the result decides whether a card gets blocked.
package intent

import "strings"

// Intent is the classified meaning of a caller utterance.
type Intent int

// Recognized intents.
const (
	Unrecognized Intent = iota
	Affirmative
	Negative
)

// String returns a human-readable intent name.
func (i Intent) String() string {
	switch i {
	case Affirmative:
		return "affirmative"
	case Negative:
		return "negative"
	case Unrecognized:
		return "unrecognized"
	}
	return "unrecognized"
}

// rule binds an intent to the phrases that signal it.
type rule struct {
	intent  Intent
	phrases []string
}

// rules are evaluated in order and the first match wins. The affirmative
// list is deliberately first: "yes, that's fraud" reads as a confirmation
// followed by the caller's word choice, not a denial.
var rules = []rule{
	{
		intent: Affirmative,
		phrases: []string{
			"yes",
			"yeah",
			"yup",
			"i did",
			"it was me",
			"this is mine",
			"that's mine",
			"that is mine",
			"i made this",
		},
	},
	{
		intent: Negative,
		phrases: []string{
			"no",
			"nope",
			"wasn't me",
			"was not me",
			"i didn't",
			"not mine",
			"i did not",
			"fraud",
		},
	},
}

// Classify maps an utterance to an intent. Matching is a case-insensitive
// substring check against each rule's phrase list. It never fails on
// well-formed text; filtering empty input is the caller's responsibility.
func Classify(utterance string) Intent {
	text := strings.ToLower(strings.TrimSpace(utterance))

	for _, r := range rules {
		for _, phrase := range r.phrases {
			if strings.Contains(text, phrase) {
				return r.intent
			}
		}
	}

	return Unrecognized
}
