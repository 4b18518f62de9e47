package dialogue

import "github.com/demobank/fraudcall/internal/model"

// State identifies where in the call flow a session currently is.
type State int

// Call flow states. Finished is terminal: once reached, further input
// produces no output and no state or record change.
const (
	StateAskName State = iota
	StateVerify
	StateConfirmTransaction
	StateFinished
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateAskName:
		return "ask_name"
	case StateVerify:
		return "verify"
	case StateConfirmTransaction:
		return "confirm_txn"
	case StateFinished:
		return "finished"
	}
	return "unknown"
}

// Session is the transient per-call dialogue state. It is an explicit
// value passed to and returned from Advance, so multiple concurrent
// calls never share mutable fields. Sessions are never persisted.
type Session struct {
	Case                  *model.FraudCase
	State                 State
	VerificationAttempted bool
}

// Utterance is one line for the speech platform to say.
type Utterance struct {
	Text               string
	AllowInterruptions bool
}

// Reply is the ordered set of utterances produced by one transition.
// An empty reply means the core has nothing to say (ignored input or a
// finished session).
type Reply struct {
	Utterances []Utterance
}

// IsSilent reports whether the reply carries no spoken output.
func (r Reply) IsSilent() bool {
	return len(r.Utterances) == 0
}

func say(text string) Reply {
	return Reply{Utterances: []Utterance{{Text: text}}}
}

func sayInterruptible(text string) Reply {
	return Reply{Utterances: []Utterance{{Text: text, AllowInterruptions: true}}}
}
