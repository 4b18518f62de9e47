// Package dialogue implements the fraud-alert call state machine.
//
// The flow is ask_name -> verify -> confirm_txn -> finished. Each
// utterance produces a definite next session plus a reply to speak;
// nothing in this package panics across its boundary, and business
// failures (unknown name, wrong answer, mumbled yes/no) are ordinary
// transitions with scripted responses.
package dialogue

import (
	"context"
	"strings"

	"github.com/demobank/fraudcall/internal/common"
	"github.com/demobank/fraudcall/internal/intent"
	"github.com/demobank/fraudcall/internal/model"
	"github.com/demobank/fraudcall/internal/service"
)

// Engine drives one verification call against a loaded case collection.
type Engine struct {
	store service.CaseStore
	cases []model.FraudCase
}

// NewEngine loads the case collection from the store once, at call
// start. The store contract guarantees a usable collection even when
// the backing file is missing or unreadable.
func NewEngine(ctx context.Context, store service.CaseStore) (*Engine, error) {
	cases, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &Engine{store: store, cases: cases}, nil
}

// Cases returns the collection the engine is operating on.
func (e *Engine) Cases() []model.FraudCase {
	return e.cases
}

// Greeting returns a fresh session in the ask_name state together with
// the fixed call-open prompt. It is spoken before any utterance is
// processed.
func (e *Engine) Greeting() (Session, Reply) {
	return Session{State: StateAskName}, sayInterruptible(greetingScript)
}

// Advance processes one caller utterance and returns the next session
// and the reply to speak. Empty utterances are ignored in every state,
// and a finished session ignores all input.
func (e *Engine) Advance(ctx context.Context, s Session, utterance string) (Session, Reply) {
	msg := strings.TrimSpace(utterance)
	if msg == "" {
		return s, Reply{}
	}

	switch s.State {
	case StateFinished:
		return s, Reply{}
	case StateAskName:
		return e.handleAskName(s, msg)
	case StateVerify:
		return e.handleVerify(ctx, s, msg)
	case StateConfirmTransaction:
		return e.handleConfirmTransaction(ctx, s, msg)
	}

	return s, Reply{}
}

func (e *Engine) handleAskName(s Session, name string) (Session, Reply) {
	c := model.FindCaseByName(e.cases, name)
	if c == nil {
		common.LogInfo("no active case for caller", common.Fields{"state": s.State.String()})
		s.State = StateFinished
		return s, say(noCaseScript)
	}

	s.Case = c
	s.State = StateVerify
	return s, say(securityQuestionScript(c))
}

func (e *Engine) handleVerify(ctx context.Context, s Session, answer string) (Session, Reply) {
	if s.Case == nil {
		s.State = StateFinished
		return s, Reply{}
	}
	s.VerificationAttempted = true

	if s.Case.MatchesAnswer(answer) {
		s.State = StateConfirmTransaction
		return s, Reply{Utterances: []Utterance{
			{Text: identityVerifiedScript},
			{Text: transactionScript(s.Case), AllowInterruptions: true},
		}}
	}

	e.finalize(ctx, &s, model.StatusVerificationFailed, noteVerificationFailed)
	s.State = StateFinished
	return s, say(verificationFailedScript)
}

func (e *Engine) handleConfirmTransaction(ctx context.Context, s Session, msg string) (Session, Reply) {
	if s.Case == nil {
		s.State = StateFinished
		return s, Reply{}
	}

	switch intent.Classify(msg) {
	case intent.Affirmative:
		e.finalize(ctx, &s, model.StatusConfirmedSafe, noteConfirmedSafe)
		s.State = StateFinished
		return s, say(confirmedSafeScript)
	case intent.Negative:
		e.finalize(ctx, &s, model.StatusConfirmedFraud, noteConfirmedFraud)
		s.State = StateFinished
		return s, say(confirmedFraudScript)
	case intent.Unrecognized:
		return s, say(repromptScript)
	}

	return s, say(repromptScript)
}

// finalize records a terminal disposition: status and outcome note are
// set together, exactly once, and the full collection is persisted.
// Save failure is logged and swallowed; the call must not die because
// the audit write failed.
func (e *Engine) finalize(ctx context.Context, s *Session, status model.CaseStatus, note string) {
	if s.Case == nil {
		return
	}
	if s.Case.Status.IsTerminal() {
		// The finished guard makes a second terminal transition
		// unreachable within a call; this only trips on misuse.
		common.LogDebug("case already finalized", common.Fields{"case": s.Case.ID})
		return
	}

	s.Case.Status = status
	s.Case.OutcomeNote = note
	e.cases = model.ReplaceCase(e.cases, *s.Case)

	if err := e.store.Save(ctx, e.cases); err != nil {
		common.LogError(err, "failed to persist case outcome", common.Fields{
			"case":   s.Case.ID,
			"status": string(status),
		})
	}
}
