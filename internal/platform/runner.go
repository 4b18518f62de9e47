package platform

import (
	"context"
	"errors"
	"io"

	"github.com/demobank/fraudcall/internal/common"
	"github.com/demobank/fraudcall/internal/dialogue"
	"github.com/demobank/fraudcall/internal/service"
)

// CallInput delivers caller utterances to the core one at a time.
type CallInput interface {
	Listen(ctx context.Context) (string, error)
}

// RunCall drives one complete call: it speaks the greeting, then loops
// utterance -> transition -> reply until the dialogue finishes, the
// input stream ends, or the context is canceled. Utterances are
// delivered strictly one at a time; the core never initiates
// concurrent work of its own.
func RunCall(ctx context.Context, engine *dialogue.Engine, speaker service.Speaker, input CallInput) error {
	session, reply := engine.Greeting()
	if err := speakReply(speaker, reply); err != nil {
		return err
	}

	for session.State != dialogue.StateFinished {
		utterance, err := input.Listen(ctx)
		if errors.Is(err, ErrListenCancelled) || errors.Is(err, io.EOF) {
			common.LogInfo("call ended by platform", common.Fields{"state": session.State.String()})
			return nil
		}
		if err != nil {
			return err
		}

		session, reply = engine.Advance(ctx, session, utterance)
		if err := speakReply(speaker, reply); err != nil {
			return err
		}
	}

	return nil
}

func speakReply(speaker service.Speaker, reply dialogue.Reply) error {
	for _, u := range reply.Utterances {
		if err := speaker.Speak(u.Text, u.AllowInterruptions); err != nil {
			return err
		}
	}
	return nil
}
