package handler

import (
	"context"

	"github.com/tkessler/parley/internal/collab"
	"github.com/tkessler/parley/internal/gemini"
)

// AIQuestion escalates an open-ended utterance to the generative backend,
// folding recent exchanges into the prompt. Successful answers are recorded
// in the conversation history; failures become kind-specific apologies.
func (h *Handlers) AIQuestion(ctx context.Context, text string) Response {
	if h.deps.AI == nil {
		return Response{Text: "My AI backend isn't connected right now, so I can't answer that."}
	}

	prompt := gemini.BuildPrompt(text, h.state.RecentTurns(3))
	answer, err := h.deps.AI.Answer(ctx, prompt)
	if err != nil {
		h.logError("ai answer failed", err)
		switch collab.KindOf(err) {
		case collab.KindRateLimited:
			return Response{Text: "I've hit my usage limit for now. Give me a few minutes and ask again."}
		case collab.KindContentFiltered:
			return Response{Text: "I'd rather not answer that one."}
		case collab.KindUnauthorized:
			return Response{Text: "My AI backend rejected my credentials, so I can't answer right now."}
		case collab.KindTimeout, collab.KindUnreachable:
			return Response{Text: "I couldn't reach my AI backend. Let's try again in a moment."}
		default:
			return Response{Text: "Sorry, I had trouble thinking that one through."}
		}
	}

	h.state.RecordExchange(text, answer)
	return Response{Text: answer}
}
