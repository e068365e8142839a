package channel

import "github.com/viant/otp/platform"

// Retriever interprets SMS retriever broadcasts; the broadcast carries the message itself.
type Retriever struct{}

// Interpret maps a retriever broadcast to Message, Timeout or PlatformError.
func (Retriever) Interpret(event platform.Broadcast) Outcome {
	if outcome, ok := broadcastStatus(event); !ok {
		return outcome
	}
	message, ok := event.Extras.Text(platform.ExtraSMSMessage)
	if !ok {
		return platformError("missing %s", platform.ExtraSMSMessage)
	}
	return Outcome{Kind: Message, Value: message}
}
