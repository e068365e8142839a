package channel

import "github.com/viant/otp/platform"

// Consent interprets SMS user-consent events in two steps: the broadcast only carries the
// consent intent, the consent UI result carries the message or the user's decline.
type Consent struct{}

// Interpret maps a consent broadcast to ShowConsent, Timeout or PlatformError.
func (Consent) Interpret(event platform.Broadcast) Outcome {
	if outcome, ok := broadcastStatus(event); !ok {
		return outcome
	}
	intent, ok := event.Extras.Intent(platform.ExtraConsentIntent)
	if !ok {
		return platformError("missing %s", platform.ExtraConsentIntent)
	}
	return Outcome{Kind: ShowConsent, Intent: intent}
}

// Confirm maps the consent UI result to Message, Declined or PlatformError.
func (Consent) Confirm(result platform.PickerResult) Outcome {
	if result.ResultCode != platform.ResultOK {
		return Outcome{Kind: Declined, Reason: "consent denied"}
	}
	message, ok := result.Extras.Text(platform.ExtraSMSMessage)
	if !ok {
		return platformError("consent result without %s", platform.ExtraSMSMessage)
	}
	return Outcome{Kind: Message, Value: message}
}
