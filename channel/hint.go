package channel

import "github.com/viant/otp/platform"

// Hint interprets phone number picker results.
type Hint struct{}

// Interpret maps a picker result to Number, Declined or PlatformError.
func (Hint) Interpret(result platform.PickerResult) Outcome {
	switch result.ResultCode {
	case platform.ResultOK:
		number, ok := result.Extras.Text(platform.ExtraPhoneNumber)
		if !ok || number == "" {
			return platformError("picker result without %s", platform.ExtraPhoneNumber)
		}
		return Outcome{Kind: Number, Value: number}
	case platform.ResultCanceled:
		return Outcome{Kind: Declined, Reason: "picker cancelled"}
	}
	return platformError("unexpected picker result code: %d", result.ResultCode)
}
