package schema

// Caller methods.
const (
	MethodStartListenUserConsent = "startListenUserConsent"
	MethodStartListenRetriever   = "startListenRetriever"
	MethodGetTelephoneHint       = "getTelephoneHint"
	MethodStopListenForCode      = "stopListenForCode"
	MethodGetAppSignature        = "getAppSignature"
	MethodGetStatus              = "getStatus"
	MethodLoggingSetLevel        = "logging/setLevel"
)

// Notifications sent to the caller.
const (
	MethodNotificationResult  = "otp/result"
	MethodNotificationMessage = "notifications/message"
)

// Notifications received from the caller and the host.
const (
	MethodNotificationCancel         = "notifications/cancelled"
	MethodNotificationBroadcast      = "platform/broadcast"
	MethodNotificationActivityResult = "platform/activityResult"
	MethodNotificationUIAttached     = "platform/uiAttached"
	MethodNotificationUIDetached     = "platform/uiDetached"
)

// Requests the broker sends to the host platform.
const (
	MethodStartConsentListen     = "platform/startConsentListen"
	MethodStartRetrieverListen   = "platform/startRetrieverListen"
	MethodRequestPhoneNumberHint = "platform/requestPhoneNumberHint"
	MethodRegisterReceiver       = "platform/registerReceiver"
	MethodUnregisterReceiver     = "platform/unregisterReceiver"
	MethodLaunch                 = "platform/launch"
	MethodGetAppSignatures       = "platform/getAppSignatures"
)
