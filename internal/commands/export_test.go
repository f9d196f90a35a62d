package commands

// Internal hooks for the black-box tests.
var (
	CallbackHandler = callbackHandler
	StoreToken      = storeToken
	TokenUsable     = tokenUsable
)
