package domain

// Notifier is the toast/notification sink the presentation layer plugs in.
// Success and failure messages from commands are delivered through it.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Navigator receives navigation signals the engine cannot act on itself,
// such as redirecting to the login surface when the credential is gone.
type Navigator interface {
	RedirectToLogin()
}

// NopNotifier discards all notifications.
type NopNotifier struct{}

func (NopNotifier) Success(string) {}
func (NopNotifier) Error(string)   {}

// NopNavigator ignores redirect signals.
type NopNavigator struct{}

func (NopNavigator) RedirectToLogin() {}
