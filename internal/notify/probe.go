package notify

import "log/slog"

// Delivery modes understood by Detect.
const (
	ModeOff   = "off"
	ModeLog   = "log"
	ModeEmail = "email"
)

// Detect picks the notifier implementation for this runtime and reports
// whether the capability is available. Callers keep the flag and branch on
// it explicitly; there is no feature detection by failure anywhere else.
func Detect(mode string, emailSink *EmailSink) (Notifier, bool) {
	switch mode {
	case ModeEmail:
		if emailSink == nil || emailSink.Host == "" || emailSink.To == "" {
			slog.Warn("Email notification mode requested without SMTP settings, notifications disabled")
			return Disabled{}, false
		}
		return NewLocal(emailSink), true
	case ModeLog:
		return NewLocal(LogSink()), true
	case ModeOff:
		return Disabled{}, false
	default:
		slog.Warn("Unknown notify mode, notifications disabled", "mode", mode)
		return Disabled{}, false
	}
}
