package notice

import (
	"sync"

	"go.uber.org/zap"
)

// Severity grades a notice shown to the console user.
type Severity string

const (
	SeveritySuccess Severity = "SUCCESS"
	SeverityInfo    Severity = "INFO"
	SeverityWarn    Severity = "WARN"
	SeverityError   Severity = "ERROR"
)

// Notice is a user-facing message emitted by the console services. Blocking
// notices require acknowledgement in the portal shell; MessageKey carries the
// translation key when one exists.
type Notice struct {
	Severity   Severity `json:"severity"`
	Summary    string   `json:"summary"`
	MessageKey string   `json:"messageKey,omitempty"`
	Blocking   bool     `json:"blocking"`
}

// Notifier receives notices for display.
type Notifier interface {
	Notify(Notice)
}

// Success builds a success notice.
func Success(summary string) Notice {
	return Notice{Severity: SeveritySuccess, Summary: summary}
}

// Info builds a non-blocking informational notice.
func Info(summary string) Notice {
	return Notice{Severity: SeverityInfo, Summary: summary}
}

// Warn builds a non-blocking warning notice.
func Warn(summary string) Notice {
	return Notice{Severity: SeverityWarn, Summary: summary}
}

// Error builds a blocking error notice keyed to a translation entry.
func Error(summary, messageKey string) Notice {
	return Notice{Severity: SeverityError, Summary: summary, MessageKey: messageKey, Blocking: true}
}

// ZapNotifier writes notices to the log. It is the default sink when no host
// shell is attached.
type ZapNotifier struct {
	logger *zap.Logger
}

// NewZapNotifier builds the log-backed sink.
func NewZapNotifier(logger *zap.Logger) *ZapNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapNotifier{logger: logger}
}

// Notify implements Notifier.
func (n *ZapNotifier) Notify(msg Notice) {
	fields := []zap.Field{
		zap.String("severity", string(msg.Severity)),
		zap.Bool("blocking", msg.Blocking),
	}
	if msg.MessageKey != "" {
		fields = append(fields, zap.String("message_key", msg.MessageKey))
	}

	switch msg.Severity {
	case SeverityError:
		n.logger.Error(msg.Summary, fields...)
	case SeverityWarn:
		n.logger.Warn(msg.Summary, fields...)
	default:
		n.logger.Info(msg.Summary, fields...)
	}
}

// Recorder collects notices for inspection; used by tests and by the handler
// surface to hand the latest notices back to the shell.
type Recorder struct {
	mu      sync.Mutex
	notices []Notice
}

// Notify implements Notifier.
func (r *Recorder) Notify(msg Notice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, msg)
}

// Notices returns a copy of everything recorded so far.
func (r *Recorder) Notices() []Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notice, len(r.notices))
	copy(out, r.notices)
	return out
}

// Drain returns the recorded notices and clears the recorder.
func (r *Recorder) Drain() []Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.notices
	r.notices = nil
	return out
}

// Fanout forwards each notice to every attached sink.
type Fanout []Notifier

// Notify implements Notifier.
func (f Fanout) Notify(msg Notice) {
	for _, n := range f {
		if n != nil {
			n.Notify(msg)
		}
	}
}
