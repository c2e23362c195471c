package services

import (
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type NoticeKind string

const (
	NoticeInfo    NoticeKind = "info"
	NoticeSuccess NoticeKind = "success"
	NoticeWarning NoticeKind = "warning"
	NoticeError   NoticeKind = "error"
)

// Notice is a human-readable message shown to the guest.
type Notice struct {
	Kind    NoticeKind `json:"kind"`
	Title   string     `json:"title"`
	Message string     `json:"message"`
}

// Notifier delivers notices to the guest.
type Notifier interface {
	Notify(kind NoticeKind, title, message string)
}

// LogNotifier writes notices to the structured log.
type LogNotifier struct {
	logger zerolog.Logger
}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{logger: log.With().Str("component", "Notifier").Logger()}
}

func (n *LogNotifier) Notify(kind NoticeKind, title, message string) {
	event := n.logger.Info()
	switch kind {
	case NoticeWarning:
		event = n.logger.Warn()
	case NoticeError:
		event = n.logger.Error()
	}
	event.Str("kind", string(kind)).Str("title", title).Msg(message)
}

// NoticeRecorder keeps every notice it receives, in order.
type NoticeRecorder struct {
	mu      sync.Mutex
	notices []Notice
}

func NewNoticeRecorder() *NoticeRecorder {
	return &NoticeRecorder{}
}

func (r *NoticeRecorder) Notify(kind NoticeKind, title, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, Notice{Kind: kind, Title: title, Message: message})
}

func (r *NoticeRecorder) Notices() []Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notice, len(r.notices))
	copy(out, r.notices)
	return out
}

// multiNotifier fans a notice out to several notifiers.
type multiNotifier []Notifier

func NewMultiNotifier(notifiers ...Notifier) Notifier {
	return multiNotifier(notifiers)
}

func (m multiNotifier) Notify(kind NoticeKind, title, message string) {
	for _, n := range m {
		if n != nil {
			n.Notify(kind, title, message)
		}
	}
}
