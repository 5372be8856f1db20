// Package notification provides cross-platform desktop notifications.
// It uses the beeep library to send notifications on macOS, Linux, and Windows.
package notification

import (
	"github.com/gen2brain/beeep"

	"github.com/zhubert/planboard/internal/logger"
)

// AppName is the title of every notification.
const AppName = "planboard"

var notifyFunc = beeep.Notify

// SetNotifier replaces the function used to deliver notifications.
func SetNotifier(fn func(title, message string, icon any) error) {
	notifyFunc = fn
}

// ResetNotifier restores beeep as the notifier.
func ResetNotifier() {
	notifyFunc = beeep.Notify
}

// Send sends a desktop notification with the given title and message.
func Send(title, message string) error {
	log := logger.ComponentLogger("Notification")
	log.Debug("sending", "title", title, "message", message)
	// Empty icon: beeep picks the platform default
	err := notifyFunc(title, message, "")
	if err != nil {
		log.Warn("failed to send", "error", err)
	}
	return err
}

// ProjectAdded announces a newly added project.
func ProjectAdded(title string) error {
	if title == "" {
		title = "Untitled project"
	}
	return Send(AppName, title+" added")
}
