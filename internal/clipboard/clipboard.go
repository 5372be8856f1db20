// Package clipboard reads and writes text on the system clipboard.
package clipboard

import (
	"sync"

	"golang.design/x/clipboard"

	"github.com/zhubert/planboard/internal/errors"
	"github.com/zhubert/planboard/internal/logger"
)

var (
	mu          sync.Mutex
	initialized bool

	// Swapped in tests; the real clipboard needs a display.
	initFunc  = clipboard.Init
	writeFunc = func(b []byte) { clipboard.Write(clipboard.FmtText, b) }
	readFunc  = func() []byte { return clipboard.Read(clipboard.FmtText) }
)

// Init initializes the clipboard. It is safe to call multiple times.
func Init() error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked()
}

func initLocked() error {
	if initialized {
		return nil
	}
	log := logger.ComponentLogger("Clipboard")
	if err := initFunc(); err != nil {
		log.Warn("failed to initialize", "error", err)
		return errors.ClipboardUnavailable(err)
	}
	initialized = true
	log.Debug("initialized")
	return nil
}

// WriteText places text on the clipboard.
func WriteText(text string) error {
	mu.Lock()
	defer mu.Unlock()

	if err := initLocked(); err != nil {
		return err
	}
	writeFunc([]byte(text))
	logger.ComponentLogger("Clipboard").Debug("wrote text", "bytes", len(text))
	return nil
}

// ReadText reads text from the clipboard, or "" when it holds none.
func ReadText() (string, error) {
	mu.Lock()
	defer mu.Unlock()

	if err := initLocked(); err != nil {
		return "", err
	}
	return string(readFunc()), nil
}
