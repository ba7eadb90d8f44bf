package launcher

import (
	"fmt"
	"io"

	"github.com/pkg/browser"
	"go.uber.org/zap"
)

// Launcher opens a meeting link.
type Launcher interface {
	Open(url string) error
}

// BrowserLauncher opens links in the default browser.
type BrowserLauncher struct {
	logger *zap.Logger
}

func NewBrowserLauncher(logger *zap.Logger) *BrowserLauncher {
	// The browser's own chatter would otherwise end up on our terminal
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
	return &BrowserLauncher{logger: logger}
}

func (l *BrowserLauncher) Open(url string) error {
	l.logger.Debug("Opening browser", zap.String("url", url))
	if err := browser.OpenURL(url); err != nil {
		return fmt.Errorf("failed to open %s: %w", url, err)
	}
	return nil
}

// DryRunLauncher logs the link instead of opening it.
type DryRunLauncher struct {
	logger *zap.Logger
}

func NewDryRunLauncher(logger *zap.Logger) *DryRunLauncher {
	return &DryRunLauncher{logger: logger}
}

func (l *DryRunLauncher) Open(url string) error {
	l.logger.Info("Dry run, not opening browser", zap.String("url", url))
	return nil
}
