//go:build !headless

// tray_systray.go - Notification-area icon and menu

/*
(c) 2024 - 2026 Zayn Otley
License: GPLv3 or later
*/

package main

import (
	"image/color"
	"runtime"
	"sync"

	"fyne.io/systray"
	"github.com/intuitionamiga/fixpoint/internal/icon"
	"github.com/rs/zerolog/log"
)

// SystrayIcon runs the tray alongside the Ebiten loop. Menu clicks arrive on
// systray's goroutines and are forwarded through post.
type SystrayIcon struct {
	mu      sync.Mutex
	post    func(AppEvent)
	end     func()
	done    chan struct{}
	closed  bool
	pending []byte
	ready   bool
}

func NewSystrayIcon() TrayIcon {
	return &SystrayIcon{done: make(chan struct{})}
}

func (t *SystrayIcon) Start(post func(AppEvent)) error {
	t.post = post
	start, end := systray.RunWithExternalLoop(t.onReady, nil)
	t.end = end
	start()
	return nil
}

func (t *SystrayIcon) onReady() {
	systray.SetTitle(APP_NAME)
	systray.SetTooltip(APP_NAME)

	toggle := systray.AddMenuItem("Show / Hide", "Toggle the overlay")
	settings := systray.AddMenuItem("Open Settings", "Edit overlay settings")
	copyPath := systray.AddMenuItem("Copy Settings Path", "Copy the settings file path")
	systray.AddSeparator()
	exit := systray.AddMenuItem("Exit", "Quit "+APP_NAME)

	t.mu.Lock()
	t.ready = true
	if t.pending != nil {
		systray.SetIcon(t.pending)
	}
	t.mu.Unlock()

	go func() {
		for {
			select {
			case <-t.done:
				return
			case <-toggle.ClickedCh:
				t.post(EventToggleOverlay)
			case <-settings.ClickedCh:
				t.post(EventOpenSettings)
			case <-copyPath.ClickedCh:
				t.post(EventCopySettingsPath)
			case <-exit.ClickedCh:
				t.post(EventExit)
			}
		}
	}()
	log.Debug().Msg("Tray icon ready")
}

// SetIconColor redraws the bar icon. Windows takes ICO data, other
// platforms PNG.
func (t *SystrayIcon) SetIconColor(c color.Color) error {
	img := icon.Render(c, false)
	var data []byte
	var err error
	if runtime.GOOS == "windows" {
		data, err = icon.ICO(img)
	} else {
		data, err = icon.PNG(img)
	}
	if err != nil {
		return &OverlayError{Operation: "tray", Details: "icon encoding", Err: err}
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return nil
	}
	t.pending = data
	if t.ready {
		systray.SetIcon(data)
	}
	return nil
}

func (t *SystrayIcon) Close() error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil
	}
	t.closed = true
	close(t.done)
	t.mu.Unlock()

	if t.end != nil {
		t.end()
	}
	return nil
}
