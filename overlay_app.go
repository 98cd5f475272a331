// overlay_app.go - Tray application context tying settings, layers and input together

/*
(c) 2024 - 2026 Zayn Otley
License: GPLv3 or later
*/

/*
Control flow:

	tray menu / hotkey / signal -> Post(event) -> events channel
	UI loop (display backend)   -> PumpEvents -> HandleEvent
	settings dialog Apply       -> save JSON -> layers.ApplySettings -> rebind hotkey -> show

Everything except Post runs on the UI loop, so no locking is needed around
the settings record or the layers.
*/

package main

import (
	"image/color"

	"github.com/rs/zerolog/log"
)

const (
	APP_NAME          = "FixPoint"
	APP_EVENT_BACKLOG = 16
)

type AppEvent int

const (
	EventToggleOverlay AppEvent = iota
	EventOpenSettings
	EventCopySettingsPath
	EventExit
)

func (e AppEvent) String() string {
	switch e {
	case EventToggleOverlay:
		return "toggle"
	case EventOpenSettings:
		return "settings"
	case EventCopySettingsPath:
		return "copy-path"
	case EventExit:
		return "exit"
	}
	return "unknown"
}

// HotkeyBinder registers the single global toggle hotkey.
type HotkeyBinder interface {
	Bind(key HotkeyKey, onPress func()) error
	Unbind() error
}

// TrayIcon is the notification-area icon with its context menu.
type TrayIcon interface {
	Start(post func(AppEvent)) error
	SetIconColor(c color.Color) error
	Close() error
}

// ClipboardWriter puts text on the system clipboard.
type ClipboardWriter interface {
	WriteText(text string) error
}

type OverlayAppDeps struct {
	Store     *SettingsStore
	Display   OverlayDisplay
	Hotkeys   HotkeyBinder
	Tray      TrayIcon
	Clipboard ClipboardWriter
}

type OverlayApp struct {
	settings *Settings
	store    *SettingsStore
	display  OverlayDisplay
	hotkeys  HotkeyBinder
	tray     TrayIcon
	clip     ClipboardWriter

	layers  [layerCount]*OverlayLayer
	dialog  *SettingsDialog
	events  chan AppEvent
	exiting bool
}

func NewOverlayApp(settings *Settings, deps OverlayAppDeps) *OverlayApp {
	w, h := deps.Display.ScreenSize()
	app := &OverlayApp{
		settings: settings,
		store:    deps.Store,
		display:  deps.Display,
		hotkeys:  deps.Hotkeys,
		tray:     deps.Tray,
		clip:     deps.Clipboard,
		events:   make(chan AppEvent, APP_EVENT_BACKLOG),
	}
	for l := Layer(0); l < layerCount; l++ {
		app.layers[l] = NewOverlayLayer(l, settings, w, h)
	}
	return app
}

// Start brings up the tray icon and hotkey. Overlays stay hidden until the
// user applies from the settings dialog unless showOverlays is set.
func (a *OverlayApp) Start(showOverlays bool) {
	if err := a.tray.Start(a.Post); err != nil {
		log.Warn().Err(err).Msg("Tray icon unavailable")
	}
	a.refreshTrayIcon()
	a.registerHotkey()

	if showOverlays {
		a.ApplyAndShowOverlays()
		return
	}
	a.ShowSettingsDialog()
}

func (a *OverlayApp) Settings() *Settings {
	return a.settings
}

func (a *OverlayApp) Layers() []*OverlayLayer {
	return a.layers[:]
}

func (a *OverlayApp) Dialog() *SettingsDialog {
	return a.dialog
}

// Post queues an event for the UI loop. Safe from any goroutine; events are
// dropped when the backlog is full.
func (a *OverlayApp) Post(ev AppEvent) {
	select {
	case a.events <- ev:
	default:
		log.Debug().Stringer("event", ev).Msg("Event backlog full, dropping")
	}
}

func (a *OverlayApp) Events() <-chan AppEvent {
	return a.events
}

// PumpEvents handles every queued event without blocking.
func (a *OverlayApp) PumpEvents() {
	for {
		select {
		case ev := <-a.events:
			a.HandleEvent(ev)
		default:
			return
		}
	}
}

func (a *OverlayApp) HandleEvent(ev AppEvent) {
	log.Debug().Stringer("event", ev).Msg("Handling event")
	switch ev {
	case EventToggleOverlay:
		a.ToggleOverlay()
	case EventOpenSettings:
		a.ShowSettingsDialog()
	case EventCopySettingsPath:
		a.copySettingsPath()
	case EventExit:
		a.RequestExit()
	}
}

// ToggleOverlay hides everything if the edge or center layer is showing,
// otherwise applies and shows the enabled layers.
func (a *OverlayApp) ToggleOverlay() {
	if a.layers[LayerEdges].Visible() || a.layers[LayerCenter].Visible() {
		for _, l := range a.layers {
			l.Hide()
		}
		return
	}
	a.ApplyAndShowOverlays()
}

func (a *OverlayApp) ApplyAndShowOverlays() {
	for _, l := range a.layers {
		if l.Style().Visible {
			l.ApplySettings()
			l.Show()
		} else {
			l.Hide()
		}
	}
}

func (a *OverlayApp) ShowSettingsDialog() {
	if a.dialog != nil && a.dialog.IsOpen() {
		return
	}
	a.dialog = NewSettingsDialog(a.settings, a.applyRequested)
	a.display.SetInteractive(true)
}

// SyncDialog releases input once the dialog has been closed.
func (a *OverlayApp) SyncDialog() {
	if a.dialog != nil && !a.dialog.IsOpen() {
		a.dialog = nil
		a.display.SetInteractive(false)
	}
}

func (a *OverlayApp) applyRequested() {
	if err := a.store.Save(a.settings); err != nil {
		log.Error().Err(err).Str("path", a.store.Path()).Msg("Failed to save settings")
	}
	for _, l := range a.layers {
		l.ApplySettings()
	}
	a.registerHotkey()
	a.refreshTrayIcon()
	a.ApplyAndShowOverlays()
}

func (a *OverlayApp) registerHotkey() {
	a.unregisterHotkey()
	if a.settings.Hotkey == HotkeyNone {
		return
	}
	if err := a.hotkeys.Bind(a.settings.Hotkey, func() { a.Post(EventToggleOverlay) }); err != nil {
		log.Warn().Err(err).Stringer("key", a.settings.Hotkey).Msg("Hotkey registration failed")
	}
}

func (a *OverlayApp) unregisterHotkey() {
	if err := a.hotkeys.Unbind(); err != nil {
		log.Debug().Err(err).Msg("Hotkey unregistration failed")
	}
}

func (a *OverlayApp) refreshTrayIcon() {
	if err := a.tray.SetIconColor(a.settings.Style(LayerEdges).Color()); err != nil {
		log.Debug().Err(err).Msg("Tray icon update failed")
	}
}

func (a *OverlayApp) copySettingsPath() {
	if a.clip == nil {
		return
	}
	if err := a.clip.WriteText(a.store.Path()); err != nil {
		log.Warn().Err(err).Msg("Clipboard unavailable")
	}
}

func (a *OverlayApp) RequestExit() {
	a.exiting = true
}

func (a *OverlayApp) Exiting() bool {
	return a.exiting
}

// Shutdown saves the record and releases the hotkey and tray icon. Every
// step is best effort.
func (a *OverlayApp) Shutdown() {
	if err := a.store.Save(a.settings); err != nil {
		log.Debug().Err(err).Msg("Exit-time save failed")
	}
	a.unregisterHotkey()
	if err := a.tray.Close(); err != nil {
		log.Debug().Err(err).Msg("Tray close failed")
	}
	for _, l := range a.layers {
		l.Hide()
	}
	if a.dialog != nil {
		a.dialog.Close()
		a.SyncDialog()
	}
}
