//go:build headless

// platform_headless.go - Tray, hotkey and clipboard stand-ins for headless builds

package main

import "image/color"

type noopHotkeys struct{}

func NewGlobalHotkeys() HotkeyBinder             { return noopHotkeys{} }
func (noopHotkeys) Bind(HotkeyKey, func()) error { return nil }
func (noopHotkeys) Unbind() error                { return nil }

type noopTray struct{}

func NewSystrayIcon() TrayIcon                  { return noopTray{} }
func (noopTray) Start(func(AppEvent)) error     { return nil }
func (noopTray) SetIconColor(color.Color) error { return nil }
func (noopTray) Close() error                   { return nil }

type noopClipboard struct{}

func NewSystemClipboard() ClipboardWriter    { return noopClipboard{} }
func (noopClipboard) WriteText(string) error { return nil }
