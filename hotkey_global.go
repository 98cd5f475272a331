//go:build !headless

// hotkey_global.go - System-wide toggle hotkey

/*
(c) 2024 - 2026 Zayn Otley
License: GPLv3 or later
*/

package main

import (
	"fmt"

	"golang.design/x/hotkey"
)

var functionKeys = map[HotkeyKey]hotkey.Key{
	HotkeyF1:  hotkey.KeyF1,
	HotkeyF2:  hotkey.KeyF2,
	HotkeyF3:  hotkey.KeyF3,
	HotkeyF4:  hotkey.KeyF4,
	HotkeyF5:  hotkey.KeyF5,
	HotkeyF6:  hotkey.KeyF6,
	HotkeyF7:  hotkey.KeyF7,
	HotkeyF8:  hotkey.KeyF8,
	HotkeyF9:  hotkey.KeyF9,
	HotkeyF10: hotkey.KeyF10,
	HotkeyF11: hotkey.KeyF11,
	HotkeyF12: hotkey.KeyF12,
}

// GlobalHotkeys holds at most one registered key without modifiers.
type GlobalHotkeys struct {
	hk   *hotkey.Hotkey
	stop chan struct{}
}

func NewGlobalHotkeys() HotkeyBinder {
	return &GlobalHotkeys{}
}

func (g *GlobalHotkeys) Bind(key HotkeyKey, onPress func()) error {
	if err := g.Unbind(); err != nil {
		return err
	}
	code, ok := functionKeys[key]
	if !ok {
		return &OverlayError{Operation: "hotkey", Details: fmt.Sprintf("unsupported key %s", key)}
	}

	hk := hotkey.New(nil, code)
	if err := hk.Register(); err != nil {
		return &OverlayError{Operation: "hotkey", Details: "register " + key.String(), Err: err}
	}
	stop := make(chan struct{})
	g.hk, g.stop = hk, stop

	go func() {
		for {
			select {
			case <-stop:
				return
			case <-hk.Keydown():
				onPress()
			}
		}
	}()
	return nil
}

func (g *GlobalHotkeys) Unbind() error {
	if g.hk == nil {
		return nil
	}
	close(g.stop)
	err := g.hk.Unregister()
	g.hk, g.stop = nil, nil
	if err != nil {
		return &OverlayError{Operation: "hotkey", Details: "unregister", Err: err}
	}
	return nil
}
