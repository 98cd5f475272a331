//go:build !headless

// clipboard_system.go - System clipboard access

/*
(c) 2024 - 2026 Zayn Otley
License: GPLv3 or later
*/

package main

import (
	"sync"

	"golang.design/x/clipboard"
)

// SystemClipboard initialises the platform clipboard on first use.
type SystemClipboard struct {
	once sync.Once
	err  error
}

func NewSystemClipboard() ClipboardWriter {
	return &SystemClipboard{}
}

func (c *SystemClipboard) WriteText(text string) error {
	c.once.Do(func() {
		c.err = clipboard.Init()
	})
	if c.err != nil {
		return &OverlayError{Operation: "clipboard", Details: "init", Err: c.err}
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}
