// overlay_settings.go - Overlay settings record and JSON persistence

/*
(c) 2024 - 2026 Zayn Otley
License: GPLv3 or later
*/

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/image/colornames"
)

const (
	SETTINGS_DIR_NAME  = "MotionOverlay"
	SETTINGS_FILE_NAME = "settings.json"

	THICKNESS_MIN = 1
	THICKNESS_MAX = 30
	OPACITY_MIN   = 10
	OPACITY_MAX   = 100
)

var defaultShapeColor = color.RGBA{R: 0xFF, G: 0xFF, B: 0x00, A: 0xFF}

// Layer identifies one independent drawing surface.
type Layer int

const (
	LayerEdges Layer = iota
	LayerCenter
	LayerCorners
	layerCount
)

func (l Layer) String() string {
	switch l {
	case LayerEdges:
		return "edges"
	case LayerCenter:
		return "center"
	case LayerCorners:
		return "corners"
	}
	return fmt.Sprintf("layer(%d)", int(l))
}

type EdgeShape int

const (
	EdgeRectangle EdgeShape = iota
	EdgeTriangle
	EdgeSemicircle
)

var edgeShapeNames = []string{"Rectangle", "Triangle", "Semicircle"}

type CenterShape int

const (
	CenterSquare CenterShape = iota
	CenterCrosshair
	CenterCircle
	CenterTriangle
)

var centerShapeNames = []string{"Square", "Crosshair", "Circle", "Triangle"}

type CornerShape int

const (
	CornerSquare CornerShape = iota
)

var cornerShapeNames = []string{"Square"}

// HotkeyKey is the single global toggle key. Zero means no hotkey.
type HotkeyKey int

const (
	HotkeyNone HotkeyKey = iota
	HotkeyF1
	HotkeyF2
	HotkeyF3
	HotkeyF4
	HotkeyF5
	HotkeyF6
	HotkeyF7
	HotkeyF8
	HotkeyF9
	HotkeyF10
	HotkeyF11
	HotkeyF12
)

// Windows virtual-key code of F1; older settings files store the raw key code.
const vkF1 = 112

func (s EdgeShape) String() string   { return enumName(edgeShapeNames, int(s)) }
func (s CenterShape) String() string { return enumName(centerShapeNames, int(s)) }
func (s CornerShape) String() string { return enumName(cornerShapeNames, int(s)) }

func (k HotkeyKey) String() string {
	if k == HotkeyNone {
		return "None"
	}
	if k >= HotkeyF1 && k <= HotkeyF12 {
		return "F" + strconv.Itoa(int(k-HotkeyF1)+1)
	}
	return strconv.Itoa(int(k))
}

func enumName(names []string, v int) string {
	if v >= 0 && v < len(names) {
		return names[v]
	}
	return strconv.Itoa(v)
}

// parseEnum accepts a case-insensitive name or the numeric ordinal.
func parseEnum(names []string, data []byte, kind string) (int, error) {
	data = bytes.TrimSpace(data)
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		for i, n := range names {
			if strings.EqualFold(n, name) {
				return i, nil
			}
		}
		return 0, fmt.Errorf("unknown %s %q", kind, name)
	}
	var ordinal int
	if err := json.Unmarshal(data, &ordinal); err != nil {
		return 0, fmt.Errorf("invalid %s: %s", kind, data)
	}
	if ordinal < 0 || ordinal >= len(names) {
		return 0, fmt.Errorf("%s out of range: %d", kind, ordinal)
	}
	return ordinal, nil
}

func (s EdgeShape) MarshalJSON() ([]byte, error) { return json.Marshal(s.String()) }

func (s *EdgeShape) UnmarshalJSON(data []byte) error {
	v, err := parseEnum(edgeShapeNames, data, "edge shape")
	if err != nil {
		return err
	}
	*s = EdgeShape(v)
	return nil
}

func (s CenterShape) MarshalJSON() ([]byte, error) { return json.Marshal(s.String()) }

func (s *CenterShape) UnmarshalJSON(data []byte) error {
	v, err := parseEnum(centerShapeNames, data, "center shape")
	if err != nil {
		return err
	}
	*s = CenterShape(v)
	return nil
}

func (s CornerShape) MarshalJSON() ([]byte, error) { return json.Marshal(s.String()) }

func (s *CornerShape) UnmarshalJSON(data []byte) error {
	v, err := parseEnum(cornerShapeNames, data, "corner shape")
	if err != nil {
		return err
	}
	*s = CornerShape(v)
	return nil
}

func (k HotkeyKey) MarshalJSON() ([]byte, error) { return json.Marshal(k.String()) }

// UnmarshalJSON accepts "None", "F1".."F12", or a Windows virtual-key code.
func (k *HotkeyKey) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		key, ok := parseHotkeyName(name)
		if !ok {
			return fmt.Errorf("unknown hotkey %q", name)
		}
		*k = key
		return nil
	}
	var code int
	if err := json.Unmarshal(data, &code); err != nil {
		return fmt.Errorf("invalid hotkey: %s", data)
	}
	switch {
	case code == 0:
		*k = HotkeyNone
	case code >= vkF1 && code < vkF1+12:
		*k = HotkeyF1 + HotkeyKey(code-vkF1)
	default:
		return fmt.Errorf("unsupported hotkey code %d", code)
	}
	return nil
}

func parseHotkeyName(name string) (HotkeyKey, bool) {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, "none") {
		return HotkeyNone, true
	}
	if len(name) < 2 || (name[0] != 'F' && name[0] != 'f') {
		return HotkeyNone, false
	}
	n, err := strconv.Atoi(name[1:])
	if err != nil || n < 1 || n > 12 {
		return HotkeyNone, false
	}
	return HotkeyF1 + HotkeyKey(n-1), true
}

// Settings is the persisted overlay configuration. JSON field names match
// the settings.json files written by earlier releases.
type Settings struct {
	EdgeShape   EdgeShape   `json:"EdgeShape"`
	CenterShape CenterShape `json:"CenterShape"`
	CornerShape CornerShape `json:"CornerShape"`

	EdgeColorHTML   string `json:"EdgeColorHtml"`
	CenterColorHTML string `json:"CenterColorHtml"`
	CornerColorHTML string `json:"CornerColorHtml"`

	EdgeThickness   int `json:"EdgeThickness"`
	CenterThickness int `json:"CenterThickness"`
	CornerThickness int `json:"CornerThickness"`

	EdgeOpacityPercent   int `json:"EdgeOpacityPercent"`
	CenterOpacityPercent int `json:"CenterOpacityPercent"`
	CornerOpacityPercent int `json:"CornerOpacityPercent"`

	Hotkey HotkeyKey `json:"Hotkey"`

	ShowCenter  bool `json:"ShowCenter"`
	ShowEdges   bool `json:"ShowEdges"`
	ShowCorners bool `json:"ShowCorners"`
}

func DefaultSettings() Settings {
	yellow := FormatHTMLColor(defaultShapeColor)
	return Settings{
		EdgeShape:            EdgeRectangle,
		CenterShape:          CenterSquare,
		CornerShape:          CornerSquare,
		EdgeColorHTML:        yellow,
		CenterColorHTML:      yellow,
		CornerColorHTML:      yellow,
		EdgeThickness:        6,
		CenterThickness:      4,
		CornerThickness:      6,
		EdgeOpacityPercent:   90,
		CenterOpacityPercent: 90,
		CornerOpacityPercent: 90,
		Hotkey:               HotkeyNone,
		ShowCenter:           true,
		ShowEdges:            true,
		ShowCorners:          false,
	}
}

// LayerStyle is the per-layer slice of the settings record.
type LayerStyle struct {
	ColorHTML      string
	Thickness      int
	OpacityPercent int
	Visible        bool
}

// Color resolves the stored color, falling back to yellow when unparseable.
func (ls LayerStyle) Color() color.RGBA {
	c, err := ParseHTMLColor(ls.ColorHTML)
	if err != nil {
		return defaultShapeColor
	}
	return c
}

// DrawThickness is the thickness used for geometry, never below 1.
func (ls LayerStyle) DrawThickness() int {
	return max(THICKNESS_MIN, ls.Thickness)
}

func (ls LayerStyle) Opacity() float64 {
	return OpacityFraction(ls.OpacityPercent)
}

func (s *Settings) Style(l Layer) LayerStyle {
	switch l {
	case LayerEdges:
		return LayerStyle{s.EdgeColorHTML, s.EdgeThickness, s.EdgeOpacityPercent, s.ShowEdges}
	case LayerCenter:
		return LayerStyle{s.CenterColorHTML, s.CenterThickness, s.CenterOpacityPercent, s.ShowCenter}
	default:
		return LayerStyle{s.CornerColorHTML, s.CornerThickness, s.CornerOpacityPercent, s.ShowCorners}
	}
}

// OpacityFraction maps a percentage onto [0.1, 1.0].
func OpacityFraction(percent int) float64 {
	f := float64(percent) / 100.0
	if f < float64(OPACITY_MIN)/100.0 {
		return float64(OPACITY_MIN) / 100.0
	}
	if f > 1.0 {
		return 1.0
	}
	return f
}

// ParseHTMLColor accepts #RGB, #RRGGBB or a named color ("Yellow").
func ParseHTMLColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return color.RGBA{}, errors.New("empty color")
	}
	if s[0] == '#' {
		hex := s[1:]
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if len(hex) != 6 {
			return color.RGBA{}, fmt.Errorf("invalid color %q", s)
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
		return color.RGBA{R: byte(v >> 16), G: byte(v >> 8), B: byte(v), A: 0xFF}, nil
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}
	return color.RGBA{}, fmt.Errorf("unknown color %q", s)
}

func FormatHTMLColor(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02X%02X%02X", r>>8, g>>8, b>>8)
}

// DefaultSettingsPath returns <user config dir>/MotionOverlay/settings.json.
func DefaultSettingsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, SETTINGS_DIR_NAME, SETTINGS_FILE_NAME), nil
}

// SettingsStore reads and writes the settings file at a fixed path.
type SettingsStore struct {
	path string
}

func NewSettingsStore(path string) *SettingsStore {
	return &SettingsStore{path: path}
}

func (st *SettingsStore) Path() string {
	return st.path
}

// Load never fails: a missing or unreadable file yields the defaults.
func (st *SettingsStore) Load() *Settings {
	s, err := st.load()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug().Str("path", st.path).Msg("No settings file, using defaults")
		} else {
			log.Warn().Err(err).Str("path", st.path).Msg("Settings unreadable, using defaults")
		}
		d := DefaultSettings()
		return &d
	}
	return s
}

func (st *SettingsStore) load() (*Settings, error) {
	data, err := os.ReadFile(st.path)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, errors.New("empty settings document")
	}
	s := DefaultSettings()
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse %s: %w", st.path, err)
	}
	return &s, nil
}

func (st *SettingsStore) Save(s *Settings) error {
	if err := os.MkdirAll(filepath.Dir(st.path), 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	out := s.withCanonicalColors()
	data, err := json.MarshalIndent(&out, "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.WriteFile(st.path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

// withCanonicalColors returns a copy with every parseable color rewritten as
// #RRGGBB. Unparseable strings are left for the user to fix.
func (s *Settings) withCanonicalColors() Settings {
	out := *s
	for _, p := range []*string{&out.EdgeColorHTML, &out.CenterColorHTML, &out.CornerColorHTML} {
		*p = canonicalHTMLColor(*p)
	}
	return out
}

func canonicalHTMLColor(html string) string {
	c, err := ParseHTMLColor(html)
	if err != nil {
		return html
	}
	return FormatHTMLColor(c)
}
