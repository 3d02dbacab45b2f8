package gui

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Theme is the on-disk representation of a Style. Colors are written as
// "#RRGGBB" or "#RRGGBBAA" hex strings; zero-value fields fall back to
// DefaultStyle when loaded.
type Theme struct {
	WidgetColor string  `yaml:"widget_color,omitempty"`
	FrameColor  string  `yaml:"frame_color,omitempty"`
	TextColor   string  `yaml:"text_color,omitempty"`
	FontSize    float32 `yaml:"font_size,omitempty"`
	FontScale   float32 `yaml:"font_scale,omitempty"`
	FrameWidth  float32 `yaml:"frame_width,omitempty"`
	ItemSpacing float32 `yaml:"item_spacing,omitempty"`
}

// LoadTheme reads a YAML theme file and returns the resulting Style.
// Missing fields keep their DefaultStyle values.
func LoadTheme(path string) (Style, error) {
	s := DefaultStyle()

	b, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("read theme %s: %w", path, err)
	}

	var t Theme
	if err := yaml.Unmarshal(b, &t); err != nil {
		return s, fmt.Errorf("parse theme %s: %w", path, err)
	}

	return t.Apply(s)
}

// SaveTheme writes the style to a YAML theme file.
func SaveTheme(path string, s Style) error {
	t := Theme{
		WidgetColor: hexColor(s.WidgetColor),
		FrameColor:  hexColor(s.FrameColor),
		TextColor:   hexColor(s.TextColor),
		FontSize:    s.FontSize,
		FontScale:   s.FontScale,
		FrameWidth:  s.FrameWidth,
		ItemSpacing: s.ItemSpacing,
	}

	b, err := yaml.Marshal(&t)
	if err != nil {
		return fmt.Errorf("encode theme: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write theme %s: %w", path, err)
	}
	return nil
}

// Apply overlays the theme's set fields onto base and returns the result.
func (t Theme) Apply(base Style) (Style, error) {
	s := base

	set := func(dst *uint32, src string) error {
		if src == "" {
			return nil
		}
		c, err := parseHexColor(src)
		if err != nil {
			return err
		}
		*dst = c
		return nil
	}

	if err := set(&s.WidgetColor, t.WidgetColor); err != nil {
		return base, err
	}
	if err := set(&s.FrameColor, t.FrameColor); err != nil {
		return base, err
	}
	if err := set(&s.TextColor, t.TextColor); err != nil {
		return base, err
	}

	if t.FontSize > 0 {
		s.FontSize = t.FontSize
	}
	if t.FontScale > 0 {
		s.FontScale = t.FontScale
	}
	if t.FrameWidth > 0 {
		s.FrameWidth = t.FrameWidth
	}
	if t.ItemSpacing > 0 {
		s.ItemSpacing = t.ItemSpacing
	}

	return s, nil
}

// parseHexColor parses "#RRGGBB" or "#RRGGBBAA" into a packed color.
func parseHexColor(src string) (uint32, error) {
	h := strings.TrimPrefix(src, "#")
	if len(h) != 6 && len(h) != 8 {
		return 0, fmt.Errorf("invalid color %q: want #RRGGBB or #RRGGBBAA", src)
	}

	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", src, err)
	}

	if len(h) == 6 {
		v = v<<8 | 0xFF
	}
	return RGBA(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// hexColor formats a packed color as "#RRGGBBAA".
func hexColor(c uint32) string {
	r, g, b, a := UnpackRGBA(c)
	return fmt.Sprintf("#%02X%02X%02X%02X", r, g, b, a)
}
