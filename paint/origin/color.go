// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package origin

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ColorError is returned when a colour string is not in a recognised form.
type ColorError struct {
	Color string
}

func (e *ColorError) Error() string {
	return fmt.Sprintf("Invalid color format: '%s'. Supported formats: #RRGGBB, (R,G,B), or color name (red, blue, etc.)", e.Color)
}

// Single letter and Tableau colours recognised in addition to the SVG names.
var extraNames = map[string]string{
	"b": "#0000FF",
	"g": "#008000",
	"r": "#FF0000",
	"c": "#00BFBF",
	"m": "#BF00BF",
	"y": "#BFBF00",
	"k": "#000000",
	"w": "#FFFFFF",

	"tab:blue":   "#1F77B4",
	"tab:orange": "#FF7F0E",
	"tab:green":  "#2CA02C",
	"tab:red":    "#D62728",
	"tab:purple": "#9467BD",
	"tab:brown":  "#8C564B",
	"tab:pink":   "#E377C2",
	"tab:gray":   "#7F7F7F",
	"tab:grey":   "#7F7F7F",
	"tab:olive":  "#BCBD22",
	"tab:cyan":   "#17BECF",
}

// ParseColor returns the canonical upper case #RRGGBB form of s. The colour
// may be given as #RRGGBB or #RGB hex, as an RGB triplet "(r,g,b)" or
// "r,g,b" with components in [0,255], or as a colour name.
func ParseColor(s string) (string, error) {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "#") {
		h := s[1:]
		if isHex(h) {
			switch len(h) {
			case 6:
				return "#" + strings.ToUpper(h), nil
			case 3:
				return strings.ToUpper(string([]byte{'#', h[0], h[0], h[1], h[1], h[2], h[2]})), nil
			}
		}
	}

	rgb := strings.Replace(strings.Trim(s, "()"), " ", "", -1)
	if strings.Contains(rgb, ",") {
		if parts := strings.Split(rgb, ","); len(parts) == 3 {
			var v [3]int
			ok := true
			for i, p := range parts {
				n, err := strconv.Atoi(p)
				if err != nil || n < 0 || 255 < n {
					ok = false
					break
				}
				v[i] = n
			}
			if ok {
				return fmt.Sprintf("#%02X%02X%02X", v[0], v[1], v[2]), nil
			}
		}
	}

	name := strings.ToLower(s)
	if c, ok := colornames.Map[name]; ok {
		return Hex(c), nil
	}
	if h, ok := extraNames[name]; ok {
		return h, nil
	}

	return "", &ColorError{Color: s}
}

func isHex(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case '0' <= r && r <= '9', 'a' <= r && r <= 'f', 'A' <= r && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// Hex returns the #RRGGBB form of c, ignoring alpha.
func Hex(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02X%02X%02X", n.R, n.G, n.B)
}

// RGBA returns the opaque colour described by the canonical
// hex string h. RGBA panics if h is not in #RRGGBB form.
func RGBA(h string) color.RGBA {
	if len(h) != 7 || h[0] != '#' || !isHex(h[1:]) {
		panic(fmt.Sprintf("origin: invalid canonical colour %q", h))
	}
	v, _ := strconv.ParseUint(h[1:], 16, 32)
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}
