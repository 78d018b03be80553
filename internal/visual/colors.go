package visual

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/mnthn04/AICarouselApp/pkg/errors"
)

// Fallback colors for cosmetic derivations. Color math never propagates a
// malformed-input error to palette construction; it degrades to these.
const (
	FallbackPastel        = "#FFE4EC"
	FallbackComplementary = "#A29BFE"
	FallbackNormalized    = "#405DE6"
)

var hexColorPattern = regexp.MustCompile(`^#[0-9A-F]{6}$`)
var hexShorthandPattern = regexp.MustCompile(`^#[0-9A-F]{3}$`)

// HexToRGB parses a #RRGGBB color into its 0-255 channels.
func HexToRGB(hex string) (int, int, int, error) {
	normalized := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(normalized) != 6 {
		return 0, 0, 0, errors.NewFormatError("hex color must have 6 digits", hex)
	}

	value, err := strconv.ParseUint(normalized, 16, 32)
	if err != nil {
		return 0, 0, 0, errors.NewFormatError("hex color contains invalid digits", hex)
	}

	return int(value >> 16 & 0xFF), int(value >> 8 & 0xFF), int(value & 0xFF), nil
}

// RGBToHex formats channels as a lower-case #rrggbb string. Out-of-range
// values are clamped rather than rejected.
func RGBToHex(r, g, b int) string {
	return fmt.Sprintf("#%02x%02x%02x", clampChannel(r), clampChannel(g), clampChannel(b))
}

func clampChannel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// PastelVariant lifts lightness and drops saturation to produce a softer
// version of the color. Malformed input degrades to a fixed light pink
// because the result is purely cosmetic.
func PastelVariant(hex string, lightnessBoost float64) string {
	r, g, b, err := HexToRGB(hex)
	if err != nil {
		return FallbackPastel
	}

	h, l, s := rgbToHLS(float64(r)/255.0, float64(g)/255.0, float64(b)/255.0)

	l = l + lightnessBoost
	if l > 1.0 {
		l = 1.0
	}
	s = s * 0.6
	if s < 0.3 {
		s = 0.3
	}

	rf, gf, bf := hlsToRGB(h, l, s)
	return RGBToHex(int(rf*255), int(gf*255), int(bf*255))
}

// ComplementaryColor rotates the hue by 180 degrees, keeping lightness and
// saturation. Same fallback policy as PastelVariant.
func ComplementaryColor(hex string) string {
	r, g, b, err := HexToRGB(hex)
	if err != nil {
		return FallbackComplementary
	}

	h, l, s := rgbToHLS(float64(r)/255.0, float64(g)/255.0, float64(b)/255.0)
	h = mod1(h + 0.5)

	rf, gf, bf := hlsToRGB(h, l, s)
	return RGBToHex(int(rf*255), int(gf*255), int(bf*255))
}

// NormalizeHex coerces collaborator-supplied colors to upper-case #RRGGBB.
// Shorthand #RGB is expanded; empty input maps to white and anything else to
// a fixed brand blue.
func NormalizeHex(color string) string {
	if strings.TrimSpace(color) == "" {
		return "#FFFFFF"
	}

	color = strings.ToUpper(strings.TrimSpace(color))
	if !strings.HasPrefix(color, "#") {
		color = "#" + color
	}

	if hexColorPattern.MatchString(color) {
		return color
	}
	if hexShorthandPattern.MatchString(color) {
		return fmt.Sprintf("#%c%c%c%c%c%c", color[1], color[1], color[2], color[2], color[3], color[3])
	}
	return FallbackNormalized
}

// rgbToHLS converts normalized RGB (0..1) to hue/lightness/saturation, all
// in 0..1.
func rgbToHLS(r, g, b float64) (h, l, s float64) {
	maxc := max3(r, g, b)
	minc := min3(r, g, b)
	sumc := maxc + minc
	rangec := maxc - minc

	l = sumc / 2.0
	if minc == maxc {
		return 0.0, l, 0.0
	}

	if l <= 0.5 {
		s = rangec / sumc
	} else {
		s = rangec / (2.0 - sumc)
	}

	rc := (maxc - r) / rangec
	gc := (maxc - g) / rangec
	bc := (maxc - b) / rangec

	switch maxc {
	case r:
		h = bc - gc
	case g:
		h = 2.0 + rc - bc
	default:
		h = 4.0 + gc - rc
	}

	return mod1(h / 6.0), l, s
}

// hlsToRGB is the inverse of rgbToHLS, returning normalized channels.
func hlsToRGB(h, l, s float64) (r, g, b float64) {
	if s == 0 {
		return l, l, l
	}

	var m2 float64
	if l <= 0.5 {
		m2 = l * (1.0 + s)
	} else {
		m2 = l + s - l*s
	}
	m1 := 2.0*l - m2

	return hueChannel(m1, m2, h+1.0/3.0), hueChannel(m1, m2, h), hueChannel(m1, m2, h-1.0/3.0)
}

func hueChannel(m1, m2, hue float64) float64 {
	hue = mod1(hue)
	switch {
	case hue < 1.0/6.0:
		return m1 + (m2-m1)*hue*6.0
	case hue < 0.5:
		return m2
	case hue < 2.0/3.0:
		return m1 + (m2-m1)*(2.0/3.0-hue)*6.0
	default:
		return m1
	}
}

func mod1(v float64) float64 {
	v = v - float64(int(v))
	if v < 0 {
		v += 1.0
	}
	return v
}

func max3(a, b, c float64) float64 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func min3(a, b, c float64) float64 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
