package visual

import (
	"strings"
	"testing"
)

func TestHexToRGBParsesChannels(t *testing.T) {
	r, g, b, err := HexToRGB("#405DE6")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r != 0x40 || g != 0x5D || b != 0xE6 {
		t.Errorf("got (%d, %d, %d), want (64, 93, 230)", r, g, b)
	}
}

func TestHexToRGBAcceptsBareDigits(t *testing.T) {
	r, g, b, err := HexToRGB("ffffff")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r != 255 || g != 255 || b != 255 {
		t.Errorf("got (%d, %d, %d), want (255, 255, 255)", r, g, b)
	}
}

func TestHexToRGBRejectsMalformedInput(t *testing.T) {
	for _, input := range []string{"", "#FFF", "#GGGGGG", "#12345", "not a color"} {
		if _, _, _, err := HexToRGB(input); err == nil {
			t.Errorf("HexToRGB(%q) should fail", input)
		}
	}
}

func TestRGBToHexRoundTrip(t *testing.T) {
	for _, hex := range []string{"#000000", "#ffffff", "#405de6", "#a29bfe", "#123456"} {
		r, g, b, err := HexToRGB(hex)
		if err != nil {
			t.Fatalf("HexToRGB(%q): %v", hex, err)
		}
		if got := RGBToHex(r, g, b); got != hex {
			t.Errorf("round trip of %q produced %q", hex, got)
		}
	}
}

func TestRGBToHexClampsOutOfRange(t *testing.T) {
	if got := RGBToHex(-10, 300, 128); got != "#00ff80" {
		t.Errorf("got %q, want #00ff80", got)
	}
}

func TestPastelVariantLiftsLightness(t *testing.T) {
	pastel := PastelVariant("#405DE6", 0.25)

	r1, g1, b1, err := HexToRGB("#405DE6")
	if err != nil {
		t.Fatal(err)
	}
	r2, g2, b2, err := HexToRGB(pastel)
	if err != nil {
		t.Fatalf("pastel output %q is not a valid color: %v", pastel, err)
	}

	_, l1, _ := rgbToHLS(float64(r1)/255, float64(g1)/255, float64(b1)/255)
	_, l2, _ := rgbToHLS(float64(r2)/255, float64(g2)/255, float64(b2)/255)
	if l2 <= l1 {
		t.Errorf("pastel lightness %f should exceed original %f", l2, l1)
	}
}

func TestPastelVariantFallsBackOnBadInput(t *testing.T) {
	if got := PastelVariant("nope", 0.25); got != FallbackPastel {
		t.Errorf("got %q, want %q", got, FallbackPastel)
	}
}

func TestComplementaryColorRotatesHue(t *testing.T) {
	// Pure red's complement is pure cyan.
	if got := ComplementaryColor("#FF0000"); got != "#00ffff" {
		t.Errorf("got %q, want #00ffff", got)
	}
}

func TestComplementaryColorFallsBackOnBadInput(t *testing.T) {
	if got := ComplementaryColor("#XYZ"); got != FallbackComplementary {
		t.Errorf("got %q, want %q", got, FallbackComplementary)
	}
}

func TestNormalizeHex(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"#405de6", "#405DE6"},
		{"405DE6", "#405DE6"},
		{"  #fff  ", "#FFFFFF"},
		{"#A2C", "#AA22CC"},
		{"", "#FFFFFF"},
		{"   ", "#FFFFFF"},
		{"purple", FallbackNormalized},
		{"#12345", FallbackNormalized},
	}

	for _, tc := range cases {
		if got := NormalizeHex(tc.input); got != tc.want {
			t.Errorf("NormalizeHex(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestNormalizeHexOutputIsAlwaysRenderable(t *testing.T) {
	for _, input := range []string{"", "garbage", "#1", "ABCDEF", "#a2c"} {
		got := NormalizeHex(input)
		if len(got) != 7 || !strings.HasPrefix(got, "#") {
			t.Errorf("NormalizeHex(%q) = %q is not #RRGGBB", input, got)
		}
	}
}
