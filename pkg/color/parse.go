package color

import (
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Parse reads a color from text. Accepted forms are #rgb, #rrggbb,
// #rrggbbaa, 0xrrggbb, rgb(r, g, b), rgba(r, g, b, a) and CSS color names.
func Parse(text string) (Color, bool) {
	c, n := parse(text)
	return c, n != NotationUnknown
}

func parse(text string) (Color, Notation) {
	s := strings.ToLower(strings.TrimSpace(text))
	switch {
	case strings.HasPrefix(s, "#"):
		return parseHex(s[1:])
	case strings.HasPrefix(s, "0x"):
		c, n := parseHex(s[2:])
		if n != NotationHexRGB {
			return Color{}, NotationUnknown
		}
		return c, n
	case strings.HasPrefix(s, "rgb"):
		return parseFunc(s)
	}
	if named, ok := colornames.Map[s]; ok {
		return RGBA(float64(named.R), float64(named.G), float64(named.B), float64(named.A)/maxByte), NotationName
	}
	return Color{}, NotationUnknown
}

func parseHex(h string) (Color, Notation) {
	switch len(h) {
	case 3:
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	case 6, 8:
	default:
		return Color{}, NotationUnknown
	}
	n, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, NotationUnknown
	}
	if len(h) == 6 {
		return FromNumber(int(n)), NotationHexRGB
	}
	return RGBA(
		float64((n>>24)&0xff),
		float64((n>>16)&0xff),
		float64((n>>8)&0xff),
		float64(n&0xff)/maxByte,
	), NotationHexRGBA
}

func parseFunc(s string) (Color, Notation) {
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return Color{}, NotationUnknown
	}
	name := strings.TrimSpace(s[:open])
	if name != "rgb" && name != "rgba" {
		return Color{}, NotationUnknown
	}
	parts := strings.FieldsFunc(s[open+1:len(s)-1], func(r rune) bool {
		return r == ',' || r == ' ' || r == '/'
	})
	if len(parts) != 3 && len(parts) != 4 {
		return Color{}, NotationUnknown
	}
	comps := make([]float64, len(parts))
	for i, p := range parts {
		v, err := parseComponent(p, i == 3)
		if err != nil {
			return Color{}, NotationUnknown
		}
		comps[i] = v
	}
	a := 1.0
	if len(comps) == 4 {
		a = comps[3]
	}
	return RGBA(comps[0], comps[1], comps[2], a), NotationFunc
}

func parseComponent(p string, alpha bool) (float64, error) {
	if pct, ok := strings.CutSuffix(p, "%"); ok {
		v, err := strconv.ParseFloat(pct, 64)
		if err != nil {
			return 0, err
		}
		if alpha {
			return v / 100, nil
		}
		return v / 100 * maxByte, nil
	}
	return strconv.ParseFloat(p, 64)
}
