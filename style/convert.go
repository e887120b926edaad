package style

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ErrNotAColor is returned by Property.Color for values which do not denote
// a color.
var ErrNotAColor = errors.New("property value is not a color")

// Color converts a property into a color value. Recognized are CSS named
// colors, "transparent", hex notation (#rgb, #rgba, #rrggbb, #rrggbbaa) and
// the functional notations rgb(…) and rgba(…).
//
// Values which refer to other properties ("currentcolor", "auto") cannot be
// resolved from a single value and are reported as errors.
func (p Property) Color() (color.Color, error) {
	s := strings.ToLower(strings.TrimSpace(string(p)))
	switch {
	case s == "transparent":
		return color.NRGBA{}, nil
	case strings.HasPrefix(s, "#"):
		return hexColor(s[1:])
	case strings.HasPrefix(s, "rgb"):
		return funcColor(s)
	}
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w: '%s'", ErrNotAColor, p)
}

func hexColor(h string) (color.Color, error) {
	var digits []uint8
	for _, r := range h {
		v, err := strconv.ParseUint(string(r), 16, 8)
		if err != nil {
			return nil, fmt.Errorf("%w: '#%s'", ErrNotAColor, h)
		}
		digits = append(digits, uint8(v))
	}
	switch len(digits) {
	case 3, 4:
		c := color.NRGBA{digits[0] * 17, digits[1] * 17, digits[2] * 17, 0xff}
		if len(digits) == 4 {
			c.A = digits[3] * 17
		}
		return c, nil
	case 6, 8:
		c := color.NRGBA{digits[0]<<4 | digits[1], digits[2]<<4 | digits[3], digits[4]<<4 | digits[5], 0xff}
		if len(digits) == 8 {
			c.A = digits[6]<<4 | digits[7]
		}
		return c, nil
	}
	return nil, fmt.Errorf("%w: '#%s'", ErrNotAColor, h)
}

// funcColor parses rgb(r, g, b) and rgba(r, g, b, a) with integer channels
// and an alpha in [0…1].
func funcColor(s string) (color.Color, error) {
	open, close := strings.IndexByte(s, '('), strings.LastIndexByte(s, ')')
	if open < 0 || close < open {
		return nil, fmt.Errorf("%w: '%s'", ErrNotAColor, s)
	}
	args := strings.FieldsFunc(s[open+1:close], func(r rune) bool {
		return r == ',' || r == ' ' || r == '/'
	})
	if len(args) != 3 && len(args) != 4 {
		return nil, fmt.Errorf("%w: '%s'", ErrNotAColor, s)
	}
	var ch [4]uint8
	ch[3] = 0xff
	for i, a := range args {
		if i == 3 {
			f, err := strconv.ParseFloat(a, 64)
			if err != nil || f < 0 || f > 1 {
				return nil, fmt.Errorf("%w: '%s'", ErrNotAColor, s)
			}
			ch[3] = uint8(f*255 + 0.5)
			continue
		}
		v, err := strconv.ParseUint(a, 10, 8)
		if err != nil {
			return nil, fmt.Errorf("%w: '%s'", ErrNotAColor, s)
		}
		ch[i] = uint8(v)
	}
	return color.NRGBA{ch[0], ch[1], ch[2], ch[3]}, nil
}

// ColorString returns a hex representation of a color, suitable as a
// property value.
func ColorString(c color.Color) string {
	if c == nil {
		return "transparent"
	}
	rgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	if rgba.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", rgba.R, rgba.G, rgba.B, rgba.A)
}
