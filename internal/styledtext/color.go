package styledtext

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB is a 16-bit-per-channel color triple (0-65535), the resolution
// native rich-text systems work in.
type RGB [3]int

// parseWebColor converts web color format (#RRGGBB) to a 16-bit RGB triple.
func parseWebColor(webColor string) (RGB, error) {
	color := strings.TrimPrefix(webColor, "#")

	if len(color) != 6 {
		return RGB{}, fmt.Errorf("invalid color format %s: expected #RRGGBB", webColor)
	}

	r, err := strconv.ParseInt(color[0:2], 16, 64)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid red component in %s: %w", webColor, err)
	}
	g, err := strconv.ParseInt(color[2:4], 16, 64)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid green component in %s: %w", webColor, err)
	}
	b, err := strconv.ParseInt(color[4:6], 16, 64)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid blue component in %s: %w", webColor, err)
	}

	// Scale 8-bit (0-255) to 16-bit (0-65535): 16-bit = 8-bit × 257
	return RGB{
		int(r * 257),
		int(g * 257),
		int(b * 257),
	}, nil
}
