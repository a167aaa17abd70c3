package catalog

import "strings"

// maxKeyLen bounds generated item keys.
const maxKeyLen = 80

// ItemKey derives the stable identity key of a template item from its
// industry, area, activity, and hazard phrase. The key is deterministic and
// filesystem/URL-safe; it is used for selection filtering only, never as a
// storage identity.
func ItemKey(industry, area string, item Item) string {
	return slug(industry, area, item.Activity, item.Hazard)
}

func slug(parts ...string) string {
	joined := strings.Join(parts, "_")
	var b strings.Builder
	b.Grow(len(joined))
	for _, r := range joined {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	s := b.String()
	if len(s) > maxKeyLen {
		s = s[:maxKeyLen]
	}
	return s
}
