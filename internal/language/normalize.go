package language

import "strings"

// NormalizeTag normalizes a language tag to lowercase with "-" separators
// (for example "zh_CN" becomes "zh-cn"). Returns an empty string when the
// value is blank or contains characters outside a-z.
func NormalizeTag(raw string) string {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if trimmed == "" {
		return ""
	}

	parts := strings.FieldsFunc(trimmed, func(r rune) bool {
		return r == '-' || r == '_'
	})
	if len(parts) == 0 {
		return ""
	}
	for _, part := range parts {
		for _, r := range part {
			if r < 'a' || r > 'z' {
				return ""
			}
		}
	}
	return strings.Join(parts, "-")
}

// NormalizeCode returns the primary language subtag ("en" from "en-US").
func NormalizeCode(raw string) string {
	tag := NormalizeTag(raw)
	if tag == "" {
		return ""
	}
	if dash := strings.IndexByte(tag, '-'); dash >= 0 {
		return tag[:dash]
	}
	return tag
}
