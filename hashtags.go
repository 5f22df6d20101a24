package contentpack

import "strings"

// Per-platform hashtag limits. Instagram technically allows 30 but engagement
// drops well before that, so the cap stays conservative.
var hashtagCaps = map[string]int{
	PlatformInstagram: 12,
	PlatformTikTok:    5,
	PlatformLinkedIn:  5,
	PlatformX:         2,
	PlatformFacebook:  5,
}

// defaultHashtagCap applies to platforms without an explicit limit.
const defaultHashtagCap = 8

// CleanTag strips leading '#' characters and whitespace, removes every rune
// that is not a letter, digit, or underscore, and lowercases the result.
// Returns "" when nothing usable remains.
func CleanTag(raw string) string {
	s := strings.TrimSpace(raw)
	for strings.HasPrefix(s, "#") {
		s = s[1:]
	}
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		}
	}
	return b.String()
}

// DedupeTags removes case-insensitive duplicates preserving first-seen order.
// Tags are expected to be cleaned already; they are compared as-is.
func DedupeTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		key := strings.ToLower(t)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, t)
	}
	return out
}

// InlineHashtags scans caption text for "#word" occurrences and returns the
// cleaned tags found, deduplicated in first-seen order.
func InlineHashtags(caption string) []string {
	var found []string
	runes := []rune(caption)
	for i := 0; i < len(runes); i++ {
		if runes[i] != '#' {
			continue
		}
		j := i + 1
		for j < len(runes) && isTagRune(runes[j]) {
			j++
		}
		if j > i+1 {
			found = append(found, CleanTag(string(runes[i+1:j])))
		}
		i = j - 1
	}
	return DedupeTags(found)
}

func isTagRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_'
}

// EnforceHashtagRules cleans tags, removes duplicates, drops tags already
// present inline in the caption, and clamps the list to the platform limit.
// The platform name is normalized first, so "Twitter" and "x" share the
// 2-tag limit. Never returns nil.
func EnforceHashtagRules(platform string, tags []string, caption string) []string {
	slug := NormalizePlatform(platform)

	cleaned := make([]string, 0, len(tags))
	for _, t := range tags {
		if c := CleanTag(t); c != "" {
			cleaned = append(cleaned, c)
		}
	}
	cleaned = DedupeTags(cleaned)

	inline := make(map[string]bool)
	for _, t := range InlineHashtags(caption) {
		inline[t] = true
	}

	out := make([]string, 0, len(cleaned))
	for _, t := range cleaned {
		if !inline[t] {
			out = append(out, t)
		}
	}

	limit := defaultHashtagCap
	if c, ok := hashtagCaps[slug]; ok {
		limit = c
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
