package contentpack

import (
	"html"
	"regexp"
	"strings"
)

// emojiReplacements maps common marketing emoji to text equivalents that
// survive every font the renderer may fall back to.
var emojiReplacements = map[string]string{
	"\U0001F4A1": "(tip)",      // light bulb
	"\U0001F680": "(launch)",   // rocket
	"✅":          "(done)",     // check mark
	"\U0001F525": "(hot)",      // fire
	"\U0001F3AF": "(goal)",     // bullseye
	"\U0001F4E3": "(announce)", // megaphone
	"\U0001F4C8": "(growth)",   // chart up
	"\U0001F447": "(below)",    // pointing down
	"\U0001F517": "(link)",     // link
	"✨":          "*",          // sparkles
	"\U0001F9E0": "(insight)",  // brain
	"⚡":          "(fast)",     // lightning
	"❓":          "?",          // question mark
	"⭐":          "*",          // star
	"\U0001F50D": "(search)",   // magnifier
}

var emojiReplacer = buildEmojiReplacer()

func buildEmojiReplacer() *strings.Replacer {
	pairs := make([]string, 0, len(emojiReplacements)*2)
	for from, to := range emojiReplacements {
		pairs = append(pairs, from, to)
	}
	return strings.NewReplacer(pairs...)
}

// isEmojiRune reports whether r falls in the symbol blocks stripped from
// document text: U+1F000-U+1FAFF, U+2600-U+26FF, U+2700-U+27BF.
func isEmojiRune(r rune) bool {
	switch {
	case r >= 0x1F000 && r <= 0x1FAFF:
		return true
	case r >= 0x2600 && r <= 0x26FF:
		return true
	case r >= 0x2700 && r <= 0x27BF:
		return true
	}
	return false
}

// SanitizeText prepares model text for PDF output: non-breaking spaces
// become regular spaces, known emoji become text markers, and any remaining
// emoji are dropped. Variation selectors riding on emoji are dropped too.
func SanitizeText(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "\u00A0", " ")
	s = emojiReplacer.Replace(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isEmojiRune(r) || r == 0xFE0F {
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}

// standaloneAI matches the word "ai" regardless of case.
var standaloneAI = regexp.MustCompile(`\b[aA][iI]\b`)

// NormalizeCasing fixes casing quirks in model output, currently the
// standalone word "ai" which models frequently lowercase mid-sentence.
func NormalizeCasing(s string) string {
	return standaloneAI.ReplaceAllString(s, "AI")
}

// linkPattern matches URLs, bare www hosts, and email addresses in one pass
// so an already-linked URL is never re-matched on its www or host part.
var linkPattern = regexp.MustCompile(
	`\bhttps?://[^\s<>"']+|\bwww\.[^\s<>"']+|\b[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}\b`)

// AutoLink HTML-escapes text and wraps URLs, www hosts, and email addresses
// in anchor tags. The result is an HTML fragment.
func AutoLink(text string) string {
	escaped := html.EscapeString(text)

	return linkPattern.ReplaceAllStringFunc(escaped, func(m string) string {
		switch {
		case strings.HasPrefix(m, "http://"), strings.HasPrefix(m, "https://"):
			return `<a href="` + m + `">` + m + `</a>`
		case strings.HasPrefix(m, "www."):
			return `<a href="https://` + m + `">` + m + `</a>`
		default:
			return `<a href="mailto:` + m + `">` + m + `</a>`
		}
	})
}
