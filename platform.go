package contentpack

import (
	"sort"
	"strings"
)

// Platform slugs. "twitter" and "x" collapse to PlatformX.
const (
	PlatformInstagram = "instagram"
	PlatformTikTok    = "tiktok"
	PlatformLinkedIn  = "linkedin"
	PlatformX         = "x"
	PlatformFacebook  = "facebook"
)

// displayNames maps slugs to the names shown in rendered documents.
// X keeps its legacy "Twitter" label to match existing customer documents.
var displayNames = map[string]string{
	PlatformInstagram: "Instagram",
	PlatformTikTok:    "TikTok",
	PlatformLinkedIn:  "LinkedIn",
	PlatformX:         "Twitter",
	PlatformFacebook:  "Facebook",
}

// platformColors maps slugs to banner colors.
var platformColors = map[string]string{
	PlatformInstagram: "#E1306C",
	PlatformLinkedIn:  "#0A66C2",
	PlatformTikTok:    "#000000",
	PlatformX:         "#1DA1F2",
	PlatformFacebook:  "#1877F2",
}

// renderOrder is the fixed section order in rendered documents.
var renderOrder = []string{
	PlatformInstagram,
	PlatformLinkedIn,
	PlatformTikTok,
	PlatformX,
	PlatformFacebook,
}

// NormalizePlatform lowercases and trims a platform name and collapses
// aliases. Both "Twitter" and "X" become "x". Unknown names pass through
// lowercased so callers can still key maps consistently.
func NormalizePlatform(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	if slug == "twitter" {
		return PlatformX
	}
	return slug
}

// KnownPlatform reports whether slug is one of the supported platforms.
func KnownPlatform(slug string) bool {
	_, ok := displayNames[slug]
	return ok
}

// DisplayName returns the document label for a platform slug.
// Unknown slugs are title-cased best effort.
func DisplayName(slug string) string {
	if name, ok := displayNames[slug]; ok {
		return name
	}
	if slug == "" {
		return ""
	}
	return strings.ToUpper(slug[:1]) + slug[1:]
}

// PlatformColor returns the banner color for a platform slug, or the
// given fallback when the platform is unknown.
func PlatformColor(slug, fallback string) string {
	if c, ok := platformColors[slug]; ok {
		return c
	}
	return fallback
}

// RenderOrder returns the fixed platform section order for documents:
// Instagram, LinkedIn, TikTok, Twitter, Facebook.
func RenderOrder() []string {
	out := make([]string, len(renderOrder))
	copy(out, renderOrder)
	return out
}

// orderedPlatforms returns the slugs with a caption or hashtag entry:
// the canonical five in render order, then any other platforms in the
// record's first-seen order. Extras missing from PlatformOrder (records
// assembled by hand) follow sorted, so output stays deterministic.
func orderedPlatforms(rec ContentRecord) []string {
	present := func(slug string) bool {
		_, hasCaption := rec.Captions[slug]
		_, hasTags := rec.Hashtags[slug]
		return hasCaption || hasTags
	}

	var out []string
	seen := map[string]bool{}
	for _, slug := range renderOrder {
		seen[slug] = true
		if present(slug) {
			out = append(out, slug)
		}
	}
	for _, slug := range rec.PlatformOrder {
		if !seen[slug] && present(slug) {
			seen[slug] = true
			out = append(out, slug)
		}
	}

	var rest []string
	for slug := range rec.Captions {
		if !seen[slug] {
			seen[slug] = true
			rest = append(rest, slug)
		}
	}
	for slug := range rec.Hashtags {
		if !seen[slug] {
			seen[slug] = true
			rest = append(rest, slug)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}
