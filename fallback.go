package contentpack

import "strings"

// paragraphCounts maps length buckets to body paragraph counts.
var paragraphCounts = map[string]int{
	LengthShort:  1,
	LengthMedium: 3,
	LengthLong:   5,
}

// fallbackCaptions are the per-platform default captions, parameterized on
// the topic.
func fallbackCaptions(topic string) map[string]string {
	t := titleCase(topic)
	return map[string]string{
		PlatformInstagram: t + " made simple. Here's a quick way to start today.",
		PlatformLinkedIn:  t + ": 3 practical steps to implement this week.",
		PlatformTikTok:    "One " + topic + " tactic I use to save time every week.",
		PlatformX:         topic + " in one line: simple, fast, actionable.",
		PlatformFacebook:  topic + " tips that help people move faster. Are you using them yet?",
	}
}

// fallbackTags are the per-platform default tags.
var fallbackTags = map[string][]string{
	PlatformInstagram: {"tips", "howto", "growth"},
	PlatformLinkedIn:  {"strategy", "operations", "leadership"},
	PlatformTikTok:    {"hacks", "tools", "workflow"},
	PlatformX:         {"insights", "threads"},
	PlatformFacebook:  {"community", "local"},
}

// FallbackContent builds a deterministic content pack when no provider
// produced output. The same request always yields the same record. User
// hashtags are cleaned and merged ahead of the platform defaults.
func FallbackContent(req Request) ContentRecord {
	topic := strings.TrimSpace(req.Topic)
	if topic == "" {
		topic = "Your Niche"
	}
	audience := strings.TrimSpace(req.Audience)
	if audience == "" {
		audience = "your audience"
	}

	n, ok := paragraphCounts[strings.ToLower(strings.TrimSpace(req.Length))]
	if !ok {
		n = paragraphCounts[LengthMedium]
	}
	bodyPool := []string{
		titleCase(topic) + " for " + audience + ": what it is and why it matters.",
		"Start simple: publish weekly, repurpose into 5-7 posts, and track one KPI.",
		"Keep one clear CTA per post so readers always know the next step.",
		"Use templates to stay consistent and save time.",
		"Review results every 2 weeks and double down on what works.",
	}

	var userTags []string
	for _, h := range req.Hashtags {
		if c := CleanTag(h); c != "" {
			userTags = append(userTags, c)
		}
	}

	platforms := req.Platforms
	if len(platforms) == 0 {
		platforms = RenderOrder()
	}

	captions := map[string]string{}
	hashtags := map[string][]string{}
	var order []string
	defaults := fallbackCaptions(topic)
	for _, p := range platforms {
		slug := NormalizePlatform(p)
		if slug == "" {
			continue
		}
		if _, dup := captions[slug]; dup {
			continue
		}
		caption, ok := defaults[slug]
		if !ok {
			caption = topic + ": quick takeaway for " + DisplayName(slug) + "."
		}
		captions[slug] = caption
		hashtags[slug] = DedupeTags(append(append([]string{}, userTags...), fallbackTags[slug]...))
		order = append(order, slug)
	}

	return ContentRecord{
		Blog: Blog{
			Headline: titleCase(topic),
			Intro:    topic + " can work for small teams too. Here's a simple way to start.",
			Body:     bodyPool[:n],
			Bullets: []string{
				"Publish consistently with a simple template",
				"Repurpose one piece into multiple posts",
				"Track one KPI for 2-4 weeks",
			},
			CTA: "Ready to put this into action today?",
		},
		Captions:      captions,
		Hashtags:      hashtags,
		PlatformOrder: order,
	}
}

// titleCase uppercases the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		if r[0] >= 'a' && r[0] <= 'z' {
			r[0] -= 'a' - 'A'
		}
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
