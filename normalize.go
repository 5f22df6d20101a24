package contentpack

import (
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
)

// FallbackHeadline is used when provider output carries no usable headline.
const FallbackHeadline = "Generated Content"

// StripCodeFences removes a surrounding markdown code fence. The opening
// fence line is dropped whole so language hints like ```json disappear too.
// Text without fences passes through untouched.
func StripCodeFences(s string) string {
	t := strings.TrimSpace(s)
	if !strings.HasPrefix(t, "```") {
		return t
	}
	if idx := strings.IndexByte(t, '\n'); idx != -1 {
		t = t[idx+1:]
	} else {
		t = strings.TrimPrefix(t, "```")
	}
	t = strings.TrimSpace(t)
	t = strings.TrimSuffix(t, "```")
	return strings.TrimSpace(t)
}

// ExtractJSONBlob slices text from the first '{' to the last '}'. Models
// often wrap JSON in prose; the slice recovers the object without parsing
// the chatter around it.
func ExtractJSONBlob(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return s[start : end+1], true
}

// NormalizeModelOutput parses raw provider output into a ContentRecord.
// It tolerates the shape drift observed across models: key aliases, string
// bodies, captions as plain strings or {text, hashtags} objects, and prose
// around the JSON. Output that cannot be parsed at all is never discarded:
// it becomes the intro of a degraded record under FallbackHeadline.
func NormalizeModelOutput(raw string) ContentRecord {
	text := StripCodeFences(raw)

	blob, ok := ExtractJSONBlob(text)
	if !ok || !gjson.Valid(blob) {
		return degradedRecord(text)
	}
	root := gjson.Parse(blob)
	if !root.IsObject() {
		return degradedRecord(text)
	}

	blog := pickObject(root, "blog", "article")
	if !blog.Exists() {
		// Some models skip the wrapper and emit blog fields at top level.
		blog = root
	}

	rec := ContentRecord{
		Blog: Blog{
			Headline: firstString(blog, "headline", "title"),
			Intro:    firstString(blog, "intro", "introduction"),
			Body:     stringList(blog, "body"),
			Bullets:  stringList(blog, "bullets", "points"),
			CTA:      firstString(blog, "cta", "CTA"),
		},
		Captions: map[string]string{},
		Hashtags: map[string][]string{},
	}
	if rec.Blog.Headline == "" {
		rec.Blog.Headline = FallbackHeadline
	}

	// Document order of the platform keys drives section order for
	// platforms outside the canonical five.
	noted := map[string]bool{}
	note := func(slug string) {
		if !noted[slug] {
			noted[slug] = true
			rec.PlatformOrder = append(rec.PlatformOrder, slug)
		}
	}

	captionTags := map[string][]string{}
	captions := pickObject(root, "captions_by_platform", "captions")
	if captions.IsObject() {
		captions.ForEach(func(key, value gjson.Result) bool {
			slug := NormalizePlatform(key.String())
			if slug == "" {
				return true
			}
			switch {
			case value.Type == gjson.String:
				rec.Captions[slug] = value.String()
				note(slug)
			case value.IsObject():
				if txt := firstString(value, "text", "caption"); txt != "" {
					rec.Captions[slug] = txt
					note(slug)
				}
				if tags := tagList(value.Get("hashtags")); len(tags) > 0 {
					captionTags[slug] = tags
					note(slug)
				}
			}
			return true
		})
	}

	if hashtags := root.Get("hashtags"); hashtags.IsObject() {
		hashtags.ForEach(func(key, value gjson.Result) bool {
			slug := NormalizePlatform(key.String())
			if slug == "" {
				return true
			}
			if tags := tagList(value); len(tags) > 0 {
				rec.Hashtags[slug] = tags
				note(slug)
			}
			return true
		})
	} else {
		// No top-level hashtags mapping: fall back to the tags riding on
		// caption blocks, best effort only.
		rec.Hashtags = captionTags
	}

	applyCasing(&rec)
	return rec
}

// degradedRecord wraps unusable provider output so the text still reaches
// the document.
func degradedRecord(text string) ContentRecord {
	return ContentRecord{
		Blog: Blog{
			Headline: FallbackHeadline,
			Intro:    NormalizeCasing(text),
		},
		Captions: map[string]string{},
		Hashtags: map[string][]string{},
	}
}

// pickObject returns the first existing object-valued key.
func pickObject(r gjson.Result, keys ...string) gjson.Result {
	for _, k := range keys {
		if v := r.Get(k); v.IsObject() {
			return v
		}
	}
	return gjson.Result{}
}

// firstString returns the first non-empty string-valued key.
func firstString(r gjson.Result, keys ...string) string {
	for _, k := range keys {
		if v := r.Get(k); v.Type == gjson.String && v.String() != "" {
			return strings.TrimSpace(v.String())
		}
	}
	return ""
}

// stringList coerces the first existing key to a list of strings.
// A plain string becomes a one-element list; non-string array elements are
// dropped rather than stringified.
func stringList(r gjson.Result, keys ...string) []string {
	for _, k := range keys {
		v := r.Get(k)
		if !v.Exists() {
			continue
		}
		switch {
		case v.Type == gjson.String:
			if s := strings.TrimSpace(v.String()); s != "" {
				return []string{s}
			}
		case v.IsArray():
			var out []string
			for _, item := range v.Array() {
				if item.Type == gjson.String {
					if s := strings.TrimSpace(item.String()); s != "" {
						out = append(out, s)
					}
				}
			}
			if len(out) > 0 {
				return out
			}
		}
	}
	return nil
}

// tagSplitter separates hashtags packed into one string.
var tagSplitter = regexp.MustCompile(`[\s,]+`)

// tagList coerces a hashtags value (array or packed string) to a list.
// Tags are left raw here; cleaning happens in EnforceHashtagRules.
func tagList(v gjson.Result) []string {
	switch {
	case v.IsArray():
		var out []string
		for _, item := range v.Array() {
			if item.Type == gjson.String && strings.TrimSpace(item.String()) != "" {
				out = append(out, strings.TrimSpace(item.String()))
			}
		}
		return out
	case v.Type == gjson.String:
		var out []string
		for _, t := range tagSplitter.Split(v.String(), -1) {
			if t != "" {
				out = append(out, t)
			}
		}
		return out
	}
	return nil
}

// applyCasing runs NormalizeCasing over every text field of a record.
func applyCasing(rec *ContentRecord) {
	rec.Blog.Headline = NormalizeCasing(rec.Blog.Headline)
	rec.Blog.Intro = NormalizeCasing(rec.Blog.Intro)
	rec.Blog.CTA = NormalizeCasing(rec.Blog.CTA)
	for i, p := range rec.Blog.Body {
		rec.Blog.Body[i] = NormalizeCasing(p)
	}
	for i, b := range rec.Blog.Bullets {
		rec.Blog.Bullets[i] = NormalizeCasing(b)
	}
	for k, c := range rec.Captions {
		rec.Captions[k] = NormalizeCasing(c)
	}
}
