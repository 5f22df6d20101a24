package contentpack

import (
	"os"
	"strings"
)

// defaultPromptTemplate instructs the model to answer with the exact JSON
// structure the normalizer sniffs for. Placeholders use {{name}} syntax.
const defaultPromptTemplate = `You are a professional marketing strategist and copywriter.

Generate a branded content pack for the following:
Topic: {{topic}}
Tone: {{tone}}
Audience: {{audience}}{{style_line}}
Preferred Word Count: {{length}}
Platforms: {{platforms}}

Return ONLY valid JSON with this exact structure:
{
  "blog": {
    "title": "string",
    "intro": "string",
    "body": ["string", "string"],
    "bullets": ["string", "string"],
    "CTA": "string"
  },
  "captions_by_platform": {
    "Instagram": { "text": "string", "hashtags": ["tag1","tag2"] },
    "LinkedIn": { "text": "string", "hashtags": ["tag1","tag2"] },
    "TikTok": { "text": "string", "hashtags": ["tag1","tag2"] },
    "Twitter": { "text": "string", "hashtags": ["tag1","tag2"] },
    "Facebook": { "text": "string", "hashtags": ["tag1","tag2"] }
  },
  "hashtags": {
    "Instagram": ["tag1","tag2"],
    "LinkedIn": ["tag1","tag2"],
    "TikTok": ["tag1","tag2"],
    "Twitter": ["tag1","tag2"],
    "Facebook": ["tag1","tag2"]
  }
}

Rules:
- Keep captions concise and platform-appropriate.
- Include emojis only where natural (Instagram/TikTok). Avoid on LinkedIn unless minimal.
- Hashtags should be relevant, non-generic, and within platform best practices.
- Do NOT include markdown fences or explanations; output JSON only.
`

// promptTemplateCandidates are checked in order by loadPromptTemplate.
var promptTemplateCandidates = []string{
	"contentpack_prompt.txt",
	"prompts/contentpack_prompt.txt",
}

// loadPromptTemplate returns the first readable template file, or the
// built-in template when none exists.
func loadPromptTemplate() string {
	for _, path := range promptTemplateCandidates {
		data, err := os.ReadFile(path) // #nosec G304 -- fixed candidate list
		if err == nil && len(data) > 0 {
			return string(data)
		}
	}
	return defaultPromptTemplate
}

// BuildPrompt renders the provider prompt for a request using the built-in
// template or a template file override.
func BuildPrompt(req Request) string {
	return BuildPromptWithTemplate(loadPromptTemplate(), req)
}

// BuildPromptWithTemplate fills {{name}} placeholders in tmpl from the
// request, applying the documented defaults for empty fields.
func BuildPromptWithTemplate(tmpl string, req Request) string {
	tone := req.Tone
	if tone == "" {
		tone = "Professional"
	}
	audience := req.Audience
	if audience == "" {
		audience = "B2C"
	}
	length := req.Length
	if length == "" {
		length = LengthMedium
	}

	var names []string
	for _, p := range req.Platforms {
		if slug := NormalizePlatform(p); slug != "" {
			names = append(names, DisplayName(slug))
		}
	}
	platforms := strings.Join(names, ", ")
	if platforms == "" {
		platforms = "Instagram, LinkedIn"
	}

	styleLine := ""
	if req.Style != "" {
		styleLine = "\nPost Style: " + req.Style
	}

	r := strings.NewReplacer(
		"{{topic}}", req.Topic,
		"{{tone}}", tone,
		"{{audience}}", audience,
		"{{style_line}}", styleLine,
		"{{length}}", length,
		"{{platforms}}", platforms,
	)
	return r.Replace(tmpl)
}
