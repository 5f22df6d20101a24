// Package contentpack turns model-generated marketing content into branded
// PDF documents.
//
// The pipeline has three stages: a provider layer that asks an LLM for a
// content pack (with a deterministic fallback when every provider fails), a
// normalization layer that tolerates the many shapes models return, and a
// two-tier renderer that prefers headless Chrome but always degrades to a
// dependency-free PDF writer.
//
// # Quick Start
//
//	svc := contentpack.New(contentpack.WithProviders(router))
//	defer svc.Close()
//
//	doc, err := svc.ProduceDocument(ctx, contentpack.Request{
//		Topic:     "local SEO",
//		Platforms: []string{"instagram", "linkedin"},
//	})
//
// ProduceDocument never loses content: unparseable provider output degrades
// to the raw text, missing provider output degrades to generated fallback
// content, and a broken Chrome install degrades to the minimal PDF engine.
//
// # Hashtag Rules
//
// Hashtags are cleaned, deduplicated, stripped of tags already present
// inline in the caption, and clamped to per-platform limits. See
// EnforceHashtagRules.
package contentpack
