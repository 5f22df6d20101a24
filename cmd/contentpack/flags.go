package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// contentFlags holds flags describing the requested content pack.
type contentFlags struct {
	topic     string
	audience  string
	tone      string
	style     string
	length    string
	platforms []string
	hashtags  []string
}

// brandFlags holds branding overrides. Empty values leave the config or
// default branding untouched.
type brandFlags struct {
	name   string
	site   string
	logo   string
	footer string
}

// generateFlags holds all flags for the generate command.
type generateFlags struct {
	common    commonFlags
	content   contentFlags
	brand     brandFlags
	output    string
	timeout   string
	assetPath string
	offline   bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show provider and render detail")
}

// addContentFlags adds content request flags to a FlagSet.
func addContentFlags(fs *flag.FlagSet, f *contentFlags) {
	fs.StringVarP(&f.topic, "topic", "t", "", "content topic (required)")
	fs.StringVar(&f.audience, "audience", "", "target audience")
	fs.StringVar(&f.tone, "tone", "", "tone of voice (default: Professional)")
	fs.StringVar(&f.style, "style", "", "content style, e.g. B2B, B2C")
	fs.StringVarP(&f.length, "length", "l", "", "blog length: short, medium, long")
	fs.StringSliceVarP(&f.platforms, "platforms", "p", nil, "platforms to target, e.g. instagram,linkedin")
	fs.StringSliceVar(&f.hashtags, "hashtags", nil, "extra hashtags merged into platform tags")
}

// addBrandFlags adds branding override flags to a FlagSet.
func addBrandFlags(fs *flag.FlagSet, f *brandFlags) {
	fs.StringVar(&f.name, "brand-name", "", "brand name shown in the header")
	fs.StringVar(&f.site, "brand-site", "", "brand website shown in the header")
	fs.StringVar(&f.logo, "brand-logo", "", "logo image path")
	fs.StringVar(&f.footer, "footer-text", "", "footer text on every page")
}

// parseGenerateFlags parses generate command flags.
func parseGenerateFlags(args []string) (*generateFlags, error) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	f := &generateFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output directory (default: output)")
	fs.StringVar(&f.timeout, "timeout", "", "render timeout (e.g., 30s, 2m)")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	fs.BoolVar(&f.offline, "offline", false, "skip providers and use built-in content")

	addCommonFlags(fs, &f.common)
	addContentFlags(fs, &f.content)
	addBrandFlags(fs, &f.brand)

	fs.Usage = func() { printGenerateUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}
