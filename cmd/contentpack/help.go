package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: contentpack <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  generate   Generate a content pack and render it to PDF")
	fmt.Fprintln(w, "  doctor     Check Chrome, fonts, and provider credentials")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'contentpack help <command>' for details on a specific command.")
}

// printGenerateUsage prints usage for the generate command.
func printGenerateUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: contentpack generate --topic <topic> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate a marketing content pack (blog, captions, hashtags) and")
	fmt.Fprintln(w, "render it as a branded PDF.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Content:")
	fmt.Fprintln(w, "  -t, --topic <s>        Content topic (required)")
	fmt.Fprintln(w, "      --audience <s>     Target audience")
	fmt.Fprintln(w, "      --tone <s>         Tone of voice (default: Professional)")
	fmt.Fprintln(w, "      --style <s>        Content style, e.g. B2B, B2C")
	fmt.Fprintln(w, "  -l, --length <s>       Blog length: short, medium, long")
	fmt.Fprintln(w, "  -p, --platforms <s>    Platforms, e.g. instagram,linkedin,tiktok")
	fmt.Fprintln(w, "      --hashtags <s>     Extra hashtags merged into platform tags")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Branding:")
	fmt.Fprintln(w, "      --brand-name <s>   Brand name shown in the header")
	fmt.Fprintln(w, "      --brand-site <s>   Brand website shown in the header")
	fmt.Fprintln(w, "      --brand-logo <p>   Logo image path")
	fmt.Fprintln(w, "      --footer-text <s>  Footer text on every page")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <dir>     Output directory (default: output)")
	fmt.Fprintln(w, "  -c, --config <name>    Config file name or path")
	fmt.Fprintln(w, "      --asset-path <p>   Custom asset directory")
	fmt.Fprintln(w, "      --timeout <d>      Render timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w, "      --offline          Skip providers and use built-in content")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet            Only show errors")
	fmt.Fprintln(w, "  -v, --verbose          Show provider and render detail")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Providers are taken from the config order and the API keys present")
	fmt.Fprintln(w, "in the environment: GEMINI_API_KEY, OPENROUTER_API_KEY, OPENAI_API_KEY.")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "generate":
		printGenerateUsage(env.Stdout)
	case "doctor":
		fmt.Fprintln(env.Stdout, "Usage: contentpack doctor [--json]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Check Chrome, fonts, provider credentials, and the temp directory.")
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: contentpack version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: contentpack help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
