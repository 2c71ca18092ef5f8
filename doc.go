// Package figma2css turns the components of a Figma file into plain CSS and
// HTML: one stylesheet and one markup file per top-level component or
// component set, plus a shared theme.css with the design tokens the
// components reference.
//
// The CLI lives in cmd/figma2css; this root package exposes the same
// pipeline as a Go API.
//
// # Quick start
//
//	result, err := figma2css.Run(ctx, figma2css.Options{
//	    AccessToken: os.Getenv("FIGMA_TOKEN"),
//	    File:        "https://www.figma.com/design/ABC123/My-Design",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if _, err := result.WriteFiles("figma_output"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Cache
//
// Every fetched file is stored in [Options.CacheFile]
// (figma_output/cache.json by default). Set [Options.UseCache] to work
// from that copy without calling the API.
//
// # Logging
//
// Pass a [Logger] implementation in [Options.Logger] to receive progress
// messages. A nil Logger silences all output. Per-node diagnostics, such as
// instances whose component is missing or subtrees skipped because they
// could not be emitted, go to the zap logger in [Options.Trace].
//
//	logger, _ := zap.NewDevelopment()
//	opts.Logger = logger.Sugar()
//	opts.Trace = logger
//
// # Components and instances
//
// Selectors follow the authored names: "Card" becomes .card and a variant
// named "State=Hover" of the set "Button" becomes .button:hover. Instances
// contribute markup only; the rules of the component they reference are
// appended to the including component's stylesheet.
package figma2css
