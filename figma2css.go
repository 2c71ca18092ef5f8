package figma2css

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/gosimple/slug"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kataras/figma2css/pkg/emitter"
	"github.com/kataras/figma2css/pkg/extractor"
	"github.com/kataras/figma2css/pkg/figma"
	"github.com/kataras/figma2css/pkg/formatter"
)

// Version is the current release of figma2css.
const Version = "0.1.0"

const (
	// DefaultOutputDir is where generated files and the cache go unless told otherwise.
	DefaultOutputDir = "figma_output"
	// DefaultCacheFile is the cache path used when Options.CacheFile is empty.
	DefaultCacheFile = DefaultOutputDir + "/cache.json"
)

// ErrNoComponents is returned when no page of the document holds a component or a
// component set.
var ErrNoComponents = errors.New("no components found")

// Options configures a run.
type Options struct {
	AccessToken string
	File        string // Figma file URL or bare file key.
	UseCache    bool   // read CacheFile instead of calling the API.
	CacheFile   string
	Concurrency int    // components walked in parallel; <= 0 means GOMAXPROCS.
	Logger      Logger // nil = no logging
	// Trace receives per-node diagnostics such as unresolved instances and skipped
	// subtrees. nil = discarded.
	Trace *zap.Logger
}

// Logger receives progress messages. A nil Logger means silent operation.
// A *zap.SugaredLogger satisfies it.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Result contains the generated components and the shared token table.
type Result struct {
	FileName   string
	Components []emitter.Component
	Tokens     *extractor.Table
}

func (o *Options) logInfo(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Infof(f, a...)
	}
}

func (o *Options) logWarn(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Warnf(f, a...)
	}
}

// Run loads the Figma file, from the API or from the cache, and transforms it.
// Fetched files are written to the cache for later runs.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.CacheFile == "" {
		opts.CacheFile = DefaultCacheFile
	}

	data, err := load(ctx, &opts)
	if err != nil {
		return nil, err
	}

	opts.logInfo("Parsing document...")
	file, err := figma.ParseFile(data)
	if err != nil {
		return nil, errors.Wrap(err, "parse file")
	}
	opts.logInfo("File: %s", file.Name)

	return Transform(ctx, file, opts)
}

func load(ctx context.Context, opts *Options) ([]byte, error) {
	if opts.UseCache {
		opts.logInfo("Reading cached file %s...", opts.CacheFile)
		data, err := os.ReadFile(opts.CacheFile)
		if err != nil {
			return nil, errors.WithHint(errors.Wrap(err, "read cache"), "run once without --cache to fetch the file")
		}
		return data, nil
	}

	if opts.AccessToken == "" {
		return nil, errors.New("access token is required")
	}

	fileKey, err := figma.ResolveFileKey(opts.File)
	if err != nil {
		return nil, errors.Wrap(err, "resolve file key")
	}
	opts.logInfo("File key: %s", fileKey)

	opts.logInfo("Fetching file data from Figma...")
	data, err := figma.NewClient(opts.AccessToken).FetchFile(ctx, fileKey)
	if err != nil {
		return nil, errors.Wrap(err, "fetch file")
	}

	if err := writeFile(opts.CacheFile, data); err != nil {
		opts.logWarn("Could not write cache: %v", err)
	} else {
		opts.logInfo("Cached file data to %s", opts.CacheFile)
	}

	return data, nil
}

// Transform extracts the design tokens of file and emits every top-level component.
// Components are walked concurrently; the result keeps document order.
func Transform(ctx context.Context, file *figma.File, opts Options) (*Result, error) {
	roots := TopLevelComponents(file.Document)
	if len(roots) == 0 {
		return nil, errors.WithHintf(ErrNoComponents,
			"file %q has no COMPONENT or COMPONENT_SET directly on a page", file.Name)
	}
	opts.logInfo("Found %d top-level component(s)", len(roots))

	tokens := extractor.NewTable()
	extractor.Extract(file.Document, file.Styles, tokens)
	opts.logInfo("Extracted %d design token(s)", tokens.Len())

	limit := opts.Concurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	walker := emitter.NewWalker(file, tokens, opts.Trace)
	slots := make([]emitter.Component, len(roots))
	emitted := make([]bool, len(roots))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, root := range roots {
		i, root := i, root
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			slots[i], emitted[i] = walker.Component(root)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "emit components")
	}

	components := make([]emitter.Component, 0, len(slots))
	for i, c := range slots {
		if emitted[i] {
			components = append(components, c)
		}
	}

	opts.logInfo("Resolving component includes...")
	return &Result{
		FileName:   file.Name,
		Components: emitter.Assemble(components),
		Tokens:     tokens,
	}, nil
}

// TopLevelComponents returns the components and component sets placed directly on a
// page of the document, in document order.
func TopLevelComponents(document figma.Node) []figma.Node {
	if document == nil {
		return nil
	}

	var roots []figma.Node
	for _, page := range document.Common().Children {
		if _, ok := page.(*figma.Canvas); !ok {
			continue
		}
		for _, child := range page.Common().Children {
			frame, ok := figma.FrameOf(child)
			if ok && (frame.IsComponent() || frame.IsComponentSet()) {
				roots = append(roots, child)
			}
		}
	}

	return roots
}

// WriteFiles writes one directory per component under dir/components, holding its
// stylesheet and markup, plus dir/theme.css with the design tokens. Empty outputs are
// skipped. Every failure is collected; the written paths are returned either way.
func (r *Result) WriteFiles(dir string) ([]string, error) {
	var (
		written []string
		errs    error
	)

	write := func(path, content string) {
		if content == "" {
			return
		}
		if err := writeFile(path, []byte(content)); err != nil {
			errs = multierr.Append(errs, err)
			return
		}
		written = append(written, path)
	}

	if r.Tokens.Len() > 0 {
		write(filepath.Join(dir, "theme.css"), formatter.ThemeCSS(r.Tokens))
	}

	used := make(map[string]int, len(r.Components))
	for _, c := range r.Components {
		name := componentSlug(c, used)
		base := filepath.Join(dir, "components", name, name)

		css := formatter.CSS(c.Rules)
		if n, err := formatter.Inspect(css); err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "component %q", c.Title))
		} else if n != len(c.Rules) {
			errs = multierr.Append(errs, errors.Newf("component %q: stylesheet has %d rules, want %d", c.Title, n, len(c.Rules)))
		} else {
			write(base+".css", css)
		}

		markup, err := formatter.HTML(c.Markup)
		if err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "component %q", c.Title))
			continue
		}
		write(base+".html", markup)
	}

	return written, errs
}

// Report returns the markdown summary of the run.
func (r *Result) Report() string {
	return formatter.ToMarkdown(r.FileName, r.Components, r.Tokens)
}

// componentSlug returns a file-system safe, unique name for the component.
func componentSlug(c emitter.Component, used map[string]int) string {
	name := slug.Make(c.Title)
	if name == "" {
		name = slug.Make(c.Name)
	}
	if name == "" {
		name = "component"
	}

	used[name]++
	if n := used[name]; n > 1 {
		name += "-" + strconv.Itoa(n)
	}
	return name
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "create directory for %s", path)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return nil
}
