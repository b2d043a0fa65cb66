package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	_ "image/jpeg"
	"image/png"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gogpu/gg"
	_ "golang.org/x/image/bmp"

	"github.com/matzehuels/papernet/pkg/cache"
	"github.com/matzehuels/papernet/pkg/errors"
	"github.com/matzehuels/papernet/pkg/fonts"
	"github.com/matzehuels/papernet/pkg/hyperbolic"
	"github.com/matzehuels/papernet/pkg/layout"
	"github.com/matzehuels/papernet/pkg/netfile"
	"github.com/matzehuels/papernet/pkg/observability"
	"github.com/matzehuels/papernet/pkg/render/flat"
	"github.com/matzehuels/papernet/pkg/render/flat/sink"
	"github.com/matzehuels/papernet/pkg/render/nodelink"
	"github.com/matzehuels/papernet/pkg/render/scope"
	"github.com/matzehuels/papernet/pkg/topology"
)

// Runner encapsulates pipeline execution with caching.
// Both the CLI and the preview server use it.
//
// The Runner is stateless except for the cache and logger. Callers hand
// each call its own net; the runner never keeps one.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Load reads and validates the layout file at path. A net that was never
// created is reported as [netfile.ErrNothingToLoad].
func (r *Runner) Load(path string) (*netfile.Net, error) {
	n, err := netfile.Load(path)
	if err != nil {
		return nil, err
	}
	if !n.Created || n.Store.Len() == 0 {
		return nil, netfile.ErrNothingToLoad
	}
	if err := n.Validate(); err != nil {
		return nil, err
	}
	r.Logger.Debug("loaded layout", "path", path, "cells", n.Store.Len(), "edge", n.EdgeLength)
	return n, nil
}

// Engine lays n out and returns the engine over its store.
func Engine(n *netfile.Net) (*layout.Engine, error) {
	g := layout.New(n.Store, n.EdgeLength)
	if err := g.Propagate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Export renders n and writes the whole net, the source image and the page
// tiles to opts.OutputDir. Tab labels are reassigned on n.
func (r *Runner) Export(ctx context.Context, n *netfile.Net, opts ExportOptions) (res *Result, err error) {
	opts.SetDefaults(n.SourceSize)
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = r.Logger
	}

	start := time.Now()
	cells := n.Store.Len()
	observability.Pipeline().OnExportStart(ctx, cells)
	defer func() {
		files := 0
		if res != nil {
			files = len(res.Files)
		}
		observability.Pipeline().OnExportComplete(ctx, cells, files, time.Since(start), err)
	}()

	res = &Result{Stats: Stats{Cells: cells, Roots: len(n.Store.Roots())}}

	// Stage 1: Source
	sourceStart := time.Now()
	src, hit, err := r.source(ctx, n, opts)
	if err != nil {
		return nil, err
	}
	res.SourceHit = hit
	res.Stats.SourceTime = time.Since(sourceStart)
	logger.Info("prepared source image",
		"size", src.Width(),
		"cached", hit,
		"duration", res.Stats.SourceTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Layout and transfer
	renderStart := time.Now()
	g, err := Engine(n)
	if err != nil {
		return nil, err
	}
	pm, st, err := renderNet(g, n, hyperbolic.NewSampler(src), opts)
	if err != nil {
		return nil, err
	}
	res.Stats.Tabs = st.Tabs
	res.Stats.Width, res.Stats.Height = st.Width, st.Height
	res.Stats.Leaves, res.Stats.Dropped = st.Transfer.Leaves, st.Transfer.Dropped
	res.Stats.RenderTime = time.Since(renderStart)
	logger.Info("rendered net",
		"cells", cells,
		"tabs", st.Tabs,
		"width", st.Width,
		"height", st.Height,
		"duration", res.Stats.RenderTime)
	if st.Transfer.Dropped > 0 {
		logger.Warn("texture transfer dropped degenerate triangles", "count", st.Transfer.Dropped)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 3: Write
	writeStart := time.Now()
	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeSaveFailed, err, "create %s", opts.OutputDir)
	}
	write := func(stem string, img image.Image) error {
		path, err := sink.WriteFile(opts.OutputDir, stem, img, opts.Format)
		if err != nil {
			return errors.Wrap(errors.ErrCodeSaveFailed, err, "write %s", stem+opts.Format.Ext())
		}
		res.Files = append(res.Files, path)
		observability.Pipeline().OnFileWritten(ctx, path)
		logger.Debug("wrote image", "path", path)
		return nil
	}

	if err := write(opts.Prefix+"-all", pm); err != nil {
		return nil, err
	}
	if err := write(opts.Prefix+"-source", src); err != nil {
		return nil, err
	}
	if !opts.NoPages {
		for _, p := range flat.Pages(pm, n.PagesX, n.PagesY) {
			if err := write(p.Name(opts.Prefix), p.Image); err != nil {
				return nil, err
			}
			res.Stats.Pages++
		}
	}
	res.Stats.WriteTime = time.Since(writeStart)
	logger.Info("wrote images",
		"files", len(res.Files),
		"dir", opts.OutputDir,
		"duration", res.Stats.WriteTime)

	return res, nil
}

// RenderNet lays n out and renders the flat net without writing anything.
func (r *Runner) RenderNet(ctx context.Context, n *netfile.Net, opts ExportOptions) (*gg.Pixmap, error) {
	opts.SetDefaults(n.SourceSize)
	src, _, err := r.source(ctx, n, opts)
	if err != nil {
		return nil, err
	}
	g, err := Engine(n)
	if err != nil {
		return nil, err
	}
	pm, _, err := renderNet(g, n, hyperbolic.NewSampler(src), opts)
	return pm, err
}

func renderNet(g *layout.Engine, n *netfile.Net, src flat.Sampler, opts ExportOptions) (*gg.Pixmap, flat.Stats, error) {
	scale := float64(n.Scale)
	if scale <= 0 {
		scale = 1
	}
	ro := []flat.Option{
		flat.WithCanvas(n.CanvasW, n.CanvasH),
		flat.WithScale(scale),
	}
	if !opts.NoLabels {
		face, err := fonts.Face(flat.LabelSize(g.EdgeLength * scale))
		if err != nil {
			return nil, flat.Stats{}, err
		}
		ro = append(ro, flat.WithFace(face))
	}
	pm, st := flat.Render(g, src, ro...)
	return pm, st, nil
}

func (r *Runner) source(ctx context.Context, n *netfile.Net, opts ExportOptions) (*gg.Pixmap, bool, error) {
	if opts.SourcePath != "" {
		pm, err := ReadImage(opts.SourcePath)
		return pm, false, err
	}
	return r.ScopeWithCacheInfo(ctx, n, ScopeOptions{
		Size:    opts.SourceSize,
		Detail:  opts.Detail,
		Refresh: opts.Refresh,
	})
}

// ReadImage decodes a PNG, JPEG or BMP file into a pixmap.
func ReadImage(path string) (*gg.Pixmap, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open source image %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open source image %s", path)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode source image %s", path)
	}
	return gg.FromImage(img), nil
}

// ScopeWithCacheInfo renders the source-space view of n with caching and
// returns cache hit info.
func (r *Runner) ScopeWithCacheInfo(ctx context.Context, n *netfile.Net, opts ScopeOptions) (*gg.Pixmap, bool, error) {
	if opts.Size <= 0 {
		opts.Size = DefaultSourceSize
	}
	if opts.Detail <= 0 {
		opts.Detail = DefaultDetail
	}

	key := r.Keyer.SourceKey(TopologyHash(n.Store), cache.SourceKeyOpts{
		Size:   opts.Size,
		Detail: opts.Detail,
		Edges:  !opts.NoEdges,
	})

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			if img, err := png.Decode(bytes.NewReader(data)); err == nil {
				observability.Cache().OnCacheHit(ctx, "source")
				return gg.FromImage(img), true, nil
			}
		}
	}
	observability.Cache().OnCacheMiss(ctx, "source")

	start := time.Now()
	observability.Pipeline().OnScopeStart(ctx, n.Store.Len(), opts.Size)
	pm := scope.Render(n.Store, opts.Size, opts.render()...)
	observability.Pipeline().OnScopeComplete(ctx, n.Store.Len(), opts.Size, time.Since(start), nil)
	r.Logger.Debug("rendered scope", "size", opts.Size, "duration", time.Since(start))

	var buf bytes.Buffer
	if err := png.Encode(&buf, pm); err == nil {
		if err := r.Cache.Set(ctx, key, buf.Bytes(), cache.TTLSource); err == nil {
			observability.Cache().OnCacheSet(ctx, "source", buf.Len())
		}
	}
	return pm, false, nil
}

// Scope is a convenience wrapper that calls ScopeWithCacheInfo and discards the cache hit info.
func (r *Runner) Scope(ctx context.Context, n *netfile.Net, opts ScopeOptions) (*gg.Pixmap, error) {
	pm, _, err := r.ScopeWithCacheInfo(ctx, n, opts)
	return pm, err
}

// Forest renders the glue forest of n as a DOT, SVG or PNG diagram.
// SVG and PNG diagrams are cached, DOT output is not.
func (r *Runner) Forest(ctx context.Context, n *netfile.Net, opts ForestOptions) ([]byte, error) {
	if opts.Format == "" {
		opts.Format = ForestSVG
	}
	if err := errors.ValidateFormat(opts.Format, ForestFormats...); err != nil {
		return nil, err
	}

	if opts.Tabs {
		flat.AssignLabels(n.Store)
	}
	dot := nodelink.ToDOT(n.Store, nodelink.Options{Detailed: opts.Detailed, Tabs: opts.Tabs})
	if opts.Format == ForestDOT {
		return []byte(dot), nil
	}

	key := r.Keyer.ForestKey(TopologyHash(n.Store), cache.ForestKeyOpts{
		Format:   opts.Format,
		Detailed: opts.Detailed,
		Tabs:     opts.Tabs,
	})
	if !opts.Detailed {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "forest")
			return data, nil
		}
		observability.Cache().OnCacheMiss(ctx, "forest")
	}

	var data []byte
	var err error
	if opts.Format == ForestPNG {
		data, err = nodelink.RenderPNG(ctx, dot)
	} else {
		data, err = nodelink.RenderSVG(ctx, dot)
	}
	if err != nil {
		return nil, err
	}

	// Detailed labels carry flat positions, which the key does not cover.
	if !opts.Detailed {
		if err := r.Cache.Set(ctx, key, data, cache.TTLForest); err == nil {
			observability.Cache().OnCacheSet(ctx, "forest", len(data))
		}
	}
	return data, nil
}

// TopologyHash hashes the adjacency, anchors and glue parents of s. Flat
// placement is left out so that moving cells keeps cached sources valid.
func TopologyHash(s *topology.Store) string {
	parents := make([]int, s.Len())
	for i, c := range s.Cells() {
		parents[i] = c.Parent
	}
	data, _ := json.Marshal(struct {
		Cells   topology.Table `json:"cells"`
		Parents []int          `json:"parents"`
	}{topology.TableOf(s), parents})
	return cache.Hash(data)
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
