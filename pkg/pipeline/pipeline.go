// Package pipeline provides the batch side of papernet: turning a saved
// layout file into printable images.
//
// This package implements the load → layout → transfer → write pipeline
// used by the export, scope, forest and serve commands. By centralizing this
// logic, every entry point renders the same pixels for the same file.
//
// # Stages
//
//  1. Load: read the layout file and validate it
//  2. Source: render the curved-space scope image, or read one from disk
//  3. Layout: propagate the glue forest into flat positions
//  4. Transfer: copy the source texture onto the flat net and draw tabs
//  5. Write: encode the whole net, the source and every page tile
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	n, err := runner.Load("papermodeldata.txt")
//	if err != nil {
//	    return err
//	}
//	res, err := runner.Export(ctx, n, pipeline.ExportOptions{OutputDir: "out"})
//
// The source image is cached by topology hash; see [Runner.Scope].
package pipeline

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/papernet/pkg/errors"
	"github.com/matzehuels/papernet/pkg/render/flat/sink"
	"github.com/matzehuels/papernet/pkg/render/scope"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultPrefix names exported images: <prefix>-all.png and friends.
	DefaultPrefix = "papermodel"

	// DefaultSourceSize is the side of the source image when the layout
	// file does not set one.
	DefaultSourceSize = 4096

	// DefaultDetail is the geodesic subdivision depth of scope edges.
	DefaultDetail = 4

	// DefaultFormat is the default image format.
	DefaultFormat = sink.PNG
)

// Forest diagram formats.
const (
	ForestDOT = "dot"
	ForestSVG = "svg"
	ForestPNG = "png"
)

// ForestFormats lists the supported forest formats.
var ForestFormats = []string{ForestSVG, ForestPNG, ForestDOT}

// =============================================================================
// Options - Export Configuration
// =============================================================================

// ExportOptions configures [Runner.Export].
type ExportOptions struct {
	OutputDir  string      `json:"output_dir,omitempty"`
	Prefix     string      `json:"prefix,omitempty"`
	Format     sink.Format `json:"format,omitempty"`
	SourcePath string      `json:"source,omitempty"` // Image file to use instead of the scope render
	SourceSize int         `json:"source_size,omitempty"`
	Detail     int         `json:"detail,omitempty"`
	NoLabels   bool        `json:"no_labels,omitempty"`
	NoPages    bool        `json:"no_pages,omitempty"`
	Refresh    bool        `json:"refresh,omitempty"` // Re-render the source even when cached

	Logger *log.Logger `json:"-"`
}

// SetDefaults fills unset fields. sourceSize is the net's own setting.
func (o *ExportOptions) SetDefaults(sourceSize int) {
	if o.OutputDir == "" {
		o.OutputDir = "."
	}
	if o.Prefix == "" {
		o.Prefix = DefaultPrefix
	}
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	if o.SourceSize <= 0 {
		o.SourceSize = sourceSize
	}
	if o.SourceSize <= 0 {
		o.SourceSize = DefaultSourceSize
	}
	if o.Detail <= 0 {
		o.Detail = DefaultDetail
	}
}

// Validate checks the fields a user can get wrong.
func (o *ExportOptions) Validate() error {
	if err := errors.ValidatePrefix(o.Prefix); err != nil {
		return err
	}
	if _, err := sink.ParseFormat(string(o.Format)); err != nil {
		return err
	}
	if o.SourcePath != "" {
		if err := errors.ValidatePath(o.SourcePath); err != nil {
			return err
		}
	}
	return nil
}

// ScopeOptions configures [Runner.Scope].
type ScopeOptions struct {
	Size    int
	Detail  int
	NoEdges bool
	Refresh bool
}

func (o ScopeOptions) render() []scope.Option {
	opts := []scope.Option{scope.WithDetail(o.Detail)}
	if o.NoEdges {
		opts = append(opts, scope.WithoutEdges())
	}
	return opts
}

// ForestOptions configures [Runner.Forest].
type ForestOptions struct {
	Format   string
	Detailed bool
	Tabs     bool
}

// =============================================================================
// Results
// =============================================================================

// Result describes a finished export.
type Result struct {
	// Files lists every image written, whole net first.
	Files []string

	// Stats contains timing and size information.
	Stats Stats

	// SourceHit reports whether the source image came from cache.
	SourceHit bool
}

// Stats contains export statistics.
type Stats struct {
	Cells      int
	Roots      int
	Tabs       int
	Pages      int
	Width      int
	Height     int
	Leaves     int // Rasterizer leaf triangles
	Dropped    int // Rasterizer subtrees dropped as degenerate
	SourceTime time.Duration
	RenderTime time.Duration
	WriteTime  time.Duration
}
