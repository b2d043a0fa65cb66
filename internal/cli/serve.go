package cli

import (
	"bytes"
	"context"
	stderrors "errors"
	"image"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/matzehuels/papernet/pkg/errors"
	papio "github.com/matzehuels/papernet/pkg/io"
	"github.com/matzehuels/papernet/pkg/observability"
	"github.com/matzehuels/papernet/pkg/pipeline"
	"github.com/matzehuels/papernet/pkg/render/flat"
	"github.com/matzehuels/papernet/pkg/render/flat/sink"
)

// maxPreviewSize bounds the source side a request may ask for.
const maxPreviewSize = 4096

// shutdownTimeout bounds how long in-flight requests may finish.
const shutdownTimeout = 5 * time.Second

// serveCommand creates the serve command that previews a net over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve [layout-file]",
		Short: "Preview the net in a browser",
		Long: `Serve renders of the layout file over HTTP. The file is read again on
every request, so saving in "papernet edit" shows up on reload.

  /net.png      the textured net
  /source.png   the curved-space source (?size=N)
  /forest.svg   the glue forest (?detailed=1&tabs=1)
  /layout.json  the flat layout
  /healthz      liveness`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr = stringFlag(cmd, "addr", addr, c.Config.Serve.Addr)
			if err := errors.ValidateListenAddr(addr); err != nil {
				return err
			}
			runner, err := c.newRunner(boolFlag(cmd, "no-cache", noCache, c.Config.Export.NoCache))
			if err != nil {
				return err
			}
			defer runner.Close()
			return serve(cmd.Context(), addr, newServer(runner, c.layoutArg(args), loggerFromContext(cmd.Context())))
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8080", "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the render cache")

	return cmd
}

// serve runs h on addr until ctx is cancelled.
func serve(ctx context.Context, addr string, h *server) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()
	printSuccess("Serving %s", h.path)
	printDetail("http://%s/net.png", addr)

	select {
	case err := <-errc:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	h.logger.Info("shutting down preview server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return ctx.Err()
}

// =============================================================================
// Server
// =============================================================================

// server renders a layout file on request. It holds no net between
// requests; each handler loads its own copy.
type server struct {
	runner *pipeline.Runner
	path   string
	logger *log.Logger
}

func newServer(runner *pipeline.Runner, path string, logger *log.Logger) *server {
	if logger == nil {
		logger = log.Default()
	}
	return &server{runner: runner, path: path, logger: logger}
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok\n"))
	})
	r.Get("/net.png", s.handleNet)
	r.Get("/source.png", s.handleSource)
	r.Get("/forest.svg", s.handleForest)
	r.Get("/layout.json", s.handleLayout)

	return r
}

// logRequests fires the HTTP hooks and logs every response.
func (s *server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ctx := r.Context()
		observability.HTTP().OnRequest(ctx, r.Method, r.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		dur := time.Since(start)
		observability.HTTP().OnResponse(ctx, r.Method, r.URL.Path, status, dur)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"bytes", ww.BytesWritten(),
			"id", middleware.GetReqID(ctx),
			"duration", dur.Round(time.Millisecond))
	})
}

func (s *server) handleNet(w http.ResponseWriter, r *http.Request) {
	n, err := s.runner.Load(s.path)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	pm, err := s.runner.RenderNet(r.Context(), n, pipeline.ExportOptions{
		NoLabels: r.URL.Query().Get("labels") == "0",
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.image(w, r, pm)
}

func (s *server) handleSource(w http.ResponseWriter, r *http.Request) {
	n, err := s.runner.Load(s.path)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	size := n.SourceSize
	if q := r.URL.Query().Get("size"); q != "" {
		v, err := strconv.Atoi(q)
		if err != nil || v <= 0 || v > maxPreviewSize {
			s.fail(w, r, errors.New(errors.ErrCodeInvalidInput, "size must be between 1 and %d", maxPreviewSize))
			return
		}
		size = v
	}
	pm, err := s.runner.Scope(r.Context(), n, pipeline.ScopeOptions{Size: size, Detail: pipeline.DefaultDetail})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.image(w, r, pm)
}

func (s *server) handleForest(w http.ResponseWriter, r *http.Request) {
	n, err := s.runner.Load(s.path)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	q := r.URL.Query()
	data, err := s.runner.Forest(r.Context(), n, pipeline.ForestOptions{
		Format:   pipeline.ForestSVG,
		Detailed: q.Get("detailed") == "1",
		Tabs:     q.Get("tabs") == "1",
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write(data)
}

func (s *server) handleLayout(w http.ResponseWriter, r *http.Request) {
	n, err := s.runner.Load(s.path)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	g, err := pipeline.Engine(n)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	flat.AssignLabels(n.Store)

	var buf bytes.Buffer
	if err := papio.WriteLayout(&buf, g); err != nil {
		s.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(buf.Bytes())
}

func (s *server) image(w http.ResponseWriter, r *http.Request, img image.Image) {
	var buf bytes.Buffer
	if err := sink.Encode(&buf, img, sink.PNG); err != nil {
		s.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", sink.PNG.ContentType())
	w.Write(buf.Bytes())
}

// fail maps err onto an HTTP status by its code.
func (s *server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("render failed", "path", r.URL.Path, "error", err)
	}
	http.Error(w, errors.UserMessage(err), status)
}

func statusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeNothingToLoad, errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidPath:
		return http.StatusBadRequest
	}
	if stderrors.Is(err, context.Canceled) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
