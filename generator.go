package certgen

import (
	"context"
	"fmt"
	"image"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Compile-time interface implementation checks.
var (
	_ certificateRenderer = (*Renderer)(nil)
	_ certificateExporter = (*Exporter)(nil)
)

type certificateRenderer interface {
	Render(tmpl *Template, rec Record) (*image.RGBA, error)
}

type certificateExporter interface {
	Prepare() error
	Export(img image.Image, rec Record) (Artifact, error)
	Dir() string
}

// Generator runs a batch: one certificate per record, in order.
type Generator struct {
	renderer certificateRenderer
	exporter certificateExporter
	logger   *zap.Logger
	runID    string
}

// Option configures a Generator.
type Option func(*Generator)

// WithRenderer sets the renderer. Required.
func WithRenderer(r *Renderer) Option {
	return func(g *Generator) {
		if r != nil {
			g.renderer = r
		}
	}
}

// WithExporter sets the exporter. Defaults to NewExporter().
func WithExporter(e *Exporter) Option {
	return func(g *Generator) {
		if e != nil {
			g.exporter = e
		}
	}
}

// WithLogger sets the logger. Defaults to zap.NewNop().
func WithLogger(l *zap.Logger) Option {
	return func(g *Generator) {
		g.logger = l
	}
}

// WithRunID tags log lines and the summary with id instead of a random UUID.
func WithRunID(id string) Option {
	return func(g *Generator) {
		g.runID = id
	}
}

// NewGenerator creates a Generator. A renderer must be supplied with
// WithRenderer.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.exporter == nil {
		g.exporter = NewExporter()
	}
	if g.logger == nil {
		g.logger = zap.NewNop()
	}
	return g
}

// Run loads the template at templatePath and writes one certificate per
// record. Per-record failures are logged and counted in the Summary; the
// returned error is non-nil only when the batch could not start or ctx was
// cancelled. On cancellation the partial Summary is returned with ctx.Err().
func (g *Generator) Run(ctx context.Context, records *RecordSet, templatePath string) (*Summary, error) {
	runID := g.runID
	if runID == "" {
		runID = uuid.NewString()
	}
	log := g.logger.With(zap.String("run_id", runID))

	if g.renderer == nil {
		return nil, fmt.Errorf("%w: no renderer configured", ErrInvalidLayout)
	}
	if records == nil {
		records = &RecordSet{}
	}

	log.Info("Starting certificate generation",
		zap.String("template", templatePath),
		zap.String("output_dir", g.exporter.Dir()),
		zap.Int("records", len(records.Records)),
	)

	tmpl, err := LoadTemplate(templatePath)
	if err != nil {
		return nil, err
	}
	if err := g.exporter.Prepare(); err != nil {
		return nil, err
	}

	summary := &Summary{
		RunID:   runID,
		Total:   records.Len(),
		Skipped: len(records.Skipped),
	}
	for _, s := range records.Skipped {
		log.Warn("Skipping row", zap.Int("row", s.Row), zap.String("reason", s.Reason))
	}

	written := make(map[string]int)
	var runErr error
	for _, rec := range records.Records {
		if err := ctx.Err(); err != nil {
			log.Warn("Generation interrupted", zap.Int("remaining", len(records.Records)-summary.Succeeded-summary.Failed))
			runErr = err
			break
		}

		art, err := g.generate(tmpl, rec)
		if err != nil {
			log.Error("Failed to generate certificate",
				zap.String("name", rec.Name),
				zap.Int("row", rec.Row),
				zap.Error(err),
			)
			summary.Failed++
			summary.Failures = append(summary.Failures, RecordError{Row: rec.Row, Name: rec.Name, Err: err})
			continue
		}

		if prev, ok := written[art.PNGPath]; ok {
			log.Warn("Overwriting certificate from an earlier row",
				zap.String("file", art.PNGPath),
				zap.Int("row", rec.Row),
				zap.Int("previous_row", prev),
			)
		}
		written[art.PNGPath] = rec.Row

		summary.Succeeded++
		summary.Written = append(summary.Written, art.PNGPath)
		fields := []zap.Field{zap.String("name", rec.Name), zap.String("png", art.PNGPath)}
		if art.PDFPath != "" {
			summary.Written = append(summary.Written, art.PDFPath)
			fields = append(fields, zap.String("pdf", art.PDFPath))
		}
		log.Info("Generated certificate", fields...)
	}

	log.Info("Certificate generation finished",
		zap.Int("total", summary.Total),
		zap.Int("succeeded", summary.Succeeded),
		zap.Int("failed", summary.Failed),
		zap.Int("skipped", summary.Skipped),
	)
	for _, f := range summary.Failures {
		log.Warn("Certificate not generated", zap.Int("row", f.Row), zap.String("name", f.Name), zap.Error(f.Err))
	}

	return summary, runErr
}

func (g *Generator) generate(tmpl *Template, rec Record) (Artifact, error) {
	img, err := g.renderer.Render(tmpl, rec)
	if err != nil {
		return Artifact{}, err
	}
	return g.exporter.Export(img, rec)
}
