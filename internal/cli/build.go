package cli

import (
	"time"

	"github.com/alnah/go-certgen"
	"github.com/alnah/go-certgen/internal/config"
	"github.com/alnah/go-certgen/internal/dateutil"
)

// defaultsFor returns the config defaults of a command.
func defaultsFor(mode certgen.Mode) *config.Config {
	if mode == certgen.ModeFull {
		return config.DefaultFullConfig()
	}
	return config.DefaultSimpleConfig()
}

// layoutFromConfig converts validated config into a render layout.
// The fallback date may be "auto" or "auto:FORMAT", resolved against now.
func layoutFromConfig(cfg *config.Config, mode certgen.Mode, now time.Time) (certgen.Layout, error) {
	color, err := certgen.NewColor(cfg.Font.Color)
	if err != nil {
		return certgen.Layout{}, err
	}
	fallback, err := dateutil.ResolveDate(cfg.Certificate.FallbackDate, now)
	if err != nil {
		return certgen.Layout{}, err
	}

	return certgen.Layout{
		Mode:         mode,
		Color:        color,
		NameSize:     cfg.Font.NameSize,
		DateSize:     cfg.Font.DateSize,
		Name:         certgen.Offset(cfg.Position.Name),
		StartDate:    certgen.Offset(cfg.Position.DateFrom),
		EndDate:      certgen.Offset(cfg.Position.DateTo),
		TitleCase:    cfg.Certificate.TitleCase,
		FallbackDate: fallback,
	}, nil
}

func exporterFromConfig(cfg *config.Config, now func() time.Time) *certgen.Exporter {
	return certgen.NewExporter(
		certgen.WithOutputDir(cfg.Files.OutputDir),
		certgen.WithPrefix(cfg.Certificate.Prefix),
		certgen.WithPDF(cfg.Certificate.PDF),
		certgen.WithFileTitleCase(cfg.Certificate.TitleCase),
		certgen.WithClock(now),
	)
}

func fontFromConfig(cfg *config.Config) certgen.FontSource {
	return certgen.FontSource{Path: cfg.Font.Path, Bold: cfg.Font.Bold}
}
