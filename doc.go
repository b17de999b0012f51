// Package certgen generates participant certificates from a spreadsheet and
// a template image.
//
// # Quick Start
//
// Read participants, build a renderer and an exporter, then run the batch:
//
//	records, err := certgen.LoadRecords("interns.xlsx", certgen.ModeFull)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	renderer, err := certgen.NewRenderer(
//	    certgen.DefaultLayout(certgen.ModeFull),
//	    certgen.FontSource{Bold: true},
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer renderer.Close()
//
//	gen := certgen.NewGenerator(
//	    certgen.WithRenderer(renderer),
//	    certgen.WithExporter(certgen.NewExporter(
//	        certgen.WithOutputDir("generated_certificates"),
//	        certgen.WithPrefix("Internship_Completion_Certificate"),
//	        certgen.WithPDF(true),
//	    )),
//	)
//	summary, err := gen.Run(ctx, records, "templates/template1.png")
//
// # Modes
//
// ModeSimple draws the participant name and writes "{name}.png".
// ModeFull also draws the start and end dates, composed from the
// from/s_month/s_year and to/e_month/e_year columns, and usually writes a
// PDF next to the PNG.
//
// # Placement
//
// Each string is centred on the template and then moved by its Offset:
//
//	x = (W - textWidth) / 2 + offset.X
//	y = (H + textHeight) / 2 + offset.Y
//
// (x, y) is the baseline origin. Positive Y moves down.
//
// # Errors
//
// Errors that stop a batch before anything is written (ErrFileNotFound,
// ErrMissingColumn, ErrTemplateDecode, ...) are returned by LoadRecords,
// NewRenderer and Generator.Run. Per-record errors (ErrEmptyName, ErrRender,
// ErrWrite) are logged and collected in Summary.Failures while the batch
// continues.
package certgen
