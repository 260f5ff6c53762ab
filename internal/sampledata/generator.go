// Package sampledata orchestrates the fetch → map → serialize → write
// pipeline that produces the SampleData.kt source file.
package sampledata

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"qurangen/internal/config"
	"qurangen/internal/logger"
	"qurangen/internal/mp3quran"
	"qurangen/internal/preview"
	"qurangen/internal/schema"
)

// Process exit codes, one per failing stage so build scripts can tell
// which upstream resource was unavailable.
const (
	ExitOK            = 0
	ExitRecitersFetch = 1
	ExitSuwarFetch    = 2
	ExitMapping       = 3
	ExitWrite         = 4
)

// Error associates a pipeline failure with the stage that produced it and
// the process exit code it maps to.
type Error struct {
	Stage string
	Code  int
	Err   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

// Unwrap supports errors.Is/errors.As on the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// ExitCode returns the process exit code for a pipeline result.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var perr *Error
	if errors.As(err, &perr) {
		return perr.Code
	}

	return ExitRecitersFetch
}

// Source provides the two raw API payloads.
type Source interface {
	Reciters() ([]map[string]any, error)
	Suwar() ([]map[string]any, error)
}

// Generator runs the pipeline. All parameters are explicit so tests can
// inject fixtures and a temporary output target.
type Generator struct {
	source Source
	cfg    *config.GeneratorConfig
	log    *logger.Logger
	out    io.Writer
}

// NewGenerator creates a generator writing progress to stdout.
func NewGenerator(source Source, cfg *config.GeneratorConfig, log *logger.Logger) *Generator {
	return &Generator{
		source: source,
		cfg:    cfg,
		log:    log,
		out:    os.Stdout,
	}
}

// WithProgressWriter redirects the user-facing progress lines.
func (g *Generator) WithProgressWriter(w io.Writer) *Generator {
	g.out = w

	return g
}

// Run executes fetch → map → serialize → write. It halts on the first
// failing stage; a sample-data file with one resource missing is worse
// than no file.
func (g *Generator) Run() error {
	g.progress("[*] Fetching data...")

	g.progress("[*] Fetching reciters...")

	rawReciters, err := g.source.Reciters()
	if err != nil {
		g.progress("[✗] Reciters data fetching failed.")

		return &Error{Stage: "fetch reciters", Code: ExitRecitersFetch, Err: err}
	}

	g.progress("[✓] Reciters data fetched successfully.")

	g.progress("[*] Fetching surahs...")

	rawSuwar, err := g.source.Suwar()
	if err != nil {
		g.progress("[✗] Surahs data fetching failed.")

		return &Error{Stage: "fetch suwar", Code: ExitSuwarFetch, Err: err}
	}

	g.progress("[✓] Surahs data fetched successfully.")
	g.progress("[✓] Data fetched successfully.")

	reciters, err := schema.MapList(rawReciters, mp3quran.ReciterSchema)
	if err != nil {
		return &Error{Stage: "map reciters", Code: ExitMapping, Err: err}
	}

	suwar, err := schema.MapList(rawSuwar, mp3quran.SurahSchema)
	if err != nil {
		return &Error{Stage: "map suwar", Code: ExitMapping, Err: err}
	}

	g.log.Debug("mapped records", "reciters", len(reciters), "suwar", len(suwar))

	if n := g.cfg.Logging.PreviewRows; n > 0 {
		fmt.Fprintln(g.out, preview.Table("Reciters", reciters, n))
		fmt.Fprintln(g.out, preview.Table("Surahs", suwar, n))
	}

	ser := schema.NewSerializer(g.cfg.Output.IndentSize)

	g.progress("[*] Converting to Reciters Kotlin...")
	recitersList := ser.SerializeList("sampleReciters", reciters, true)
	g.progress("[✓] Reciters Conversion to Kotlin completed.")

	g.progress("[*] Converting to Surahs Kotlin...")
	surahsList := ser.SerializeList("sampleSurahs", suwar, false)
	g.progress("[✓] Surahs Conversion to Kotlin completed.")

	content := g.assemble(recitersList, surahsList)

	g.progress("[*] Generating " + g.cfg.Output.Path + "...")

	if err := os.WriteFile(g.cfg.Output.Path, []byte(content), 0644); err != nil {
		return &Error{Stage: "write output", Code: ExitWrite, Err: err}
	}

	g.progress("[✓] " + g.cfg.Output.Path + " generated successfully.")

	return nil
}

// assemble concatenates the opaque header template and both serialized
// collections, separated by a blank line.
func (g *Generator) assemble(recitersList, surahsList string) string {
	var b strings.Builder

	for _, header := range g.cfg.Output.Headers {
		b.WriteString(header)
		b.WriteByte('\n')
	}

	b.WriteString(recitersList)
	b.WriteByte('\n')
	b.WriteString(surahsList)

	return b.String()
}

func (g *Generator) progress(msg string) {
	if !g.cfg.Logging.ShowProgress {
		return
	}

	fmt.Fprintln(g.out, msg)
}
