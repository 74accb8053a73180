package main

import (
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-brandkit/internal/report"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// extractFlags holds extract command flags.
type extractFlags struct {
	format string
	sample bool
}

// pdfFlags holds PDF export flags of the render commands.
type pdfFlags struct {
	noPDF    bool
	download bool
}

// brandBookFlags holds brandbook command flags.
type brandBookFlags struct {
	name   string
	output string
	pdf    pdfFlags
}

// doctorFlags holds doctor command flags.
type doctorFlags struct {
	json bool
}

func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path (env: BRANDKIT_CONFIG)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only print errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "print debug details")
}

func addExtractFlags(fs *flag.FlagSet, f *extractFlags) {
	names := make([]string, 0, len(report.Formats()))
	for _, format := range report.Formats() {
		names = append(names, string(format))
	}
	fs.StringVarP(&f.format, "format", "f", string(report.FormatJSON),
		fmt.Sprintf("output format (%s)", strings.Join(names, ", ")))
	fs.BoolVar(&f.sample, "sample", false, "extract from a built-in sample stylesheet")
}

func addPDFFlags(fs *flag.FlagSet, f *pdfFlags) {
	fs.BoolVar(&f.noPDF, "no-pdf", false, "write the HTML document only")
	fs.BoolVar(&f.download, "download-browser", false, "download Chromium when no browser is installed")
}

func addBrandBookFlags(fs *flag.FlagSet, f *brandBookFlags) {
	fs.StringVarP(&f.name, "name", "n", "", "project name (default: capitalized domain)")
	fs.StringVarP(&f.output, "output", "o", "", "base output directory (default \"brandbook\")")
	addPDFFlags(fs, &f.pdf)
}

func addDoctorFlags(fs *flag.FlagSet, f *doctorFlags) {
	fs.BoolVar(&f.json, "json", false, "output as JSON")
}
