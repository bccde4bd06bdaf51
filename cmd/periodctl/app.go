package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/manish-107/CollegeCAT-sub000/internal/models"
	"github.com/manish-107/CollegeCAT-sub000/internal/periodformat"
	"github.com/manish-107/CollegeCAT-sub000/internal/service"
	"github.com/manish-107/CollegeCAT-sub000/pkg/config"
	appErrors "github.com/manish-107/CollegeCAT-sub000/pkg/errors"
	"github.com/manish-107/CollegeCAT-sub000/pkg/export"
	"github.com/manish-107/CollegeCAT-sub000/pkg/formatfile"
)

const usage = `usage: periodctl <command> [flags]

commands:
  encode   compress a slot-by-slot week layout into a format
  decode   expand a format into per-day periods
  expand   expand a format and place timetable subjects into its periods
  export   write a decoded week to a CSV file
  batch    export every format in a directory concurrently
  slots    print the fixed slots of a teaching day
`

type app struct {
	cfg      *config.Config
	logger   *zap.Logger
	out      io.Writer
	metrics  *service.MetricsService
	formats  *service.FormatService
	exporter *export.CSVExporter
}

func newApp(cfg *config.Config, logger *zap.Logger, out io.Writer) *app {
	metrics := service.NewMetricsService()
	return &app{
		cfg:      cfg,
		logger:   logger,
		out:      out,
		metrics:  metrics,
		formats:  service.NewFormatService(nil, metrics, logger),
		exporter: export.NewCSVExporter(cfg.Output.CSVDelimiter),
	}
}

func (a *app) run(args []string) error {
	if len(args) == 0 {
		return appErrors.Clone(appErrors.ErrUsage, strings.TrimSpace(usage))
	}

	var err error
	switch args[0] {
	case "encode":
		err = a.encode(args[1:])
	case "decode":
		err = a.decode(args[1:])
	case "expand":
		err = a.expand(args[1:])
	case "export":
		err = a.export(args[1:])
	case "batch":
		err = a.batch(args[1:])
	case "slots":
		err = a.slots(args[1:])
	case "help", "-h", "--help":
		_, err = io.WriteString(a.out, usage)
	default:
		err = appErrors.Clone(appErrors.ErrUsage, fmt.Sprintf("unknown command %q\n%s", args[0], strings.TrimSpace(usage)))
	}

	if path := a.cfg.Metrics.TextfilePath; path != "" {
		if werr := a.metrics.WriteTextfile(path); werr != nil {
			a.logger.Warn("metrics textfile not written", zap.String("path", path), zap.Error(werr))
		}
	}
	a.logger.Debug("command finished", zap.String("command", args[0]), zap.Any("metrics", a.metrics.Snapshot()))
	return err
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return appErrors.Wrap(err, appErrors.ErrUsage.Code, appErrors.ErrUsage.ExitCode, fs.Name())
	}
	if fs.NArg() > 0 {
		return appErrors.Clone(appErrors.ErrUsage, fmt.Sprintf("%s: unexpected arguments %v", fs.Name(), fs.Args()))
	}
	return nil
}

func required(command, flagName, value string) error {
	if value == "" {
		return appErrors.Clone(appErrors.ErrUsage, fmt.Sprintf("%s: -%s is required", command, flagName))
	}
	return nil
}

func (a *app) encode(args []string) error {
	fs := newFlagSet("encode")
	in := fs.String("in", "", "week layout document (.json, .yaml)")
	name := fs.String("name", "", "format name, generated when empty")
	year := fs.Int("year", 0, "academic year id")
	batch := fs.Int("batch", 0, "batch id")
	output := fs.String("o", "", "output encoding: json or yaml")
	outPath := fs.String("out", "", "write the format to this file instead of stdout")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if err := required("encode", "in", *in); err != nil {
		return err
	}

	layout, err := formatfile.LoadLayout(*in)
	if err != nil {
		return err
	}
	if *name != "" {
		layout.Name = *name
	}
	if *year != 0 {
		layout.YearID = *year
	}
	if *batch != 0 {
		layout.BatchID = *batch
	}

	format, err := a.formats.EncodeWeek(*layout)
	if err != nil {
		return err
	}
	a.logger.Info("format encoded", zap.String("format_name", format.Name), zap.String("source", *in))

	if *outPath != "" {
		return formatfile.WriteFile(*outPath, format)
	}
	encoding := formatfile.JSON
	if a.outputFormat(*output) == config.OutputYAML {
		encoding = formatfile.YAML
	}
	return formatfile.Write(a.out, format, encoding)
}

func (a *app) decode(args []string) error {
	fs := newFlagSet("decode")
	in := fs.String("in", "", "format document (.json, .yaml)")
	output := fs.String("o", "", "output: json, yaml, csv or table")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if err := required("decode", "in", *in); err != nil {
		return err
	}

	format, err := formatfile.LoadFormat(*in)
	if err != nil {
		return err
	}
	week, err := a.formats.DecodeWeek(format)
	if err != nil {
		return err
	}
	return a.render(week, a.outputFormat(*output))
}

func (a *app) expand(args []string) error {
	fs := newFlagSet("expand")
	formatPath := fs.String("format", "", "format document (.json, .yaml)")
	timetablePath := fs.String("timetable", "", "timetable document (.json, .yaml)")
	output := fs.String("o", "", "output: json, yaml, csv or table")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if err := required("expand", "format", *formatPath); err != nil {
		return err
	}
	if err := required("expand", "timetable", *timetablePath); err != nil {
		return err
	}

	week, err := a.loadWeek(*formatPath, *timetablePath)
	if err != nil {
		return err
	}
	return a.render(week, a.outputFormat(*output))
}

func (a *app) export(args []string) error {
	fs := newFlagSet("export")
	formatPath := fs.String("format", "", "format document (.json, .yaml)")
	timetablePath := fs.String("timetable", "", "optional timetable document")
	outPath := fs.String("out", "", "CSV file to write")
	layout := fs.String("layout", "rows", "rows (one line per slot) or grid (one line per day)")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if err := required("export", "format", *formatPath); err != nil {
		return err
	}
	if err := required("export", "out", *outPath); err != nil {
		return err
	}

	week, err := a.loadWeek(*formatPath, *timetablePath)
	if err != nil {
		return err
	}

	var body []byte
	switch *layout {
	case "rows":
		body, err = a.exporter.RenderPeriods(week)
	case "grid":
		body, err = a.exporter.RenderGrid(week)
	default:
		return appErrors.Clone(appErrors.ErrUsage, fmt.Sprintf("export: unknown layout %q", *layout))
	}
	if err != nil {
		return err
	}
	if err := os.WriteFile(*outPath, body, 0o644); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.ExitCode, "write "+*outPath)
	}
	a.logger.Info("week exported", zap.String("path", *outPath), zap.String("layout", *layout))
	return nil
}

func (a *app) slots(args []string) error {
	fs := newFlagSet("slots")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "POS\tSTART\tEND\tKIND")
	for _, slot := range periodformat.Slots() {
		kind := "teaching"
		if slot.Break {
			kind = slot.Label
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", slot.Position, slot.Start, slot.End, kind)
	}
	return tw.Flush()
}

func (a *app) loadWeek(formatPath, timetablePath string) (*models.WeekView, error) {
	format, err := formatfile.LoadFormat(formatPath)
	if err != nil {
		return nil, err
	}
	if timetablePath == "" {
		return a.formats.DecodeWeek(format)
	}
	timetable, err := formatfile.LoadTimetable(timetablePath)
	if err != nil {
		return nil, err
	}
	return a.formats.ExpandTimetable(format, timetable)
}

func (a *app) outputFormat(flagValue string) string {
	if flagValue != "" {
		return strings.ToLower(flagValue)
	}
	return a.cfg.Output.Format
}

func (a *app) render(week *models.WeekView, output string) error {
	switch output {
	case config.OutputJSON:
		return formatfile.Write(a.out, week, formatfile.JSON)
	case config.OutputYAML:
		return formatfile.Write(a.out, week, formatfile.YAML)
	case config.OutputCSV:
		body, err := a.exporter.RenderPeriods(week)
		if err != nil {
			return err
		}
		_, err = a.out.Write(body)
		return err
	case config.OutputTable:
		return writeTable(a.out, week)
	default:
		return appErrors.Clone(appErrors.ErrUsage, fmt.Sprintf("unknown output %q", output))
	}
}

// writeTable prints the week as an aligned day-by-slot grid.
func writeTable(w io.Writer, week *models.WeekView) error {
	grid := export.WeekGrid(week)
	buf := &bytes.Buffer{}
	tw := tabwriter.NewWriter(buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(grid.Headers, "\t"))
	for _, row := range grid.Rows {
		cells := make([]string, len(grid.Headers))
		for i, header := range grid.Headers {
			cells[i] = row[header]
			if cells[i] == "" {
				cells[i] = "-"
			}
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if week.FormatName != "" {
		if _, err := fmt.Fprintf(w, "%s\n\n", week.FormatName); err != nil {
			return err
		}
	}
	_, err := w.Write(buf.Bytes())
	return err
}
