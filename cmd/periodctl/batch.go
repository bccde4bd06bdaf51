package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	appErrors "github.com/manish-107/CollegeCAT-sub000/pkg/errors"
	"github.com/manish-107/CollegeCAT-sub000/pkg/formatfile"
	"github.com/manish-107/CollegeCAT-sub000/pkg/jobs"
	"github.com/manish-107/CollegeCAT-sub000/pkg/storage"
)

type batchItem struct {
	formatPath    string
	timetablePath string
	target        string
}

// batch exports every format document found in a directory, one CSV per
// format, using a bounded worker pool.
func (a *app) batch(args []string) error {
	fs := newFlagSet("batch")
	inDir := fs.String("in-dir", "", "directory of format documents")
	timetableDir := fs.String("timetable-dir", "", "optional directory of timetables named like their formats")
	outDir := fs.String("out-dir", a.cfg.Export.Dir, "directory for the CSV exports")
	layout := fs.String("layout", "rows", "rows or grid")
	workers := fs.Int("workers", a.cfg.Export.Workers, "concurrent exports")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if err := required("batch", "in-dir", *inDir); err != nil {
		return err
	}
	if *layout != "rows" && *layout != "grid" {
		return appErrors.Clone(appErrors.ErrUsage, fmt.Sprintf("batch: unknown layout %q", *layout))
	}

	items, err := collectBatch(*inDir, *timetableDir)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return appErrors.Clone(appErrors.ErrUsage, fmt.Sprintf("batch: no format documents in %s", *inDir))
	}

	store, err := storage.NewLocalStorage(*outDir)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.ExitCode, "batch")
	}

	pool := jobs.NewPool("batch-export", func(ctx context.Context, job jobs.Job) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		item := job.Payload.(batchItem)
		return a.exportTo(store, item, *layout)
	}, jobs.PoolConfig{Workers: *workers, Logger: a.logger})

	queue := make([]jobs.Job, len(items))
	for i, item := range items {
		queue[i] = jobs.Job{ID: item.formatPath, Type: *layout, Payload: item}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	failed := 0
	for _, res := range pool.Run(ctx, queue) {
		item := res.Job.Payload.(batchItem)
		if res.Err != nil {
			failed++
			fmt.Fprintf(a.out, "FAIL %s: %v\n", item.formatPath, res.Err)
			continue
		}
		fmt.Fprintf(a.out, "ok   %s -> %s\n", item.formatPath, store.Path(item.target))
	}
	a.logger.Info("batch export finished", zap.Int("formats", len(items)), zap.Int("failed", failed))

	if failed > 0 {
		return appErrors.Clone(appErrors.ErrInternal, fmt.Sprintf("batch: %d of %d formats failed", failed, len(items)))
	}
	return nil
}

func (a *app) exportTo(store *storage.LocalStorage, item batchItem, layout string) error {
	week, err := a.loadWeek(item.formatPath, item.timetablePath)
	if err != nil {
		return err
	}

	var body []byte
	if layout == "grid" {
		body, err = a.exporter.RenderGrid(week)
	} else {
		body, err = a.exporter.RenderPeriods(week)
	}
	if err != nil {
		return err
	}
	_, err = store.Save(item.target, body)
	return err
}

// collectBatch lists format documents in dir, sorted by name, and pairs each
// with a timetable of the same base name when timetableDir holds one. Two
// formats sharing a base name are rejected since they would share an export.
func collectBatch(dir, timetableDir string) ([]batchItem, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUsage.Code, appErrors.ErrUsage.ExitCode, "batch: read "+dir)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if _, err := formatfile.EncodingFor(entry.Name()); err != nil {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	items := make([]batchItem, 0, len(names))
	sources := make(map[string]string, len(names))
	for _, name := range names {
		base := strings.TrimSuffix(name, filepath.Ext(name))
		if other, ok := sources[base]; ok {
			return nil, appErrors.Clone(appErrors.ErrUsage, fmt.Sprintf("batch: %s and %s would both export to %s.csv", other, name, base))
		}
		sources[base] = name
		items = append(items, batchItem{
			formatPath:    filepath.Join(dir, name),
			timetablePath: findTimetable(timetableDir, base),
			target:        base + ".csv",
		})
	}
	return items, nil
}

func findTimetable(dir, base string) string {
	if dir == "" {
		return ""
	}
	for _, ext := range []string{".json", ".yaml", ".yml"} {
		path := filepath.Join(dir, base+ext)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}
