package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"quillpilot/internal/analysis"
	"quillpilot/internal/config"
	"quillpilot/internal/db"
	"quillpilot/internal/ingest"
	applog "quillpilot/internal/log"
	"quillpilot/internal/registry"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to YAML config file")
		style      = flag.String("style", "", "document style: prose, screenplay, or poetry (auto-detected when empty)")
		characters = flag.String("characters", "", `character registry, e.g. "Anna:Annie:Ms. Pine,Bram"`)
		outPath    = flag.String("out", "", "report output path (default from config)")
		watch      = flag.Bool("watch", false, "re-analyze whenever the input file changes")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: quillpilot [flags] <manuscript file>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	input := flag.Arg(0)

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "quillpilot: %v\n", err)
		os.Exit(1)
	}
	applog.Setup(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.File)

	if *style == "" {
		*style = cfg.Style
	}
	if *outPath == "" {
		*outPath = cfg.OutputPath
	}

	var cache *db.Cache
	if cfg.CachePath != "" {
		cache, err = db.Open(cfg.CachePath)
		if err != nil {
			slog.Warn("cache unavailable", "path", cfg.CachePath, "err", err)
		} else {
			defer cache.Close()
		}
	}

	run := func() error {
		return analyzeFile(input, *style, *characters, *outPath, cache)
	}
	if err := run(); err != nil {
		slog.Error("analysis failed", "file", input, "err", err)
		os.Exit(1)
	}
	if !*watch {
		return
	}
	if err := watchFile(input, cfg.WatchDebounce, run); err != nil {
		slog.Error("watch failed", "file", input, "err", err)
		os.Exit(1)
	}
}

func analyzeFile(input, style, characters, outPath string, cache *db.Cache) error {
	doc, err := ingest.ParseFile(input)
	if err != nil {
		return err
	}

	opts := buildOptions(doc.Text, style, characters)

	var res analysis.Results
	cached := false
	key := ""
	if cache != nil {
		key = db.Key(doc.Text, opts)
		if got, ok, err := cache.Lookup(key); err != nil {
			slog.Warn("cache lookup failed", "err", err)
		} else if ok {
			res, cached = got, true
		}
	}
	if !cached {
		start := time.Now()
		res = analysis.Analyze(doc.Text, opts)
		slog.Info("analysis complete",
			"file", input,
			"words", res.WordCount,
			"style", string(opts.Style),
			"truncated", res.Truncated,
			"elapsed", time.Since(start).Round(time.Millisecond))
		if cache != nil {
			if err := cache.Store(key, doc.Title, res); err != nil {
				slog.Warn("cache store failed", "err", err)
			}
		}
	} else {
		slog.Info("served from cache", "file", input, "words", res.WordCount)
	}

	if err := writeReport(outPath, res); err != nil {
		return err
	}
	fmt.Printf("%s: %d words, %d pages, %d chapters, reading level %s, dialogue %d%%\n",
		doc.Title, res.WordCount, res.PageCount, res.ChapterCount, res.ReadingLevel, res.DialoguePercentage)
	return nil
}

func buildOptions(text, style, characters string) analysis.Options {
	opts := analysis.Options{Style: analysis.Style(style)}
	switch opts.Style {
	case analysis.StyleProse, analysis.StyleScreenplay, analysis.StylePoetry:
	default:
		opts.Style = analysis.Style(ingest.DetectFormat(text))
	}
	names, aliases := parseCharacters(characters)
	if len(names) > 0 {
		opts.Characters = names
		opts.Registry = registry.NewSnapshot(names, aliases)
	}
	return opts
}

// parseCharacters splits "Name:Alias:Alias,Name2" into a cast list plus
// alias map.
func parseCharacters(raw string) ([]string, map[string][]string) {
	var names []string
	aliases := map[string][]string{}
	for _, entry := range strings.Split(raw, ",") {
		parts := strings.Split(entry, ":")
		name := strings.TrimSpace(parts[0])
		if name == "" {
			continue
		}
		names = append(names, name)
		for _, a := range parts[1:] {
			if a = strings.TrimSpace(a); a != "" {
				aliases[name] = append(aliases[name], a)
			}
		}
	}
	return names, aliases
}

func writeReport(path string, res analysis.Results) error {
	raw, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report dir: %w", err)
		}
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	slog.Info("report written", "path", path)
	return nil
}

// watchFile re-runs the analysis after the input changes, debouncing
// editor save bursts. Watching the parent directory survives the
// rename-over-save pattern most editors use.
func watchFile(path string, debounce time.Duration, run func() error) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return err
	}
	slog.Info("watching", "file", abs)

	var timer *time.Timer
	fire := make(chan struct{}, 1)
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})
		case <-fire:
			if err := run(); err != nil {
				slog.Error("re-analysis failed", "err", err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watch error", "err", err)
		}
	}
}
