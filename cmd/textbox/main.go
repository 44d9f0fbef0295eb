// Command textbox lays out a document into glyph paths and writes them
// as an SVG file.
//
// Usage:
//
//	textbox -config textpath.toml -doc greeting -w 400 -h 300 -size 24
//	textbox -text "Hello, World!" -o hello.svg
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/gogpu/textpath"
	"github.com/gogpu/textpath/text"
)

// options holds the parsed command line.
type options struct {
	config string
	doc    string
	text   string
	box    text.InputTransform
	output string
}

func main() {
	var (
		configPath = flag.String("config", "", "config file (TOML or YAML); empty uses the builtin Go font")
		docName    = flag.String("doc", "", "document to lay out (default: first configured document)")
		txt        = flag.String("text", "Hello, World!", "text to lay out when no config is given")
		x          = flag.Int("x", 20, "box left edge")
		y          = flag.Int("y", 20, "box top edge")
		w          = flag.Int("w", 400, "box width")
		h          = flag.Int("h", 200, "box height")
		size       = flag.Float64("size", 24, "font size in pixels per em")
		output     = flag.String("o", "textbox.svg", "output SVG file, - for stdout")
		verbose    = flag.Bool("v", false, "log debug output to stderr")
		watch      = flag.Bool("watch", false, "re-render whenever the config file is written")
	)
	flag.Parse()

	if *verbose {
		textpath.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	opts := options{
		config: *configPath,
		doc:    *docName,
		text:   *txt,
		box:    text.InputTransform{X: *x, Y: *y, W: *w, H: *h, Size: *size},
		output: *output,
	}

	if err := render(opts); err != nil {
		log.Fatalf("textbox: %v", err)
	}
	if !*watch {
		return
	}
	if opts.config == "" {
		log.Fatal("textbox: -watch needs -config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	err := watchFile(ctx, opts.config, func() {
		if err := render(opts); err != nil {
			log.Printf("textbox: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("textbox: watch: %v", err)
	}
}

// loadConfig reads the config file, or builds a single-document config
// around txt when path is empty.
func loadConfig(path, txt string) (textpath.Config, error) {
	if path != "" {
		return textpath.LoadConfig(path)
	}
	cfg := textpath.DefaultConfig()
	cfg.Documents = []textpath.DocumentConfig{{Name: "default", Text: txt}}
	return cfg, nil
}

func render(opts options) error {
	cfg, err := loadConfig(opts.config, opts.text)
	if err != nil {
		return err
	}
	eng, err := textpath.New(cfg)
	if err != nil {
		return err
	}

	name := opts.doc
	if name == "" {
		if len(cfg.Documents) == 0 {
			return errors.New("no documents configured")
		}
		name = cfg.Documents[0].Name
	}

	b := opts.box
	start := time.Now()
	paths, err := eng.Paths(b.X, b.Y, b.W, b.H, b.Size, name)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	caption := fmt.Sprintf("%s: %d glyphs in %v", name, len(paths), elapsed.Round(time.Microsecond))

	if opts.output == "-" {
		return writeSVG(os.Stdout, b, paths, caption)
	}
	if err := saveSVG(opts.output, b, paths, caption); err != nil {
		return err
	}
	log.Printf("%s saved to %s", caption, opts.output)
	return nil
}

// saveSVG writes the SVG to path. A failing Close is reported like a
// failing write.
func saveSVG(path string, box text.InputTransform, paths []string, caption string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	return writeSVG(f, box, paths, caption)
}

// watchFile calls onChange every time path is written or recreated, until
// ctx is done. The parent directory is watched so that editors replacing
// the file are noticed.
func watchFile(ctx context.Context, path string, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}
	target := filepath.Clean(path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				onChange()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("textbox: watch: %v", err)
		}
	}
}
