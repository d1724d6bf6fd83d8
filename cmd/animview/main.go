// Command animview plays a scene from an animation document and writes
// the last frame to a PNG.
//
// Usage:
//
//	animview -file switch.yaml -scene Designated -frames 30 -out switch.png
//
// Events reported by a state machine are printed one per line together
// with their custom properties.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/gogpu/animbridge"
	"github.com/gogpu/animbridge/backend"
	"github.com/gogpu/animbridge/backend/raster"
	"github.com/gogpu/animbridge/backend/record"
	"github.com/gogpu/animbridge/engine/yamldoc"
)

type config struct {
	file     string
	artboard string
	scene    string
	frames   int
	fps      float64
	width    int
	height   int
	out      string
	backend  string
	verbose  bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.file, "file", "", "animation document (YAML)")
	flag.StringVar(&cfg.artboard, "artboard", "", "artboard name (default artboard when empty)")
	flag.StringVar(&cfg.scene, "scene", "", "state machine or animation name (default scene when empty)")
	flag.IntVar(&cfg.frames, "frames", 60, "number of frames to advance")
	flag.Float64Var(&cfg.fps, "fps", 60, "frames per second")
	flag.IntVar(&cfg.width, "width", 512, "viewport width")
	flag.IntVar(&cfg.height, "height", 512, "viewport height")
	flag.StringVar(&cfg.out, "out", "frame.png", "output PNG (raster backend only)")
	flag.StringVar(&cfg.backend, "backend", backend.Raster, "render backend: "+strings.Join(backend.Names(), ", "))
	flag.BoolVar(&cfg.verbose, "v", false, "debug logging")
	flag.Parse()

	log, err := newLogger(cfg.verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()
	animbridge.SetLogger(slog.New(newZapHandler(log)))

	if err := run(cfg, log, os.Stdout); err != nil {
		log.Error("animview failed", zap.Error(err))
		os.Exit(1)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		zc.Level.SetLevel(zapcore.DebugLevel)
	}
	return zc.Build()
}

// target pairs a renderer handle with the backend-specific frame
// operations the command needs.
type target struct {
	handle animbridge.RendererHandle
	clear  func()
	finish func(out string, w io.Writer) error
}

func newTarget(name string, width, height int) (target, error) {
	switch name {
	case backend.Raster:
		c := raster.NewCanvas(width, height)
		return target{
			handle: c,
			clear:  func() { c.Clear(0) },
			finish: func(out string, w io.Writer) error {
				defer c.Close()
				if err := c.SavePNG(out); err != nil {
					return fmt.Errorf("save %s: %w", out, err)
				}
				fmt.Fprintf(w, "wrote %s (%dx%d)\n", out, width, height)
				return nil
			},
		}, nil
	case backend.Record:
		c := record.NewCanvas()
		return target{
			handle: c,
			clear:  c.Reset,
			finish: func(_ string, w io.Writer) error {
				fmt.Fprintf(w, "recorded %d commands, %d paths\n", len(c.Commands()), c.Count(record.CmdDrawPath))
				return nil
			},
		}, nil
	}
	return target{}, fmt.Errorf("backend %q has no render target", name)
}

func selector(name string) animbridge.Selector {
	if name == "" {
		return animbridge.ByDefault()
	}
	return animbridge.ByName(name)
}

func run(cfg config, log *zap.Logger, stdout io.Writer) error {
	if cfg.file == "" {
		return errors.New("missing -file")
	}
	if cfg.frames < 1 || cfg.fps <= 0 || cfg.width < 1 || cfg.height < 1 {
		return errors.New("frames, fps, width and height must be positive")
	}

	data, err := os.ReadFile(cfg.file)
	if err != nil {
		return err
	}
	b, err := backend.New(cfg.backend)
	if err != nil {
		return err
	}
	tgt, err := newTarget(cfg.backend, cfg.width, cfg.height)
	if err != nil {
		return err
	}

	file, err := animbridge.Import(data, yamldoc.NewImporter(), b)
	if err != nil {
		return err
	}
	defer file.Release()

	ab, ok := file.Artboard(selector(cfg.artboard))
	if !ok {
		return fmt.Errorf("artboard %q not found", cfg.artboard)
	}
	defer ab.Release()

	scene, ok := ab.Scene(selector(cfg.scene))
	if !ok {
		return fmt.Errorf("scene %q not found in artboard %q", cfg.scene, ab.Name())
	}
	defer scene.Release()

	log.Info("playing",
		zap.String("artboard", ab.Name()),
		zap.String("scene", scene.Name()),
		zap.Int("frames", cfg.frames),
		zap.String("backend", cfg.backend))

	vp := animbridge.NewViewport(uint32(cfg.width), uint32(cfg.height))
	dt := time.Duration(float64(time.Second) / cfg.fps)
	sm, _ := scene.(*animbridge.StateMachine)
	for frame := range cfg.frames {
		tgt.clear()
		active := scene.AdvanceAndMaybeDraw(tgt.handle, dt, vp)
		if sm != nil {
			printEvents(stdout, frame, sm)
		}
		if !active {
			log.Debug("scene settled", zap.Int("frame", frame))
			// Keep the last pose visible in the output.
			tgt.clear()
			renderSettled(scene, tgt.handle, vp)
			break
		}
	}
	return tgt.finish(cfg.out, stdout)
}

// renderSettled draws the scene's final pose fitted into vp.
func renderSettled(scene animbridge.Scene, r animbridge.RendererHandle, vp *animbridge.Viewport) {
	ab := scene.Artboard()
	view, _ := ab.Transforms(vp.Width(), vp.Height())
	b := ab.File().Backend()
	b.Save(r)
	b.Transform(r, view)
	scene.Draw(r)
	b.Restore(r)
}

func printEvents(w io.Writer, frame int, sm *animbridge.StateMachine) {
	for ev, delay := range sm.Events() {
		var sb strings.Builder
		fmt.Fprintf(&sb, "frame %d: %s -%s", frame, ev.Name(), delay)
		for name, p := range ev.Properties().All() {
			sb.WriteString(" ")
			sb.WriteString(name)
			sb.WriteString("=")
			sb.WriteString(formatProperty(p))
		}
		fmt.Fprintln(w, sb.String())
	}
}

func formatProperty(p animbridge.Property) string {
	switch v := p.(type) {
	case animbridge.BoolProperty:
		return strconv.FormatBool(bool(v))
	case animbridge.NumberProperty:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case animbridge.StringProperty:
		return strconv.Quote(string(v))
	}
	return "?"
}
