// SPDX-License-Identifier: EPL-2.0

// Command waveseek creates, inspects and edits .wask waveform projects.
//
//	waveseek new -name bench bench.wask
//	waveseek import -p bench.wask capture.csv voice.wav
//	waveseek zoom -p bench.wask -x -1
//	waveseek render -p bench.wask -o bench.png
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/ik5/waveseek"
	"github.com/ik5/waveseek/audio"
	"github.com/ik5/waveseek/render"
	"github.com/ik5/waveseek/utils"
)

var errUsage = errors.New("usage")

type command struct {
	summary string
	run     func(args []string, stdout io.Writer) error
}

var commands = map[string]command{
	"new":        {"create an empty project", cmdNew},
	"info":       {"print a project's settings and channels", cmdInfo},
	"import":     {"add Siglent CSV or audio files as channels", cmdImport},
	"export-wav": {"write one channel as 16-bit WAV", cmdExportWAV},
	"render":     {"draw the current view to a PNG file", cmdRender},
	"zoom":       {"step the time or amplitude scale", cmdZoom},
	"pan":        {"move the view by a fraction of the screen", cmdPan},
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if err != errUsage {
			fmt.Fprintf(os.Stderr, "waveseek: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	if len(args) == 0 {
		printUsage(os.Stderr)
		return errUsage
	}

	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(os.Stderr, "waveseek: unknown command %q\n", args[0])
		printUsage(os.Stderr)
		return errUsage
	}

	return cmd.run(args[1:], stdout)
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "usage: waveseek <command> [flags]")
	fmt.Fprintln(w)

	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Fprintf(w, "  %-11s %s\n", name, commands[name].summary)
	}
}

// flagSet returns a flag set with the shared -v flag.
func flagSet(name string) (*flag.FlagSet, *bool) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	verbose := fs.Bool("v", false, "debug logging")

	return fs, verbose
}

func parse(fs *flag.FlagSet, verbose *bool, args []string) error {
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	waveseek.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	return nil
}

// openSession loads path into a new session.
func openSession(path string) (*waveseek.Session, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: -p is required", errUsage)
	}

	s := waveseek.NewSession("")
	if err := s.LoadFile(path); err != nil {
		return nil, err
	}

	return s, nil
}

func cmdNew(args []string, stdout io.Writer) error {
	fs, verbose := flagSet("new")
	name := fs.String("name", "My Project", "project name")
	if err := parse(fs, verbose, args); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		return fmt.Errorf("%w: new [-name N] <project.wask>", errUsage)
	}

	if err := waveseek.NewSession(*name).SaveFile(fs.Arg(0)); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "created %s\n", fs.Arg(0))

	return nil
}

func cmdInfo(args []string, stdout io.Writer) error {
	fs, verbose := flagSet("info")
	if err := parse(fs, verbose, args); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		return fmt.Errorf("%w: info <project.wask>", errUsage)
	}

	s, err := openSession(fs.Arg(0))
	if err != nil {
		return err
	}

	l := render.MakeLabels(s.Project)
	fmt.Fprintf(stdout, "project  %s\n", l.Project)
	fmt.Fprintf(stdout, "timebase %s offset %s\n", l.Timebase, l.TimebaseOffset)

	for i, w := range s.Project.Waveforms() {
		c := l.Channels[i]

		mark := " "
		if c.Selected {
			mark = "*"
		}

		fmt.Fprintf(stdout, "%s %d %-12s %8d samples  %-12s %-12s %s\n",
			mark, i, c.Name, w.Len(),
			utils.FormatNumber(w.Duration(), "s", utils.LowResDecimals, utils.LowResDigits),
			c.ScalePerDivY, c.OffsetY)
	}

	return nil
}

func cmdImport(args []string, stdout io.Writer) error {
	fs, verbose := flagSet("import")
	path := fs.String("p", "", "project file, created when missing")
	channel := fs.Int("channel", audio.Downmix, "audio channel index, -1 mixes all channels")
	rate := fs.Int("rate", 0, "resample audio to this rate in Hz")
	name := fs.String("name", "", "waveform name (single file only)")
	if err := parse(fs, verbose, args); err != nil {
		return err
	}

	if *path == "" || fs.NArg() == 0 {
		return fmt.Errorf("%w: import -p <project.wask> [-channel N] [-rate Hz] <file>...", errUsage)
	}

	s := waveseek.NewSession("My Project")
	if _, err := os.Stat(*path); err == nil {
		if s, err = openSession(*path); err != nil {
			return err
		}
	}

	for _, file := range fs.Args() {
		opts := audio.ImportOptions{Channel: *channel, SampleRate: *rate}
		if fs.NArg() == 1 {
			opts.Name = *name
		}

		w, err := s.ImportFile(file, opts)
		if err != nil {
			return fmt.Errorf("importing %s: %w", file, err)
		}

		fmt.Fprintf(stdout, "added %s (%d samples)\n", w.Config.Name, w.Len())
	}

	return s.SaveFile(*path)
}

func cmdExportWAV(args []string, stdout io.Writer) error {
	fs, verbose := flagSet("export-wav")
	path := fs.String("p", "", "project file")
	index := fs.Int("i", -1, "channel index, defaults to the selected one")
	out := fs.String("o", "", "output .wav file")
	if err := parse(fs, verbose, args); err != nil {
		return err
	}

	if *out == "" {
		return fmt.Errorf("%w: export-wav -p <project.wask> [-i N] -o <out.wav>", errUsage)
	}

	s, err := openSession(*path)
	if err != nil {
		return err
	}

	i := *index
	if i < 0 {
		i = int(s.Project.Config.SelectedIndex)
	}

	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := s.ExportWAV(i, f); err != nil {
		_ = f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	fmt.Fprintf(stdout, "wrote %s\n", *out)

	return nil
}

func cmdRender(args []string, stdout io.Writer) error {
	fs, verbose := flagSet("render")
	path := fs.String("p", "", "project file")
	out := fs.String("o", "", "output .png file")
	width := fs.Int("width", 1280, "image width")
	height := fs.Int("height", 720, "image height")
	labels := fs.Bool("labels", true, "draw axis labels")
	if err := parse(fs, verbose, args); err != nil {
		return err
	}

	if *out == "" {
		return fmt.Errorf("%w: render -p <project.wask> -o <out.png>", errUsage)
	}

	s, err := openSession(*path)
	if err != nil {
		return err
	}

	opts := render.DefaultOptions(*width, *height)
	opts.Labels = *labels

	img, err := render.Render(s.Project, opts)
	if err != nil {
		return err
	}

	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := render.WritePNG(f, img); err != nil {
		_ = f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	fmt.Fprintf(stdout, "wrote %s\n", *out)

	return nil
}

func cmdZoom(args []string, stdout io.Writer) error {
	fs, verbose := flagSet("zoom")
	path := fs.String("p", "", "project file")
	x := fs.Int("x", 0, "time scale steps, positive zooms out")
	y := fs.Int("y", 0, "amplitude scale steps of the selected channel")
	sel := fs.Int("select", -1, "select this channel first")
	if err := parse(fs, verbose, args); err != nil {
		return err
	}

	s, err := openSession(*path)
	if err != nil {
		return err
	}

	if *sel >= 0 {
		if err := s.Select(*sel); err != nil {
			return err
		}
	}

	s.Zoom(*x, *y)

	return saveAndReport(s, *path, stdout)
}

func cmdPan(args []string, stdout io.Writer) error {
	fs, verbose := flagSet("pan")
	path := fs.String("p", "", "project file")
	x := fs.Float64("x", 0, "horizontal drag as a fraction of the screen width")
	y := fs.Float64("y", 0, "vertical drag as a fraction of the screen height")
	sel := fs.Int("select", -1, "select this channel first")
	if err := parse(fs, verbose, args); err != nil {
		return err
	}

	s, err := openSession(*path)
	if err != nil {
		return err
	}

	if *sel >= 0 {
		if err := s.Select(*sel); err != nil {
			return err
		}
	}

	s.Pan(*x, *y)

	return saveAndReport(s, *path, stdout)
}

func saveAndReport(s *waveseek.Session, path string, stdout io.Writer) error {
	if err := s.SaveFile(path); err != nil {
		return err
	}

	l := render.MakeLabels(s.Project)
	fmt.Fprintf(stdout, "timebase %s offset %s\n", l.Timebase, l.TimebaseOffset)

	for _, c := range l.Channels {
		if c.Selected {
			fmt.Fprintf(stdout, "%s %s offset %s\n", c.Name, c.ScalePerDivY, c.OffsetY)
		}
	}

	return nil
}
