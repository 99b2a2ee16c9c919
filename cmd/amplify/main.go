// SPDX-License-Identifier: EPL-2.0

// Command amplify renders composition projects.
//
//	amplify [flags] init <project.yaml>
//	amplify [flags] render <project.yaml>
//	amplify [flags] export [-o out.wav] <project.yaml>
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/mitchellh/go-homedir"

	"github.com/ik5/amplify"
	"github.com/ik5/amplify/project"
	"github.com/ik5/amplify/render"
)

// parseLevel maps a -log-level value onto a slog level.
func parseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: want debug, info, warn or error", name)
	}
	return level, nil
}

// newLogger returns a text logger on w at the named level.
func newLogger(w io.Writer, name string) (*slog.Logger, error) {
	level, err := parseLevel(name)
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: amplify [flags] init|render|export <project.yaml>")
	fmt.Fprintln(os.Stderr, "       amplify [flags] export [-o out.wav] <project.yaml>")
	flag.PrintDefaults()
}

func main() {
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	workers := flag.Int("workers", 1, "tracks rendered concurrently")
	cont := flag.Bool("continue", false, "mix surviving tracks when some fail to render")
	flag.Usage = usage
	flag.Parse()

	logger, err := newLogger(os.Stderr, *logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	args := flag.Args()
	if len(args) < 1 {
		usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := []render.Option{
		render.WithWorkers(*workers),
		render.WithContinueOnError(*cont),
		render.WithLogger(logger),
	}

	switch cmd, rest := args[0], args[1:]; cmd {
	case "init":
		err = runInit(rest)
	case "render":
		err = runRender(ctx, rest, opts)
	case "export":
		err = runExport(ctx, rest, opts)
	default:
		err = fmt.Errorf("unknown command %q", cmd)
	}

	if err != nil {
		logger.Error("amplify failed", "error", err)
		stop()
		os.Exit(1)
	}
}

// projectArg returns the single project path in args, with ~ expanded.
func projectArg(args []string) (string, error) {
	if len(args) != 1 {
		return "", errors.New("expected exactly one project file")
	}
	return homedir.Expand(args[0])
}

func runInit(args []string) error {
	path, err := projectArg(args)
	if err != nil {
		return err
	}

	created, err := project.Init(path)
	if err != nil {
		return err
	}
	if created {
		fmt.Println("Created:", path)
	} else {
		fmt.Println("Exists:", path)
	}
	return nil
}

func runRender(ctx context.Context, args []string, opts []render.Option) error {
	path, err := projectArg(args)
	if err != nil {
		return err
	}

	p, err := project.Load(path)
	if err != nil {
		return err
	}

	res, err := amplify.Render(ctx, p, opts...)
	if err != nil {
		return err
	}

	printSummary(p, res)
	return nil
}

func runExport(ctx context.Context, args []string, opts []render.Option) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	out := fs.String("o", "", "output file, overriding the project's export path and format")
	if err := fs.Parse(args); err != nil {
		return err
	}

	path, err := projectArg(fs.Args())
	if err != nil {
		return err
	}

	p, err := project.Load(path)
	if err != nil {
		return err
	}

	dest, err := homedir.Expand(*out)
	if err != nil {
		return err
	}

	res, err := amplify.ExportTo(ctx, p, dest, opts...)
	if err != nil {
		return err
	}

	printSummary(p, res)
	if dest == "" {
		dest = p.Export.Path
		if !filepath.IsAbs(dest) {
			dest = filepath.Join(p.Dir, dest)
		}
	}
	if fi, err := os.Stat(dest); err == nil {
		fmt.Printf("Wrote: %s (%s)\n", dest, humanize.Bytes(uint64(fi.Size())))
	} else {
		fmt.Println("Wrote:", dest)
	}
	return nil
}

func printSummary(p *project.Project, res *render.Result) {
	fmt.Printf("%s: %d frames, %.3fs at %d Hz, %d channels, peak %.3f\n",
		p.Name, res.Mix.Frames(), res.Duration(), res.SampleRate, res.Mix.Channels(), res.Mix.Peak())
	for _, w := range res.Warnings {
		fmt.Println("warning:", w)
	}
	for _, f := range res.Failed {
		fmt.Println("failed:", f)
	}
}
