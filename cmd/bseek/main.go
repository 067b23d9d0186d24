// Command bseek prints the byte offsets at which a pattern occurs in a
// file, scanning from either end with bounded memory.
//
// Usage:
//
//	bseek -p '\n\n' [-backward] [-nth n] [-max m] [-capacity c] file
//	bseek -last-line file
//
// The pattern may use Go escape sequences (\n, \t, \xNN, ...); input that
// does not parse as an escaped string is taken literally.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"go.uber.org/multierr"

	"github.com/dnesting/byteseek"
)

type config struct {
	pattern  string
	backward bool
	nth      int
	max      int
	capacity int
	lastLine bool
	verbose  bool
	path     string
}

func main() {
	var cfg config
	flag.StringVar(&cfg.pattern, "p", "", "pattern to search for (Go escape sequences allowed)")
	flag.BoolVar(&cfg.backward, "backward", false, "search from the end of the file toward the start")
	flag.IntVar(&cfg.nth, "nth", 0, "print only the nth match (1-based)")
	flag.IntVar(&cfg.max, "max", 0, "stop after this many matches (0 = all)")
	flag.IntVar(&cfg.capacity, "capacity", byteseek.DefaultCapacity, "window buffer size and maximum pattern length")
	flag.BoolVar(&cfg.lastLine, "last-line", false, "print the file's last line instead of offsets")
	flag.BoolVar(&cfg.verbose, "v", false, "log progress to stderr")
	flag.Parse()

	level := slog.LevelWarn
	if cfg.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: bseek [flags] file")
		flag.PrintDefaults()
		os.Exit(2)
	}
	cfg.path = flag.Arg(0)
	if !cfg.lastLine && cfg.pattern == "" {
		fmt.Fprintln(os.Stderr, "bseek: -p or -last-line is required")
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		slog.Error("bseek failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg config) (err error) {
	f, err := os.Open(cfg.path)
	if err != nil {
		return err
	}
	defer multierr.AppendInvoke(&err, multierr.Close(f))

	if cfg.lastLine {
		line, err := byteseek.LastLine(f)
		if err != nil {
			return err
		}
		fmt.Printf("%s\n", line)
		return nil
	}

	pattern := unescape(cfg.pattern)
	dir := byteseek.Forward
	if cfg.backward {
		dir = byteseek.Backward
	}

	s, err := byteseek.WithCapacity(f, cfg.capacity)
	if err != nil {
		return err
	}
	slog.Debug("scanning", "file", cfg.path, "size", s.Size(),
		"pattern", fmt.Sprintf("%q", pattern), "direction", dir.String())

	if cfg.nth > 0 {
		pos, err := s.FindNth(pattern, dir, cfg.nth)
		if err != nil {
			return err
		}
		fmt.Println(pos)
		return nil
	}

	found := 0
	for cfg.max == 0 || found < cfg.max {
		pos, err := s.Find(pattern, dir)
		if errors.Is(err, byteseek.ErrNotFound) {
			break
		}
		if err != nil {
			return err
		}
		fmt.Println(pos)
		found++
	}
	slog.Debug("done", "matches", found)
	if found == 0 {
		return byteseek.ErrNotFound
	}
	return nil
}

// unescape interprets Go escape sequences in s, falling back to the literal
// string when s is not a valid quoted form.
func unescape(s string) []byte {
	if u, err := strconv.Unquote(`"` + s + `"`); err == nil {
		return []byte(u)
	}
	return []byte(s)
}
