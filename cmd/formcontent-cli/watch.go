package main

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const watchDebounce = 150 * time.Millisecond

// watch regenerates the page whenever one of the input files changes, until
// ctx is cancelled. Render failures are logged and do not stop the loop.
func (g *generator) watch(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() {
		_ = w.Close()
	}()

	for _, path := range g.watchPaths() {
		if err := w.Add(path); err != nil {
			return err
		}
		g.logger.Debug("watching", zap.String("path", path))
	}

	var (
		timer   *time.Timer
		trigger <-chan time.Time
	)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if !g.isInputEvent(ev.Name) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(watchDebounce)
			trigger = timer.C
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			g.logger.Warn("watch error", zap.Error(err))
		case <-trigger:
			trigger = nil
			if err := g.generate(ctx); err != nil {
				g.logger.Error("render failed", zap.Error(err))
				continue
			}
			g.logger.Info("page regenerated")
		}
	}
}

// isInputEvent reports whether a change to name should trigger a
// regeneration. Only the configured inputs count, or any file inside the
// manifest directory; the output file never does, even when it shares a
// directory with the inputs.
func (g *generator) isInputEvent(name string) bool {
	if name == "" || samePath(name, g.cfg.Output) {
		return false
	}
	for _, input := range []string{g.cfg.Manifest, g.cfg.Data, g.cfg.Errors, g.cfg.Theme} {
		if input != "" && samePath(name, input) {
			return true
		}
	}
	if info, err := os.Stat(g.cfg.Manifest); err == nil && info.IsDir() {
		return samePath(filepath.Dir(name), g.cfg.Manifest)
	}
	return false
}

func samePath(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return absPath(a) == absPath(b)
}

func absPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}

// watchPaths returns the directories holding the inputs. Editors often
// replace files on save, so directories are watched rather than files.
func (g *generator) watchPaths() []string {
	seen := map[string]struct{}{}
	var out []string
	add := func(path string) {
		if path == "" {
			return
		}
		dir := path
		if info, err := os.Stat(path); err != nil || !info.IsDir() {
			dir = filepath.Dir(path)
		}
		if _, ok := seen[dir]; ok {
			return
		}
		seen[dir] = struct{}{}
		out = append(out, dir)
	}
	add(g.cfg.Manifest)
	add(g.cfg.Data)
	add(g.cfg.Errors)
	add(g.cfg.Theme)
	return out
}
