package main

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/scott-cotton/cli"
)

// watchFiles dumps the input files once, then re-dumps them whenever one
// changes. Watches are placed on the containing directories so that
// rename-and-replace saves keep working.
func watchFiles(cfg *MainConfig, cc *cli.Context, files []string) error {
	if len(files) == 0 {
		return fmt.Errorf("%w: -watch needs input files", cli.ErrUsage)
	}
	watched := map[string]bool{}
	for _, f := range files {
		if f == "-" {
			return fmt.Errorf("%w: cannot watch stdin", cli.ErrUsage)
		}
		abs, err := filepath.Abs(f)
		if err != nil {
			return err
		}
		watched[abs] = true
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	dirs := map[string]bool{}
	for abs := range watched {
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := w.Add(dir); err != nil {
			return err
		}
		dirs[dir] = true
	}

	if err := dumpFiles(cfg, cc.Out, files); err != nil {
		return err
	}
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			abs, err := filepath.Abs(ev.Name)
			if err != nil || !watched[abs] {
				continue
			}
			if err := dumpFiles(cfg, cc.Out, files); err != nil {
				return err
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}
