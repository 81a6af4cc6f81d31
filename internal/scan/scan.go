// Package scan walks directory trees and collects file sizes for
// display by the ls and tui commands.
package scan

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
)

// Entry is a single regular file found during a walk.
type Entry struct {
	Path  string
	Bytes uint64
}

// Result summarizes a completed walk.
type Result struct {
	Root    string
	Total   uint64
	Files   int
	Skipped int // entries that could not be read
}

// Walk visits every regular file under root, calling visit for each.
// Unreadable entries are counted and skipped rather than aborting the
// walk. The walk stops early when ctx is canceled.
func Walk(ctx context.Context, root string, visit func(Entry)) (Result, error) {
	res := Result{Root: root}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		if err != nil {
			res.Skipped++
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		info, ierr := d.Info()
		if ierr != nil {
			res.Skipped++
			return nil
		}
		e := Entry{Path: path, Bytes: uint64(info.Size())}
		res.Total += e.Bytes
		res.Files++
		if visit != nil {
			visit(e)
		}
		return nil
	})
	return res, err
}

// Size summarizes path: the file's own size, or the summed size of
// every regular file beneath it when path is a directory. The result
// carries the skipped-entry count so callers can report it.
func Size(ctx context.Context, path string) (Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Result{Root: path}, err
	}
	if !info.IsDir() {
		return Result{Root: path, Total: uint64(info.Size()), Files: 1}, nil
	}
	return Walk(ctx, path, nil)
}
