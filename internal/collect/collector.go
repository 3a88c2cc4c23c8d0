// Package collect runs the declaration-collection pass: it scans a
// source tree for Java files, extracts their declaration structure with
// tree-sitter, and builds the symbol graph the resolver works against.
package collect

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/errgroup"

	"github.com/standardbeagle/jsem/internal/config"
	"github.com/standardbeagle/jsem/internal/debug"
	jsemerrors "github.com/standardbeagle/jsem/internal/errors"
)

// Collector scans and parses Java sources into a Graph. It caches
// per-file declarations keyed by content hash so re-collection after a
// change only re-parses the files that actually changed.
type Collector struct {
	cfg *config.Config

	mu    sync.Mutex
	cache map[string]cachedFile
}

type cachedFile struct {
	hash uint64
	decl *fileDecl
}

// New creates a collector for the given configuration.
func New(cfg *config.Config) *Collector {
	return &Collector{
		cfg:   cfg,
		cache: make(map[string]cachedFile),
	}
}

// Collect discovers, parses and links every matching Java file under
// the project root. The returned graph is a fresh immutable snapshot;
// earlier graphs stay valid.
func (c *Collector) Collect(ctx context.Context) (*Graph, error) {
	paths, err := c.discover()
	if err != nil {
		return nil, err
	}
	decls, err := c.collectFiles(ctx, paths)
	if err != nil {
		return nil, err
	}
	return buildGraph(decls), nil
}

// discover walks the project root applying the include/exclude globs.
// Paths come back sorted for deterministic graph construction.
func (c *Collector) discover() ([]string, error) {
	root := c.cfg.Project.Root
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if !c.matches(rel) {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, jsemerrors.NewCollectError("discover", err)
	}
	sort.Strings(paths)
	return paths, nil
}

func (c *Collector) matches(rel string) bool {
	if !strings.HasSuffix(rel, ".java") {
		return false
	}
	for _, pat := range c.cfg.Sources.Exclude {
		if ok, _ := doublestar.Match(pat, rel); ok {
			return false
		}
	}
	if len(c.cfg.Sources.Include) == 0 {
		return true
	}
	for _, pat := range c.cfg.Sources.Include {
		if ok, _ := doublestar.Match(pat, rel); ok {
			return true
		}
	}
	return false
}

// collectFiles parses the given files in parallel, consulting the
// content-hash cache first.
func (c *Collector) collectFiles(ctx context.Context, paths []string) ([]*fileDecl, error) {
	workers := c.cfg.Collector.Workers
	if workers <= 0 {
		workers = defaultWorkers()
	}

	decls := make([]*fileDecl, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			decl, err := c.collectFile(path)
			if err != nil {
				return err
			}
			decls[i] = decl
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := decls[:0]
	for _, d := range decls {
		if d != nil {
			out = append(out, d)
		}
	}
	return out, nil
}

// collectFile parses one file, or skips it when oversized. A cache hit
// on the content hash reuses the previous declarations.
func (c *Collector) collectFile(path string) (*fileDecl, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, jsemerrors.NewCollectError("stat", err).WithFile(path)
	}
	if info.Size() > c.cfg.Collector.MaxFileSize {
		debug.Printf("collect: skipping %s (%d bytes over limit)\n", path, info.Size())
		return nil, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, jsemerrors.NewCollectError("read", err).WithFile(path)
	}

	hash := xxhash.Sum64(content)
	c.mu.Lock()
	if cached, ok := c.cache[path]; ok && cached.hash == hash {
		c.mu.Unlock()
		return cached.decl, nil
	}
	c.mu.Unlock()

	decl, err := parseJavaFile(path, content)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.cache[path] = cachedFile{hash: hash, decl: decl}
	c.mu.Unlock()
	return decl, nil
}

// Invalidate drops the cached declarations of a path, forcing a
// re-parse on the next collection. Used by the watcher on removals.
func (c *Collector) Invalidate(path string) {
	c.mu.Lock()
	delete(c.cache, path)
	c.mu.Unlock()
}

func defaultWorkers() int {
	n := runtime.NumCPU()
	if n < 1 {
		return 1
	}
	return n
}
