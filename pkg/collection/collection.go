// Package collection builds an in-memory tree of saved request documents that
// mirrors the directory layout they live in. Every directory that directly or
// transitively contains a request document becomes one node; directories with
// no documents underneath are never materialized.
package collection

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/restbook/restbook/pkg/request"
)

// FileSuffix marks request documents among whatever other YAML files share a
// collection directory.
const FileSuffix = ".restbook.yaml"

// DefaultName labels a root collection with no directory name of its own.
const DefaultName = "__default__"

// Collection is one node of the tree: the requests stored directly in a
// directory plus one child per subdirectory holding further documents. The
// root exclusively owns its subtree; there are no parent back-references.
type Collection struct {
	Path     string
	Name     string
	Requests []*request.Request
	Children []*Collection
}

// New returns an empty, unnamed collection rooted at path.
func New(path string) *Collection {
	return &Collection{Path: path, Name: DefaultName}
}

// FromDirectory walks dir recursively, decodes every *.restbook.yaml document
// found, and assembles the collection tree. An empty dir means the current
// working directory. A document that fails to decode is logged and skipped so
// one bad file never hides the rest; only a failure to read the tree itself
// aborts the build. A nil logger falls back to slog.Default().
//
// Sibling order reflects filesystem enumeration order; callers that need a
// particular display order must sort the result themselves.
func FromDirectory(dir string, logger *slog.Logger) (*Collection, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve working directory: %w", err)
		}
		dir = cwd
	}

	root := &Collection{Path: dir, Name: filepath.Base(dir)}

	walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return err
			}
			// An unreadable subtree costs its documents, not the build.
			logger.Warn("skipping unreadable path", "path", path, "error", err)
			return nil
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), FileSuffix) {
			return nil
		}

		req, err := request.Load(path)
		if err != nil {
			logger.Warn("failed to load request document", "path", path, "error", err)
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			logger.Warn("failed to resolve document path", "path", path, "error", err)
			return nil
		}
		root.insert(segments(rel), req)
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("failed to scan collection directory: %w", walkErr)
	}
	return root, nil
}

// insert descends from c one directory segment at a time, reusing the child
// with a matching name and creating it when absent, then appends req to the
// node the final segment lands on. Documents with no segments attach to c
// itself.
func (c *Collection) insert(segs []string, req *request.Request) {
	node := c
	subpath := c.Path
	for _, seg := range segs {
		subpath = filepath.Join(subpath, seg)
		node = node.child(seg, subpath)
	}
	node.Requests = append(node.Requests, req)
}

// child returns the direct child named name, creating and appending one when
// no sibling matches. Matching before creating is what keeps two documents
// under the same directory chain on a single shared node.
func (c *Collection) child(name, path string) *Collection {
	for _, existing := range c.Children {
		if existing.Name == name {
			return existing
		}
	}
	created := &Collection{Path: path, Name: name}
	c.Children = append(c.Children, created)
	return created
}

// Count returns the number of requests in the collection and all of its
// descendants.
func (c *Collection) Count() int {
	n := len(c.Requests)
	for _, child := range c.Children {
		n += child.Count()
	}
	return n
}

// segments returns the directory components of a relative document path,
// excluding the filename itself.
func segments(rel string) []string {
	dir := filepath.Dir(rel)
	if dir == "." {
		return nil
	}
	return strings.Split(dir, string(filepath.Separator))
}
