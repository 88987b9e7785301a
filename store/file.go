package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

// Compile-time interface check.
var _ Store = (*FileStore)(nil)

// FileStore serves site configuration from a YAML document. It is read-only
// through the Store interface; edits happen in the file itself. Call
// [FileStore.Watch] to pick up edits without restarting the process.
//
// Document format:
//
//	sites:
//	  main:
//	    base_url: http://example.com/public
//	    index_page: index.php
//	    allowed_hosts:
//	      - www.example.jp
type FileStore struct {
	path string

	mu    sync.RWMutex
	sites map[string]Site

	watcher *fsnotify.Watcher
	done    chan struct{}
}

type fileDoc struct {
	Sites map[string]fileSite `yaml:"sites"`
}

type fileSite struct {
	BaseURL      string   `yaml:"base_url"`
	IndexPage    string   `yaml:"index_page"`
	AllowedHosts []string `yaml:"allowed_hosts"`
}

// NewFileStore loads the YAML document at the given path.
func NewFileStore(path string) (*FileStore, error) {
	f := &FileStore{path: path}
	if err := f.reload(); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *FileStore) reload() error {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		return fmt.Errorf("siteurl/store: read %s: %w", f.path, err)
	}

	var doc fileDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("siteurl/store: parse %s: %w", f.path, err)
	}

	sites := make(map[string]Site, len(doc.Sites))
	for name, s := range doc.Sites {
		sites[name] = Site{
			BaseURL:      s.BaseURL,
			IndexPage:    s.IndexPage,
			AllowedHosts: s.AllowedHosts,
		}
	}

	f.mu.Lock()
	f.sites = sites
	f.mu.Unlock()
	return nil
}

// Watch starts reloading the document whenever the file changes. The watch
// covers the file's directory, so editors that replace the file on save are
// picked up too. notify, if non-nil, is called after every reload attempt
// with the reload result; a failed reload keeps the previous configuration.
func (f *FileStore) Watch(notify func(error)) error {
	if f.watcher != nil {
		return fmt.Errorf("siteurl/store: %s is already being watched", f.path)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("siteurl/store: start watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(f.path)); err != nil {
		w.Close()
		return fmt.Errorf("siteurl/store: watch %s: %w", f.path, err)
	}

	f.watcher = w
	f.done = make(chan struct{})

	go func() {
		defer close(f.done)
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != filepath.Clean(f.path) {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				err := f.reload()
				if notify != nil {
					notify(err)
				}
			case _, ok := <-w.Errors:
				if !ok {
					return
				}
			}
		}
	}()
	return nil
}

// Lookup returns the configuration stored for the named site.
func (f *FileStore) Lookup(_ context.Context, name string) (Site, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	s, ok := f.sites[name]
	if !ok {
		return Site{}, ErrNotFound
	}
	return cloneSite(s), nil
}

// Put returns ErrReadOnly; edit the file instead.
func (f *FileStore) Put(context.Context, string, Site) error {
	return ErrReadOnly
}

// Remove returns ErrReadOnly; edit the file instead.
func (f *FileStore) Remove(context.Context, string) error {
	return ErrReadOnly
}

// Names returns the names of all stored sites, sorted.
func (f *FileStore) Names(_ context.Context) ([]string, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]string, 0, len(f.sites))
	for name := range f.sites {
		out = append(out, name)
	}
	sort.Strings(out)
	return out, nil
}

// Close stops the watcher, if any.
func (f *FileStore) Close() error {
	if f.watcher == nil {
		return nil
	}
	err := f.watcher.Close()
	<-f.done
	f.watcher = nil
	return err
}
