package config

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrEmpty indicates a job file with no content, as seen mid-write.
var ErrEmpty = errors.New("config: job file is empty")

// Loader reads a YAML job file and watches it for changes.
type Loader struct {
	path     string
	mu       sync.RWMutex
	current  *JobFile
	onChange []func(*JobFile)
	onError  func(error)
}

// NewLoader creates a Loader and performs the initial load.
func NewLoader(path string) (*Loader, error) {
	l := &Loader{path: path}
	cfg, err := l.load()
	if err != nil {
		return nil, err
	}
	l.current = cfg

	return l, nil
}

// Path returns the job file path.
func (l *Loader) Path() string { return l.path }

// Config returns the current (latest) configuration.
func (l *Loader) Config() *JobFile {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.current
}

// OnChange registers a callback invoked whenever the job file reloads.
func (l *Loader) OnChange(fn func(*JobFile)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onChange = append(l.onChange, fn)
}

// OnError registers a callback for reloads that failed; the old
// configuration stays current.
func (l *Loader) OnError(fn func(error)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onError = fn
}

// Watch starts a background goroutine that hot-reloads the job file on changes.
// Call the returned stop function to clean up.
func (l *Loader) Watch() (stop func(), err error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "config watcher")
	}
	// Watch the directory: editors often replace the file instead of writing it.
	if err := w.Add(filepath.Dir(l.path)); err != nil {
		w.Close()
		return nil, errors.Wrapf(err, "config watcher add %s", l.path)
	}
	target := filepath.Clean(l.path)

	done := make(chan struct{})
	go func() {
		defer w.Close()
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
					if _, err := l.Reload(); err != nil {
						l.reportError(err)
					}
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				l.reportError(errors.Wrap(err, "config watcher"))
			case <-done:
				return
			}
		}
	}()

	var once sync.Once

	return func() { once.Do(func() { close(done) }) }, nil
}

// Reload forces an immediate re-read of the job file.
func (l *Loader) Reload() (*JobFile, error) {
	cfg, err := l.load()
	if err != nil {
		return nil, err
	}
	l.mu.Lock()
	l.current = cfg
	callbacks := make([]func(*JobFile), len(l.onChange))
	copy(callbacks, l.onChange)
	l.mu.Unlock()
	for _, fn := range callbacks {
		fn(cfg)
	}

	return cfg, nil
}

func (l *Loader) reportError(err error) {
	l.mu.RLock()
	fn := l.onError
	l.mu.RUnlock()
	if fn != nil {
		fn(err)
	}
}

func (l *Loader) load() (*JobFile, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", l.path)
	}
	cfg, err := Decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parse config %s", l.path)
	}
	cfg.resolveFiles(filepath.Dir(l.path))

	return cfg, nil
}

// Decode parses a job file and applies defaults.
func Decode(data []byte) (*JobFile, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmpty
	}
	var cfg JobFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	// Apply defaults.
	if cfg.Defaults.Algorithm == "" {
		cfg.Defaults.Algorithm = AlgorithmAStar
	}
	if cfg.Defaults.Membership == "" {
		cfg.Defaults.Membership = MembershipPathSet
	}
	for i := range cfg.Jobs {
		j := &cfg.Jobs[i]
		if j.Algorithm == "" {
			j.Algorithm = cfg.Defaults.Algorithm
		}
		if j.Membership == "" {
			j.Membership = cfg.Defaults.Membership
		}
		if j.Kind == KindSlide && j.Size == 0 {
			j.Size = 3
		}
		if j.Kind == KindHill && j.MaxClimb == nil {
			climb := 1
			j.MaxClimb = &climb
		}
	}

	return &cfg, nil
}

func (cfg *JobFile) resolveFiles(dir string) {
	for i := range cfg.Jobs {
		if f := cfg.Jobs[i].File; f != "" && !filepath.IsAbs(f) {
			cfg.Jobs[i].File = filepath.Join(dir, f)
		}
	}
}

// ReadInput returns the puzzle text of j, reading File when set.
func (j Job) ReadInput() (string, error) {
	if j.File == "" {
		return j.Input, nil
	}
	data, err := os.ReadFile(j.File)
	if err != nil {
		return "", errors.Wrapf(err, "job %s: read input", j.Name)
	}

	return string(data), nil
}
