// Package file stores column preferences in a yaml file.
package file

import (
	"os"
	"sync"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"datagrid/visibility"
)

const fileMode = 0o600

// prefs is the on-disk shape: one JSON record per table id.
type prefs struct {
	Tables map[string]string `yaml:"tables"`
}

// File is a Store backed by a single yaml file, rewritten on every change.
type File struct {
	mu   sync.Mutex
	path string
}

// New creates a File at path; the file is created on first write.
func New(path string) *File {
	return &File{path: path}
}

// Path returns the backing file path.
func (fl *File) Path() string {
	return fl.path
}

// Get returns the record for id.
func (fl *File) Get(id string) (data []byte, err error) {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	prf, err := fl.load()
	if err != nil {
		return
	}

	record, ok := prf.Tables[id]
	if !ok {
		err = visibility.ErrNotFound
		return
	}

	data = []byte(record)
	return
}

// Set replaces the record for id.
func (fl *File) Set(id string, data []byte) (err error) {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	prf, err := fl.load()
	if err != nil {
		return
	}

	prf.Tables[id] = string(data)
	err = fl.save(prf)
	return
}

// Clear removes the record for id.
func (fl *File) Clear(id string) (err error) {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	prf, err := fl.load()
	if err != nil {
		return
	}

	if _, ok := prf.Tables[id]; !ok {
		return
	}

	delete(prf.Tables, id)
	err = fl.save(prf)
	return
}

// unexported

func (fl *File) load() (prf prefs, err error) {

	prf.Tables = map[string]string{}

	data, err := os.ReadFile(fl.path)
	if os.IsNotExist(err) {
		err = nil
		return
	}
	if err != nil {
		err = errors.Wrapf(err, "failed to read from %s", fl.path)
		return
	}

	err = yaml.Unmarshal(data, &prf)
	if err != nil {
		err = errors.Wrapf(err, "failed to unmarshal %s", fl.path)
		return
	}

	if prf.Tables == nil {
		prf.Tables = map[string]string{}
	}
	return
}

func (fl *File) save(prf prefs) (err error) {

	data, err := yaml.Marshal(prf)
	if err != nil {
		err = errors.Wrapf(err, "failed to marshal")
		return
	}

	err = os.WriteFile(fl.path, data, fileMode)
	err = errors.Wrapf(err, "failed to write to %s", fl.path)
	return
}
