// Copyright 2024 Upbound Inc
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package discovery

import (
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/crossplane/crossplane-runtime/pkg/errors"
	"github.com/spf13/afero"

	"github.com/meshlint/meshlint/internal/report"
)

const (
	appManifestName    = "dapr.yaml"
	appManifestAltName = "dapr.yml"
	componentsDirName  = "components"
)

var componentSubdirs = []string{"components", "middleware", "bindings"}

// FindConfigRoot walks toward the filesystem root from start, looking for
// an ancestor that contains either dapr.yaml/dapr.yml or a components/
// directory. That ancestor is the configuration root. If none is found
// before reaching the filesystem root, start itself is returned — this is
// not an error.
func FindConfigRoot(fs afero.Fs, start string) string {
	current := filepath.Clean(start)
	for {
		if hasManifestOrComponents(fs, current) {
			return current
		}
		parent := filepath.Dir(current)
		if parent == current {
			return filepath.Clean(start)
		}
		current = parent
	}
}

func hasManifestOrComponents(fs afero.Fs, dir string) bool {
	for _, name := range []string{appManifestName, appManifestAltName} {
		if info, err := fs.Stat(filepath.Join(dir, name)); err == nil && !info.IsDir() {
			return true
		}
	}
	if info, err := fs.Stat(filepath.Join(dir, componentsDirName)); err == nil && info.IsDir() {
		return true
	}
	return false
}

// Walk enumerates every candidate file under root and returns them in
// deterministic (case-sensitive lexicographic, by relative path) order,
// along with any load_error findings for unreadable entries. Symlinks are
// followed.
func Walk(fs afero.Fs, root string) ([]Record, []report.Finding, error) {
	w := &walker{fs: fs, root: root}
	if _, err := fs.Stat(root); err != nil {
		return nil, nil, errors.Wrap(err, "configuration root is not accessible")
	}

	if info, err := fs.Stat(filepath.Join(root, appManifestName)); err == nil && !info.IsDir() {
		w.emit(appManifestName, ClassAppManifest)
	} else if info, err := fs.Stat(filepath.Join(root, appManifestAltName)); err == nil && !info.IsDir() {
		w.emit(appManifestAltName, ClassAppManifest)
	}

	for _, sub := range componentSubdirs {
		w.walkComponentDir(sub)
	}

	sort.Slice(w.records, func(i, j int) bool {
		return w.records[i].Path < w.records[j].Path
	})

	return w.records, w.findings, nil
}

type walker struct {
	fs       afero.Fs
	root     string
	records  []Record
	findings []report.Finding
}

func (w *walker) emit(relPath string, class Classification) {
	w.records = append(w.records, Record{Path: relPath, Classification: class})
}

func (w *walker) warn(relPath, message string) {
	w.findings = append(w.findings, report.Finding{
		Severity: report.SeverityWarning,
		Category: "load_error",
		File:     relPath,
		Message:  message,
	})
}

func (w *walker) walkComponentDir(relDir string) {
	absDir := filepath.Join(w.root, relDir)
	info, err := w.fs.Stat(absDir)
	if err != nil || !info.IsDir() {
		return
	}
	w.walkRecursive(relDir)
}

// walkRecursive visits every entry under relDir (relative to w.root),
// following symlinks, and emits component-candidate records for *.yaml /
// *.yml files.
func (w *walker) walkRecursive(relDir string) {
	absDir := filepath.Join(w.root, relDir)
	entries, err := afero.ReadDir(w.fs, absDir)
	if err != nil {
		w.warn(relDir, "cannot read directory: "+err.Error())
		return
	}

	for _, entry := range entries {
		relPath := path.Join(filepath.ToSlash(relDir), entry.Name())
		absPath := filepath.Join(w.root, relPath)

		info := entry
		if info.Mode()&os.ModeSymlink != 0 {
			resolved, err := w.fs.Stat(absPath)
			if err != nil {
				w.warn(relPath, "broken symlink: "+err.Error())
				continue
			}
			info = resolved
		}

		if info.IsDir() {
			w.walkRecursive(relPath)
			continue
		}

		if !isYAML(entry.Name()) {
			continue
		}
		if f, err := w.fs.Open(absPath); err != nil {
			w.warn(relPath, "cannot read file: "+err.Error())
			continue
		} else {
			_ = f.Close()
		}
		w.emit(relPath, ClassComponentCandidate)
	}
}

func isYAML(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}
