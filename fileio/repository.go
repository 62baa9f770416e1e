package fileio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/exoumoon/invar/core"
	"github.com/exoumoon/invar/internal/git"
)

const (
	// PackFileName is the manifest at the repository root.
	PackFileName = "pack.yml"
	// ComponentFileSuffix marks component metadata records.
	ComponentFileSuffix = ".invar.yml"
	// BackupDirectory holds server backups; never scanned for components.
	BackupDirectory = ".backups"
)

// ErrComponentNotFound is returned by RemoveComponents when no
// component matches the given id.
var ErrComponentNotFound = errors.New("no matching components found")

// LocalRepository is the on-disk directory of component files plus
// the pack manifest.
type LocalRepository struct {
	RootDirectory string
	Pack          *core.Pack
}

// Open reads the pack manifest under root.
func Open(root string) (*LocalRepository, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	pack, err := LoadPackFile(filepath.Join(abs, PackFileName))
	if err != nil {
		return nil, err
	}
	return &LocalRepository{RootDirectory: abs, Pack: pack}, nil
}

// OpenAtGitRoot opens the repository at the root of the enclosing git
// worktree, so commands work from any subdirectory.
func OpenAtGitRoot() (*LocalRepository, error) {
	root, err := git.WorktreeRoot(".")
	if err != nil {
		return nil, fmt.Errorf("not inside a pack repository: %w", err)
	}
	return Open(root)
}

// Path resolves a repository-relative path against the root.
func (r *LocalRepository) Path(elements ...string) string {
	return filepath.Join(append([]string{r.RootDirectory}, elements...)...)
}

func (r *LocalRepository) Instance() *core.Instance {
	return &r.Pack.Instance
}

// Components loads every metadata record in the tree plus every
// manifest-listed local entry.
func (r *LocalRepository) Components() ([]core.Component, error) {
	var components []core.Component

	err := filepath.WalkDir(r.RootDirectory, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			if entry.Name() == ".git" || entry.Name() == BackupDirectory {
				return fs.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(entry.Name(), ComponentFileSuffix) {
			return nil
		}
		component, err := LoadComponentFile(path)
		if err != nil {
			return err
		}
		components = append(components, *component)
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, entry := range r.Pack.LocalComponents {
		components = append(components, entry.Component())
	}

	return components, nil
}

// ComponentPath is where a component's metadata record is saved: the
// category's runtime directory, an optional main-tag subfolder, then
// "<id>.invar.yml". The subfolder only matters at save time; records
// are found again wherever the user later moves them.
func (r *LocalRepository) ComponentPath(component *core.Component) string {
	parts := []string{r.RootDirectory, core.CategoryDir(component.Category).String()}
	if component.Tags.Main != nil {
		parts = append(parts, string(*component.Tags.Main))
	}
	parts = append(parts, component.Id.String()+ComponentFileSuffix)
	return filepath.Join(parts...)
}

// recordPath finds the on-disk metadata record for id, wherever the
// user may have moved it. Empty when no record exists yet.
func (r *LocalRepository) recordPath(id core.Id) (string, error) {
	var found string
	err := filepath.WalkDir(r.RootDirectory, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			if entry.Name() == ".git" || entry.Name() == BackupDirectory {
				return fs.SkipDir
			}
			return nil
		}
		if entry.Name() == id.String()+ComponentFileSuffix {
			found = path
			return fs.SkipAll
		}
		return nil
	})
	return found, err
}

// SaveComponent persists a component: remote ones get a metadata
// record, local ones become a manifest entry. An existing record is
// rewritten in place, even if the user has moved it.
func (r *LocalRepository) SaveComponent(component *core.Component) error {
	if err := component.Source.Validate(); err != nil {
		return err
	}

	if component.Source.IsLocal() {
		r.Pack.LocalComponents = append(r.Pack.LocalComponents, core.LocalComponentEntry{
			Path:     component.Source.Local.Path,
			Category: component.Category,
		})
		if err := r.WritePack(); err != nil {
			return err
		}
	} else {
		target, err := r.recordPath(component.Id)
		if err != nil {
			return err
		}
		if target == "" {
			target = r.ComponentPath(component)
		}
		if err := WriteComponentFile(component, target); err != nil {
			return err
		}
	}

	return r.commitIfTracking(fmt.Sprintf("invar: Save component %s", component.Id))
}

// RemoveComponents deletes every component matching id.
func (r *LocalRepository) RemoveComponents(id core.Id) error {
	components, err := r.Components()
	if err != nil {
		return err
	}

	removed := false
	for i := range components {
		component := &components[i]
		if component.Id != id {
			continue
		}
		if component.Source.IsRemote() {
			record, err := r.recordPath(component.Id)
			if err != nil {
				return err
			}
			if err := os.Remove(record); err != nil {
				return fmt.Errorf("removing %s: %w", record, err)
			}
		} else {
			kept := r.Pack.LocalComponents[:0]
			for _, entry := range r.Pack.LocalComponents {
				if entry.Id() != id {
					kept = append(kept, entry)
				}
			}
			r.Pack.LocalComponents = kept
			if err := r.WritePack(); err != nil {
				return err
			}
		}
		removed = true
	}

	if !removed {
		return ErrComponentNotFound
	}
	return r.commitIfTracking(fmt.Sprintf("invar: Remove component %s", id))
}

// WritePack rewrites the manifest.
func (r *LocalRepository) WritePack() error {
	return WritePackFile(r.Pack, filepath.Join(r.RootDirectory, PackFileName))
}

// Setup lays out a fresh repository: runtime directories with
// .gitkeep markers, an ignored backup directory, and a git repo with
// an initial commit when the pack tracks components.
func (r *LocalRepository) Setup() error {
	if err := git.Init(r.RootDirectory); err != nil {
		return err
	}

	backupDir := filepath.Join(r.RootDirectory, BackupDirectory)
	if err := os.MkdirAll(backupDir, os.ModePerm); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(backupDir, ".gitignore"), []byte("*\n"), 0o644); err != nil {
		return err
	}

	for _, dir := range core.RuntimeDirectories {
		target := filepath.Join(r.RootDirectory, dir.String())
		if err := os.MkdirAll(target, os.ModePerm); err != nil {
			return err
		}
		keep := filepath.Join(target, ".gitkeep")
		if _, err := os.Stat(keep); os.IsNotExist(err) {
			if err := os.WriteFile(keep, nil, 0o644); err != nil {
				return err
			}
		}
	}

	return r.commitIfTracking("invar: Initial commit")
}

func (r *LocalRepository) commitIfTracking(message string) error {
	if r.Pack.Settings.VcsMode != core.VcsTrackComponents {
		return nil
	}
	return git.CommitAll(r.RootDirectory, message)
}

// ModpackFileName derives the export archive name from the pack, the
// current time and the HEAD commit.
func (r *LocalRepository) ModpackFileName() (string, error) {
	hash, err := git.HeadShortHash(r.RootDirectory)
	if err != nil {
		return "", err
	}
	stamp := time.Now().Format("20060102-1504")
	return fmt.Sprintf("%s-v%s-%s-%s.mrpack", r.Pack.Name, r.Pack.Version, stamp, hash), nil
}
