package server

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/exoumoon/invar/fileio"
)

const (
	backupSeparator = "_"
	// backupTimeLayout has no characters that clash with the
	// separator, so names stay parseable.
	backupTimeLayout = "2006-01-02T15.04.05"
)

// Backup is one sequence-numbered snapshot of the server data
// directory, living under the backup folder.
type Backup struct {
	Path      string
	SeqNumber int
	Tag       string
	CreatedAt time.Time
}

func (b *Backup) String() string {
	tag := ""
	if b.Tag != "" {
		tag = fmt.Sprintf(" (%s)", b.Tag)
	}
	return fmt.Sprintf("backup #%d%s, created at %s", b.SeqNumber, tag, b.CreatedAt.Format("02/01/2006 15:04:05"))
}

// ListBackups returns all backups under the repository's backup
// folder, newest (highest sequence number) first.
func ListBackups(repo *fileio.LocalRepository) ([]Backup, error) {
	entries, err := os.ReadDir(repo.Path(fileio.BackupDirectory))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var backups []Backup
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		backup := parseBackupName(entry.Name())
		backup.Path = repo.Path(fileio.BackupDirectory, entry.Name())
		backups = append(backups, backup)
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].SeqNumber > backups[j].SeqNumber
	})
	return backups, nil
}

// parseBackupName decodes `<seq>_<name>[(tag)]_<timestamp>`. Fields
// that fail to parse get zero values rather than failing the listing,
// so a stray directory cannot brick every backup operation.
func parseBackupName(name string) Backup {
	backup := Backup{}
	parts := strings.Split(name, backupSeparator)
	if len(parts) < 2 {
		return backup
	}

	if seq, err := strconv.Atoi(parts[0]); err == nil {
		backup.SeqNumber = seq
	}
	if createdAt, err := time.ParseInLocation(backupTimeLayout, parts[len(parts)-1], time.Local); err == nil {
		backup.CreatedAt = createdAt
	}

	middle := strings.Join(parts[1:len(parts)-1], backupSeparator)
	if open := strings.LastIndex(middle, "("); open >= 0 && strings.HasSuffix(middle, ")") {
		backup.Tag = middle[open+1 : len(middle)-1]
	}
	return backup
}

// CreateBackup copies the whole server data directory into a new
// sequence-numbered snapshot. The tag, if any, ends up in the
// directory name.
func CreateBackup(repo *fileio.LocalRepository, tag string) (*Backup, error) {
	existing, err := ListBackups(repo)
	if err != nil {
		return nil, err
	}
	seqNumber := 1
	if len(existing) > 0 {
		seqNumber = existing[0].SeqNumber + 1
	}

	createdAt := time.Now()
	name := fmt.Sprintf("%d%s%s", seqNumber, backupSeparator, repo.Pack.Name)
	if tag != "" {
		name += fmt.Sprintf("(%s)", tag)
	}
	name += backupSeparator + createdAt.Format(backupTimeLayout)

	targetDir := repo.Path(fileio.BackupDirectory, name)
	if err := copyDirectory(repo.Path(DataDirectory), targetDir); err != nil {
		return nil, fmt.Errorf("failed to create backup: %w", err)
	}

	return &Backup{
		Path:      targetDir,
		SeqNumber: seqNumber,
		Tag:       tag,
		CreatedAt: createdAt,
	}, nil
}

// CollectGarbage removes backups beyond the configured retention
// depth. Manual backup mode never removes anything.
func CollectGarbage(repo *fileio.LocalRepository) (removed []Backup, err error) {
	backupMode := repo.Pack.Settings.BackupMode
	if !backupMode.StartStop {
		log.Warn("backups are manual for this pack, not garbage-collecting")
		return nil, nil
	}

	backups, err := ListBackups(repo)
	if err != nil {
		return nil, err
	}
	if len(backups) <= backupMode.MinDepth {
		return nil, nil
	}

	for _, old := range backups[backupMode.MinDepth:] {
		if err := os.RemoveAll(old.Path); err != nil {
			return removed, err
		}
		removed = append(removed, old)
	}
	return removed, nil
}

func copyDirectory(sourceDir, targetDir string) error {
	return filepath.WalkDir(sourceDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		relPath, err := filepath.Rel(sourceDir, path)
		if err != nil {
			return err
		}
		targetPath := filepath.Join(targetDir, relPath)

		if d.IsDir() {
			return os.MkdirAll(targetPath, 0755)
		}

		source, err := os.Open(path)
		if err != nil {
			return err
		}
		defer source.Close()

		target, err := fileio.CreateFile(targetPath)
		if err != nil {
			return err
		}
		defer target.Close()

		_, err = io.Copy(target, source)
		return err
	})
}
