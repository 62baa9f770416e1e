package fileio

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dlclark/regexp2"
	ignore "github.com/sabhiram/go-gitignore"

	"github.com/exoumoon/invar/core"
)

// candidateExpr matches any file that is not a component record.
var candidateExpr = regexp2.MustCompile(`^.+(?<!\.invar\.yml)$`, regexp2.None)

// defaultIgnoreLines are always excluded from a scan, on top of
// whatever the repository's own .gitignore excludes.
var defaultIgnoreLines = []string{
	".git/**",
	BackupDirectory + "/**",
	"*.mrpack",
	"docker-compose.yaml",
	"server/**",
	".gitkeep",
}

// ScanLocalCandidates walks the runtime directories and returns files
// that look like untracked local components: anything that is not a
// component record, not ignored, and not already listed in the pack
// manifest.
func ScanLocalCandidates(repo *LocalRepository) ([]core.LocalComponentEntry, error) {
	matcher, err := buildIgnoreMatcher(repo.RootDirectory)
	if err != nil {
		return nil, err
	}

	tracked := make(map[string]bool, len(repo.Pack.LocalComponents))
	for _, entry := range repo.Pack.LocalComponents {
		tracked[filepath.ToSlash(entry.Path)] = true
	}

	var candidates []core.LocalComponentEntry
	for _, dir := range core.RuntimeDirectories {
		root := filepath.Join(repo.RootDirectory, string(dir))
		if _, err := os.Stat(root); os.IsNotExist(err) {
			continue
		}

		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return err
			}

			relPath, err := filepath.Rel(repo.RootDirectory, path)
			if err != nil {
				return err
			}
			relPath = filepath.ToSlash(relPath)

			if matcher.MatchesPath(relPath) || tracked[relPath] {
				return nil
			}
			if isCandidate, err := candidateExpr.MatchString(filepath.Base(path)); err != nil || !isCandidate {
				return err
			}

			candidates = append(candidates, core.LocalComponentEntry{
				Path:     relPath,
				Category: core.DirCategory(dir),
			})
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return candidates, nil
}

func buildIgnoreMatcher(rootDir string) (*ignore.GitIgnore, error) {
	gitignorePath := filepath.Join(rootDir, ".gitignore")
	if _, err := os.Stat(gitignorePath); err == nil {
		return ignore.CompileIgnoreFileAndLines(gitignorePath, defaultIgnoreLines...)
	}
	return ignore.CompileIgnoreLines(defaultIgnoreLines...), nil
}
