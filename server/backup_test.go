package server

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exoumoon/invar/core"
	"github.com/exoumoon/invar/fileio"
)

func newServerRepo(t *testing.T) *fileio.LocalRepository {
	t.Helper()

	pack := core.NewPack("testpack", "0.1.0", core.NewInstance(
		core.ParseMinecraftVersion("1.20.1"), core.LoaderNeoforge, "21.1.77",
	))
	pack.Settings = core.Settings{
		VcsMode:    core.VcsManual,
		BackupMode: core.BackupMode{StartStop: true, MinDepth: 2},
	}

	repo := &fileio.LocalRepository{RootDirectory: t.TempDir(), Pack: pack}
	require.NoError(t, repo.WritePack())

	require.NoError(t, os.MkdirAll(repo.Path(DataDirectory, "world"), 0755))
	require.NoError(t, os.WriteFile(repo.Path(DataDirectory, "world", "level.dat"), []byte("world data"), 0644))
	return repo
}

func TestParseBackupName(t *testing.T) {
	backup := parseBackupName("3_testpack(pre-start)_2026-08-29T10.30.00")
	assert.Equal(t, 3, backup.SeqNumber)
	assert.Equal(t, "pre-start", backup.Tag)
	expected := time.Date(2026, 8, 29, 10, 30, 0, 0, time.Local)
	assert.Equal(t, expected, backup.CreatedAt)

	untagged := parseBackupName("12_testpack_2026-01-02T03.04.05")
	assert.Equal(t, 12, untagged.SeqNumber)
	assert.Empty(t, untagged.Tag)

	// Underscores in the pack name don't break the seq/timestamp split.
	odd := parseBackupName("5_my_pack_2026-01-02T03.04.05")
	assert.Equal(t, 5, odd.SeqNumber)

	garbage := parseBackupName("not-a-backup")
	assert.Zero(t, garbage.SeqNumber)
}

func TestCreateBackupCopiesServerData(t *testing.T) {
	repo := newServerRepo(t)

	backup, err := CreateBackup(repo, "pre-start")
	require.NoError(t, err)
	assert.Equal(t, 1, backup.SeqNumber)
	assert.Equal(t, "pre-start", backup.Tag)
	assert.FileExists(t, backup.Path+"/world/level.dat")

	data, err := os.ReadFile(backup.Path + "/world/level.dat")
	require.NoError(t, err)
	assert.Equal(t, "world data", string(data))

	second, err := CreateBackup(repo, "")
	require.NoError(t, err)
	assert.Equal(t, 2, second.SeqNumber)
}

func TestListBackupsNewestFirst(t *testing.T) {
	repo := newServerRepo(t)
	for i := 0; i < 3; i++ {
		_, err := CreateBackup(repo, "")
		require.NoError(t, err)
	}

	backups, err := ListBackups(repo)
	require.NoError(t, err)
	require.Len(t, backups, 3)
	assert.Equal(t, 3, backups[0].SeqNumber)
	assert.Equal(t, 2, backups[1].SeqNumber)
	assert.Equal(t, 1, backups[2].SeqNumber)
}

func TestCollectGarbageKeepsMinDepthNewest(t *testing.T) {
	repo := newServerRepo(t)
	for i := 0; i < 5; i++ {
		_, err := CreateBackup(repo, "")
		require.NoError(t, err)
	}

	removed, err := CollectGarbage(repo)
	require.NoError(t, err)
	require.Len(t, removed, 3)
	// Oldest go first into the bin.
	assert.Equal(t, 3, removed[0].SeqNumber)
	assert.Equal(t, 2, removed[1].SeqNumber)
	assert.Equal(t, 1, removed[2].SeqNumber)

	remaining, err := ListBackups(repo)
	require.NoError(t, err)
	require.Len(t, remaining, 2)
	assert.Equal(t, 5, remaining[0].SeqNumber)
	assert.Equal(t, 4, remaining[1].SeqNumber)
}

func TestCollectGarbageDoesNothingInManualMode(t *testing.T) {
	repo := newServerRepo(t)
	repo.Pack.Settings.BackupMode = core.ManualBackupMode()
	for i := 0; i < 3; i++ {
		_, err := CreateBackup(repo, "")
		require.NoError(t, err)
	}

	removed, err := CollectGarbage(repo)
	require.NoError(t, err)
	assert.Empty(t, removed)

	remaining, err := ListBackups(repo)
	require.NoError(t, err)
	assert.Len(t, remaining, 3)
}

func TestListBackupsWithoutBackupDirectory(t *testing.T) {
	repo := newServerRepo(t)

	backups, err := ListBackups(repo)
	require.NoError(t, err)
	assert.Empty(t, backups)
}
