// Package server drives a docker-compose hosted game server for the
// pack: manifest generation, start/stop with snapshot backups, and
// status reporting.
package server

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/charmbracelet/log"

	"github.com/exoumoon/invar/fileio"
)

// Start brings the server up in the background. When the pack's
// backup mode is start_stop, a pre-start backup is taken first and
// old backups are collected.
func Start(repo *fileio.LocalRepository) error {
	if err := backupAndCollect(repo, "pre-start"); err != nil {
		return err
	}
	return compose(repo, "up", "--detach")
}

// Stop shuts the server down, then takes a post-stop backup when the
// pack's backup mode is start_stop.
func Stop(repo *fileio.LocalRepository) error {
	if err := compose(repo, "down"); err != nil {
		return err
	}
	return backupAndCollect(repo, "post-stop")
}

// Status reports the compose service state straight to the terminal.
func Status(repo *fileio.LocalRepository) error {
	return compose(repo, "ps")
}

func backupAndCollect(repo *fileio.LocalRepository, tag string) error {
	if !repo.Pack.Settings.BackupMode.StartStop {
		return nil
	}
	if _, err := os.Stat(repo.Path(DataDirectory)); os.IsNotExist(err) {
		return nil
	}

	backup, err := CreateBackup(repo, tag)
	if err != nil {
		return err
	}
	log.Info("created " + backup.String())

	removed, err := CollectGarbage(repo)
	if err != nil {
		return err
	}
	for i := range removed {
		log.Info("removed old " + removed[i].String())
	}
	return nil
}

func compose(repo *fileio.LocalRepository, args ...string) error {
	cmdArgs := append([]string{"compose", "--file", ComposeFileName}, args...)
	cmd := exec.Command("docker", cmdArgs...)
	cmd.Dir = repo.RootDirectory
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("docker compose %s failed: %w", args[0], err)
	}
	return nil
}
