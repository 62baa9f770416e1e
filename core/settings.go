package core

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Settings is the per-pack configuration stored in pack.yml.
type Settings struct {
	VcsMode    VcsMode    `yaml:"vcs_mode"`
	BackupMode BackupMode `yaml:"backup_mode"`
}

func DefaultSettings() Settings {
	return Settings{
		VcsMode:    VcsTrackComponents,
		BackupMode: DefaultBackupMode(),
	}
}

// VcsMode controls how much git bookkeeping the tool does on its own.
type VcsMode string

const (
	// VcsTrackComponents commits every added or removed component.
	VcsTrackComponents VcsMode = "track_components"
	// VcsManual initializes a repo at setup and commits nothing after.
	VcsManual VcsMode = "manual"
)

func (m *VcsMode) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	switch VcsMode(raw) {
	case VcsTrackComponents, VcsManual:
		*m = VcsMode(raw)
		return nil
	}
	return fmt.Errorf("unknown vcs mode %q", raw)
}

// BackupMode is a union: either automatic start/stop backups with a
// retention depth, or fully manual. In YAML the manual variant is the
// bare scalar "manual" and the automatic one is a single-key mapping:
//
//	backup_mode:
//	    start_stop:
//	        min_depth: 4
type BackupMode struct {
	StartStop bool
	// MinDepth is how many backups survive garbage collection.
	// Meaningless in manual mode.
	MinDepth int
}

func DefaultBackupMode() BackupMode {
	// Pre-start and post-stop backups for the last 2 launches.
	return BackupMode{StartStop: true, MinDepth: 4}
}

func ManualBackupMode() BackupMode {
	return BackupMode{}
}

const backupModeManual = "manual"
const backupModeStartStop = "start_stop"

type startStopParams struct {
	MinDepth int `mapstructure:"min_depth"`
}

func (m BackupMode) MarshalYAML() (interface{}, error) {
	if !m.StartStop {
		return backupModeManual, nil
	}
	return map[string]map[string]int{
		backupModeStartStop: {"min_depth": m.MinDepth},
	}, nil
}

func (m *BackupMode) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var raw string
		if err := value.Decode(&raw); err != nil {
			return err
		}
		if raw != backupModeManual {
			return fmt.Errorf("unknown backup mode %q", raw)
		}
		*m = ManualBackupMode()
		return nil
	}

	var variants map[string]map[string]interface{}
	if err := value.Decode(&variants); err != nil {
		return err
	}
	params, ok := variants[backupModeStartStop]
	if !ok {
		return fmt.Errorf("unknown backup mode %v", variants)
	}
	var decoded startStopParams
	if err := mapstructure.Decode(params, &decoded); err != nil {
		return fmt.Errorf("invalid %s backup mode: %w", backupModeStartStop, err)
	}
	*m = BackupMode{StartStop: true, MinDepth: decoded.MinDepth}
	return nil
}
