package server

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/exoumoon/invar/core"
	"github.com/exoumoon/invar/fileio"
)

const (
	// ComposeFileName is where the generated manifest lives, relative
	// to the repository root.
	ComposeFileName = "docker-compose.yaml"
	// DataDirectory is the host-side bind mount for all server state.
	DataDirectory = "server"
	// ServerImage runs the actual game server; it installs the
	// mounted .mrpack on boot.
	ServerImage = "itzg/minecraft-server:java17"

	DefaultMinecraftPort = 25565

	modpackMountPath = "/data/modpack.mrpack"
	serviceName      = "server"
)

var ErrAlreadySetUp = errors.New("a local server is already set up, delete " + ComposeFileName + " to start over")

// Compose models the subset of the docker-compose manifest schema
// that the generated server definition needs.
type Compose struct {
	Services map[string]Service `yaml:"services"`
}

type Service struct {
	Image         string            `yaml:"image"`
	Hostname      string            `yaml:"hostname"`
	ContainerName string            `yaml:"container_name"`
	Restart       string            `yaml:"restart"`
	Environment   map[string]string `yaml:"environment"`
	Ports         []string          `yaml:"ports"`
	Volumes       []Volume          `yaml:"volumes"`
}

type Volume struct {
	Type     string `yaml:"type"`
	Source   string `yaml:"source"`
	Target   string `yaml:"target"`
	ReadOnly bool   `yaml:"read_only,omitempty"`
}

// ComposeOptions are the tunables baked into the generated manifest.
// They only affect generation; edit the manifest itself afterwards.
type ComposeOptions struct {
	MemoryGigabytes int
	MaxPlayers      int
	ViewDistance    int
	Gamemode        string
	Difficulty      string
	OnlineMode      bool
	AllowFlight     bool
}

func DefaultComposeOptions() ComposeOptions {
	return ComposeOptions{
		MemoryGigabytes: 12,
		MaxPlayers:      4,
		ViewDistance:    12,
		Gamemode:        "survival",
		Difficulty:      "hard",
		OnlineMode:      false,
		AllowFlight:     true,
	}
}

// GenerateCompose builds a docker-compose manifest for the given pack.
// modpackFileName is the exported archive the container should install,
// relative to the repository root.
func GenerateCompose(pack *core.Pack, modpackFileName string, options ComposeOptions) *Compose {
	hostname := fmt.Sprintf("%s_server", pack.Name)

	return &Compose{
		Services: map[string]Service{
			serviceName: {
				Image:         ServerImage,
				Hostname:      hostname,
				ContainerName: hostname,
				Restart:       "unless-stopped",
				Environment:   buildEnvironment(&pack.Instance, options),
				Ports: []string{
					fmt.Sprintf("%d:%d", DefaultMinecraftPort, DefaultMinecraftPort),
				},
				Volumes: []Volume{
					{
						Type:   "bind",
						Source: "./" + DataDirectory,
						Target: "/data",
					},
					{
						Type:     "bind",
						Source:   "./" + modpackFileName,
						Target:   modpackMountPath,
						ReadOnly: true,
					},
				},
			},
		},
	}
}

func buildEnvironment(instance *core.Instance, options ComposeOptions) map[string]string {
	loaderVersionKey := fmt.Sprintf("%s_VERSION", strings.ToUpper(string(instance.Loader)))

	return map[string]string{
		"EULA":             "TRUE",
		"TYPE":             "MODRINTH",
		"VERSION":          instance.MinecraftVersion.String(),
		loaderVersionKey:   instance.LoaderVersion,
		"MODRINTH_MODPACK": modpackMountPath,
		"MEMORY":           fmt.Sprintf("%dG", options.MemoryGigabytes),
		"USE_AIKAR_FLAGS":  "true",
		"ENABLE_AUTOPAUSE": "true",
		"VIEW_DISTANCE":    strconv.Itoa(options.ViewDistance),
		"MODE":             options.Gamemode,
		"DIFFICULTY":       options.Difficulty,
		"MAX_PLAYERS":      strconv.Itoa(options.MaxPlayers),
		"ALLOW_FLIGHT":     strconv.FormatBool(options.AllowFlight),
		"ONLINE_MODE":      strconv.FormatBool(options.OnlineMode),
	}
}

// Setup exports the pack, creates the data directory and writes the
// compose manifest. It refuses to touch an existing manifest.
func Setup(repo *fileio.LocalRepository, options ComposeOptions) error {
	manifestPath := repo.Path(ComposeFileName)
	if _, err := os.Stat(manifestPath); err == nil {
		return ErrAlreadySetUp
	}

	modpackFileName, err := repo.ModpackFileName()
	if err != nil {
		return err
	}
	if err := fileio.ExportPack(repo, repo.Path(modpackFileName)); err != nil {
		return fmt.Errorf("failed to export pack for the server: %w", err)
	}

	if err := os.MkdirAll(repo.Path(DataDirectory), 0755); err != nil {
		return err
	}

	compose := GenerateCompose(repo.Pack, modpackFileName, options)
	return fileio.WriteYamlFile(compose, manifestPath)
}
