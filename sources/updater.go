package sources

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/exoumoon/invar/core"
)

// UpdateCheck is the result of comparing one installed remote
// component against the newest compatible registry version.
type UpdateCheck struct {
	UpdateAvailable bool
	// UpdateString details the update as a file name change, e.g.
	// "sodium-0.5.8.jar -> sodium-0.5.11.jar".
	UpdateString string
	// NewVersion is set when UpdateAvailable is true.
	NewVersion *Version
}

// LatestCompatibleVersion fetches a project's versions and returns
// the newest one that fits the instance.
func LatestCompatibleVersion(registry Registry, id core.Id, instance *core.Instance) (*Version, error) {
	versions, err := registry.FetchVersions(id.String())
	if err != nil {
		return nil, err
	}
	compatible := slices.DeleteFunc(versions, func(v *Version) bool {
		return !v.IsCompatible(instance)
	})
	if len(compatible) == 0 {
		return nil, &NoCompatibleVersionError{Id: id, AllowedLoaders: instance.AllowedLoaders()}
	}
	slices.SortFunc(compatible, func(a, b *Version) int {
		return b.DatePublished.Compare(a.DatePublished)
	})
	return compatible[0], nil
}

// CheckUpdate looks up whether a newer compatible version exists for
// an installed remote component.
func CheckUpdate(registry Registry, instance *core.Instance, component *core.Component) (UpdateCheck, error) {
	if !component.Source.IsRemote() {
		return UpdateCheck{}, fmt.Errorf("component %q is not remote", component.Id)
	}

	latest, err := LatestCompatibleVersion(registry, component.Id, instance)
	if err != nil {
		return UpdateCheck{}, err
	}
	if latest.ID == component.Source.Remote.VersionID {
		return UpdateCheck{}, nil
	}
	if len(latest.Files) == 0 {
		return UpdateCheck{}, fmt.Errorf("version %q of %q has no files attached", latest.ID, component.Id)
	}

	return UpdateCheck{
		UpdateAvailable: true,
		UpdateString:    component.Source.Remote.FileName + " -> " + latest.Files[0].Name,
		NewVersion:      latest,
	}, nil
}

// ApplyUpdate rewrites the component's remote descriptor to the given
// version's first file. The caller persists the component.
func ApplyUpdate(component *core.Component, version *Version) error {
	if !component.Source.IsRemote() {
		return fmt.Errorf("component %q is not remote", component.Id)
	}
	if len(version.Files) == 0 {
		return fmt.Errorf("version %q of %q has no files attached", version.ID, component.Id)
	}

	file := version.Files[0]
	component.Source.Remote.DownloadURL = file.URL
	component.Source.Remote.FileName = file.Name
	component.Source.Remote.FileSize = file.Size
	component.Source.Remote.VersionID = version.ID
	component.Source.Remote.Hashes = file.Hashes
	return nil
}
