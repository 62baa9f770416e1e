package sources

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/vbauerster/mpb/v4"
	"github.com/vbauerster/mpb/v4/decor"
	"golang.org/x/exp/slices"

	"github.com/exoumoon/invar/core"
)

// Repository is the local side the resolver installs into. It is
// satisfied by fileio.LocalRepository.
type Repository interface {
	Components() ([]core.Component, error)
	SaveComponent(component *core.Component) error
	Instance() *core.Instance
}

// Selector answers the two questions resolution can't decide on its
// own: which version to install when several are compatible, and
// which optional dependencies to take. The CLI backs this with
// interactive menus; tests use a deterministic implementation.
type Selector interface {
	PickVersion(id core.Id, versions []*Version) (*Version, error)
	PickOptionalDependencies(id core.Id, optional []Dependency) ([]Dependency, error)
}

// NoCompatibleVersionError reports that nothing a project publishes
// fits the instance; it names the allowed loaders so a missing
// foreign-loader allowance is easy to spot.
type NoCompatibleVersionError struct {
	Id             core.Id
	AllowedLoaders []core.Loader
}

func (e *NoCompatibleVersionError) Error() string {
	loaders := make([]string, len(e.AllowedLoaders))
	for i, loader := range e.AllowedLoaders {
		loaders[i] = loader.String()
	}
	return fmt.Sprintf(
		"no version of %q is compatible with any of the allowed loaders (%s); "+
			"if a cross-loader compatibility layer is present, adjust allowed_foreign_loaders",
		e.Id, strings.Join(loaders, ", "),
	)
}

// InstallRemote fetches a project's versions, picks a compatible one
// and persists it as a component, then recursively installs the
// version's required (and chosen optional) dependencies.
//
// The component is saved before its dependencies are resolved, and
// already-installed ids short-circuit to success, so an interrupted
// run can simply be re-run: everything saved so far is skipped
// without touching the registry.
func InstallRemote(
	repo Repository,
	registry Registry,
	rawId string,
	forcedCategory *core.Category,
	selector Selector,
) error {
	id := core.NewId(rawId)

	installed, err := repo.Components()
	if err != nil {
		return err
	}
	if slices.ContainsFunc(installed, func(c core.Component) bool { return c.Id == id }) {
		fmt.Printf("- %s is already installed\n", id)
		return nil
	}

	instance := repo.Instance()
	selected, err := selectCompatibleVersion(registry, id, instance, selector)
	if err != nil {
		return err
	}

	selected.Dependencies = resolveDependencyNames(registry, selected.Dependencies)

	pending := selected.RequiredDependencies()
	if optional := selected.OptionalDependencies(); len(optional) > 0 {
		chosen, err := selector.PickOptionalDependencies(id, optional)
		if err != nil {
			return err
		}
		pending = append(pending, chosen...)
	}

	pending = slices.DeleteFunc(pending, func(dep Dependency) bool {
		alreadyThere := slices.ContainsFunc(installed, func(c core.Component) bool {
			return c.Id.String() == dep.ProjectID
		})
		if alreadyThere {
			fmt.Printf("- %s (%s): already installed\n", dep.ProjectID, dep.Kind)
		}
		return alreadyThere
	})
	for _, dep := range pending {
		fmt.Printf("- %s (%s): pending\n", dep.ProjectID, dep.Kind)
	}

	component, err := buildComponent(id, selected, forcedCategory)
	if err != nil {
		return err
	}
	if err := repo.SaveComponent(component); err != nil {
		return err
	}

	// Dependencies inherit the caller's forced category, not their
	// own declared project type.
	for _, dep := range pending {
		if err := InstallRemote(repo, registry, dep.ProjectID, forcedCategory, selector); err != nil {
			return err
		}
	}

	return nil
}

// selectCompatibleVersion fetches and filters a project's versions,
// newest first, and lets the selector pick when more than one fits.
func selectCompatibleVersion(
	registry Registry,
	id core.Id,
	instance *core.Instance,
	selector Selector,
) (*Version, error) {
	versions, err := registry.FetchVersions(id.String())
	if err != nil {
		return nil, err
	}

	compatible := slices.DeleteFunc(versions, func(v *Version) bool {
		return !v.IsCompatible(instance)
	})
	slices.SortFunc(compatible, func(a, b *Version) int {
		return b.DatePublished.Compare(a.DatePublished)
	})

	switch len(compatible) {
	case 0:
		return nil, &NoCompatibleVersionError{Id: id, AllowedLoaders: instance.AllowedLoaders()}
	case 1:
		return compatible[0], nil
	default:
		return selector.PickVersion(id, compatible)
	}
}

// resolveDependencyNames looks up a display name and summary for each
// dependency and rewrites its project id to the project's slug. A
// failed lookup drops that dependency only; the rest still install.
func resolveDependencyNames(registry Registry, deps []Dependency) []Dependency {
	if len(deps) == 0 {
		return nil
	}

	progress := mpb.New(mpb.WithWidth(32))
	bar := progress.AddBar(int64(len(deps)),
		mpb.PrependDecorators(decor.Name("resolving dependencies ")),
		mpb.AppendDecorators(decor.CountersNoUnit("%d / %d")),
	)
	defer progress.Wait()

	var resolved []Dependency
	for _, dep := range deps {
		if dep.ProjectID == "" {
			log.Warn("dropping dependency with no project id", "version_id", dep.VersionID)
			bar.Increment()
			continue
		}
		project, err := registry.FetchProject(dep.ProjectID)
		if err != nil {
			log.Warn("dropping unresolvable dependency", "project_id", dep.ProjectID, "error", err)
			bar.Increment()
			continue
		}
		dep.ProjectID = project.Slug
		dep.DisplayName = project.Name
		dep.Summary = project.Summary
		resolved = append(resolved, dep)
		bar.Increment()
	}

	return resolved
}

func buildComponent(id core.Id, version *Version, forcedCategory *core.Category) (*core.Component, error) {
	if len(version.Files) == 0 {
		return nil, fmt.Errorf("version %q of %q has no files attached", version.ID, id)
	}
	file := version.Files[0]

	var category core.Category
	switch {
	case forcedCategory != nil:
		category = *forcedCategory
	case len(version.ProjectTypes) > 0:
		category = version.ProjectTypes[0]
	default:
		return nil, fmt.Errorf("version %q of %q declares no project types", version.ID, id)
	}

	environment := core.DefaultEnv(category)
	if version.Environment != nil {
		environment = version.Environment.Env()
	}

	return &core.Component{
		Id:          id,
		Category:    category,
		Tags:        core.Untagged(),
		Environment: environment,
		Source: core.RemoteSource(core.RemoteComponent{
			DownloadURL: file.URL,
			FileName:    file.Name,
			FileSize:    file.Size,
			VersionID:   version.ID,
			Hashes:      file.Hashes,
		}),
	}, nil
}
