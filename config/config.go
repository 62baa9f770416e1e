package config

import "fmt"

const repositoryURL = "https://github.com/exoumoon/invar"
const author = "mxxntype"

// Version is stamped in by the build; "dev" otherwise.
var Version = "dev"

func SetVersion(version string) {
	if version != "" {
		Version = version
	}
}

// UserAgent identifies this tool to the registry, in the
// "<repo-url>/<version> (<author>)" form its API guidelines ask for.
func UserAgent() string {
	return fmt.Sprintf("%s/%s (%s)", repositoryURL, Version, author)
}
