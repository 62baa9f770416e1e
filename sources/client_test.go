package sources

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exoumoon/invar/core"
)

func TestClientFetchProject(t *testing.T) {
	var gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		assert.Equal(t, "/project/sodium", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"id": "AANobbMI",
			"slug": "sodium",
			"name": "Sodium",
			"summary": "A performance mod.",
			"project_types": ["mod"],
			"loaders": ["fabric", "quilt"]
		}`))
	}))
	defer server.Close()

	client := &Client{httpClient: server.Client(), baseURL: server.URL}
	project, err := client.FetchProject("sodium")
	require.NoError(t, err)

	assert.Equal(t, "sodium", project.Slug)
	assert.Equal(t, "Sodium", project.Name)
	assert.Equal(t, []core.Category{core.CategoryMod}, project.Types)
	assert.Equal(t, []core.Loader{core.LoaderFabric, core.LoaderQuilt}, project.Loaders)
	assert.Contains(t, gotUserAgent, "github.com/exoumoon/invar")
}

func TestClientFetchVersions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/project/sodium/version", r.URL.Path)
		_, _ = w.Write([]byte(`[{
			"id": "xuWxRZPd",
			"name": "Sodium 0.5.11",
			"project_types": ["mod"],
			"game_versions": ["1.20.1"],
			"loaders": ["fabric", "iris"],
			"environment": "client_only",
			"dependencies": [{"project_id": "P7dR8mSH", "dependency_type": "required"}],
			"files": [{
				"url": "https://cdn.example/sodium.jar",
				"filename": "sodium-fabric-0.5.11.jar",
				"size": 1024,
				"hashes": {"sha1": "aa", "sha512": "bb"}
			}]
		}]`))
	}))
	defer server.Close()

	client := &Client{httpClient: server.Client(), baseURL: server.URL}
	versions, err := client.FetchVersions("sodium")
	require.NoError(t, err)
	require.Len(t, versions, 1)

	version := versions[0]
	assert.Equal(t, "xuWxRZPd", version.ID)
	// Unknown loader tags fold into the permissive marker.
	assert.Equal(t, []core.Loader{core.LoaderFabric, core.LoaderOther}, version.Loaders)
	require.NotNil(t, version.Environment)
	assert.Equal(t, core.ClientOnly(), version.Environment.Env())
	require.Len(t, version.Dependencies, 1)
	assert.Equal(t, core.RequirementRequired, version.Dependencies[0].Kind)
	require.Len(t, version.Files, 1)
	assert.Equal(t, "sodium-fabric-0.5.11.jar", version.Files[0].Name)
	assert.EqualValues(t, 1024, version.Files[0].Size)
}

func TestClientSurfacesHttpErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	client := &Client{httpClient: server.Client(), baseURL: server.URL}
	_, err := client.FetchProject("gone")
	assert.ErrorContains(t, err, "404")
}
