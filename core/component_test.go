package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNewIdNormalizes(t *testing.T) {
	assert.Equal(t, Id("sodium"), NewId("  Sodium "))
	assert.Equal(t, Id("create"), NewId("CREATE"))
}

func TestParseCategoryAliases(t *testing.T) {
	tests := []struct {
		input    string
		expected Category
	}{
		{input: "mod", expected: CategoryMod},
		{input: "plugin", expected: CategoryMod},
		{input: "Resourcepack", expected: CategoryResourcepack},
		{input: "shader", expected: CategoryShader},
		{input: "shaderpack", expected: CategoryShader},
		{input: "datapack", expected: CategoryDatapack},
		{input: "config", expected: CategoryConfig},
	}
	for _, tt := range tests {
		category, err := ParseCategory(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.expected, category)
	}

	_, err := ParseCategory("modpack")
	assert.Error(t, err)
}

func TestParseRequirementIsPermissive(t *testing.T) {
	assert.Equal(t, RequirementOptional, ParseRequirement("optional"))
	assert.Equal(t, RequirementUnsupported, ParseRequirement("unsupported"))
	assert.Equal(t, RequirementUnsupported, ParseRequirement("incompatible"))
	// Anything unrecognized is treated as required.
	assert.Equal(t, RequirementRequired, ParseRequirement("required"))
	assert.Equal(t, RequirementRequired, ParseRequirement("embedded"))
}

func TestEnvString(t *testing.T) {
	assert.Equal(t, "client/server", ClientAndServer().String())
	assert.Equal(t, "client", ClientOnly().String())
	assert.Equal(t, "server", ServerOnly().String())
	assert.Equal(t, "unsupported", Env{
		Client: RequirementUnsupported,
		Server: RequirementUnsupported,
	}.String())
}

func TestSourceValidate(t *testing.T) {
	remote := RemoteSource(RemoteComponent{FileName: "a.jar"})
	assert.NoError(t, remote.Validate())

	local := LocalSource("mods/a.jar")
	assert.NoError(t, local.Validate())

	assert.Error(t, Source{}.Validate())

	both := remote
	both.Local = local.Local
	assert.Error(t, both.Validate())
}

func TestComponentYamlRoundTrip(t *testing.T) {
	component := Component{
		Id:          "sodium",
		Category:    CategoryMod,
		Tags:        Untagged(),
		Environment: ClientOnly(),
		Source: RemoteSource(RemoteComponent{
			DownloadURL: "https://cdn.example/sodium.jar",
			FileName:    "sodium-fabric-0.5.11.jar",
			FileSize:    1048576,
			VersionID:   "xuWxRZPd",
			Hashes: Hashes{
				Sha1:   "5694a7bdfd508cf23bb4f2ab2fca7d45a517def7",
				Sha512: "d4f6c0...",
			},
		}),
	}

	data, err := yaml.Marshal(&component)
	require.NoError(t, err)

	var decoded Component
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, component, decoded)

	// The union stays a single key on the wire.
	assert.Contains(t, string(data), "remote:")
	assert.NotContains(t, string(data), "local:")
}

func TestDefaultEnv(t *testing.T) {
	assert.Equal(t, ClientOnly(), DefaultEnv(CategoryResourcepack))
	assert.Equal(t, ClientOnly(), DefaultEnv(CategoryShader))
	assert.Equal(t, ClientAndServer(), DefaultEnv(CategoryMod))
	assert.Equal(t, ClientAndServer(), DefaultEnv(CategoryDatapack))
	assert.Equal(t, ClientAndServer(), DefaultEnv(CategoryConfig))
}
