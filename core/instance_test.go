package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLoaderAliases(t *testing.T) {
	tests := []struct {
		input    string
		expected Loader
	}{
		{input: "forge", expected: LoaderForge},
		{input: "NeoForge", expected: LoaderNeoforge},
		{input: "fabric", expected: LoaderFabric},
		{input: "quilt", expected: LoaderQuilt},
		{input: "vanilla", expected: LoaderMinecraft},
		{input: "none", expected: LoaderMinecraft},
		{input: "datapack", expected: LoaderMinecraft},
		{input: "iris", expected: LoaderOther},
		{input: "optifine", expected: LoaderOther},
		{input: "modloader", expected: LoaderOther},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ParseLoader(tt.input), "input %q", tt.input)
	}
}

func TestNewInstanceForeignLoaderSeeding(t *testing.T) {
	tests := []struct {
		loader   Loader
		expected []Loader
	}{
		{loader: LoaderForge, expected: []Loader{LoaderMinecraft, LoaderNeoforge}},
		{loader: LoaderNeoforge, expected: []Loader{LoaderMinecraft, LoaderForge}},
		{loader: LoaderFabric, expected: []Loader{LoaderMinecraft, LoaderQuilt}},
		{loader: LoaderQuilt, expected: []Loader{LoaderMinecraft, LoaderFabric}},
		{loader: LoaderMinecraft, expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.loader.String(), func(t *testing.T) {
			instance := NewInstance(ParseMinecraftVersion("1.20.1"), tt.loader, "47.4.0")
			assert.Equal(t, tt.expected, instance.AllowedForeignLoaders)
		})
	}
}

func TestInstanceAllows(t *testing.T) {
	instance := NewInstance(ParseMinecraftVersion("1.20.1"), LoaderNeoforge, "21.1.77")

	assert.True(t, instance.Allows(LoaderNeoforge))
	assert.True(t, instance.Allows(LoaderForge))
	assert.True(t, instance.Allows(LoaderMinecraft))
	assert.False(t, instance.Allows(LoaderFabric))
	assert.False(t, instance.Allows(LoaderQuilt))
}

func TestInstanceAllowedLoadersSortedAndUnique(t *testing.T) {
	instance := NewInstance(ParseMinecraftVersion("1.20.1"), LoaderForge, "47.4.0")
	instance.AllowedForeignLoaders = append(instance.AllowedForeignLoaders, LoaderForge)

	assert.Equal(t,
		[]Loader{LoaderForge, LoaderMinecraft, LoaderNeoforge},
		instance.AllowedLoaders(),
	)
}

func TestInstanceIndexDependencies(t *testing.T) {
	modded := NewInstance(ParseMinecraftVersion("1.20.1"), LoaderNeoforge, "21.1.77")
	assert.Equal(t, map[string]string{
		"minecraft": "1.20.1",
		"neoforge":  "21.1.77",
	}, modded.IndexDependencies())

	vanilla := NewInstance(ParseMinecraftVersion("1.20.1"), LoaderMinecraft, "")
	assert.Equal(t, map[string]string{"minecraft": "1.20.1"}, vanilla.IndexDependencies())
}
