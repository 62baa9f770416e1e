package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPackName(t *testing.T) {
	tests := []struct {
		directory string
		expected  string
	}{
		{directory: "/home/user/ground-zero", expected: "Ground Zero"},
		{directory: "/packs/myCoolPack", expected: "My Cool Pack"},
		{directory: "/packs/skyblock_remastered", expected: "Skyblock Remastered"},
		{directory: "/packs/vanilla", expected: "Vanilla"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, defaultPackName(tt.directory), "directory %q", tt.directory)
	}
}
