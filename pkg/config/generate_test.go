package config

import (
	"strings"
	"testing"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentOutConfigValues(t *testing.T) {
	input := "# header\n\n[sort]\nnatural = true\n  locale = \"fr\"\n"
	expected := "# header\n\n[sort]\n# natural = true\n#   locale = \"fr\"\n"
	assert.Equal(t, expected, commentOutConfigValues(input))
}

func TestGenerateConfigContent(t *testing.T) {
	content := GenerateConfigContent()

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		assert.True(t, strings.HasPrefix(trimmed, "["), "unexpected active line %q", line)
	}
	assert.Contains(t, content, "# natural = false")

	// The generated file is valid TOML that sets nothing.
	k := koanf.New(".")
	require.NoError(t, k.Load(&rawBytesProvider{bytes: []byte(content)}, toml.Parser()))
	for _, key := range []string{"sort.natural", "sort.locale", "output.color", "output.format", "confirm.enabled"} {
		assert.False(t, k.Exists(key), key)
	}
}
