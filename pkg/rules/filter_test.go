// Test Type: Unit Test
// Description: Tests for the deny-list filter applied before copying

package rules_test

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/ccsync/pkg/config"
	"github.com/arthur-debert/ccsync/pkg/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter_ShouldCopy(t *testing.T) {
	root := "/project"
	filter := rules.NewFilter(root, []string{
		".git", "custom_components", "__pycache__", "venv", "env",
		"sync_components.py", "LICENSE", "README.md", "hacs.json",
	})

	tests := []struct {
		path string
		want bool
	}{
		{"/project/api.py", true},
		{"/project/manifest.json", true},
		{"/project/hoymiles/client.py", true},
		{"/project/sync_components.py", false},
		{"/project/hacs.json", false},
		{"/project/README.md", false},
		{"/project/LICENSE", false},
		{"/project/.git/config", false},
		{"/project/custom_components/x/api.py", false},
		{"/project/hoymiles/__pycache__/client.py", false},
		{"/project/venv/lib/site.py", false},
		// substring semantics: "env" also rejects unrelated names
		{"/project/environment.py", false},
		{"/project/hoymiles/envoy.py", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, filter.ShouldCopy(tt.path))
		})
	}
}

func TestFilter_RootPrefixIsNotTested(t *testing.T) {
	// The root itself contains a deny-list entry; only the relative part counts.
	filter := rules.NewFilter("/home/dev/venv-projects/ha", []string{"venv"})

	assert.True(t, filter.ShouldCopy("/home/dev/venv-projects/ha/api.py"))
}

func TestFilter_RelativePaths(t *testing.T) {
	filter := rules.NewFilter(".", []string{"README.md"})

	assert.True(t, filter.ShouldCopy("api.py"))
	assert.True(t, filter.ShouldCopy("./api.py"))
	assert.False(t, filter.ShouldCopy("./README.md"))
}

func TestFilter_UnrelatablePathIsTestedAsIs(t *testing.T) {
	// Rel fails when mixing relative and absolute paths
	filter := rules.NewFilter("relative/root", []string{"secret"})

	assert.True(t, filter.ShouldCopy("/abs/api.py"))
	assert.False(t, filter.ShouldCopy("/abs/secret.py"))
}

func TestFilter_Match(t *testing.T) {
	filter := rules.NewFilter("/p", []string{"", "images", "info.md"})

	assert.Equal(t, "images", filter.Match("/p/images/logo.png"))
	assert.Equal(t, "info.md", filter.Match("/p/info.md"))
	assert.Equal(t, "", filter.Match("/p/const.py"), "empty entries are ignored")
}

func TestFromConfig(t *testing.T) {
	root := t.TempDir()
	cfg, err := config.Default(root)
	require.NoError(t, err)
	cfg.ExcludeExtra = []string{"tests"}

	filter := rules.FromConfig(cfg)

	assert.True(t, filter.ShouldCopy(filepath.Join(root, "sensor.py")))
	assert.False(t, filter.ShouldCopy(filepath.Join(root, "tests", "test_sensor.py")))
	assert.False(t, filter.ShouldCopy(filepath.Join(root, "sync_components.py")))
}
