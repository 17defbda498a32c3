package version_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Norgate-AV/kta/internal/version"
)

func TestGetVersion(t *testing.T) {
	t.Parallel()

	assert.NotEmpty(t, version.GetVersion())
	assert.Equal(t, version.Version, version.GetVersion())
}

func TestVersionFormat(t *testing.T) {
	t.Parallel()

	v := version.GetVersion()
	if v != "dev" {
		assert.Regexp(t, `^v?\d+\.\d+\.\d+`, v, "Version should match semver pattern")
	}
}

func TestGetFullVersionFormat(t *testing.T) {
	t.Parallel()

	expected := version.Version + " (commit: " + version.Commit + ", built: " + version.Date + ")"
	assert.Equal(t, expected, version.GetFullVersion())
}
