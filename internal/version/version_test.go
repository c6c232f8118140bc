package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPrefix(t *testing.T) {
	assert.Equal(t, "/opt/taucmdr-"+Version, DefaultPrefix())
}

func TestConfigPath(t *testing.T) {
	assert.Equal(t, "/opt/x/build.cfg", ConfigPath("build.cfg", "/opt/x"))
	assert.Equal(t, "/etc/taucmdr/build.cfg", ConfigPath("/etc/taucmdr/build.cfg", "/opt/x"))
}
