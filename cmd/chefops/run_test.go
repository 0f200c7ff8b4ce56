package main

import (
	"testing"

	"github.com/arthur-debert/chefops/pkg/platform"
	"github.com/stretchr/testify/assert"
)

func TestHostPlatformID(t *testing.T) {
	id := hostPlatformID()
	// whatever the host, the mapping must round-trip through Detect
	// without panicking; only win32/linux are supported downstream
	kind := platform.Detect(id)
	assert.Contains(t, []platform.Kind{platform.Windows, platform.Linux, platform.Unsupported}, kind)
}

func TestLogReporterMarksFailure(t *testing.T) {
	reporter := &logReporter{}
	assert.False(t, reporter.failed)
	reporter.Fail("[UNSUPPORTED_PLATFORM] platform \"darwin\" is not supported")
	assert.True(t, reporter.failed)
}
