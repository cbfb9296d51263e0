package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlasops/vpcatlas/internal/report"
)

func TestRun_MockMode(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	cfg := Config{
		Region:    "us-east-1",
		OutputDir: dir,
		MockMode:  true,
	}

	m, diagram, err := Run(context.Background(), cfg)
	require.NoError(t, err)

	require.Len(t, m.VPCs, 1)
	assert.True(t, strings.HasPrefix(diagram, "graph TB"))
	assert.Contains(t, diagram, "igw_vpc_0mock1234567890")

	for _, name := range []string{report.ModelFile, report.DiagramFile, report.HTMLFile} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, "missing artifact %s", name)
	}

	// The written diagram matches what Run returned.
	mmd, err := os.ReadFile(filepath.Join(dir, report.DiagramFile))
	require.NoError(t, err)
	assert.Equal(t, diagram, string(mmd))
}
