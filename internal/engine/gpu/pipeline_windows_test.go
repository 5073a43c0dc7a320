//go:build windows

package gpu

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quarrydb/quarry/internal/engine"
)

func TestGetPipelineCaches(t *testing.T) {
	eng := newTestEngine(t)

	first, err := eng.getPipeline(kernelSumReduce)
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := eng.getPipeline(kernelSumReduce)
	require.NoError(t, err)
	require.Same(t, first, second, "second lookup must hit the cache")
}

func TestGetPipelineUnknownKernel(t *testing.T) {
	eng := newTestEngine(t)

	_, err := eng.getPipeline("prefix_scan")
	require.ErrorIs(t, err, engine.ErrKernelNotFound)
}
