// SPDX-License-Identifier: Unlicense OR MIT

package luminance

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerDefaultSilent(t *testing.T) {
	require.NotNil(t, Logger())
	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError))
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer SetLogger(nil)

	Logger().Info("hello")
	assert.Contains(t, buf.String(), "hello")

	SetLogger(nil)
	require.NotNil(t, Logger())
	buf.Reset()
	Logger().Info("quiet")
	assert.Empty(t, buf.String())
}
