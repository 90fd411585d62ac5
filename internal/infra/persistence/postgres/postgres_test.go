package postgres

import (
	"io"
	"log/slog"
	"testing"

	"cabinet/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNew_MissingPostgresSection(t *testing.T) {
	db, err := New(Params{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    &config.Config{},
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	require.Error(t, err)
	assert.Nil(t, db)
	assert.Contains(t, err.Error(), "postgres section")
}
