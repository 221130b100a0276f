package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	conf, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), conf)
	assert.Equal(t, "text", conf.Format)
	assert.True(t, conf.Color)
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)

	want := Config{Format: "yaml", Tokens: true, Color: false}
	require.NoError(t, want.Save(path, false))

	got, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	assert.Error(t, Default().Save(path, false))
	require.NoError(t, Default().Save(path, true))
	got, err = LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), got)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("tokens: true\n"), 0644))

	conf, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Config{Format: "text", Tokens: true, Color: true}, conf)
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, nil, 0644))

	conf, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), conf)
}

func TestLoadRejectsBadFiles(t *testing.T) {
	for name, body := range map[string]string{
		"unknown format": "format: xml\n",
		"unknown field":  "colour: true\n",
		"not yaml":       "format: [\n",
	} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), FileName)
			require.NoError(t, os.WriteFile(path, []byte(body), 0644))
			_, err := LoadFile(path)
			assert.Error(t, err)
		})
	}
}
