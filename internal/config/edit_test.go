package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet_CreatesAndMerges(t *testing.T) {
	root := t.TempDir()
	path := FilePath(root)

	require.NoError(t, Set(path, KeyPort, "8502"))
	require.NoError(t, Set(path, KeyAppEntry, "main.py"))
	require.NoError(t, Set(path, KeyDependencies, "streamlit, pandas"))

	s, err := Load(root, "")
	require.NoError(t, err)
	assert.Equal(t, 8502, s.Port)
	assert.Equal(t, "main.py", s.AppEntry)
	assert.Equal(t, []string{"streamlit", "pandas"}, s.Dependencies)
}

func TestSet_Rejects(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seblak.yaml")

	assert.Error(t, Set(path, "colour", "red"))
	assert.Error(t, Set(path, KeyPort, "abc"))
	assert.Error(t, Set(path, KeyPort, "0"))
	assert.Error(t, Set(path, KeyDependencies, " , "))
}

func TestSettingsGet(t *testing.T) {
	s, err := Load(t.TempDir(), "")
	require.NoError(t, err)

	for _, key := range Keys {
		_, err := s.Get(key)
		assert.NoError(t, err, key)
	}

	v, err := s.Get(KeyDependencies)
	require.NoError(t, err)
	assert.Equal(t, "streamlit,pandas,numpy,plotly,python-dateutil", v)

	_, err = s.Get("nope")
	assert.Error(t, err)
}
