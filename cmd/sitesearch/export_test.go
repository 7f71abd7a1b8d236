package main_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/sitesearch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("writes every page once per language", func(t *testing.T) {
		t.Parallel()

		s := newSite(t)
		out := filepath.Join(t.TempDir(), "out")

		stdout, _, err := s.run(t, "", "export", "--out", out)

		require.NoError(t, err)
		assert.Contains(t, stdout, "Exported 2 pages in 2 languages")

		es, err := os.ReadFile(filepath.Join(out, "es", "index.html"))
		require.NoError(t, err)
		assert.Contains(t, string(es), "Graduado y entusiasta")
		assert.Contains(t, string(es), "Índice de contenido")

		en, err := os.ReadFile(filepath.Join(out, "en", "index.html"))
		require.NoError(t, err)
		assert.Contains(t, string(en), `lang="en"`)
		assert.Contains(t, string(en), "Graduate and software engineering enthusiast.")

		_, err = os.Stat(filepath.Join(out, "en", "contacto.html"))
		assert.NoError(t, err)
	})

	t.Run("writes the fragment index", func(t *testing.T) {
		t.Parallel()

		s := newSite(t)
		out := filepath.Join(t.TempDir(), "out")

		_, _, err := s.run(t, "", "export", "--out", out)
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(out, "index.json"))
		require.NoError(t, err)

		var index map[string][]sitesearch.Fragment
		require.NoError(t, json.Unmarshal(data, &index))
		require.Len(t, index["index.html"], 2)
		assert.Equal(t, "sobre-mi", index["index.html"][0].Anchor)
		assert.Equal(t, "contactame-0", index["contacto.html"][0].Anchor)
	})

	t.Run("keeps the previous export when a page is missing", func(t *testing.T) {
		t.Parallel()

		s := newSite(t)
		out := filepath.Join(t.TempDir(), "out")

		_, _, err := s.run(t, "", "export", "--out", out)
		require.NoError(t, err)

		require.NoError(t, os.Remove(filepath.Join(s.dir, "contacto.html")))

		_, _, err = s.run(t, "", "export", "--out", out)
		require.Error(t, err)
		assert.Equal(t, sitesearch.ENOTFOUND, sitesearch.ErrorCode(err))

		_, err = os.Stat(filepath.Join(out, "es", "contacto.html"))
		assert.NoError(t, err)
		_, err = os.Stat(out + ".tmp")
		assert.True(t, os.IsNotExist(err))
	})
}
