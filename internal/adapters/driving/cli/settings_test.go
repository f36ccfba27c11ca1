package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otzar-labs/ketav-cli/internal/adapters/driven/config/file"
	"github.com/otzar-labs/ketav-cli/internal/core/domain"
	"github.com/otzar-labs/ketav-cli/internal/core/ports/driven"
)

func withConfigStore(t *testing.T) *file.ConfigStore {
	t.Helper()
	store, err := file.NewConfigStore(t.TempDir())
	require.NoError(t, err)

	original := configStore
	configStore = store
	t.Cleanup(func() { configStore = original })
	return store
}

func TestSettingsCmd_ShowEmpty(t *testing.T) {
	withConfigStore(t)

	out, err := execute("settings", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "defaults are in effect")
}

func TestSettingsCmd_SetAndShow(t *testing.T) {
	store := withConfigStore(t)

	_, err := execute("settings", "set", driven.KeyConverterCommand, "libreoffice")
	require.NoError(t, err)
	assert.Equal(t, "libreoffice", store.GetString(driven.KeyConverterCommand))

	out, err := execute("settings", "show")
	require.NoError(t, err)
	assert.Contains(t, out, driven.KeyConverterCommand+" = libreoffice")
}

func TestSettingsCmd_SetCoercesTypes(t *testing.T) {
	store := withConfigStore(t)

	_, err := execute("settings", "set", driven.KeyCatalogEnabled, "true")
	require.NoError(t, err)
	assert.True(t, store.GetBool(driven.KeyCatalogEnabled))

	_, err = execute("settings", "set", driven.KeyProbePrefixBytes, "4096")
	require.NoError(t, err)
	assert.Equal(t, 4096, store.GetInt(driven.KeyProbePrefixBytes))

	_, err = execute("settings", "set", driven.KeyProbeHebrewRatio, "0.1")
	require.NoError(t, err)
	assert.Equal(t, 0.1, store.GetFloat(driven.KeyProbeHebrewRatio))
}

func TestSettingsCmd_NoStore(t *testing.T) {
	original := configStore
	configStore = nil
	defer func() { configStore = original }()

	_, err := execute("settings", "show")
	assert.Error(t, err)
}

func TestListCmd(t *testing.T) {
	original := docStore
	docStore = &mockDocStore{docs: []domain.Document{
		{
			ID:         "doc-1",
			SourcePath: "/books/PEREK1",
			Format:     domain.FormatDOSText,
			Headings:   domain.Headings{H3: "פרק א"},
		},
	}}
	defer func() { docStore = original }()

	out, err := execute("list")
	require.NoError(t, err)
	assert.Contains(t, out, "doc-1")
	assert.Contains(t, out, "פרק א")
	assert.Contains(t, out, "/books/PEREK1")
}

func TestListCmd_Empty(t *testing.T) {
	original := docStore
	docStore = &mockDocStore{}
	defer func() { docStore = original }()

	out, err := execute("list")
	require.NoError(t, err)
	assert.Contains(t, out, "Catalog is empty.")
}

func TestListCmd_NoCatalog(t *testing.T) {
	original := docStore
	docStore = nil
	defer func() { docStore = original }()

	_, err := execute("list")
	assert.Error(t, err)
}
