package waypoint_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/waypoint-nav/waypoint/pkg/waypoint"
)

const englishMessages = `
[link_profile]
other = "Open profile"

[link_greeting]
other = "Hello {{.Name}}"
`

const portugueseMessages = `
[link_profile]
other = "Abrir perfil"
`

func TestTranslator(t *testing.T) {
	dir := t.TempDir()
	en := filepath.Join(dir, "active.en.toml")
	pt := filepath.Join(dir, "active.pt.toml")
	require.NoError(t, os.WriteFile(en, []byte(englishMessages), 0644))
	require.NoError(t, os.WriteFile(pt, []byte(portugueseMessages), 0644))

	bundle, err := waypoint.NewBundle(waypoint.I18nConfig{MessageFiles: []string{en, pt}})
	require.NoError(t, err)

	ptTr, err := waypoint.NewTranslator(bundle, "pt")
	require.NoError(t, err)
	assert.Equal(t, "pt", ptTr.Language().String())
	assert.Equal(t, "Abrir perfil", ptTr.Localize("link_profile", nil))
	assert.Equal(t, "Hello Ada", ptTr.Localize("link_greeting", map[string]any{"Name": "Ada"}), "falls back to English")
	assert.Equal(t, "link_missing", ptTr.Localize("link_missing", nil))

	enTr, err := waypoint.NewTranslator(bundle, "en")
	require.NoError(t, err)
	assert.Equal(t, "Open profile", enTr.Localize("link_profile", nil))
}

func TestNewBundleMissingFile(t *testing.T) {
	_, err := waypoint.NewBundle(waypoint.I18nConfig{MessageFiles: []string{filepath.Join(t.TempDir(), "nope.toml")}})
	assert.True(t, waypoint.IsInfrastructureError(err))
}

func TestNewTranslatorBadTag(t *testing.T) {
	bundle, err := waypoint.NewBundle(waypoint.I18nConfig{})
	require.NoError(t, err)

	_, err = waypoint.NewTranslator(bundle, "not a tag!")
	assert.True(t, waypoint.IsInfrastructureError(err))
}

func TestNewBundleDefaultsAreOverridden(t *testing.T) {
	path := filepath.Join(t.TempDir(), "active.en.toml")
	require.NoError(t, os.WriteFile(path, []byte(englishMessages), 0644))

	bundle, err := waypoint.NewBundle(waypoint.I18nConfig{MessageFiles: []string{path}},
		waypoint.MessageFile{Name: "active.en.toml", Data: []byte("[link_profile]\nother = \"Profile\"\n\n[link_home]\nother = \"Home\"\n")})
	require.NoError(t, err)

	tr, err := waypoint.NewTranslator(bundle, "en")
	require.NoError(t, err)
	assert.Equal(t, "Open profile", tr.Localize("link_profile", nil), "configured files win")
	assert.Equal(t, "Home", tr.Localize("link_home", nil), "defaults fill the gaps")
}

func TestTranslatorFallsBackForEmbeddedDefaults(t *testing.T) {
	bundle, err := waypoint.NewBundle(waypoint.I18nConfig{},
		waypoint.MessageFile{Name: "active.en.toml", Data: []byte("[title_home]\nother = \"Home\"\n\n[link_back]\nother = \"Back\"\n")},
		waypoint.MessageFile{Name: "active.pt.toml", Data: []byte("[link_back]\nother = \"Voltar\"\n")})
	require.NoError(t, err)

	tr, err := waypoint.NewTranslator(bundle, "pt")
	require.NoError(t, err)
	assert.Equal(t, "Voltar", tr.Localize("link_back", nil))
	assert.Equal(t, "Home", tr.Localize("title_home", nil), "English text, not the message ID")
	assert.Equal(t, "title_missing", tr.Localize("title_missing", nil))
}
