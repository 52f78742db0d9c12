package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Francexi/browserhost/internal/shared/types"
)

func remoteBlob() types.Blob {
	return types.Blob{
		"is_local_file":       false,
		"url":                 "http://example.com",
		"width":               800,
		"height":              600,
		"fps":                 30,
		"fps_custom":          true,
		"shutdown":            false,
		"restart_when_active": false,
		"reroute_audio":       false,
		"css":                 "",
	}
}

func TestReconcileIdenticalBlobIsUnchanged(t *testing.T) {
	caps := types.Capabilities{LocalFileURL: true}

	first, changed := Reconcile(types.Settings{}, remoteBlob(), caps)
	require.True(t, changed, "first application must report a change")

	_, changed = Reconcile(first, remoteBlob(), caps)
	assert.False(t, changed, "identical blob must not report a change")
}

func TestReconcileDetectsEachFieldChange(t *testing.T) {
	caps := types.Capabilities{LocalFileURL: true}
	base, _ := Reconcile(types.Settings{}, remoteBlob(), caps)

	edits := map[string]interface{}{
		"url":                 "http://example.org",
		"width":               1024,
		"height":              768,
		"fps":                 60,
		"fps_custom":          false,
		"shutdown":            true,
		"restart_when_active": true,
		"reroute_audio":       true,
		"css":                 "body { color: red }",
	}
	for key, value := range edits {
		blob := remoteBlob()
		blob[key] = value
		_, changed := Reconcile(base, blob, caps)
		assert.True(t, changed, "edit to %q must report a change", key)
	}
}

func TestNormalizeWindowsLocalPath(t *testing.T) {
	caps := types.Capabilities{LocalFileURL: true}

	got := NormalizeLocalURL(`C:\videos\a b.webm`, caps)
	assert.Equal(t, "file:///C:/videos/a%20b.webm", got)
}

func TestNormalizeUnixLocalPath(t *testing.T) {
	caps := types.Capabilities{LocalFileURL: true}

	got := NormalizeLocalURL("/home/user/overlay.html", caps)
	assert.Equal(t, "file:///home/user/overlay.html", got)
}

func TestNormalizeIsIdempotent(t *testing.T) {
	for _, caps := range []types.Capabilities{
		{LocalFileURL: true},
		{LocalFileURL: false},
	} {
		once := NormalizeLocalURL(`C:\videos\a b.webm`, caps)
		twice := NormalizeLocalURL(once, caps)
		assert.Equal(t, once, twice, "caps=%+v", caps)
	}
}

func TestNormalizeWithoutLocalFileScheme(t *testing.T) {
	caps := types.Capabilities{LocalFileURL: false}

	got := NormalizeLocalURL(`C:\videos\a b.webm`, caps)
	assert.Equal(t, "http://absolute/C:/videos/a%20b.webm", got)
}

func TestLocalPathRecognizedOnReconciliation(t *testing.T) {
	caps := types.Capabilities{LocalFileURL: true}

	blob := remoteBlob()
	blob["is_local_file"] = true
	blob["local_file"] = `C:\videos\a b.webm`

	st := ParseSettings(blob, caps)
	require.True(t, st.IsLocal)
	assert.Equal(t, "file:///C:/videos/a%20b.webm", st.URL)

	// Re-applying the same blob compares equal against the stored snapshot.
	_, changed := Reconcile(st, blob, caps)
	assert.False(t, changed)
}

func TestLegacyLocalURLUpgrade(t *testing.T) {
	// Saved under reduced capability; loaded with file:// support restored.
	blob := remoteBlob()
	blob["url"] = "http://absolute/C:/videos/a%20b.webm"

	st := ParseSettings(blob, types.Capabilities{LocalFileURL: true})
	assert.True(t, st.IsLocal, "legacy URL must be re-marked local")
	assert.Equal(t, "file:///C:/videos/a%20b.webm", st.URL)

	// Without the capability the legacy form survives untouched.
	st = ParseSettings(blob, types.Capabilities{LocalFileURL: false})
	assert.False(t, st.IsLocal)
	assert.Equal(t, "http://absolute/C:/videos/a%20b.webm", st.URL)
}
