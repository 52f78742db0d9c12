package source

import (
	"strings"

	"github.com/Francexi/browserhost/internal/shared/types"
)

// Settings blob keys. "url" holds remote URLs, "local_file" local paths;
// "is_local_file" selects between them.
const (
	keyIsLocalFile  = "is_local_file"
	keyURL          = "url"
	keyLocalFile    = "local_file"
	keyWidth        = "width"
	keyHeight       = "height"
	keyFPS          = "fps"
	keyFPSCustom    = "fps_custom"
	keyShutdown     = "shutdown"
	keyRestart      = "restart_when_active"
	keyRerouteAudio = "reroute_audio"
	keyCSS          = "css"
)

const legacyLocalPrefix = "http://absolute/"

// ParseSettings reads a settings blob into an effective snapshot, normalizing
// local paths into URL form and upgrading legacy local URLs when the engine
// has native file:// support.
func ParseSettings(blob types.Blob, caps types.Capabilities) types.Settings {
	st := types.Settings{
		IsLocal:          blob.Bool(keyIsLocalFile),
		Width:            blob.Int(keyWidth),
		Height:           blob.Int(keyHeight),
		FPS:              blob.Int(keyFPS),
		FPSCustom:        blob.Bool(keyFPSCustom),
		ShutdownOnHidden: blob.Bool(keyShutdown),
		RestartOnActive:  blob.Bool(keyRestart),
		RerouteAudio:     blob.Bool(keyRerouteAudio),
		CSS:              blob.String(keyCSS),
	}

	if st.IsLocal {
		st.URL = NormalizeLocalURL(blob.String(keyLocalFile), caps)
	} else {
		st.URL = blob.String(keyURL)
	}

	// Configurations saved while file:// handling was unavailable carry the
	// legacy prefix; rewrite them once capability is restored.
	if caps.LocalFileURL && hasPrefixFold(st.URL, legacyLocalPrefix) {
		st.URL = "file:///" + st.URL[len(legacyLocalPrefix):]
		st.IsLocal = true
	}

	return st
}

// Reconcile parses the incoming blob against the previous snapshot. The
// returned flag reports whether any tracked field changed; unchanged results
// must not trigger a browser teardown.
func Reconcile(prev types.Settings, blob types.Blob, caps types.Capabilities) (types.Settings, bool) {
	next := ParseSettings(blob, caps)
	return next, next != prev
}

// NormalizeLocalURL converts a platform-local file path into forward-slash
// URL form: percent-encoded, separators canonicalized, prefixed with a
// local-file scheme (or the legacy marker when file:// is unavailable).
// Idempotent: an already-normalized URL passes through untouched.
func NormalizeLocalURL(path string, caps types.Capabilities) string {
	lower := strings.ToLower(path)
	if strings.HasPrefix(lower, "file://") || strings.HasPrefix(lower, legacyLocalPrefix) {
		return path
	}

	drive := hasDrivePrefix(path)
	enc := percentEncode(path)

	if drive {
		// Restore the drive colon: file:///C:/...
		enc = strings.Replace(enc, "%3A", ":", 1)
	}
	enc = strings.ReplaceAll(enc, "%5C", "/")
	enc = strings.ReplaceAll(enc, "%2F", "/")

	switch {
	case !caps.LocalFileURL:
		return legacyLocalPrefix + enc
	case drive:
		return "file:///" + enc
	default:
		return "file://" + enc
	}
}

// hasDrivePrefix reports whether the path starts with a Windows drive letter.
func hasDrivePrefix(path string) bool {
	if len(path) < 2 || path[1] != ':' {
		return false
	}
	c := path[0]
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

const upperhex = "0123456789ABCDEF"

// percentEncode escapes every byte outside the unreserved set, including
// path separators; the caller canonicalizes those back to forward slashes.
func percentEncode(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' || c >= '0' && c <= '9' ||
			c == '-' || c == '_' || c == '.' || c == '~' {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0x0F])
	}
	return b.String()
}
