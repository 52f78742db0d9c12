package types

// Settings is one instance's effective configuration snapshot. The struct is
// comparable; the reconciler relies on field-by-field equality to detect
// no-op saves.
type Settings struct {
	IsLocal          bool   `json:"is_local_file"`
	URL              string `json:"url"`
	Width            int    `json:"width"`
	Height           int    `json:"height"`
	FPS              int    `json:"fps"`
	FPSCustom        bool   `json:"fps_custom"`
	ShutdownOnHidden bool   `json:"shutdown"`
	RestartOnActive  bool   `json:"restart_when_active"`
	RerouteAudio     bool   `json:"reroute_audio"`
	CSS              string `json:"css"`
}

// Blob is the opaque key/value settings payload handed to an instance by the
// host. Keys mirror the persisted property names; "url" holds remote URLs and
// "local_file" holds local paths, selected by "is_local_file".
type Blob map[string]interface{}

// Bool reads a boolean key, defaulting to false.
func (b Blob) Bool(key string) bool {
	v, _ := b[key].(bool)
	return v
}

// Int reads a numeric key, accepting the integer and float forms JSON
// decoders produce.
func (b Blob) Int(key string) int {
	switch v := b[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

// String reads a string key, defaulting to "".
func (b Blob) String(key string) string {
	v, _ := b[key].(string)
	return v
}

// Capabilities describes engine features resolved once at startup and
// branched on at runtime.
type Capabilities struct {
	// LocalFileURL reports whether the engine accepts file:// URLs natively.
	// Without it, local sources are tagged with the legacy
	// "http://absolute/" prefix so they stay recognizable as local.
	LocalFileURL bool

	// SharedTexture reports whether frames are delivered through a shared
	// GPU texture, in which case browsers with a non-custom frame rate are
	// paced externally by the render loop.
	SharedTexture bool
}
