package port

// Backends are the outbound adapters serving one operator session.
type Backends struct {
	Ads   AdBackend
	Admin AdminBackend
	// Uploader is nil when image upload is disabled.
	Uploader ImageUploader
}

// BackendFactory binds the backends to a session. guard is nil for calls
// made before a session exists, such as login.
type BackendFactory func(guard SessionGuard) Backends
