package config

import (
	"github.com/go-pg/pg/v10"
)

type Config struct {
	Database pg.Options
	App      struct {
		Host string
		Port int
	}
	Auth struct {
		// Secret verifies bearer tokens issued by the identity provider.
		Secret string
	}
	Storage struct {
		// Root is the directory holding the upload buckets.
		Root string
		// PublicBaseURL prefixes public asset links.
		PublicBaseURL string
	}
	Cache struct {
		// Version names the offline cache generation. Bumping it on
		// deploy invalidates entries cached by the previous build.
		Version string
		// Origin is the upstream host (host only, no scheme) whose
		// responses may be cached.
		Origin string
		// ShellURLs are precached on startup.
		ShellURLs []string
		// HTTPTimeoutSeconds bounds upstream fetches. Zero means the
		// default of 10 seconds.
		HTTPTimeoutSeconds int
	}
}
