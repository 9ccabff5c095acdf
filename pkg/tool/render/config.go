package render

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/nanobanana/mcp/pkg/provider"
)

type Option func(*Client)

func WithDir(dir string) Option {
	return func(c *Client) {
		c.dir = dir
	}
}

// Images are written with the caller's privileges, so a misconfigured output
// directory must not point the server at a system location.
var forbiddenDirs = []string{
	"/",
	"/bin",
	"/boot",
	"/dev",
	"/etc",
	"/proc",
	"/root",
	"/sbin",
	"/sys",
	"/usr",
	"/var",
	"/Applications",
	"/Library",
	"/System",
}

func defaultDir() string {
	home, err := os.UserHomeDir()

	if err != nil {
		return "nanobanana-images"
	}

	return filepath.Join(home, "nanobanana-images")
}

func validateDir(dir string) (string, error) {
	if dir == "~" || strings.HasPrefix(dir, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, strings.TrimPrefix(dir, "~"))
		}
	}

	abs, err := filepath.Abs(dir)

	if err != nil {
		return "", provider.NewValidationError("invalid output directory: " + dir)
	}

	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}

	abs = filepath.Clean(abs)

	for _, forbidden := range forbiddenDirs {
		if abs == forbidden {
			return "", provider.NewValidationError("output directory resolves to forbidden system directory: " + dir)
		}
	}

	return abs, nil
}
