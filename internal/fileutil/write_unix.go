//go:build !windows

package fileutil

import "github.com/google/renameio/v2"

// WriteFile writes data to path through a temporary sibling file and a
// rename, so a failed write never leaves a truncated artifact behind.
func WriteFile(path string, data []byte) error {
	return renameio.WriteFile(path, data, FilePermissions)
}
