package storage

import (
	"os"
	"path/filepath"

	"ticks/internal/platform"
)

const (
	settingsFileName = "settings.yaml"
	itemsFileName    = "items.yaml"

	// DefaultItemsFile is looked up relative to the working directory and
	// to the executable directory.
	DefaultItemsFile = "config/default_config.yaml"
)

// ItemsCandidates lists item document locations in lookup order. Empty
// inputs are skipped.
func ItemsCandidates(explicit, exeDir, userDir string) []string {
	candidates := make([]string, 0, 4)
	if explicit != "" {
		candidates = append(candidates, explicit)
	}
	candidates = append(candidates, filepath.FromSlash(DefaultItemsFile))
	if exeDir != "" {
		candidates = append(candidates, filepath.Join(exeDir, filepath.FromSlash(DefaultItemsFile)))
	}
	if userDir != "" {
		candidates = append(candidates, filepath.Join(userDir, itemsFileName))
	}
	return candidates
}

// FirstExisting returns the first candidate that is a regular file.
func FirstExisting(candidates []string) (string, bool) {
	for _, candidate := range candidates {
		info, err := os.Stat(candidate)
		if err == nil && info.Mode().IsRegular() {
			return candidate, true
		}
	}
	return "", false
}

// ResolveItemsPath picks the items document for appName. When no candidate
// exists it returns the per-user location so a later save has a target.
func ResolveItemsPath(appName, explicit string) string {
	userDir := appConfigDir(appName)
	exeDir := ""
	if exePath, err := os.Executable(); err == nil {
		exeDir = filepath.Dir(exePath)
	}

	candidates := ItemsCandidates(explicit, exeDir, userDir)
	if path, ok := FirstExisting(candidates); ok {
		return path
	}
	if explicit != "" {
		return explicit
	}
	if userDir != "" {
		return filepath.Join(userDir, itemsFileName)
	}
	return filepath.FromSlash(DefaultItemsFile)
}

func appConfigDir(appName string) string {
	configDir, err := platform.NewService().GetConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, appName)
}
