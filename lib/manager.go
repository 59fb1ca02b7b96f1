package ckan

import (
	"bufio"
	"cmp"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Manager ties the version algebra to an actual game installation. A
// game directory is considered valid if it has a GameData directory
// and a readme.txt; the installed version is read from the readme's
// "Version a.b.c" line. Mod manifests are *.ckan JSON files in the
// registry directory.
type Manager struct {
	gamePath     string
	registryPath string

	gameVersion *GameVersion
	manifests   map[string]*Manifest
}

// NewManager creates a Manager for the given game directory. An empty
// registryPath defaults to CKAN/registry inside the game directory,
// which may be absent; a missing registry is an empty mod set, but an
// unreadable manifest is an error.
func NewManager(gamePath string, registryPath string) (*Manager, error) {
	if !entryExists(gamePath, "GameData") || !entryExists(gamePath, "readme.txt") {
		return nil, ErrInvalidGameDirectory
	}
	if registryPath == "" {
		registryPath = filepath.Join(gamePath, "CKAN", "registry")
	}

	m := Manager{
		gamePath:     gamePath,
		registryPath: registryPath,
		manifests:    map[string]*Manifest{},
	}

	version, err := readGameVersion(filepath.Join(gamePath, "readme.txt"))
	if err != nil {
		return nil, err
	}
	m.gameVersion = version

	if err := m.scanRegistry(); err != nil {
		return nil, err
	}

	return &m, nil
}

// readGameVersion extracts the installed version from a readme file,
// looking for the first line of the form "Version a.b.c".
func readGameVersion(path string) (*GameVersion, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		rest, found := strings.CutPrefix(line, "Version ")
		if !found {
			continue
		}
		version, err := ParseGameVersion(rest)
		if err != nil {
			return nil, fmt.Errorf("unable to read game version from %s: %w", path, err)
		}
		return version, nil
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("no version line in %s", path)
}

func (m *Manager) scanRegistry() error {
	entries, err := os.ReadDir(m.registryPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".ckan") {
			continue
		}
		manifest, err := ReadManifest(filepath.Join(m.registryPath, entry.Name()))
		if err != nil {
			return err
		}
		m.manifests[manifest.Identifier] = manifest
	}
	return nil
}

// GameVersion returns the installed game version.
func (m *Manager) GameVersion() *GameVersion {
	return m.gameVersion
}

// Manifests returns all known manifests, sorted by identifier.
func (m *Manager) Manifests() []*Manifest {
	manifests := make([]*Manifest, 0, len(m.manifests))
	for _, manifest := range m.manifests {
		manifests = append(manifests, manifest)
	}
	slices.SortFunc(manifests, func(a, b *Manifest) int {
		return cmp.Compare(strings.ToLower(a.Identifier), strings.ToLower(b.Identifier))
	})
	return manifests
}

// GetManifest returns the manifest with the given identifier.
func (m *Manager) GetManifest(identifier string) (*Manifest, error) {
	manifest, ok := m.manifests[identifier]
	if !ok {
		return nil, fmt.Errorf("%s was not found in the registry", identifier)
	}
	return manifest, nil
}

func entryExists(pathParts ...string) bool {
	_, err := os.Stat(filepath.Join(pathParts...))
	return err == nil
}
