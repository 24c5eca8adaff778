package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// AssetRoot is an optional extra search root for scene and texture files,
// settable from the command line.
var AssetRoot string

// ResolveAssetPath locates a file referenced by a scene document. Relative
// paths are tried against the working directory, the local assets/ folder
// and AssetRoot, in that order. The first candidate is returned when nothing
// exists so the caller's open error names a sensible path.
func ResolveAssetPath(relPath string) string {
	if filepath.IsAbs(relPath) {
		return relPath
	}

	candidates := []string{
		relPath,
		filepath.Join("assets", relPath),
	}
	if AssetRoot != "" {
		candidates = append(candidates, filepath.Join(AssetRoot, relPath))
	}

	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return candidates[0]
}

// FindTextureFile resolves a texture name that may omit its extension,
// trying the supported decoder extensions in each search directory.
func FindTextureFile(name string) string {
	if name == "" {
		return ""
	}

	if strings.ContainsRune(filepath.Base(name), '.') {
		return ResolveAssetPath(name)
	}

	searchDirs := []string{".", "assets", "assets/textures", "textures"}
	if AssetRoot != "" {
		searchDirs = append(searchDirs, AssetRoot, filepath.Join(AssetRoot, "textures"))
	}

	extensions := []string{".png", ".jpg", ".jpeg", ".texz"}
	for _, dir := range searchDirs {
		for _, ext := range extensions {
			p := filepath.Join(dir, name+ext)
			if _, err := os.Stat(p); err == nil {
				return p
			}
		}
	}
	return name
}
