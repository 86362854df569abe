package metadata

import (
	"fmt"
	"go/build"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
)

// locatePackage resolves an import path to the directory holding its source.
//
// Resolution first maps the path through the enclosing module's go.mod
// (deterministic under `go test`, where the working directory sits inside the
// module), then falls back to the build context for GOPATH/GOROOT packages.
func locatePackage(importPath string) (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	if dir, ok := locateInModule(importPath, wd); ok {
		return dir, nil
	}
	pkg, err := build.Default.Import(importPath, wd, build.FindOnly)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrSourceUnavailable, importPath, err)
	}
	return pkg.Dir, nil
}

// locateInModule walks up from dir to the nearest go.mod and, when
// importPath falls under that module, returns the corresponding directory.
func locateInModule(importPath, dir string) (string, bool) {
	for {
		gomod := filepath.Join(dir, "go.mod")
		if data, err := os.ReadFile(gomod); err == nil {
			f, err := modfile.Parse(gomod, data, nil)
			if err != nil || f.Module == nil {
				return "", false
			}
			mod := f.Module.Mod.Path
			if importPath == mod {
				return dir, true
			}
			if rest, ok := strings.CutPrefix(importPath, mod+"/"); ok {
				sub := filepath.Join(dir, filepath.FromSlash(rest))
				if st, err := os.Stat(sub); err == nil && st.IsDir() {
					return sub, true
				}
			}
			return "", false
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
