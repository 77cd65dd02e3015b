// Package assets bundles the watch face artwork.
package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png" // Register PNG format
	"io/fs"
	"path"
)

// Resource names.
const (
	Owl     = "owl.png"
	Numbers = "numbers.png"
	Eyes    = "eyes.png"
)

//go:embed images/*.png
var projectAssets embed.FS

// Pack decodes images from a file tree rooted at images/.
type Pack struct {
	fsys fs.FS
}

// Bundled returns the pack compiled into the binary.
func Bundled() *Pack {
	return &Pack{fsys: projectAssets}
}

// NewPack reads from fsys instead, e.g. an os.DirFS override.
func NewPack(fsys fs.FS) *Pack {
	return &Pack{fsys: fsys}
}

// Load decodes the named image.
func (p *Pack) Load(name string) (image.Image, error) {
	fileData, err := fs.ReadFile(p.fsys, path.Join("images", name))
	if err != nil {
		return nil, fmt.Errorf("read image %q: %w", name, err)
	}

	img, _, err := image.Decode(bytes.NewReader(fileData))
	if err != nil {
		return nil, fmt.Errorf("decode image %q: %w", name, err)
	}
	return img, nil
}

// Names lists the images in the pack.
func (p *Pack) Names() ([]string, error) {
	entries, err := fs.ReadDir(p.fsys, "images")
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}
