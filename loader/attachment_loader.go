package loader

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/duskforge/skelasset/loader/internal/linkedmesh"
	"github.com/duskforge/skelasset/skeldata"
)

// DirAttachmentLoader is an example linkedmesh.AttachmentLoader that fills
// in a linked mesh's Width/Height from an on-disk image named
// <mesh.Path><ext> under Dir, when the document itself left them at zero
// (a document exported without the nonessential flag never carries them).
// It never touches a non-linked attachment: the core only calls
// ConfigureAttachment for the meshes linkedmesh.Resolve resolves.
type DirAttachmentLoader struct {
	Dir string
}

// NewDirAttachmentLoader returns a loader that resolves images under dir.
func NewDirAttachmentLoader(dir string) *DirAttachmentLoader {
	return &DirAttachmentLoader{Dir: dir}
}

var imageExtensions = []string{".png", ".jpg", ".jpeg", ".webp", ".bmp", ".tiff"}

func (d *DirAttachmentLoader) ConfigureAttachment(mesh *skeldata.MeshAttachment) {
	if mesh.Width != 0 || mesh.Height != 0 || mesh.Path == "" {
		return
	}
	for _, ext := range imageExtensions {
		f, err := os.Open(filepath.Join(d.Dir, mesh.Path+ext))
		if err != nil {
			continue
		}
		cfg, _, decErr := image.DecodeConfig(f)
		f.Close()
		if decErr != nil {
			continue
		}
		mesh.Width = float32(cfg.Width)
		mesh.Height = float32(cfg.Height)
		return
	}
}

var _ linkedmesh.AttachmentLoader = (*DirAttachmentLoader)(nil)
