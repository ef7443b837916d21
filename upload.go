package colorlut

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
)

// UploadTable creates a host texture holding the packed table as 8-bit
// RGBA. Use it when the host draws with its own GPU context and only needs
// the table as a texture.
//
// Example:
//
//	tex, err := colorlut.UploadTable(drawer.TextureCreator(), table)
func UploadTable(creator gpucontext.TextureCreator, t *Table) (gpucontext.Texture, error) {
	if creator == nil {
		return nil, errors.New("colorlut: upload: nil texture creator")
	}
	if t == nil {
		return nil, &MissingInputError{}
	}
	data, err := t.RGBA8()
	if err != nil {
		return nil, fmt.Errorf("colorlut: upload: %w", err)
	}
	tex, err := creator.NewTextureFromRGBA(t.Side(), t.Side(), data)
	if err != nil {
		return nil, fmt.Errorf("colorlut: upload: %w", err)
	}
	Logger().Debug("colorlut: uploaded table", "id", t.ID(), "side", t.Side())
	return tex, nil
}

// UpdateTable re-uploads the packed table into a texture previously created
// by UploadTable.
func UpdateTable(updater gpucontext.TextureUpdater, t *Table) error {
	if updater == nil {
		return errors.New("colorlut: update: nil texture")
	}
	if t == nil {
		return &MissingInputError{}
	}
	data, err := t.RGBA8()
	if err != nil {
		return fmt.Errorf("colorlut: update: %w", err)
	}
	if err := updater.UpdateData(data); err != nil {
		return fmt.Errorf("colorlut: update: %w", err)
	}
	Logger().Debug("colorlut: updated table texture", "id", t.ID())
	return nil
}
