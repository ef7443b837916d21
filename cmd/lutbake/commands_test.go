package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/colorlut"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { colorlut.SetLogger(nil) })

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCommandsPipeline(t *testing.T) {
	dir := t.TempDir()
	strip := filepath.Join(dir, "sepia.png")
	packed := filepath.Join(dir, "packed.png")
	photo := filepath.Join(dir, "photo.png")
	graded := filepath.Join(dir, "graded.png")
	cube := filepath.Join(dir, "sepia.cube")

	if _, err := run(t, "generate", "--style", "sepia", "-o", strip); err != nil {
		t.Fatalf("generate: %v", err)
	}

	out, err := run(t, "validate", "-i", strip)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !strings.Contains(out, "ok (256x16)") {
		t.Errorf("validate output = %q", out)
	}

	if _, err := run(t, "convert", "-i", strip, "-o", packed); err != nil {
		t.Fatalf("convert: %v", err)
	}
	pm, err := colorlut.LoadImage(packed)
	if err != nil {
		t.Fatal(err)
	}
	if pm.Width() != colorlut.Side || pm.Height() != colorlut.Side {
		t.Errorf("packed size = %dx%d", pm.Width(), pm.Height())
	}

	img := colorlut.NewPixmap(8, 4)
	img.Clear(colorlut.RGB(0.2, 0.5, 0.9))
	if err := img.SavePNG(photo); err != nil {
		t.Fatal(err)
	}
	if _, err := run(t, "grade", "-i", photo, "-l", strip, "-o", graded, "--linear"); err != nil {
		t.Fatalf("grade: %v", err)
	}
	g, err := colorlut.LoadImage(graded)
	if err != nil {
		t.Fatal(err)
	}
	// sepia pushes red above blue
	c := g.GetPixel(3, 2)
	if c.R <= c.B {
		t.Errorf("graded pixel %+v is not sepia toned", c)
	}

	if _, err := run(t, "cube", "-i", strip, "-o", cube); err != nil {
		t.Fatalf("cube: %v", err)
	}
}

func TestIdentityCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "identity.png")
	if _, err := run(t, "identity", "-o", out); err != nil {
		t.Fatalf("identity: %v", err)
	}
	pm, err := colorlut.LoadImage(out)
	if err != nil {
		t.Fatal(err)
	}
	// top-left texel of the last tile is blue 1
	c := pm.GetPixel(15*colorlut.Dim, 15*colorlut.Dim)
	if c.R != 0 || c.G != 0 || c.B != 1 {
		t.Errorf("texel = %+v", c)
	}
}

func TestValidateRejectsBadStrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.png")
	if err := colorlut.NewPixmap(255, 16).SavePNG(path); err != nil {
		t.Fatal(err)
	}
	_, err := run(t, "validate", "-i", path)
	var verr *colorlut.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("validate error = %v, want ValidationError", err)
	}
	if verr.Width != 255 {
		t.Errorf("Width = %d", verr.Width)
	}

	_, err = run(t, "grade", "-i", path, "-l", path, "-o", filepath.Join(t.TempDir(), "x.png"))
	if err == nil {
		t.Error("grade with an invalid strip should fail")
	}
}

func TestUnknownStyle(t *testing.T) {
	_, err := run(t, "generate", "--style", "vintage", "-o", filepath.Join(t.TempDir(), "x.png"))
	if err == nil || !strings.Contains(err.Error(), "unknown style") {
		t.Errorf("error = %v", err)
	}
}
