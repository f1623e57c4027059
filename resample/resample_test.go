package resample_test

import (
	"testing"

	"github.com/rescale-ml/rescale/backend/cpu"
	"github.com/rescale-ml/rescale/resample"
	"github.com/rescale-ml/rescale/tensor"
)

func TestResize(t *testing.T) {
	backend := cpu.New()

	in, err := tensor.FromFloat32([]float32{1, 2, 3, 4}, tensor.Shape{1, 1, 2, 2})
	if err != nil {
		t.Fatal(err)
	}

	out, err := resample.Resize(backend, in, tensor.NCHW, 4, 4, resample.Bilinear)
	if err != nil {
		t.Fatalf("Resize failed: %v", err)
	}

	if !out.Shape().Equal(tensor.Shape{1, 1, 4, 4}) {
		t.Fatalf("Shape = %v, want [1 1 4 4]", out.Shape())
	}
	data := out.AsFloat32()
	if data[0] != 1 {
		t.Errorf("out[0][0] = %v, want 1", data[0])
	}
	if data[15] != 4 {
		t.Errorf("out[3][3] = %v, want 4", data[15])
	}
}

func TestInto(t *testing.T) {
	in := []float32{1, 2, 3, 4}
	out := make([]float32, 1)

	err := resample.Into(
		tensor.NewFloat32Decoder(in), tensor.Shape{1, 1, 2, 2}, tensor.NCHW,
		tensor.NewFloat32Encoder(out), tensor.Shape{1, 1, 1, 1}, tensor.NCHW,
		resample.NearestNeighbor,
	)
	if err != nil {
		t.Fatalf("Into failed: %v", err)
	}
	if out[0] != 1 {
		t.Errorf("out = %v, want 1", out[0])
	}
}

func TestIntoValidates(t *testing.T) {
	err := resample.Into(
		tensor.NewFloat32Decoder(nil), tensor.Shape{1, 1, 2, 2}, tensor.NCHW,
		tensor.NewFloat32Encoder(nil), tensor.Shape{2, 1, 1, 1}, tensor.NCHW,
		resample.Bilinear,
	)
	if err == nil {
		t.Error("Into accepted mismatched batch extents")
	}
}

func TestResizer(t *testing.T) {
	backend := cpu.New()

	r, err := resample.NewResizer(3, 3, resample.NearestNeighbor, backend)
	if err != nil {
		t.Fatal(err)
	}

	in, err := tensor.FromFloat32([]float32{1, 2, 3, 4}, tensor.Shape{1, 1, 2, 2})
	if err != nil {
		t.Fatal(err)
	}

	out, err := r.Forward(in, tensor.NCHW)
	if err != nil {
		t.Fatalf("Forward failed: %v", err)
	}
	if !out.Shape().Equal(tensor.Shape{1, 1, 3, 3}) {
		t.Errorf("Shape = %v, want [1 1 3 3]", out.Shape())
	}

	if got, want := r.String(), "Resizer(size=3x3, method=nearest)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestNewResizerRejectsBadSize(t *testing.T) {
	if _, err := resample.NewResizer(0, 4, resample.Bilinear, cpu.New()); err == nil {
		t.Error("NewResizer accepted zero height")
	}
}

func TestParseMethod(t *testing.T) {
	if m, err := resample.ParseMethod("bilinear"); err != nil || m != resample.Bilinear {
		t.Errorf("ParseMethod(bilinear) = %v, %v", m, err)
	}
	if m, err := resample.ParseMethod("nearest"); err != nil || m != resample.NearestNeighbor {
		t.Errorf("ParseMethod(nearest) = %v, %v", m, err)
	}
	if _, err := resample.ParseMethod("bicubic"); err == nil {
		t.Error("ParseMethod accepted bicubic")
	}
}
