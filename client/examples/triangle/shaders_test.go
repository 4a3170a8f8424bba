package triangle

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hulkholden/webgpu-lessons/common/wgslcheck"
)

func TestShader(t *testing.T) {
	got, err := wgslcheck.EntryPoints(shaderCode)
	if err != nil {
		if wgslcheck.Unsupported(err) {
			t.Skipf("compiler limitation: %v", err)
		}
		t.Fatalf("compiling shader: %v", err)
	}
	want := map[string]string{"vs": wgslcheck.StageVertex, "fs": wgslcheck.StageFragment}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("entry points mismatch (-want +got):\n%s", diff)
	}
}
