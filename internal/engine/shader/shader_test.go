package shader

import (
	"strings"
	"testing"
)

func TestTerminate(t *testing.T) {
	if got := terminate("abc"); got != "abc\x00" {
		t.Errorf("terminate(abc) = %q", got)
	}
	if got := terminate("abc\x00"); got != "abc\x00" {
		t.Errorf("terminate should not double the NUL, got %q", got)
	}
}

func TestTrimLog(t *testing.T) {
	if got := trimLog([]byte("0:1: error\n\x00\x00")); got != "0:1: error" {
		t.Errorf("trimLog = %q", got)
	}
}

func TestEmbeddedSources(t *testing.T) {
	for name, src := range map[string]string{"vertex": LineVertexShader, "fragment": LineFragmentShader} {
		if !strings.HasPrefix(src, "#version 410 core") {
			t.Errorf("%s shader missing version line", name)
		}
	}
	if !strings.Contains(LineVertexShader, "uMVP") || !strings.Contains(LineFragmentShader, "uAlpha") {
		t.Error("line shaders must declare uMVP and uAlpha")
	}
}
