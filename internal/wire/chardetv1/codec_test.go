package chardetv1

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/grpc/encoding"
)

func TestCodecRegistered(t *testing.T) {
	c := encoding.GetCodec(CodecName)
	if c == nil {
		t.Fatal("json codec not registered")
	}

	in := &ClassifyResponse{
		Characters: []*Character{
			{Index: 2, Offset: 3, Rune: '\n', CodePoint: "U+000A", Name: "<control>", Block: "Basic Latin", Visual: "◌", Kind: "control", Substituted: true},
		},
		Blocks:     []*BlockSummary{{Block: &Block{Name: "Basic Latin", End: 0x7F, Range: "U+0000..U+007F", Color: "#123456"}, Count: 2}},
		ShareToken: "QdCxCg",
	}
	data, err := c.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	out := new(ClassifyResponse)
	if err := c.Unmarshal(data, out); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("codec mismatch (-in +out):\n%s", diff)
	}
}

func TestServiceDescriptors(t *testing.T) {
	if got := len(Detector_ServiceDesc.Methods); got != 3 {
		t.Errorf("Detector has %d methods, want 3", got)
	}
	if got := len(History_ServiceDesc.Methods); got != 6 {
		t.Errorf("History has %d unary methods, want 6", got)
	}
	if s := History_ServiceDesc.Streams; len(s) != 1 || !s[0].ServerStreams || s[0].StreamName != "WatchSamples" {
		t.Errorf("History streams = %+v", s)
	}
}
