package viz

import (
	"bytes"
	"image"
	"image/png"
	"testing"
)

func TestCaption_EmptyTextIsPassthrough(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 50, 40))); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	out, err := Caption(buf.Bytes(), "   ")
	if err != nil {
		t.Fatalf("Caption: %v", err)
	}
	if !bytes.Equal(out, buf.Bytes()) {
		t.Fatalf("blank caption modified the image")
	}
}

func TestCaption_RejectsNonPNG(t *testing.T) {
	if _, err := Caption([]byte("not a png"), "hello"); err == nil {
		t.Fatalf("expected decode error")
	}
}
