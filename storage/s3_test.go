package storage

import (
	"strings"
	"testing"
)

func TestSanitizeFilename(t *testing.T) {
	cases := map[string]string{
		"wedding photo.jpg":     "wedding_photo.jpg",
		"  spaced   name .png":  "spaced_name_.png",
		"already-clean.webp":    "already-clean.webp",
		"tab\tand\nnewline.jpg": "tab_and_newline.jpg",
	}
	for in, want := range cases {
		if got := SanitizeFilename(in); got != want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMediaKeyLayout(t *testing.T) {
	key := MediaKey(3, 9, "first dance.jpg")
	if !strings.HasPrefix(key, "gallery/3/albums/9/") {
		t.Errorf("unexpected key prefix: %s", key)
	}
	if !strings.HasSuffix(key, "-first_dance.jpg") {
		t.Errorf("filename should be sanitized into the key: %s", key)
	}
}

func TestStudioKeyLayout(t *testing.T) {
	key := StudioKey("store front.png")
	if !strings.HasPrefix(key, "studio/") {
		t.Errorf("unexpected key prefix: %s", key)
	}
	if !strings.HasSuffix(key, "-store_front.png") {
		t.Errorf("filename should be sanitized into the key: %s", key)
	}
}
