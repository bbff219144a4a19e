package images

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string, size int) {
	t.Helper()
	if err := os.WriteFile(path, bytes.Repeat([]byte{'x'}, size), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func TestScan_MissingDir(t *testing.T) {
	listing, err := Scan(filepath.Join(t.TempDir(), "images"), Options{})
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}
	if listing.Found {
		t.Error("Found = true, want false")
	}
	if len(listing.Files) != 0 {
		t.Errorf("Files len = %d, want 0", len(listing.Files))
	}
}

func TestScan_FiltersByExtension(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "x.gif"), 10)
	writeFile(t, filepath.Join(dir, "y.txt"), 10)
	writeFile(t, filepath.Join(dir, "Z.JPEG"), 10)
	writeFile(t, filepath.Join(dir, "noext"), 10)
	if err := os.Mkdir(filepath.Join(dir, "nested.png"), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeFile(t, filepath.Join(dir, "nested.png", "inner.png"), 10)

	listing, err := Scan(dir, Options{})
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}
	if !listing.Found {
		t.Fatal("Found = false, want true")
	}

	var names []string
	for _, f := range listing.Files {
		names = append(names, f.Name)
	}
	// os.ReadDir sorts by name; upper case sorts first.
	want := []string{"Z.JPEG", "x.gif"}
	if len(names) != len(want) {
		t.Fatalf("names = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestScan_CustomExtensions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.gif"), 1)
	writeFile(t, filepath.Join(dir, "b.svg"), 1)

	listing, err := Scan(dir, Options{Extensions: []string{".SVG"}})
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}
	if len(listing.Files) != 1 || listing.Files[0].Name != "b.svg" {
		t.Errorf("Files = %+v, want only b.svg", listing.Files)
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"a.gif", true},
		{"a.GIF", true},
		{"a.webp", true},
		{"a.png", true},
		{"a.jpg", true},
		{"a.jpeg", true},
		{"a.txt", false},
		{"gif", false},
		{"a.gif.bak", false},
	}
	for _, tt := range tests {
		if got := Match(tt.name, nil); got != tt.want {
			t.Errorf("Match(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestFile_SizeKB(t *testing.T) {
	tests := []struct {
		size int64
		want int64
	}{
		{0, 0},
		{511, 0},
		{512, 1},
		{1024, 1},
		{1535, 1},
		{1536, 2},
		{10 * 1024, 10},
	}
	for _, tt := range tests {
		if got := (File{Size: tt.size}).SizeKB(); got != tt.want {
			t.Errorf("SizeKB(%d) = %d, want %d", tt.size, got, tt.want)
		}
	}
}

func TestScan_Dimensions(t *testing.T) {
	dir := t.TempDir()

	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 3, 2))); err != nil {
		t.Fatalf("encoding png: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "real.png"), buf.Bytes(), 0644); err != nil {
		t.Fatalf("writing png: %v", err)
	}
	writeFile(t, filepath.Join(dir, "fake.gif"), 20)

	listing, err := Scan(dir, Options{Dimensions: true})
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}
	if len(listing.Files) != 2 {
		t.Fatalf("Files len = %d, want 2", len(listing.Files))
	}

	byName := map[string]File{}
	for _, f := range listing.Files {
		byName[f.Name] = f
	}
	if got := byName["real.png"].Dimensions(); got != "3x2" {
		t.Errorf("real.png Dimensions() = %q, want %q", got, "3x2")
	}
	if got := byName["fake.gif"].Dimensions(); got != "?" {
		t.Errorf("fake.gif Dimensions() = %q, want %q", got, "?")
	}
}

func TestScan_FollowsSymlinks(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "images")
	if err := os.Mkdir(dir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeFile(t, filepath.Join(root, "real.gif"), 10*1024)
	if err := os.Mkdir(filepath.Join(root, "frames"), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.Symlink(filepath.Join(root, "real.gif"), filepath.Join(dir, "a.gif")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}
	if err := os.Symlink(filepath.Join(root, "frames"), filepath.Join(dir, "linkdir.png")); err != nil {
		t.Fatalf("symlink: %v", err)
	}
	if err := os.Symlink(filepath.Join(root, "gone.gif"), filepath.Join(dir, "dangling.gif")); err != nil {
		t.Fatalf("symlink: %v", err)
	}

	listing, err := Scan(dir, Options{})
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}
	if len(listing.Files) != 1 {
		t.Fatalf("Files = %+v, want only a.gif", listing.Files)
	}
	f := listing.Files[0]
	if f.Name != "a.gif" {
		t.Errorf("Name = %q, want %q", f.Name, "a.gif")
	}
	if f.Size != 10*1024 || f.SizeKB() != 10 {
		t.Errorf("Size = %d (%d KB), want the target's 10240 bytes (10 KB)", f.Size, f.SizeKB())
	}
}
