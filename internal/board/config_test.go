package board

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"fps":        "12",
		"board_size": "75",
		"pattern":    "glider.txt",
		"seed":       "-7",
		"pan_step":   "nope",
	})
	if c.FPS != 12 || c.BoardSize != 75 || c.Pattern != "glider.txt" || c.Seed != -7 {
		t.Fatalf("FromMap = %+v", c)
	}
	if c.PanStep != DefaultConfig().PanStep {
		t.Fatalf("unparsable pan step overrode default: %d", c.PanStep)
	}

	c = FromMap(map[string]string{"fps": "90", "board_size": "0"})
	if c.FPS != 30 || c.BoardSize != 100 {
		t.Fatalf("out-of-range values accepted: %+v", c)
	}
	if FromMap(nil) != DefaultConfig() {
		t.Fatal("FromMap(nil) differs from defaults")
	}
}

func TestParseConfig(t *testing.T) {
	c, err := ParseConfig([]byte("fps: 10\npattern: cap.txt\n"))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if c.FPS != 10 || c.Pattern != "cap.txt" || c.BoardSize != 100 {
		t.Fatalf("ParseConfig = %+v", c)
	}

	if _, err := ParseConfig([]byte("fps: 0\n")); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("fps 0 error = %v", err)
	}
	if _, err := ParseConfig([]byte("board_size: [1, 2]\n")); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("malformed yaml error = %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "life.yaml")
	if err := os.WriteFile(path, []byte("board_size: 75\nseed: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if c.BoardSize != 75 || c.Seed != 3 || c.FPS != 30 {
		t.Fatalf("LoadConfig = %+v", c)
	}

	if _, err := LoadConfig(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing config error = %v", err)
	}
}
