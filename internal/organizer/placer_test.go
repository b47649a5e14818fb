package organizer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
)

// stubHasher 测试用的确定性哈希器，按路径返回预设指纹
type stubHasher struct {
	sums map[string]string
}

func (s *stubHasher) Sum(path string) (string, error) {
	if fingerprint, ok := s.sums[path]; ok {
		return fingerprint, nil
	}
	return "", fmt.Errorf("读取文件失败: %s", path)
}

func testPlacerSetup(t *testing.T) (string, string) {
	t.Helper()

	tempDir := t.TempDir()
	sourceDir := filepath.Join(tempDir, "source")
	destDir := filepath.Join(tempDir, "dest")

	for _, dir := range []string{sourceDir, filepath.Join(destDir, "images"), filepath.Join(destDir, "documents")} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("创建测试目录失败: %v", err)
		}
	}

	return sourceDir, destDir
}

func TestPlacer_Place_NameClashGetsCounterSuffix(t *testing.T) {
	sourceDir, destDir := testPlacerSetup(t)

	// 两个不同内容的文件，时间戳相同且指纹前 4 位碰撞
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.Local)

	src1 := filepath.Join(sourceDir, "x.png")
	src2 := filepath.Join(sourceDir, "y.PNG")

	if err := os.WriteFile(src1, []byte("x data"), 0644); err != nil {
		t.Fatalf("创建测试文件失败: %v", err)
	}
	if err := os.WriteFile(src2, []byte("y data"), 0644); err != nil {
		t.Fatalf("创建测试文件失败: %v", err)
	}

	for _, src := range []string{src1, src2} {
		if err := os.Chtimes(src, ts, ts); err != nil {
			t.Fatalf("设置文件时间失败: %v", err)
		}
	}

	clashName := "20240102-030405-aaaa.png"
	h := &stubHasher{sums: map[string]string{
		src1: "aaaa1111aaaa1111aaaa1111aaaa1111aaaa1111",
		src2: "aaaa2222aaaa2222aaaa2222aaaa2222aaaa2222",
		filepath.Join(destDir, "images", clashName): "aaaa1111aaaa1111aaaa1111aaaa1111aaaa1111",
	}}

	p := NewPlacer(afero.NewOsFs(), h, destDir, NewRegistry(), Options{MaxNameAttempts: 100})

	for _, src := range []string{src1, src2} {
		info, err := os.Stat(src)
		if err != nil {
			t.Fatalf("Stat() error = %v", err)
		}

		outcome, err := p.Place(src, info)
		if err != nil {
			t.Fatalf("Place(%s) error = %v", src, err)
		}
		if outcome.Duplicate {
			t.Errorf("Expected %s not to be reported as duplicate", src)
		}
	}

	first := filepath.Join(destDir, "images", clashName)
	second := filepath.Join(destDir, "images", "20240102-030405-aaaa_1.png")

	firstContent, err := os.ReadFile(first)
	if err != nil {
		t.Fatalf("读取目标文件失败: %v", err)
	}
	if string(firstContent) != "x data" {
		t.Errorf("Expected first placed file to keep its content, got %q", firstContent)
	}

	secondContent, err := os.ReadFile(second)
	if err != nil {
		t.Fatalf("读取目标文件失败: %v", err)
	}
	if string(secondContent) != "y data" {
		t.Errorf("Expected second placed file to keep its content, got %q", secondContent)
	}
}

func TestPlacer_Place_RegistryDuplicateLeavesFilesystemAlone(t *testing.T) {
	sourceDir, destDir := testPlacerSetup(t)

	src1 := filepath.Join(sourceDir, "a.txt")
	src2 := filepath.Join(sourceDir, "b.txt")

	for _, src := range []string{src1, src2} {
		if err := os.WriteFile(src, []byte("hello"), 0644); err != nil {
			t.Fatalf("创建测试文件失败: %v", err)
		}
	}

	sameFP := "aaf4c61ddcc5e8a2dabede0f3b482cd9aea9434d"
	h := &stubHasher{sums: map[string]string{
		src1: sameFP,
		src2: sameFP,
	}}

	p := NewPlacer(afero.NewOsFs(), h, destDir, NewRegistry(), Options{MaxNameAttempts: 100})

	info1, _ := os.Stat(src1)
	if _, err := p.Place(src1, info1); err != nil {
		t.Fatalf("Place() error = %v", err)
	}

	info2, _ := os.Stat(src2)
	outcome, err := p.Place(src2, info2)
	if err != nil {
		t.Fatalf("Place() error = %v", err)
	}

	if !outcome.Duplicate {
		t.Error("Expected second file with same fingerprint to be a duplicate")
	}

	// 重复文件不触碰文件系统：源文件原地保留
	if _, err := os.Stat(src2); err != nil {
		t.Errorf("Expected duplicate source file to remain in place: %v", err)
	}
}

func TestPlacer_Place_ExhaustedAttemptsSurfacesPlacementError(t *testing.T) {
	sourceDir, destDir := testPlacerSetup(t)

	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.Local)

	src := filepath.Join(sourceDir, "doc.txt")
	if err := os.WriteFile(src, []byte("incoming"), 0644); err != nil {
		t.Fatalf("创建测试文件失败: %v", err)
	}
	if err := os.Chtimes(src, ts, ts); err != nil {
		t.Fatalf("设置文件时间失败: %v", err)
	}

	// 候选名和 _1 槽位都被不同内容占用，上限 1 次重试
	occupied := filepath.Join(destDir, "documents", "20240102-030405-cccc.txt")
	occupied1 := filepath.Join(destDir, "documents", "20240102-030405-cccc_1.txt")
	for _, path := range []string{occupied, occupied1} {
		if err := os.WriteFile(path, []byte("occupied"), 0644); err != nil {
			t.Fatalf("创建测试文件失败: %v", err)
		}
	}

	h := &stubHasher{sums: map[string]string{
		src:       "cccc1111cccc1111cccc1111cccc1111cccc1111",
		occupied:  "dddd1111dddd1111dddd1111dddd1111dddd1111",
		occupied1: "eeee1111eeee1111eeee1111eeee1111eeee1111",
	}}

	p := NewPlacer(afero.NewOsFs(), h, destDir, NewRegistry(), Options{MaxNameAttempts: 1})

	info, _ := os.Stat(src)
	_, err := p.Place(src, info)

	var placementErr *PlacementError
	if !errors.As(err, &placementErr) {
		t.Fatalf("Expected PlacementError, got %v", err)
	}

	if placementErr.Attempts != 1 {
		t.Errorf("Expected 1 attempt recorded, got %d", placementErr.Attempts)
	}
}
