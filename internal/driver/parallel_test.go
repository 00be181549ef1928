package driver_test

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"sync"
	"testing"

	"todoc/internal/diag"
	"todoc/internal/driver"
)

// recordingSink collects events from concurrent workers.
type recordingSink struct {
	mu  sync.Mutex
	evs []driver.Event
}

func (s *recordingSink) Publish(ev driver.Event) {
	s.mu.Lock()
	s.evs = append(s.evs, ev)
	s.mu.Unlock()
}

func (s *recordingSink) events() []driver.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]driver.Event(nil), s.evs...)
}

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

var sampleTree = map[string]string{
	"a.lua":        "-- Entry point.\nfunction main() end\n",
	"lib/b.lua":    "function lib.go(x) end\n",
	"lib/c.lua":    "-- broken\nfunction broken(\n",
	"notes/d.txt":  "not lua at all",
	"vendor/e.lua": "local function private() end\n",
}

func TestExtractDir_WalksOnlyLua(t *testing.T) {
	dir := writeTree(t, sampleTree)
	files, err := driver.ListLuaFiles(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 4 {
		t.Fatalf("files = %v", files)
	}
	for _, f := range files {
		if filepath.Ext(f) != ".lua" {
			t.Errorf("non-lua file listed: %s", f)
		}
	}
}

func TestExtractDir_Deterministic(t *testing.T) {
	dir := writeTree(t, sampleTree)

	run := func(jobs int) ([]string, int) {
		_, results, err := driver.ExtractDir(context.Background(), dir, driver.Options{Jobs: jobs})
		if err != nil {
			t.Fatal(err)
		}
		model, bag := driver.BuildModel(results)
		paths := make([]string, 0, len(model.Files))
		for _, fd := range model.Files {
			paths = append(paths, fd.Path)
		}
		return paths, bag.Len()
	}

	basePaths, baseDiags := run(1)
	for _, jobs := range []int{2, 8} {
		paths, diags := run(jobs)
		if !reflect.DeepEqual(paths, basePaths) {
			t.Errorf("jobs=%d: paths %v != %v", jobs, paths, basePaths)
		}
		if diags != baseDiags {
			t.Errorf("jobs=%d: diagnostic count %d != %d", jobs, diags, baseDiags)
		}
	}
}

// One broken file must not poison its siblings.
func TestExtractDir_FatalFileIsolated(t *testing.T) {
	dir := writeTree(t, sampleTree)
	_, results, err := driver.ExtractDir(context.Background(), dir, driver.Options{})
	if err != nil {
		t.Fatal(err)
	}

	fatals := 0
	for _, res := range results {
		if res.Fatal() {
			fatals++
		}
	}
	if fatals != 1 {
		t.Fatalf("expected exactly one fatal file, got %d", fatals)
	}

	model, bag := driver.BuildModel(results)
	if len(model.Files) != 3 {
		t.Errorf("model files = %d, want 3", len(model.Files))
	}
	if !bag.HasErrors() {
		t.Error("merged bag must keep the fatal file's error")
	}
}

func TestExtractPaths_MissingFileIsDiagnostic(t *testing.T) {
	dir := writeTree(t, map[string]string{"ok.lua": "function f() end\n"})
	paths := []string{
		filepath.Join(dir, "ok.lua"),
		filepath.Join(dir, "gone.lua"),
	}
	_, results, err := driver.ExtractPaths(context.Background(), paths, driver.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("results = %d", len(results))
	}

	var missing *driver.FileResult
	for _, res := range results {
		if filepath.Base(res.Path) == "gone.lua" {
			missing = res
		}
	}
	if missing == nil || !missing.Fatal() {
		t.Fatal("missing file must produce a fatal result")
	}
	found := false
	for _, d := range missing.Bag.Items() {
		if d.Code == diag.IOReadFile {
			found = true
		}
	}
	if !found {
		t.Errorf("expected IOReadFile, got %v", missing.Bag.Items())
	}
}

func TestExtractDir_CancelledContext(t *testing.T) {
	dir := writeTree(t, sampleTree)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := driver.ExtractDir(ctx, dir, driver.Options{Jobs: 1})
	if err == nil {
		t.Error("expected context error")
	}
}

func TestDiskCache_RoundTrip(t *testing.T) {
	cache, err := driver.OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	dir := writeTree(t, map[string]string{"m.lua": sampleTree["a.lua"]})
	opts := driver.Options{Cache: cache}

	_, first, err := driver.ExtractDir(context.Background(), dir, opts)
	if err != nil {
		t.Fatal(err)
	}
	if first[0].Cached {
		t.Fatal("first run must be a cache miss")
	}

	_, second, err := driver.ExtractDir(context.Background(), dir, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second[0].Cached {
		t.Fatal("second run must hit the cache")
	}
	if !reflect.DeepEqual(first[0].Doc, second[0].Doc) {
		t.Error("cached document differs from the extracted one")
	}
}

func TestDiskCache_ContentChangeMisses(t *testing.T) {
	cache, err := driver.OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	dir := writeTree(t, map[string]string{"m.lua": "function one() end\n"})
	opts := driver.Options{Cache: cache}

	if _, _, err := driver.ExtractDir(context.Background(), dir, opts); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(filepath.Join(dir, "m.lua"), []byte("function two() end\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, results, err := driver.ExtractDir(context.Background(), dir, opts)
	if err != nil {
		t.Fatal(err)
	}
	if results[0].Cached {
		t.Error("changed content must bypass the cache")
	}
	if results[0].Doc.Functions[0].NamePath != "two" {
		t.Errorf("functions = %+v", results[0].Doc.Functions)
	}
}

func TestDiskCache_Clear(t *testing.T) {
	cache, err := driver.OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	dir := writeTree(t, map[string]string{"m.lua": "function f() end\n"})
	opts := driver.Options{Cache: cache}

	if _, _, err := driver.ExtractDir(context.Background(), dir, opts); err != nil {
		t.Fatal(err)
	}
	if err := cache.Clear(); err != nil {
		t.Fatal(err)
	}
	_, results, err := driver.ExtractDir(context.Background(), dir, opts)
	if err != nil {
		t.Fatal(err)
	}
	if results[0].Cached {
		t.Error("cleared cache must miss")
	}
}

func TestBuildModel_SortedAndMerged(t *testing.T) {
	dir := writeTree(t, sampleTree)
	_, results, err := driver.ExtractDir(context.Background(), dir, driver.Options{Jobs: 4})
	if err != nil {
		t.Fatal(err)
	}
	model, _ := driver.BuildModel(results)
	for i := 1; i < len(model.Files); i++ {
		if model.Files[i-1].Path > model.Files[i].Path {
			t.Fatalf("model files not sorted: %q > %q", model.Files[i-1].Path, model.Files[i].Path)
		}
	}
}
