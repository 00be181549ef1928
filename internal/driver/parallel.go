package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"todoc/internal/diag"
	"todoc/internal/doc"
	"todoc/internal/source"
)

// listLuaFiles returns every *.lua file under dir, sorted for a
// deterministic processing order.
func listLuaFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".lua") {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// ListLuaFiles exposes the directory walk so callers can show per-file
// progress before extraction starts.
func ListLuaFiles(dir string) ([]string, error) {
	return listLuaFiles(dir)
}

// ExtractDir extracts every *.lua file in the directory tree in parallel.
func ExtractDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []*FileResult, error) {
	files, err := listLuaFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	return extractPaths(ctx, source.NewFileSetWithBase(dir), files, opts)
}

// ExtractPaths extracts an explicit list of files in parallel.
func ExtractPaths(ctx context.Context, paths []string, opts Options) (*source.FileSet, []*FileResult, error) {
	sorted := append([]string(nil), paths...)
	sort.Strings(sorted)
	return extractPaths(ctx, source.NewFileSet(), sorted, opts)
}

func extractPaths(ctx context.Context, fileSet *source.FileSet, files []string, opts Options) (*source.FileSet, []*FileResult, error) {
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	// Preload everything up front: FileSet is not synchronized, workers
	// only call Get afterwards.
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Each worker owns a unique index, so no mutex is needed.
	results := make([]*FileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			if loadErr, hadError := loadErrors[path]; hadError {
				bag := diag.NewBag(opts.maxDiagnostics())
				bag.Add(diag.NewError(diag.IOReadFile, source.Span{},
					"failed to load file: "+loadErr.Error()))
				results[i] = &FileResult{Path: path, Bag: bag}
				opts.progress().Publish(Event{File: path, Stage: StageTokenize, Status: StatusError})
				return nil
			}

			fileID := fileIDs[path]
			file := fileSet.Get(fileID)

			if opts.Cache != nil {
				if fd, ok := opts.Cache.Lookup(file.Hash); ok {
					fd.Path = file.Path
					results[i] = &FileResult{
						Path:   file.Path,
						FileID: fileID,
						Doc:    fd,
						Bag:    diag.NewBag(opts.maxDiagnostics()),
						Cached: true,
					}
					opts.progress().Publish(Event{File: file.Path, Stage: StageDocs, Status: StatusCached})
					return nil
				}
			}

			res := ExtractFile(fileSet, fileID, opts)
			if opts.Cache != nil && !res.Fatal() {
				opts.Cache.Store(file.Hash, res.Doc)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, nil, err
	}
	return fileSet, results, nil
}

// BuildModel merges per-file results into the final model and one sorted
// diagnostic bag. Fatal files contribute diagnostics but no document.
// Results arrive in path order already; the model sort keeps the output
// deterministic regardless.
func BuildModel(results []*FileResult) (*doc.DocumentModel, *diag.Bag) {
	model := &doc.DocumentModel{}
	bag := diag.NewBag(defaultMaxDiagnostics * max(1, len(results)))

	for _, res := range results {
		if res == nil {
			continue
		}
		bag.Merge(res.Bag)
		if res.Doc != nil {
			model.Add(*res.Doc)
		}
	}

	model.SortByPath()
	bag.Sort()
	return model, bag
}
