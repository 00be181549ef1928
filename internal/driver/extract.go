package driver

import (
	"todoc/internal/diag"
	"todoc/internal/doc"
	"todoc/internal/doctag"
	"todoc/internal/lexer"
	"todoc/internal/parser"
	"todoc/internal/source"
)

// Options configures extraction.
type Options struct {
	// MaxDiagnostics caps the per-file Bag. Zero means a sensible default.
	MaxDiagnostics int
	// IncludeLocals keeps `local` declarations in the model. Independently
	// of this, @!all always suppresses.
	IncludeLocals bool
	// Jobs limits batch parallelism; <=0 means GOMAXPROCS.
	Jobs int
	// Cache consults and fills the disk cache when non-nil.
	Cache *DiskCache
	// Progress receives stage events; nil means no reporting.
	Progress Sink
}

const defaultMaxDiagnostics = 100

func (o Options) maxDiagnostics() int {
	if o.MaxDiagnostics <= 0 {
		return defaultMaxDiagnostics
	}
	return o.MaxDiagnostics
}

func (o Options) progress() Sink {
	if o.Progress == nil {
		return NopSink{}
	}
	return o.Progress
}

// FileResult is the outcome of one file's pipeline. Fatal errors leave
// Doc nil; the Bag explains what happened either way.
type FileResult struct {
	Path   string
	FileID source.FileID
	Doc    *doc.FileDoc
	Bag    *diag.Bag
	Cached bool
}

// Fatal reports whether the file failed its pipeline.
func (r *FileResult) Fatal() bool {
	return r.Doc == nil
}

// ExtractFile runs the whole pipeline over one already-loaded file:
// tokenize, match blocks, recognize declarations, associate comments,
// parse doc tags, assemble the per-file model. The file's content buffer
// is only read here; no stage keeps a handle once tokens exist.
func ExtractFile(fileSet *source.FileSet, fileID source.FileID, opts Options) *FileResult {
	file := fileSet.Get(fileID)
	bag := diag.NewBag(opts.maxDiagnostics())
	reporter := diag.BagReporter{Bag: bag}
	progress := opts.progress()

	result := &FileResult{Path: file.Path, FileID: fileID, Bag: bag}

	progress.Publish(Event{File: file.Path, Stage: StageTokenize, Status: StatusStart})
	tokens := lexer.Tokenize(file, lexer.Options{Reporter: reporter})
	if bag.HasErrors() {
		progress.Publish(Event{File: file.Path, Stage: StageTokenize, Status: StatusError})
		return result
	}
	progress.Publish(Event{File: file.Path, Stage: StageTokenize, Status: StatusDone})

	progress.Publish(Event{File: file.Path, Stage: StageParse, Status: StatusStart})
	parsed := parser.Parse(tokens, reporter)
	if !parsed.OK {
		progress.Publish(Event{File: file.Path, Stage: StageParse, Status: StatusError})
		return result
	}
	progress.Publish(Event{File: file.Path, Stage: StageParse, Status: StatusDone})

	progress.Publish(Event{File: file.Path, Stage: StageDocs, Status: StatusStart})
	result.Doc = buildFileDoc(fileSet, file, parsed, reporter, opts)
	progress.Publish(Event{File: file.Path, Stage: StageDocs, Status: StatusDone})

	return result
}

// buildFileDoc pairs every recognized declaration with its parsed doc
// entry and applies export suppression. Declarations without a comment
// stay in the model with no documentation attached.
func buildFileDoc(fileSet *source.FileSet, file *source.File, parsed *parser.Result, reporter diag.Reporter, opts Options) *doc.FileDoc {
	fd := &doc.FileDoc{
		Path:      file.Path,
		Functions: make([]doc.DocumentedFunction, 0, len(parsed.Refs)),
	}

	for _, ref := range parsed.Refs {
		decl := parsed.Decls.Get(ref.ID)

		var entry *doc.DocEntry
		if ref.Comment != nil {
			entry = doctag.ParseEntry(ref.Comment, reporter)
		}
		if entry != nil && !entry.Exported {
			continue
		}
		if decl.Local && !opts.IncludeLocals {
			continue
		}

		start, _ := fileSet.Resolve(decl.Span)
		fd.Functions = append(fd.Functions, doc.DocumentedFunction{
			Kind:      decl.Kind,
			NamePath:  parsed.Decls.PathString(decl),
			Signature: parsed.Decls.Signature(decl),
			Params:    decl.Params,
			Local:     decl.Local,
			Line:      start.Line,
			Doc:       entry,
		})
	}
	return fd
}

// ExtractSource is a convenience for tests and stdin: wraps raw bytes in a
// virtual file and extracts it.
func ExtractSource(name string, content []byte, opts Options) *FileResult {
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, content)
	return ExtractFile(fs, id, opts)
}
