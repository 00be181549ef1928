package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"todoc/internal/diagfmt"
	"todoc/internal/doc"
	"todoc/internal/driver"
	"todoc/internal/project"
	"todoc/internal/render"
)

var extractCmd = &cobra.Command{
	Use:   "extract [flags] [path...]",
	Short: "Extract documentation from Lua sources",
	Long: `Extract runs the documentation pipeline over the given files and
directories (default: the current directory) and writes one output file
per run into the output directory.`,
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().String("out", "", "output directory (default from todoc.toml, else docs)")
	extractCmd.Flags().String("format", "", "output format (markdown|json)")
	extractCmd.Flags().Int("jobs", 0, "parallel workers (0 = one per CPU)")
	extractCmd.Flags().Bool("ui", false, "show interactive progress")
	extractCmd.Flags().Bool("no-cache", false, "bypass the document cache")
	extractCmd.Flags().Bool("include-locals", false, "keep local declarations in the output")
	extractCmd.Flags().Bool("stdout", false, "write the rendered output to stdout instead of a file")
}

func runExtract(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		args = []string{"."}
	}

	cfg, err := loadConfigFor(args[0])
	if err != nil {
		return err
	}

	outDir, _ := cmd.Flags().GetString("out")
	if outDir == "" {
		outDir = cfg.Output.Dir
	}
	format, _ := cmd.Flags().GetString("format")
	if format == "" {
		format = cfg.Output.Format
	}
	renderer, err := render.New(render.Format(format))
	if err != nil {
		return err
	}

	jobs, _ := cmd.Flags().GetInt("jobs")
	if jobs == 0 {
		jobs = cfg.Extract.Jobs
	}
	includeLocals, _ := cmd.Flags().GetBool("include-locals")
	includeLocals = includeLocals || cfg.Extract.IncludeLocals
	noCache, _ := cmd.Flags().GetBool("no-cache")
	maxDiagnostics, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	withUI, _ := cmd.Flags().GetBool("ui")
	toStdout, _ := cmd.Flags().GetBool("stdout")

	files, err := collectLuaFiles(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no .lua files found under %s", strings.Join(args, ", "))
	}

	opts := driver.Options{
		MaxDiagnostics: maxDiagnostics,
		IncludeLocals:  includeLocals,
		Jobs:           jobs,
	}
	if cfg.Extract.Cache && !noCache {
		cache, cacheErr := driver.OpenDiskCache("todoc")
		if cacheErr == nil {
			opts.Cache = cache
		}
		// A cache that cannot open is skipped, not fatal.
	}

	fileSet, results, err := runExtraction(cmd, files, opts, withUI)
	if err != nil {
		return err
	}

	model, bag := driver.BuildModel(results)

	if bag.Len() > 0 && !quiet {
		prettyOpts := diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stderr),
			Context:   true,
			ShowNotes: true,
		}
		if err := diagfmt.WritePretty(os.Stderr, fileSet, bag, prettyOpts); err != nil {
			return err
		}
	}

	if toStdout {
		if err := renderer.Render(os.Stdout, model); err != nil {
			return err
		}
	} else {
		outPath, err := writeOutput(outDir, renderer, model)
		if err != nil {
			return err
		}
		if !quiet {
			fmt.Fprintf(os.Stderr, "wrote %s (%d functions, %d files)\n",
				outPath, model.FunctionCount(), len(model.Files))
		}
	}

	if bag.HasErrors() {
		return fmt.Errorf("extraction finished with errors")
	}
	return nil
}

// loadConfigFor reads todoc.toml from the first directory argument, or the
// argument's directory when it is a file.
func loadConfigFor(arg string) (project.Config, error) {
	dir := arg
	if info, err := os.Stat(arg); err != nil || !info.IsDir() {
		dir = filepath.Dir(arg)
	}
	return project.LoadFromDir(dir)
}

// collectLuaFiles expands directory arguments into their .lua files and
// keeps file arguments as-is.
func collectLuaFiles(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			dirFiles, err := driver.ListLuaFiles(arg)
			if err != nil {
				return nil, err
			}
			files = append(files, dirFiles...)
			continue
		}
		files = append(files, arg)
	}
	return files, nil
}

// writeOutput renders the model into outDir/api<ext>, creating the
// directory when needed.
func writeOutput(outDir string, renderer render.Renderer, model *doc.DocumentModel) (string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", err
	}
	outPath := filepath.Join(outDir, "api"+renderer.Ext())

	f, err := os.Create(outPath)
	if err != nil {
		return "", err
	}
	if err := renderer.Render(f, model); err != nil {
		f.Close()
		return "", err
	}
	return outPath, f.Close()
}
