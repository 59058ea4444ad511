package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"plank/core"
	"plank/editor"
	"plank/export"
	"plank/layout"
	"plank/render"
	"plank/store"
	"plank/terminal"
)

func main() {
	// Optional .env for defaults; absence is not an error.
	_ = godotenv.Load()

	var (
		interactive = flag.Bool("i", false, "Interactive TUI mode")
		presetName  = flag.String("preset", "basic", "Starting layout: basic, bookshelf, display, grid")
		formatName  = flag.String("format", "spec", "Export format: spec, json, cutlist")
		outputFile  = flag.String("o", "", "Output file (default: stdout)")
		preview     = flag.Bool("preview", false, "Print a technical-view rendering to stdout")
		dbPath      = flag.String("db", "", "Design library path (default: $PLANK_DB or ~/.plank/designs.db)")
		loadName    = flag.String("load", "", "Start from a design saved in the library")
		listFlag    = flag.Bool("list", false, "List saved designs and exit")
		deleteName  = flag.String("delete", "", "Delete a saved design and exit")
		help        = flag.Bool("help", false, "Show help")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [design.json]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "A parametric shelving-unit configurator.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -i                          # Configure interactively\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -preset bookshelf           # Print the design specification\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -format cutlist -o cuts.txt # Export a cutting list\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -load \"hall unit\" -preview  # Preview a saved design\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nInteractive Mode Commands:\n")
		fmt.Fprintf(os.Stderr, "  :export spec|json|cutlist [file]\n")
		fmt.Fprintf(os.Stderr, "  :save <name>   :load <name>   :delete <name>   :list\n")
		fmt.Fprintf(os.Stderr, "  :preset basic|bookshelf|display|grid\n")
	}
	flag.Parse()

	if *help {
		flag.Usage()
		os.Exit(0)
	}

	if err := run(*interactive, *presetName, *formatName, *outputFile, *preview,
		*dbPath, *loadName, *listFlag, *deleteName, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(interactive bool, presetName, formatName, outputFile string, preview bool,
	dbPath, loadName string, listFlag bool, deleteName string, args []string) error {

	if listFlag || deleteName != "" {
		st, err := openStore(dbPath)
		if err != nil {
			return err
		}
		defer st.Close()
		if deleteName != "" {
			return st.Delete(deleteName)
		}
		return listDesigns(st)
	}

	unit, err := startingUnit(presetName, loadName, dbPath, args)
	if err != nil {
		return err
	}

	if interactive {
		st, err := openStore(dbPath)
		if err != nil {
			return err
		}
		defer st.Close()
		return terminal.Run(editor.New(unit), st)
	}

	if preview {
		frame, err := render.NewRenderer(100, 40).Render(unit, layout.Derive(unit))
		if err != nil {
			return err
		}
		fmt.Println(frame.Canvas.String())
		return nil
	}

	return exportUnit(unit, formatName, outputFile)
}

// startingUnit picks the initial configuration: a saved design, a
// JSON export given as argument, or a preset.
func startingUnit(presetName, loadName, dbPath string, args []string) (*core.Unit, error) {
	switch {
	case loadName != "":
		st, err := openStore(dbPath)
		if err != nil {
			return nil, err
		}
		defer st.Close()
		return st.Load(loadName)
	case len(args) > 0:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, err
		}
		return export.Load(data)
	default:
		unit, err := core.Preset(presetName)
		if err != nil {
			return nil, err
		}
		if m := os.Getenv("PLANK_MATERIAL"); m != "" {
			mat, err := core.ParseMaterial(m)
			if err != nil {
				return nil, fmt.Errorf("PLANK_MATERIAL: %w", err)
			}
			unit.Material = mat
		}
		return unit, nil
	}
}

func openStore(dbPath string) (*store.Store, error) {
	if dbPath == "" {
		dbPath = os.Getenv("PLANK_DB")
	}
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".plank", "designs.db")
	}
	return store.Open(dbPath)
}

func listDesigns(st *store.Store) error {
	designs, err := st.List()
	if err != nil {
		return err
	}
	if len(designs) == 0 {
		fmt.Println("design library is empty")
		return nil
	}
	for _, d := range designs {
		fmt.Printf("%-30s  updated %s\n", d.Name, d.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func exportUnit(unit *core.Unit, formatName, outputFile string) error {
	format, err := export.ParseFormat(formatName)
	if err != nil {
		return err
	}
	exp, err := export.NewExporter(format)
	if err != nil {
		return err
	}
	out, err := exp.Export(unit)
	if err != nil {
		return err
	}

	if outputFile == "" {
		fmt.Print(out)
		if len(out) > 0 && out[len(out)-1] != '\n' {
			fmt.Println()
		}
		return nil
	}
	if err := os.WriteFile(outputFile, []byte(out), 0644); err != nil {
		return fmt.Errorf("write %s: %w", outputFile, err)
	}
	fmt.Printf("Exported %s to %s\n", exp.GetFormatName(), outputFile)
	return nil
}
