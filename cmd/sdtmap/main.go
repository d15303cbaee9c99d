package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/docforge/sdtmap/pkg/sdtmap"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	engine := newEngine()

	switch os.Args[1] {
	case "version":
		fmt.Printf("sdtmap version %s\n", version)
	case "controls":
		if len(os.Args) != 3 {
			fmt.Fprintln(os.Stderr, "usage: sdtmap controls <document.docx>")
			os.Exit(1)
		}
		if err := listControls(engine, os.Args[2]); err != nil {
			fmt.Fprintf(os.Stderr, "sdtmap: %v\n", err)
			os.Exit(1)
		}
	case "apply":
		if len(os.Args) != 5 {
			fmt.Fprintln(os.Stderr, "usage: sdtmap apply <plan.toml> <in.docx> <out.docx>")
			os.Exit(1)
		}
		if err := applyPlan(engine, os.Args[2], os.Args[3], os.Args[4]); err != nil {
			fmt.Fprintf(os.Stderr, "sdtmap: %v\n", err)
			os.Exit(1)
		}
	case "remove":
		if len(os.Args) != 4 {
			fmt.Fprintln(os.Stderr, "usage: sdtmap remove <in.docx> <out.docx>")
			os.Exit(1)
		}
		if err := stripControls(engine, os.Args[2], os.Args[3]); err != nil {
			fmt.Fprintf(os.Stderr, "sdtmap: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", os.Args[1])
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("sdtmap - content-control mapper for DOCX files")
	fmt.Println("\nUsage: sdtmap <command> [arguments]")
	fmt.Println("\nCommands:")
	fmt.Println("  controls <in.docx>                    List content controls in a document")
	fmt.Println("  apply <plan.toml> <in.docx> <out.docx>  Apply a substitution plan")
	fmt.Println("  remove <in.docx> <out.docx>           Strip controls, keeping their content")
	fmt.Println("  version                               Show version information")
}

// newEngine builds the engine from the environment. SDTMAP_DEBUG=1 enables
// structured debug logging to stderr.
func newEngine() *sdtmap.Engine {
	config := sdtmap.ConfigFromEnvironment()
	if os.Getenv("SDTMAP_DEBUG") == "1" {
		log, err := zap.NewDevelopment()
		if err == nil {
			config.Logger = log
		}
	}
	return sdtmap.NewWithConfig(config)
}

func listControls(engine *sdtmap.Engine, path string) error {
	document, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	controls, err := engine.GetContentControls(document)
	if err != nil {
		return err
	}

	tags := make([]string, 0, len(controls))
	for tag := range controls {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	for _, tag := range tags {
		cc := controls[tag]
		line := fmt.Sprintf("%-24s %s", tag, joinTypes(cc.Types))
		if len(cc.ChildrenTags) > 0 {
			line += "  children: " + strings.Join(cc.ChildrenTags, ", ")
		}
		fmt.Println(line)
	}
	return nil
}

func applyPlan(engine *sdtmap.Engine, planPath, inPath, outPath string) error {
	plan, err := loadPlan(planPath)
	if err != nil {
		return err
	}

	document, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", inPath, err)
	}

	out, err := engine.MapContentControls(document, plan.Simple, plan.Repeating)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	return nil
}

func stripControls(engine *sdtmap.Engine, inPath, outPath string) error {
	document, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", inPath, err)
	}

	out, err := engine.RemoveContentControls(document)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	return nil
}

func joinTypes(types []sdtmap.ControlType) string {
	labels := make([]string, len(types))
	for i, t := range types {
		labels[i] = string(t)
	}
	return strings.Join(labels, ",")
}
