package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Dash-ajou/dashgen/internal/layout"
)

var (
	planJSON   bool
	planSorted bool
)

func init() {
	planCmd.Flags().BoolVar(&planJSON, "json", false, "Print the layout as JSON")
	planCmd.Flags().BoolVar(&planSorted, "sorted", false, "Print a flat, sorted path list instead of the tree")
	rootCmd.AddCommand(planCmd)
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Print the layout without touching the filesystem",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		l, err := cfg.Plan()
		if err != nil {
			return err
		}

		switch {
		case planJSON:
			return printPlanJSON(l)
		case planSorted:
			for _, p := range l.SortedPaths() {
				printer.Println("%s", p)
			}
		default:
			printPlanTree(l)
		}
		return nil
	},
}

type planEntry struct {
	Path  string `json:"path"`
	Kind  string `json:"kind"`
	Scope string `json:"scope"`
	Owner string `json:"owner,omitempty"`
}

type planOutput struct {
	Root        string      `json:"root"`
	Ecosystem   string      `json:"ecosystem"`
	Services    []string    `json:"services"`
	Libs        []string    `json:"libs"`
	Directories int         `json:"directories"`
	Files       int         `json:"files"`
	Entries     []planEntry `json:"entries"`
}

func printPlanJSON(l *layout.Layout) error {
	dirs, files := l.Count()
	out := planOutput{
		Root:        l.Root,
		Ecosystem:   l.Ecosystem.Name,
		Services:    nonNil(l.Services),
		Libs:        nonNil(l.Libs),
		Directories: dirs,
		Files:       files,
	}
	for _, e := range l.Entries() {
		out.Entries = append(out.Entries, planEntry{
			Path:  e.Path,
			Kind:  e.Kind.String(),
			Scope: string(e.Scope),
			Owner: e.Owner,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling plan: %w", err)
	}
	fmt.Fprintln(printer.Writer(), string(data))
	return nil
}

// printPlanTree prints entries in creation order, indented by depth.
// Directories carry a trailing slash.
func printPlanTree(l *layout.Layout) {
	dirs, files := l.Count()
	printer.Heading("%s (%d directories, %d files)", l.Root, dirs, files)
	for _, e := range l.Entries() {
		if e.Path == "." {
			continue
		}
		depth := strings.Count(e.Path, "/")
		name := e.Path[strings.LastIndex(e.Path, "/")+1:]
		if e.Kind == layout.KindDir {
			name += "/"
		}
		printer.Println("%s%s", strings.Repeat("  ", depth+1), name)
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
