package renderer

import (
	"bytes"
	"embed"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"text/template"

	"github.com/etnz/marina"
)

//go:embed testdata/*.md
var testcasesGoldenFS embed.FS

var fixGoldens = flag.Bool("fix-goldens", false, "if true, update failing golden .md files with the received output")

func TestFixGoldensIsOff(t *testing.T) {
	if *fixGoldens {
		t.Fatal("-fix-goldens is enabled. This flag should only be used for updating test fixtures and must be disabled for regular tests.")
	}
}

// sampleInventory is the marina every golden file is rendered from.
func sampleInventory(t *testing.T) *marina.Inventory {
	t.Helper()
	inv := marina.NewInventory()
	err := inv.InsertAll(
		marina.NewBoat("Pirate", marina.Ft(30), marina.LandLocation{Bay: 'C'}, marina.USD(0)),
		marina.NewBoat("Brandy", marina.Ft(20), marina.SlipLocation{Number: 121}, marina.USD(31.5)),
		marina.NewBoat("Fish", marina.Ft(18), marina.TrailerLocation{Tag: "BRO123"}, marina.USD(100.25)),
	)
	if err != nil {
		t.Fatalf("InsertAll() unexpected error: %v", err)
	}
	return inv
}

func TestTemplatePartials(t *testing.T) {
	full := NewInventory("Marina", sampleInventory(t))
	empty := NewInventory("Marina", marina.NewInventory())

	testCases := []struct {
		name       string // partial template name
		goldenFile string
		data       *Inventory
	}{
		{name: "inventory_title", goldenFile: "testdata/inventory_title.md", data: full},
		{name: "inventory_boats", goldenFile: "testdata/inventory_boats.md", data: full},
		{name: "inventory_boats", goldenFile: "testdata/inventory_boats_empty.md", data: empty},
		{name: "inventory_summary", goldenFile: "testdata/inventory_summary.md", data: full},
	}

	// --- Coverage Check ---
	tested := make(map[string]struct{})
	for _, tc := range testCases {
		tested[tc.name+".md"] = struct{}{}
	}
	for _, partial := range partialTemplates(t) {
		if _, ok := tested[partial]; !ok {
			t.Errorf("untested template partial found: %s. Please add a test case to TestTemplatePartials.", partial)
		}
	}

	for _, tc := range testCases {
		t.Run(filepath.Base(tc.goldenFile), func(t *testing.T) {
			templateFile := tc.name + ".md"
			content, err := fs.ReadFile(templates, templateFile)
			if err != nil {
				t.Fatalf("failed to read template file %q: %v", templateFile, err)
			}
			tmpl, err := template.New(tc.name).Parse(string(content))
			if err != nil {
				t.Fatalf("failed to parse template %q: %v", templateFile, err)
			}
			var got bytes.Buffer
			if err := tmpl.Execute(&got, tc.data); err != nil {
				t.Fatalf("failed to execute template %q: %v", templateFile, err)
			}
			checkGolden(t, tc.goldenFile, got.String())
		})
	}
}

func TestRenderInventory(t *testing.T) {
	got := RenderInventory(NewInventory("Marina", sampleInventory(t)))
	checkGolden(t, "testdata/inventory.md", got)
}

func TestNewInventory(t *testing.T) {
	r := NewInventory("Marina", sampleInventory(t))
	if r.Count() != 3 {
		t.Errorf("Count() = %d, want 3", r.Count())
	}
	if r.Free() != marina.DefaultCapacity-3 {
		t.Errorf("Free() = %d, want %d", r.Free(), marina.DefaultCapacity-3)
	}
	if !r.TotalOwed.Equal(marina.USD(131.75)) {
		t.Errorf("TotalOwed = %v, want $131.75", r.TotalOwed)
	}
	var names []string
	for _, b := range r.Boats {
		names = append(names, b.Name)
	}
	if got, want := strings.Join(names, ","), "Brandy,Fish,Pirate"; got != want {
		t.Errorf("boats = %s, want %s", got, want)
	}
}

func TestWhere(t *testing.T) {
	testCases := []struct {
		loc  marina.Location
		want string
	}{
		{marina.SlipLocation{Number: 12}, "slip #12"},
		{marina.LandLocation{Bay: 'A'}, "land bay A"},
		{marina.TrailerLocation{Tag: "XYZ9"}, "trailer XYZ9"},
		{marina.StorageLocation{Number: 3}, "storage #3"},
		{nil, "unknown"},
	}
	for _, tc := range testCases {
		if got := Where(tc.loc); got != tc.want {
			t.Errorf("Where(%#v) = %q, want %q", tc.loc, got, tc.want)
		}
	}
}

func TestLegacy(t *testing.T) {
	inv := sampleInventory(t)
	if err := inv.Insert(marina.NewBoat("Dinghy", marina.Ft(8), marina.StorageLocation{Number: 7}, marina.USD(5))); err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	if err := Legacy(&b, inv); err != nil {
		t.Fatalf("Legacy() unexpected error: %v", err)
	}
	want := "" +
		"Brandy                 20'    slip   # 121   Owes $  31.50\n" +
		"Dinghy                  8' storage   # 7     Owes $   5.00\n" +
		"Fish                   18'  trailor BRO123   Owes $ 100.25\n" +
		"Pirate                 30'    land      C   Owes $   0.00\n"
	if got := b.String(); got != want {
		t.Errorf("Legacy() output mismatch:\n--- want\n+++ got\n%s", createDiff(want, got))
	}
}

func TestLegacyLineRoundsLength(t *testing.T) {
	b := marina.NewBoat("Half", marina.Ft(12.5), marina.SlipLocation{Number: 1}, marina.USD(1234.5))
	want := "Half                   12'    slip   # 1     Owes $1234.50\n"
	if got := LegacyLine(b); got != want {
		t.Errorf("LegacyLine() = %q, want %q", got, want)
	}
}

// checkGolden compares got with the content of goldenFile, or rewrites it in fix mode.
func checkGolden(t *testing.T, goldenFile, got string) {
	t.Helper()
	goldenData, err := fs.ReadFile(testcasesGoldenFS, goldenFile)
	if err != nil {
		if os.IsNotExist(err) && *fixGoldens {
			goldenData = []byte{}
		} else {
			t.Fatalf("failed to read golden file %q: %v", goldenFile, err)
		}
	}
	want := string(goldenData)
	if got == want {
		return
	}
	if !*fixGoldens {
		t.Errorf("output mismatch for %s:\n--- want\n+++ got\n%s", goldenFile, createDiff(want, got))
		return
	}
	if err := os.MkdirAll(filepath.Dir(goldenFile), 0755); err != nil {
		t.Fatalf("failed to create testdata directory: %v", err)
	}
	if err := os.WriteFile(goldenFile, []byte(got), 0644); err != nil {
		t.Fatalf("failed to write updated golden file %q: %v", goldenFile, err)
	}
	t.Logf("updated golden file %s", goldenFile)
}

func createDiff(want, got string) string {
	// A simple diff-like representation for clearer test failures.
	return fmt.Sprintf("-%s\n+%s", strings.ReplaceAll(want, "\n", "\n-"), strings.ReplaceAll(got, "\n", "\n+"))
}

// partialTemplates lists the embedded templates whose name extends another
// template's name, e.g. "inventory_title.md" extends "inventory.md".
func partialTemplates(t *testing.T) []string {
	t.Helper()
	entries, err := templates.ReadDir(".")
	if err != nil {
		t.Fatalf("failed to read embedded templates: %v", err)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".md") {
			names = append(names, strings.TrimSuffix(e.Name(), ".md"))
		}
	}
	var partials []string
	for _, n1 := range names {
		for _, n2 := range names {
			if n1 != n2 && strings.HasPrefix(n1, n2+"_") {
				partials = append(partials, n1+".md")
				break
			}
		}
	}
	return partials
}
