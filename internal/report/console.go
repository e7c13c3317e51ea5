package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/empiricalrun/flashimpact/internal/types"
)

var (
	colorTitle    = lipgloss.Color("33")  // blue
	colorSuccess  = lipgloss.Color("40")  // green
	colorCount    = lipgloss.Color("208") // orange
	colorSection  = lipgloss.Color("141") // purple
	colorSummary  = lipgloss.Color("220") // yellow
	colorAdded    = lipgloss.Color("46")
	colorModified = lipgloss.Color("226")
	colorRemoved  = lipgloss.Color("196")
	colorHelper   = lipgloss.Color("214")
	colorFile     = lipgloss.Color("81") // cyan
	colorLines    = lipgloss.Color("213")
	colorMuted    = lipgloss.Color("245")
)

// styles is the presentation table for the console report; the core emits
// plain TestImpact records and never touches any of this.
var styles = struct {
	Title    lipgloss.Style
	Success  lipgloss.Style
	Count    lipgloss.Style
	Section  lipgloss.Style
	Summary  lipgloss.Style
	Added    lipgloss.Style
	Modified lipgloss.Style
	Removed  lipgloss.Style
	Helper   lipgloss.Style
	File     lipgloss.Style
	Lines    lipgloss.Style
	Muted    lipgloss.Style
}{
	Title:    lipgloss.NewStyle().Bold(true).Foreground(colorTitle),
	Success:  lipgloss.NewStyle().Foreground(colorSuccess),
	Count:    lipgloss.NewStyle().Foreground(colorCount),
	Section:  lipgloss.NewStyle().Bold(true).Foreground(colorSection),
	Summary:  lipgloss.NewStyle().Bold(true).Foreground(colorSummary),
	Added:    lipgloss.NewStyle().Bold(true).Foreground(colorAdded),
	Modified: lipgloss.NewStyle().Bold(true).Foreground(colorModified),
	Removed:  lipgloss.NewStyle().Bold(true).Foreground(colorRemoved),
	Helper:   lipgloss.NewStyle().Bold(true).Foreground(colorHelper),
	File:     lipgloss.NewStyle().Foreground(colorFile),
	Lines:    lipgloss.NewStyle().Foreground(colorLines),
	Muted:    lipgloss.NewStyle().Foreground(colorMuted),
}

func changeStyle(ct types.ChangeType) lipgloss.Style {
	switch ct {
	case types.ChangeAdded:
		return styles.Added
	case types.ChangeRemoved:
		return styles.Removed
	default:
		return styles.Modified
	}
}

const rule = "================================================================================"

// Print renders the human-readable report: summary counts, the commit's
// file footprint, direct impacts grouped by change type, then helper
// impacts grouped by helper function.
func Print(w io.Writer, commit string, impacts []types.TestImpact, stats []types.FileChangeStat) {
	if len(impacts) == 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, rule)
		fmt.Fprintln(w, styles.Muted.Render("NO TEST IMPACTS FOUND"))
		fmt.Fprintln(w, rule)
		return
	}

	var direct, helper []types.TestImpact
	for _, impact := range impacts {
		if impact.ImpactedByHelper == "" {
			direct = append(direct, impact)
		} else {
			helper = append(helper, impact)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, styles.Title.Render(" TEST IMPACT ANALYSIS RESULTS"))
	fmt.Fprintln(w, rule)

	fmt.Fprintln(w, styles.Success.Render(fmt.Sprintf("Commit analyzed: %s", commit)))
	fmt.Fprintln(w, styles.Count.Render(fmt.Sprintf("Total impacted tests: %d", len(impacts))))

	fmt.Fprintln(w)
	fmt.Fprintln(w, styles.Summary.Render("SUMMARY:"))
	fmt.Fprintf(w, "   %s\n", styles.Success.Render(fmt.Sprintf("Direct test changes: %d", len(direct))))
	fmt.Fprintf(w, "   %s\n", styles.Helper.Render(fmt.Sprintf("Helper file impacts: %d", len(helper))))
	fmt.Fprintln(w, strings.Repeat("-", 40))

	printFileStats(w, stats)
	printDirect(w, direct)
	printHelper(w, helper)

	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, styles.Success.Render("ANALYSIS COMPLETE"))
	fmt.Fprintln(w, rule)
}

func printFileStats(w io.Writer, stats []types.FileChangeStat) {
	if len(stats) == 0 {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, styles.Section.Render(fmt.Sprintf("FILES CHANGED (%d):", len(stats))))
	for _, stat := range stats {
		fmt.Fprintf(w, "   %s %s %s\n",
			styles.File.Render(stat.Path),
			styles.Added.Render(fmt.Sprintf("+%d", stat.Additions)),
			styles.Removed.Render(fmt.Sprintf("-%d", stat.Deletions)),
		)
	}
}

func printDirect(w io.Writer, direct []types.TestImpact) {
	if len(direct) == 0 {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, styles.Section.Render(fmt.Sprintf("DIRECT TEST CHANGES (%d):", len(direct))))
	fmt.Fprintln(w, strings.Repeat("-", 60))

	byType := make(map[types.ChangeType][]types.TestImpact)
	for _, impact := range direct {
		byType[impact.ChangeType] = append(byType[impact.ChangeType], impact)
	}

	for _, ct := range []types.ChangeType{types.ChangeAdded, types.ChangeModified, types.ChangeRemoved} {
		group := byType[ct]
		if len(group) == 0 {
			continue
		}
		sort.Slice(group, func(i, j int) bool {
			if group[i].FilePath != group[j].FilePath {
				return group[i].FilePath < group[j].FilePath
			}
			return group[i].TestName < group[j].TestName
		})

		style := changeStyle(ct)
		fmt.Fprintln(w)
		fmt.Fprintln(w, style.Render(fmt.Sprintf("%s TESTS (%d):", strings.ToUpper(string(ct)), len(group))))
		for i, impact := range group {
			fmt.Fprintf(w, "   %2d. %s\n", i+1, impact.TestName)
			fmt.Fprintf(w, "       %s\n", styles.File.Render("File: "+impact.FilePath))
			if len(impact.LinesChanged) > 0 {
				fmt.Fprintf(w, "       %s\n", styles.Lines.Render(fmt.Sprintf("Changed lines: %v", impact.LinesChanged)))
			}
		}
	}
}

func printHelper(w io.Writer, helper []types.TestImpact) {
	if len(helper) == 0 {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, styles.Section.Render(fmt.Sprintf("TESTS IMPACTED BY HELPER CHANGES (%d):", len(helper))))
	fmt.Fprintln(w, strings.Repeat("-", 60))

	byHelper := make(map[string][]types.TestImpact)
	for _, impact := range helper {
		byHelper[impact.ImpactedByHelper] = append(byHelper[impact.ImpactedByHelper], impact)
	}

	helperNames := make([]string, 0, len(byHelper))
	for name := range byHelper {
		helperNames = append(helperNames, name)
	}
	sort.Strings(helperNames)

	for idx, name := range helperNames {
		group := byHelper[name]
		sort.Slice(group, func(i, j int) bool {
			if group[i].FilePath != group[j].FilePath {
				return group[i].FilePath < group[j].FilePath
			}
			return group[i].TestName < group[j].TestName
		})

		fmt.Fprintf(w, "\n   %d. %s\n", idx+1, styles.Helper.Render("Helper: "+name))
		fmt.Fprintf(w, "      %s\n", styles.Count.Render(fmt.Sprintf("Impacts %d test(s):", len(group))))
		for i, impact := range group {
			fmt.Fprintf(w, "        %2d. %s\n", i+1, impact.TestName)
			fmt.Fprintf(w, "            %s\n", styles.File.Render(impact.FilePath))
		}
	}
}
