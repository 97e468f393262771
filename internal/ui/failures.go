package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"rzt/internal/domain"
	"rzt/internal/storage"
)

// FailureViewer displays the failed cases of a run report in an interactive TUI
type FailureViewer struct {
	storage storage.Storage
}

// NewFailureViewer creates a new FailureViewer. Reviewed marks are written back through st.
func NewFailureViewer(st storage.Storage) *FailureViewer {
	return &FailureViewer{storage: st}
}

// View displays failed cases in an interactive TUI
func (fv *FailureViewer) View(results *domain.RunOutput) error {
	if len(results.Details) == 0 {
		color.Green("✓ No failed cases in this report")
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	updateListItem := func(index int) {
		if index < 0 || index >= list.GetItemCount() {
			return
		}
		list.SetItemText(index, listItemText(results.Details[index], index), "")
	}

	for i := range results.Details {
		list.AddItem(listItemText(results.Details[i], i), "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan).
		SetSecondaryTextColor(tview.Styles.SecondaryTextColor)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false).
		SetWordWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsContainer, 0, 1, false)

	// list on the left (1/3), details on the right (2/3)
	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	updateHeader := func() {
		headerView.SetText(fmt.Sprintf(
			" Failed cases (%d of %d, %d unreviewed) | ↑↓ navigate, [yellow]R[white] mark reviewed, → details, ← back, Ctrl+C exit ",
			results.Meta.FailedCases, results.Meta.TotalCases, countUnreviewed(results.Details)))
	}
	updateHeader()

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(results.Details) {
			statsView.SetText(formatFailureStats(results.Details[index]))
			detailsView.SetText(formatFailureDetails(results.Details[index]))
			detailsView.ScrollToBeginning()
		}
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'r' || event.Rune() == 'R' {
				index := list.GetCurrentItem()
				if index >= 0 && index < len(results.Details) {
					results.Details[index].Reviewed = !results.Details[index].Reviewed
					updateListItem(index)
					updateHeader()
					updateDetails()
					// a failed write only loses the mark
					_ = fv.storage.SaveOutput(results)
				}
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})
	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func listItemText(rec domain.FailureRecord, index int) string {
	if rec.Reviewed {
		return fmt.Sprintf("[gray]✓ [yellow]%d.[gray] %s[white]", index+1, tview.Escape(rec.CaseName))
	}
	return fmt.Sprintf("[yellow]%d.[white] %s", index+1, tview.Escape(rec.CaseName))
}

func countUnreviewed(details []domain.FailureRecord) int {
	count := 0
	for _, d := range details {
		if !d.Reviewed {
			count++
		}
	}
	return count
}

// formatFailureDetails formats a failed case using tview color tags.
// Program output is escaped so brackets in diffs are not read as tags.
func formatFailureDetails(rec domain.FailureRecord) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[red]✗ Case: %s[white]\n\n", tview.Escape(rec.CaseName))
	fmt.Fprintf(&b, "[cyan]Command:[white]\n%s\n\n", tview.Escape(rec.CommandLine))

	if rec.ExitError != "" {
		fmt.Fprintf(&b, "[yellow]Process:[white] %s\n\n", tview.Escape(rec.ExitError))
	}
	if rec.Stderr != "" {
		fmt.Fprintf(&b, "[yellow]Stderr:[white]\n%s\n\n", tview.Escape(rec.Stderr))
	}

	for _, m := range rec.Mismatches {
		fmt.Fprintf(&b, "[yellow]%s[white]\n", tview.Escape(m.Reason))
		fmt.Fprintf(&b, "  expected: %s\n", tview.Escape(m.Expected))
		fmt.Fprintf(&b, "  actual:   %s\n", tview.Escape(m.Actual))
		if m.Diff != "" {
			fmt.Fprintf(&b, "\n%s\n", tview.Escape(m.Diff))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func formatFailureStats(rec domain.FailureRecord) string {
	verdict := "[red]unreviewed[white]"
	if rec.Reviewed {
		verdict = "[green]reviewed[white]"
	}
	return fmt.Sprintf("[cyan]case:[white] [yellow]%s[white]  %s  [cyan]mismatches:[white] %d\n",
		tview.Escape(rec.CaseName), verdict, len(rec.Mismatches))
}
