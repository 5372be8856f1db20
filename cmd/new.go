package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/zhubert/planboard/internal/config"
	"github.com/zhubert/planboard/internal/forms"
	"github.com/zhubert/planboard/internal/project"
	"github.com/zhubert/planboard/internal/ui"
)

var (
	newTitle       string
	newDescription string
	newDue         string
	newNoInput     bool
)

// promptDraft is swapped out in tests
var promptDraft = forms.PromptDraft

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Capture a new project and print it as JSON",
	Long: `Capture a new project without starting the TUI.

Flags prefill the form. With --no-input the form is skipped and the flag
values are printed as they are.`,
	Example: `  planboard new
  planboard new --title "Launch" --due 2024-12-01 --no-input`,
	Args: cobra.NoArgs,
	RunE: runNew,
}

func init() {
	newCmd.Flags().StringVar(&newTitle, "title", "", "Project title")
	newCmd.Flags().StringVar(&newDescription, "description", "", "Project description")
	newCmd.Flags().StringVar(&newDue, "due", "", "Due date (YYYY-MM-DD)")
	newCmd.Flags().BoolVar(&newNoInput, "no-input", false, "Skip the interactive form")
	rootCmd.AddCommand(newCmd)
}

func runNew(cmd *cobra.Command, args []string) error {
	draft := project.Draft{
		Title:       newTitle,
		Description: newDescription,
		DueDate:     newDue,
	}

	if !newNoInput {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		ui.SetThemeByName(cfg.UI.Theme)

		if err := promptDraft(&draft); err != nil {
			return fmt.Errorf("new project form: %w", err)
		}
	}

	if draft.DueDate != "" {
		if _, ok := draft.Due(); !ok {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: due date %q is not in YYYY-MM-DD form\n", draft.DueDate)
		}
	}

	return writeDraft(cmd.OutOrStdout(), draft)
}

// writeDraft prints draft as indented JSON. The due date is kept as typed.
func writeDraft(w io.Writer, draft project.Draft) error {
	data, err := json.MarshalIndent(draft, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
