// Package scenarios contains built-in demo scenarios for planboard.
package scenarios

import (
	"time"

	"github.com/zhubert/planboard/internal/demo"
	"github.com/zhubert/planboard/internal/project"
)

// Overview walks through adding a project:
// - Starting with a couple of projects already on the board
// - Opening the new-project dialog and filling in every field
// - Saving, which closes the dialog and selects the new project
// - Reopening the dialog and dismissing it with a backdrop click
var Overview = &demo.Scenario{
	Name:        "overview",
	Description: "Add a project through the modal form",
	Width:       120,
	Height:      40,
	Setup: &demo.ScenarioSetup{
		Projects: []project.Draft{
			{
				Title:       "Website refresh",
				Description: "Update the **landing page** and pricing.\n\n- hero copy\n- screenshots",
				DueDate:     "2024-11-15",
			},
			{
				Title:   "Quarterly report",
				DueDate: "2024-12-20",
			},
		},
	},
	Steps: []demo.Step{
		// Initial view
		demo.Wait(1 * time.Second),
		demo.Annotate("Projects on the board"),
		demo.Capture(),

		demo.KeyWithDesc("up", "Select the first project"),
		demo.Wait(700 * time.Millisecond),

		// Open the dialog; focus starts on Cancel
		demo.Annotate("Press a to add a project"),
		demo.KeyWithDesc("a", "Open the new-project dialog"),
		demo.Wait(1 * time.Second),

		// Cancel -> Save -> Title
		demo.Key("tab"),
		demo.Key("tab"),
		demo.TypeWithDesc("Launch", "Title"),
		demo.Key("tab"),
		demo.TypeWithDesc("Prepare release notes and **announce** it.", "Description"),
		demo.Key("tab"),
		demo.TypeWithDesc("2024-12-01", "Due date"),
		demo.Wait(1 * time.Second),

		demo.Annotate("ctrl+s saves and closes the dialog"),
		demo.KeyWithDesc("ctrl+s", "Save"),
		demo.Wait(1500 * time.Millisecond),

		// Reopen and dismiss by clicking outside
		demo.Key("a"),
		demo.Wait(700 * time.Millisecond),
		demo.Annotate("Clicking outside the dialog closes it"),
		demo.Click(1, 1),
		demo.Wait(1 * time.Second),
	},
}
