package scenarios

import (
	"time"

	"github.com/zhubert/planboard/internal/demo"
	"github.com/zhubert/planboard/internal/project"
)

// Dismiss shows each way the dialog closes without saving.
var Dismiss = &demo.Scenario{
	Name:        "dismiss",
	Description: "Close the dialog with esc, the Close button and a backdrop click",
	Width:       100,
	Height:      32,
	Setup: &demo.ScenarioSetup{
		Projects: []project.Draft{
			{Title: "Quarterly report", DueDate: "2024-12-20"},
		},
	},
	Steps: []demo.Step{
		demo.Wait(700 * time.Millisecond),

		demo.Key("a"),
		demo.Wait(700 * time.Millisecond),
		demo.Annotate("esc closes the dialog"),
		demo.Key("esc"),
		demo.Wait(700 * time.Millisecond),

		demo.Key("a"),
		// Cancel -> Save -> Title -> Description -> Due Date -> Close
		demo.Key("tab"),
		demo.Key("tab"),
		demo.Key("tab"),
		demo.Key("tab"),
		demo.Key("tab"),
		demo.Wait(700 * time.Millisecond),
		demo.Annotate("So does the Close button"),
		demo.Key("enter"),
		demo.Wait(700 * time.Millisecond),

		demo.Key("a"),
		demo.Wait(700 * time.Millisecond),
		demo.Annotate("And a click on the backdrop"),
		demo.Click(0, 0),
		demo.Wait(700 * time.Millisecond),
	},
}
