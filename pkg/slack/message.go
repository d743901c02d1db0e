package slack

import (
	"fmt"

	goslack "github.com/slack-go/slack"

	"github.com/weftworks/weft/pkg/models"
)

const maxBlockTextLength = 2900

var statusEmoji = map[models.ExecutionStatus]string{
	models.StatusCompleted: ":white_check_mark:",
	models.StatusFailed:    ":x:",
	models.StatusStopped:   ":no_entry_sign:",
}

var statusLabel = map[models.ExecutionStatus]string{
	models.StatusCompleted: "Workflow Completed",
	models.StatusFailed:    "Workflow Failed",
	models.StatusStopped:   "Workflow Stopped",
}

func executionURL(executionID, dashboardURL string) string {
	return fmt.Sprintf("%s/executions/%s", dashboardURL, executionID)
}

// ExecutionOutcome carries the data shown in a terminal notification.
type ExecutionOutcome struct {
	ExecutionID  string
	ProjectID    string
	Status       models.ExecutionStatus
	Summary      string
	ErrorMessage string
}

// BuildOutcomeMessage creates Block Kit blocks for a terminal execution
// notification.
func BuildOutcomeMessage(outcome ExecutionOutcome, dashboardURL string) []goslack.Block {
	emoji := statusEmoji[outcome.Status]
	if emoji == "" {
		emoji = ":question:"
	}
	label := statusLabel[outcome.Status]
	if label == "" {
		label = "Workflow " + string(outcome.Status)
	}

	header := fmt.Sprintf("%s *%s*  `%s`", emoji, label, outcome.ExecutionID)
	if outcome.ProjectID != "" {
		header += fmt.Sprintf("\nProject: %s", outcome.ProjectID)
	}

	blocks := []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, header, false, false),
			nil, nil,
		),
	}

	switch {
	case outcome.Status == models.StatusFailed && outcome.ErrorMessage != "":
		blocks = append(blocks, goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType,
				"*Error:*\n"+truncateForSlack(outcome.ErrorMessage), false, false),
			nil, nil,
		))
	case outcome.Summary != "":
		blocks = append(blocks, goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType,
				truncateForSlack(outcome.Summary), false, false),
			nil, nil,
		))
	}

	btn := goslack.NewButtonBlockElement("", "",
		goslack.NewTextBlockObject(goslack.PlainTextType, "View Execution", false, false))
	btn.URL = executionURL(outcome.ExecutionID, dashboardURL)
	blocks = append(blocks, goslack.NewActionBlock("", btn))

	return blocks
}

func truncateForSlack(text string) string {
	if len(text) <= maxBlockTextLength {
		return text
	}
	return text[:maxBlockTextLength] + "\n\n_... (truncated, view the full result in the dashboard)_"
}
