package slack

import (
	"strings"
	"testing"

	goslack "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftworks/weft/pkg/models"
)

func sectionText(t *testing.T, block goslack.Block) string {
	t.Helper()
	section, ok := block.(*goslack.SectionBlock)
	require.True(t, ok, "expected a section block, got %T", block)
	return section.Text.Text
}

func TestBuildOutcomeMessage(t *testing.T) {
	t.Run("completed includes the summary", func(t *testing.T) {
		blocks := BuildOutcomeMessage(ExecutionOutcome{
			ExecutionID: "ex-1",
			ProjectID:   "proj-1",
			Status:      models.StatusCompleted,
			Summary:     "3 agents answered the query",
		}, "http://dash")

		require.Len(t, blocks, 3)
		header := sectionText(t, blocks[0])
		assert.Contains(t, header, "Workflow Completed")
		assert.Contains(t, header, "ex-1")
		assert.Contains(t, header, "proj-1")
		assert.Equal(t, "3 agents answered the query", sectionText(t, blocks[1]))

		action, ok := blocks[2].(*goslack.ActionBlock)
		require.True(t, ok)
		btn := action.Elements.ElementSet[0].(*goslack.ButtonBlockElement)
		assert.Equal(t, "http://dash/executions/ex-1", btn.URL)
	})

	t.Run("failed shows the error", func(t *testing.T) {
		blocks := BuildOutcomeMessage(ExecutionOutcome{
			ExecutionID:  "ex-2",
			Status:       models.StatusFailed,
			ErrorMessage: "provider quota exceeded",
		}, "http://dash")

		require.Len(t, blocks, 3)
		assert.Contains(t, sectionText(t, blocks[0]), "Workflow Failed")
		assert.Contains(t, sectionText(t, blocks[1]), "provider quota exceeded")
	})

	t.Run("unknown status falls back to a generic label", func(t *testing.T) {
		blocks := BuildOutcomeMessage(ExecutionOutcome{
			ExecutionID: "ex-3",
			Status:      models.ExecutionStatus("archived"),
		}, "http://dash")
		assert.Contains(t, sectionText(t, blocks[0]), "Workflow archived")
	})
}

func TestTruncateForSlack(t *testing.T) {
	short := "fits"
	assert.Equal(t, short, truncateForSlack(short))

	long := strings.Repeat("x", maxBlockTextLength+100)
	truncated := truncateForSlack(long)
	assert.Less(t, len(truncated), len(long))
	assert.Contains(t, truncated, "truncated")
}
