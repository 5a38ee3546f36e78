package ai

import (
	"fmt"
	"time"
)

const (
	temperature     = 0.2
	maxOutputTokens = 2048
	minSuggestions  = 3
	maxSuggestions  = 5
)

const parseSystemPrompt = `You are an assistant that turns natural-language task descriptions into structured data.

Return a JSON object with these fields:
- name: the main task description (string)
- assignee: the person assigned to the task (string, "Unassigned" if not specified)
- priority: one of "P1", "P2", "P3", "P4" ("P3" if not specified)
- due_date: due date-time in RFC3339 with offset (string, empty if no date is mentioned)
- description: additional details (string, optional)

Priority guidelines:
- P1: urgent and important
- P2: important but not urgent
- P3: normal priority
- P4: low priority

Date rules:
- NEVER return a due date before the current date-time given below.
- If no year is specified, use the current year, or the next year if the date would be in the past.
- Resolve relative dates such as "tomorrow" or "next week" from the current date-time.
- A bare weekday means its next occurrence.

Return only valid JSON without markdown formatting or additional text.`

const extractSystemPrompt = `You are an assistant that extracts action items from meeting transcripts.

Return a JSON array. Each element is an object with these fields:
- name: the action to be done (string)
- assignee: the person who must do it (string)
- priority: one of "P1", "P2", "P3", "P4" ("P3" if not stated)
- due_date: due date-time in RFC3339 with offset (string, empty if no deadline is stated)
- description: additional details (string, optional)

Only include sentences that assign work to a named person. Keep transcript order.
NEVER return a due date before the current date-time given below.
Return only valid JSON without markdown formatting or additional text.`

const suggestSystemPrompt = `Based on the following task, suggest %d-%d related subtasks or follow-up tasks that might be needed.
Keep suggestions practical and actionable.
Return a JSON array of strings, without markdown formatting or additional text.`

func userPrompt(label, input string, now time.Time) string {
	return fmt.Sprintf("Current date-time: %s (%s)\n\n%s:\n%s",
		now.Format(time.RFC3339), now.Weekday(), label, input)
}
