package mcpserver

// EventFormatContract describes the canonical event field format that
// LLM consumers should follow when adding events.
const EventFormatContract = `# Dagaz Event Format Contract

Every event stored in Dagaz MUST follow this structure.

## Fields

| field | format | example |
|-------|--------|---------|
| title | non-empty text | "Team standup" |
| type  | category label; whitespace becomes "-" in grouping keys | "Work", "Deep Work" |
| date  | calendar date, zero-padded ISO | "2025-03-04" |
| time  | local time of day, zero-padded 24-hour | "09:00" |

## Rules

1. **All four fields are required.** Events without them are rejected.
2. **date and time must combine into a valid local instant.** Invite
   export converts that instant to UTC.
3. **time is zero-padded 24-hour "HH:MM".** "9:00" and "09:00 AM" are
   invalid; within a day, events sort by this string.
4. **Events are immutable.** To change one, delete it and add a
   replacement.
5. **Identity is the generated id.** Deletion and export are keyed by
   the id returned at creation, never by matching fields.
`
