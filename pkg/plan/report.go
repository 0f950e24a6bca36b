package plan

import (
	"fmt"
	"strings"
)

// Report aggregates the per-database results of a planner run for
// presentation, typically as a pull-request comment.
type Report struct {
	Results []Result
}

// HasErrors reports whether any database failed.
func (r Report) HasErrors() bool {
	for _, res := range r.Results {
		if res.Err != nil {
			return true
		}
	}
	return false
}

// HasChanges reports whether any database has revisions in range.
func (r Report) HasChanges() bool {
	for _, res := range r.Results {
		if len(res.Revisions) > 0 {
			return true
		}
	}
	return false
}

// Revisions flattens the revision ids of every successful result, keeping
// the per-database order.
func (r Report) Revisions() []string {
	var out []string
	for _, res := range r.Results {
		out = append(out, res.Revisions...)
	}
	return out
}

// Markdown renders the report as a GitHub-flavored document: one section
// per database with the generated SQL in a fenced block, or the failure
// message. Output is byte-stable for identical inputs.
func (r Report) Markdown() string {
	var b strings.Builder
	b.WriteString("## Migration plan\n")
	for _, res := range r.Results {
		name := res.Database
		if name == "" {
			name = "default"
		}
		fmt.Fprintf(&b, "\n### Database `%s`\n\n", name)
		if res.Err != nil {
			fmt.Fprintf(&b, "> :x: %s\n", res.Err.Error())
			continue
		}
		if len(res.Revisions) == 0 {
			b.WriteString("No pending revisions.\n")
			continue
		}
		fmt.Fprintf(&b, "%d revision(s): %s\n", len(res.Revisions), strings.Join(res.Revisions, ", "))
		if res.SQL != "" {
			b.WriteString("\n```sql\n")
			b.WriteString(strings.TrimRight(res.SQL, "\n"))
			b.WriteString("\n```\n")
		}
	}
	return b.String()
}
