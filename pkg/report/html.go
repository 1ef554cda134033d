package report

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/devicelab-dev/pw-trace-report/pkg/trace"
)

// timestampFormat is used for both the generation time and per-archive times.
const timestampFormat = "2006-01-02 15:04:05"

// noTimestamp is shown for archives whose filename carries no timestamp.
const noTimestamp = "—"

// Summary contains aggregated archive counts.
type Summary struct {
	Total   int `json:"total"`
	Passed  int `json:"passed"`
	Failed  int `json:"failed"`
	Unknown int `json:"unknown"`
}

// Summarize counts artifacts by status.
func Summarize(artifacts []trace.Artifact) Summary {
	s := Summary{Total: len(artifacts)}
	for _, a := range artifacts {
		switch a.Status {
		case trace.StatusPass:
			s.Passed++
		case trace.StatusFail:
			s.Failed++
		default:
			s.Unknown++
		}
	}
	return s
}

// htmlData contains all data needed for the HTML template.
type htmlData struct {
	ProjectName string
	GeneratedAt string
	Summary     Summary
	Rows        []htmlRow
}

// htmlRow contains one archive formatted for HTML.
type htmlRow struct {
	DisplayName string
	StatusLabel string
	StatusClass string
	Timestamp   string
	Size        string
	Command     string
	ViewerLink  template.URL
	Filename    string
}

// RenderReport renders the report HTML for the given artifacts. Pure: no
// I/O, row order follows the input sequence. All user-supplied values go
// through html/template escaping.
func RenderReport(artifacts []trace.Artifact, projectName, tracesDir string, generatedAt time.Time) (string, error) {
	data := htmlData{
		ProjectName: projectName,
		GeneratedAt: generatedAt.Format(timestampFormat),
		Summary:     Summarize(artifacts),
		Rows:        make([]htmlRow, 0, len(artifacts)),
	}

	for _, a := range artifacts {
		data.Rows = append(data.Rows, buildRow(a, tracesDir))
	}

	tmpl, err := template.New("report").Parse(htmlTemplate)
	if err != nil {
		return "", fmt.Errorf("parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute template: %w", err)
	}

	return buf.String(), nil
}

// buildRow formats a single artifact for the table.
func buildRow(a trace.Artifact, tracesDir string) htmlRow {
	row := htmlRow{
		DisplayName: a.DisplayName(),
		Timestamp:   noTimestamp,
		Size:        humanBytes(a.SizeBytes),
		Command:     fmt.Sprintf("npx playwright show-trace %s/%s", tracesDir, a.Filename),
		ViewerLink:  template.URL("trace/index.html?trace=../" + a.Filename),
		Filename:    a.Filename,
	}

	if a.CreatedAtMillis != 0 {
		row.Timestamp = time.UnixMilli(a.CreatedAtMillis).Format(timestampFormat)
	}

	switch a.Status {
	case trace.StatusPass:
		row.StatusLabel = "PASS"
		row.StatusClass = "passed"
	case trace.StatusFail:
		row.StatusLabel = "FAIL"
		row.StatusClass = "failed"
	default:
		row.StatusLabel = "UNKNOWN"
		row.StatusClass = "unknown"
	}

	return row
}

// humanBytes formats a byte count for display.
func humanBytes(n int64) string {
	switch {
	case n < 1024:
		return fmt.Sprintf("%d B", n)
	case n < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(n)/1024)
	default:
		return fmt.Sprintf("%.2f MB", float64(n)/(1024*1024))
	}
}

const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.ProjectName}}</title>
    <style>
        :root {
            --bg-primary: #ffffff;
            --bg-secondary: #f9fafb;
            --text-primary: #000000;
            --text-secondary: rgb(75, 85, 99);
            --text-muted: rgb(107, 114, 128);
            --border-color: #e5e7eb;
            --passed: #22c55e;
            --passed-bg: rgba(34, 197, 94, 0.1);
            --failed: #ef4444;
            --failed-bg: rgba(239, 68, 68, 0.08);
            --unknown: #6b7280;
            --unknown-bg: rgba(107, 114, 128, 0.1);
            --accent: #06b6d4;
        }

        * {
            box-sizing: border-box;
            margin: 0;
            padding: 0;
        }

        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            background: var(--bg-primary);
            color: var(--text-primary);
            line-height: 1.5;
        }

        .header {
            background: var(--bg-secondary);
            border-bottom: 1px solid var(--border-color);
            padding: 16px 24px;
            display: flex;
            align-items: baseline;
            justify-content: space-between;
        }

        .header h1 {
            font-size: 20px;
            font-weight: 600;
        }

        .generated-at {
            font-size: 13px;
            color: var(--text-muted);
        }

        .summary {
            display: flex;
            gap: 16px;
            padding: 16px 24px;
        }

        .summary-card {
            border: 1px solid var(--border-color);
            border-radius: 8px;
            padding: 12px 20px;
            min-width: 100px;
        }

        .summary-card .count {
            font-size: 24px;
            font-weight: 600;
        }

        .summary-card .label {
            font-size: 12px;
            color: var(--text-muted);
            text-transform: uppercase;
        }

        .summary-card.passed .count { color: var(--passed); }
        .summary-card.failed .count { color: var(--failed); }
        .summary-card.unknown .count { color: var(--unknown); }

        table {
            width: calc(100% - 48px);
            margin: 8px 24px 24px;
            border-collapse: collapse;
            font-size: 14px;
        }

        th {
            text-align: left;
            font-size: 12px;
            text-transform: uppercase;
            color: var(--text-muted);
            border-bottom: 1px solid var(--border-color);
            padding: 8px 12px;
        }

        td {
            padding: 10px 12px;
            border-bottom: 1px solid var(--border-color);
            vertical-align: middle;
        }

        tr:hover td {
            background: var(--bg-secondary);
        }

        .badge {
            display: inline-block;
            font-size: 11px;
            font-weight: 600;
            padding: 2px 8px;
            border-radius: 10px;
        }

        .badge.passed { color: var(--passed); background: var(--passed-bg); }
        .badge.failed { color: var(--failed); background: var(--failed-bg); }
        .badge.unknown { color: var(--unknown); background: var(--unknown-bg); }

        .timestamp, .size {
            color: var(--text-secondary);
            white-space: nowrap;
        }

        code {
            font-family: 'SF Mono', Menlo, Consolas, monospace;
            font-size: 12px;
            background: var(--bg-secondary);
            border: 1px solid var(--border-color);
            border-radius: 4px;
            padding: 2px 6px;
            user-select: all;
        }

        a.view {
            color: var(--accent);
            text-decoration: none;
        }

        a.view:hover {
            text-decoration: underline;
        }

        .empty {
            margin: 32px 24px;
            color: var(--text-muted);
        }
    </style>
</head>
<body>
    <div class="header">
        <h1>{{.ProjectName}}</h1>
        <span class="generated-at">Generated {{.GeneratedAt}}</span>
    </div>

    <div class="summary">
        <div class="summary-card">
            <div class="count">{{.Summary.Total}}</div>
            <div class="label">Total</div>
        </div>
        <div class="summary-card passed">
            <div class="count">{{.Summary.Passed}}</div>
            <div class="label">Passed</div>
        </div>
        <div class="summary-card failed">
            <div class="count">{{.Summary.Failed}}</div>
            <div class="label">Failed</div>
        </div>
        <div class="summary-card unknown">
            <div class="count">{{.Summary.Unknown}}</div>
            <div class="label">Unknown</div>
        </div>
    </div>

{{if .Rows}}    <table>
        <thead>
            <tr>
                <th>Status</th>
                <th>Test</th>
                <th>Recorded</th>
                <th>Size</th>
                <th>Open locally</th>
                <th></th>
            </tr>
        </thead>
        <tbody>
{{range .Rows}}            <tr>
                <td><span class="badge {{.StatusClass}}">{{.StatusLabel}}</span></td>
                <td>{{.DisplayName}}</td>
                <td class="timestamp">{{.Timestamp}}</td>
                <td class="size">{{.Size}}</td>
                <td><code>{{.Command}}</code></td>
                <td><a class="view" href="{{.ViewerLink}}">view</a></td>
            </tr>
{{end}}        </tbody>
    </table>
{{else}}    <p class="empty">No trace archives found.</p>
{{end}}</body>
</html>
`
