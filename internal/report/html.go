package report

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"
)

func RenderHTML(r *Results) string {
	var b strings.Builder
	b.WriteString("<!doctype html><html><head><meta charset=\"utf-8\"><meta name=\"color-scheme\" content=\"light dark\"><title>jctf-crypto report</title>")
	b.WriteString(`<style>
body{font-family:ui-sans-serif,system-ui,-apple-system,Segoe UI,Roboto,Helvetica,Arial,sans-serif;margin:24px;background:#ffffff;color:#111}
.h{font-weight:700;margin:0 0 8px 0}
.card{border:1px solid #eee;border-radius:8px;padding:12px;margin:12px 0;background:#fff}
.badge{display:inline-block;padding:2px 8px;border-radius:999px;font-size:12px;margin-left:8px;background:#e6f7ff;color:#0747a6}
pre{white-space:pre-wrap;word-break:break-all}
@media (prefers-color-scheme: dark){
  body{background:#0b0b0b;color:#e6e6e6}
  .card{border-color:#2a2a2a;background:#121212}
  .badge{background:#002b4d;color:#8dccff}
}
@media print{
  body{margin:8mm}
  .card{page-break-inside:avoid}
}
</style>`)
	b.WriteString("</head><body>")
	b.WriteString(fmt.Sprintf("<h1 class=\"h\">jctf-crypto report<span class=\"badge\">%s</span></h1>", html.EscapeString(r.Command)))
	b.WriteString(fmt.Sprintf("<div>Run: %s</div>", html.EscapeString(r.RunID)))
	b.WriteString(fmt.Sprintf("<div>Generated: %s</div>", r.GeneratedAt.Format(timeLayout)))
	for _, n := range r.Notes { b.WriteString("<div>"+html.EscapeString(n)+"</div>") }

	for _, e := range r.Entries {
		b.WriteString("<div class=card>")
		b.WriteString("<div class=h>")
		b.WriteString(html.EscapeString(e.Name))
		b.WriteString(fmt.Sprintf(" <span class=\"badge\">%s</span>", html.EscapeString(e.Category)))
		b.WriteString("</div>")
		if e.Evidence != nil {
			b.WriteString("<pre>")
			b.WriteString(html.EscapeString(asJSON(e.Evidence)))
			b.WriteString("</pre>")
		}
		if len(e.Notes) > 0 {
			b.WriteString("<ul>")
			for _, n := range e.Notes { b.WriteString("<li>"+html.EscapeString(n)+"</li>") }
			b.WriteString("</ul>")
		}
		b.WriteString("</div>")
	}
	b.WriteString("</body></html>")
	return b.String()
}

const timeLayout = "2006-01-02 15:04:05 MST"

func asJSON(v any) string {
	bs, _ := json.MarshalIndent(v, "", "  ")
	return string(bs)
}
