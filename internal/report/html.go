package report

import (
	_ "embed"
	"html/template"
	"strings"

	"github.com/rankyx/jobscout/internal/types"
)

//go:embed report.html.tmpl
var reportTemplate string

// templateData is the structure passed to the HTML template.
type templateData struct {
	Role        string
	Location    string
	GeneratedAt string
	Summary     string
	Jobs        []types.JobRecord
}

// RenderHTML renders the report into a standalone HTML document. Escaping of
// record fields is handled by html/template.
func RenderHTML(report *types.Report, inputs types.SearchInputs) (string, error) {
	tmpl, err := template.New("report").Parse(reportTemplate)
	if err != nil {
		return "", &TemplateError{Message: "failed to parse report template", Cause: err}
	}

	data := templateData{
		Role:        inputs.Role,
		Location:    inputs.Location,
		GeneratedAt: report.GeneratedAt.Format("2006-01-02 15:04 UTC"),
		Summary:     report.Summary,
		Jobs:        report.Jobs,
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, data); err != nil {
		return "", &TemplateError{Message: "failed to execute report template", Cause: err}
	}

	return result.String(), nil
}
