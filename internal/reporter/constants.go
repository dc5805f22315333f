package reporter

const (
	DiffReportTemplateName = "diff_report.html.tmpl"
	EmbeddedDiffCSSPath    = "assets/css/diff_report.css"

	DefaultDiffReportTitle = "Document Comparison"

	// File permissions
	DirPermissions  = 0755
	FilePermissions = 0644

	// Report file name parts
	reportTimestampLayout = "20060102-150405"
	maxNamePartLength     = 40

	generatedAtLayout = "2006-01-02 15:04:05 MST"
)
