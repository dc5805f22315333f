package models

import (
	"html/template"
	"time"
)

// ReportMeta describes where the compared documents came from.
type ReportMeta struct {
	LeftName     string
	RightName    string
	Title        string
	GeneratedAt  time.Time
	ComparisonID int64 // history row id, 0 when history is disabled
}

// DiffRowDisplay is one grouped op rendered for the side-by-side view.
type DiffRowDisplay struct {
	Index     int
	Kind      string
	LeftHTML  template.HTML
	RightHTML template.HTML
	HasLeft   bool
	HasRight  bool
}

// ChangeItemDisplay is a change index entry linked to its row anchor.
type ChangeItemDisplay struct {
	ID      int
	Kind    string
	Preview string
	Anchor  string
}

// DiffReportPageData holds all the data needed to render the HTML diff report.
type DiffReportPageData struct {
	ReportTitle string
	GeneratedAt string
	LeftName    string
	RightName   string
	Mode        string
	Summary     string
	Stats       Stats
	Rows        []DiffRowDisplay
	ChangeItems []ChangeItemDisplay
	IsIdentical bool
	CustomCSS   template.CSS
}

// SetCustomCSS implements reporter.PageDataInterface.
func (p *DiffReportPageData) SetCustomCSS(css template.CSS) {
	p.CustomCSS = css
}
