package reporter

import (
	"bytes"
	"html/template"
	"time"

	"github.com/aleister1102/docdiff/internal/common"
	"github.com/aleister1102/docdiff/internal/models"
	"github.com/rs/zerolog"
)

// HtmlDiffReporter renders a comparison as a single-file side-by-side HTML page.
type HtmlDiffReporter struct {
	logger       zerolog.Logger
	template     *template.Template
	assetManager *AssetManager
	diffUtils    *DiffUtils
}

// NewHtmlDiffReporter parses the embedded template.
func NewHtmlDiffReporter(logger zerolog.Logger, diffUtils *DiffUtils) (*HtmlDiffReporter, error) {
	tmpl, err := template.New("").Funcs(GetDiffTemplateFunctions()).ParseFS(templatesFS, "templates/"+DiffReportTemplateName)
	if err != nil {
		return nil, common.WrapError(err, "failed to parse HTML diff template")
	}
	logger.Debug().Str("defined_templates", tmpl.DefinedTemplates()).Msg("HTML diff template parsed successfully")

	if diffUtils == nil {
		diffUtils = NewDiffUtils(nil)
	}
	return &HtmlDiffReporter{
		logger:       logger,
		template:     tmpl,
		assetManager: NewAssetManager(logger),
		diffUtils:    diffUtils,
	}, nil
}

// Render returns the report page for result.
func (r *HtmlDiffReporter) Render(result *models.ComparisonResult, meta models.ReportMeta) ([]byte, error) {
	pageData := r.createPageData(result, meta)
	r.assetManager.EmbedAssetsIntoPageData(&pageData)

	var buf bytes.Buffer
	if err := r.template.ExecuteTemplate(&buf, DiffReportTemplateName, pageData); err != nil {
		r.logger.Error().Err(err).Msg("Failed to execute template for diff report")
		return nil, common.WrapError(err, "failed to execute template")
	}
	return buf.Bytes(), nil
}

func (r *HtmlDiffReporter) createPageData(result *models.ComparisonResult, meta models.ReportMeta) models.DiffReportPageData {
	title := meta.Title
	if title == "" {
		title = DefaultDiffReportTitle
	}
	generatedAt := meta.GeneratedAt
	if generatedAt.IsZero() {
		generatedAt = time.Now()
	}

	pageData := models.DiffReportPageData{
		ReportTitle: title,
		GeneratedAt: generatedAt.Format(generatedAtLayout),
		LeftName:    meta.LeftName,
		RightName:   meta.RightName,
		Mode:        result.Mode.String(),
		Summary:     r.diffUtils.CreateDiffSummary(result),
		Stats:       result.Stats,
		Rows:        make([]models.DiffRowDisplay, 0, len(result.Ops)),
		ChangeItems: make([]models.ChangeItemDisplay, 0, len(result.ChangeItems)),
		IsIdentical: result.IsIdentical(),
	}

	for i, op := range result.Ops {
		left, right := r.diffUtils.RenderSides(op, result.Mode)
		pageData.Rows = append(pageData.Rows, models.DiffRowDisplay{
			Index:     i,
			Kind:      op.Kind.String(),
			LeftHTML:  left,
			RightHTML: right,
			HasLeft:   op.Kind.HasLeft(),
			HasRight:  op.Kind.HasRight(),
		})
	}

	for _, item := range result.ChangeItems {
		pageData.ChangeItems = append(pageData.ChangeItems, models.ChangeItemDisplay{
			ID:      item.ID,
			Kind:    item.Kind.String(),
			Preview: item.Preview,
			Anchor:  OpAnchor(item.SourceOpIndex),
		})
	}

	return pageData
}
