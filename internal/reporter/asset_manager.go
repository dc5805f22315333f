package reporter

import (
	"embed"
	"html/template"

	"github.com/aleister1102/docdiff/internal/common"
	"github.com/rs/zerolog"
)

// AssetManager reads the embedded stylesheet so reports stay single-file.
type AssetManager struct {
	logger zerolog.Logger
	fs     embed.FS
}

// NewAssetManager creates a new AssetManager
func NewAssetManager(logger zerolog.Logger) *AssetManager {
	return &AssetManager{
		logger: logger,
		fs:     assetsFS,
	}
}

// EmbeddedCSS returns the report stylesheet.
func (am *AssetManager) EmbeddedCSS() (template.CSS, error) {
	data, err := am.fs.ReadFile(EmbeddedDiffCSSPath)
	if err != nil {
		return "", common.WrapErrorf(err, "failed to read embedded asset '%s'", EmbeddedDiffCSSPath)
	}
	return template.CSS(data), nil
}

// EmbedAssetsIntoPageData sets the stylesheet on page data, logging rather
// than failing when it cannot be read.
func (am *AssetManager) EmbedAssetsIntoPageData(pageData PageDataInterface) {
	css, err := am.EmbeddedCSS()
	if err != nil {
		am.logger.Warn().Err(err).Msg("Failed to embed CSS, report styling might be affected.")
	}
	pageData.SetCustomCSS(css)
}

// PageDataInterface interface for setting assets into page data
type PageDataInterface interface {
	SetCustomCSS(template.CSS)
}
