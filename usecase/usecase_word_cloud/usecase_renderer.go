package usecase_word_cloud

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"math/rand/v2"

	"github.com/ninesong/wordcloud/domain/domain_word_cloud/word_cloud_models"
)

//go:embed templates/word_cloud.html.tmpl
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/word_cloud.html.tmpl"))

// ColorPicker 为每个词独立选择颜色类
type ColorPicker interface {
	Pick() string
}

type randomColorPicker struct {
	rng *rand.Rand
}

// NewColorPicker returns a uniform picker over the palette. A zero seed
// gives a non-reproducible picker.
func NewColorPicker(seed int64) ColorPicker {
	if seed == 0 {
		return &randomColorPicker{}
	}
	return &randomColorPicker{rng: rand.New(rand.NewPCG(uint64(seed), uint64(seed)))}
}

func (p *randomColorPicker) Pick() string {
	n := len(word_cloud_models.Colors)
	if p.rng == nil {
		return word_cloud_models.Colors[rand.IntN(n)]
	}
	return word_cloud_models.Colors[p.rng.IntN(n)]
}

type pageData struct {
	Stylesheet string
	Count      int
	Source     string
	CloudClass string
	Entries    []word_cloud_models.CloudEntry
}

type Renderer struct {
	colors ColorPicker
}

func NewRenderer(colors ColorPicker) *Renderer {
	if colors == nil {
		colors = NewColorPicker(0)
	}
	return &Renderer{colors: colors}
}

// Paint returns a copy of entries with a color assigned to each one.
func (r *Renderer) Paint(entries []word_cloud_models.CloudEntry) []word_cloud_models.CloudEntry {
	painted := make([]word_cloud_models.CloudEntry, len(entries))
	for i, entry := range entries {
		entry.Color = r.colors.Pick()
		painted[i] = entry
	}
	return painted
}

// Render writes the complete page and returns the painted entries.
func (r *Renderer) Render(
	w io.Writer, sourceLabel string, entries []word_cloud_models.CloudEntry,
) ([]word_cloud_models.CloudEntry, error) {
	painted := r.Paint(entries)

	data := pageData{
		Stylesheet: word_cloud_models.StylesheetName,
		Count:      len(painted),
		Source:     sourceLabel,
		CloudClass: word_cloud_models.CloudClass(len(painted)),
		Entries:    painted,
	}
	if err := pageTemplate.Execute(w, data); err != nil {
		return nil, fmt.Errorf("failed to render word cloud page: %w", err)
	}

	return painted, nil
}
