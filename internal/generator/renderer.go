package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// TemplateKind identifies one of the page templates.
type TemplateKind string

const (
	TemplateCategory   TemplateKind = "category"
	TemplateProduct    TemplateKind = "product"
	TemplateComparison TemplateKind = "comparison"
)

// templateKeys enumerates the recognized placeholder keys per template kind.
// A field map carrying any other key is rejected instead of silently
// interpolated; recognized keys without a supplied value render empty.
var templateKeys = map[TemplateKind][]string{
	TemplateCategory: {
		"TITLE", "DESCRIPTION", "KEYWORDS", "CATEGORY_NAME", "HEADING",
		"INTRO_TEXT", "PRODUCTS", "INTERNAL_LINKS", "URL",
	},
	TemplateProduct: {
		"TITLE", "DESCRIPTION", "KEYWORDS", "PRODUCT_NAME", "CATEGORY",
		"CATEGORY_NAME", "BRAND", "PRICE", "RATING", "REVIEW_COUNT", "SCORE",
		"IMAGE_URL", "AFFILIATE_URL", "SPECIFICATIONS", "DESCRIPTION_CONTENT",
		"PROS", "CONS", "INTERNAL_LINKS",
	},
	TemplateComparison: {
		"TITLE", "DESCRIPTION", "KEYWORDS", "HEADING", "INTRO_TEXT",
		"COMPARISON_TABLE", "PRODUCTS_DETAIL", "VERDICT", "INTERNAL_LINKS",
		"URL",
	},
}

// TemplateRenderer substitutes typed field values into a page template.
type TemplateRenderer interface {
	Render(kind TemplateKind, fields map[string]string) (string, error)
}

// FileRenderer loads templates from a directory and substitutes
// `{{KEY}}` placeholders.
type FileRenderer struct {
	dir string

	mu    sync.Mutex
	cache map[TemplateKind]string
}

// NewRenderer creates a FileRenderer over the given templates directory.
func NewRenderer(dir string) *FileRenderer {
	return &FileRenderer{
		dir:   dir,
		cache: make(map[TemplateKind]string),
	}
}

// Render loads the template for kind and substitutes the supplied fields.
// Unknown field keys are an error; recognized placeholders with no supplied
// value are replaced with the empty string.
func (r *FileRenderer) Render(kind TemplateKind, fields map[string]string) (string, error) {
	keys, ok := templateKeys[kind]
	if !ok {
		return "", fmt.Errorf("unknown template kind: %s", kind)
	}

	allowed := make(map[string]bool, len(keys))
	for _, key := range keys {
		allowed[key] = true
	}
	for key := range fields {
		if !allowed[key] {
			return "", fmt.Errorf("unrecognized placeholder key %q for %s template", key, kind)
		}
	}

	tmpl, err := r.load(kind)
	if err != nil {
		return "", err
	}

	oldnew := make([]string, 0, len(keys)*2)
	for _, key := range keys {
		oldnew = append(oldnew, "{{"+key+"}}", fields[key])
	}

	return strings.NewReplacer(oldnew...).Replace(tmpl), nil
}

func (r *FileRenderer) load(kind TemplateKind) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if tmpl, ok := r.cache[kind]; ok {
		return tmpl, nil
	}

	content, err := os.ReadFile(filepath.Join(r.dir, string(kind)+".html"))
	if err != nil {
		return "", fmt.Errorf("failed to load %s template: %w", kind, err)
	}

	r.cache[kind] = string(content)
	return r.cache[kind], nil
}
