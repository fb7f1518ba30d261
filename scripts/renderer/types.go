package renderer

// TemplateName represents a known template filename.
type TemplateName string

// Constants for known template filenames.
const (
	TplIndexRewrite TemplateName = "index_rewrite.js.tmpl"
)

// IndexRewriteData holds the data required by the TplIndexRewrite template.
type IndexRewriteData struct {
	// DefaultRootObject is appended to directory URIs, e.g. "index.html".
	DefaultRootObject string
}
