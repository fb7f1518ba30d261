// Package renderer loads embedded CloudFront Function templates under scripts/renderer/templates/
// and renders them with sprig functions.
//
// Function code lives in `.tmpl` files instead of Go string literals so it can be read and
// diffed as JavaScript.
//
// Example:
//
//	import "github.com/trufnetwork/website/infra/scripts/renderer"
//
//	func indexRewriteCode() (string, error) {
//	    return renderer.Render(renderer.TplIndexRewrite, renderer.IndexRewriteData{
//	        DefaultRootObject: "index.html",
//	    })
//	}
package renderer
