// Package md2tmpl renders Markdown fragments into named template blocks.
//
// Each page of a template-driven site keeps its prose in CommonMark files
// next to a base template. md2tmpl renders every fragment to HTML, wraps it
// in a named block the template layer can reference, and writes the blocks
// followed by the base template to a single rendered file:
//
//	src/app/home/home.template.html   base template (copied verbatim)
//	src/app/home/home.intro.md        fragment "intro"
//	src/app/home/home.details.md      fragment "details"
//	src/app/home/home.rendered.html   output
//
// # Quick Start
//
//	driver := md2tmpl.NewDriver(md2tmpl.NewAssembler(), md2tmpl.WithNotices(os.Stdout))
//	err := driver.Run(ctx, []md2tmpl.Page{
//	    {Dir: "src/app/home", Prefix: "home", Fragments: []string{"intro", "details"}},
//	})
//
// The output starts with one block per fragment, in order:
//
//	<ng-template #intro>
//	<h1 id="welcome">Welcome</h1>
//	</ng-template>
//
// # Rendering Pipeline
//
// Every fragment goes through three stages:
//
//  1. Link rewriting: [text](href) becomes
//     <app-generated-link linkHREF="href">text</app-generated-link>, so the
//     href can be a template expression such as {{ docsHref }}
//  2. CommonMark to HTML via Goldmark, with heading ids from a slug of the
//     heading text ("123 Config" becomes "id-123-config")
//  3. Removal of the <html> markers that keep the placeholder unescaped
//
// # Errors
//
// Pages are processed one at a time. The first read or write failure stops
// the run; errors wrap ErrReadTemplate, ErrReadFragment or ErrWriteRendered
// together with the underlying file system error.
package md2tmpl
