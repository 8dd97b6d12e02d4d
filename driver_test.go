package md2tmpl

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestDriver_Run(t *testing.T) {
	t.Parallel()

	home := Page{Dir: "src/home", Prefix: "home", Fragments: []string{"intro"}}
	about := Page{Dir: "src/about", Prefix: "about", Fragments: []string{"team", "history"}}

	mem := newMemFS(map[string]string{
		home.TemplatePath():           "H",
		home.FragmentPath("intro"):    "i",
		about.TemplatePath():          "A",
		about.FragmentPath("team"):    "t",
		about.FragmentPath("history"): "h",
	})
	var notices bytes.Buffer

	d := NewDriver(
		NewAssembler(WithRenderer(&stubRenderer{})),
		WithFileSystem(mem),
		WithNotices(&notices),
	)

	if err := d.Run(context.Background(), []Page{home, about}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	wantNotices := "Rendered " + home.RenderedPath() + "\n" + "Rendered " + about.RenderedPath() + "\n"
	if notices.String() != wantNotices {
		t.Errorf("notices = %q, want %q", notices.String(), wantNotices)
	}

	wantHome := "<ng-template #intro>\n<r>i</r>\n</ng-template>\n\nH"
	if got := mem.files[home.RenderedPath()]; got != wantHome {
		t.Errorf("home output = %q, want %q", got, wantHome)
	}
	wantAbout := "<ng-template #team>\n<r>t</r>\n</ng-template>\n\n" +
		"<ng-template #history>\n<r>h</r>\n</ng-template>\n\nA"
	if got := mem.files[about.RenderedPath()]; got != wantAbout {
		t.Errorf("about output = %q, want %q", got, wantAbout)
	}

	// Pages are processed strictly in list order.
	lastHome, firstAbout := -1, -1
	for i, a := range mem.accessed {
		if strings.Contains(a, "src/home") {
			lastHome = i
		}
		if firstAbout == -1 && strings.Contains(a, "src/about") {
			firstAbout = i
		}
	}
	if lastHome > firstAbout {
		t.Errorf("accessed = %v, want home fully processed before about", mem.accessed)
	}
}

func TestDriver_Run_AbortsOnFirstFailure(t *testing.T) {
	t.Parallel()

	first := Page{Dir: "src/first", Prefix: "first", Fragments: []string{"missing"}}
	second := Page{Dir: "src/second", Prefix: "second", Fragments: []string{"intro"}}

	mem := newMemFS(map[string]string{
		first.TemplatePath():         "F",
		second.TemplatePath():        "S",
		second.FragmentPath("intro"): "i",
	})
	var notices bytes.Buffer

	d := NewDriver(NewAssembler(WithRenderer(&stubRenderer{})), WithFileSystem(mem), WithNotices(&notices))

	err := d.Run(context.Background(), []Page{first, second})
	if !errors.Is(err, ErrReadFragment) {
		t.Fatalf("Run() error = %v, want ErrReadFragment", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Run() error = %v, want underlying fs.ErrNotExist", err)
	}

	if _, ok := mem.files[first.RenderedPath()]; ok {
		t.Error("output written for the failing page")
	}
	for _, a := range mem.accessed {
		if strings.Contains(a, "src/second") {
			t.Errorf("second page touched after failure: %v", mem.accessed)
			break
		}
	}
	if notices.Len() != 0 {
		t.Errorf("notices = %q, want none", notices.String())
	}
}

func TestDriver_Run_WriteFailure(t *testing.T) {
	t.Parallel()

	page := Page{Dir: "src", Prefix: "home"}
	second := Page{Dir: "other", Prefix: "next"}
	mem := newMemFS(map[string]string{
		page.TemplatePath():   "T",
		second.TemplatePath(): "N",
	})
	mem.writeErr = errDiskFull
	var notices bytes.Buffer

	d := NewDriver(NewAssembler(WithRenderer(&stubRenderer{})), WithFileSystem(mem), WithNotices(&notices))

	err := d.Run(context.Background(), []Page{page, second})
	if !errors.Is(err, ErrWriteRendered) {
		t.Errorf("Run() error = %v, want ErrWriteRendered", err)
	}
	if !errors.Is(err, errDiskFull) {
		t.Errorf("Run() error = %v, want underlying error", err)
	}
	if notices.Len() != 0 {
		t.Errorf("notices = %q, want none after failed write", notices.String())
	}
	if got := len(mem.accessed); got != 2 {
		t.Errorf("accessed = %v, want one read and one write", mem.accessed)
	}
}

func TestDriver_Run_ContextCanceled(t *testing.T) {
	t.Parallel()

	page := Page{Dir: "src", Prefix: "home"}
	mem := newMemFS(map[string]string{page.TemplatePath(): "T"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewDriver(NewAssembler(), WithFileSystem(mem)).Run(ctx, []Page{page})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
	if len(mem.accessed) != 0 {
		t.Errorf("accessed = %v, want nothing", mem.accessed)
	}
}

func TestDriver_Run_Empty(t *testing.T) {
	t.Parallel()

	mem := newMemFS(nil)
	if err := NewDriver(NewAssembler(), WithFileSystem(mem)).Run(context.Background(), nil); err != nil {
		t.Errorf("Run() error = %v, want nil", err)
	}
	if len(mem.paths()) != 0 {
		t.Errorf("files = %v, want none", mem.paths())
	}
}

func TestDriver_Run_Logging(t *testing.T) {
	t.Parallel()

	page := Page{Dir: "src", Prefix: "home"}
	mem := newMemFS(map[string]string{page.TemplatePath(): "T"})
	var logs bytes.Buffer

	d := NewDriver(NewAssembler(), WithFileSystem(mem), WithLogger(zerolog.New(&logs).Level(zerolog.DebugLevel)))
	if err := d.Run(context.Background(), []Page{page}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if !strings.Contains(logs.String(), `"page":"home"`) {
		t.Errorf("logs = %q, want page field", logs.String())
	}
	if !strings.Contains(logs.String(), "run complete") {
		t.Errorf("logs = %q, want run summary", logs.String())
	}
}

func TestDriver_Run_OnDisk(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	page := Page{Dir: dir, Prefix: "home", Fragments: []string{"intro", "details"}}
	files := map[string]string{
		page.TemplatePath():          "<section><ng-container *ngTemplateOutlet=\"intro\"></ng-container></section>\n",
		page.FragmentPath("intro"):   "# Getting Started: Setup\n\nRead ([docs]({{ docsHref }})) first.\n",
		page.FragmentPath("details"): "## 123 Config\n",
	}
	for path, content := range files {
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("setup: %v", err)
		}
	}

	var notices bytes.Buffer
	if err := NewDriver(NewAssembler(), WithNotices(&notices)).Run(context.Background(), []Page{page}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "home.rendered.html"))
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	got := string(data)

	for _, want := range []string{
		"<ng-template #intro>\n<h1 id=\"getting-started-setup\">",
		`Read (<app-generated-link linkHREF="{{ docsHref }}">docs</app-generated-link>) first.`,
		"<ng-template #details>\n<h2 id=\"id-123-config\">123 Config</h2>\n</ng-template>\n\n",
		files[page.TemplatePath()],
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "<html>") || strings.Contains(got, "</html>") {
		t.Errorf("output has marker tags:\n%s", got)
	}
	if strings.Index(got, "#intro") > strings.Index(got, "#details") {
		t.Errorf("blocks out of order:\n%s", got)
	}
	if notices.String() != "Rendered "+page.RenderedPath()+"\n" {
		t.Errorf("notices = %q", notices.String())
	}
}
