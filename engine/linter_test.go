package engine

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/hashicorp/go-hclog"

	"github.com/jokarl/constlint/constitution"
	"github.com/jokarl/constlint/lint"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLinter_Disabled(t *testing.T) {
	l := NewLinter(t.TempDir())
	if c := l.Load(); c != nil {
		t.Fatalf("Load() = %+v, want nil", c)
	}
	if l.Enabled() {
		t.Error("Enabled() = true without a constitution")
	}
	if got := l.Check(Document{Text: pyDoc(400, ""), LanguageTag: "python"}); len(got) != 0 {
		t.Errorf("Check() = %v, want none", got)
	}
	if got := l.Rules(); got != nil {
		t.Errorf("Rules() = %v, want nil", got)
	}
}

func TestLinter_Reload(t *testing.T) {
	root := t.TempDir()
	l := NewLinter(root, WithLogger(hclog.NewNullLogger()))
	doc := Document{URI: "a.py", Text: pyDoc(10, ""), LanguageTag: "python"}

	l.Load()
	if got := l.Check(doc); len(got) != 0 {
		t.Fatalf("Check() before constitution = %v", got)
	}

	writeFile(t, filepath.Join(root, constitution.FileName), `{}`)
	if c := l.Reload(); c == nil {
		t.Fatal("Reload() = nil after writing constitution")
	}
	if !l.Enabled() {
		t.Error("Enabled() = false after reload")
	}
	if got := l.Check(doc); len(got) != 1 || got[0].Code != "HEADER-001" {
		t.Errorf("Check() = %v, want HEADER-001", got)
	}

	writeFile(t, filepath.Join(root, constitution.FileName), `{"linter": {"only": ["LIMIT-001"]}}`)
	l.Reload()
	if got := l.Check(doc); len(got) != 0 {
		t.Errorf("Check() after narrowing rules = %v, want none", got)
	}

	writeFile(t, filepath.Join(root, constitution.FileName), `{broken`)
	if c := l.Reload(); c != nil {
		t.Error("Reload() of broken constitution should disable linting")
	}
	if l.Enabled() {
		t.Error("Enabled() = true after broken reload")
	}
}

func TestLinter_Rules(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, constitution.FileName), `{"linter": {"rule": {"HEADER-001": {"enabled": false}}}}`)

	l := NewLinter(root)
	l.Load()

	got := l.Rules()
	if len(got) != 2 {
		t.Fatalf("Rules() = %v, want 2 rules", got)
	}
	if got[0].Code != "LIMIT-001" || !got[0].Enabled || got[0].Severity != lint.ERROR {
		t.Errorf("Rules()[0] = %+v", got[0])
	}
	if got[1].Code != "HEADER-001" || got[1].Enabled || got[1].Severity != lint.WARNING {
		t.Errorf("Rules()[1] = %+v", got[1])
	}
}

func TestLinter_ConcurrentUse(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, constitution.FileName), `{}`)
	l := NewLinter(root)
	l.Load()
	doc := Document{Text: pyDoc(250, ""), LanguageTag: "python"}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			l.Check(doc)
		}()
		go func() {
			defer wg.Done()
			l.Reload()
		}()
	}
	wg.Wait()

	if got := l.Check(doc); len(got) != 2 {
		t.Errorf("Check() = %v, want 2 findings", got)
	}
}

func TestLinter_Root(t *testing.T) {
	if got := NewLinter("/srv/app").Root(); got != "/srv/app" {
		t.Errorf("Root() = %q, want /srv/app", got)
	}
}
