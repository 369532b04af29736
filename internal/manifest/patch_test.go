package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testDefaults() Defaults {
	return Defaults{
		SetupScript: "seblak setup",
		StartScript: "seblak start",
		Placeholder: "workspace",
		Name:        "seblak-bujangan",
		Description: "Aplikasi Manajemen Keuangan Seblak Bujangan",
	}
}

func mustParse(t *testing.T, s string) *Document {
	t.Helper()
	doc, err := Parse([]byte(s))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return doc
}

func TestPatch_FreshManifest(t *testing.T) {
	doc := mustParse(t, `{
  "name": "workspace",
  "version": "1.0.0",
  "description": "",
  "main": "index.js",
  "dependencies": {
    "cross-spawn": "^7.0.3"
  }
}`)

	changes, err := Patch(doc, testDefaults())
	if err != nil {
		t.Fatalf("Patch failed: %v", err)
	}

	wantFields := []string{"scripts.setup", "scripts.start", "name", "description"}
	if len(changes) != len(wantFields) {
		t.Fatalf("expected %d changes, got %d: %+v", len(wantFields), len(changes), changes)
	}
	for i, f := range wantFields {
		if changes[i].Field != f {
			t.Errorf("change[%d].Field = %s, want %s", i, changes[i].Field, f)
		}
	}

	if v, _ := doc.Script("setup"); v != "seblak setup" {
		t.Errorf("scripts.setup = %q", v)
	}
	if v, _ := doc.Script("start"); v != "seblak start" {
		t.Errorf("scripts.start = %q", v)
	}
	if v, _ := doc.String("name"); v != "seblak-bujangan" {
		t.Errorf("name = %q", v)
	}
	if v, _ := doc.String("description"); v != "Aplikasi Manajemen Keuangan Seblak Bujangan" {
		t.Errorf("description = %q", v)
	}

	// Existing keys keep their place; scripts is appended.
	keys := strings.Join(doc.Keys(), ",")
	if keys != "name,version,description,main,dependencies,scripts" {
		t.Errorf("unexpected key order: %s", keys)
	}
}

func TestPatch_NeverOverwrites(t *testing.T) {
	doc := mustParse(t, `{
  "name": "my-stall",
  "description": "Custom description",
  "scripts": {
    "setup": "make setup",
    "start": "make run"
  }
}`)

	changes, err := Patch(doc, testDefaults())
	if err != nil {
		t.Fatalf("Patch failed: %v", err)
	}
	if len(changes) != 0 {
		t.Fatalf("expected no changes, got %+v", changes)
	}
	if v, _ := doc.Script("start"); v != "make run" {
		t.Errorf("scripts.start overwritten: %q", v)
	}
	if v, _ := doc.String("name"); v != "my-stall" {
		t.Errorf("name overwritten: %q", v)
	}
}

func TestPatch_PartialScripts(t *testing.T) {
	doc := mustParse(t, `{"name":"x","description":"d","scripts":{"test":"go test","start":"custom"}}`)

	changes, err := Patch(doc, testDefaults())
	if err != nil {
		t.Fatalf("Patch failed: %v", err)
	}
	if len(changes) != 1 || changes[0].Field != "scripts.setup" {
		t.Fatalf("expected only scripts.setup, got %+v", changes)
	}
	if v, _ := doc.Script("test"); v != "go test" {
		t.Errorf("unrelated script lost: %q", v)
	}
}

func TestPatch_FalsyValues(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"null scripts", `{"name":"x","description":"d","scripts":null}`, []string{"scripts.setup", "scripts.start"}},
		{"empty string scripts", `{"name":"x","description":"d","scripts":""}`, []string{"scripts.setup", "scripts.start"}},
		{"empty script", `{"name":"x","description":"d","scripts":{"setup":"","start":"s"}}`, []string{"scripts.setup"}},
		{"null description", `{"name":"x","description":null,"scripts":{"setup":"a","start":"b"}}`, []string{"description"}},
		{"missing description", `{"name":"x","scripts":{"setup":"a","start":"b"}}`, []string{"description"}},
		{"missing name is not filled", `{"description":"d","scripts":{"setup":"a","start":"b"}}`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := mustParse(t, tt.input)
			changes, err := Patch(doc, testDefaults())
			if err != nil {
				t.Fatalf("Patch failed: %v", err)
			}
			var got []string
			for _, c := range changes {
				got = append(got, c.Field)
			}
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("changes = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPatch_ScriptsNotAnObject(t *testing.T) {
	doc := mustParse(t, `{"name":"workspace","description":"","scripts":"oops"}`)

	changes, err := Patch(doc, testDefaults())
	if err == nil {
		t.Fatal("expected error for non-object scripts, got nil")
	}

	var got []string
	for _, c := range changes {
		got = append(got, c.Field)
	}
	if strings.Join(got, ",") != "name,description" {
		t.Errorf("changes = %v, want [name description]", got)
	}
	if v, _ := doc.String("name"); v != "seblak-bujangan" {
		t.Errorf("name = %q, want seblak-bujangan", v)
	}
	if v, _ := doc.String("description"); v != testDefaults().Description {
		t.Errorf("description = %q", v)
	}
	if v, _ := doc.String("scripts"); v != "oops" {
		t.Errorf("scripts should be left as is, got %q", v)
	}
}

func TestPatch_Idempotent(t *testing.T) {
	doc := mustParse(t, `{"name":"workspace","version":"1.0.0"}`)
	if _, err := Patch(doc, testDefaults()); err != nil {
		t.Fatal(err)
	}
	first, err := doc.Bytes()
	if err != nil {
		t.Fatal(err)
	}

	again := mustParse(t, string(first))
	changes, err := Patch(again, testDefaults())
	if err != nil {
		t.Fatal(err)
	}
	if len(changes) != 0 {
		t.Errorf("second patch applied %+v", changes)
	}
}

func TestBytes_PreservesNpmFormatting(t *testing.T) {
	input := `{
  "name": "seblak-bujangan",
  "version": "1.0.0",
  "description": "Aplikasi <Seblak> & co",
  "scripts": {
    "setup": "seblak setup",
    "start": "seblak start"
  },
  "keywords": [],
  "engines": {},
  "ratio": 1.50
}
`
	doc := mustParse(t, input)
	out, err := doc.Bytes()
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}
	if string(out) != input {
		t.Errorf("round trip changed the document:\ngot:\n%s\nwant:\n%s", out, input)
	}
}

func TestParse_Errors(t *testing.T) {
	for _, input := range []string{``, `[]`, `"name"`, `{"a":1} {"b":2}`, `{"a":`} {
		if _, err := Parse([]byte(input)); err == nil {
			t.Errorf("Parse(%q) expected error, got nil", input)
		}
	}
}

func TestLoadSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "package.json")
	if err := os.WriteFile(path, []byte(`{"name":"workspace"}`), 0644); err != nil {
		t.Fatal(err)
	}

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if _, err := Patch(doc, testDefaults()); err != nil {
		t.Fatal(err)
	}
	if err := Save(path, doc); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if v, _ := reloaded.String("name"); v != "seblak-bujangan" {
		t.Errorf("name after save = %q", v)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error loading missing manifest")
	}
}

func TestDefaultValues(t *testing.T) {
	def := DefaultValues()
	if def != testDefaults() {
		t.Errorf("DefaultValues() = %+v, want %+v", def, testDefaults())
	}
}
