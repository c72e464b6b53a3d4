package frontend

import "testing"

func TestHandleEsperoToml(t *testing.T) {
	manifest := `
name = "saluton"
version = "0.1.0"
main = "saluton.epp"
`
	et, err := HandleEsperoToml(manifest)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if et.Name != "saluton" || et.Version != "0.1.0" || et.Main != "saluton.epp" {
		t.Fatalf("manifest wrong: %+v", et)
	}
}

func TestHandleEsperoToml_DefaultMain(t *testing.T) {
	et, err := HandleEsperoToml("name = \"saluton\"\nversion = \"0.1.0\"\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if et.Main != DefaultMain {
		t.Fatalf("main wrong. expected=%q, got=%q", DefaultMain, et.Main)
	}
}

func TestHandleEsperoToml_RequiredFields(t *testing.T) {
	for _, manifest := range []string{
		"",
		"name = \"saluton\"",
		"version = \"0.1.0\"",
	} {
		if _, err := HandleEsperoToml(manifest); err == nil {
			t.Fatalf("manifest %q: expected validation error", manifest)
		}
	}
}

func TestHandleEsperoToml_MalformedToml(t *testing.T) {
	if _, err := HandleEsperoToml("name = "); err == nil {
		t.Fatal("expected decode error")
	}
}
