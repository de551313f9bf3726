package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/geoknoesis/c14n-go/rdf"
)

const testDoc = `[
  {
    "@id": "_:alice",
    "http://example.org/name": [{"@value": "Alice"}],
    "http://example.org/knows": [{"@id": "_:bob"}]
  },
  {
    "@id": "_:bob",
    "http://example.org/name": [{"@value": "Bob"}]
  }
]`

const relabeledDoc = `[
  {
    "@id": "_:p1",
    "http://example.org/name": [{"@value": "Alice"}],
    "http://example.org/knows": [{"@id": "_:p2"}]
  },
  {
    "@id": "_:p2",
    "http://example.org/name": [{"@value": "Bob"}]
  }
]`

func writeDoc(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("unexpected write error: %v", err)
	}
	return path
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	c := New(&bytes.Buffer{}, LogInfo)
	var out bytes.Buffer
	c.SetOutput(&out)
	root := c.RootCommand()
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestCanonicalizeCommand(t *testing.T) {
	path := writeDoc(t, "people.jsonld", testDoc)
	out, err := runCommand(t, "canonicalize", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "_:c14n0") {
		t.Fatalf("expected canonical labels in output: %q", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Fatal("output must be newline-terminated")
	}

	relabeled := writeDoc(t, "relabeled.jsonld", relabeledDoc)
	other, err := runCommand(t, "canonicalize", relabeled)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if other != out {
		t.Fatal("relabeled documents must canonicalize identically")
	}
}

func TestCanonicalizeCommandRejectsUnknownHash(t *testing.T) {
	path := writeDoc(t, "people.jsonld", testDoc)
	_, err := runCommand(t, "canonicalize", "--hash", "md5", path)
	if !errors.Is(err, rdf.ErrUnsupportedHashAlgorithm) {
		t.Fatalf("expected ErrUnsupportedHashAlgorithm, got %v", err)
	}
}

func TestIsomorphicCommand(t *testing.T) {
	a := writeDoc(t, "a.jsonld", testDoc)
	b := writeDoc(t, "b.jsonld", relabeledDoc)

	out, err := runCommand(t, "isomorphic", a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "true" {
		t.Fatalf("expected true, got %q", out)
	}

	different := writeDoc(t, "c.jsonld", `[{"@id": "_:x", "http://example.org/name": [{"@value": "Carol"}]}]`)
	out, err = runCommand(t, "isomorphic", a, different)
	if !errors.Is(err, ErrNotIsomorphic) {
		t.Fatalf("expected ErrNotIsomorphic, got %v", err)
	}
	if strings.TrimSpace(out) != "false" {
		t.Fatalf("expected false, got %q", out)
	}
}
