package buildinfo

import (
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	got := Get()
	if got.Version != Version || got.Commit != Commit || got.Date != Date {
		t.Errorf("Get() = %+v, want package variables", got)
	}
}

func TestTemplate(t *testing.T) {
	if !strings.HasPrefix(Template(), "{{.Name}} version "+Version) {
		t.Errorf("Template() = %q", Template())
	}
	if !strings.Contains(String(), "commit: "+Commit) {
		t.Errorf("String() = %q", String())
	}
}
