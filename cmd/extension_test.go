package cmd

import "testing"

func TestRunExtension_NotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	found, _ := RunExtension("does-not-exist", nil)
	if found {
		t.Fatal("RunExtension reported an extension that cannot exist")
	}
}
