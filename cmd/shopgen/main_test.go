package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runArgs(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestShopgenSeeded(t *testing.T) {
	code, a, errOut := runArgs(t, "-seed", "7")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	_, b, _ := runArgs(t, "-seed", "7")
	if a != b {
		t.Errorf("same seed, different output:\n%s\n---\n%s", a, b)
	}
	for _, want := range []string{"Emporium (greed ", "SHOP: general shop name:", "MAP:  x", "shop entrance at ("} {
		if !strings.Contains(a, want) {
			t.Errorf("output missing %q:\n%s", want, a)
		}
	}
}

func TestShopgenMany(t *testing.T) {
	code, out, _ := runArgs(t, "-seed", "3", "-n", "4")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if got := strings.Count(out, "SHOP: "); got != 4 {
		t.Errorf("printed %d shops, want 4", got)
	}
}

func TestShopgenSeedFromEnv(t *testing.T) {
	t.Setenv("DUNGEON_LORE_SEED", "7")
	_, fromEnv, _ := runArgs(t)
	_, fromFlag, _ := runArgs(t, "-seed", "7")
	if fromEnv != fromFlag {
		t.Errorf("env seed and flag seed differ")
	}
}

func TestShopgenCustomScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixed.lua")
	script := `dgn.shop("name:Bob type:Letter_B suffix:Emporium greed:10 count:1", "bow") dgn.map("xSx")`
	if err := os.WriteFile(path, []byte(script), 0o600); err != nil {
		t.Fatal(err)
	}
	code, out, errOut := runArgs(t, "-seed", "1", "-script", path)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	want := "Bob's Letter B Emporium (greed 10, 1 items)\n" +
		"SHOP: general shop name:Bob type:Letter_B suffix:Emporium greed:10 count:1 ; bow\n" +
		"MAP:  xSx\n" +
		"shop entrance at (1,0)\n"
	if out != want {
		t.Errorf("output:\n%q\nwant:\n%q", out, want)
	}
}

func TestShopgenErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.lua")
	if err := os.WriteFile(path, []byte(`dgn.map("xSx")`), 0o600); err != nil {
		t.Fatal(err)
	}
	if code, _, _ := runArgs(t, "-script", path); code != 1 {
		t.Errorf("script without shop: exit %d, want 1", code)
	}
	if code, _, _ := runArgs(t, "-script", filepath.Join(t.TempDir(), "missing.lua")); code != 1 {
		t.Errorf("missing script: exit %d, want 1", code)
	}
	if code, _, _ := runArgs(t, "-n", "x"); code != 2 {
		t.Errorf("bad flag: exit %d, want 2", code)
	}
}
