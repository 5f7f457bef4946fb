package translate

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/valenxo/Museo-MET/internal/collection"
	"github.com/valenxo/Museo-MET/internal/fanout"
)

// dictionary translates known words and fails on anything else.
func dictionary(words map[string]string) Func {
	return func(_ context.Context, text, _, _ string) (string, error) {
		if out, ok := words[text]; ok {
			return out, nil
		}
		return "", errors.New("translation service unavailable")
	}
}

func TestTranslateAllFallsBackPerItem(t *testing.T) {
	e := NewEnricher(dictionary(map[string]string{"Arms and Armor": "Armas y armaduras"}), "en", "es")

	got := e.TranslateAll(context.Background(), []string{"Arms and Armor", "Musical Instruments"})
	want := []string{"Armas y armaduras", "Musical Instruments"}
	if len(got) != len(want) {
		t.Fatalf("TranslateAll() returned %d texts, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("TranslateAll()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTranslateAllEmpty(t *testing.T) {
	var calls atomic.Int32
	e := NewEnricher(Func(func(context.Context, string, string, string) (string, error) {
		calls.Add(1)
		return "", nil
	}), "en", "es")

	if got := e.TranslateAll(context.Background(), nil); len(got) != 0 {
		t.Fatalf("TranslateAll(nil) = %v", got)
	}
	if calls.Load() != 0 {
		t.Fatalf("translator called %d times, want 0", calls.Load())
	}
}

func TestTranslateAllSkipsBlankAndEmptyResults(t *testing.T) {
	var calls atomic.Int32
	e := NewEnricher(Func(func(_ context.Context, text, _, _ string) (string, error) {
		calls.Add(1)
		return "   ", nil
	}), "en", "es")

	got := e.TranslateAll(context.Background(), []string{"", "  ", "Drawings"})
	if got[0] != "" || got[1] != "  " {
		t.Errorf("blank texts changed: %q", got)
	}
	if got[2] != "Drawings" {
		t.Errorf("empty translation should keep the original, got %q", got[2])
	}
	if calls.Load() != 1 {
		t.Errorf("translator called %d times, want 1", calls.Load())
	}
}

func TestTranslateAllPassesLanguages(t *testing.T) {
	e := NewEnricher(Func(func(_ context.Context, text, source, target string) (string, error) {
		return source + ">" + target + ":" + text, nil
	}), "en", "pt", WithPool(fanout.New(2)))

	got := e.TranslateAll(context.Background(), []string{"a", "b", "c"})
	for i, text := range []string{"a", "b", "c"} {
		if got[i] != "en>pt:"+text {
			t.Errorf("TranslateAll()[%d] = %q", i, got[i])
		}
	}
}

func TestDepartments(t *testing.T) {
	e := NewEnricher(dictionary(map[string]string{
		"American Wing":  "Ala Americana",
		"Arms and Armor": "Armas y armaduras",
	}), "en", "es")

	in := []collection.Department{
		{DepartmentID: 1, DisplayName: "American Wing"},
		{DepartmentID: 4, DisplayName: "Arms and Armor"},
		{DepartmentID: 5, DisplayName: "Arts of Africa, Oceania, and the Americas"},
	}
	got := e.Departments(context.Background(), in)

	want := []string{"Ala Americana", "Armas y armaduras", "Arts of Africa, Oceania, and the Americas"}
	for i := range want {
		if got[i].DisplayName != want[i] {
			t.Errorf("department[%d] = %q, want %q", i, got[i].DisplayName, want[i])
		}
		if got[i].DepartmentID != in[i].DepartmentID {
			t.Errorf("department[%d] id = %d, want %d", i, got[i].DepartmentID, in[i].DepartmentID)
		}
	}
	if in[0].DisplayName != "American Wing" {
		t.Error("Departments() mutated its input")
	}
}

func TestObjectsTranslatesConfiguredFields(t *testing.T) {
	mustObject := func(raw string) collection.Object {
		obj, err := collection.NewObject([]byte(raw))
		if err != nil {
			t.Fatalf("NewObject(%s): %v", raw, err)
		}
		return obj
	}
	objects := []collection.Object{
		mustObject(`{"objectID":1,"title":"Bowl","medium":"Porcelain"}`),
		mustObject(`{"objectID":2,"title":"","medium":"Bronze"}`),
		mustObject(`{"objectID":3,"medium":"Silk"}`),
	}

	e := NewEnricher(Func(func(_ context.Context, text, _, _ string) (string, error) {
		return strings.ToUpper(text), nil
	}), "en", "es", WithObjectFields([]string{"title", "medium"}))

	got := e.Objects(context.Background(), objects)
	if len(got) != 3 {
		t.Fatalf("Objects() returned %d, want 3", len(got))
	}
	if got[0].Title() != "BOWL" || got[0].Medium() != "PORCELAIN" {
		t.Errorf("object 1 = %s", got[0].Raw())
	}
	if got[1].Title() != "" || got[1].Medium() != "BRONZE" {
		t.Errorf("object 2 = %s", got[1].Raw())
	}
	if got[2].Get("title").Exists() {
		t.Errorf("object 3 gained a title: %s", got[2].Raw())
	}
	if objects[0].Title() != "Bowl" {
		t.Error("Objects() mutated its input")
	}
}

func TestCascade(t *testing.T) {
	failing := Func(func(context.Context, string, string, string) (string, error) {
		return "", errors.New("primary down")
	})
	working := Func(func(_ context.Context, text, _, _ string) (string, error) {
		return "fb:" + text, nil
	})

	got, err := NewCascade(failing, working).Translate(context.Background(), "Vase", "en", "es")
	if err != nil || got != "fb:Vase" {
		t.Fatalf("Cascade fallback = %q, %v", got, err)
	}

	got, err = NewCascade(working, failing).Translate(context.Background(), "Vase", "en", "es")
	if err != nil || got != "fb:Vase" {
		t.Fatalf("Cascade primary = %q, %v", got, err)
	}

	_, err = NewCascade(failing, failing).Translate(context.Background(), "Vase", "en", "es")
	if err == nil || !strings.Contains(err.Error(), "primary") || !strings.Contains(err.Error(), "fallback") {
		t.Fatalf("Cascade both failing error = %v", err)
	}

	_, err = NewCascade(failing, nil).Translate(context.Background(), "Vase", "en", "es")
	if err == nil || err.Error() != "primary down" {
		t.Fatalf("Cascade without fallback error = %v", err)
	}
}

func TestAlreadyInRejectsUnusableInput(t *testing.T) {
	if AlreadyIn("", "es") {
		t.Error("empty text should not be detected")
	}
	if AlreadyIn("Arms and Armor", "not a tag!") {
		t.Error("invalid target tag should not match")
	}
	if AlreadyIn("The museum holds a large collection of ancient and modern art from around the world", "es") {
		t.Error("English text detected as Spanish")
	}
}

func TestParseProvider(t *testing.T) {
	for _, name := range []string{"google", " Lambda ", "NOOP"} {
		if _, err := ParseProvider(name); err != nil {
			t.Errorf("ParseProvider(%q) unexpected error: %v", name, err)
		}
	}
	if _, err := ParseProvider("deepl"); err == nil {
		t.Error("ParseProvider(deepl) should fail")
	}
}

func TestNewBuildsCascade(t *testing.T) {
	tr, err := New(context.Background(), Options{Provider: "noop", Fallback: "google"})
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}
	c, ok := tr.(*Cascade)
	if !ok {
		t.Fatalf("New() = %T, want *Cascade", tr)
	}
	if _, ok := c.Primary.(Noop); !ok {
		t.Errorf("primary = %T, want Noop", c.Primary)
	}
	if _, ok := c.Fallback.(*Google); !ok {
		t.Errorf("fallback = %T, want *Google", c.Fallback)
	}

	if _, err := New(context.Background(), Options{Provider: "noop", Fallback: "bogus"}); err == nil {
		t.Error("New() with unknown fallback should fail")
	}
}
