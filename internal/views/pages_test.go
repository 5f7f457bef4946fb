package views

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/valenxo/Museo-MET/internal/collection"
	"github.com/valenxo/Museo-MET/internal/i18n"
)

func mustObject(t *testing.T, raw string) collection.Object {
	t.Helper()
	obj, err := collection.NewObject([]byte(raw))
	if err != nil {
		t.Fatalf("NewObject: %v", err)
	}
	return obj
}

func TestIndexListsDepartmentsEscaped(t *testing.T) {
	departments := []collection.Department{
		{DepartmentID: 1, DisplayName: "Ala Americana"},
		{DepartmentID: 6, DisplayName: "Arte <Asiático>"},
	}

	var buf bytes.Buffer
	if err := Index(i18n.Printer("es"), "es", departments).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	html := buf.String()

	for _, want := range []string{
		`<html lang="es">`,
		"Museo Metropolitano de Arte",
		`<option value="6">Arte &lt;Asiático&gt;</option>`,
		`data-department-id="1">Ala Americana</li>`,
		`name="departmentId"`,
		`name="keyword"`,
		`name="location"`,
		"Buscar",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("index missing %q", want)
		}
	}
	if strings.Contains(html, "<Asiático>") {
		t.Error("department name was not escaped")
	}
}

func TestObjectRendersFieldsAndFallbacks(t *testing.T) {
	obj := mustObject(t, `{
		"objectID": 45734,
		"title": "Quail and Millet",
		"culture": "",
		"dynasty": "",
		"period": "Edo period",
		"primaryImage": "https://images.metmuseum.org/q.jpg",
		"additionalImages": ["https://images.metmuseum.org/q1.jpg", "https://images.metmuseum.org/q2.jpg"],
		"objectURL": "https://www.metmuseum.org/art/collection/search/45734"
	}`)

	var buf bytes.Buffer
	if err := Object(i18n.Printer("es"), "es", obj).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	html := buf.String()

	for _, want := range []string{
		"<title>Quail and Millet</title>",
		`data-object-id="45734"`,
		`src="https://images.metmuseum.org/q.jpg"`,
		`src="https://images.metmuseum.org/q1.jpg"`,
		`src="https://images.metmuseum.org/q2.jpg"`,
		"<dt>Cultura</dt><dd>Desconocida</dd>",
		"<dt>Dinastía</dt><dd>Desconocida</dd>",
		"<dt>Período</dt><dd>Edo period</dd>",
		"Imágenes adicionales",
		`href="https://www.metmuseum.org/art/collection/search/45734"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("object page missing %q", want)
		}
	}
}

func TestObjectSanitizesUnsafeURLs(t *testing.T) {
	obj := mustObject(t, `{"objectID": 1, "title": "x", "primaryImage": "javascript:alert(1)"}`)

	var buf bytes.Buffer
	if err := Object(i18n.Printer("en"), "en", obj).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(buf.String(), "javascript:") {
		t.Fatalf("unsafe URL rendered: %s", buf.String())
	}
}

func TestErrorPage(t *testing.T) {
	var buf bytes.Buffer
	if err := Error(i18n.Printer("es"), "es", "Error en el servidor").Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(buf.String(), "<p>Error en el servidor</p>") {
		t.Fatalf("unexpected page %q", buf.String())
	}
}
