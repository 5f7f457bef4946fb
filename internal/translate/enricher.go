package translate

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/valenxo/Museo-MET/internal/collection"
	"github.com/valenxo/Museo-MET/internal/domain"
	"github.com/valenxo/Museo-MET/internal/fanout"
	"github.com/valenxo/Museo-MET/internal/logging"
)

// DefaultObjectFields lists the object fields translated by default.
var DefaultObjectFields = []string{"title"}

// Enricher translates batches of texts concurrently. A failed translation
// keeps the original text, so a batch never fails.
type Enricher struct {
	translator   Translator
	source       string
	target       string
	pool         *fanout.Pool
	logger       *slog.Logger
	objectFields []string
	skipDetected bool
}

// EnricherOption configures an Enricher.
type EnricherOption func(*Enricher)

// WithPool sets the pool bounding concurrent translation calls.
func WithPool(p *fanout.Pool) EnricherOption {
	return func(e *Enricher) { e.pool = p }
}

// WithLogger sets the logger used to report absorbed failures.
func WithLogger(l *slog.Logger) EnricherOption {
	return func(e *Enricher) { e.logger = l }
}

// WithObjectFields sets the object fields (gjson paths) to translate.
func WithObjectFields(fields []string) EnricherOption {
	return func(e *Enricher) { e.objectFields = fields }
}

// WithLanguageDetection skips texts already detected in the target language.
func WithLanguageDetection(enabled bool) EnricherOption {
	return func(e *Enricher) { e.skipDetected = enabled }
}

// NewEnricher creates an Enricher translating from source to target.
func NewEnricher(t Translator, source, target string, opts ...EnricherOption) *Enricher {
	if t == nil {
		t = Noop{}
	}
	e := &Enricher{
		translator:   t,
		source:       source,
		target:       target,
		pool:         fanout.New(fanout.DefaultWidth),
		logger:       logging.Discard(),
		objectFields: DefaultObjectFields,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// TranslateAll returns one text per input, in input order. Each text is
// translated independently; failures fall back to the original text.
func (e *Enricher) TranslateAll(ctx context.Context, texts []string) []string {
	results := fanout.Each(ctx, e.pool, texts, e.translateOne)

	out := make([]string, len(texts))
	for i, r := range results {
		if r.Err != nil {
			e.logger.WarnContext(ctx, "translation failed, keeping original",
				"text", texts[i], "source", e.source, "target", e.target, "error", r.Err)
			out[i] = texts[i]
			continue
		}
		out[i] = r.Value
	}
	return out
}

func (e *Enricher) translateOne(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return text, nil
	}
	if e.skipDetected && AlreadyIn(text, e.target) {
		return text, nil
	}
	translated, err := e.translator.Translate(ctx, text, e.source, e.target)
	if err != nil {
		return "", domain.Translation("translate text", err)
	}
	if strings.TrimSpace(translated) == "" {
		return "", domain.Translation("translate text", errors.New("empty translation"))
	}
	return translated, nil
}

// Apply translates the label of every item and returns updated copies.
func Apply[T any](ctx context.Context, e *Enricher, items []T, label func(T) string, relabel func(T, string) T) []T {
	texts := make([]string, len(items))
	for i, item := range items {
		texts[i] = label(item)
	}
	translated := e.TranslateAll(ctx, texts)

	out := make([]T, len(items))
	for i, item := range items {
		out[i] = relabel(item, translated[i])
	}
	return out
}

// Departments translates department display names.
func (e *Enricher) Departments(ctx context.Context, departments []collection.Department) []collection.Department {
	return Apply(ctx, e, departments,
		func(d collection.Department) string { return d.DisplayName },
		func(d collection.Department, name string) collection.Department {
			d.DisplayName = name
			return d
		},
	)
}

// Objects translates the configured fields of every object in one batch.
// Fields missing from an object are left absent.
func (e *Enricher) Objects(ctx context.Context, objects []collection.Object) []collection.Object {
	type slot struct {
		object int
		field  string
	}
	var (
		slots []slot
		texts []string
	)
	for i, obj := range objects {
		for _, field := range e.objectFields {
			v := obj.Get(field)
			if !v.Exists() || v.String() == "" {
				continue
			}
			slots = append(slots, slot{object: i, field: field})
			texts = append(texts, v.String())
		}
	}

	out := make([]collection.Object, len(objects))
	copy(out, objects)
	if len(texts) == 0 {
		return out
	}
	translated := e.TranslateAll(ctx, texts)
	for i, s := range slots {
		updated, err := out[s.object].With(s.field, translated[i])
		if err != nil {
			e.logger.WarnContext(ctx, "could not set translated field", "field", s.field, "error", err)
			continue
		}
		out[s.object] = updated
	}
	return out
}
