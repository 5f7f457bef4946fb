package translate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
)

// DefaultLambdaPrefix prefixes the translator function names.
const DefaultLambdaPrefix = "museo-translator"

// Romance languages served by the romance-en / en-romance translator models.
var romanceLanguages = map[string]bool{
	"es": true, "es_AR": true, "es_CL": true, "es_CO": true, "es_ES": true,
	"es_MX": true, "es_PE": true, "es_UY": true, "es_VE": true,
	"fr": true, "fr_BE": true, "fr_CA": true, "fr_FR": true,
	"oc": true, // Occitan
	"it": true,
	"co": true, // Corsican
	"pt": true, "pt_BR": true, "pt_PT": true,
	"gl": true, // Galician
	"ca": true, // Catalan
	"ro": true,
	"la": true, // Latin
	"rm": true, // Romansh
	"sc": true, // Sardinian
}

// LambdaInvoker is the subset of the Lambda API the provider needs.
type LambdaInvoker interface {
	Invoke(ctx context.Context, params *lambda.InvokeInput, optFns ...func(*lambda.Options)) (*lambda.InvokeOutput, error)
}

// Lambda translates through translator Lambda functions, one function per
// model direction. Pairs without English pivot through English.
type Lambda struct {
	client      LambdaInvoker
	prefix      string
	environment string
}

// lambdaStep is one translator invocation in a route.
type lambdaStep struct {
	model      string // romance-en, en-romance, de-en, en-de
	targetLang string // only set for en-romance
}

// lambdaRequest is the payload sent to translator Lambdas.
type lambdaRequest struct {
	Chunks     [][]string `json:"chunks"`
	TargetLang string     `json:"target_lang,omitempty"`
}

// lambdaResponse is the payload returned by translator Lambdas.
type lambdaResponse struct {
	Translations [][]string `json:"translations"`
	Error        string     `json:"error,omitempty"`
}

// NewLambda creates a provider backed by client.
func NewLambda(client LambdaInvoker, prefix, environment string) *Lambda {
	if strings.TrimSpace(prefix) == "" {
		prefix = DefaultLambdaPrefix
	}
	return &Lambda{client: client, prefix: prefix, environment: strings.TrimSpace(environment)}
}

// NewLambdaFromEnv loads the default AWS configuration and creates a provider.
func NewLambdaFromEnv(ctx context.Context, prefix, environment string) (*Lambda, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return NewLambda(lambda.NewFromConfig(cfg), prefix, environment), nil
}

// normalizeLang maps BCP 47 style tags (es-MX) to the model form (es_MX).
func normalizeLang(lang string) string {
	return strings.ReplaceAll(strings.TrimSpace(lang), "-", "_")
}

func isSupported(lang string) bool {
	return romanceLanguages[lang] || lang == "de" || lang == "en"
}

// IsValidPair checks if a language pair can be translated.
func IsValidPair(source, target string) bool {
	source, target = normalizeLang(source), normalizeLang(target)
	return isSupported(source) && isSupported(target) && source != target
}

// SupportedLanguages returns the sorted language codes the provider handles.
func SupportedLanguages() []string {
	langs := make([]string, 0, len(romanceLanguages)+2)
	for lang := range romanceLanguages {
		langs = append(langs, lang)
	}
	langs = append(langs, "de", "en")
	sort.Strings(langs)
	return langs
}

// route returns the invocations needed for source→target, in order.
func route(source, target string) []lambdaStep {
	toEnglish := func(lang string) (lambdaStep, bool) {
		switch {
		case romanceLanguages[lang]:
			return lambdaStep{model: "romance-en"}, true
		case lang == "de":
			return lambdaStep{model: "de-en"}, true
		}
		return lambdaStep{}, false
	}
	fromEnglish := func(lang string) (lambdaStep, bool) {
		switch {
		case romanceLanguages[lang]:
			return lambdaStep{model: "en-romance", targetLang: lang}, true
		case lang == "de":
			return lambdaStep{model: "en-de"}, true
		}
		return lambdaStep{}, false
	}

	if source == target {
		return nil
	}
	if source == "en" {
		if step, ok := fromEnglish(target); ok {
			return []lambdaStep{step}
		}
		return nil
	}
	first, ok := toEnglish(source)
	if !ok {
		return nil
	}
	if target == "en" {
		return []lambdaStep{first}
	}
	second, ok := fromEnglish(target)
	if !ok {
		return nil
	}
	return []lambdaStep{first, second}
}

func (l *Lambda) functionName(model string) string {
	name := l.prefix + "-" + model
	if l.environment != "" {
		name += "-" + l.environment
	}
	return name
}

// Translate translates one text.
func (l *Lambda) Translate(ctx context.Context, text, source, target string) (string, error) {
	results, err := l.TranslateChunks(ctx, source, target, [][]string{{text}})
	if err != nil {
		return "", err
	}
	if len(results) == 0 || len(results[0]) == 0 {
		return "", errors.New("translator returned no translation")
	}
	return results[0][0], nil
}

// TranslateChunks translates all chunks, chaining invocations for pairs that
// pivot through English.
func (l *Lambda) TranslateChunks(ctx context.Context, source, target string, chunks [][]string) ([][]string, error) {
	if len(chunks) == 0 {
		return [][]string{}, nil
	}

	steps := route(normalizeLang(source), normalizeLang(target))
	if steps == nil {
		return nil, fmt.Errorf("unsupported language pair: %s-%s", source, target)
	}

	current := chunks
	for i, step := range steps {
		result, err := l.invoke(ctx, l.functionName(step.model), step.targetLang, current)
		if err != nil {
			return nil, fmt.Errorf("step %d (%s) failed: %w", i+1, step.model, err)
		}
		current = result
	}
	return current, nil
}

func (l *Lambda) invoke(ctx context.Context, functionName, targetLang string, chunks [][]string) ([][]string, error) {
	if l.client == nil {
		return nil, errors.New("lambda client is not configured")
	}

	payload, err := json.Marshal(lambdaRequest{Chunks: chunks, TargetLang: targetLang})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	result, err := l.client.Invoke(ctx, &lambda.InvokeInput{
		FunctionName: aws.String(functionName),
		Payload:      payload,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to invoke %s: %w", functionName, err)
	}
	if result.FunctionError != nil {
		return nil, fmt.Errorf("lambda error: %s", aws.ToString(result.FunctionError))
	}

	var resp lambdaResponse
	if err := json.Unmarshal(result.Payload, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if resp.Error != "" {
		return nil, fmt.Errorf("translator error: %s", resp.Error)
	}
	if len(resp.Translations) != len(chunks) {
		return nil, fmt.Errorf("translator returned %d chunks, want %d", len(resp.Translations), len(chunks))
	}
	return resp.Translations, nil
}
