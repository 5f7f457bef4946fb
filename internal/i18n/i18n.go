// Package i18n holds the user-facing message catalog.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys.
const (
	MissingParams = "error.missing_params"
	NoResults     = "error.no_results"
	SearchFailed  = "error.search_failed"
	ObjectFailed  = "error.object_failed"
	IndexFailed   = "error.index_failed"
	BadObjectID   = "error.bad_object_id"
	ObjectMissing = "error.object_missing"

	IndexTitle       = "index.title"
	IndexDepartments = "index.departments"
	SearchKeyword    = "search.keyword"
	SearchLocation   = "search.location"
	SearchDepartment = "search.department"
	SearchAny        = "search.any_department"
	SearchSubmit     = "search.submit"

	ObjectCulture    = "object.culture"
	ObjectDynasty    = "object.dynasty"
	ObjectPeriod     = "object.period"
	ObjectDate       = "object.date"
	ObjectMedium     = "object.medium"
	ObjectArtist     = "object.artist"
	ObjectDepartment = "object.department"
	ObjectImages     = "object.additional_images"
	ObjectSource     = "object.source"
	Unknown          = "object.unknown"
	Back             = "nav.back"
)

var supportedTags = []language.Tag{
	language.Spanish,
	language.English,
}

var tagMatcher = language.NewMatcher(supportedTags)

// Default returns the default language tag.
func Default() language.Tag {
	return language.Spanish
}

// Match resolves a language name to the closest supported tag.
// Unknown or empty names resolve to Default.
func Match(lang string) language.Tag {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return Default()
	}
	parsed, err := language.Parse(lang)
	if err != nil {
		return Default()
	}
	_, idx, conf := tagMatcher.Match(parsed)
	if conf == language.No {
		return Default()
	}
	return supportedTags[idx]
}

// Printer returns a message printer for the supplied language name.
func Printer(lang string) *message.Printer {
	return message.NewPrinter(Match(lang))
}
