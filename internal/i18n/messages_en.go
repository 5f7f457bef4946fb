package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	// Errors
	message.SetString(lang, MissingParams, "Enter search parameters.")
	message.SetString(lang, NoResults, "No results found for the search.")
	message.SetString(lang, SearchFailed, "Error fetching data.")
	message.SetString(lang, ObjectFailed, "Internal server error")
	message.SetString(lang, IndexFailed, "Server error")
	message.SetString(lang, BadObjectID, "Invalid object identifier.")
	message.SetString(lang, ObjectMissing, "Object not found.")

	// Index page
	message.SetString(lang, IndexTitle, "Metropolitan Museum of Art")
	message.SetString(lang, IndexDepartments, "Departments")
	message.SetString(lang, SearchKeyword, "Keyword")
	message.SetString(lang, SearchLocation, "Location")
	message.SetString(lang, SearchDepartment, "Department")
	message.SetString(lang, SearchAny, "All")
	message.SetString(lang, SearchSubmit, "Search")

	// Object page
	message.SetString(lang, ObjectCulture, "Culture")
	message.SetString(lang, ObjectDynasty, "Dynasty")
	message.SetString(lang, ObjectPeriod, "Period")
	message.SetString(lang, ObjectDate, "Date")
	message.SetString(lang, ObjectMedium, "Medium")
	message.SetString(lang, ObjectArtist, "Artist")
	message.SetString(lang, ObjectDepartment, "Department")
	message.SetString(lang, ObjectImages, "Additional images")
	message.SetString(lang, ObjectSource, "View at the museum")
	message.SetString(lang, Unknown, "Unknown")
	message.SetString(lang, Back, "Back")
}
