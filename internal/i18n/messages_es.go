package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.Spanish

	// Errors
	message.SetString(lang, MissingParams, "Ingrese los parámetros de búsqueda.")
	message.SetString(lang, NoResults, "No se encontraron resultados para la búsqueda.")
	message.SetString(lang, SearchFailed, "Error al buscar datos.")
	message.SetString(lang, ObjectFailed, "Error interno del servidor")
	message.SetString(lang, IndexFailed, "Error en el servidor")
	message.SetString(lang, BadObjectID, "Identificador de objeto inválido.")
	message.SetString(lang, ObjectMissing, "No se encontró el objeto.")

	// Index page
	message.SetString(lang, IndexTitle, "Museo Metropolitano de Arte")
	message.SetString(lang, IndexDepartments, "Departamentos")
	message.SetString(lang, SearchKeyword, "Palabra clave")
	message.SetString(lang, SearchLocation, "Ubicación")
	message.SetString(lang, SearchDepartment, "Departamento")
	message.SetString(lang, SearchAny, "Todos")
	message.SetString(lang, SearchSubmit, "Buscar")

	// Object page
	message.SetString(lang, ObjectCulture, "Cultura")
	message.SetString(lang, ObjectDynasty, "Dinastía")
	message.SetString(lang, ObjectPeriod, "Período")
	message.SetString(lang, ObjectDate, "Fecha")
	message.SetString(lang, ObjectMedium, "Técnica")
	message.SetString(lang, ObjectArtist, "Artista")
	message.SetString(lang, ObjectDepartment, "Departamento")
	message.SetString(lang, ObjectImages, "Imágenes adicionales")
	message.SetString(lang, ObjectSource, "Ver en el museo")
	message.SetString(lang, Unknown, "Desconocida")
	message.SetString(lang, Back, "Volver")
}
