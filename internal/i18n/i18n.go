// Package i18n sources display strings from a flat lookup table. The
// language tag is passed explicitly by callers; there is no current-language
// state in this package.
package i18n

// DefaultLang is the fallback for unknown tags and missing keys.
const DefaultLang = "en"

var tables = map[string]map[string]string{
	"en": {
		"app_title":           "C25K Calendar Creator",
		"plan_title":          "C25K Training Plan",
		"rest_day":            "Rest Day",
		"week":                "Week",
		"day":                 "Day",
		"reminder":            "C25K Reminder",
		"format_ics":          "Calendar format (ICS) for Apple Calendar, Google Calendar, Outlook",
		"format_csv":          "Spreadsheet format for Excel, Google Sheets, Numbers",
		"format_json":         "Structured data format for developers and APIs",
		"format_markdown":     "Printable checklist format",
		"format_apple_health": "CSV shaped for Apple Health workout import",
		"format_strava":       "CSV shaped for Strava activity upload",
		"format_google_fit":   "CSV shaped for Google Fit session import",
		"format_xlsx":         "Excel progress tracker with summary formulas",
	},
	"es": {
		"app_title":  "Creador de Calendario C25K",
		"plan_title": "Plan de Entrenamiento C25K",
		"rest_day":   "Día de Descanso",
		"week":       "Semana",
		"day":        "Día",
		"reminder":   "Recordatorio C25K",
	},
	"de": {
		"app_title":  "C25K Kalender-Ersteller",
		"plan_title": "C25K Trainingsplan",
		"rest_day":   "Ruhetag",
		"week":       "Woche",
		"day":        "Tag",
		"reminder":   "C25K Erinnerung",
	},
}

// Supported lists the language tags with at least a partial table.
func Supported() []string {
	return []string{"en", "es", "de"}
}

// T looks up key in the table for lang, falling back to English for unknown
// tags or untranslated keys. A key missing from every table returns the key
// itself so the gap is visible rather than silent.
func T(lang, key string) string {
	if table, ok := tables[lang]; ok {
		if s, ok := table[key]; ok {
			return s
		}
	}
	if s, ok := tables[DefaultLang][key]; ok {
		return s
	}
	return key
}
