// Package i18n translates UI strings. English strings are the keys.
package i18n

import (
	"os"
	"strings"
	"sync"

	"github.com/jeandeaual/go-locale"
)

// EnvLang forces the UI language regardless of settings and system locale.
const EnvLang = "TICKS_LANG"

var (
	mu   sync.RWMutex
	lang = "en"
)

var translations = map[string]map[string]string{
	"Items": {
		"pl": "Elementy",
		"de": "Elemente",
	},
	"Active timers": {
		"pl": "Aktywne liczniki",
		"de": "Aktive Timer",
	},
	"Name": {
		"pl": "Nazwa",
		"de": "Name",
	},
	"Type": {
		"pl": "Typ",
		"de": "Typ",
	},
	"Action": {
		"pl": "Akcja",
		"de": "Aktion",
	},
	"Timeout (seconds)": {
		"pl": "Limit (sekundy)",
		"de": "Dauer (Sekunden)",
	},
	"Remaining": {
		"pl": "Pozostało",
		"de": "Verbleibend",
	},
	"ETA": {
		"pl": "Koniec",
		"de": "Ende",
	},
	"New item": {
		"pl": "Nowy element",
		"de": "Neues Element",
	},
	"Configure Item": {
		"pl": "Konfiguracja elementu",
		"de": "Element konfigurieren",
	},
	"Remove": {
		"pl": "Usuń",
		"de": "Entfernen",
	},
	"Reset": {
		"pl": "Resetuj",
		"de": "Zurücksetzen",
	},
	"Dismiss": {
		"pl": "Zamknij",
		"de": "Schließen",
	},
	"Time is up": {
		"pl": "Czas minął",
		"de": "Die Zeit ist um",
	},
	"Preferences": {
		"pl": "Ustawienia",
		"de": "Einstellungen",
	},
	"Save": {
		"pl": "Zapisz",
		"de": "Speichern",
	},
	"Cancel": {
		"pl": "Anuluj",
		"de": "Abbrechen",
	},
	"Show": {
		"pl": "Pokaż",
		"de": "Anzeigen",
	},
	"Open items...": {
		"pl": "Otwórz elementy...",
		"de": "Elemente öffnen...",
	},
	"Save items...": {
		"pl": "Zapisz elementy...",
		"de": "Elemente speichern...",
	},
	"File": {
		"pl": "Plik",
		"de": "Datei",
	},
	"Help": {
		"pl": "Pomoc",
		"de": "Hilfe",
	},
	"About": {
		"pl": "O programie",
		"de": "Über",
	},
	"Drag an item onto the timers panel to start a countdown.": {
		"pl": "Przeciągnij element na panel liczników, aby rozpocząć odliczanie.",
		"de": "Ziehe ein Element auf die Timer-Ansicht, um einen Countdown zu starten.",
	},
	"Quit": {
		"pl": "Zakończ",
		"de": "Beenden",
	},
	"Drag an item here to start a timer": {
		"pl": "Przeciągnij element tutaj, aby uruchomić licznik",
		"de": "Element hierher ziehen, um einen Timer zu starten",
	},
	"Tick interval (ms)": {
		"pl": "Interwał odświeżania (ms)",
		"de": "Aktualisierungsintervall (ms)",
	},
	"Play sound": {
		"pl": "Odtwarzaj dźwięk",
		"de": "Ton abspielen",
	},
	"Desktop notifications": {
		"pl": "Powiadomienia systemowe",
		"de": "Desktop-Benachrichtigungen",
	},
	"Show alert window": {
		"pl": "Pokaż okno alertu",
		"de": "Hinweisfenster anzeigen",
	},
	"Language (restart required)": {
		"pl": "Język (wymaga restartu)",
		"de": "Sprache (Neustart erforderlich)",
	},
	"%d running / %d done": {
		"pl": "%d aktywne / %d zakończone",
		"de": "%d laufend / %d fertig",
	},
	"Failed to load configuration. Using empty configuration.": {
		"pl": "Nie udało się wczytać konfiguracji. Użyto pustej konfiguracji.",
		"de": "Konfiguration konnte nicht geladen werden. Leere Konfiguration wird verwendet.",
	},
}

// Supported lists the language codes with translations.
func Supported() []string {
	return []string{"en", "pl", "de"}
}

// Detect picks the UI language: TICKS_LANG, then preferred, then the first
// system locale. Unsupported languages fall back to English.
func Detect(preferred string) string {
	if forced := strings.TrimSpace(os.Getenv(EnvLang)); forced != "" {
		return normalize(forced)
	}
	if preferred = strings.TrimSpace(preferred); preferred != "" {
		return normalize(preferred)
	}
	userLocales, err := locale.GetLocales()
	if err != nil || len(userLocales) == 0 {
		return "en"
	}
	return normalize(userLocales[0])
}

// SetLang selects the active language.
func SetLang(code string) {
	mu.Lock()
	lang = normalize(code)
	mu.Unlock()
}

// Lang returns the active language.
func Lang() string {
	mu.RLock()
	defer mu.RUnlock()
	return lang
}

// T translates key into the active language.
func T(key string) string {
	current := Lang()
	if translated, ok := translations[key][current]; ok {
		return translated
	}
	return key
}

func normalize(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	for _, supported := range Supported() {
		if strings.HasPrefix(code, supported) {
			return supported
		}
	}
	return "en"
}
