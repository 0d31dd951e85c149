// Package survey builds the post-victory contact message and the WhatsApp
// deep link that carries it.
package survey

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrIncomplete is returned when a required field is empty.
var ErrIncomplete = errors.New("survey: all fields are required")

// DNIMaxLen is the maximum length of the national id field.
const DNIMaxLen = 8

// DefaultNumber is the WhatsApp number contacts are sent to.
const DefaultNumber = "51999999999"

// Form holds the four contact fields.
type Form struct {
	Name     string
	DNI      string
	Phone    string
	District string
}

// Normalized returns the form with fields trimmed and the DNI truncated.
func (f Form) Normalized() Form {
	dni := []rune(strings.TrimSpace(f.DNI))
	if len(dni) > DNIMaxLen {
		dni = dni[:DNIMaxLen]
	}
	return Form{
		Name:     strings.TrimSpace(f.Name),
		DNI:      string(dni),
		Phone:    strings.TrimSpace(f.Phone),
		District: strings.TrimSpace(f.District),
	}
}

// Validate reports every missing field.
func (f Form) Validate() error {
	n := f.Normalized()
	var missing []string
	for _, field := range []struct{ name, value string }{
		{"nombre", n.Name},
		{"dni", n.DNI},
		{"telefono", n.Phone},
		{"distrito", n.District},
	} {
		if field.value == "" {
			missing = append(missing, field.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrIncomplete, strings.Join(missing, ", "))
	}
	return nil
}

// Message returns the prefilled registration text.
func (f Form) Message() string {
	n := f.Normalized()
	return "🎮 ¡NUEVO GANADOR DEL JUEGO CEVATUR!\n\n" +
		"👤 Nombre: " + n.Name + "\n" +
		"🆔 DNI: " + n.DNI + "\n" +
		"📞 Teléfono: " + n.Phone + "\n" +
		"📍 Distrito: " + n.District + "\n\n" +
		"¡Quiero inscribirme en CEVATUR!"
}

// DeepLink validates the form and returns the wa.me link for number.
// An empty number uses DefaultNumber.
func (f Form) DeepLink(number string) (string, error) {
	if err := f.Validate(); err != nil {
		return "", err
	}
	if number == "" {
		number = DefaultNumber
	}
	return "https://wa.me/" + number + "?text=" + Encode(f.Message()), nil
}

// componentKeep restores the characters a URI component leaves as-is.
var componentKeep = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// Encode percent-encodes s as a URI component: UTF-8 bytes are escaped,
// spaces become %20 and A-Z a-z 0-9 - _ . ! ~ * ' ( ) pass through.
func Encode(s string) string {
	return componentKeep.Replace(url.QueryEscape(s))
}
