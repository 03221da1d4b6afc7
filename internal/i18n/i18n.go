package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		// Fallback to default locale
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// GetLocale extracts the locale from the gin context.
// Checks Accept-Language header and falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// Parse Accept-Language header (e.g., "en-US,en;q=0.9,pt;q=0.8")
	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(strings.Split(parts[0], ";")[0])
		// Extract base language (e.g., "en" from "en-US")
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		// Normalize to lowercase
		lang = strings.ToLower(lang)
		if _, ok := GetTranslator().messages[lang]; ok {
			return lang
		}
	}

	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			"error.invalid_request":         "Invalid request",
			"error.invalid_request_body":    "Invalid request body",
			"error.internal_error":          "An unexpected error occurred",
			"error.unauthorized":            "Unauthorized",
			"error.invalid_credentials":     "Invalid cashier or PIN",
			"error.login_disabled":          "Cashier login is not configured",
			"error.api_key_required":        "API key is required",
			"error.invalid_api_key":         "Invalid API key",
			"error.not_found":               "Not found",
			"error.rate_limit_exceeded":     "Too many requests, please try again later",
			"error.conflict":                "Conflict",
			"error.invalid_token":           "Invalid or expired token",
			"error.token_required":          "Authentication token is required",
			"error.service_unavailable":     "Service temporarily unavailable",
			"error.product_not_found":       "Product is not on the menu",
			"error.validation.product_name": "name: must not be blank",
			"error.validation.row":          "row: must be a non-negative integer",
			"error.validation.query":        "Invalid query parameters",
			"error.row_out_of_range":        "Row does not exist in the cart",
			"error.unknown_column":          "Unknown cart column",
			"error.checkout_open":           "A checkout is open; close it before changing the cart",
			"error.no_checkout":             "No checkout is open",
			"error.invalid_transition":      "Action not allowed in the current checkout state",
			"error.close_disabled":          "Payment is processing; the checkout cannot be closed yet",
		},
		"pt": {
			"error.invalid_request":         "Requisição inválida",
			"error.invalid_request_body":    "Corpo da requisição inválido",
			"error.internal_error":          "Ocorreu um erro inesperado",
			"error.unauthorized":            "Não autorizado",
			"error.invalid_credentials":     "Operador ou PIN inválido",
			"error.login_disabled":          "Login de operador não configurado",
			"error.api_key_required":        "Chave de API é obrigatória",
			"error.invalid_api_key":         "Chave de API inválida",
			"error.not_found":               "Não encontrado",
			"error.rate_limit_exceeded":     "Muitas requisições, tente novamente mais tarde",
			"error.conflict":                "Conflito",
			"error.invalid_token":           "Token inválido ou expirado",
			"error.token_required":          "Token de autenticação é obrigatório",
			"error.service_unavailable":     "Serviço temporariamente indisponível",
			"error.product_not_found":       "Produto não está no cardápio",
			"error.validation.product_name": "name: não pode ser vazio",
			"error.validation.row":          "row: deve ser um inteiro não negativo",
			"error.validation.query":        "Parâmetros de consulta inválidos",
			"error.row_out_of_range":        "Linha não existe no carrinho",
			"error.unknown_column":          "Coluna do carrinho desconhecida",
			"error.checkout_open":           "Há um pagamento aberto; feche-o antes de alterar o carrinho",
			"error.no_checkout":             "Nenhum pagamento aberto",
			"error.invalid_transition":      "Ação não permitida no estado atual do pagamento",
			"error.close_disabled":          "Pagamento em processamento; não é possível fechar ainda",
		},
		"nl": {
			"error.invalid_request":         "Ongeldig verzoek",
			"error.invalid_request_body":    "Ongeldige aanvraag body",
			"error.internal_error":          "Er is een onverwachte fout opgetreden",
			"error.unauthorized":            "Niet geautoriseerd",
			"error.invalid_credentials":     "Ongeldige kassier of pincode",
			"error.login_disabled":          "Kassierlogin is niet geconfigureerd",
			"error.api_key_required":        "API-sleutel is vereist",
			"error.invalid_api_key":         "Ongeldige API-sleutel",
			"error.not_found":               "Niet gevonden",
			"error.rate_limit_exceeded":     "Te veel verzoeken, probeer het later opnieuw",
			"error.conflict":                "Conflict",
			"error.invalid_token":           "Ongeldig of verlopen token",
			"error.token_required":          "Authenticatietoken is vereist",
			"error.service_unavailable":     "Dienst tijdelijk niet beschikbaar",
			"error.product_not_found":       "Product staat niet op het menu",
			"error.validation.product_name": "name: mag niet leeg zijn",
			"error.validation.row":          "row: moet een niet-negatief geheel getal zijn",
			"error.validation.query":        "Ongeldige queryparameters",
			"error.row_out_of_range":        "Rij bestaat niet in de winkelwagen",
			"error.unknown_column":          "Onbekende kolom",
			"error.checkout_open":           "Er is een afrekening open; sluit deze voordat u de winkelwagen wijzigt",
			"error.no_checkout":             "Geen afrekening open",
			"error.invalid_transition":      "Actie niet toegestaan in de huidige status van de afrekening",
			"error.close_disabled":          "Betaling wordt verwerkt; de afrekening kan nog niet worden gesloten",
		},
	}
}
