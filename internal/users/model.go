package users

const DefaultLanguage = "uz"

// supported bot languages; everything else is rejected at the boundary.
var supportedLanguages = map[string]bool{
	"uz": true,
	"ru": true,
	"en": true,
}

func ValidLanguage(lang string) bool {
	return supportedLanguages[lang]
}

type SetLanguageRequest struct {
	TelegramID int64  `json:"telegram_id"`
	Language   string `json:"language"`
}
