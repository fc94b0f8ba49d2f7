package i18n

import (
	"testing"

	"github.com/example/agrimart/pkg/models"
)

func TestT_ResolvesPerLanguage(t *testing.T) {
	en := T(models.LanguageEnglish, MsgOutOfStock)
	hi := T(models.LanguageHindi, MsgOutOfStock)
	mr := T(models.LanguageMarathi, MsgOutOfStock)

	if en == "" || hi == "" || mr == "" {
		t.Fatal("Expected a translation in every language")
	}
	if en == hi || en == mr {
		t.Error("Expected distinct translations per language")
	}
}

func TestT_FallsBackToEnglish(t *testing.T) {
	if got := T("fr", MsgOrderPlaced); got != T(models.LanguageEnglish, MsgOrderPlaced) {
		t.Errorf("Expected English fallback, got %q", got)
	}
}

func TestT_UnknownKeyReturnsKey(t *testing.T) {
	if got := T(models.LanguageEnglish, "noSuchKey"); got != "noSuchKey" {
		t.Errorf("Expected key echo for unknown key, got %q", got)
	}
}
