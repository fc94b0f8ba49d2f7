// Package i18n holds the static en/hi/mr string table for user-facing
// messages. There is deliberately no catalog machinery behind it.
package i18n

import "github.com/example/agrimart/pkg/models"

// Message keys.
const (
	MsgInvalidCredentials = "invalidCreds"
	MsgUserExists         = "userExists"
	MsgPasswordReq        = "passwordReq"
	MsgMissingProfile     = "missingProfile"
	MsgOutOfStock         = "outOfStock"
	MsgOrderPlaced        = "orderPlaced"
	MsgProfileSaved       = "profileSaved"
)

var translations = map[models.Language]map[string]string{
	models.LanguageEnglish: {
		MsgInvalidCredentials: "Invalid mobile number, password or role.",
		MsgUserExists:         "This mobile number is already registered.",
		MsgPasswordReq:        "Password must be at least 6 characters and contain a letter and a digit.",
		MsgMissingProfile:     "Please complete your profile first to place an order.",
		MsgOutOfStock:         "This product is currently out of stock.",
		MsgOrderPlaced:        "Order placed successfully!",
		MsgProfileSaved:       "Profile saved successfully!",
	},
	models.LanguageHindi: {
		MsgInvalidCredentials: "मोबाइल नंबर, पासवर्ड या भूमिका गलत है।",
		MsgUserExists:         "यह मोबाइल नंबर पहले से पंजीकृत है।",
		MsgPasswordReq:        "पासवर्ड कम से कम 6 अक्षरों का होना चाहिए जिसमें एक अक्षर और एक अंक हो।",
		MsgMissingProfile:     "ऑर्डर देने से पहले कृपया अपनी प्रोफ़ाइल पूरी करें।",
		MsgOutOfStock:         "यह उत्पाद अभी स्टॉक में नहीं है।",
		MsgOrderPlaced:        "ऑर्डर सफलतापूर्वक दिया गया!",
		MsgProfileSaved:       "प्रोफ़ाइल सहेजी गई!",
	},
	models.LanguageMarathi: {
		MsgInvalidCredentials: "मोबाईल क्रमांक, पासवर्ड किंवा भूमिका चुकीची आहे.",
		MsgUserExists:         "हा मोबाईल क्रमांक आधीच नोंदणीकृत आहे.",
		MsgPasswordReq:        "पासवर्ड किमान 6 अक्षरांचा असावा, ज्यात एक अक्षर आणि एक अंक असावा.",
		MsgMissingProfile:     "ऑर्डर देण्यापूर्वी कृपया आपली प्रोफाइल पूर्ण करा.",
		MsgOutOfStock:         "हे उत्पादन सध्या स्टॉकमध्ये नाही.",
		MsgOrderPlaced:        "ऑर्डर यशस्वीरित्या दिली!",
		MsgProfileSaved:       "प्रोफाइल जतन केली!",
	},
}

// T resolves a message key for a language, falling back to English and then
// to the key itself.
func T(lang models.Language, key string) string {
	if msgs, ok := translations[lang]; ok {
		if msg, ok := msgs[key]; ok {
			return msg
		}
	}
	if msg, ok := translations[models.LanguageEnglish][key]; ok {
		return msg
	}
	return key
}
