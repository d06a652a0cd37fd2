package reference

func supportedLanguages() []Language {
	return []Language{
		{Code: "el", Name: "Greek", NativeName: "Ελληνικά", Flag: "🇬🇷", RTL: false},
	}
}

func greekStarterPhrases() []StarterPhrase {
	return []StarterPhrase{
		{Text: "Γεια σας", Transliteration: "Yia sas", Translation: "Hello", Level: "A1", Category: "Greetings", LessonTitle: "Basic Greetings"},
		{Text: "Καλημέρα", Transliteration: "Kalimera", Translation: "Good morning", Level: "A1", Category: "Greetings", LessonTitle: "Basic Greetings"},
		{Text: "Πώς είστε;", Transliteration: "Pos iste?", Translation: "How are you?", Level: "A1", Category: "Greetings", LessonTitle: "Basic Greetings"},
		{Text: "Με λένε", Transliteration: "Me lene", Translation: "My name is", Level: "A1", Category: "Introductions"},
		{Text: "Ευχαριστώ", Transliteration: "Efharisto", Translation: "Thank you", Level: "A1", Category: "Common Phrases"},
	}
}
