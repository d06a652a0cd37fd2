package reference

func greekMnemonics() []Mnemonic {
	return []Mnemonic{
		{Word: "καλά", Translation: "good/well", Transliteration: "kala", Mnemonic: "Think of a CALm person saying 'Ah!' - they're feeling good (kala)"},
		{Word: "τώρα", Translation: "now", Transliteration: "tora", Mnemonic: "Think of a TORnado - it's happening right NOW (tora)"},
		{Word: "εδώ", Translation: "here", Transliteration: "edo", Mnemonic: "Imagine EDdie saying 'Oh!' - he's right HERE (edo)"},
		{Word: "μόνο", Translation: "only", Transliteration: "mono", Mnemonic: "Think of MONO sound - there's ONLY one channel (mono)"},
		{Word: "κάθε", Translation: "every", Transliteration: "kathe", Mnemonic: "Imagine a CAT saying 'Hey!' to EVERY other cat (kathe)"},
		{Word: "μέρα", Translation: "day", Transliteration: "mera", Mnemonic: "Think of a MERRY morning - it's a new DAY (mera)"},
		{Word: "ξέρω", Translation: "know", Transliteration: "ksero", Mnemonic: "Like a XEROX copy - you KNOW exactly what's on it (ksero)"},
		{Word: "πάλι", Translation: "again", Transliteration: "pali", Mnemonic: "Think of your PAL coming AGAIN (pali)"},
		{Word: "μετά", Translation: "after", Transliteration: "meta", Mnemonic: "Think META data comes AFTER the main data (meta)"},
		{Word: "πριν", Translation: "before", Transliteration: "prin", Mnemonic: "Think of a PRINCE who always comes BEFORE others (prin)"},
	}
}
