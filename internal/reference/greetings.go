package reference

func greekGreetings() []Word {
	return []Word{
		{Word: "γεια σας", Translation: "hello (formal)", Transliteration: "ya sas", Context: "Use when greeting someone formally, like a teacher or elderly person", Category: "formal greeting"},
		{Word: "γεια σου", Translation: "hello (informal)", Transliteration: "ya soo", Context: "Use when greeting friends or people you know well", Category: "informal greeting"},
		{Word: "καλημέρα σας", Translation: "good morning (formal)", Transliteration: "kalimera sas", Context: "Formal morning greeting, used until around noon", Category: "formal greeting"},
		{Word: "καλημέρα", Translation: "good morning (informal)", Transliteration: "kalimera", Context: "Informal morning greeting, used until around noon", Category: "informal greeting"},
		{Word: "αντίο σας", Translation: "goodbye (formal)", Transliteration: "adio sas", Context: "Formal way to say goodbye", Category: "formal farewell"},
		{Word: "αντίο", Translation: "goodbye (informal)", Transliteration: "adio", Context: "Informal way to say goodbye", Category: "informal farewell"},
		{Word: "τα λέμε", Translation: "see you (informal)", Transliteration: "ta leme", Context: "Casual way to say goodbye, literally means 'we'll talk'", Category: "slang farewell"},
		{Word: "έλα", Translation: "hey (very informal)", Transliteration: "ela", Context: "Very casual greeting among close friends", Category: "slang greeting"},
		{Word: "γειά μας", Translation: "cheers/hi everyone (informal)", Transliteration: "ya mas", Context: "Casual group greeting or toast", Category: "slang greeting"},
		{Word: "καλό βράδυ", Translation: "good evening", Transliteration: "kalo vradi", Context: "Evening farewell, can be both formal and informal", Category: "neutral farewell"},
	}
}
