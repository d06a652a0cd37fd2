package reference

// greekVocabulary lists the hundred most common words, tagged by the lesson
// that practises them.
func greekVocabulary() []Word {
	sr := func(word, translation, translit string) Word {
		return Word{Word: word, Translation: translation, Transliteration: translit, LessonType: LessonTypeSpacedRepetition}
	}
	mn := func(word, translation, translit string) Word {
		return Word{Word: word, Translation: translation, Transliteration: translit, LessonType: LessonTypeMnemonics}
	}
	cx := func(word, translation, translit, context string) Word {
		return Word{Word: word, Translation: translation, Transliteration: translit, Context: context, LessonType: LessonTypeContextual}
	}
	vi := func(word, translation, translit string) Word {
		return Word{Word: word, Translation: translation, Transliteration: translit, LessonType: LessonTypeVisual}
	}

	return []Word{
		sr("και", "and", "kai"),
		sr("είναι", "is/are", "einai"),
		sr("να", "to", "na"),
		sr("το", "the", "to"),
		sr("δεν", "not/don't", "den"),
		sr("η", "the (feminine)", "i"),
		sr("που", "that/which", "pou"),
		sr("θα", "will", "tha"),
		sr("τη", "the", "ti"),
		sr("με", "with/me", "me"),
		sr("σε", "in/at/to", "se"),
		sr("από", "from", "apo"),
		sr("για", "for", "gia"),
		sr("μου", "my/mine", "mou"),
		sr("τι", "what", "ti"),
		sr("αυτό", "this", "afto"),
		sr("στο", "to the", "sto"),
		sr("τον", "the (masculine)", "ton"),
		sr("έχω", "I have", "echo"),
		sr("μια", "a/one (feminine)", "mia"),
		sr("πως", "how", "pos"),
		sr("όλα", "all", "ola"),
		sr("έτσι", "so/like this", "etsi"),
		sr("κάτι", "something", "kati"),
		sr("πολύ", "very/much", "poli"),

		mn("καλά", "good/well", "kala"),
		mn("τώρα", "now", "tora"),
		mn("εδώ", "here", "edo"),
		mn("μόνο", "only", "mono"),
		mn("κάθε", "every", "kathe"),
		mn("μέρα", "day", "mera"),
		mn("ξέρω", "know", "ksero"),
		mn("πάλι", "again", "pali"),
		mn("μετά", "after", "meta"),
		mn("πριν", "before", "prin"),
		mn("πάνω", "up/above", "pano"),
		mn("κάτω", "down/below", "kato"),
		mn("μαζί", "together", "mazi"),
		mn("χωρίς", "without", "horis"),
		mn("ναι", "yes", "ne"),
		mn("όχι", "no", "ohi"),
		mn("ευχαριστώ", "thank you", "efharisto"),
		mn("παρακαλώ", "please/you're welcome", "parakalo"),
		mn("γεια", "hello", "ya"),
		mn("καλημέρα", "good morning", "kalimera"),
		mn("καληνύχτα", "good night", "kalinihta"),
		mn("συγγνώμη", "sorry", "signomi"),
		mn("άνθρωπος", "human/person", "anthropos"),
		mn("φίλος", "friend", "filos"),
		mn("σπίτι", "house", "spiti"),

		cx("νερό", "water", "nero", "At restaurants: First thing to order - 'Ena nero parakalo' (One water please)"),
		cx("ψωμί", "bread", "psomi", "At bakery: Point and say 'Afto to psomi parakalo' (This bread please)"),
		cx("φαγητό", "food", "fayito", "Being hungry: Ask 'Ti fayito ehete?' (What food do you have?)"),
		cx("γάλα", "milk", "gala", "Coffee time: Ask for 'Me gala parakalo' (With milk please)"),
		cx("κρασί", "wine", "krasi", "Dinner time: Order 'Ena krasi parakalo' (One wine please)"),
		cx("καφές", "coffee", "kafes", "Morning ritual: Order 'Ena kafes sketo' (One plain coffee)"),
		cx("τραπέζι", "table", "trapezi", "Dining: Say 'Ela sto trapezi' (Come to the table)"),
		cx("καρέκλα", "chair", "karekla", "Hosting: Offer 'Kathise s'afti tin karekla' (Sit in this chair)"),
		cx("κρεβάτι", "bed", "krevati", "Bedtime: Say 'Pao sto krevati' (I'm going to bed)"),
		cx("πόρτα", "door", "porta", "Welcoming: Point to 'I porta ine eki' (The door is there)"),
		cx("παράθυρο", "window", "parathiro", "Directions: Say 'To parathiro vlepi sti thalassa' (The window faces the sea)"),
		cx("δωμάτιο", "room", "domatio", "House tour: Show 'Afto ine to domatio' (This is the room)"),
		cx("κουζίνα", "kitchen", "kouzina", "Cooking: Say 'I kouzina ine edo' (The kitchen is here)"),
		cx("μπάνιο", "bathroom", "banio", "Morning routine: Say 'Pao sto banio' (I'm going to the bathroom)"),
		cx("δρόμος", "street/road", "dromos", "Directions: Ask 'Pou ine o dromos?' (Where is the street?)"),
		cx("λεωφορείο", "bus", "leoforio", "Transport: Say 'Pao sto leoforio' (I'm going to the bus)"),
		cx("αυτοκίνητο", "car", "aftokinito", ""),
		cx("τρένο", "train", "treno", ""),
		cx("αεροπλάνο", "airplane", "aeroplano", ""),
		cx("θάλασσα", "sea", "thalassa", ""),
		cx("βουνό", "mountain", "vouno", ""),
		cx("πόλη", "city", "poli", ""),
		cx("χωριό", "village", "chorio", ""),
		cx("παραλία", "beach", "paralia", "Travel: Say 'Pao stin paralia' (I'm going to the beach)"),
		cx("δάσος", "forest", "dasos", ""),

		vi("ήλιος", "sun", "ilios"),
		vi("φεγγάρι", "moon", "fengari"),
		vi("αστέρι", "star", "asteri"),
		vi("ουρανός", "sky", "ouranos"),
		vi("σύννεφο", "cloud", "synnefo"),
		vi("βροχή", "rain", "vrochi"),
		vi("χιόνι", "snow", "chioni"),
		vi("άνεμος", "wind", "anemos"),
		vi("λουλούδι", "flower", "louloudi"),
		vi("δέντρο", "tree", "dentro"),
		vi("πουλί", "bird", "pouli"),
		vi("πεταλούδα", "butterfly", "petalouda"),
		vi("μέλισσα", "bee", "melissa"),
		vi("μήλο", "apple", "milo"),
		vi("ζούγκλα", "jungle", "zoungla"),
		vi("κήπος", "garden", "kipos"),
		vi("παλάτι", "palace", "palati"),
		vi("λίμνη", "lake", "limni"),
		vi("ουράνιο τόξο", "rainbow", "ouranio tokso"),
		vi("ψάρι", "fish", "psari"),
		vi("γάτα", "cat", "gata"),
		vi("σκύλος", "dog", "skylos"),
		vi("άλογο", "horse", "alogo"),
		vi("ελέφαντας", "elephant", "elefantas"),
		vi("λιοντάρι", "lion", "liontari"),
	}
}
