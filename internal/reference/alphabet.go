package reference

func greekAlphabet() []Letter {
	return []Letter{
		{Letter: "Α α", Name: "alpha", Transliteration: "a", Pronunciation: "ah", ExampleWord: "αγάπη (agapi) - love"},
		{Letter: "Β β", Name: "beta", Transliteration: "v", Pronunciation: "v", ExampleWord: "βιβλίο (vivlio) - book"},
		{Letter: "Γ γ", Name: "gamma", Transliteration: "g", Pronunciation: "gh", ExampleWord: "γάτα (gata) - cat"},
		{Letter: "Δ δ", Name: "delta", Transliteration: "d", Pronunciation: "th", ExampleWord: "δρόμος (dromos) - road"},
		{Letter: "Ε ε", Name: "epsilon", Transliteration: "e", Pronunciation: "eh", ExampleWord: "εγώ (ego) - I"},
		{Letter: "Ζ ζ", Name: "zeta", Transliteration: "z", Pronunciation: "z", ExampleWord: "ζωή (zoi) - life"},
		{Letter: "Η η", Name: "eta", Transliteration: "i", Pronunciation: "ee", ExampleWord: "ήλιος (ilios) - sun"},
		{Letter: "Θ θ", Name: "theta", Transliteration: "th", Pronunciation: "th", ExampleWord: "θάλασσα (thalassa) - sea"},
		{Letter: "Ι ι", Name: "iota", Transliteration: "i", Pronunciation: "ee", ExampleWord: "ιδέα (idea) - idea"},
		{Letter: "Κ κ", Name: "kappa", Transliteration: "k", Pronunciation: "k", ExampleWord: "καλός (kalos) - good"},
		{Letter: "Λ λ", Name: "lambda", Transliteration: "l", Pronunciation: "l", ExampleWord: "λόγος (logos) - word"},
		{Letter: "Μ μ", Name: "mu", Transliteration: "m", Pronunciation: "m", ExampleWord: "μητέρα (mitera) - mother"},
		{Letter: "Ν ν", Name: "nu", Transliteration: "n", Pronunciation: "n", ExampleWord: "νερό (nero) - water"},
		{Letter: "Ξ ξ", Name: "xi", Transliteration: "x", Pronunciation: "ks", ExampleWord: "ξύλο (ksulo) - wood"},
		{Letter: "Ο ο", Name: "omicron", Transliteration: "o", Pronunciation: "oh", ExampleWord: "όνομα (onoma) - name"},
		{Letter: "Π π", Name: "pi", Transliteration: "p", Pronunciation: "p", ExampleWord: "πατέρας (pateras) - father"},
		{Letter: "Ρ ρ", Name: "rho", Transliteration: "r", Pronunciation: "r", ExampleWord: "ρολόι (roloi) - clock"},
		{Letter: "Σ σ ς", Name: "sigma", Transliteration: "s", Pronunciation: "s", ExampleWord: "σπίτι (spiti) - house"},
		{Letter: "Τ τ", Name: "tau", Transliteration: "t", Pronunciation: "t", ExampleWord: "τραπέζι (trapezi) - table"},
		{Letter: "Υ υ", Name: "upsilon", Transliteration: "y", Pronunciation: "ee", ExampleWord: "ύπνος (ipnos) - sleep"},
		{Letter: "Φ φ", Name: "phi", Transliteration: "f", Pronunciation: "f", ExampleWord: "φίλος (filos) - friend"},
		{Letter: "Χ χ", Name: "chi", Transliteration: "ch", Pronunciation: "h", ExampleWord: "χέρι (heri) - hand"},
		{Letter: "Ψ ψ", Name: "psi", Transliteration: "ps", Pronunciation: "ps", ExampleWord: "ψωμί (psomi) - bread"},
		{Letter: "Ω ω", Name: "omega", Transliteration: "o", Pronunciation: "oh", ExampleWord: "ώρα (ora) - hour"},
	}
}
