package reference

func greekVisuals() map[string]VisualHint {
	return map[string]VisualHint{
		"ήλιος":        {Hint: "A golden sun warming your face", Visualization: "Picture a bright, golden sun (ήλιος) warming your face with its rays"},
		"φεγγάρι":      {Hint: "A silver crescent over the sea", Visualization: "Imagine a glowing crescent moon (φεγγάρι) casting silver light on a calm sea"},
		"αστέρι":       {Hint: "A star pulsing with colors", Visualization: "Visualize a twinkling star (αστέρι) pulsing with different colors in the night sky"},
		"ουρανός":      {Hint: "An endless blue sky", Visualization: "See a vast, blue sky (ουρανός) stretching endlessly above you"},
		"σύννεφο":      {Hint: "A cloud shaped like a rabbit", Visualization: "Picture a fluffy white cloud (σύννεφο) shaped like a playful rabbit"},
		"βροχή":        {Hint: "Raindrops rippling a pond", Visualization: "Imagine gentle rain (βροχή) creating ripples in a quiet pond"},
		"χιόνι":        {Hint: "Snowflakes dancing down", Visualization: "See soft, white snowflakes (χιόνι) dancing as they fall from the sky"},
		"άνεμος":       {Hint: "A breeze in your hair", Visualization: "Feel a refreshing breeze (άνεμος) rustling through your hair"},
		"λουλούδι":     {Hint: "A red flower swaying", Visualization: "Picture a bright red flower (λουλούδι) swaying in the wind"},
		"δέντρο":       {Hint: "A tall oak full of leaves", Visualization: "Imagine a tall oak tree (δέντρο) with thick roots and a crown of green leaves"},
		"πουλί":        {Hint: "A bird on a branch", Visualization: "See a small blue bird (πουλί) singing on a branch at sunrise"},
		"πεταλούδα":    {Hint: "A butterfly with painted wings", Visualization: "Picture a butterfly (πεταλούδα) opening wings painted orange and black"},
		"μέλισσα":      {Hint: "A bee buzzing over honey", Visualization: "Imagine a busy bee (μέλισσα) buzzing over a jar of golden honey"},
		"μήλο":         {Hint: "A shiny red apple", Visualization: "See a shiny red apple (μήλο) hanging from a branch, ready to pick"},
		"ζούγκλα":      {Hint: "A dense green jungle", Visualization: "Imagine a dense jungle (ζούγκλα) filled with exotic plants"},
		"κήπος":        {Hint: "A garden in bloom", Visualization: "Visualize a tranquil garden (κήπος) blooming with flowers"},
		"παλάτι":       {Hint: "A grand palace", Visualization: "See a grand palace (παλάτι) standing proudly"},
		"λίμνη":        {Hint: "A lake mirroring the sky", Visualization: "Visualize a calm, serene lake (λίμνη) reflecting the sky"},
		"ουράνιο τόξο": {Hint: "A rainbow arching overhead", Visualization: "Picture a vibrant rainbow (ουράνιο τόξο) arching across the sky"},
	}
}
