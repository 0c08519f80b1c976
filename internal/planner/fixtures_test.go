package planner

func sampleCatalog() []RawDestination {
	return []RawDestination{
		{ID: "w1", Name: "Warung Makan Enak", Category: "Kuliner", Price: "50000", Location: "Jakarta Selatan", IndoorOutdoor: "indoor", Description: "Authentic Indonesian food"},
		{ID: "t1", Name: "Taman Mini Indonesia Indah", Category: "Rekreasi", Price: "100000", Location: "Jakarta Timur", IndoorOutdoor: "outdoor", Description: "Cultural park"},
		{ID: "m1", Name: "Museum Nasional", Category: "Sejarah", Price: "50000", Location: "Jakarta Pusat", IndoorOutdoor: "indoor", Description: "National museum"},
		{ID: "h1", Name: "Hutan Kota", Category: "Alam", Price: "25000", Location: "Jakarta Utara", IndoorOutdoor: "outdoor", Description: "City forest, great to relax"},
		{ID: "k1", Name: "Kopi Kenangan", Category: "Cafe", Price: "30000", Location: "Jakarta Barat", IndoorOutdoor: "indoor", Description: "Cozy and instagrammable coffee shop"},
	}
}

func dest(id string, category Category, area Area) Destination {
	return Destination{
		ID:           id,
		Label:        "Place " + id,
		Category:     category,
		CategoryName: string(category),
		Price:        "Rp 10.000",
		Amount:       10000,
		Location:     area.Label(),
		Area:         area,
		Setting:      EnvironmentBoth,
	}
}

func ids(dests []Destination) []string {
	out := make([]string, 0, len(dests))
	for _, d := range dests {
		out = append(out, d.ID)
	}
	return out
}
