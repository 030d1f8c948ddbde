package catalog

import "github.com/mstrand/cinestream/internal/models"

// Bootstrap data: the static catalog the app is born with. These records are
// never mutated; uploads and admin entries layer on top of them.

var featuredItem = models.Item{
	ID:              "feat-1",
	Title:           "Eclipse of the Mind",
	Synopsis:        "In a future where memories can be traded as currency, a rogue archivist discovers a conspiracy that threatens to erase humanity's collective history. A visual masterpiece of neon and shadow.",
	Rating:          9.2,
	ReleaseYear:     2024,
	Genres:          []string{"Sci-Fi", "Thriller", "Cyberpunk"},
	PosterLocator:   "https://picsum.photos/seed/eclipse/600/900",
	BackdropLocator: "https://picsum.photos/seed/eclipse_wide/1920/1080",
	Cast:            []string{"Elena Vance", "Kaelen Thorne", "Mila Jov"},
	Director:        "Ridley N.",
	DurationLabel:   "2h 14m",
	MatchScore:      98,
	Provenance:      models.ProvenanceCatalog,
}

// fallbackItems render when a category has nothing better to show and feed the
// favorites resolution pool.
var fallbackItems = []models.Item{
	{
		ID:              "m1",
		Title:           "Neon Nights",
		Synopsis:        "A street racer with nothing to lose enters the most dangerous tournament in the underground circuit.",
		Rating:          8.5,
		ReleaseYear:     2023,
		Genres:          []string{"Action", "Crime"},
		PosterLocator:   "https://picsum.photos/seed/neon/400/600",
		BackdropLocator: "https://picsum.photos/seed/neon_wide/1280/720",
		Cast:            []string{"Vin D.", "Paul W."},
		Director:        "Justin L.",
		DurationLabel:   "1h 58m",
		MatchScore:      95,
		Provenance:      models.ProvenanceCatalog,
	},
	{
		ID:              "m2",
		Title:           "The Silent Sea",
		Synopsis:        "A research team stranded on an oceanic planet must survive the depths and what lies beneath.",
		Rating:          7.9,
		ReleaseYear:     2022,
		Genres:          []string{"Sci-Fi", "Horror"},
		PosterLocator:   "https://picsum.photos/seed/sea/400/600",
		BackdropLocator: "https://picsum.photos/seed/sea_wide/1280/720",
		Cast:            []string{"Sarah P.", "John K."},
		Director:        "James C.",
		DurationLabel:   "2h 05m",
		MatchScore:      88,
		Provenance:      models.ProvenanceCatalog,
	},
	{
		ID:              "m3",
		Title:           "Velocity",
		Synopsis:        "A high-stakes heist movie set on a moving bullet train that never stops.",
		Rating:          8.1,
		ReleaseYear:     2024,
		Genres:          []string{"Action", "Thriller"},
		PosterLocator:   "https://picsum.photos/seed/velocity/400/600",
		BackdropLocator: "https://picsum.photos/seed/velocity_wide/1280/720",
		Cast:            []string{"Brad P.", "Sandra B."},
		Director:        "David L.",
		DurationLabel:   "1h 50m",
		MatchScore:      92,
		Provenance:      models.ProvenanceCatalog,
	},
	{
		ID:              "m4",
		Title:           "Forgotten Realms",
		Synopsis:        "An epic fantasy adventure through a world where magic is dying and dragons are myths.",
		Rating:          8.8,
		ReleaseYear:     2023,
		Genres:          []string{"Fantasy", "Adventure"},
		PosterLocator:   "https://picsum.photos/seed/fantasy/400/600",
		BackdropLocator: "https://picsum.photos/seed/fantasy_wide/1280/720",
		Cast:            []string{"Ian M.", "Elijah W."},
		Director:        "Peter J.",
		DurationLabel:   "2h 45m",
		MatchScore:      85,
		Provenance:      models.ProvenanceCatalog,
	},
	{
		ID:              "m5",
		Title:           "Code Red",
		Synopsis:        "A rogue AI takes over a military bunker. One hacker has to break in to shut it down.",
		Rating:          7.5,
		ReleaseYear:     2024,
		Genres:          []string{"Thriller", "Tech"},
		PosterLocator:   "https://picsum.photos/seed/codered/400/600",
		BackdropLocator: "https://picsum.photos/seed/codered_wide/1280/720",
		Cast:            []string{"Rami M.", "Christian S."},
		Director:        "Sam E.",
		DurationLabel:   "1h 40m",
		MatchScore:      78,
		Provenance:      models.ProvenanceCatalog,
	},
}

// seedCategories holds the initial row contents, keyed by category id.
// Lists are in display order; Seed prepends in reverse so the store keeps it.
var seedCategories = map[string][]models.Item{
	CategoryTrending: {
		{
			ID:              "t1",
			Title:           "Midnight Protocol",
			Synopsis:        "An insomniac systems engineer stumbles onto a broadcast that only airs at 3 a.m. and only to her.",
			Rating:          8.7,
			ReleaseYear:     2025,
			Genres:          []string{"Thriller", "Mystery"},
			PosterLocator:   "https://picsum.photos/seed/midnight/400/600",
			BackdropLocator: "https://picsum.photos/seed/midnight_wide/1280/720",
			Cast:            []string{"Ana T.", "Marcus L."},
			Director:        "Denis V.",
			DurationLabel:   "2h 08m",
			MatchScore:      96,
			Provenance:      models.ProvenanceCatalog,
		},
		{
			ID:              "t2",
			Title:           "Paper Crowns",
			Synopsis:        "Two rival street magicians compete for the same legendary residency, and the same inheritance.",
			Rating:          8.2,
			ReleaseYear:     2024,
			Genres:          []string{"Drama", "Crime"},
			PosterLocator:   "https://picsum.photos/seed/crowns/400/600",
			BackdropLocator: "https://picsum.photos/seed/crowns_wide/1280/720",
			Cast:            []string{"Dev P.", "Oscar I."},
			Director:        "Greta G.",
			DurationLabel:   "1h 55m",
			MatchScore:      91,
			Provenance:      models.ProvenanceCatalog,
		},
		{
			ID:              "t3",
			Title:           "Salt and Static",
			Synopsis:        "A lighthouse keeper's radio starts picking up distress calls from ships that sank decades ago.",
			Rating:          7.8,
			ReleaseYear:     2025,
			Genres:          []string{"Horror", "Mystery"},
			PosterLocator:   "https://picsum.photos/seed/static/400/600",
			BackdropLocator: "https://picsum.photos/seed/static_wide/1280/720",
			Cast:            []string{"Willem D."},
			Director:        "Robert E.",
			DurationLabel:   "1h 49m",
			MatchScore:      84,
			Provenance:      models.ProvenanceCatalog,
		},
	},
	CategoryAction: {
		{
			ID:              "a1",
			Title:           "Terminal Velocity Zero",
			Synopsis:        "A disgraced wing-suit pilot takes one last job: a mid-air extraction over a collapsing city.",
			Rating:          8.0,
			ReleaseYear:     2024,
			Genres:          []string{"Action", "Adventure"},
			PosterLocator:   "https://picsum.photos/seed/tvzero/400/600",
			BackdropLocator: "https://picsum.photos/seed/tvzero_wide/1280/720",
			Cast:            []string{"Tom H.", "Rebecca F."},
			Director:        "Chad S.",
			DurationLabel:   "2h 01m",
			MatchScore:      93,
			Provenance:      models.ProvenanceCatalog,
		},
		{
			ID:              "a2",
			Title:           "Ironclad",
			Synopsis:        "A bodyguard with a synthetic arm protects a witness across a continent of people who want them both dead.",
			Rating:          7.6,
			ReleaseYear:     2023,
			Genres:          []string{"Action", "Thriller"},
			PosterLocator:   "https://picsum.photos/seed/ironclad/400/600",
			BackdropLocator: "https://picsum.photos/seed/ironclad_wide/1280/720",
			Cast:            []string{"Keanu R.", "Florence P."},
			Director:        "David L.",
			DurationLabel:   "1h 57m",
			MatchScore:      89,
			Provenance:      models.ProvenanceCatalog,
		},
		{
			ID:              "a3",
			Title:           "The Last Convoy",
			Synopsis:        "Fuel is currency and one armored convoy carries enough to restart a country, if it survives the road.",
			Rating:          8.3,
			ReleaseYear:     2025,
			Genres:          []string{"Action", "Post-Apocalyptic"},
			PosterLocator:   "https://picsum.photos/seed/convoy/400/600",
			BackdropLocator: "https://picsum.photos/seed/convoy_wide/1280/720",
			Cast:            []string{"Charlize T.", "Idris E."},
			Director:        "George M.",
			DurationLabel:   "2h 12m",
			MatchScore:      94,
			Provenance:      models.ProvenanceCatalog,
		},
	},
	CategoryScifi: {
		{
			ID:              "s1",
			Title:           "Low Orbit",
			Synopsis:        "Salvage crews race to strip a derelict generation ship before its decaying orbit ends the argument.",
			Rating:          8.4,
			ReleaseYear:     2024,
			Genres:          []string{"Sci-Fi", "Thriller"},
			PosterLocator:   "https://picsum.photos/seed/loworbit/400/600",
			BackdropLocator: "https://picsum.photos/seed/loworbit_wide/1280/720",
			Cast:            []string{"Lupita N.", "Oscar I."},
			Director:        "Alex G.",
			DurationLabel:   "2h 06m",
			MatchScore:      92,
			Provenance:      models.ProvenanceCatalog,
		},
		{
			ID:              "s2",
			Title:           "Glass Harvest",
			Synopsis:        "On a colony world where the crops are grown from memory-glass, someone is planting other people's pasts.",
			Rating:          7.9,
			ReleaseYear:     2023,
			Genres:          []string{"Sci-Fi", "Cyberpunk"},
			PosterLocator:   "https://picsum.photos/seed/harvest/400/600",
			BackdropLocator: "https://picsum.photos/seed/harvest_wide/1280/720",
			Cast:            []string{"Steven Y.", "Tilda S."},
			Director:        "Claire D.",
			DurationLabel:   "1h 52m",
			MatchScore:      87,
			Provenance:      models.ProvenanceCatalog,
		},
		{
			ID:              "s3",
			Title:           "Signal Lost",
			Synopsis:        "The first crewed mission beyond the heliopause goes silent, then starts answering questions nobody asked.",
			Rating:          8.6,
			ReleaseYear:     2025,
			Genres:          []string{"Sci-Fi", "Horror"},
			PosterLocator:   "https://picsum.photos/seed/signal/400/600",
			BackdropLocator: "https://picsum.photos/seed/signal_wide/1280/720",
			Cast:            []string{"Rebecca F.", "John B."},
			Director:        "James C.",
			DurationLabel:   "2h 18m",
			MatchScore:      90,
			Provenance:      models.ProvenanceCatalog,
		},
	},
	CategoryDrama: {
		{
			ID:              "d1",
			Title:           "The Long Tide",
			Synopsis:        "Three generations of a fishing family confront the season the fish never came back.",
			Rating:          8.9,
			ReleaseYear:     2023,
			Genres:          []string{"Drama"},
			PosterLocator:   "https://picsum.photos/seed/tide/400/600",
			BackdropLocator: "https://picsum.photos/seed/tide_wide/1280/720",
			Cast:            []string{"Frances M.", "Casey A."},
			Director:        "Kenneth L.",
			DurationLabel:   "2h 21m",
			MatchScore:      86,
			Provenance:      models.ProvenanceCatalog,
		},
		{
			ID:              "d2",
			Title:           "Practice Rooms",
			Synopsis:        "A washed-up concert pianist takes a job tuning pianos at the conservatory that expelled her.",
			Rating:          8.1,
			ReleaseYear:     2024,
			Genres:          []string{"Drama", "Music"},
			PosterLocator:   "https://picsum.photos/seed/practice/400/600",
			BackdropLocator: "https://picsum.photos/seed/practice_wide/1280/720",
			Cast:            []string{"Saoirse R."},
			Director:        "Damien C.",
			DurationLabel:   "1h 47m",
			MatchScore:      83,
			Provenance:      models.ProvenanceCatalog,
		},
		{
			ID:              "d3",
			Title:           "Borrowed Light",
			Synopsis:        "An estranged father and daughter restore a condemned planetarium over one impossible summer.",
			Rating:          8.5,
			ReleaseYear:     2025,
			Genres:          []string{"Drama", "Family"},
			PosterLocator:   "https://picsum.photos/seed/borrowed/400/600",
			BackdropLocator: "https://picsum.photos/seed/borrowed_wide/1280/720",
			Cast:            []string{"Bill N.", "Jenna O."},
			Director:        "Chloe Z.",
			DurationLabel:   "1h 59m",
			MatchScore:      88,
			Provenance:      models.ProvenanceCatalog,
		},
	},
}

// FeaturedItem returns the fixed editorial item shown in the hero slot.
func FeaturedItem() models.Item {
	return featuredItem
}

// BootstrapPool returns every bootstrap item: the featured item, the fallback
// set, and all seeded category rows. Used as part of the favorites resolution
// union, which must also cover items not filed in any category.
func BootstrapPool() []models.Item {
	pool := []models.Item{featuredItem}
	pool = append(pool, fallbackItems...)
	for _, c := range KnownCategories {
		pool = append(pool, seedCategories[c.ID]...)
	}
	return pool
}

// Seed files the bootstrap rows into the store. Prepend semantics mean each
// list is inserted back to front so display order is preserved.
func Seed(s *Store) {
	for _, c := range KnownCategories {
		row := seedCategories[c.ID]
		for i := len(row) - 1; i >= 0; i-- {
			s.AddToCategory(c.ID, row[i])
		}
	}
}
