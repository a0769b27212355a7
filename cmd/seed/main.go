package main

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"myfragance/internal/model"
	"myfragance/internal/repository"
)

func main() {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "myfragance"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(dbName)
	perfumeRepo := repository.NewPerfumeRepo(db)
	questionRepo := repository.NewQuestionRepo(db)

	for i := range perfumes {
		if err := perfumeRepo.Upsert(ctx, &perfumes[i]); err != nil {
			log.Fatalf("Failed to seed perfume %s: %v", perfumes[i].Key, err)
		}
	}
	log.Printf("Seeded %d perfumes", len(perfumes))

	questions := append(personalQuestions(), giftQuestions()...)
	for i := range questions {
		if err := questionRepo.Upsert(ctx, &questions[i]); err != nil {
			log.Fatalf("Failed to seed question %s: %v", questions[i].ID, err)
		}
	}
	log.Printf("Seeded %d questions", len(questions))
}

var perfumes = []model.Perfume{
	{
		Key: "noir-santal", Name: "Noir Santal", Brand: "Maison Lumen",
		Family: "woody", Subfamilies: []string{"spicy", "oriental"},
		Gender: "unisex", Popularity: 8.7, Price: 120,
		Intensity: "strong", Projection: "heavy", Duration: "long",
		Seasons: []string{"autumn", "winter"}, Occasions: []string{"evening", "formal"},
		Personalities: []string{"bold", "elegant"},
		TopNotes:      []string{"cardamom", "pink pepper"},
		HeartNotes:    []string{"sandalwood", "cedar"},
		BaseNotes:     []string{"amber", "vetiver"},
	},
	{
		Key: "aqua-litoral", Name: "Aqua Litoral", Brand: "Casa Brisa",
		Family: "fresh", Subfamilies: []string{"citrus", "aquatic"},
		Gender: "masculine", Popularity: 9.2, Price: 85,
		Intensity: "light", Projection: "moderate", Duration: "medium",
		Seasons: []string{"spring", "summer"}, Occasions: []string{"daily", "sport"},
		Personalities: []string{"casual", "energetic"},
		TopNotes:      []string{"bergamot", "sea notes"},
		HeartNotes:    []string{"rosemary", "jasmine"},
		BaseNotes:     []string{"musk", "cedar"},
	},
	{
		Key: "rosa-imperial", Name: "Rosa Imperial", Brand: "Maison Lumen",
		Family: "floral", Subfamilies: []string{"fruity", "powdery"},
		Gender: "feminine", Popularity: 8.9, Price: 135,
		Intensity: "moderate", Projection: "moderate", Duration: "long",
		Seasons: []string{"spring"}, Occasions: []string{"daily", "romantic"},
		Personalities: []string{"romantic", "elegant"},
		TopNotes:      []string{"lychee", "bergamot"},
		HeartNotes:    []string{"rose", "peony"},
		BaseNotes:     []string{"white musk", "amber"},
	},
	{
		Key: "ambar-profundo", Name: "Ambar Profundo", Brand: "Oriente Casa",
		Family: "oriental", Subfamilies: []string{"amber", "sweet"},
		Gender: "unisex", Popularity: 8.1, Price: 150,
		Intensity: "strong", Projection: "heavy", Duration: "very_long",
		Seasons: []string{"winter"}, Occasions: []string{"evening", "special"},
		Personalities: []string{"bold", "mysterious"},
		TopNotes:      []string{"saffron", "cinnamon"},
		HeartNotes:    []string{"oud", "rose"},
		BaseNotes:     []string{"amber", "vanilla"},
	},
	{
		Key: "citrus-verde", Name: "Citrus Verde", Brand: "Casa Brisa",
		Family: "citrus", Subfamilies: []string{"green", "fresh"},
		Gender: "unisex", Popularity: 7.8, Price: 65,
		Intensity: "light", Projection: "discreet", Duration: "short",
		Seasons: []string{"summer"}, Occasions: []string{"daily", "office"},
		Personalities: []string{"casual", "optimistic"},
		TopNotes:      []string{"lime", "grapefruit"},
		HeartNotes:    []string{"green tea", "basil"},
		BaseNotes:     []string{"vetiver"},
	},
	{
		Key: "cuero-nocturno", Name: "Cuero Nocturno", Brand: "Atelier Bruma",
		Family: "leather", Subfamilies: []string{"woody", "smoky"},
		Gender: "masculine", Popularity: 7.2, Price: 160,
		Intensity: "strong", Projection: "heavy", Duration: "very_long",
		Seasons: []string{"autumn", "winter"}, Occasions: []string{"evening", "formal"},
		Personalities: []string{"bold", "classic"},
		TopNotes:      []string{"black pepper"},
		HeartNotes:    []string{"leather", "iris"},
		BaseNotes:     []string{"birch", "patchouli"},
	},
	{
		Key: "vainilla-sol", Name: "Vainilla Sol", Brand: "Oriente Casa",
		Family: "gourmand", Subfamilies: []string{"sweet", "oriental"},
		Gender: "feminine", Popularity: 8.4, Price: 95,
		Intensity: "moderate", Projection: "moderate", Duration: "long",
		Seasons: []string{"autumn", "winter"}, Occasions: []string{"daily", "romantic"},
		Personalities: []string{"warm", "playful"},
		TopNotes:      []string{"caramel", "pear"},
		HeartNotes:    []string{"vanilla orchid", "tonka"},
		BaseNotes:     []string{"vanilla", "benzoin"},
	},
	{
		Key: "lavanda-bruma", Name: "Lavanda Bruma", Brand: "Atelier Bruma",
		Family: "aromatic", Subfamilies: []string{"fresh", "fougere"},
		Gender: "masculine", Popularity: 7.5, Price: 70,
		Intensity: "moderate", Projection: "moderate", Duration: "medium",
		Seasons: []string{"spring", "autumn"}, Occasions: []string{"office", "daily"},
		Personalities: []string{"classic", "calm"},
		TopNotes:      []string{"lavender", "bergamot"},
		HeartNotes:    []string{"geranium", "sage"},
		BaseNotes:     []string{"oakmoss", "coumarin"},
	},
	{
		Key: "jazmin-blanco", Name: "Jazmin Blanco", Brand: "Casa Brisa",
		Family: "floral", Subfamilies: []string{"white_floral", "fresh"},
		Gender: "feminine", Popularity: 7.9, Price: 88,
		Intensity: "light", Projection: "discreet", Duration: "medium",
		Seasons: []string{"spring", "summer"}, Occasions: []string{"daily", "office"},
		Personalities: []string{"elegant", "calm"},
		TopNotes:      []string{"neroli"},
		HeartNotes:    []string{"jasmine", "orange blossom"},
		BaseNotes:     []string{"white musk"},
	},
	{
		Key: "especias-reales", Name: "Especias Reales", Brand: "Oriente Casa",
		Family: "spicy", Subfamilies: []string{"oriental", "woody"},
		Gender: "unisex", Popularity: 6.8, Price: 110,
		Intensity: "strong", Projection: "moderate", Duration: "long",
		Seasons: []string{"autumn", "winter"}, Occasions: []string{"evening", "special"},
		Personalities: []string{"bold", "adventurous"},
		TopNotes:      []string{"ginger", "nutmeg"},
		HeartNotes:    []string{"clove", "cinnamon"},
		BaseNotes:     []string{"cedar", "amber"},
	},
	{
		Key: "musgo-andino", Name: "Musgo Andino", Brand: "Atelier Bruma",
		Family: "chypre", Subfamilies: []string{"green", "woody"},
		Gender: "unisex", Popularity: 6.5, Price: 125,
		Intensity: "moderate", Projection: "moderate", Duration: "long",
		Seasons: []string{"autumn"}, Occasions: []string{"formal", "office"},
		Personalities: []string{"elegant", "classic"},
		TopNotes:      []string{"bergamot"},
		HeartNotes:    []string{"labdanum", "rose"},
		BaseNotes:     []string{"oakmoss", "patchouli"},
	},
	{
		Key: "frutos-del-alba", Name: "Frutos del Alba", Brand: "Casa Brisa",
		Family: "fruity", Subfamilies: []string{"floral", "sweet"},
		Gender: "feminine", Popularity: 8.2, Price: 60,
		Intensity: "light", Projection: "moderate", Duration: "medium",
		Seasons: []string{"spring", "summer"}, Occasions: []string{"daily", "casual"},
		Personalities: []string{"playful", "optimistic"},
		TopNotes:      []string{"red berries", "mandarin"},
		HeartNotes:    []string{"freesia", "peach"},
		BaseNotes:     []string{"musk", "vanilla"},
	},
}

func personalQuestions() []model.Question {
	return []model.Question{
		{
			ID: "p_gender", FlowType: model.ProfileTypePersonal,
			Category: model.CategoryGender, FlowSegment: model.SegmentMain, Order: 1,
			Text: "Who will wear this fragrance?",
			Options: []model.Option{
				{ID: "g1", Label: "Feminine fragrances", Value: "feminine"},
				{ID: "g2", Label: "Masculine fragrances", Value: "masculine"},
				{ID: "g3", Label: "Unisex, I wear anything", Value: "unisex"},
			},
		},
		{
			ID: "p_scents", FlowType: model.ProfileTypePersonal,
			Category: "scent_preference", FlowSegment: model.SegmentMain, Order: 2,
			Text:           "Which scents do you enjoy most?",
			Subtitle:       "Pick up to three",
			AllowsMultiple: true, MinSelections: 1, MaxSelections: 3,
			Options: []model.Option{
				{ID: "s1", Label: "Woods and earth", Value: "woody", FamilyWeights: map[string]int{"woody": 10, "chypre": 4}},
				{ID: "s2", Label: "Fresh and clean", Value: "fresh", FamilyWeights: map[string]int{"fresh": 10, "citrus": 6, "aromatic": 4}},
				{ID: "s3", Label: "Flowers", Value: "floral", FamilyWeights: map[string]int{"floral": 10, "fruity": 4}},
				{ID: "s4", Label: "Warm spices and amber", Value: "oriental", FamilyWeights: map[string]int{"oriental": 10, "spicy": 6, "gourmand": 4}},
				{ID: "s5", Label: "Sweet and dessert-like", Value: "gourmand", FamilyWeights: map[string]int{"gourmand": 10, "oriental": 4}},
				{ID: "s6", Label: "Leather and smoke", Value: "leather", FamilyWeights: map[string]int{"leather": 10, "woody": 5}},
			},
		},
		{
			ID: "p_moment", FlowType: model.ProfileTypePersonal,
			Category: model.CategoryOccasion, FlowSegment: model.SegmentMain, Order: 3,
			Text: "When will you wear it most?",
			Options: []model.Option{
				{ID: "m1", Label: "Every day", Value: "daily", Occasions: []string{"daily", "office"}, FamilyWeights: map[string]int{"fresh": 3, "citrus": 3}},
				{ID: "m2", Label: "Nights out", Value: "evening", Occasions: []string{"evening"}, FamilyWeights: map[string]int{"oriental": 3, "woody": 2}},
				{ID: "m3", Label: "Special occasions", Value: "special", Occasions: []string{"special", "formal"}, FamilyWeights: map[string]int{"chypre": 2, "oriental": 2}},
				{ID: "m4", Label: "Dates", Value: "romantic", Occasions: []string{"romantic"}, FamilyWeights: map[string]int{"floral": 3, "gourmand": 2}},
			},
		},
		{
			ID: "p_season", FlowType: model.ProfileTypePersonal,
			Category: model.CategorySeason, FlowSegment: model.SegmentMain, Order: 4,
			Text:           "Which seasons matter most to you?",
			AllowsMultiple: true, MinSelections: 1, MaxSelections: 2,
			Options: []model.Option{
				{ID: "se1", Label: "Spring", Value: "spring", Seasons: []string{"spring"}},
				{ID: "se2", Label: "Summer", Value: "summer", Seasons: []string{"summer"}, FamilyWeights: map[string]int{"citrus": 3, "fresh": 3}},
				{ID: "se3", Label: "Autumn", Value: "autumn", Seasons: []string{"autumn"}, FamilyWeights: map[string]int{"woody": 2}},
				{ID: "se4", Label: "Winter", Value: "winter", Seasons: []string{"winter"}, FamilyWeights: map[string]int{"oriental": 3, "gourmand": 2}},
			},
		},
		{
			ID: "p_intensity", FlowType: model.ProfileTypePersonal,
			Category: model.CategoryIntensity, FlowSegment: model.SegmentMain, Order: 5,
			Text: "How noticeable should it be?",
			Options: []model.Option{
				{ID: "i1", Label: "A subtle skin scent", Value: "light", Intensity: "light", Projection: "discreet"},
				{ID: "i2", Label: "Present but not loud", Value: "moderate", Intensity: "moderate", Projection: "moderate"},
				{ID: "i3", Label: "Fills the room", Value: "strong", Intensity: "strong", Projection: "heavy"},
			},
		},
		{
			ID: "p_personality", FlowType: model.ProfileTypePersonal,
			Category: model.CategoryPersonality, FlowSegment: model.SegmentMain, Order: 6,
			Text: "Which word describes you best?",
			Options: []model.Option{
				{ID: "pe1", Label: "Elegant", Value: "elegant", Personalities: []string{"elegant", "classic"}},
				{ID: "pe2", Label: "Adventurous", Value: "adventurous", Personalities: []string{"adventurous", "bold"}},
				{ID: "pe3", Label: "Easygoing", Value: "casual", Personalities: []string{"casual", "optimistic"}},
				{ID: "pe4", Label: "Romantic", Value: "romantic", Personalities: []string{"romantic", "warm"}},
			},
		},
		{
			ID: "p_price", FlowType: model.ProfileTypePersonal,
			Category: model.CategoryPriceRange, FlowSegment: model.SegmentMain, Order: 7,
			Text: "What budget are you comfortable with?",
			Options: []model.Option{
				{ID: "pr1", Label: "Under $80", Value: "budget"},
				{ID: "pr2", Label: "$80 to $130", Value: "mid"},
				{ID: "pr3", Label: "Above $130", Value: "premium"},
			},
		},
		{
			ID: "p_notes", FlowType: model.ProfileTypePersonal,
			Category: model.CategoryNotes, FlowSegment: model.SegmentMain, Order: 8,
			Text:             "Any specific notes you love?",
			Subtitle:         "For example vanilla, oud, bergamot",
			RequiresFreeText: true,
			IsConditional:    true,
			ConditionalRules: map[string]string{model.RulePreviousQuestion: "p_price"},
		},
	}
}

func giftQuestions() []model.Question {
	return []model.Question{
		{
			ID: "g_recipient", FlowType: model.ProfileTypeGift,
			Category: model.CategoryRecipient, FlowSegment: model.SegmentMain, Order: 1,
			Text: "Who is the gift for?",
			Options: []model.Option{
				{ID: "r1", Label: "My partner", Value: "partner"},
				{ID: "r2", Label: "A family member", Value: "family"},
				{ID: "r3", Label: "A friend", Value: "friend"},
				{ID: "r4", Label: "A colleague", Value: "colleague"},
			},
		},
		{
			ID: "g_gender", FlowType: model.ProfileTypeGift,
			Category: model.CategoryGender, FlowSegment: model.SegmentMain, Order: 2,
			Text: "What style of fragrance suits them?",
			Options: []model.Option{
				{ID: "gg1", Label: "Feminine", Value: "feminine"},
				{ID: "gg2", Label: "Masculine", Value: "masculine"},
				{ID: "gg3", Label: "Either works", Value: "unisex"},
			},
		},
		{
			ID: "g_knowledge", FlowType: model.ProfileTypeGift,
			Category: model.CategoryKnowledgeLevel, FlowSegment: model.SegmentMain, Order: 3,
			Text: "Do you know what fragrances they like?",
			Options: []model.Option{
				{ID: "k1", Label: "Yes, I know their taste", Value: "knows_taste", NextSegment: "reference"},
				{ID: "k2", Label: "Not really, help me guess", Value: "no_idea", NextSegment: "persona"},
			},
		},

		// Segment "reference": the buyer knows the recipient's taste and
		// tells us how they know it.
		{
			ID: "g_reference_type", FlowType: model.ProfileTypeGift,
			Category: model.CategoryReferenceType, FlowSegment: "reference", Order: 10,
			Text: "How do you know their taste?",
			Options: []model.Option{
				{ID: "rt1", Label: "They wear a perfume I can name", Value: "by_perfume", NextSegment: "by_perfume"},
				{ID: "rt2", Label: "I know the kind of scents they like", Value: "by_scent", NextSegment: "by_scent"},
			},
		},

		// Segment "by_perfume": name the reference bottle.
		{
			ID: "g_reference_name", FlowType: model.ProfileTypeGift,
			Category: model.CategoryReference, FlowSegment: "by_perfume", Order: 20,
			Text:             "Which perfume do they wear?",
			Subtitle:         "Brand and name if you remember",
			RequiresFreeText: true,
		},

		// Segment "by_scent": describe the scents they like.
		{
			ID: "g_scent_types", FlowType: model.ProfileTypeGift,
			Category: "scent_preference", FlowSegment: "by_scent", Order: 30,
			Text:           "Which scents do they enjoy?",
			AllowsMultiple: true, MinSelections: 1, MaxSelections: 3,
			Options: []model.Option{
				{ID: "st1", Label: "Woody and earthy", Value: "woody", FamilyWeights: map[string]int{"woody": 10, "leather": 4}},
				{ID: "st2", Label: "Fresh and citrusy", Value: "fresh", FamilyWeights: map[string]int{"fresh": 10, "citrus": 8}},
				{ID: "st3", Label: "Floral", Value: "floral", FamilyWeights: map[string]int{"floral": 10, "fruity": 5}},
				{ID: "st4", Label: "Warm and sweet", Value: "oriental", FamilyWeights: map[string]int{"oriental": 10, "gourmand": 7}},
			},
		},

		// Segment "persona": the buyer has no reference, so we profile the
		// recipient indirectly.
		{
			ID: "g_persona_style", FlowType: model.ProfileTypeGift,
			Category: model.CategoryPersonality, FlowSegment: "persona", Order: 40,
			Text: "How would you describe them?",
			Options: []model.Option{
				{ID: "ps1", Label: "Classic and refined", Value: "elegant", Personalities: []string{"elegant", "classic"}, FamilyWeights: map[string]int{"chypre": 6, "floral": 4, "aromatic": 3}},
				{ID: "ps2", Label: "Sporty and outdoorsy", Value: "energetic", Personalities: []string{"energetic", "casual"}, FamilyWeights: map[string]int{"fresh": 8, "citrus": 6}},
				{ID: "ps3", Label: "Warm and affectionate", Value: "warm", Personalities: []string{"warm", "romantic"}, FamilyWeights: map[string]int{"gourmand": 6, "oriental": 5}},
				{ID: "ps4", Label: "Bold and intense", Value: "bold", Personalities: []string{"bold", "mysterious"}, FamilyWeights: map[string]int{"oriental": 6, "leather": 5, "spicy": 4}},
			},
		},
		{
			ID: "g_persona_moment", FlowType: model.ProfileTypeGift,
			Category: model.CategoryOccasion, FlowSegment: "persona", Order: 41,
			Text: "When do you picture them wearing it?",
			Options: []model.Option{
				{ID: "pm1", Label: "At work, day to day", Value: "daily", Occasions: []string{"daily", "office"}},
				{ID: "pm2", Label: "Going out at night", Value: "evening", Occasions: []string{"evening"}},
				{ID: "pm3", Label: "Big occasions", Value: "special", Occasions: []string{"special", "formal"}},
			},
		},

		// Last of the main segment: asked before the branch questions, which
		// are appended to the end of the active flow.
		{
			ID: "g_price", FlowType: model.ProfileTypeGift,
			Category: model.CategoryPriceRange, FlowSegment: model.SegmentMain, Order: 4,
			Text: "How much do you want to spend?",
			Options: []model.Option{
				{ID: "gp1", Label: "Under $80", Value: "budget"},
				{ID: "gp2", Label: "$80 to $130", Value: "mid"},
				{ID: "gp3", Label: "Above $130", Value: "premium"},
			},
		},
	}
}
