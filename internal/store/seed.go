package store

import "github.com/nhle/mealplanner/internal/model"

const unsplash = "https://images.unsplash.com/"

func images(photo string) (thumbnail, image string) {
	return unsplash + photo + "?w=400", unsplash + photo + "?w=800"
}

func recipe(id, title, photo string, category model.Category, ingredients, directions []string) model.Recipe {
	thumb, img := images(photo)
	return model.Recipe{
		ID:          id,
		Title:       title,
		Thumbnail:   thumb,
		Image:       img,
		Category:    category,
		Ingredients: ingredients,
		Directions:  directions,
	}
}

// BuiltinRecipes returns the recipes seeded into every new catalog.
func BuiltinRecipes() []model.Recipe {
	return []model.Recipe{
		recipe("salmon-asparagus", "Salmon with tomato and asparagus",
			"photo-1467003909585-2f8a72700288", model.CategoryDinner,
			[]string{
				"2 salmon fillets (about 6 oz each)",
				"1 bunch asparagus",
				"2 cups cherry tomatoes",
				"3 cloves garlic, minced",
				"2 tbsp olive oil",
				"Salt and pepper to taste",
				"1 lemon, zested and juiced",
				"Fresh dill or thyme (optional)",
			},
			[]string{
				"Preheat the oven to 200 °C / 400 °F and line a baking sheet with parchment. Take the salmon out of the fridge while the oven heats.",
				"Pat the fillets dry and place them skin-side down. Trim the asparagus and spread the spears around the fish in a single layer.",
				"Drizzle with olive oil, season with salt and pepper, then add garlic, lemon zest and a squeeze of lemon juice. Tuck in dill or thyme if you like.",
				"Roast for 12-15 minutes until the salmon flakes and the asparagus tips brown. Rest briefly and serve with more lemon.",
			}),
		recipe("chicken-fajita-salad", "Chicken Fajita Salad",
			"photo-1512621776951-a57141f2eefd", model.CategoryLunch,
			[]string{
				"2 chicken breasts",
				"1 red bell pepper, sliced",
				"1 yellow bell pepper, sliced",
				"1 red onion, sliced",
				"2 tbsp fajita seasoning",
				"4 cups mixed greens",
				"1 avocado, sliced",
				"1/4 cup sour cream",
				"1 lime, juiced",
				"Olive oil",
			},
			[]string{
				"Season the chicken with fajita seasoning. Heat olive oil in a large skillet over medium-high heat.",
				"Cook the chicken 6-7 minutes per side until golden and cooked through. Rest for 5 minutes.",
				"In the same skillet, sauté peppers and onion for 5-6 minutes until softened and slightly charred.",
				"Slice the chicken. Arrange greens on plates, top with chicken, peppers, onion and avocado. Finish with sour cream and lime juice.",
			}),
		recipe("spicy-shrimp-tacos", "Spicy Shrimp Tacos with Avocado Salsa",
			"photo-1565299585323-38d6b0865b47", model.CategoryDinner,
			[]string{
				"1 lb large shrimp, peeled",
				"2 tsp chili powder",
				"1 tsp cumin",
				"8 small tortillas",
				"2 avocados, diced",
				"1 tomato, diced",
				"1/4 red onion, minced",
				"1 jalapeño, minced",
				"1 lime, juiced",
				"Cilantro, chopped",
				"Sour cream",
			},
			[]string{
				"Toss the shrimp with chili powder, cumin, salt and pepper. Heat oil in a skillet over high heat.",
				"Cook the shrimp 2-3 minutes per side until pink.",
				"Mix avocados, tomato, onion, jalapeño, lime juice and cilantro for the salsa.",
				"Warm the tortillas, fill with shrimp and top with salsa and sour cream.",
			}),
		recipe("greek-yogurt-parfait", "Greek Yogurt Parfait",
			"photo-1488477181946-6428a0291777", model.CategoryBreakfast,
			[]string{
				"2 cups Greek yogurt",
				"1 cup granola",
				"1 cup mixed berries",
				"2 tbsp honey",
				"1/4 cup sliced almonds",
				"Fresh mint leaves",
			},
			[]string{
				"Layer half the yogurt in glasses or bowls.",
				"Add half the granola and half the berries.",
				"Repeat with the remaining yogurt, granola and berries.",
				"Drizzle with honey and top with almonds and mint.",
			}),
		recipe("veggie-omelette", "Garden Veggie Omelette",
			"photo-1525351484163-7529414344d8", model.CategoryBreakfast,
			[]string{
				"3 eggs",
				"1/4 cup milk",
				"1/2 cup spinach, chopped",
				"1/4 cup mushrooms, sliced",
				"1/4 cup bell peppers, diced",
				"1/4 cup cheese, shredded",
				"Salt and pepper",
				"Butter for cooking",
			},
			[]string{
				"Whisk the eggs with milk, salt and pepper.",
				"Melt butter in a non-stick pan over medium heat.",
				"Sauté the vegetables for 2-3 minutes until softened.",
				"Pour in the eggs and cook until the edges set. Sprinkle cheese on one half.",
				"Fold the omelette and cook one more minute. Slide onto a plate.",
			}),
		recipe("quinoa-bowl", "Mediterranean Quinoa Bowl",
			"photo-1546069901-ba9599a7e63c", model.CategoryLunch,
			[]string{
				"1 cup quinoa, cooked",
				"1 cucumber, diced",
				"1 cup cherry tomatoes, halved",
				"1/2 cup feta cheese, crumbled",
				"1/4 cup kalamata olives",
				"2 tbsp olive oil",
				"1 lemon, juiced",
				"Fresh parsley",
				"Salt and pepper",
			},
			[]string{
				"Cook the quinoa according to the package and let it cool.",
				"Whisk olive oil, lemon juice, salt and pepper for the dressing.",
				"Combine quinoa, cucumber, tomatoes, feta and olives in a bowl.",
				"Toss with the dressing and garnish with parsley.",
			}),
		recipe("thai-curry", "Thai Green Curry",
			"photo-1455619452474-d2be8b1e70cd", model.CategoryDinner,
			[]string{
				"2 tbsp green curry paste",
				"1 can coconut milk",
				"2 chicken breasts, sliced",
				"1 cup bamboo shoots",
				"1 red bell pepper, sliced",
				"1 cup basil leaves",
				"2 tbsp fish sauce",
				"1 tbsp brown sugar",
				"Jasmine rice for serving",
			},
			[]string{
				"Heat the curry paste in a large pot for 1 minute until fragrant.",
				"Add the coconut milk and bring to a simmer.",
				"Add the chicken and cook for 10 minutes.",
				"Add bamboo shoots and bell pepper and simmer 5 minutes more.",
				"Stir in fish sauce, sugar and basil. Serve over jasmine rice.",
			}),
		recipe("caprese-panini", "Caprese Panini",
			"photo-1528736235302-52922df5c122", model.CategoryLunch,
			[]string{
				"4 ciabatta rolls",
				"2 large tomatoes, sliced",
				"8 oz fresh mozzarella, sliced",
				"Fresh basil leaves",
				"2 tbsp balsamic glaze",
				"Olive oil",
				"Salt and pepper",
			},
			[]string{
				"Halve the rolls and brush the outsides with olive oil.",
				"Layer mozzarella, tomato and basil inside. Season with salt and pepper.",
				"Heat a panini press or grill pan over medium heat.",
				"Grill 4-5 minutes until golden and the cheese melts.",
				"Drizzle with balsamic glaze before serving.",
			}),
	}
}
