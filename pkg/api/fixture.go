package api

import "storefront/pkg/catalog"

func price(v int64) *int64 { return &v }

// Fixture returns the built-in product list the storefront falls back to
// when the catalog fetch fails, so the user never sees an empty shop.
func Fixture() []catalog.Item {
	return []catalog.Item{
		{
			ID:          "854cef69-976d-4c2a-a18c-2aa45046c390",
			Title:       "+1 hour in a day",
			Description: "If you plan to solve trainer tasks, take two.",
			Image:       "/5_Dots.svg",
			Category:    catalog.CategorySoftSkill,
			Price:       price(750),
		},
		{
			ID:          "c101ab44-ed99-4a54-990d-47aa2bb4e7d9",
			Title:       "HEX lollipop",
			Description: "Lick this lollipop to instantly memorize any CSS color code.",
			Image:       "/Shell.svg",
			Category:    catalog.CategoryOther,
			Price:       price(1450),
		},
		{
			ID:          "b06cde61-912f-4663-9751-09956c0eed67",
			Title:       "Mom-the-timer",
			Description: "Hovers over you and keeps procrastination away.",
			Image:       "/Asterisk_2.svg",
			Category:    catalog.CategorySoftSkill,
			Price:       nil,
		},
		{
			ID:          "412bcf81-7e75-4e70-bdb9-d3c73c9803b7",
			Title:       "Framework fortune cookies",
			Description: "Open these cookies to learn which framework you should study next.",
			Image:       "/Soft_Flower.svg",
			Category:    catalog.CategoryAdditional,
			Price:       price(2500),
		},
		{
			ID:          "1c521d84-c48d-48fa-8cfb-9d911fa515fd",
			Title:       "Mute-the-cat button",
			Description: "If the cat yells, press the button.",
			Image:       "/mute-cat.svg",
			Category:    catalog.CategoryButton,
			Price:       price(2000),
		},
		{
			ID:          "f3867296-45c7-4603-bd34-29cea3a061d5",
			Title:       "BEM pill",
			Description: "Required learning for naming modifiers properly.",
			Image:       "Pill.svg",
			Category:    catalog.CategoryOther,
			Price:       price(1500),
		},
		{
			ID:          "54df7dcb-1213-4b3c-ab61-92ed5f845535",
			Title:       "Portable teleport",
			Description: "Change your job-search location.",
			Image:       "/Polygon.svg",
			Category:    catalog.CategoryOther,
			Price:       price(100000),
		},
		{
			ID:          "6a834fb8-350a-440c-ab55-d0e9b959b6e3",
			Title:       "Pocket microverse",
			Description: "Buys you time to study React, OOP and the backend.",
			Image:       "/Butterfly.svg",
			Category:    catalog.CategoryOther,
			Price:       price(750),
		},
		{
			ID:          "48e86fc0-ca99-4e13-b164-b98d65928b53",
			Title:       "UI/UX pencil",
			Description: "A genuinely useful skill for a frontend developer. No jokes.",
			Image:       "Leaf.svg",
			Category:    catalog.CategoryHardSkill,
			Price:       price(10000),
		},
		{
			ID:          "90973ae5-285c-4b6f-a6d0-65d1d760b102",
			Title:       "Backend anti-stress",
			Description: "Squeeze the ball to relieve the stress of backend topics.",
			Image:       "/Mithosis.svg",
			Category:    catalog.CategoryOther,
			Price:       price(1000),
		},
	}
}
