package lookup

import (
	"context"
	"strings"
)

// StaticProvider serves a built-in table of everyday foods so lookups keep
// working offline or when the remote API has no credentials. Keys are
// matched case-insensitively on the whole name.
type StaticProvider struct{}

func NewStaticProvider() *StaticProvider { return &StaticProvider{} }

func (s *StaticProvider) Lookup(_ context.Context, name string) (*FoodFacts, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	facts, ok := staticTable[key]
	if !ok {
		return nil, ErrNoMatch
	}
	return &facts, nil
}

var staticTable = map[string]FoodFacts{
	"banana":         {Name: "Banana", Calories: 105, Protein: 1.3, Carbs: 27, Fat: 0.4, Fiber: 3.1, ServingSize: "1 medium"},
	"apple":          {Name: "Apple", Calories: 95, Protein: 0.5, Carbs: 25, Fat: 0.3, Fiber: 4.4, ServingSize: "1 medium"},
	"orange":         {Name: "Orange", Calories: 62, Protein: 1.2, Carbs: 15.4, Fat: 0.2, Fiber: 3.1, ServingSize: "1 medium"},
	"rice":           {Name: "Rice (cooked)", Calories: 205, Protein: 4.3, Carbs: 44.5, Fat: 0.4, Fiber: 0.6, ServingSize: "1 cup"},
	"chapati":        {Name: "Chapati", Calories: 104, Protein: 3.1, Carbs: 18, Fat: 2.5, Fiber: 2.3, ServingSize: "1 piece"},
	"roti":           {Name: "Roti", Calories: 104, Protein: 3.1, Carbs: 18, Fat: 2.5, Fiber: 2.3, ServingSize: "1 piece"},
	"dal":            {Name: "Dal (cooked)", Calories: 230, Protein: 17.9, Carbs: 39.9, Fat: 0.8, Fiber: 15.6, ServingSize: "1 cup"},
	"idli":           {Name: "Idli", Calories: 58, Protein: 2, Carbs: 12, Fat: 0.4, Fiber: 0.8, ServingSize: "1 piece"},
	"dosa":           {Name: "Dosa (plain)", Calories: 133, Protein: 2.7, Carbs: 17, Fat: 6, Fiber: 0.9, ServingSize: "1 piece"},
	"boiled egg":     {Name: "Boiled Egg", Calories: 78, Protein: 6.3, Carbs: 0.6, Fat: 5.3, Fiber: 0, ServingSize: "1 large"},
	"egg":            {Name: "Egg", Calories: 78, Protein: 6.3, Carbs: 0.6, Fat: 5.3, Fiber: 0, ServingSize: "1 large"},
	"milk":           {Name: "Milk (whole)", Calories: 149, Protein: 7.7, Carbs: 11.7, Fat: 7.9, Fiber: 0, ServingSize: "1 cup"},
	"bread":          {Name: "Bread (white)", Calories: 79, Protein: 2.7, Carbs: 14.7, Fat: 1, Fiber: 0.8, ServingSize: "1 slice"},
	"chicken breast": {Name: "Chicken Breast", Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6, Fiber: 0, ServingSize: "100 g"},
	"paneer":         {Name: "Paneer", Calories: 265, Protein: 18.3, Carbs: 1.2, Fat: 20.8, Fiber: 0, ServingSize: "100 g"},
	"curd":           {Name: "Curd", Calories: 98, Protein: 11, Carbs: 3.4, Fat: 4.3, Fiber: 0, ServingSize: "1 cup"},
	"potato":         {Name: "Potato (boiled)", Calories: 161, Protein: 4.3, Carbs: 36.6, Fat: 0.2, Fiber: 3.8, ServingSize: "1 medium"},
	"oats":           {Name: "Oats (cooked)", Calories: 166, Protein: 5.9, Carbs: 28.1, Fat: 3.6, Fiber: 4, ServingSize: "1 cup"},
}
