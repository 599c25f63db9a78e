// Package wordbank is the static word and question catalog shared by every
// game variant. It is read-only after init and safe for concurrent use.
package wordbank

import (
	"math/rand"
	"strings"

	"github.com/samber/lo"
)

var scribbleWords = []string{
	"apple", "banana", "car", "dog", "elephant", "flower", "guitar", "house",
	"island", "jungle", "kite", "lamp", "mountain", "notebook", "ocean",
	"pizza", "queen", "rainbow", "sunflower", "tree", "umbrella", "volcano",
	"waterfall", "xylophone",
}

var wordchainWords = []string{
	"APPLE", "BANANA", "CAT", "DOG", "ELEPHANT", "FISH", "GRAPE", "HOUSE",
	"ICE", "JUMP", "KITE", "LION", "MOON", "NEST", "OCEAN", "PIZZA", "QUEEN",
	"RAIN", "STAR", "TREE", "UMBRELLA", "VIOLIN", "WATER", "YELLOW", "ZEBRA",
}

var hangmanWords = map[string][]string{
	"animals":   {"ELEPHANT", "GIRAFFE", "DOLPHIN", "PENGUIN", "KANGAROO", "BUTTERFLY", "RHINOCEROS", "CROCODILE", "HIPPOPOTAMUS", "OCTOPUS"},
	"fruits":    {"APPLE", "BANANA", "ORANGE", "WATERMELON", "STRAWBERRY", "PINEAPPLE", "BLUEBERRY", "RASPBERRY", "CHERRY", "MANGO"},
	"countries": {"AMERICA", "CANADA", "BRAZIL", "GERMANY", "AUSTRALIA", "JAPAN", "CHINA", "INDIA", "FRANCE", "ITALY"},
	"movies":    {"AVENGERS", "TITANIC", "FROZEN", "SPIDERMAN", "BATMAN", "IRONMAN", "JURASSIC", "STARWARS", "MATRIX", "GLADIATOR"},
	"sports":    {"FOOTBALL", "CRICKET", "TENNIS", "BASKETBALL", "BASEBALL", "HOCKEY", "GOLF", "SWIMMING", "BOXING", "RUGBY"},
}

var codenamesWords = []string{
	"OCEAN", "APPLE", "BRIDGE", "CASTLE", "DRAGON", "ENGINE", "FOREST",
	"GUITAR", "HARBOR", "ISLAND", "JUNGLE", "KNIGHT", "LANTERN", "MARKET",
	"NEEDLE", "ORANGE", "PALACE", "QUARTZ", "RIVER", "SHADOW", "TEMPLE",
	"UNICORN", "VOLCANO", "WINDOW", "YELLOW", "ZEPHYR", "ANCHOR", "BERLIN",
	"CIRCLE", "DESERT", "EAGLE", "FALCON", "GLACIER", "HAMMER", "IVORY",
	"JUPITER", "KETTLE", "LONDON", "MERCURY", "NINJA", "OPERA", "PIRATE",
}

// Question is a single trivia entry. Answer is the letter of the correct
// option (A, B, C or D).
type Question struct {
	Text    string   `json:"q"`
	Options []string `json:"options"`
	Answer  string   `json:"answer"`
}

var triviaQuestions = []Question{
	{Text: "What is the largest planet in our solar system?", Options: []string{"Earth", "Jupiter", "Saturn", "Neptune"}, Answer: "B"},
	{Text: "Which element has the chemical symbol O?", Options: []string{"Oxygen", "Gold", "Osmium", "Iron"}, Answer: "A"},
	{Text: "In which country is the Great Barrier Reef?", Options: []string{"Brazil", "Mexico", "Australia", "Indonesia"}, Answer: "C"},
	{Text: "How many continents are there?", Options: []string{"Five", "Six", "Eight", "Seven"}, Answer: "D"},
	{Text: "What is the capital of Japan?", Options: []string{"Tokyo", "Kyoto", "Osaka", "Seoul"}, Answer: "A"},
	{Text: "Which ocean is the largest?", Options: []string{"Atlantic", "Indian", "Pacific", "Arctic"}, Answer: "C"},
	{Text: "Who painted the Mona Lisa?", Options: []string{"Michelangelo", "Leonardo da Vinci", "Raphael", "Donatello"}, Answer: "B"},
	{Text: "What is the smallest prime number?", Options: []string{"Zero", "One", "Two", "Three"}, Answer: "C"},
	{Text: "Which planet is known as the Red Planet?", Options: []string{"Venus", "Mars", "Mercury", "Pluto"}, Answer: "B"},
	{Text: "How many strings does a standard guitar have?", Options: []string{"Four", "Five", "Six", "Seven"}, Answer: "C"},
	{Text: "What gas do plants absorb from the atmosphere?", Options: []string{"Oxygen", "Nitrogen", "Hydrogen", "Carbon dioxide"}, Answer: "D"},
	{Text: "Which country invented pizza?", Options: []string{"Italy", "Greece", "France", "Spain"}, Answer: "A"},
}

// Categories lists the hangman categories in no particular order.
func Categories() []string {
	return lo.Keys(hangmanWords)
}

// PickWord returns a random uppercase word for the given game type.
// For hangman, an unknown or empty category falls back to a random one.
func PickWord(gameType string, category string) string {
	var words []string
	switch gameType {
	case "hangman":
		if list, ok := hangmanWords[strings.ToLower(category)]; ok {
			words = list
		} else {
			cats := lo.Values(hangmanWords)
			words = cats[rand.Intn(len(cats))]
		}
	case "wordchain":
		words = wordchainWords
	default:
		words = scribbleWords
	}
	return strings.ToUpper(words[rand.Intn(len(words))])
}

// PickQuestion returns a random trivia question. Repeats across rounds are
// allowed, same as word picks.
func PickQuestion() Question {
	return triviaQuestions[rand.Intn(len(triviaQuestions))]
}

// BoardWords returns n distinct words for a codenames board.
func BoardWords(n int) []string {
	shuffled := lo.Shuffle(append([]string(nil), codenamesWords...))
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}
