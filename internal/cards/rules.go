package cards

import (
	"regexp"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// AnyNumberText replaces the catalog number when any printing is bought.
	AnyNumberText = "型番問わず"
	currencyGlyph = "￥"
)

var (
	rarityAbbreviations = map[string]string{
		"クォーターセンチュリーシークレット": "QCシークレット",
	}
	caseMarker   = regexp.MustCompile(`\(小文字\)|\(大文字\)`)
	pricePrinter = message.NewPrinter(language.Japanese)
)

// NumberRule derives the catalog-number label for one genre.
type NumberRule func(it Item) string

func bareNumber(it Item) string {
	return it.Number
}

func expansionAndNumber(it Item) string {
	return it.Expansion + " " + it.Number
}

func opNumber(it Item) string {
	if isDonType(it) {
		return ""
	}
	return it.Number
}

func isDonType(it Item) bool {
	return it.Genre == GenreOP && !it.AnyNumber && it.Type == DonCardName
}

var numberRules = map[string]NumberRule{
	GenreYugioh:  bareNumber,
	GenreOP:      opNumber,
	GenreDM:      expansionAndNumber,
	GenrePokemon: expansionAndNumber,
}

// NumberText returns the text drawn inside the catalog-number frame.
func NumberText(it Item) string {
	if it.AnyNumber {
		return AnyNumberText
	}
	if rule, ok := numberRules[it.Genre]; ok {
		return rule(it)
	}
	return expansionAndNumber(it)
}

// CleanName strips the parenthesised segment repeating the catalog number
// (e.g. "(sv7a 019/064 RR)") and the letter-case markers.
func CleanName(name, number string) string {
	if number != "" && strings.ContainsAny(name, "()（）") {
		q := regexp.QuoteMeta(number)
		re := regexp.MustCompile(`(?i)\s*[\(（][^）)]*` + q + `[^）)]*[\)）]`)
		name = re.ReplaceAllString(name, "")
	}
	return strings.TrimSpace(caseMarker.ReplaceAllString(name, ""))
}

// DisplayRarity shortens labels too long for a caption.
func DisplayRarity(rarity string) string {
	if short, ok := rarityAbbreviations[rarity]; ok {
		return short
	}
	return rarity
}

// Caption is the name line of a cell. Rarity is dropped when any printing
// is accepted.
func Caption(name, rarity string, anyNumber bool) string {
	if anyNumber {
		return name
	}
	return name + " " + rarity
}

// PriceText formats a price as "￥12,345".
func PriceText(price int) string {
	return currencyGlyph + pricePrinter.Sprintf("%d", price)
}

// Label is everything CardPresenter writes for one item.
type Label struct {
	Name        string
	Caption     string
	Price       string
	Number      string
	NumberFrame bool
}

// LabelFor applies all text rules to an item.
func LabelFor(it Item) Label {
	name := CleanName(it.Name, it.Number)
	number := NumberText(it)
	return Label{
		Name:    name,
		Caption: Caption(name, DisplayRarity(it.Rarity), it.AnyNumber),
		Price:   PriceText(it.Price),
		Number:  number,
		// The Don card never gets a number frame, whatever the genre.
		NumberFrame: name != DonCardName && !isDonType(it),
	}
}
