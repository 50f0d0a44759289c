package cards

import (
	"bytes"
	"encoding/json"
)

// Genre tags as sent by the storefront.
const (
	GenreYugioh  = "遊戯王"
	GenreOP      = "OP"
	GenreDM      = "DM"
	GenrePokemon = "ポケモン"
)

const (
	// DonCardName is the name and card type of the OP genre's non-playable card.
	DonCardName = "ドンカード"
	// ConditionPSA10 marks items that get the graded-gem badge.
	ConditionPSA10 = "psa10"
)

// Item is one row of a purchase table.
type Item struct {
	ID               ID     `json:"id"`
	Name             string `json:"cardname"`
	Rarity           string `json:"rarity"`
	Price            int    `json:"buy_price"`
	Genre            string `json:"cardgenre"`
	Expansion        string `json:"expansion"`
	Number           string `json:"cardnumber"`
	ImageURL         string `json:"full_image_url"`
	AnyNumber        bool   `json:"any_model_number"`
	SpecialCondition string `json:"special_condition"`
	Type             string `json:"type"`
}

// HasBadge reports whether the graded-gem badge is drawn over the art.
func (it Item) HasBadge() bool {
	return it.SpecialCondition == ConditionPSA10
}

// ID is a storefront identifier. JSON strings and numbers both decode;
// product and store ids arrive as numbers.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}
