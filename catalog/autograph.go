package catalog

// AutographAuths holds eBay's 19 Autograph Authentication options.
var AutographAuths = PhraseTable{
	{Value: "Beckett Authentication Services (BAS)", Triggers: []string{"beckett", "bas", "beckett authentication"}},
	{Value: "Bowman", Triggers: []string{"bowman"}},
	{Value: "Certified Guaranty Company (CGC)", Triggers: []string{"cgc", "certified guaranty"}},
	{Value: "Certified Sports Guaranty (CSG)", Triggers: []string{"csg", "certified sports"}},
	{Value: "Donruss", Triggers: []string{"donruss"}},
	{Value: "Fanatics Authentic", Triggers: []string{"fanatics", "fanatics authentic"}},
	{Value: "Fleer", Triggers: []string{"fleer"}},
	{Value: "James Spence Authentication (JSA)", Triggers: []string{"jsa", "james spence", "spence"}},
	{Value: "Leaf", Triggers: []string{"leaf"}},
	{Value: "Panini Authentic", Triggers: []string{"panini", "panini authentic"}},
	{Value: "Professional Sports Authenticator (PSA)", Triggers: []string{"psa", "professional sports"}},
	{Value: "PROVA Group", Triggers: []string{"prova", "prova group"}},
	{Value: "Score", Triggers: []string{"score"}},
	{Value: "Sportscard Guaranty Corporation (SGC)", Triggers: []string{"sgc", "sportscard guaranty"}},
	{Value: "Sports Memorabilia", Triggers: []string{"sports memorabilia"}},
	{Value: "Steiner Sports", Triggers: []string{"steiner", "steiner sports"}},
	{Value: "Topps", Triggers: []string{"topps"}},
	{Value: "TRISTAR Productions", Triggers: []string{"tristar", "tristar productions"}},
	{Value: "Upper Deck", Triggers: []string{"upper deck", "upperdeck"}},
}

// DefaultAutographAuth applies to autographed cards with no recognized
// authentication service.
const DefaultAutographAuth = "Panini Authentic"

// AutographFormats holds eBay's 3 Autograph Format options.
var AutographFormats = PhraseTable{
	{Value: "Cut", Triggers: []string{"cut", "cut signature"}},
	{Value: "Hard Signed", Triggers: []string{"hard signed", "on-card", "on card"}},
	{Value: "Label or Sticker", Triggers: []string{"label", "sticker", "authentication sticker", "auth sticker"}},
}

// DefaultAutographFormat applies to most modern sticker autos.
const DefaultAutographFormat = "Label or Sticker"
