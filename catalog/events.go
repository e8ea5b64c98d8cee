package catalog

// Events canonicalizes Event/Tournament input to eBay's option names.
// Trimmed to the tournaments that show up on sports cards with any
// regularity.
var Events = PhraseTable{
	{Value: "Olympic Games", Triggers: []string{"olympic", "olympics"}},
	{Value: "Summer Olympics", Triggers: []string{"summer olympic", "summer olympics"}},
	{Value: "Winter Olympics", Triggers: []string{"winter olympic", "winter olympics"}},
	{Value: "FIFA World Cup", Triggers: []string{"fifa world cup", "world cup"}},
	{Value: "FIFA Women's World Cup", Triggers: []string{"fifa women's world cup", "women's world cup"}},
	{Value: "Super Bowl", Triggers: []string{"super bowl"}},
	{Value: "NBA Finals", Triggers: []string{"nba finals", "nba championship"}},
	{Value: "WNBA Finals", Triggers: []string{"wnba finals", "wnba championship"}},
	{Value: "MLB World Series", Triggers: []string{"mlb world series", "world series"}},
	{Value: "Stanley Cup Finals", Triggers: []string{"stanley cup", "stanley cup finals"}},
	{Value: "UEFA European Football Championship", Triggers: []string{"uefa", "european championship"}},
	{Value: "CONCACAF Gold Cup", Triggers: []string{"concacaf gold cup", "gold cup"}},
	{Value: "Rugby World Cup", Triggers: []string{"rugby world cup"}},
	{Value: "Cricket World Cup", Triggers: []string{"cricket world cup"}},
	{Value: "World Baseball Classic", Triggers: []string{"world baseball classic", "wbc"}},
	{Value: "EuroBasket", Triggers: []string{"eurobasket"}},
	{Value: "Ice Hockey World Championships", Triggers: []string{"ice hockey world championships"}},
	{Value: "Commonwealth Games", Triggers: []string{"commonwealth games"}},
	{Value: "Asian Games", Triggers: []string{"asian games"}},
	{Value: "Pan American Games", Triggers: []string{"pan american games"}},
	{Value: "World Wrestling Championship", Triggers: []string{"world wrestling championship"}},
}
