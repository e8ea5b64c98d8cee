package services

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"card-lister/models"
)

// sportKeywordSuffixes extends the search-keywords footer with
// league-specific terms buyers actually type.
var sportKeywordSuffixes = map[string]string{
	"baseball":   ", baseball card, MLB",
	"basketball": ", basketball card, NBA",
	"football":   ", football card, NFL",
	"hockey":     ", hockey card, NHL",
	"soccer":     ", soccer card, football card",
	"wrestling":  ", wrestling card, WWE card, WWE",
}

// textPolicy strips any markup from card fields before they reach the
// description; seller inputs come from CSVs and prompts and are untrusted.
var textPolicy = bluemonday.StrictPolicy()

var descriptionTmpl = template.Must(template.New("description").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 800px; margin: 0 auto; border: 1px solid #ccc; padding: 15px;">
    <div style="text-align: center; background-color: #0053a0; color: #fff; padding: 10px; font-size: 24px; font-weight: bold;">
        {{.Title}}
    </div>
    <div style="padding: 20px;">
        <h1 style="color: #333; font-size: 20px; margin-bottom: 15px;">{{.Year}} {{.CardSet}} {{.Player}} #{{.CardNumber}} {{.Attributes}}</h1>

        <h2 style="border-bottom: 2px solid #eee; padding-bottom: 5px; color: #333;">Sports Trading Card Details</h2>
        <ul style="list-style-type: none; padding: 0;">
            <li style="padding: 5px 0;"><strong>Player/Athlete:</strong> {{.Player}}</li>
            <li style="padding: 5px 0;"><strong>Year:</strong> {{.Year}}</li>
            <li style="padding: 5px 0;"><strong>Brand/Set:</strong> {{.CardSet}}</li>
            <li style="padding: 5px 0;"><strong>Card Number:</strong> #{{.CardNumber}}</li>
            <li style="padding: 5px 0;"><strong>Sport:</strong> {{.Sport}}</li>
            <li style="padding: 5px 0;"><strong>Special Features:</strong> {{.Attributes}}</li>
            {{if .Grader}}{{if .Grade}}<li style="padding: 5px 0;"><strong>Grading:</strong> {{.Grader}} Grade {{.Grade}}</li>
            {{else}}<li style="padding: 5px 0;"><strong>Grading:</strong> {{.Grader}}</li>
            {{end}}{{else}}<li style="padding: 5px 0;"><strong>Grading:</strong> Raw/Ungraded</li>
            {{end}}
        </ul>

        <h2 style="border-bottom: 2px solid #eee; padding-bottom: 5px; color: #333;">Card Condition &amp; Authenticity</h2>
        <p>
            This {{.Year}} {{.CardSet}} {{.Player}} #{{.CardNumber}} {{.Attributes}} sports trading card is in excellent condition.
            {{.AuthenticityText}} Please examine the high-resolution photos carefully as they show the exact card you will receive.
        </p>

        <h2 style="border-bottom: 2px solid #eee; padding-bottom: 5px; color: #333;">Shipping &amp; Store Policies</h2>

        <p><strong>Flat Rate Shipping:</strong><br>
        All U.S. orders ship at one flat rate! Enjoy free shipping on all additional cards when you use the shopping cart and complete your purchase in a single transaction.</p>

        <p><strong>Customer Service:</strong><br>
        For any inquiries, please contact us through eBay messages. We are here to help and respond promptly.</p>

        <p><strong>Shipping Schedule:</strong><br>
        We ship Monday through Saturday, ensuring that your order goes out within 1 business day of purchase via USPS mail.</p>

        <h2 style="border-bottom: 2px solid #eee; padding-bottom: 5px; color: #333;">Professional Protection</h2>
        <p>
            <strong>Secure Packaging:</strong> Your {{.Player}} card will be shipped in a penny sleeve, top loader, and team bag for maximum protection.
            <br><strong>Shipping Method:</strong> eBay Standard Envelope for cards under $20 or USPS Ground Advantage for cards over $20.
        </p>

        <h2 style="border-bottom: 2px solid #eee; padding-bottom: 5px; color: #333;">Why Choose This Listing?</h2>
        <ul style="padding-left: 20px;">
            <li>Authentic {{.Year}} {{.CardSet}} {{.Player}} #{{.CardNumber}} {{.Attributes}}</li>
            <li>Professional packaging and fast shipping</li>
            <li>Detailed photos showing exact condition</li>
            <li>Combined shipping available for multiple purchases</li>
            <li>Trusted seller with excellent feedback</li>
        </ul>

        <p style="background-color: #f8f9fa; padding: 10px; border-left: 4px solid #0053a0; margin: 15px 0;">
            <strong>Search Keywords:</strong> {{.Player}}, {{.Year}} {{.CardSet}}, #{{.CardNumber}}, {{.Attributes}}, {{.Sport}} trading card{{.SportKeywords}}
        </p>
    </div>
    <div style="text-align: center; font-size: 12px; color: #888; margin-top: 20px; border-top: 1px solid #eee; padding-top: 10px;">
        <p>Thank you for viewing our {{.Player}} {{.Year}} {{.CardSet}} listing!</p>
        <p><strong>Listing SKU:</strong> {{.TrackingSKU}}</p>
    </div>
</div>
`))

type descriptionData struct {
	Title            string
	Player           string
	Year             string
	CardSet          string
	CardNumber       string
	Attributes       string
	Sport            string
	Grader           string
	Grade            string
	AuthenticityText string
	SportKeywords    string
	TrackingSKU      string
}

// RenderDescription produces the HTML description for a listing. Card text
// is sanitized first; the template then escapes everything it interpolates.
func RenderDescription(card *models.CardAttributes, title, trackingSKU string) (string, error) {
	data := descriptionData{
		Title:            textPolicy.Sanitize(title),
		Player:           textPolicy.Sanitize(card.Player),
		Year:             textPolicy.Sanitize(card.Year),
		CardSet:          textPolicy.Sanitize(card.CardSet),
		CardNumber:       textPolicy.Sanitize(card.CardNumber),
		Attributes:       textPolicy.Sanitize(card.Attributes),
		Sport:            capitalize(card.Sport),
		Grader:           textPolicy.Sanitize(card.Grader),
		Grade:            textPolicy.Sanitize(card.Grade),
		AuthenticityText: authenticityText(card),
		SportKeywords:    sportKeywordSuffix(card.Sport),
		TrackingSKU:      trackingSKU,
	}

	var sb strings.Builder
	if err := descriptionTmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("describe: render template: %w", err)
	}
	return sb.String(), nil
}

func authenticityText(card *models.CardAttributes) string {
	switch {
	case card.Grader != "" && card.Grade != "":
		return fmt.Sprintf("This card has been professionally graded by %s with a grade of %s, ensuring authenticity and condition.",
			card.Grader, card.Grade)
	case card.Grader != "":
		return fmt.Sprintf("This card has been authenticated by %s, ensuring authenticity.", card.Grader)
	default:
		return "This card is raw/ungraded. Please examine photos carefully for condition assessment."
	}
}

func sportKeywordSuffix(sport string) string {
	if suffix, ok := sportKeywordSuffixes[strings.ToLower(sport)]; ok {
		return suffix
	}
	return ", " + capitalize(sport) + " card"
}
