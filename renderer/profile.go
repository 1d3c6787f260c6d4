package renderer

import "github.com/etnz/finance"

// ProfileMarkdown renders a company profile.
func ProfileMarkdown(ticker string, p finance.Profile) string {
	return renderTemplate("profile", "profile.md", struct {
		Ticker string
		finance.Profile
	}{ticker, p})
}
