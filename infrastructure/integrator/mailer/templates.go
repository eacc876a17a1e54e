package mailer

import (
	"html/template"
	"strconv"
	"strings"
)

const layoutTemplate = `<!DOCTYPE html>
<html>
<head>
	<style>
		body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
		.header { background-color: #f4f4f4; padding: 20px; text-align: center; }
		.content { padding: 20px; }
		.footer { background-color: #f4f4f4; padding: 20px; text-align: center; font-size: 12px; }
		.cta-button { background-color: #007bff; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block; margin: 20px 0; }
	</style>
</head>
<body>
{{.}}
</body>
</html>`

const fallbackTemplate = `<div class="header">
	<h2>Collaboration Opportunity with {{.BrandName}}</h2>
</div>

<div class="content">
	<p>Dear {{.CreatorName}},</p>

	<p>I hope this email finds you well! I'm reaching out from {{.BrandName}}, and I've been following your amazing content on YouTube. Your videos on {{.Categories}} are truly engaging!</p>

	<p>We have an exciting collaboration opportunity that I believe would be a perfect fit for your channel and audience. We're looking to partner with creators who share our values and can authentically represent our product.</p>

	<h3>About Our Product</h3>
	<p><strong>{{.ProductName}}</strong><br>
	{{.ProductDescription}}</p>

	<h3>Why You're a Great Match</h3>
	<ul>
		<li>Your content aligns perfectly with our brand (Fit Score: {{percent .FitScore}})</li>
		<li>Your {{thousands .Subscribers}} subscribers match our target audience</li>
		<li>Your {{percent .EngagementRate}} engagement rate shows an active, engaged community</li>
	</ul>

	<h3>Collaboration Details</h3>
	<ul>
		<li>Product: {{.ProductName}}</li>
		<li>Compensation: ${{printf "%.2f" .Price}}</li>
		<li>Content: 1 video featuring our product</li>
		<li>Timeline: Flexible based on your schedule</li>
	</ul>

	<p>We'd love to discuss this opportunity further and answer any questions you might have. Would you be interested in a brief call to learn more?</p>

	<a href="mailto:{{.BrandEmail}}" class="cta-button">Reply to Discuss</a>

	<p>Thank you for considering this partnership. We're excited about the possibility of working together!</p>

	<p>Best regards,<br>
	The {{.BrandName}} Team</p>
</div>

<div class="footer">
	<p>This email was sent because we believe you're a great fit for our brand. If you're not interested, no worries, just let us know!</p>
</div>`

var templateFuncs = template.FuncMap{
	"percent":   percent,
	"thousands": thousands,
}

var (
	layout   = template.Must(template.New("layout").Parse(layoutTemplate))
	fallback = template.Must(template.New("fallback").Funcs(templateFuncs).Parse(fallbackTemplate))
)

type fallbackData struct {
	BrandName          string
	BrandEmail         string
	CreatorName        string
	Categories         string
	ProductName        string
	ProductDescription string
	FitScore           float64
	EngagementRate     float64
	Subscribers        int64
	Price              float64
}

func percent(v float64) string {
	return strconv.FormatFloat(v*100, 'f', 1, 64) + "%"
}

// thousands formata inteiros com separador de milhar (1234567 -> 1,234,567)
func thousands(v int64) string {
	digits := strconv.FormatInt(v, 10)
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}

	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	return sign + b.String()
}

// textToHTML escapa o texto gerado e preserva as quebras de linha
func textToHTML(text string) template.HTML {
	escaped := template.HTMLEscapeString(text)
	return template.HTML(`<div class="content">` + strings.ReplaceAll(escaped, "\n", "<br>") + `</div>`)
}
