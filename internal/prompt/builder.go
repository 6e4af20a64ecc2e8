// Package prompt renders the natural-language instructions sent to the
// text-generation backend. Every function here is pure string formatting.
package prompt

import (
	"fmt"
	"strings"

	"github.com/macaddy2/leadskylab/internal/content"
)

// RewriteRequest asks for existing content to be adapted to a platform and tone.
type RewriteRequest struct {
	Original string
	Platform content.Platform
	Tone     content.Tone
	Product  *content.ProductProfile
}

// Generation renders the prompt for a single post.
func Generation(req content.GenerationRequest) (string, error) {
	guide, err := req.Platform.Guideline()
	if err != nil {
		return "", err
	}
	tone, err := req.Tone.Description()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, generationIntro, guide.Name)
	b.WriteString("\n\n")
	writeProductContext(&b, req.Product)
	writePlatform(&b, guide)
	fmt.Fprintf(&b, "TONE: %s\n", tone)
	if topic := strings.TrimSpace(req.Topic); topic != "" {
		fmt.Fprintf(&b, "TOPIC: %s\n", topic)
	}

	b.WriteString("\nREQUIREMENTS:\n")
	fmt.Fprintf(&b, "- Stay within %d characters\n", guide.MaxLength)
	fmt.Fprintf(&b, "- Match the tone: %s\n", tone)
	b.WriteString("- Highlight at least one of the value propositions\n")
	if req.IncludeHashtags {
		b.WriteString(HashtagIncludeRequirement + "\n")
	} else {
		b.WriteString(HashtagExcludeRequirement + "\n")
	}
	b.WriteString("- Make it engaging and end with a clear, actionable next step\n")
	b.WriteString("- Do not wrap the post in quotation marks\n")
	b.WriteString("\n" + OnlyContentDirective)

	return b.String(), nil
}

// Rewrite renders the prompt that converts existing content to a new platform and tone.
func Rewrite(req RewriteRequest) (string, error) {
	guide, err := req.Platform.Guideline()
	if err != nil {
		return "", err
	}
	tone, err := req.Tone.Description()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, rewriteIntro, guide.Name, strings.TrimSpace(req.Original))
	b.WriteString("\n\n")
	if req.Product != nil {
		writeProductContext(&b, *req.Product)
	}
	writePlatform(&b, guide)
	fmt.Fprintf(&b, "TARGET TONE: %s\n", tone)

	b.WriteString("\nREQUIREMENTS:\n")
	b.WriteString("- Keep the core message and any facts from the original\n")
	fmt.Fprintf(&b, "- Convert it to the %s format and stay within %d characters\n", guide.Name, guide.MaxLength)
	fmt.Fprintf(&b, "- Change the voice to: %s\n", tone)
	b.WriteString("- Do not wrap the result in quotation marks\n")
	b.WriteString("\nGenerate ONLY the rewritten content. Do not add explanations, labels, alternatives or any other commentary.")

	return b.String(), nil
}

// Hashtags renders the prompt asking for count hashtags, one per line.
func Hashtags(text string, platform content.Platform, count int) (string, error) {
	guide, err := platform.Guideline()
	if err != nil {
		return "", err
	}
	if count <= 0 {
		return "", fmt.Errorf("hashtag count must be positive, got %d", count)
	}
	return fmt.Sprintf(hashtagTemplate, count, guide.Name, strings.TrimSpace(text), count), nil
}

// Launch renders the batch prompt for a launch campaign phase.
func Launch(req content.LaunchRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	guidance, _ := req.Phase.Guidance()

	var b strings.Builder
	b.WriteString("You are a launch marketing strategist planning social content for a product launch.\n\n")
	writeProductContext(&b, req.Product)

	date := "not set"
	if !req.LaunchDate.IsZero() {
		date = req.LaunchDate.Format("2006-01-02")
	}
	fmt.Fprintf(&b, "LAUNCH DATE: %s\n", date)
	fmt.Fprintf(&b, "CAMPAIGN PHASE: %s\n", req.Phase)
	fmt.Fprintf(&b, "PHASE GUIDANCE: %s\n\n", guidance)

	b.WriteString("PLATFORMS:\n")
	for _, p := range req.Platforms {
		guide, _ := p.Guideline()
		tone := req.ToneFor(p)
		desc, _ := tone.Description()
		fmt.Fprintf(&b, "- %s (%s): max %d characters; style: %s; tone: %s (%s)\n",
			p, guide.Name, guide.MaxLength, guide.Style, tone, desc)
	}

	pillars := "none specified, choose pillars that fit the product"
	if len(req.Pillars) > 0 {
		pillars = strings.Join(req.Pillars, ", ")
	}
	fmt.Fprintf(&b, "\nCONTENT PILLARS: %s\n\n", pillars)

	fmt.Fprintf(&b, "Create %d posts spread across the platforms above. Each post must respect its platform's character limit, style and tone.\n\n", req.Count)
	b.WriteString(launchSchema)
	b.WriteString("\n\n" + OnlyJSONDirective)

	return b.String(), nil
}

// Analysis renders the prompt asking the model to analyze a product profile.
func Analysis(product content.ProductProfile) string {
	ids := make([]string, 0, len(content.PlatformGuidelines))
	for _, p := range content.Platforms() {
		ids = append(ids, string(p))
	}

	var b strings.Builder
	b.WriteString("You are a product marketing strategist. Analyze the following product and recommend how to market it on social media.\n\n")
	writeProductContext(&b, product)
	if len(product.Competitors) > 0 {
		fmt.Fprintf(&b, "Competitors: %s\n", strings.Join(product.Competitors, ", "))
	}
	if product.URL != "" {
		fmt.Fprintf(&b, "Website: %s\n", product.URL)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, analysisSchema, strings.Join(ids, ", "))
	b.WriteString("\n\n" + OnlyJSONDirective)
	return b.String()
}

func writeProductContext(b *strings.Builder, p content.ProductProfile) {
	b.WriteString("PRODUCT CONTEXT:\n")
	fmt.Fprintf(b, "- Name: %s\n", p.Name)
	fmt.Fprintf(b, "- Description: %s\n", p.Description)
	fmt.Fprintf(b, "- Value propositions: %s\n", strings.Join(p.ValueProps, ", "))
	fmt.Fprintf(b, "- Target audience: %s\n", p.TargetAudience)
	fmt.Fprintf(b, "- Keywords: %s\n\n", strings.Join(p.Keywords, ", "))
}

func writePlatform(b *strings.Builder, g content.Guideline) {
	fmt.Fprintf(b, "PLATFORM: %s\n", g.Name)
	fmt.Fprintf(b, "- Maximum length: %d characters\n", g.MaxLength)
	fmt.Fprintf(b, "- Style: %s\n\n", g.Style)
}
