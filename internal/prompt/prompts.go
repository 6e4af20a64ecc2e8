package prompt

// Requirement lines toggled by GenerationRequest.IncludeHashtags.
const (
	HashtagIncludeRequirement = "- Include 2-4 relevant hashtags at the end of the post"
	HashtagExcludeRequirement = "- Do NOT include any hashtags"
)

// OnlyContentDirective closes every single-post prompt.
const OnlyContentDirective = "Generate ONLY the post content. Do not add explanations, labels, alternatives or any other commentary."

// OnlyJSONDirective closes prompts that expect a JSON payload.
const OnlyJSONDirective = "Return ONLY valid JSON. Do not wrap it in markdown code fences and do not add any text before or after it."

// generationIntro opens a single-post prompt. Args: platform name.
const generationIntro = `You are an expert social media marketer writing a %s post for a product.`

// rewriteIntro opens a rewrite prompt. Args: platform name, original content.
const rewriteIntro = `You are an expert social media editor. Rewrite the following content so it works as a %s post.

ORIGINAL CONTENT:
---
%s
---`

// hashtagTemplate asks for hashtags. Args: count, platform name, content, count.
const hashtagTemplate = `Generate %d relevant, high-reach hashtags for the following %s post.

POST:
---
%s
---

Rules:
- Return exactly %d hashtags
- One hashtag per line
- Every line must start with #
- No numbering, no explanations, no other text`

// launchSchema declares the array a launch prompt expects back.
const launchSchema = `Respond with a JSON array. Each element must have:
- "title": short internal title for the post
- "content": the full post text, within the platform character limit
- "platform": one of the platform identifiers listed above
- "hashtags": array of hashtags, each starting with #

Example response format:
[
  {
    "title": "Teaser: the problem",
    "content": "Ever spent a whole afternoon ...",
    "platform": "twitter",
    "hashtags": ["#productivity", "#launch"]
  }
]`

// analysisSchema declares the object an analysis prompt expects back.
const analysisSchema = `Respond with a JSON object with exactly these fields:
{
  "suggestedPillars": ["3-5 content pillars the brand should post about"],
  "suggestedKeywords": ["5-10 keywords and phrases to target"],
  "suggestedPlatforms": ["the best-fit platform identifiers from: %s"],
  "launchStrategy": "2-4 sentence launch strategy summary"
}`
