package gemini

const audiencePrompt = `You are an expert in audience analysis and demographic matching.
Analyze how well this influencer's audience matches the target audience. Return only JSON:

{
  "alignment_score": 0.0-1.0,
  "match_reasons": ["reason1", "reason2"],
  "mismatch_reasons": ["reason1", "reason2"]
}

Target audience: %s

Influencer demographics:
- Age range: %s
- Gender: %s
- Interests: %s
- Income level: %s
- Location: %s`

const brandAlignmentPrompt = `You are an expert in brand alignment and influencer marketing.
Analyze how well this influencer's content and values align with the brand. Return only JSON:

{
  "alignment_score": 0.0-1.0,
  "match_reasons": ["reason1", "reason2"],
  "mismatch_reasons": ["reason1", "reason2"]
}

Brand values: %s
Brand keywords: %s
Influencer content categories: %s
Influencer description: %s`

const brandProfilePrompt = `You are an expert brand strategist and marketing analyst.
Analyze this brand's website content and provide a brand profile. Return only JSON:

{
  "summary": "A 2-3 sentence summary of what this brand does and its value proposition",
  "keywords": ["keyword1", "keyword2", "keyword3", "keyword4", "keyword5"],
  "target_audience": "Description of the primary target audience demographics and psychographics",
  "brand_values": ["value1", "value2", "value3"],
  "content_categories": ["category1", "category2", "category3"],
  "tone": "The brand's communication tone",
  "unique_selling_points": ["USP1", "USP2", "USP3"]
}

Website content:
%s`

const demographicsPrompt = `You are an expert in audience analysis and demographics.
Analyze this YouTube channel's content and estimate the audience demographics. Return only JSON:

{
  "age_range": "Primary age group (e.g., 18-24, 25-34, 35-44)",
  "gender": "Primary gender (e.g., Male, Female, Mixed)",
  "interests": ["interest1", "interest2", "interest3"],
  "income_level": "Estimated income level (e.g., Low, Middle, High)",
  "location": "Primary geographic location (e.g., US, Europe, Global)"
}

Channel: %s
Description: %s
Recent video titles: %s`

const outreachPrompt = `You are an expert in influencer marketing and email outreach.
Write a professional, personalized outreach email for an influencer collaboration. It must be
friendly, mention why the creator is a good fit and end with a clear call to action.
Return only JSON:

{
  "subject": "Email subject line",
  "body": "Email body"
}

Details:
- Company: %s
- Product: %s - %s
- Influencer: %s (%s)
- Influencer categories: %s
- Fit score: %.2f
- Estimated price: $%.2f
- Subscribers: %d
- Average views: %d
- Engagement rate: %.2f%%`
