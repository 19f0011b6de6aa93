package repository

import "fmt"

// BuildJurisdictionStatusPrompt targets the jurisdiction and status fields.
func BuildJurisdictionStatusPrompt(documentText string) string {
	return fmt.Sprintf(`Read this legal document and answer TWO questions:

DOCUMENT:
%s

QUESTION 1: What is the jurisdiction (geographic region) for this law?
Look for: country names, state names, "United States", "EU", "European Union", "California", etc.
Answer with the specific jurisdiction name.

QUESTION 2: What is the current status of this law?
Look for: "enacted", "effective", "in force", "active", "proposed", "pending", "expired"
Choose ONLY from: Active, Pending, or Expired

Format your answer as JSON:
{"jurisdiction": "answer to question 1", "status": "answer to question 2"}

JSON:`, documentText)
}

// BuildDateTitlePrompt targets the publication date and title fields.
func BuildDateTitlePrompt(documentText string) string {
	return fmt.Sprintf(`Read this legal document and answer TWO questions:

DOCUMENT:
%s

QUESTION 1: What is the publication or effective date?
Look for: dates, "published", "effective date", "enacted", year mentions
Answer in YYYY-MM-DD format (e.g., 2024-03-20)

QUESTION 2: What is the title or name of this law?
Look for: titles, headings, "Act", law names
Answer with the full official title

Format your answer as JSON:
{"published": "YYYY-MM-DD", "title": "full title here"}

JSON:`, documentText)
}

// BuildSectorImpactPrompt targets the sector, impact score, and confidence
// fields.
func BuildSectorImpactPrompt(documentText string) string {
	return fmt.Sprintf(`Analyze this legal document for market impact:

DOCUMENT:
%s

QUESTION 1: Which sector is primarily affected?
Choose ONE from: Technology, Healthcare, Finance, Energy, Clean Energy, Transportation, Agriculture, Manufacturing, Retail, General
Look for: industry mentions, company types, affected businesses

QUESTION 2: What is the market impact score from 0-10?
0 = minimal impact, 5 = moderate, 10 = major market disruption
Consider: how many companies affected, compliance costs, penalties

QUESTION 3: How confident are you?
Choose ONE from: High, Medium, Low

Format your answer as JSON:
{"sector": "sector name", "impact": number, "confidence": "High/Medium/Low"}

JSON:`, documentText)
}

// BuildSummaryPrompt targets the summary field.
func BuildSummaryPrompt(documentText string) string {
	return fmt.Sprintf(`Summarize this legal document in 2-3 sentences:

DOCUMENT:
%s

Write a brief summary that explains:
1. What the law does
2. Who it affects
3. Why it matters

Keep it under 300 characters. Format as JSON:
{"summary": "your summary here"}

JSON:`, documentText)
}
