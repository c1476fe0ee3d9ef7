package gemini

import (
	"fmt"

	"crypto-fraud-detector/internal/fraud"
	"crypto-fraud-detector/internal/models"
)

const promptTemplate = `You are a blockchain fraud detection expert. Analyze this cryptocurrency transaction and provide a detailed risk assessment.

Transaction Details:
- Sender Address: %s
- Receiver Address: %s
- Amount: %s ETH
- Description: %s

Provide your analysis in the following format:

1. Address Analysis:
- Evaluate the format and patterns of both addresses
- Check for known suspicious patterns
- Look for potential red flags

2. Amount Analysis:
- Assess if the amount is unusual
- Compare with typical transaction patterns
- Check for suspicious round numbers or patterns

3. Description Analysis:
- Analyze the transaction description
- Look for suspicious keywords or patterns
- Evaluate the context

4. Overall Risk Assessment:
- Provide a risk score between 0 and 1
- List specific risk factors
- Explain your reasoning

5. Recommendations:
- Provide specific action items
- Suggest risk mitigation steps

Return your analysis in a clear, structured format with bullet points where appropriate.
Focus on being specific and actionable rather than general.
`

// BuildPrompt формирует промпт для модели
func BuildPrompt(req models.AnalysisRequest) string {
	description := req.Description
	if description == "" {
		description = "No description provided"
	}
	return fmt.Sprintf(promptTemplate, req.Sender, req.Receiver, fraud.FormatAmount(req.Amount), description)
}
